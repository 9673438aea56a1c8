package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"catalog_api/internal/models"
	"catalog_api/internal/storage"
)

type FoodRepository interface {
	FindAll(ctx context.Context) ([]models.Food, error)
	Create(ctx context.Context, food *models.Food) error
	Update(ctx context.Context, food *models.Food) (int64, error) // 回傳受影響的列數
	Delete(ctx context.Context, itemID string) (int64, error)
}

type foodRepository struct {
	baseRepository
}

func NewFoodRepository(db *storage.Database) FoodRepository {
	return &foodRepository{baseRepository: newBaseRepository(db)}
}

func (r *foodRepository) FindAll(ctx context.Context) ([]models.Food, error) {
	foods := make([]models.Food, 0)
	err := r.findAll(ctx, &foods)
	return foods, err
}

func (r *foodRepository) Create(ctx context.Context, food *models.Food) error {
	return r.create(ctx, food)
}

// Update 依 ITEM_ID 更新名稱、單位與公司
func (r *foodRepository) Update(ctx context.Context, food *models.Food) (int64, error) {
	var affected int64
	err := r.db.WithConn(ctx, func(tx *gorm.DB) error {
		result := tx.Model(&models.Food{}).
			Where(byItemID(food.ItemID)).
			Updates(map[string]interface{}{
				"ITEM_NAME":  food.ItemName,
				"ITEM_UNIT":  food.ItemUnit,
				"COMPANY_ID": food.CompanyID,
			})
		affected = result.RowsAffected
		return result.Error
	})
	return affected, err
}

func (r *foodRepository) Delete(ctx context.Context, itemID string) (int64, error) {
	var affected int64
	err := r.db.WithConn(ctx, func(tx *gorm.DB) error {
		result := tx.Where(byItemID(itemID)).Delete(&models.Food{})
		affected = result.RowsAffected
		return result.Error
	})
	return affected, err
}

// byItemID 欄位名稱是大寫，交給 gorm 加上引號
func byItemID(itemID string) clause.Eq {
	return clause.Eq{Column: clause.Column{Name: "ITEM_ID"}, Value: itemID}
}
