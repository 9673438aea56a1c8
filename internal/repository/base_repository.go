package repository

import (
	"context"

	"gorm.io/gorm"

	"catalog_api/internal/storage"
)

// baseRepository 提供各資料表共用的查詢與新增
// 每個方法只借用一條連線執行一條語句
type baseRepository struct {
	db *storage.Database
}

func newBaseRepository(db *storage.Database) baseRepository {
	return baseRepository{db: db}
}

// findAll 執行 SELECT * FROM <table>，dest 必須是 model 的 slice 指標
func (r *baseRepository) findAll(ctx context.Context, dest interface{}) error {
	return r.db.WithConn(ctx, func(tx *gorm.DB) error {
		return tx.Find(dest).Error
	})
}

func (r *baseRepository) create(ctx context.Context, model interface{}) error {
	return r.db.WithConn(ctx, func(tx *gorm.DB) error {
		return tx.Create(model).Error
	})
}
