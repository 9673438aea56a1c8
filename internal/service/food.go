package service

import (
	"context"
	"errors"

	"catalog_api/internal/models"
	"catalog_api/internal/repository"
)

// ErrFoodNotFound 更新或刪除時找不到對應的 ITEM_ID
var ErrFoodNotFound = errors.New("food not found")

type FoodService struct {
	foodRepo repository.FoodRepository
}

func NewFoodService(foodRepo repository.FoodRepository) *FoodService {
	return &FoodService{foodRepo: foodRepo}
}

func (s *FoodService) ListFoods(ctx context.Context) ([]models.Food, error) {
	return s.foodRepo.FindAll(ctx)
}

func (s *FoodService) CreateFood(ctx context.Context, food *models.Food) error {
	return s.foodRepo.Create(ctx, food)
}

// UpdateFood 沒有任何一列被更新時回傳 ErrFoodNotFound
func (s *FoodService) UpdateFood(ctx context.Context, food *models.Food) error {
	affected, err := s.foodRepo.Update(ctx, food)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrFoodNotFound
	}
	return nil
}

func (s *FoodService) DeleteFood(ctx context.Context, itemID string) error {
	affected, err := s.foodRepo.Delete(ctx, itemID)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrFoodNotFound
	}
	return nil
}
