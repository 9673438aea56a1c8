package service

import (
	"context"
	"errors"
	"testing"

	"catalog_api/internal/models"
)

type stubFoodRepo struct {
	affected int64
	err      error
}

func (r *stubFoodRepo) FindAll(ctx context.Context) ([]models.Food, error) {
	return nil, r.err
}

func (r *stubFoodRepo) Create(ctx context.Context, food *models.Food) error {
	return r.err
}

func (r *stubFoodRepo) Update(ctx context.Context, food *models.Food) (int64, error) {
	return r.affected, r.err
}

func (r *stubFoodRepo) Delete(ctx context.Context, itemID string) (int64, error) {
	return r.affected, r.err
}

func TestFoodService_NotFound(t *testing.T) {
	svc := NewFoodService(&stubFoodRepo{affected: 0})
	ctx := context.Background()

	if err := svc.UpdateFood(ctx, &models.Food{ItemID: "x"}); !errors.Is(err, ErrFoodNotFound) {
		t.Errorf("expected ErrFoodNotFound from update, got %v", err)
	}
	if err := svc.DeleteFood(ctx, "x"); !errors.Is(err, ErrFoodNotFound) {
		t.Errorf("expected ErrFoodNotFound from delete, got %v", err)
	}
}

func TestFoodService_PassesThroughStoreErrors(t *testing.T) {
	storeErr := errors.New("connection refused")
	svc := NewFoodService(&stubFoodRepo{err: storeErr})
	ctx := context.Background()

	if err := svc.UpdateFood(ctx, &models.Food{ItemID: "x"}); !errors.Is(err, storeErr) {
		t.Errorf("expected store error from update, got %v", err)
	}
	if err := svc.DeleteFood(ctx, "x"); !errors.Is(err, storeErr) {
		t.Errorf("expected store error from delete, got %v", err)
	}
}

func TestFoodService_Updated(t *testing.T) {
	svc := NewFoodService(&stubFoodRepo{affected: 1})

	if err := svc.UpdateFood(context.Background(), &models.Food{ItemID: "1"}); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}
