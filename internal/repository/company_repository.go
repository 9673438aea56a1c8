package repository

import (
	"context"

	"catalog_api/internal/models"
	"catalog_api/internal/storage"
)

type CompanyRepository interface {
	FindAll(ctx context.Context) ([]models.Company, error)
	Create(ctx context.Context, company *models.Company) error
}

type companyRepository struct {
	baseRepository
}

func NewCompanyRepository(db *storage.Database) CompanyRepository {
	return &companyRepository{baseRepository: newBaseRepository(db)}
}

func (r *companyRepository) FindAll(ctx context.Context) ([]models.Company, error) {
	companies := make([]models.Company, 0)
	err := r.findAll(ctx, &companies)
	return companies, err
}

func (r *companyRepository) Create(ctx context.Context, company *models.Company) error {
	return r.create(ctx, company)
}
