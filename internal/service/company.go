package service

import (
	"context"

	"catalog_api/internal/models"
	"catalog_api/internal/repository"
)

type CompanyService struct {
	companyRepo repository.CompanyRepository
}

func NewCompanyService(companyRepo repository.CompanyRepository) *CompanyService {
	return &CompanyService{companyRepo: companyRepo}
}

func (s *CompanyService) ListCompanies(ctx context.Context) ([]models.Company, error) {
	return s.companyRepo.FindAll(ctx)
}

func (s *CompanyService) CreateCompany(ctx context.Context, company *models.Company) error {
	return s.companyRepo.Create(ctx, company)
}
