package repository

import "catalog_api/internal/storage"

type Repositories struct {
	Food    FoodRepository
	Company CompanyRepository
	Student StudentRepository
}

func NewRepositories(db *storage.Database) *Repositories {
	return &Repositories{
		Food:    NewFoodRepository(db),
		Company: NewCompanyRepository(db),
		Student: NewStudentRepository(db),
	}
}
