package repository

import (
	"context"

	"catalog_api/internal/models"
	"catalog_api/internal/storage"
)

type StudentRepository interface {
	FindAll(ctx context.Context) ([]models.Student, error)
	Create(ctx context.Context, student *models.Student) error
}

type studentRepository struct {
	baseRepository
}

func NewStudentRepository(db *storage.Database) StudentRepository {
	return &studentRepository{baseRepository: newBaseRepository(db)}
}

func (r *studentRepository) FindAll(ctx context.Context) ([]models.Student, error) {
	students := make([]models.Student, 0)
	err := r.findAll(ctx, &students)
	return students, err
}

func (r *studentRepository) Create(ctx context.Context, student *models.Student) error {
	return r.create(ctx, student)
}
