package service

import (
	"context"

	"catalog_api/internal/models"
	"catalog_api/internal/repository"
)

type StudentService struct {
	studentRepo repository.StudentRepository
}

func NewStudentService(studentRepo repository.StudentRepository) *StudentService {
	return &StudentService{studentRepo: studentRepo}
}

func (s *StudentService) ListStudents(ctx context.Context) ([]models.Student, error) {
	return s.studentRepo.FindAll(ctx)
}

func (s *StudentService) CreateStudent(ctx context.Context, student *models.Student) error {
	return s.studentRepo.Create(ctx, student)
}
