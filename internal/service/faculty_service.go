package service

import (
	"context"
	"fmt"

	"campushub/internal/models"
	"campushub/internal/repository"
)

type FacultyService interface {
	Create(ctx context.Context, faculty *models.Faculty) error
	Update(ctx context.Context, faculty *models.Faculty) error
	Delete(ctx context.Context, id int64) error
	Get(ctx context.Context, id int64) (*models.Faculty, error)
	List(ctx context.Context, departmentID *int64) ([]models.Faculty, error)
}

type facultyService struct {
	facultyRepo    repository.FacultyRepository
	departmentRepo repository.DepartmentRepository
}

func NewFacultyService(facultyRepo repository.FacultyRepository, departmentRepo repository.DepartmentRepository) FacultyService {
	return &facultyService{
		facultyRepo:    facultyRepo,
		departmentRepo: departmentRepo,
	}
}

func (s *facultyService) Create(ctx context.Context, faculty *models.Faculty) error {
	if _, err := s.departmentRepo.GetByID(ctx, faculty.DepartmentID); err != nil {
		return fmt.Errorf("department lookup: %w", err)
	}
	return s.facultyRepo.Create(ctx, faculty)
}

func (s *facultyService) Update(ctx context.Context, faculty *models.Faculty) error {
	return s.facultyRepo.Update(ctx, faculty)
}

func (s *facultyService) Delete(ctx context.Context, id int64) error {
	return s.facultyRepo.Delete(ctx, id)
}

func (s *facultyService) Get(ctx context.Context, id int64) (*models.Faculty, error) {
	return s.facultyRepo.GetByID(ctx, id)
}

func (s *facultyService) List(ctx context.Context, departmentID *int64) ([]models.Faculty, error) {
	return s.facultyRepo.List(ctx, departmentID)
}
