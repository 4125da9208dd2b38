package service

import (
	"context"

	"campushub/internal/models"
	"campushub/internal/repository"
)

// DepartmentService handles department CRUD and the detail projection
// that carries the faculty roster.
type DepartmentService interface {
	Create(ctx context.Context, dept *models.Department) error
	Update(ctx context.Context, dept *models.Department) error
	Delete(ctx context.Context, id int64) error
	Get(ctx context.Context, id int64) (*models.Department, []models.Faculty, error)
	List(ctx context.Context) ([]models.Department, error)
}

type departmentService struct {
	departmentRepo repository.DepartmentRepository
	facultyRepo    repository.FacultyRepository
}

func NewDepartmentService(departmentRepo repository.DepartmentRepository, facultyRepo repository.FacultyRepository) DepartmentService {
	return &departmentService{
		departmentRepo: departmentRepo,
		facultyRepo:    facultyRepo,
	}
}

func (s *departmentService) Create(ctx context.Context, dept *models.Department) error {
	return s.departmentRepo.Create(ctx, dept)
}

func (s *departmentService) Update(ctx context.Context, dept *models.Department) error {
	return s.departmentRepo.Update(ctx, dept)
}

func (s *departmentService) Delete(ctx context.Context, id int64) error {
	return s.departmentRepo.Delete(ctx, id)
}

func (s *departmentService) Get(ctx context.Context, id int64) (*models.Department, []models.Faculty, error) {
	dept, err := s.departmentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	roster, err := s.facultyRepo.List(ctx, &id)
	if err != nil {
		return nil, nil, err
	}
	return dept, roster, nil
}

func (s *departmentService) List(ctx context.Context) ([]models.Department, error) {
	return s.departmentRepo.List(ctx)
}
