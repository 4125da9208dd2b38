package service

import (
	"context"
	"fmt"

	"campushub/internal/models"
	"campushub/internal/repository"
)

type CoordinatorService interface {
	Assign(ctx context.Context, coordinator *models.Coordinator) error
	Remove(ctx context.Context, id int64) error
	ListByDepartment(ctx context.Context, departmentID int64) ([]models.Coordinator, error)
}

type coordinatorService struct {
	coordinatorRepo repository.CoordinatorRepository
	departmentRepo  repository.DepartmentRepository
	userRepo        repository.UserRepository
}

func NewCoordinatorService(
	coordinatorRepo repository.CoordinatorRepository,
	departmentRepo repository.DepartmentRepository,
	userRepo repository.UserRepository,
) CoordinatorService {
	return &coordinatorService{
		coordinatorRepo: coordinatorRepo,
		departmentRepo:  departmentRepo,
		userRepo:        userRepo,
	}
}

func (s *coordinatorService) Assign(ctx context.Context, coordinator *models.Coordinator) error {
	if _, err := s.userRepo.FindByID(coordinator.UserID); err != nil {
		return fmt.Errorf("user lookup: %w", err)
	}
	if _, err := s.departmentRepo.GetByID(ctx, coordinator.DepartmentID); err != nil {
		return fmt.Errorf("department lookup: %w", err)
	}
	return s.coordinatorRepo.Create(ctx, coordinator)
}

func (s *coordinatorService) Remove(ctx context.Context, id int64) error {
	return s.coordinatorRepo.Delete(ctx, id)
}

func (s *coordinatorService) ListByDepartment(ctx context.Context, departmentID int64) ([]models.Coordinator, error) {
	return s.coordinatorRepo.ListByDepartment(ctx, departmentID)
}
