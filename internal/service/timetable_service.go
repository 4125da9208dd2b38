package service

import (
	"context"
	"fmt"

	"campushub/internal/dto"
	"campushub/internal/models"
	"campushub/internal/repository"
)

type TimetableService interface {
	Create(ctx context.Context, entry *models.TimetableEntry) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, filters dto.TimetableFilters) ([]models.TimetableEntry, error)
	Upcoming(ctx context.Context, departmentID int64, semester *int) ([]models.TimetableEntry, error)
}

type timetableService struct {
	timetableRepo  repository.TimetableRepository
	departmentRepo repository.DepartmentRepository
}

func NewTimetableService(timetableRepo repository.TimetableRepository, departmentRepo repository.DepartmentRepository) TimetableService {
	return &timetableService{
		timetableRepo:  timetableRepo,
		departmentRepo: departmentRepo,
	}
}

func (s *timetableService) Create(ctx context.Context, entry *models.TimetableEntry) error {
	if _, err := s.departmentRepo.GetByID(ctx, entry.DepartmentID); err != nil {
		return fmt.Errorf("department lookup: %w", err)
	}
	return s.timetableRepo.Create(ctx, entry)
}

func (s *timetableService) Delete(ctx context.Context, id int64) error {
	return s.timetableRepo.Delete(ctx, id)
}

func (s *timetableService) List(ctx context.Context, filters dto.TimetableFilters) ([]models.TimetableEntry, error) {
	return s.timetableRepo.List(ctx, filters)
}

func (s *timetableService) Upcoming(ctx context.Context, departmentID int64, semester *int) ([]models.TimetableEntry, error) {
	if _, err := s.departmentRepo.GetByID(ctx, departmentID); err != nil {
		return nil, err
	}
	return s.timetableRepo.UpcomingByDepartment(ctx, departmentID, semester)
}
