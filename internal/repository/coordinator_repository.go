package repository

import (
	"context"
	"fmt"

	"campushub/internal/models"

	"gorm.io/gorm"
)

type CoordinatorRepository interface {
	Create(ctx context.Context, coordinator *models.Coordinator) error
	Delete(ctx context.Context, id int64) error
	ListByDepartment(ctx context.Context, departmentID int64) ([]models.Coordinator, error)

	// HasAnyRole is the single capability query behind the verifier
	// predicate: does this user hold at least one coordinator row?
	HasAnyRole(ctx context.Context, userID string) (bool, error)
}

type coordinatorRepository struct {
	db *gorm.DB
}

func NewCoordinatorRepository(db *gorm.DB) CoordinatorRepository {
	return &coordinatorRepository{db: db}
}

func (r *coordinatorRepository) Create(ctx context.Context, coordinator *models.Coordinator) error {
	if err := r.db.WithContext(ctx).Create(coordinator).Error; err != nil {
		return fmt.Errorf("assign coordinator: %w", err)
	}
	return nil
}

func (r *coordinatorRepository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&models.Coordinator{}, id)
	if result.Error != nil {
		return fmt.Errorf("remove coordinator: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *coordinatorRepository) ListByDepartment(ctx context.Context, departmentID int64) ([]models.Coordinator, error) {
	var coordinators []models.Coordinator
	if err := r.db.WithContext(ctx).
		Preload("User").
		Where("department_id = ?", departmentID).
		Order("role ASC").
		Find(&coordinators).Error; err != nil {
		return nil, fmt.Errorf("list coordinators: %w", err)
	}
	return coordinators, nil
}

func (r *coordinatorRepository) HasAnyRole(ctx context.Context, userID string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Coordinator{}).
		Where("user_id = ?", userID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
