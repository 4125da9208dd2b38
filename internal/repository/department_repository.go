package repository

import (
	"context"
	"fmt"

	"campushub/internal/models"

	"gorm.io/gorm"
)

type DepartmentRepository interface {
	Create(ctx context.Context, dept *models.Department) error
	Update(ctx context.Context, dept *models.Department) error
	Delete(ctx context.Context, id int64) error
	GetByID(ctx context.Context, id int64) (*models.Department, error)
	GetByShortCode(ctx context.Context, shortCode string) (*models.Department, error)
	List(ctx context.Context) ([]models.Department, error)
}

type departmentRepository struct {
	db *gorm.DB
}

func NewDepartmentRepository(db *gorm.DB) DepartmentRepository {
	return &departmentRepository{db: db}
}

func (r *departmentRepository) Create(ctx context.Context, dept *models.Department) error {
	if err := r.db.WithContext(ctx).Create(dept).Error; err != nil {
		return fmt.Errorf("create department: %w", err)
	}
	return nil
}

func (r *departmentRepository) Update(ctx context.Context, dept *models.Department) error {
	return r.db.WithContext(ctx).Save(dept).Error
}

func (r *departmentRepository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Department{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *departmentRepository) GetByID(ctx context.Context, id int64) (*models.Department, error) {
	var dept models.Department
	if err := r.db.WithContext(ctx).First(&dept, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &dept, nil
}

func (r *departmentRepository) GetByShortCode(ctx context.Context, shortCode string) (*models.Department, error) {
	var dept models.Department
	if err := r.db.WithContext(ctx).Where("short_code = ?", shortCode).First(&dept).Error; err != nil {
		return nil, err
	}
	return &dept, nil
}

func (r *departmentRepository) List(ctx context.Context) ([]models.Department, error) {
	var depts []models.Department
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&depts).Error; err != nil {
		return nil, fmt.Errorf("list departments: %w", err)
	}
	return depts, nil
}
