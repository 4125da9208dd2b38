package repository

import (
	"context"
	"fmt"

	"campushub/internal/models"

	"gorm.io/gorm"
)

type FacultyRepository interface {
	Create(ctx context.Context, faculty *models.Faculty) error
	Update(ctx context.Context, faculty *models.Faculty) error
	Delete(ctx context.Context, id int64) error
	GetByID(ctx context.Context, id int64) (*models.Faculty, error)
	List(ctx context.Context, departmentID *int64) ([]models.Faculty, error)
}

type facultyRepository struct {
	db *gorm.DB
}

func NewFacultyRepository(db *gorm.DB) FacultyRepository {
	return &facultyRepository{db: db}
}

func (r *facultyRepository) Create(ctx context.Context, faculty *models.Faculty) error {
	if err := r.db.WithContext(ctx).Create(faculty).Error; err != nil {
		return fmt.Errorf("create faculty: %w", err)
	}
	return nil
}

func (r *facultyRepository) Update(ctx context.Context, faculty *models.Faculty) error {
	return r.db.WithContext(ctx).Save(faculty).Error
}

func (r *facultyRepository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Faculty{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *facultyRepository) GetByID(ctx context.Context, id int64) (*models.Faculty, error) {
	var faculty models.Faculty
	if err := r.db.WithContext(ctx).Preload("Department").First(&faculty, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &faculty, nil
}

func (r *facultyRepository) List(ctx context.Context, departmentID *int64) ([]models.Faculty, error) {
	query := r.db.WithContext(ctx).Preload("Department").Order("name ASC")
	if departmentID != nil {
		query = query.Where("department_id = ?", *departmentID)
	}

	var faculty []models.Faculty
	if err := query.Find(&faculty).Error; err != nil {
		return nil, fmt.Errorf("list faculty: %w", err)
	}
	return faculty, nil
}
