package repository

import (
	"context"
	"fmt"

	"campushub/internal/dto"
	"campushub/internal/models"

	"gorm.io/gorm"
)

type MaterialRepository interface {
	Create(ctx context.Context, m *models.StudyMaterial) error
	Update(ctx context.Context, m *models.StudyMaterial) error
	Delete(ctx context.Context, id int64) error
	GetByID(ctx context.Context, id int64) (*models.StudyMaterial, error)
	List(ctx context.Context, filters dto.MaterialFilters, approvedOnly bool) ([]models.StudyMaterial, error)
	ListByStatus(ctx context.Context, status string, departmentID *int64) ([]models.StudyMaterial, error)
	Recent(ctx context.Context, approvedOnly bool, limit int) ([]models.StudyMaterial, error)

	// Counters are single SQL arithmetic updates, never read-modify-write.
	IncrementViews(ctx context.Context, id int64) error
	IncrementDownloads(ctx context.Context, id int64) error
	AddFavoritesCount(ctx context.Context, id int64, delta int64) error

	TopByEngagement(ctx context.Context, limit int) ([]models.StudyMaterial, error)
}

type materialRepository struct {
	db *gorm.DB
}

func NewMaterialRepository(db *gorm.DB) MaterialRepository {
	return &materialRepository{db: db}
}

func (r *materialRepository) Create(ctx context.Context, m *models.StudyMaterial) error {
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return fmt.Errorf("create material: %w", err)
	}
	return nil
}

func (r *materialRepository) Update(ctx context.Context, m *models.StudyMaterial) error {
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return fmt.Errorf("update material: %w", err)
	}
	return nil
}

func (r *materialRepository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&models.StudyMaterial{}, id)
	if result.Error != nil {
		return fmt.Errorf("delete material: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *materialRepository) GetByID(ctx context.Context, id int64) (*models.StudyMaterial, error) {
	var m models.StudyMaterial
	if err := r.db.WithContext(ctx).Preload("Department").First(&m, id).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *materialRepository) List(ctx context.Context, filters dto.MaterialFilters, approvedOnly bool) ([]models.StudyMaterial, error) {
	query := r.db.WithContext(ctx).Preload("Department").Order("uploaded_at DESC")

	if approvedOnly {
		query = query.Where("verification_status = ?", models.StatusApproved)
	}
	if filters.DepartmentID != nil {
		query = query.Where("department_id = ?", *filters.DepartmentID)
	}
	if filters.Semester != nil {
		query = query.Where("semester = ?", *filters.Semester)
	}
	if filters.Year != nil {
		query = query.Where("year = ?", *filters.Year)
	}

	var list []models.StudyMaterial
	if err := query.Find(&list).Error; err != nil {
		return nil, fmt.Errorf("list materials: %w", err)
	}
	return list, nil
}

// ListByStatus feeds the moderation queue. An empty status means all statuses.
func (r *materialRepository) ListByStatus(ctx context.Context, status string, departmentID *int64) ([]models.StudyMaterial, error) {
	query := r.db.WithContext(ctx).Preload("Department").Order("uploaded_at DESC")
	if status != "" {
		query = query.Where("verification_status = ?", status)
	}
	if departmentID != nil {
		query = query.Where("department_id = ?", *departmentID)
	}

	var list []models.StudyMaterial
	if err := query.Find(&list).Error; err != nil {
		return nil, fmt.Errorf("list materials by status: %w", err)
	}
	return list, nil
}

func (r *materialRepository) Recent(ctx context.Context, approvedOnly bool, limit int) ([]models.StudyMaterial, error) {
	query := r.db.WithContext(ctx).Preload("Department").Order("uploaded_at DESC").Limit(limit)
	if approvedOnly {
		query = query.Where("verification_status = ?", models.StatusApproved)
	}

	var list []models.StudyMaterial
	if err := query.Find(&list).Error; err != nil {
		return nil, fmt.Errorf("recent materials: %w", err)
	}
	return list, nil
}

func (r *materialRepository) IncrementViews(ctx context.Context, id int64) error {
	return r.addToCounter(ctx, id, "views_count", 1)
}

func (r *materialRepository) IncrementDownloads(ctx context.Context, id int64) error {
	return r.addToCounter(ctx, id, "downloads_count", 1)
}

func (r *materialRepository) AddFavoritesCount(ctx context.Context, id int64, delta int64) error {
	return r.addToCounter(ctx, id, "favorites_count", delta)
}

func (r *materialRepository) addToCounter(ctx context.Context, id int64, column string, delta int64) error {
	result := r.db.WithContext(ctx).
		Model(&models.StudyMaterial{}).
		Where("id = ?", id).
		UpdateColumn(column, gorm.Expr(column+" + ?", delta))
	if result.Error != nil {
		return fmt.Errorf("update %s: %w", column, result.Error)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// TopByEngagement returns materials ordered by engagement score
// (downloads + views + 2*favorites) with downloads, views, favorites
// as descending tiebreakers.
func (r *materialRepository) TopByEngagement(ctx context.Context, limit int) ([]models.StudyMaterial, error) {
	var list []models.StudyMaterial
	if err := r.db.WithContext(ctx).
		Preload("Department").
		Order("(downloads_count + views_count + favorites_count * 2) DESC").
		Order("downloads_count DESC").
		Order("views_count DESC").
		Order("favorites_count DESC").
		Limit(limit).
		Find(&list).Error; err != nil {
		return nil, fmt.Errorf("top materials: %w", err)
	}
	return list, nil
}
