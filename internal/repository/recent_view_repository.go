package repository

import (
	"context"
	"fmt"
	"time"

	"campushub/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// RecentViewRepository tracks the most recent view per (user, material).
type RecentViewRepository interface {
	Touch(ctx context.Context, userID string, materialID int64) error
	ListByUser(ctx context.Context, userID string, approvedOnly bool, limit int) ([]models.RecentlyViewedMaterial, error)
}

type recentViewRepository struct {
	db *gorm.DB
}

func NewRecentViewRepository(db *gorm.DB) RecentViewRepository {
	return &recentViewRepository{db: db}
}

// Touch upserts the row: repeat views overwrite last_viewed_at instead
// of creating a history.
func (r *recentViewRepository) Touch(ctx context.Context, userID string, materialID int64) error {
	view := &models.RecentlyViewedMaterial{
		UserID:       userID,
		MaterialID:   materialID,
		LastViewedAt: time.Now(),
	}
	if err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "material_id"}},
			DoUpdates: clause.Assignments(map[string]interface{}{"last_viewed_at": time.Now()}),
		}).
		Create(view).Error; err != nil {
		return fmt.Errorf("touch recent view: %w", err)
	}
	return nil
}

func (r *recentViewRepository) ListByUser(ctx context.Context, userID string, approvedOnly bool, limit int) ([]models.RecentlyViewedMaterial, error) {
	query := r.db.WithContext(ctx).
		Preload("Material").
		Preload("Material.Department").
		Where("recently_viewed_materials.user_id = ?", userID).
		Order("recently_viewed_materials.last_viewed_at DESC").
		Limit(limit)

	if approvedOnly {
		query = query.
			Joins("JOIN study_materials ON study_materials.id = recently_viewed_materials.material_id").
			Where("study_materials.verification_status = ?", models.StatusApproved)
	}

	var views []models.RecentlyViewedMaterial
	if err := query.Find(&views).Error; err != nil {
		return nil, fmt.Errorf("list recent views: %w", err)
	}
	return views, nil
}
