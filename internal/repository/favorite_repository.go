package repository

import (
	"context"
	"fmt"

	"campushub/internal/models"

	"gorm.io/gorm"
)

// FavoriteRepository manages user_favorite_materials rows together
// with the denormalized favorites_count on the material. AddWithCount
// and RemoveWithCount keep row and counter in one transaction; the
// (user, material) unique index serializes racing toggles.
type FavoriteRepository interface {
	Exists(ctx context.Context, userID string, materialID int64) (bool, error)
	AddWithCount(ctx context.Context, userID string, materialID int64) error
	RemoveWithCount(ctx context.Context, userID string, materialID int64) error
	CountByMaterial(ctx context.Context, materialID int64) (int64, error)
	ListByUser(ctx context.Context, userID string, approvedOnly bool, limit int) ([]models.UserFavoriteMaterial, error)
}

type favoriteRepository struct {
	db *gorm.DB
}

func NewFavoriteRepository(db *gorm.DB) FavoriteRepository {
	return &favoriteRepository{db: db}
}

func (r *favoriteRepository) Exists(ctx context.Context, userID string, materialID int64) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.UserFavoriteMaterial{}).
		Where("user_id = ? AND material_id = ?", userID, materialID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// AddWithCount inserts the favorite row and increments favorites_count
// atomically. A duplicate (user, material) pair surfaces as
// gorm.ErrDuplicatedKey and leaves the counter untouched.
func (r *favoriteRepository) AddWithCount(ctx context.Context, userID string, materialID int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		favorite := &models.UserFavoriteMaterial{
			UserID:     userID,
			MaterialID: materialID,
		}
		if err := tx.Create(favorite).Error; err != nil {
			return err
		}
		return tx.Model(&models.StudyMaterial{}).
			Where("id = ?", materialID).
			UpdateColumn("favorites_count", gorm.Expr("favorites_count + ?", 1)).Error
	})
}

// RemoveWithCount deletes the favorite row and decrements
// favorites_count only when a row was actually removed, so the counter
// never drops below the row count.
func (r *favoriteRepository) RemoveWithCount(ctx context.Context, userID string, materialID int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Where("user_id = ? AND material_id = ?", userID, materialID).
			Delete(&models.UserFavoriteMaterial{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return tx.Model(&models.StudyMaterial{}).
			Where("id = ?", materialID).
			UpdateColumn("favorites_count", gorm.Expr("favorites_count - ?", 1)).Error
	})
}

func (r *favoriteRepository) CountByMaterial(ctx context.Context, materialID int64) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.UserFavoriteMaterial{}).
		Where("material_id = ?", materialID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *favoriteRepository) ListByUser(ctx context.Context, userID string, approvedOnly bool, limit int) ([]models.UserFavoriteMaterial, error) {
	query := r.db.WithContext(ctx).
		Preload("Material").
		Preload("Material.Department").
		Where("user_favorite_materials.user_id = ?", userID).
		Order("user_favorite_materials.created_at DESC").
		Limit(limit)

	if approvedOnly {
		query = query.
			Joins("JOIN study_materials ON study_materials.id = user_favorite_materials.material_id").
			Where("study_materials.verification_status = ?", models.StatusApproved)
	}

	var favorites []models.UserFavoriteMaterial
	if err := query.Find(&favorites).Error; err != nil {
		return nil, fmt.Errorf("list favorites: %w", err)
	}
	return favorites, nil
}
