package repository

import (
	"context"
	"fmt"
	"time"

	"campushub/internal/models"

	"gorm.io/gorm"
)

// SearchTermGroup is one aggregated row of the search analytics
// projection.
type SearchTermGroup struct {
	Query        string    `json:"query"`
	Count        int64     `json:"count"`
	LastSearched time.Time `json:"last_searched"`
}

// SearchLogRepository appends and aggregates search telemetry. Rows
// are write-once; there is no update path.
type SearchLogRepository interface {
	Create(ctx context.Context, log *models.SearchQueryLog) error
	TopTerms(ctx context.Context, limit int) ([]SearchTermGroup, error)
}

type searchLogRepository struct {
	db *gorm.DB
}

func NewSearchLogRepository(db *gorm.DB) SearchLogRepository {
	return &searchLogRepository{db: db}
}

func (r *searchLogRepository) Create(ctx context.Context, log *models.SearchQueryLog) error {
	if err := r.db.WithContext(ctx).Create(log).Error; err != nil {
		return fmt.Errorf("create search log: %w", err)
	}
	return nil
}

// TopTerms groups logs by exact query string, ordered by count then
// recency, both descending.
func (r *searchLogRepository) TopTerms(ctx context.Context, limit int) ([]SearchTermGroup, error) {
	var groups []SearchTermGroup
	if err := r.db.WithContext(ctx).
		Model(&models.SearchQueryLog{}).
		Select("query, COUNT(*) AS count, MAX(timestamp) AS last_searched").
		Group("query").
		Order("count DESC").
		Order("last_searched DESC").
		Limit(limit).
		Scan(&groups).Error; err != nil {
		return nil, fmt.Errorf("top search terms: %w", err)
	}
	return groups, nil
}
