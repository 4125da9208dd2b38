package service

import (
	"context"
	"testing"
	"time"

	"campushub/internal/models"
	"campushub/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestEngagementScore(t *testing.T) {
	m := &models.StudyMaterial{DownloadsCount: 10, ViewsCount: 5, FavoritesCount: 3}
	assert.Equal(t, int64(21), EngagementScore(m))

	m = &models.StudyMaterial{DownloadsCount: 10, ViewsCount: 5, FavoritesCount: 2}
	assert.Equal(t, int64(19), EngagementScore(m))
}

func TestRankMaterials_ScoreOrdering(t *testing.T) {
	materials := []models.StudyMaterial{
		{ID: 1, DownloadsCount: 10, ViewsCount: 5, FavoritesCount: 2}, // 19
		{ID: 2, DownloadsCount: 10, ViewsCount: 5, FavoritesCount: 3}, // 21
	}

	ranked := rankMaterials(materials)

	assert.Equal(t, int64(2), ranked[0].Material.ID)
	assert.Equal(t, int64(21), ranked[0].Score)
	assert.Equal(t, 1, ranked[0].Rank)
	assert.Equal(t, int64(1), ranked[1].Material.ID)
	assert.Equal(t, 2, ranked[1].Rank)
}

// Equal scores break on downloads, then views, then favorites.
func TestRankMaterials_Tiebreaks(t *testing.T) {
	materials := []models.StudyMaterial{
		{ID: 1, DownloadsCount: 4, ViewsCount: 6, FavoritesCount: 1}, // 12, 4 downloads
		{ID: 2, DownloadsCount: 6, ViewsCount: 4, FavoritesCount: 1}, // 12, 6 downloads
		{ID: 3, DownloadsCount: 6, ViewsCount: 2, FavoritesCount: 2}, // 12, 6 downloads, 2 views
	}

	ranked := rankMaterials(materials)

	assert.Equal(t, int64(2), ranked[0].Material.ID) // most downloads, more views than 3
	assert.Equal(t, int64(3), ranked[1].Material.ID)
	assert.Equal(t, int64(1), ranked[2].Material.ID)
	for i, r := range ranked {
		assert.Equal(t, i+1, r.Rank)
	}
}

func TestTopMaterials_NoCacheFallsThrough(t *testing.T) {
	materialRepo := new(MockMaterialRepository)
	searchLogRepo := new(MockSearchLogRepository)
	svc := newTestAnalyticsService(materialRepo, searchLogRepo)

	materialRepo.On("TopByEngagement", mock.Anything, 20).Return([]models.StudyMaterial{
		{ID: 5, DownloadsCount: 1},
	}, nil)

	ranked, err := svc.TopMaterials(context.Background())

	assert.NoError(t, err)
	assert.Len(t, ranked, 1)
	assert.Equal(t, 1, ranked[0].Rank)
	materialRepo.AssertExpectations(t)
}

func TestTopSearchTerms_StaffOnly(t *testing.T) {
	materialRepo := new(MockMaterialRepository)
	searchLogRepo := new(MockSearchLogRepository)
	svc := newTestAnalyticsService(materialRepo, searchLogRepo)

	_, err := svc.TopSearchTerms(context.Background(), nil)
	assert.ErrorIs(t, err, ErrUnauthenticated)

	_, err = svc.TopSearchTerms(context.Background(), plainUser())
	assert.ErrorIs(t, err, ErrNotStaff)

	searchLogRepo.On("TopTerms", mock.Anything, 50).Return([]repository.SearchTermGroup{
		{Query: "department:CSE semester:3", Count: 12, LastSearched: time.Now()},
	}, nil)

	terms, err := svc.TopSearchTerms(context.Background(), staffUser())
	assert.NoError(t, err)
	assert.Len(t, terms, 1)
	assert.Equal(t, int64(12), terms[0].Count)
}

func newTestAnalyticsService(materialRepo *MockMaterialRepository, searchLogRepo *MockSearchLogRepository) AnalyticsService {
	log, _ := testLogger()
	// nil Redis client: every cache call is a no-op, reads fall through
	return NewAnalyticsService(materialRepo, searchLogRepo, nil, log)
}
