package service

import (
	"context"
	"errors"
	"sort"

	"campushub/internal/cache"
	"campushub/internal/dto"
	"campushub/internal/logger"
	"campushub/internal/models"
	"campushub/internal/repository"
)

var ErrNotStaff = errors.New("staff access required")

const (
	topMaterialsLimit = 20
	topTermsLimit     = 50

	topMaterialsCacheKey = "analytics:top_materials"
	topTermsCacheKey     = "analytics:top_search_terms"
)

// AnalyticsService serves the ranked engagement feed and the
// staff-only search analytics feed, both behind a short-TTL cache.
type AnalyticsService interface {
	TopMaterials(ctx context.Context) ([]dto.TopMaterialResponse, error)
	TopSearchTerms(ctx context.Context, actor *models.User) ([]dto.SearchTermResponse, error)
}

type analyticsService struct {
	materialRepo  repository.MaterialRepository
	searchLogRepo repository.SearchLogRepository
	cache         *cache.Cache
	log           *logger.Logger
}

func NewAnalyticsService(
	materialRepo repository.MaterialRepository,
	searchLogRepo repository.SearchLogRepository,
	c *cache.Cache,
	log *logger.Logger,
) AnalyticsService {
	return &analyticsService{
		materialRepo:  materialRepo,
		searchLogRepo: searchLogRepo,
		cache:         c,
		log:           log,
	}
}

// EngagementScore weights favorites double: a favorite is a stronger
// signal than a passing view or download.
func EngagementScore(m *models.StudyMaterial) int64 {
	return m.DownloadsCount + m.ViewsCount + 2*m.FavoritesCount
}

// sortByEngagement orders by score, breaking ties on downloads, then
// views, then favorites, all descending.
func sortByEngagement(materials []models.StudyMaterial) {
	sort.SliceStable(materials, func(i, j int) bool {
		a, b := &materials[i], &materials[j]
		sa, sb := EngagementScore(a), EngagementScore(b)
		if sa != sb {
			return sa > sb
		}
		if a.DownloadsCount != b.DownloadsCount {
			return a.DownloadsCount > b.DownloadsCount
		}
		if a.ViewsCount != b.ViewsCount {
			return a.ViewsCount > b.ViewsCount
		}
		return a.FavoritesCount > b.FavoritesCount
	})
}

// rankMaterials annotates the sorted slice with 1-based ranks and scores.
func rankMaterials(materials []models.StudyMaterial) []dto.TopMaterialResponse {
	sortByEngagement(materials)
	ranked := make([]dto.TopMaterialResponse, 0, len(materials))
	for i := range materials {
		ranked = append(ranked, dto.TopMaterialResponse{
			Rank:     i + 1,
			Score:    EngagementScore(&materials[i]),
			Material: dto.FromMaterialToResponse(materials[i]),
		})
	}
	return ranked
}

func (s *analyticsService) TopMaterials(ctx context.Context) ([]dto.TopMaterialResponse, error) {
	var cached []dto.TopMaterialResponse
	if hit, err := s.cache.GetJSON(ctx, topMaterialsCacheKey, &cached); err != nil {
		s.log.Warn("top materials cache read failed", "error", err)
	} else if hit {
		return cached, nil
	}

	materials, err := s.materialRepo.TopByEngagement(ctx, topMaterialsLimit)
	if err != nil {
		return nil, err
	}
	ranked := rankMaterials(materials)

	if err := s.cache.SetJSON(ctx, topMaterialsCacheKey, ranked); err != nil {
		s.log.Warn("top materials cache write failed", "error", err)
	}
	return ranked, nil
}

func (s *analyticsService) TopSearchTerms(ctx context.Context, actor *models.User) ([]dto.SearchTermResponse, error) {
	if actor == nil {
		return nil, ErrUnauthenticated
	}
	if !actor.IsStaff && !actor.IsSuperuser {
		return nil, ErrNotStaff
	}

	var cached []dto.SearchTermResponse
	if hit, err := s.cache.GetJSON(ctx, topTermsCacheKey, &cached); err != nil {
		s.log.Warn("search terms cache read failed", "error", err)
	} else if hit {
		return cached, nil
	}

	groups, err := s.searchLogRepo.TopTerms(ctx, topTermsLimit)
	if err != nil {
		return nil, err
	}
	terms := make([]dto.SearchTermResponse, 0, len(groups))
	for _, g := range groups {
		terms = append(terms, dto.SearchTermResponse{
			Query:        g.Query,
			Count:        g.Count,
			LastSearched: g.LastSearched,
		})
	}

	if err := s.cache.SetJSON(ctx, topTermsCacheKey, terms); err != nil {
		s.log.Warn("search terms cache write failed", "error", err)
	}
	return terms, nil
}
