package service

import (
	"context"
	"fmt"
	"strings"

	"campushub/internal/dto"
	"campushub/internal/models"
	"campushub/internal/repository"
)

// SearchService records filtered listing queries for the analytics feed.
type SearchService interface {
	// LogSearch persists one log row describing the applied filters.
	// Callers are expected to skip it when no filter was applied.
	LogSearch(ctx context.Context, filters dto.MaterialFilters, departmentCode string, user *models.User) error
}

type searchService struct {
	searchLogRepo repository.SearchLogRepository
}

func NewSearchService(searchLogRepo repository.SearchLogRepository) SearchService {
	return &searchService{searchLogRepo: searchLogRepo}
}

func (s *searchService) LogSearch(ctx context.Context, filters dto.MaterialFilters, departmentCode string, user *models.User) error {
	entry := &models.SearchQueryLog{
		Query: BuildQueryString(filters, departmentCode),
	}
	if user != nil {
		entry.UserID = &user.ID
	}
	return s.searchLogRepo.Create(ctx, entry)
}

// BuildQueryString renders the applied filters in a fixed order so that
// identical searches group together in the analytics feed. The
// department descriptor is emitted only when the id resolved to a known
// department.
func BuildQueryString(filters dto.MaterialFilters, departmentCode string) string {
	parts := make([]string, 0, 3)
	if filters.DepartmentID != nil && departmentCode != "" {
		parts = append(parts, fmt.Sprintf("department:%s", departmentCode))
	}
	if filters.Semester != nil {
		parts = append(parts, fmt.Sprintf("semester:%d", *filters.Semester))
	}
	if filters.Year != nil {
		parts = append(parts, fmt.Sprintf("year:%d", *filters.Year))
	}
	return strings.Join(parts, " ")
}
