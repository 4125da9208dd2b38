package service

import (
	"context"

	"campushub/internal/models"
	"campushub/internal/repository"
)

// libraryCap bounds both halves of the personal library page.
const libraryCap = 20

// LibraryService assembles the per-user library: favorited materials
// and recently viewed ones, newest first.
type LibraryService interface {
	Library(ctx context.Context, user *models.User) ([]models.UserFavoriteMaterial, []models.RecentlyViewedMaterial, error)
}

type libraryService struct {
	favoriteRepo   repository.FavoriteRepository
	recentViewRepo repository.RecentViewRepository
	access         AccessService
}

func NewLibraryService(favoriteRepo repository.FavoriteRepository, recentViewRepo repository.RecentViewRepository, access AccessService) LibraryService {
	return &libraryService{
		favoriteRepo:   favoriteRepo,
		recentViewRepo: recentViewRepo,
		access:         access,
	}
}

func (s *libraryService) Library(ctx context.Context, user *models.User) ([]models.UserFavoriteMaterial, []models.RecentlyViewedMaterial, error) {
	if user == nil {
		return nil, nil, ErrUnauthenticated
	}

	verifier, err := s.access.IsVerifier(ctx, user)
	if err != nil {
		return nil, nil, err
	}
	approvedOnly := !verifier

	favorites, err := s.favoriteRepo.ListByUser(ctx, user.ID, approvedOnly, libraryCap)
	if err != nil {
		return nil, nil, err
	}
	recents, err := s.recentViewRepo.ListByUser(ctx, user.ID, approvedOnly, libraryCap)
	if err != nil {
		return nil, nil, err
	}
	return favorites, recents, nil
}
