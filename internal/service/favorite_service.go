package service

import (
	"context"
	"errors"

	"campushub/internal/dto"
	"campushub/internal/repository"

	"gorm.io/gorm"
)

// FavoriteService implements the favorite toggle. The toggle is
// race-safe: two concurrent toggles on the same pair serialize on the
// unique (user, material) index, and the loser of an insert race takes
// the remove branch instead of surfacing a conflict.
type FavoriteService interface {
	Toggle(ctx context.Context, userID string, materialID int64) (*dto.ToggleFavoriteResponse, error)
}

type favoriteService struct {
	favoriteRepo repository.FavoriteRepository
	materialRepo repository.MaterialRepository
}

func NewFavoriteService(favoriteRepo repository.FavoriteRepository, materialRepo repository.MaterialRepository) FavoriteService {
	return &favoriteService{
		favoriteRepo: favoriteRepo,
		materialRepo: materialRepo,
	}
}

func (s *favoriteService) Toggle(ctx context.Context, userID string, materialID int64) (*dto.ToggleFavoriteResponse, error) {
	if _, err := s.materialRepo.GetByID(ctx, materialID); err != nil {
		return nil, err
	}

	exists, err := s.favoriteRepo.Exists(ctx, userID, materialID)
	if err != nil {
		return nil, err
	}

	favorited := !exists
	if exists {
		err = s.favoriteRepo.RemoveWithCount(ctx, userID, materialID)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// Row vanished between the check and the delete: another
			// request already removed it, so this toggle adds it back.
			favorited = true
			err = s.favoriteRepo.AddWithCount(ctx, userID, materialID)
		}
	} else {
		err = s.favoriteRepo.AddWithCount(ctx, userID, materialID)
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			// A concurrent toggle inserted first; treat the pair as
			// already favorited and remove it.
			favorited = false
			err = s.favoriteRepo.RemoveWithCount(ctx, userID, materialID)
		}
	}
	if err != nil {
		return nil, err
	}

	material, err := s.materialRepo.GetByID(ctx, materialID)
	if err != nil {
		return nil, err
	}

	return &dto.ToggleFavoriteResponse{
		MaterialID: materialID,
		Favorited:  favorited,
		NewCount:   material.FavoritesCount,
	}, nil
}
