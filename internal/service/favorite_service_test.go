package service

import (
	"context"
	"testing"

	"campushub/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

func TestToggle_AddsWhenAbsent(t *testing.T) {
	favoriteRepo := new(MockFavoriteRepository)
	materialRepo := new(MockMaterialRepository)
	svc := NewFavoriteService(favoriteRepo, materialRepo)

	materialRepo.On("GetByID", mock.Anything, int64(7)).
		Return(&models.StudyMaterial{ID: 7, FavoritesCount: 3}, nil).Once()
	favoriteRepo.On("Exists", mock.Anything, "user-1", int64(7)).Return(false, nil)
	favoriteRepo.On("AddWithCount", mock.Anything, "user-1", int64(7)).Return(nil)
	materialRepo.On("GetByID", mock.Anything, int64(7)).
		Return(&models.StudyMaterial{ID: 7, FavoritesCount: 4}, nil).Once()

	resp, err := svc.Toggle(context.Background(), "user-1", 7)

	assert.NoError(t, err)
	assert.True(t, resp.Favorited)
	assert.Equal(t, int64(4), resp.NewCount)
	favoriteRepo.AssertExpectations(t)
}

func TestToggle_RemovesWhenPresent(t *testing.T) {
	favoriteRepo := new(MockFavoriteRepository)
	materialRepo := new(MockMaterialRepository)
	svc := NewFavoriteService(favoriteRepo, materialRepo)

	materialRepo.On("GetByID", mock.Anything, int64(7)).
		Return(&models.StudyMaterial{ID: 7, FavoritesCount: 4}, nil).Once()
	favoriteRepo.On("Exists", mock.Anything, "user-1", int64(7)).Return(true, nil)
	favoriteRepo.On("RemoveWithCount", mock.Anything, "user-1", int64(7)).Return(nil)
	materialRepo.On("GetByID", mock.Anything, int64(7)).
		Return(&models.StudyMaterial{ID: 7, FavoritesCount: 3}, nil).Once()

	resp, err := svc.Toggle(context.Background(), "user-1", 7)

	assert.NoError(t, err)
	assert.False(t, resp.Favorited)
	assert.Equal(t, int64(3), resp.NewCount)
}

// A racing insert makes AddWithCount surface a duplicate key; the
// toggle resolves it by taking the remove branch instead of erroring.
func TestToggle_InsertRaceFallsBackToRemove(t *testing.T) {
	favoriteRepo := new(MockFavoriteRepository)
	materialRepo := new(MockMaterialRepository)
	svc := NewFavoriteService(favoriteRepo, materialRepo)

	materialRepo.On("GetByID", mock.Anything, int64(7)).
		Return(&models.StudyMaterial{ID: 7, FavoritesCount: 1}, nil)
	favoriteRepo.On("Exists", mock.Anything, "user-1", int64(7)).Return(false, nil)
	favoriteRepo.On("AddWithCount", mock.Anything, "user-1", int64(7)).Return(gorm.ErrDuplicatedKey)
	favoriteRepo.On("RemoveWithCount", mock.Anything, "user-1", int64(7)).Return(nil)

	resp, err := svc.Toggle(context.Background(), "user-1", 7)

	assert.NoError(t, err)
	assert.False(t, resp.Favorited)
	favoriteRepo.AssertExpectations(t)
}

// The mirror race: the row vanished between the existence check and
// the delete, so this toggle re-adds it.
func TestToggle_DeleteRaceFallsBackToAdd(t *testing.T) {
	favoriteRepo := new(MockFavoriteRepository)
	materialRepo := new(MockMaterialRepository)
	svc := NewFavoriteService(favoriteRepo, materialRepo)

	materialRepo.On("GetByID", mock.Anything, int64(7)).
		Return(&models.StudyMaterial{ID: 7, FavoritesCount: 1}, nil)
	favoriteRepo.On("Exists", mock.Anything, "user-1", int64(7)).Return(true, nil)
	favoriteRepo.On("RemoveWithCount", mock.Anything, "user-1", int64(7)).Return(gorm.ErrRecordNotFound)
	favoriteRepo.On("AddWithCount", mock.Anything, "user-1", int64(7)).Return(nil)

	resp, err := svc.Toggle(context.Background(), "user-1", 7)

	assert.NoError(t, err)
	assert.True(t, resp.Favorited)
	favoriteRepo.AssertExpectations(t)
}

// Double toggle ends where it started: add then remove.
func TestToggle_DoubleToggleRestoresState(t *testing.T) {
	favoriteRepo := new(MockFavoriteRepository)
	materialRepo := new(MockMaterialRepository)
	svc := NewFavoriteService(favoriteRepo, materialRepo)

	at3 := &models.StudyMaterial{ID: 7, FavoritesCount: 3}
	at4 := &models.StudyMaterial{ID: 7, FavoritesCount: 4}

	// first toggle: absent -> add, counter 3 -> 4
	materialRepo.On("GetByID", mock.Anything, int64(7)).Return(at3, nil).Once()
	favoriteRepo.On("Exists", mock.Anything, "user-1", int64(7)).Return(false, nil).Once()
	favoriteRepo.On("AddWithCount", mock.Anything, "user-1", int64(7)).Return(nil).Once()
	materialRepo.On("GetByID", mock.Anything, int64(7)).Return(at4, nil).Once()

	// second toggle: present -> remove, counter 4 -> 3
	materialRepo.On("GetByID", mock.Anything, int64(7)).Return(at4, nil).Once()
	favoriteRepo.On("Exists", mock.Anything, "user-1", int64(7)).Return(true, nil).Once()
	favoriteRepo.On("RemoveWithCount", mock.Anything, "user-1", int64(7)).Return(nil).Once()
	materialRepo.On("GetByID", mock.Anything, int64(7)).Return(at3, nil).Once()

	first, err := svc.Toggle(context.Background(), "user-1", 7)
	assert.NoError(t, err)
	assert.True(t, first.Favorited)
	assert.Equal(t, int64(4), first.NewCount)

	second, err := svc.Toggle(context.Background(), "user-1", 7)
	assert.NoError(t, err)
	assert.False(t, second.Favorited)
	assert.Equal(t, int64(3), second.NewCount)
}

func TestToggle_MissingMaterial(t *testing.T) {
	favoriteRepo := new(MockFavoriteRepository)
	materialRepo := new(MockMaterialRepository)
	svc := NewFavoriteService(favoriteRepo, materialRepo)

	materialRepo.On("GetByID", mock.Anything, int64(99)).Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.Toggle(context.Background(), "user-1", 99)

	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	favoriteRepo.AssertNotCalled(t, "AddWithCount", mock.Anything, mock.Anything, mock.Anything)
}
