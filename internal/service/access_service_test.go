package service

import (
	"context"
	"testing"

	"campushub/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestIsVerifier_StaffSkipsRoleLookup(t *testing.T) {
	coordinatorRepo := new(MockCoordinatorRepository)
	svc := NewAccessService(coordinatorRepo)

	ok, err := svc.IsVerifier(context.Background(), staffUser())

	assert.NoError(t, err)
	assert.True(t, ok)
	coordinatorRepo.AssertNotCalled(t, "HasAnyRole", mock.Anything, mock.Anything)
}

func TestIsVerifier_SuperuserSkipsRoleLookup(t *testing.T) {
	coordinatorRepo := new(MockCoordinatorRepository)
	svc := NewAccessService(coordinatorRepo)

	ok, err := svc.IsVerifier(context.Background(), &models.User{ID: "root-1", IsSuperuser: true})

	assert.NoError(t, err)
	assert.True(t, ok)
	coordinatorRepo.AssertNotCalled(t, "HasAnyRole", mock.Anything, mock.Anything)
}

func TestIsVerifier_CoordinatorRoleCounts(t *testing.T) {
	coordinatorRepo := new(MockCoordinatorRepository)
	coordinatorRepo.On("HasAnyRole", mock.Anything, "user-1").Return(true, nil)
	svc := NewAccessService(coordinatorRepo)

	ok, err := svc.IsVerifier(context.Background(), plainUser())

	assert.NoError(t, err)
	assert.True(t, ok)
}

func TestIsVerifier_PlainUserDenied(t *testing.T) {
	coordinatorRepo := new(MockCoordinatorRepository)
	coordinatorRepo.On("HasAnyRole", mock.Anything, "user-1").Return(false, nil)
	svc := NewAccessService(coordinatorRepo)

	ok, err := svc.IsVerifier(context.Background(), plainUser())

	assert.NoError(t, err)
	assert.False(t, ok)
}

func TestIsVerifier_NilUser(t *testing.T) {
	svc := NewAccessService(new(MockCoordinatorRepository))

	ok, err := svc.IsVerifier(context.Background(), nil)

	assert.NoError(t, err)
	assert.False(t, ok)
}

// Coordinators moderate but do not get the broadened listing view.
func TestCanSeeUnapproved_ExcludesCoordinators(t *testing.T) {
	coordinatorRepo := new(MockCoordinatorRepository)
	svc := NewAccessService(coordinatorRepo)

	assert.True(t, svc.CanSeeUnapproved(staffUser()))
	assert.True(t, svc.CanSeeUnapproved(&models.User{ID: "root-1", IsSuperuser: true}))
	assert.False(t, svc.CanSeeUnapproved(plainUser()))
	assert.False(t, svc.CanSeeUnapproved(nil))
	coordinatorRepo.AssertNotCalled(t, "HasAnyRole", mock.Anything, mock.Anything)
}
