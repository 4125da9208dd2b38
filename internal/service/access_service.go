package service

import (
	"context"

	"campushub/internal/models"
	"campushub/internal/repository"
)

// AccessService decides who may moderate materials and who may see
// unapproved ones.
type AccessService interface {
	// IsVerifier reports whether the user may approve/reject
	// materials: staff, superuser, or holder of any coordinator role.
	IsVerifier(ctx context.Context, user *models.User) (bool, error)

	// CanSeeUnapproved gates ordinary listing/detail visibility.
	// Deliberately narrower than IsVerifier: coordinators do not see
	// pending materials in regular listings.
	CanSeeUnapproved(user *models.User) bool
}

type accessService struct {
	coordinatorRepo repository.CoordinatorRepository
}

func NewAccessService(coordinatorRepo repository.CoordinatorRepository) AccessService {
	return &accessService{coordinatorRepo: coordinatorRepo}
}

func (s *accessService) IsVerifier(ctx context.Context, user *models.User) (bool, error) {
	if user == nil {
		return false, nil
	}
	if user.IsStaff || user.IsSuperuser {
		return true, nil
	}
	return s.coordinatorRepo.HasAnyRole(ctx, user.ID)
}

func (s *accessService) CanSeeUnapproved(user *models.User) bool {
	if user == nil {
		return false
	}
	return user.IsStaff || user.IsSuperuser
}
