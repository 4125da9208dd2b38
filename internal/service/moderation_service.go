package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"campushub/internal/models"
	"campushub/internal/repository"
)

// Moderation actions.
const (
	ActionApprove        = "approve"
	ActionReject         = "reject"
	ActionRequestChanges = "request_changes"
)

var (
	ErrUnauthenticated = errors.New("authentication required")
	ErrNotVerifier     = errors.New("caller is not a verifier")
	ErrInvalidAction   = errors.New("unrecognized moderation action")
)

// ModerationService runs the verification lifecycle of a study
// material and appends an audit row for every decision.
type ModerationService interface {
	// Apply executes one moderation action as the acting user and
	// returns the updated material.
	Apply(ctx context.Context, materialID int64, actor *models.User, action, reason string) (*models.StudyMaterial, error)

	// Queue lists materials awaiting moderation. An empty status
	// defaults to pending; "all" disables the status filter.
	Queue(ctx context.Context, actor *models.User, status string, departmentID *int64) ([]models.StudyMaterial, error)

	// AuditTrail returns the material's full audit history, newest first.
	AuditTrail(ctx context.Context, actor *models.User, materialID int64) ([]models.UploadAudit, error)
}

type moderationService struct {
	materialRepo repository.MaterialRepository
	auditRepo    repository.AuditRepository
	access       AccessService
}

func NewModerationService(
	materialRepo repository.MaterialRepository,
	auditRepo repository.AuditRepository,
	access AccessService,
) ModerationService {
	return &moderationService{
		materialRepo: materialRepo,
		auditRepo:    auditRepo,
		access:       access,
	}
}

func (s *moderationService) Apply(ctx context.Context, materialID int64, actor *models.User, action, reason string) (*models.StudyMaterial, error) {
	if err := s.requireVerifier(ctx, actor); err != nil {
		return nil, err
	}

	material, err := s.materialRepo.GetByID(ctx, materialID)
	if err != nil {
		return nil, err
	}

	// approve and reject resolve the material and stamp verified_at;
	// request_changes only records who last reviewed it.
	switch action {
	case ActionApprove:
		now := time.Now()
		material.VerificationStatus = models.StatusApproved
		material.VerifierID = &actor.ID
		material.VerifiedAt = &now
	case ActionReject:
		now := time.Now()
		material.VerificationStatus = models.StatusRejected
		material.VerifierID = &actor.ID
		material.VerifiedAt = &now
	case ActionRequestChanges:
		material.VerifierID = &actor.ID
		// VerifiedAt stays as-is: not set, not cleared
	default:
		return nil, ErrInvalidAction
	}

	if err := s.materialRepo.Update(ctx, material); err != nil {
		return nil, err
	}

	if reason == "" {
		reason = fmt.Sprintf("Moderation action: %s", action)
	}
	audit := &models.UploadAudit{
		MaterialID: material.ID,
		UploaderID: actor.ID,
		Action:     models.AuditEdit,
		Reason:     &reason,
		Timestamp:  time.Now(),
	}
	if err := s.auditRepo.Create(ctx, audit); err != nil {
		return nil, err
	}

	return material, nil
}

func (s *moderationService) Queue(ctx context.Context, actor *models.User, status string, departmentID *int64) ([]models.StudyMaterial, error) {
	if err := s.requireVerifier(ctx, actor); err != nil {
		return nil, err
	}

	switch status {
	case "":
		status = models.StatusPending
	case "all":
		status = ""
	case models.StatusPending, models.StatusApproved, models.StatusRejected:
	default:
		return nil, ErrInvalidAction
	}

	return s.materialRepo.ListByStatus(ctx, status, departmentID)
}

func (s *moderationService) AuditTrail(ctx context.Context, actor *models.User, materialID int64) ([]models.UploadAudit, error) {
	if err := s.requireVerifier(ctx, actor); err != nil {
		return nil, err
	}
	if _, err := s.materialRepo.GetByID(ctx, materialID); err != nil {
		return nil, err
	}
	return s.auditRepo.ListByMaterial(ctx, materialID)
}

func (s *moderationService) requireVerifier(ctx context.Context, actor *models.User) error {
	if actor == nil {
		return ErrUnauthenticated
	}
	isVerifier, err := s.access.IsVerifier(ctx, actor)
	if err != nil {
		return err
	}
	if !isVerifier {
		return ErrNotVerifier
	}
	return nil
}
