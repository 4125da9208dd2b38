package service

import (
	"context"
	"fmt"

	"campushub/internal/models"
	"campushub/internal/repository"
)

// NotificationService stores scheduling metadata only; no delivery
// pipeline runs behind it.
type NotificationService interface {
	Create(ctx context.Context, notification *models.Notification) error
	List(ctx context.Context, departmentID *int64) ([]models.Notification, error)
}

type notificationService struct {
	notificationRepo repository.NotificationRepository
	departmentRepo   repository.DepartmentRepository
}

func NewNotificationService(notificationRepo repository.NotificationRepository, departmentRepo repository.DepartmentRepository) NotificationService {
	return &notificationService{
		notificationRepo: notificationRepo,
		departmentRepo:   departmentRepo,
	}
}

func (s *notificationService) Create(ctx context.Context, notification *models.Notification) error {
	if notification.DepartmentID != nil {
		if _, err := s.departmentRepo.GetByID(ctx, *notification.DepartmentID); err != nil {
			return fmt.Errorf("department lookup: %w", err)
		}
	}
	return s.notificationRepo.Create(ctx, notification)
}

func (s *notificationService) List(ctx context.Context, departmentID *int64) ([]models.Notification, error) {
	return s.notificationRepo.List(ctx, departmentID)
}
