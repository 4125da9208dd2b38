package repository

import (
	"context"
	"fmt"

	"campushub/internal/models"

	"gorm.io/gorm"
)

type NotificationRepository interface {
	Create(ctx context.Context, notification *models.Notification) error
	List(ctx context.Context, departmentID *int64) ([]models.Notification, error)
}

type notificationRepository struct {
	db *gorm.DB
}

func NewNotificationRepository(db *gorm.DB) NotificationRepository {
	return &notificationRepository{db: db}
}

func (r *notificationRepository) Create(ctx context.Context, notification *models.Notification) error {
	if err := r.db.WithContext(ctx).Create(notification).Error; err != nil {
		return fmt.Errorf("create notification: %w", err)
	}
	return nil
}

// List returns newest first. With a department filter it includes the
// campus-wide rows (department_id IS NULL) as well.
func (r *notificationRepository) List(ctx context.Context, departmentID *int64) ([]models.Notification, error) {
	query := r.db.WithContext(ctx).Order("created_at DESC")
	if departmentID != nil {
		query = query.Where("department_id = ? OR department_id IS NULL", *departmentID)
	}

	var notifications []models.Notification
	if err := query.Find(&notifications).Error; err != nil {
		return nil, fmt.Errorf("list notifications: %w", err)
	}
	return notifications, nil
}
