package dto

import (
	"time"

	"campushub/internal/models"
)

// CreateNotificationRequest used for POST /api/notifications. Only
// scheduling metadata is recorded; delivery happens elsewhere.
type CreateNotificationRequest struct {
	Title        string     `json:"title" binding:"required,max=200"`
	Body         string     `json:"body" binding:"required"`
	DepartmentID *int64     `json:"department_id,omitempty"` // nil targets all departments
	PushTo       []string   `json:"push_to" binding:"required,min=1,dive,oneof=email telegram whatsapp web"`
	ScheduledFor *time.Time `json:"scheduled_for,omitempty"`
}

// NotificationResponse DTO for responses
type NotificationResponse struct {
	ID           int64      `json:"id"`
	Title        string     `json:"title"`
	Body         string     `json:"body"`
	DepartmentID *int64     `json:"department_id,omitempty"`
	PushTo       []string   `json:"push_to"`
	CreatedByID  string     `json:"created_by_id"`
	ScheduledFor *time.Time `json:"scheduled_for,omitempty"`
	SentStatus   string     `json:"sent_status"`
	CreatedAt    time.Time  `json:"created_at"`
}

// Converters
func (d CreateNotificationRequest) ToModel(createdByID string) models.Notification {
	return models.Notification{
		Title:        d.Title,
		Body:         d.Body,
		DepartmentID: d.DepartmentID,
		PushTo:       d.PushTo,
		CreatedByID:  createdByID,
		ScheduledFor: d.ScheduledFor,
		SentStatus:   models.SentPending,
	}
}

func FromNotificationToResponse(m models.Notification) NotificationResponse {
	return NotificationResponse{
		ID:           m.ID,
		Title:        m.Title,
		Body:         m.Body,
		DepartmentID: m.DepartmentID,
		PushTo:       m.PushTo,
		CreatedByID:  m.CreatedByID,
		ScheduledFor: m.ScheduledFor,
		SentStatus:   m.SentStatus,
		CreatedAt:    m.CreatedAt,
	}
}
