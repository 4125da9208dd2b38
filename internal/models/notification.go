package models

import (
	"time"

	"gorm.io/datatypes"
)

// Notification delivery channels. Only scheduling metadata is stored;
// dispatch happens outside this service.
const (
	ChannelEmail    = "email"
	ChannelTelegram = "telegram"
	ChannelWhatsApp = "whatsapp"
	ChannelWeb      = "web"
)

// Notification sent statuses.
const (
	SentPending = "pending"
	SentSent    = "sent"
	SentFailed  = "failed"
)

type Notification struct {
	ID           int64                       `gorm:"primaryKey;autoIncrement" json:"id"`
	Title        string                      `gorm:"size:200;not null" json:"title"`
	Body         string                      `gorm:"type:text;not null" json:"body"`
	DepartmentID *int64                      `gorm:"index:idx_notifications_dept_status" json:"department_id,omitempty"` // nil targets all departments
	PushTo       datatypes.JSONSlice[string] `json:"push_to"`
	CreatedByID  string                      `gorm:"type:uuid;not null;index" json:"created_by_id"`
	ScheduledFor *time.Time                  `gorm:"index:idx_notifications_sched_status" json:"scheduled_for,omitempty"`
	SentStatus   string                      `gorm:"default:'pending';not null;index:idx_notifications_dept_status;index:idx_notifications_sched_status" json:"sent_status"`
	CreatedAt    time.Time                   `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`

	// Associations
	Department *Department `gorm:"foreignKey:DepartmentID;constraint:OnDelete:CASCADE" json:"department,omitempty"`
	CreatedBy  *User       `gorm:"foreignKey:CreatedByID;constraint:OnDelete:CASCADE" json:"created_by,omitempty"`
}

func (Notification) TableName() string {
	return "notifications"
}
