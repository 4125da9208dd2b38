package models

import (
	"time"

	"gorm.io/datatypes"
)

type Department struct {
	ID            int64                      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name          string                     `gorm:"not null" json:"name"`
	ShortCode     string                     `gorm:"uniqueIndex;size:10;not null" json:"short_code"` // e.g. CSE, ECE
	Description   *string                    `gorm:"type:text" json:"description,omitempty"`
	ContactEmails datatypes.JSONSlice[string] `json:"contact_emails"`
	CreatedAt     time.Time                  `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
}

func (Department) TableName() string {
	return "departments"
}
