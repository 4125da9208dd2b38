package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User roles within the portal.
const (
	RoleStudent   = "student"
	RoleClassRep  = "cr"
	RoleFaculty   = "faculty"
	RoleAuthority = "authority"
	RoleModerator = "moderator"
)

type User struct {
	ID          string    `gorm:"primaryKey;type:uuid" json:"id"`
	Name        string    `gorm:"not null" json:"name"`
	Username    string    `gorm:"uniqueIndex;not null" json:"username"`
	Email       string    `gorm:"uniqueIndex;not null" json:"email"` // login identifier
	Password    string    `gorm:"column:password_hash;not null" json:"-"`
	Role        string    `gorm:"default:'student';not null" json:"role"`
	IsStaff     bool      `gorm:"default:false" json:"is_staff"`
	IsSuperuser bool      `gorm:"default:false" json:"is_superuser"`
	Phone       *string   `json:"phone,omitempty"`
	TelegramID  *string   `json:"telegram_id,omitempty"`
	WhatsApp    *string   `gorm:"column:whatsapp_number" json:"whatsapp_number,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// BeforeCreate hook to set UUID before creating a User
func (user *User) BeforeCreate(tx *gorm.DB) (err error) {
	if user.ID == "" {
		user.ID = uuid.New().String()
	}
	return nil
}

func (User) TableName() string {
	return "users"
}
