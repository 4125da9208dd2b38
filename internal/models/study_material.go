package models

import (
	"time"

	"gorm.io/datatypes"
)

// Study material file types.
const (
	FileTypePDF   = "pdf"
	FileTypeVideo = "video"
	FileTypeLink  = "link"
)

// Verification statuses for the moderation workflow.
const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

type StudyMaterial struct {
	ID             int64                       `gorm:"primaryKey;autoIncrement" json:"id"`
	DepartmentID   int64                       `gorm:"not null;index:idx_materials_dept_sem_year" json:"department_id"`
	UploaderUserID string                      `gorm:"type:uuid;not null;index" json:"uploader_user_id"`
	Title          string                      `gorm:"size:300;not null" json:"title"`
	Description    *string                     `gorm:"type:text" json:"description,omitempty"`
	FileDriveID    *string                     `json:"file_drive_id,omitempty"` // external link or drive file id
	FileType       string                      `gorm:"not null" json:"file_type"`
	SubjectTags    datatypes.JSONSlice[string] `json:"subject_tags"`
	Semester       int                         `gorm:"not null;index:idx_materials_dept_sem_year" json:"semester"`
	Year           int                         `gorm:"not null;index:idx_materials_dept_sem_year" json:"year"`

	// Moderation state. VerifiedAt is set only by an approve/reject
	// decision; request_changes leaves it untouched.
	VerificationStatus string     `gorm:"default:'pending';not null;index" json:"verification_status"`
	VerifierID         *string    `gorm:"type:uuid" json:"verifier_id,omitempty"`
	UploadedAt         time.Time  `gorm:"default:CURRENT_TIMESTAMP" json:"uploaded_at"`
	VerifiedAt         *time.Time `json:"verified_at,omitempty"`

	// Denormalized engagement counters. FavoritesCount mirrors the
	// user_favorite_materials rows; the others are unconditional.
	DownloadsCount int64 `gorm:"default:0" json:"downloads_count"`
	ViewsCount     int64 `gorm:"default:0" json:"views_count"`
	ThumbsUpCount  int64 `gorm:"default:0" json:"thumbs_up_count"` // no mutation path yet
	FavoritesCount int64 `gorm:"default:0" json:"favorites_count"`

	// Associations
	Department *Department `gorm:"foreignKey:DepartmentID;constraint:OnDelete:CASCADE" json:"department,omitempty"`
	Uploader   *User       `gorm:"foreignKey:UploaderUserID;constraint:OnDelete:CASCADE" json:"uploader,omitempty"`
	Verifier   *User       `gorm:"foreignKey:VerifierID;constraint:OnDelete:SET NULL" json:"verifier,omitempty"`
}

func (StudyMaterial) TableName() string {
	return "study_materials"
}
