package models

import "time"

// Audit actions recorded against a study material.
const (
	AuditUpload = "upload"
	AuditEdit   = "edit"
	AuditDelete = "delete"
)

// UploadAudit is an append-only log row. Rows are never updated or
// deleted after creation.
type UploadAudit struct {
	ID         int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	MaterialID int64     `gorm:"not null;index:idx_audits_material_ts" json:"material_id"`
	UploaderID string    `gorm:"type:uuid;not null;index:idx_audits_uploader_ts" json:"uploader_id"`
	Action     string    `gorm:"not null" json:"action"`
	Reason     *string   `gorm:"type:text" json:"reason,omitempty"`
	Timestamp  time.Time `gorm:"default:CURRENT_TIMESTAMP;index:idx_audits_material_ts;index:idx_audits_uploader_ts" json:"timestamp"`

	// Associations
	Material *StudyMaterial `gorm:"foreignKey:MaterialID;constraint:OnDelete:CASCADE" json:"material,omitempty"`
	Uploader *User          `gorm:"foreignKey:UploaderID;constraint:OnDelete:CASCADE" json:"uploader,omitempty"`
}

func (UploadAudit) TableName() string {
	return "upload_audits"
}
