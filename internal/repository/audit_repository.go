package repository

import (
	"context"
	"fmt"

	"campushub/internal/models"

	"gorm.io/gorm"
)

// AuditRepository appends and reads the immutable upload audit trail.
// There is deliberately no update or delete.
type AuditRepository interface {
	Create(ctx context.Context, audit *models.UploadAudit) error
	ListByMaterial(ctx context.Context, materialID int64) ([]models.UploadAudit, error)
}

type auditRepository struct {
	db *gorm.DB
}

func NewAuditRepository(db *gorm.DB) AuditRepository {
	return &auditRepository{db: db}
}

func (r *auditRepository) Create(ctx context.Context, audit *models.UploadAudit) error {
	if err := r.db.WithContext(ctx).Create(audit).Error; err != nil {
		return fmt.Errorf("create audit entry: %w", err)
	}
	return nil
}

func (r *auditRepository) ListByMaterial(ctx context.Context, materialID int64) ([]models.UploadAudit, error) {
	var audits []models.UploadAudit
	if err := r.db.WithContext(ctx).
		Where("material_id = ?", materialID).
		Order("timestamp DESC").
		Find(&audits).Error; err != nil {
		return nil, fmt.Errorf("list audit trail: %w", err)
	}
	return audits, nil
}
