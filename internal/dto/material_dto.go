package dto

import (
	"time"

	"campushub/internal/models"
)

// MaterialFilters is the typed filter set for material listings,
// constructed once at the handler boundary. Nil fields mean "not
// applied"; malformed numeric params are dropped before this struct is
// built (lenient filtering).
type MaterialFilters struct {
	DepartmentID *int64
	Semester     *int
	Year         *int
}

// Empty reports whether no filter is applied. Unfiltered listings are
// never logged to the search telemetry.
func (f MaterialFilters) Empty() bool {
	return f.DepartmentID == nil && f.Semester == nil && f.Year == nil
}

// UploadMaterialRequest: payload for POST /api/materials
type UploadMaterialRequest struct {
	DepartmentID int64    `json:"department_id" binding:"required"`
	Title        string   `json:"title" binding:"required,max=300"`
	Description  *string  `json:"description,omitempty"`
	FileDriveID  *string  `json:"file_drive_id,omitempty"`
	FileType     string   `json:"file_type" binding:"required,oneof=pdf video link"`
	SubjectTags  []string `json:"subject_tags,omitempty"`
	Semester     int      `json:"semester" binding:"required,min=1"`
	Year         int      `json:"year" binding:"required,min=1900"`
}

// ModerationRequest: payload for POST /api/materials/:material_id/moderation.
// Unknown actions fail binding before reaching the workflow.
type ModerationRequest struct {
	Action string `json:"action" binding:"required,oneof=approve reject request_changes"`
	Reason string `json:"reason,omitempty"`
}

// MaterialResponse DTO for responses
type MaterialResponse struct {
	ID                 int64      `json:"id"`
	DepartmentID       int64      `json:"department_id"`
	DepartmentCode     string     `json:"department_code,omitempty"`
	UploaderUserID     string     `json:"uploader_user_id"`
	Title              string     `json:"title"`
	Description        *string    `json:"description,omitempty"`
	FileDriveID        *string    `json:"file_drive_id,omitempty"`
	FileType           string     `json:"file_type"`
	SubjectTags        []string   `json:"subject_tags"`
	Semester           int        `json:"semester"`
	Year               int        `json:"year"`
	VerificationStatus string     `json:"verification_status"`
	VerifierID         *string    `json:"verifier_id,omitempty"`
	UploadedAt         time.Time  `json:"uploaded_at"`
	VerifiedAt         *time.Time `json:"verified_at,omitempty"`
	DownloadsCount     int64      `json:"downloads_count"`
	ViewsCount         int64      `json:"views_count"`
	ThumbsUpCount      int64      `json:"thumbs_up_count"`
	FavoritesCount     int64      `json:"favorites_count"`
}

// MaterialDetailResponse adds the caller-specific favorite flag
type MaterialDetailResponse struct {
	MaterialResponse
	IsFavorite bool `json:"is_favorite"`
}

// MaterialListResponse: list of materials
type MaterialListResponse struct {
	Items []MaterialResponse `json:"items"`
	Total int                `json:"total"`
}

// DownloadResponse: counters after a download plus the redirect target
type DownloadResponse struct {
	MaterialID     int64  `json:"material_id"`
	DownloadsCount int64  `json:"downloads_count"`
	RedirectURL    string `json:"redirect_url,omitempty"`
}

// AuditResponse: one audit trail row
type AuditResponse struct {
	ID         int64     `json:"id"`
	MaterialID int64     `json:"material_id"`
	UploaderID string    `json:"uploader_id"`
	Action     string    `json:"action"`
	Reason     *string   `json:"reason,omitempty"`
	Timestamp  time.Time `json:"timestamp"`
}

// Converters
func (d UploadMaterialRequest) ToModel(uploaderID string) models.StudyMaterial {
	tags := d.SubjectTags
	if tags == nil {
		tags = []string{}
	}
	return models.StudyMaterial{
		DepartmentID:       d.DepartmentID,
		UploaderUserID:     uploaderID,
		Title:              d.Title,
		Description:        d.Description,
		FileDriveID:        d.FileDriveID,
		FileType:           d.FileType,
		SubjectTags:        tags,
		Semester:           d.Semester,
		Year:               d.Year,
		VerificationStatus: models.StatusPending,
	}
}

func FromMaterialToResponse(m models.StudyMaterial) MaterialResponse {
	resp := MaterialResponse{
		ID:                 m.ID,
		DepartmentID:       m.DepartmentID,
		UploaderUserID:     m.UploaderUserID,
		Title:              m.Title,
		Description:        m.Description,
		FileDriveID:        m.FileDriveID,
		FileType:           m.FileType,
		SubjectTags:        m.SubjectTags,
		Semester:           m.Semester,
		Year:               m.Year,
		VerificationStatus: m.VerificationStatus,
		VerifierID:         m.VerifierID,
		UploadedAt:         m.UploadedAt,
		VerifiedAt:         m.VerifiedAt,
		DownloadsCount:     m.DownloadsCount,
		ViewsCount:         m.ViewsCount,
		ThumbsUpCount:      m.ThumbsUpCount,
		FavoritesCount:     m.FavoritesCount,
	}
	if m.Department != nil {
		resp.DepartmentCode = m.Department.ShortCode
	}
	return resp
}

func FromAuditToResponse(a models.UploadAudit) AuditResponse {
	return AuditResponse{
		ID:         a.ID,
		MaterialID: a.MaterialID,
		UploaderID: a.UploaderID,
		Action:     a.Action,
		Reason:     a.Reason,
		Timestamp:  a.Timestamp,
	}
}
