package dto

import (
	"time"

	"campushub/internal/models"
)

// CreateDepartmentRequest used for POST /api/departments
type CreateDepartmentRequest struct {
	Name          string   `json:"name" binding:"required,max=200"`
	ShortCode     string   `json:"short_code" binding:"required,max=10"`
	Description   *string  `json:"description,omitempty"`
	ContactEmails []string `json:"contact_emails,omitempty" binding:"omitempty,dive,email"`
}

// UpdateDepartmentRequest used for PUT /api/departments/:id (partial updates allowed)
type UpdateDepartmentRequest struct {
	Name          *string  `json:"name,omitempty"`
	ShortCode     *string  `json:"short_code,omitempty"`
	Description   *string  `json:"description,omitempty"`
	ContactEmails []string `json:"contact_emails,omitempty" binding:"omitempty,dive,email"`
}

// DepartmentResponse DTO for responses
type DepartmentResponse struct {
	ID            int64     `json:"id"`
	Name          string    `json:"name"`
	ShortCode     string    `json:"short_code"`
	Description   *string   `json:"description,omitempty"`
	ContactEmails []string  `json:"contact_emails"`
	CreatedAt     time.Time `json:"created_at"`
}

// DepartmentDetailResponse adds the faculty roster
type DepartmentDetailResponse struct {
	DepartmentResponse
	Faculty []FacultyResponse `json:"faculty"`
}

// Converters
func (d CreateDepartmentRequest) ToModel() models.Department {
	emails := d.ContactEmails
	if emails == nil {
		emails = []string{}
	}
	return models.Department{
		Name:          d.Name,
		ShortCode:     d.ShortCode,
		Description:   d.Description,
		ContactEmails: emails,
	}
}

func (d UpdateDepartmentRequest) ApplyTo(m *models.Department) {
	if d.Name != nil {
		m.Name = *d.Name
	}
	if d.ShortCode != nil {
		m.ShortCode = *d.ShortCode
	}
	if d.Description != nil {
		m.Description = d.Description
	}
	if d.ContactEmails != nil {
		m.ContactEmails = d.ContactEmails
	}
}

func FromDepartmentToResponse(m models.Department) DepartmentResponse {
	return DepartmentResponse{
		ID:            m.ID,
		Name:          m.Name,
		ShortCode:     m.ShortCode,
		Description:   m.Description,
		ContactEmails: m.ContactEmails,
		CreatedAt:     m.CreatedAt,
	}
}
