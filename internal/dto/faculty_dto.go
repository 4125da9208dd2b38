package dto

import "campushub/internal/models"

// CreateFacultyRequest used for POST /api/faculty
type CreateFacultyRequest struct {
	DepartmentID      int64   `json:"department_id" binding:"required"`
	Name              string  `json:"name" binding:"required,max=150"`
	Title             *string `json:"title,omitempty"`
	PhotoURL          *string `json:"photo_url,omitempty" binding:"omitempty,url"`
	Biography         *string `json:"biography,omitempty"`
	ResearchInterests *string `json:"research_interests,omitempty"`
	ContactEmail      *string `json:"contact_email,omitempty" binding:"omitempty,email"`
	OfficeHours       *string `json:"office_hours,omitempty"`
	Phone             *string `json:"phone,omitempty"`
	Status            string  `json:"status" binding:"omitempty,oneof=active retired"`
}

// UpdateFacultyRequest used for PUT /api/faculty/:id (partial updates allowed)
type UpdateFacultyRequest struct {
	Name              *string `json:"name,omitempty"`
	Title             *string `json:"title,omitempty"`
	PhotoURL          *string `json:"photo_url,omitempty" binding:"omitempty,url"`
	Biography         *string `json:"biography,omitempty"`
	ResearchInterests *string `json:"research_interests,omitempty"`
	ContactEmail      *string `json:"contact_email,omitempty" binding:"omitempty,email"`
	OfficeHours       *string `json:"office_hours,omitempty"`
	Phone             *string `json:"phone,omitempty"`
	Status            *string `json:"status,omitempty" binding:"omitempty,oneof=active retired"`
}

// FacultyResponse DTO for responses
type FacultyResponse struct {
	ID                int64   `json:"id"`
	DepartmentID      int64   `json:"department_id"`
	DepartmentCode    string  `json:"department_code,omitempty"`
	Name              string  `json:"name"`
	Title             *string `json:"title,omitempty"`
	PhotoURL          *string `json:"photo_url,omitempty"`
	Biography         *string `json:"biography,omitempty"`
	ResearchInterests *string `json:"research_interests,omitempty"`
	ContactEmail      *string `json:"contact_email,omitempty"`
	OfficeHours       *string `json:"office_hours,omitempty"`
	Phone             *string `json:"phone,omitempty"`
	Status            string  `json:"status"`
}

// Converters
func (d CreateFacultyRequest) ToModel() models.Faculty {
	status := d.Status
	if status == "" {
		status = models.FacultyActive
	}
	return models.Faculty{
		DepartmentID:      d.DepartmentID,
		Name:              d.Name,
		Title:             d.Title,
		PhotoURL:          d.PhotoURL,
		Biography:         d.Biography,
		ResearchInterests: d.ResearchInterests,
		ContactEmail:      d.ContactEmail,
		OfficeHours:       d.OfficeHours,
		Phone:             d.Phone,
		Status:            status,
	}
}

func (d UpdateFacultyRequest) ApplyTo(m *models.Faculty) {
	if d.Name != nil {
		m.Name = *d.Name
	}
	if d.Title != nil {
		m.Title = d.Title
	}
	if d.PhotoURL != nil {
		m.PhotoURL = d.PhotoURL
	}
	if d.Biography != nil {
		m.Biography = d.Biography
	}
	if d.ResearchInterests != nil {
		m.ResearchInterests = d.ResearchInterests
	}
	if d.ContactEmail != nil {
		m.ContactEmail = d.ContactEmail
	}
	if d.OfficeHours != nil {
		m.OfficeHours = d.OfficeHours
	}
	if d.Phone != nil {
		m.Phone = d.Phone
	}
	if d.Status != nil {
		m.Status = *d.Status
	}
}

func FromFacultyToResponse(m models.Faculty) FacultyResponse {
	resp := FacultyResponse{
		ID:                m.ID,
		DepartmentID:      m.DepartmentID,
		Name:              m.Name,
		Title:             m.Title,
		PhotoURL:          m.PhotoURL,
		Biography:         m.Biography,
		ResearchInterests: m.ResearchInterests,
		ContactEmail:      m.ContactEmail,
		OfficeHours:       m.OfficeHours,
		Phone:             m.Phone,
		Status:            m.Status,
	}
	if m.Department != nil {
		resp.DepartmentCode = m.Department.ShortCode
	}
	return resp
}
