package dto

import "campushub/internal/models"

// AssignCoordinatorRequest used for POST /api/coordinators
type AssignCoordinatorRequest struct {
	UserID       string  `json:"user_id" binding:"required,uuid"`
	DepartmentID int64   `json:"department_id" binding:"required"`
	Role         string  `json:"role" binding:"required,oneof=cr coordinator"`
	ContactInfo  *string `json:"contact_info,omitempty"`
}

// CoordinatorResponse DTO for responses
type CoordinatorResponse struct {
	ID           int64   `json:"id"`
	UserID       string  `json:"user_id"`
	UserName     string  `json:"user_name,omitempty"`
	DepartmentID int64   `json:"department_id"`
	Role         string  `json:"role"`
	ContactInfo  *string `json:"contact_info,omitempty"`
}

// Converters
func (d AssignCoordinatorRequest) ToModel() models.Coordinator {
	return models.Coordinator{
		UserID:       d.UserID,
		DepartmentID: d.DepartmentID,
		Role:         d.Role,
		ContactInfo:  d.ContactInfo,
	}
}

func FromCoordinatorToResponse(m models.Coordinator) CoordinatorResponse {
	resp := CoordinatorResponse{
		ID:           m.ID,
		UserID:       m.UserID,
		DepartmentID: m.DepartmentID,
		Role:         m.Role,
		ContactInfo:  m.ContactInfo,
	}
	if m.User != nil {
		resp.UserName = m.User.Name
	}
	return resp
}
