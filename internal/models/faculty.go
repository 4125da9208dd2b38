package models

// Faculty member statuses.
const (
	FacultyActive  = "active"
	FacultyRetired = "retired"
)

type Faculty struct {
	ID                int64   `gorm:"primaryKey;autoIncrement" json:"id"`
	DepartmentID      int64   `gorm:"not null;index:idx_faculty_dept_status" json:"department_id"`
	Name              string  `gorm:"not null" json:"name"`
	Title             *string `json:"title,omitempty"` // e.g. Professor, Associate Professor
	PhotoURL          *string `json:"photo_url,omitempty"`
	Biography         *string `gorm:"type:text" json:"biography,omitempty"`
	ResearchInterests *string `gorm:"type:text" json:"research_interests,omitempty"`
	ContactEmail      *string `json:"contact_email,omitempty"`
	OfficeHours       *string `json:"office_hours,omitempty"`
	Phone             *string `json:"phone,omitempty"`
	Status            string  `gorm:"default:'active';index:idx_faculty_dept_status" json:"status"`

	// Associations
	Department *Department `gorm:"foreignKey:DepartmentID;constraint:OnDelete:CASCADE" json:"department,omitempty"`
}

func (Faculty) TableName() string {
	return "faculty"
}
