package models

// Coordinator roles.
const (
	CoordRoleClassRep    = "cr"
	CoordRoleCoordinator = "coordinator"
)

// Coordinator grants a user moderation capability for a department.
// Holding any coordinator row makes the user a verifier.
type Coordinator struct {
	ID           int64   `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID       string  `gorm:"type:uuid;not null;uniqueIndex:idx_coordinator_user_dept_role" json:"user_id"`
	DepartmentID int64   `gorm:"not null;uniqueIndex:idx_coordinator_user_dept_role;index:idx_coordinator_dept_role" json:"department_id"`
	Role         string  `gorm:"not null;uniqueIndex:idx_coordinator_user_dept_role;index:idx_coordinator_dept_role" json:"role"`
	ContactInfo  *string `gorm:"type:text" json:"contact_info,omitempty"`

	// Associations
	User       *User       `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"user,omitempty"`
	Department *Department `gorm:"foreignKey:DepartmentID;constraint:OnDelete:CASCADE" json:"department,omitempty"`
}

func (Coordinator) TableName() string {
	return "coordinators"
}
