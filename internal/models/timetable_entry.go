package models

import "time"

type TimetableEntry struct {
	ID           int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	DepartmentID int64     `gorm:"not null;index:idx_timetable_dept_sem_date" json:"department_id"`
	Semester     int       `gorm:"not null;index:idx_timetable_dept_sem_date" json:"semester"`
	CourseCode   string    `gorm:"size:20;not null" json:"course_code"` // e.g. CS101
	CourseName   string    `gorm:"not null" json:"course_name"`
	Date         time.Time `gorm:"type:date;not null;index:idx_timetable_dept_sem_date;index:idx_timetable_date_start" json:"date"`
	StartTime    string    `gorm:"type:time;not null;index:idx_timetable_date_start" json:"start_time"`
	EndTime      string    `gorm:"type:time;not null" json:"end_time"`
	Venue        string    `gorm:"size:100;not null" json:"venue"`
	InstructorID *int64    `json:"instructor_id,omitempty"`
	Description  *string   `gorm:"type:text" json:"description,omitempty"`

	// Associations
	Department *Department `gorm:"foreignKey:DepartmentID;constraint:OnDelete:CASCADE" json:"department,omitempty"`
	Instructor *Faculty    `gorm:"foreignKey:InstructorID;constraint:OnDelete:SET NULL" json:"instructor,omitempty"`
}

func (TimetableEntry) TableName() string {
	return "timetable_entries"
}
