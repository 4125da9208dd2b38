package dto

import (
	"time"

	"campushub/internal/models"
)

// TimetableFilters is the typed filter set for timetable listings.
// Without a date filter, listings default to the next 14 days.
type TimetableFilters struct {
	DepartmentID *int64
	Semester     *int
	Date         *time.Time
}

// CreateTimetableEntryRequest used for POST /api/timetable
type CreateTimetableEntryRequest struct {
	DepartmentID int64   `json:"department_id" binding:"required"`
	Semester     int     `json:"semester" binding:"required,min=1"`
	CourseCode   string  `json:"course_code" binding:"required,max=20"`
	CourseName   string  `json:"course_name" binding:"required,max=200"`
	Date         string  `json:"date" binding:"required,datetime=2006-01-02"`
	StartTime    string  `json:"start_time" binding:"required,datetime=15:04"`
	EndTime      string  `json:"end_time" binding:"required,datetime=15:04"`
	Venue        string  `json:"venue" binding:"required,max=100"`
	InstructorID *int64  `json:"instructor_id,omitempty"`
	Description  *string `json:"description,omitempty"`
}

// TimetableEntryResponse DTO for responses
type TimetableEntryResponse struct {
	ID             int64   `json:"id"`
	DepartmentID   int64   `json:"department_id"`
	DepartmentCode string  `json:"department_code,omitempty"`
	Semester       int     `json:"semester"`
	CourseCode     string  `json:"course_code"`
	CourseName     string  `json:"course_name"`
	Date           string  `json:"date"`
	StartTime      string  `json:"start_time"`
	EndTime        string  `json:"end_time"`
	Venue          string  `json:"venue"`
	InstructorID   *int64  `json:"instructor_id,omitempty"`
	Instructor     string  `json:"instructor,omitempty"`
	Description    *string `json:"description,omitempty"`
}

// TimetableListResponse: list of timetable entries
type TimetableListResponse struct {
	Items []TimetableEntryResponse `json:"items"`
	Total int                      `json:"total"`
}

// Converters
func (d CreateTimetableEntryRequest) ToModel() (models.TimetableEntry, error) {
	date, err := time.Parse("2006-01-02", d.Date)
	if err != nil {
		return models.TimetableEntry{}, err
	}
	return models.TimetableEntry{
		DepartmentID: d.DepartmentID,
		Semester:     d.Semester,
		CourseCode:   d.CourseCode,
		CourseName:   d.CourseName,
		Date:         date,
		StartTime:    d.StartTime,
		EndTime:      d.EndTime,
		Venue:        d.Venue,
		InstructorID: d.InstructorID,
		Description:  d.Description,
	}, nil
}

func FromTimetableEntryToResponse(m models.TimetableEntry) TimetableEntryResponse {
	resp := TimetableEntryResponse{
		ID:           m.ID,
		DepartmentID: m.DepartmentID,
		Semester:     m.Semester,
		CourseCode:   m.CourseCode,
		CourseName:   m.CourseName,
		Date:         m.Date.Format("2006-01-02"),
		StartTime:    m.StartTime,
		EndTime:      m.EndTime,
		Venue:        m.Venue,
		InstructorID: m.InstructorID,
		Description:  m.Description,
	}
	if m.Department != nil {
		resp.DepartmentCode = m.Department.ShortCode
	}
	if m.Instructor != nil {
		resp.Instructor = m.Instructor.Name
	}
	return resp
}
