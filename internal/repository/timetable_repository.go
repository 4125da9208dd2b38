package repository

import (
	"context"
	"fmt"
	"time"

	"campushub/internal/dto"
	"campushub/internal/models"

	"gorm.io/gorm"
)

type TimetableRepository interface {
	Create(ctx context.Context, entry *models.TimetableEntry) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, filters dto.TimetableFilters) ([]models.TimetableEntry, error)
	UpcomingByDepartment(ctx context.Context, departmentID int64, semester *int) ([]models.TimetableEntry, error)
}

type timetableRepository struct {
	db *gorm.DB
}

func NewTimetableRepository(db *gorm.DB) TimetableRepository {
	return &timetableRepository{db: db}
}

func (r *timetableRepository) Create(ctx context.Context, entry *models.TimetableEntry) error {
	if err := r.db.WithContext(ctx).Create(entry).Error; err != nil {
		return fmt.Errorf("create timetable entry: %w", err)
	}
	return nil
}

func (r *timetableRepository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&models.TimetableEntry{}, id)
	if result.Error != nil {
		return fmt.Errorf("delete timetable entry: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// List applies the typed filters. Without an explicit date it defaults
// to the next 14 days.
func (r *timetableRepository) List(ctx context.Context, filters dto.TimetableFilters) ([]models.TimetableEntry, error) {
	query := r.db.WithContext(ctx).
		Preload("Department").
		Preload("Instructor").
		Order("date ASC").
		Order("start_time ASC")

	if filters.DepartmentID != nil {
		query = query.Where("department_id = ?", *filters.DepartmentID)
	}
	if filters.Semester != nil {
		query = query.Where("semester = ?", *filters.Semester)
	}
	if filters.Date != nil {
		query = query.Where("date = ?", filters.Date.Format("2006-01-02"))
	} else {
		today := time.Now().Truncate(24 * time.Hour)
		end := today.AddDate(0, 0, 14)
		query = query.Where("date >= ? AND date <= ?", today.Format("2006-01-02"), end.Format("2006-01-02"))
	}

	var entries []models.TimetableEntry
	if err := query.Find(&entries).Error; err != nil {
		return nil, fmt.Errorf("list timetable entries: %w", err)
	}
	return entries, nil
}

func (r *timetableRepository) UpcomingByDepartment(ctx context.Context, departmentID int64, semester *int) ([]models.TimetableEntry, error) {
	query := r.db.WithContext(ctx).
		Preload("Instructor").
		Where("department_id = ?", departmentID).
		Where("date >= ?", time.Now().Format("2006-01-02")).
		Order("date ASC").
		Order("start_time ASC")

	if semester != nil {
		query = query.Where("semester = ?", *semester)
	}

	var entries []models.TimetableEntry
	if err := query.Find(&entries).Error; err != nil {
		return nil, fmt.Errorf("department timetable: %w", err)
	}
	return entries, nil
}
