package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"

	"campushub/database"
	"campushub/internal/config"
	"campushub/internal/logger"
	"campushub/internal/middleware/auth"
	"campushub/internal/models"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// seedFile mirrors the JSON layout of seed_data.json: departments with
// their faculty rosters, plus an optional bootstrap admin account.
type seedFile struct {
	Admin       *seedAdmin       `json:"admin,omitempty"`
	Departments []seedDepartment `json:"departments"`
}

type seedAdmin struct {
	Name     string `json:"name"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type seedDepartment struct {
	Name          string        `json:"name"`
	ShortCode     string        `json:"short_code"`
	Description   *string       `json:"description,omitempty"`
	ContactEmails []string      `json:"contact_emails,omitempty"`
	Faculty       []seedFaculty `json:"faculty,omitempty"`
}

type seedFaculty struct {
	Name              string  `json:"name"`
	Title             *string `json:"title,omitempty"`
	ContactEmail      *string `json:"contact_email,omitempty"`
	ResearchInterests *string `json:"research_interests,omitempty"`
	OfficeHours       *string `json:"office_hours,omitempty"`
	Status            string  `json:"status,omitempty"`
}

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	appLog, err := logger.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	defer appLog.Sync()

	db, err := database.ConnectDB(cfg, appLog)
	if err != nil {
		appLog.Fatal("database connection failed", "error", err)
	}

	path := "./seed_data.json"
	if len(os.Args) > 1 {
		path = os.Args[1]
	}

	seed, err := readSeedFile(path)
	if err != nil {
		appLog.Fatal("failed to read seed file", "path", path, "error", err)
	}
	appLog.Info("seed file loaded", "path", path, "departments", len(seed.Departments))

	err = db.Transaction(func(tx *gorm.DB) error {
		departments, faculty, err := importDepartments(tx, seed.Departments)
		if err != nil {
			return err
		}
		appLog.Info("departments imported", "departments", departments, "faculty", faculty)

		if seed.Admin != nil {
			created, err := importAdmin(tx, seed.Admin)
			if err != nil {
				return err
			}
			if created {
				appLog.Info("admin account created", "username", seed.Admin.Username)
			} else {
				appLog.Info("admin account already exists", "username", seed.Admin.Username)
			}
		}
		return nil
	})
	if err != nil {
		appLog.Fatal("seed import failed", "error", err)
	}

	appLog.Info("seed import finished")
}

func readSeedFile(path string) (*seedFile, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var seed seedFile
	if err := json.Unmarshal(raw, &seed); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return &seed, nil
}

// importDepartments upserts departments by short code and fills in each
// roster. Faculty rows already present (same name within the
// department) are left alone so reruns stay idempotent.
func importDepartments(tx *gorm.DB, seeds []seedDepartment) (int, int, error) {
	departments, facultyRows := 0, 0

	for _, d := range seeds {
		dept := models.Department{
			Name:          d.Name,
			ShortCode:     d.ShortCode,
			Description:   d.Description,
			ContactEmails: datatypes.JSONSlice[string](d.ContactEmails),
		}
		if dept.ContactEmails == nil {
			dept.ContactEmails = datatypes.JSONSlice[string]{}
		}

		result := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "short_code"}},
			DoNothing: true,
		}).Create(&dept)
		if result.Error != nil {
			return departments, facultyRows, fmt.Errorf("department %s: %w", d.ShortCode, result.Error)
		}
		if result.RowsAffected > 0 {
			departments++
		}

		// The upsert leaves ID zero when the row already existed
		if dept.ID == 0 {
			if err := tx.Where("short_code = ?", d.ShortCode).First(&dept).Error; err != nil {
				return departments, facultyRows, fmt.Errorf("department %s lookup: %w", d.ShortCode, err)
			}
		}

		for _, f := range d.Faculty {
			var existing models.Faculty
			err := tx.Where("department_id = ? AND name = ?", dept.ID, f.Name).First(&existing).Error
			if err == nil {
				continue
			}
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return departments, facultyRows, err
			}

			status := f.Status
			if status == "" {
				status = models.FacultyActive
			}
			member := models.Faculty{
				DepartmentID:      dept.ID,
				Name:              f.Name,
				Title:             f.Title,
				ContactEmail:      f.ContactEmail,
				ResearchInterests: f.ResearchInterests,
				OfficeHours:       f.OfficeHours,
				Status:            status,
			}
			if err := tx.Create(&member).Error; err != nil {
				return departments, facultyRows, fmt.Errorf("faculty %s: %w", f.Name, err)
			}
			facultyRows++
		}
	}

	return departments, facultyRows, nil
}

// importAdmin creates the bootstrap staff/superuser account unless the
// username is already taken.
func importAdmin(tx *gorm.DB, admin *seedAdmin) (bool, error) {
	var existing models.User
	err := tx.Where("username = ?", admin.Username).First(&existing).Error
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, err
	}

	hashed, err := auth.HashPassword(admin.Password)
	if err != nil {
		return false, err
	}

	user := models.User{
		Name:        admin.Name,
		Username:    admin.Username,
		Email:       admin.Email,
		Password:    hashed,
		Role:        models.RoleAuthority,
		IsStaff:     true,
		IsSuperuser: true,
	}
	if err := tx.Create(&user).Error; err != nil {
		return false, err
	}
	return true, nil
}
