package database

import (
	"fmt"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"campushub/internal/config"
	"campushub/internal/logger"
	"campushub/internal/models"
)

// ConnectDB opens the Postgres connection and migrates the schema.
func ConnectDB(cfg *config.Config, log *logger.Logger) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{
		TranslateError: true, // map driver errors to gorm.ErrDuplicatedKey etc.
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to access database pool: %w", err)
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(time.Hour)

	if err := sqlDB.Ping(); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := runMigrations(db, log); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Info("Connected to the database successfully")
	return db, nil
}

func runMigrations(db *gorm.DB, log *logger.Logger) error {
	err := db.AutoMigrate(
		&models.User{},
		&models.RefreshToken{},
		&models.Department{},
		&models.Faculty{},
		&models.StudyMaterial{},
		&models.UploadAudit{},
		&models.TimetableEntry{},
		&models.Notification{},
		&models.Coordinator{},
		&models.SearchQueryLog{},
		&models.UserFavoriteMaterial{},
		&models.RecentlyViewedMaterial{},
	)
	if err != nil {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}

	log.Info("Database migrations applied successfully")
	return nil
}
