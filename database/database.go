package database

import (
	"errors"
	"fmt"
	"log"
	"os"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"eduportal/models"
	"eduportal/models/portal"
)

// Connect establishes a connection to PostgreSQL, runs migrations and seeds
// the lookup tables. The caller owns the returned handle.
func Connect() (*gorm.DB, error) {
	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("connect to PostgreSQL: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("get database instance: %w", err)
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(0)

	if err := Migrate(db); err != nil {
		return nil, err
	}
	return db, nil
}

// Migrate performs database migrations and seeds lookup rows. It is also
// used by tests against an in-memory database.
func Migrate(db *gorm.DB) error {
	log.Println("Running Migrations...")

	err := db.AutoMigrate(
		&models.User{},
		&models.Permission{},
		&portal.Course{},
		&portal.Material{},
		&portal.BookFormat{},
		&portal.Skill{},
		&portal.CourseMaterial{},
		&portal.CourseSkill{},
		&portal.CourseStatus{},
		&portal.Enrollment{},
		&portal.MaterialCompletion{},
		&portal.SkillAward{},
		&portal.Certificate{},
	)
	if err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}

	if err := seedCourseStatuses(db); err != nil {
		return err
	}
	if err := seedBookFormats(db); err != nil {
		return err
	}

	log.Println("Migrations completed successfully.")
	return nil
}

// seedCourseStatuses inserts the enrollment status lookup rows. The rows are
// required at startup; the services treat their absence as a data fault.
func seedCourseStatuses(db *gorm.DB) error {
	for _, name := range []string{"IN_PROGRESS", "COMPLETED"} {
		var status portal.CourseStatus
		err := db.Where("name = ?", name).First(&status).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			if err := db.Create(&portal.CourseStatus{Name: name}).Error; err != nil {
				return fmt.Errorf("seed course status %s: %w", name, err)
			}
			continue
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func seedBookFormats(db *gorm.DB) error {
	for _, name := range []string{"Pdf", "Epub", "Txt"} {
		var format portal.BookFormat
		err := db.Where("name = ?", name).First(&format).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			if err := db.Create(&portal.BookFormat{Name: name}).Error; err != nil {
				return fmt.Errorf("seed book format %s: %w", name, err)
			}
			continue
		}
		if err != nil {
			return err
		}
	}
	return nil
}
