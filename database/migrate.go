package database

import (
	"gorm.io/gorm"

	"lciportal_backend/internal/models"
)

// Migrate applies the schema for every persisted model.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Quote{},
		&models.Message{},
		&models.MentorshipApplication{},
	)
}
