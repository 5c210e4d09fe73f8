package database

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"secretsapp/models"
)

// Connect opens the Postgres connection and migrates the users relation.
// The handle is returned to the caller for injection; TranslateError lets
// unique-constraint violations surface as gorm.ErrDuplicatedKey.
func Connect(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, fmt.Errorf("connecting to database: %w", err)
	}

	if err := db.AutoMigrate(&models.User{}); err != nil {
		return nil, fmt.Errorf("migrating schema: %w", err)
	}

	return db, nil
}
