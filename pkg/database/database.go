package database

import (
	"expense-tracker-backend/pkg/config"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// NewPostgresConnection opens the database connection used by all
// repositories. TranslateError is enabled so a unique-index violation
// comes back as gorm.ErrDuplicatedKey instead of a driver-specific error.
func NewPostgresConnection(cfg *config.Config) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		return nil, err
	}
	return db, nil
}
