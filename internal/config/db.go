package config

import (
	"context"
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

// Connect opens the database connection and runs migrations for the given
// models. TranslateError is required so unique-constraint violations surface
// as gorm.ErrDuplicatedKey (slug retry, topic find-or-create rely on it).
func Connect(ctx context.Context, dsn string, models ...interface{}) error {
	if dsn == "" {
		return fmt.Errorf("DATABASE_DSN is empty")
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}

	if len(models) > 0 {
		if err := db.WithContext(ctx).AutoMigrate(models...); err != nil {
			return fmt.Errorf("failed to run migrations: %w", err)
		}
	}

	DB = db
	return nil
}
