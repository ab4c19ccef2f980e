package database

import (
	"fmt"

	"github.com/sefazor/stripe-memberships/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// NewDatabase connects to the Supabase Postgres instance behind databaseURL.
func NewDatabase(databaseURL string) (*gorm.DB, error) {
	if databaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is not set")
	}

	db, err := gorm.Open(postgres.Open(databaseURL), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return db, nil
}

// RunMigrations is only meant for local databases; on Supabase the schema is
// owned by the dashboard migrations.
func RunMigrations(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Membership{},
	)
}
