package db

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/doganzub/calendar-app/models"
)

// Migrate creates or updates the six tables with their uniqueness and
// foreign key constraints.
func Migrate(gdb *gorm.DB) error {
	err := gdb.AutoMigrate(
		&models.User{},
		&models.Customer{},
		&models.Charge{},
		&models.Status{},
		&models.Todo{},
		&models.Document{},
	)
	if err != nil {
		return fmt.Errorf("run migrations: %w", err)
	}
	return nil
}
