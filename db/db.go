package db

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Init opens the connection pool. Foreign key constraint creation stays
// enabled: the schema's NO ACTION constraints are the ground truth for
// referential integrity, hard deletes of referenced rows must fail there.
func Init(databaseURL string) (*gorm.DB, error) {
	gdb, err := gorm.Open(postgres.Open(databaseURL), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}
	return gdb, nil
}
