package database

import (
	"fmt"
	"log"
)

// RunMigrations creates the necessary database tables
func RunMigrations() error {
	if DB == nil {
		return fmt.Errorf("database connection not initialized")
	}

	// One row per cart blob; the value is the serialized line-item list.
	createCartsTable := `
	CREATE TABLE IF NOT EXISTS carts (
		key TEXT PRIMARY KEY,
		value TEXT NOT NULL,
		updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	);
	`

	_, err := DB.Exec(createCartsTable)
	if err != nil {
		return fmt.Errorf("failed to create carts table: %w", err)
	}

	log.Println("Database migrations completed successfully")
	return nil
}
