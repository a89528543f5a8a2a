package storage

import (
	"database/sql"
	"fmt"
	"time"
)

// PostgresStore keeps each cart blob in one row of the carts table.
type PostgresStore struct {
	db *sql.DB
}

// NewPostgresStore creates a store over an existing database connection.
func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

// Get returns the value stored under key, or ErrNotFound.
func (s *PostgresStore) Get(key string) ([]byte, error) {
	query := `SELECT value FROM carts WHERE key = $1`

	var value []byte
	err := s.db.QueryRow(query, key).Scan(&value)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get cart value: %w", err)
	}
	return value, nil
}

// Put stores value under key, replacing any previous value.
func (s *PostgresStore) Put(key string, value []byte) error {
	query := `
		INSERT INTO carts (key, value, updated_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (key) DO UPDATE SET value = $2, updated_at = $3
	`

	if _, err := s.db.Exec(query, key, value, time.Now()); err != nil {
		return fmt.Errorf("failed to store cart value: %w", err)
	}
	return nil
}

// Delete removes key if present.
func (s *PostgresStore) Delete(key string) error {
	query := `DELETE FROM carts WHERE key = $1`

	if _, err := s.db.Exec(query, key); err != nil {
		return fmt.Errorf("failed to delete cart value: %w", err)
	}
	return nil
}
