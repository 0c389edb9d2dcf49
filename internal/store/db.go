// Package store persists cleaned records to SQLite.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"userclean/internal/models"
)

const usersTable = `
CREATE TABLE IF NOT EXISTS users (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	first_name TEXT NOT NULL,
	last_name TEXT NOT NULL,
	email TEXT NOT NULL,
	address TEXT NOT NULL,
	created_at DATETIME
);
`

// DB wraps a SQLite database holding cleaned users.
type DB struct {
	db *sql.DB
}

// Open opens (or creates) the database at path and ensures the schema exists.
func Open(path string) (*DB, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database: %w", err)
	}

	if _, err := db.Exec(usersTable); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create users table: %w", err)
	}

	return &DB{db: db}, nil
}

// Close closes the database.
func (d *DB) Close() error {
	return d.db.Close()
}

// SaveRecords replaces the stored users with records, keeping their order.
func (d *DB) SaveRecords(ctx context.Context, records []models.NormalizedRecord) (err error) {
	tx, err := d.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer func() {
		if err != nil {
			tx.Rollback()
		}
	}()

	if _, err = tx.ExecContext(ctx, `DELETE FROM users`); err != nil {
		return fmt.Errorf("failed to clear users: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO users (first_name, last_name, email, address, created_at) VALUES (?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	now := time.Now().UTC()
	for _, rec := range records {
		if _, err = stmt.ExecContext(ctx, rec.FirstName, rec.LastName, rec.Email, rec.Address, now); err != nil {
			return fmt.Errorf("failed to insert %s: %w", rec.Email, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit users: %w", err)
	}

	return nil
}

// LoadRecords returns all stored users in insertion order.
func (d *DB) LoadRecords(ctx context.Context) ([]models.NormalizedRecord, error) {
	rows, err := d.db.QueryContext(ctx, `SELECT first_name, last_name, email, address FROM users ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := []models.NormalizedRecord{}
	for rows.Next() {
		var rec models.NormalizedRecord
		if err := rows.Scan(&rec.FirstName, &rec.LastName, &rec.Email, &rec.Address); err != nil {
			return nil, err
		}

		records = append(records, rec)
	}

	return records, rows.Err()
}

// Count returns the number of stored users.
func (d *DB) Count(ctx context.Context) (int, error) {
	var n int
	if err := d.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM users`).Scan(&n); err != nil {
		return 0, err
	}

	return n, nil
}
