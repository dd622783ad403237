// Package database provides SQLite storage for the submission
// journal.
package database

import (
	"database/sql"
	"fmt"

	"github.com/igcsenotes/site/internal/model"
	_ "modernc.org/sqlite"
)

// DB wraps the SQLite connection.
type DB struct {
	conn *sql.DB
}

// Ensure DB implements Store interface.
var _ Store = (*DB)(nil)

// New opens or creates an SQLite database at the given path.
func New(path string) (*DB, error) {
	conn, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	// Enable WAL mode for better concurrency.
	if _, err := conn.Exec("PRAGMA journal_mode=WAL;"); err != nil {
		conn.Close()
		return nil, fmt.Errorf("set wal mode: %w", err)
	}
	db := &DB{conn: conn}
	if err := db.migrate(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return db, nil
}

// Close closes the database connection.
func (db *DB) Close() error {
	return db.conn.Close()
}

// DatabaseType returns the backend name.
func (db *DB) DatabaseType() string {
	return "SQLite"
}

func (db *DB) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS submissions (
		id TEXT PRIMARY KEY,
		full_name TEXT NOT NULL,
		country TEXT NOT NULL,
		phone TEXT NOT NULL,
		email TEXT NOT NULL,
		tutoring_details TEXT NOT NULL,
		hourly_budget TEXT NOT NULL,
		submitted_at DATETIME NOT NULL
	);
	`
	_, err := db.conn.Exec(schema)
	return err
}

// AddSubmission records a contact submission.
func (db *DB) AddSubmission(sub *model.Submission) error {
	_, err := db.conn.Exec(`
		INSERT INTO submissions (id, full_name, country, phone, email, tutoring_details, hourly_budget, submitted_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		sub.ID, sub.FullName, sub.Country, sub.Phone, sub.Email, sub.TutoringDetails, sub.HourlyBudget, sub.SubmittedAt)
	return err
}

// GetSubmissions returns all recorded submissions, newest first.
func (db *DB) GetSubmissions() ([]model.Submission, error) {
	rows, err := db.conn.Query(`
		SELECT id, full_name, country, phone, email, tutoring_details, hourly_budget, submitted_at
		FROM submissions ORDER BY submitted_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanSubmissions(rows)
}

// GetSubmissionByID returns one submission, or nil if absent.
func (db *DB) GetSubmissionByID(id string) (*model.Submission, error) {
	row := db.conn.QueryRow(`
		SELECT id, full_name, country, phone, email, tutoring_details, hourly_budget, submitted_at
		FROM submissions WHERE id = ?`, id)
	var s model.Submission
	err := row.Scan(&s.ID, &s.FullName, &s.Country, &s.Phone, &s.Email, &s.TutoringDetails, &s.HourlyBudget, &s.SubmittedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func scanSubmissions(rows *sql.Rows) ([]model.Submission, error) {
	var subs []model.Submission
	for rows.Next() {
		var s model.Submission
		if err := rows.Scan(&s.ID, &s.FullName, &s.Country, &s.Phone, &s.Email, &s.TutoringDetails, &s.HourlyBudget, &s.SubmittedAt); err != nil {
			return nil, err
		}
		subs = append(subs, s)
	}
	return subs, rows.Err()
}
