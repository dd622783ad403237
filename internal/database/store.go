// Package database provides the local journal for contact
// submissions.
package database

import "github.com/igcsenotes/site/internal/model"

// Store defines the interface for journal operations.
// Both SQLite and PostgreSQL implementations satisfy this interface.
type Store interface {
	Close() error

	// DatabaseType returns the name of the database backend ("SQLite" or "PostgreSQL").
	DatabaseType() string

	// AddSubmission records a contact submission.
	AddSubmission(sub *model.Submission) error

	// GetSubmissions returns all recorded submissions, newest first.
	GetSubmissions() ([]model.Submission, error)

	// GetSubmissionByID returns one submission, or nil if absent.
	GetSubmissionByID(id string) (*model.Submission, error)
}
