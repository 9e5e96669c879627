package repository

import (
	"context"

	"github.com/kellyband/site/internal/model"
)

// DB reports whether the underlying database connection is alive.
type DB interface {
	Ping(ctx context.Context) error
}

// ContactRepository defines the persistence interface for contact submissions.
// It is defined here (in repository) to avoid an import cycle with service.
type ContactRepository interface {
	// EnsureSchema creates the contacts table if it does not exist.
	EnsureSchema(ctx context.Context) error

	// Save inserts one row. Empty name or email is stored as NULL and
	// rejected by the NOT NULL constraint. On success sub.ID and
	// sub.SubmittedAt are populated from the store.
	Save(ctx context.Context, sub *model.ContactSubmission) error

	// List returns every submission, newest first.
	List(ctx context.Context) ([]*model.ContactSubmission, error)
}

// Store is a contacts repository together with its connection lifecycle.
type Store interface {
	ContactRepository
	DB
	Close() error
}
