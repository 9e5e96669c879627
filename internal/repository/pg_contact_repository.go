package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/kellyband/site/internal/model"
)

const pgContactsSchema = `CREATE TABLE IF NOT EXISTS contacts (
	id           BIGINT GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
	name         TEXT NOT NULL,
	email        TEXT NOT NULL,
	message      TEXT,
	submitted_at TIMESTAMPTZ NOT NULL DEFAULT clock_timestamp()
)`

// PgContactRepository is the PostgreSQL implementation of ContactRepository.
type PgContactRepository struct {
	pool *pgxpool.Pool
}

// NewPgContactRepository creates a PgContactRepository backed by the given pool.
func NewPgContactRepository(pool *pgxpool.Pool) *PgContactRepository {
	return &PgContactRepository{pool: pool}
}

// Ensure PgContactRepository implements Store at compile time.
var _ Store = (*PgContactRepository)(nil)

func (r *PgContactRepository) EnsureSchema(ctx context.Context) error {
	if _, err := r.pool.Exec(ctx, pgContactsSchema); err != nil {
		return fmt.Errorf("create contacts table: %w", err)
	}
	return nil
}

// Save inserts a new contacts row and populates sub.ID and sub.SubmittedAt
// from the RETURNING clause.
func (r *PgContactRepository) Save(ctx context.Context, sub *model.ContactSubmission) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO contacts (name, email, message)
		 VALUES (NULLIF($1, ''), NULLIF($2, ''), NULLIF($3, ''))
		 RETURNING id, submitted_at`,
		sub.Name, sub.Email, sub.Message,
	).Scan(&sub.ID, &sub.SubmittedAt)
}

// List returns all contact submissions, most recent first.
func (r *PgContactRepository) List(ctx context.Context) ([]*model.ContactSubmission, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, name, email, COALESCE(message, '') AS message, submitted_at
		 FROM contacts
		 ORDER BY submitted_at DESC, id DESC`)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, pgx.RowToAddrOfStructByName[model.ContactSubmission])
}

func (r *PgContactRepository) Ping(ctx context.Context) error {
	return r.pool.Ping(ctx)
}

func (r *PgContactRepository) Close() error {
	r.pool.Close()
	return nil
}
