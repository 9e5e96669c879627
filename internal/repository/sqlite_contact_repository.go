package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/kellyband/site/internal/model"
)

// submitted_at keeps millisecond precision so rows inserted within the same
// second still sort in insertion order.
const sqliteContactsSchema = `CREATE TABLE IF NOT EXISTS contacts (
	id           INTEGER PRIMARY KEY AUTOINCREMENT,
	name         TEXT NOT NULL,
	email        TEXT NOT NULL,
	message      TEXT,
	submitted_at DATETIME NOT NULL DEFAULT (strftime('%Y-%m-%d %H:%M:%f', 'now'))
)`

// SqliteContactRepository is the embedded SQLite implementation of ContactRepository.
type SqliteContactRepository struct {
	db *sqlx.DB
}

// NewSqliteContactRepository creates a SqliteContactRepository backed by db.
func NewSqliteContactRepository(db *sqlx.DB) *SqliteContactRepository {
	return &SqliteContactRepository{db: db}
}

var _ Store = (*SqliteContactRepository)(nil)

// contactRow mirrors a contacts row; submitted_at needs its own scanner
// because SQLite hands back either TEXT or a parsed time depending on the driver path.
type contactRow struct {
	ID          int64      `db:"id"`
	Name        string     `db:"name"`
	Email       string     `db:"email"`
	Message     string     `db:"message"`
	SubmittedAt sqliteTime `db:"submitted_at"`
}

func (r *SqliteContactRepository) EnsureSchema(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, sqliteContactsSchema); err != nil {
		return fmt.Errorf("create contacts table: %w", err)
	}
	return nil
}

func (r *SqliteContactRepository) Save(ctx context.Context, sub *model.ContactSubmission) error {
	var row struct {
		ID          int64      `db:"id"`
		SubmittedAt sqliteTime `db:"submitted_at"`
	}
	err := r.db.QueryRowxContext(ctx,
		`INSERT INTO contacts (name, email, message)
		 VALUES (NULLIF(?, ''), NULLIF(?, ''), NULLIF(?, ''))
		 RETURNING id, submitted_at`,
		sub.Name, sub.Email, sub.Message,
	).StructScan(&row)
	if err != nil {
		return err
	}
	sub.ID = row.ID
	sub.SubmittedAt = time.Time(row.SubmittedAt)
	return nil
}

func (r *SqliteContactRepository) List(ctx context.Context) ([]*model.ContactSubmission, error) {
	var rows []contactRow
	err := r.db.SelectContext(ctx, &rows,
		`SELECT id, name, email, COALESCE(message, '') AS message, submitted_at
		 FROM contacts
		 ORDER BY submitted_at DESC, id DESC`)
	if err != nil {
		return nil, err
	}

	subs := make([]*model.ContactSubmission, 0, len(rows))
	for _, row := range rows {
		subs = append(subs, &model.ContactSubmission{
			ID:          row.ID,
			Name:        row.Name,
			Email:       row.Email,
			Message:     row.Message,
			SubmittedAt: time.Time(row.SubmittedAt),
		})
	}
	return subs, nil
}

func (r *SqliteContactRepository) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}

func (r *SqliteContactRepository) Close() error {
	return r.db.Close()
}

// sqliteTime scans a DATETIME column into UTC time.
type sqliteTime time.Time

var sqliteTimeLayouts = []string{
	"2006-01-02 15:04:05.999999999Z07:00",
	"2006-01-02T15:04:05.999999999Z07:00",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02T15:04:05.999999999",
	"2006-01-02",
}

func (t *sqliteTime) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*t = sqliteTime(time.Time{})
		return nil
	case time.Time:
		*t = sqliteTime(v.UTC())
		return nil
	case int64:
		*t = sqliteTime(time.Unix(v, 0).UTC())
		return nil
	case []byte:
		return t.parse(string(v))
	case string:
		return t.parse(v)
	}
	return fmt.Errorf("sqlite time: unsupported type %T", src)
}

func (t *sqliteTime) parse(s string) error {
	for _, layout := range sqliteTimeLayouts {
		if ts, err := time.Parse(layout, s); err == nil {
			*t = sqliteTime(ts.UTC())
			return nil
		}
	}
	return fmt.Errorf("sqlite time: cannot parse %q", s)
}
