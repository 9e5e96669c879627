package repository

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"github.com/kellyband/site/internal/config"
)

// NewPool opens a PostgreSQL connection pool and verifies it with a ping.
func NewPool(ctx context.Context, connString string) (*pgxpool.Pool, error) {
	pool, err := pgxpool.New(ctx, connString)
	if err != nil {
		return nil, err
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, err
	}
	return pool, nil
}

// sqlitePragmas is applied by the driver on every new connection.
const sqlitePragmas = "?_pragma=busy_timeout(10000)&_pragma=journal_mode(WAL)&_pragma=synchronous(NORMAL)"

// OpenSQLite opens the embedded SQLite database at path. ":memory:" is
// limited to one connection because each connection to it is a separate database.
func OpenSQLite(ctx context.Context, path string) (*sqlx.DB, error) {
	db, err := sqlx.Open("sqlite", path+sqlitePragmas)
	if err != nil {
		return nil, fmt.Errorf("sqlite: open: %w", err)
	}
	if path == ":memory:" {
		db.SetMaxOpenConns(1)
	}

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("sqlite: ping: %w", err)
	}
	return db, nil
}

// OpenStore opens the contacts store selected by cfg and creates the
// contacts table if absent. A postgres:// DATABASE_URL selects PostgreSQL;
// otherwise the SQLite file at DBPath is used.
func OpenStore(ctx context.Context, cfg config.Config) (Store, error) {
	var store Store
	if cfg.UsePostgres() {
		pool, err := NewPool(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, fmt.Errorf("postgres: %w", err)
		}
		store = NewPgContactRepository(pool)
		slog.Info("connected to PostgreSQL")
	} else {
		db, err := OpenSQLite(ctx, cfg.DBPath)
		if err != nil {
			return nil, err
		}
		store = NewSqliteContactRepository(db)
		slog.Info("connected to SQLite", "path", cfg.DBPath)
	}

	if err := store.EnsureSchema(ctx); err != nil {
		store.Close()
		return nil, err
	}
	return store, nil
}
