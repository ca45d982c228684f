package db

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v5"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/rs/zerolog/log"
	_ "modernc.org/sqlite"
)

// DB is a *sql.DB that knows its dialect. Queries go through Rebind so
// repositories can be written once with ? placeholders.
type DB struct {
	*sql.DB
	Dialect Dialect
}

func (d *DB) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	return d.DB.ExecContext(ctx, Rebind(d.Dialect, query), args...)
}

func (d *DB) QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error) {
	return d.DB.QueryContext(ctx, Rebind(d.Dialect, query), args...)
}

func (d *DB) QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row {
	return d.DB.QueryRowContext(ctx, Rebind(d.Dialect, query), args...)
}

// RetryPolicy bounds how long Connect waits for the database to accept
// connections. Hosted Postgres instances that scale to zero take a few
// seconds to wake up.
type RetryPolicy struct {
	MaxAttempts uint
	Initial     time.Duration
	MaxInterval time.Duration
}

// DefaultRetryPolicy mirrors the config defaults.
func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{MaxAttempts: 5, Initial: 250 * time.Millisecond, MaxInterval: 5 * time.Second}
}

// OpenDB opens the database named by dsn with the default retry policy.
// If dsn is ":memory:", uses an in-memory SQLite database.
func OpenDB(dsn string) (*DB, error) {
	return Connect(context.Background(), dsn, DefaultRetryPolicy())
}

// driverDSN adds per-connection pragmas for file-backed SQLite so every
// pooled connection enforces foreign keys.
func driverDSN(dialect Dialect, dsn string) string {
	if dialect != SQLite || dsn == ":memory:" || strings.Contains(dsn, "?") {
		return dsn
	}
	return dsn + "?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"
}

// Connect opens the database, waits for it to answer a ping, applies
// per-dialect session settings and runs migrations.
func Connect(ctx context.Context, dsn string, policy RetryPolicy) (*DB, error) {
	dialect := DialectFor(dsn)

	if dialect == SQLite && dsn != ":memory:" {
		dir := filepath.Dir(dsn)
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("creating db directory: %w", err)
		}
	}

	sqlDB, err := sql.Open(dialect.DriverName(), driverDSN(dialect, dsn))
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	if dialect == SQLite && dsn == ":memory:" {
		// Every new connection to :memory: is a separate empty database.
		sqlDB.SetMaxOpenConns(1)
	}

	if err := waitForPing(ctx, sqlDB, dialect, policy); err != nil {
		sqlDB.Close()
		return nil, err
	}

	d := &DB{DB: sqlDB, Dialect: dialect}

	if dialect == SQLite {
		// Enable WAL mode for better concurrent read performance
		if _, err := sqlDB.Exec("PRAGMA journal_mode = WAL"); err != nil {
			sqlDB.Close()
			return nil, fmt.Errorf("setting WAL mode: %w", err)
		}

		// Enable foreign key enforcement
		if _, err := sqlDB.Exec("PRAGMA foreign_keys = ON"); err != nil {
			sqlDB.Close()
			return nil, fmt.Errorf("enabling foreign keys: %w", err)
		}
	}

	if err := Migrate(ctx, d); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return d, nil
}

func waitForPing(ctx context.Context, sqlDB *sql.DB, dialect Dialect, policy RetryPolicy) error {
	if policy.MaxAttempts == 0 {
		policy.MaxAttempts = 1
	}
	b := backoff.NewExponentialBackOff()
	if policy.Initial > 0 {
		b.InitialInterval = policy.Initial
	}
	if policy.MaxInterval > 0 {
		b.MaxInterval = policy.MaxInterval
	}

	_, err := backoff.Retry(ctx, func() (struct{}, error) {
		pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		return struct{}{}, sqlDB.PingContext(pingCtx)
	},
		backoff.WithBackOff(b),
		backoff.WithMaxTries(policy.MaxAttempts),
		backoff.WithNotify(func(err error, next time.Duration) {
			log.Warn().Err(err).
				Str("dialect", dialect.String()).
				Dur("retry_in", next).
				Msg("database not ready")
		}),
	)
	if err != nil {
		return fmt.Errorf("pinging database: %w", err)
	}
	return nil
}
