package ledger

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	_ "modernc.org/sqlite"
)

// SQLite is a Ledger stored in a local sqlite database.
type SQLite struct {
	db          *sql.DB
	maxAttempts int
	logger      *zap.Logger
	now         func() time.Time
}

// OpenSQLite opens (and migrates) the ledger at path. Objects that fail
// maxAttempts times are parked; maxAttempts <= 0 retries forever.
func OpenSQLite(path string, maxAttempts int, logger *zap.Logger) (*SQLite, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open ledger: %w", err)
	}
	// One writer; sqlite serialises anyway and this avoids SQLITE_BUSY.
	db.SetMaxOpenConns(1)

	l := &SQLite{db: db, maxAttempts: maxAttempts, logger: logger, now: time.Now}
	if err := l.migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to migrate ledger: %w", err)
	}

	logger.Info("Ledger initialized", zap.String("db_path", path), zap.Int("max_attempts", maxAttempts))
	return l, nil
}

// migrate creates tables
func (l *SQLite) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS objects (
		name TEXT PRIMARY KEY,
		status TEXT NOT NULL,
		attempts INTEGER NOT NULL DEFAULT 0,
		last_error TEXT NOT NULL DEFAULT '',
		updated_at DATETIME NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_objects_status ON objects(status);
	`
	_, err := l.db.Exec(schema)
	return err
}

// ShouldProcess is true for unknown and skipped objects.
func (l *SQLite) ShouldProcess(ctx context.Context, name string) (bool, error) {
	var status Status
	err := l.db.QueryRowContext(ctx, `SELECT status FROM objects WHERE name = ?`, name).Scan(&status)
	if errors.Is(err, sql.ErrNoRows) {
		return true, nil
	}
	if err != nil {
		return false, fmt.Errorf("ledger lookup %s: %w", name, err)
	}
	return status == StatusSkipped, nil
}

// Record stores one attempt. A skip that reaches maxAttempts parks the object.
func (l *SQLite) Record(ctx context.Context, name string, status Status, reason string) error {
	tx, err := l.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("ledger record %s: %w", name, err)
	}
	defer func() { _ = tx.Rollback() }()

	var attempts int
	err = tx.QueryRowContext(ctx, `SELECT attempts FROM objects WHERE name = ?`, name).Scan(&attempts)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("ledger record %s: %w", name, err)
	}
	attempts++

	if status == StatusSkipped && l.maxAttempts > 0 && attempts >= l.maxAttempts {
		status = StatusParked
		l.logger.Warn("Parking object after repeated failures",
			zap.String("object", name),
			zap.Int("attempts", attempts),
			zap.String("reason", reason),
		)
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO objects (name, status, attempts, last_error, updated_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(name) DO UPDATE SET
			status = excluded.status,
			attempts = excluded.attempts,
			last_error = excluded.last_error,
			updated_at = excluded.updated_at
	`, name, string(status), attempts, reason, l.now().UTC())
	if err != nil {
		return fmt.Errorf("ledger record %s: %w", name, err)
	}
	return tx.Commit()
}

// Entries lists ledger rows, newest first. An empty status lists every row.
func (l *SQLite) Entries(ctx context.Context, status Status, limit int) ([]Entry, error) {
	query := `SELECT name, status, attempts, last_error, updated_at FROM objects`
	var args []any
	if status != "" {
		query += ` WHERE status = ?`
		args = append(args, string(status))
	}
	query += ` ORDER BY updated_at DESC`
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := l.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("ledger entries: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.Name, &e.Status, &e.Attempts, &e.LastError, &e.UpdatedAt); err != nil {
			return nil, fmt.Errorf("ledger entries: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// Stats counts rows per status.
func (l *SQLite) Stats(ctx context.Context) (Stats, error) {
	rows, err := l.db.QueryContext(ctx, `SELECT status, COUNT(*) FROM objects GROUP BY status`)
	if err != nil {
		return Stats{}, fmt.Errorf("ledger stats: %w", err)
	}
	defer rows.Close()

	var s Stats
	for rows.Next() {
		var status Status
		var n int
		if err := rows.Scan(&status, &n); err != nil {
			return Stats{}, fmt.Errorf("ledger stats: %w", err)
		}
		switch status {
		case StatusWritten:
			s.Written = n
		case StatusSkipped:
			s.Skipped = n
		case StatusParked:
			s.Parked = n
		}
	}
	return s, rows.Err()
}

// Reset forgets an object so the next poll processes it again.
func (l *SQLite) Reset(ctx context.Context, name string) (bool, error) {
	res, err := l.db.ExecContext(ctx, `DELETE FROM objects WHERE name = ?`, name)
	if err != nil {
		return false, fmt.Errorf("ledger reset %s: %w", name, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("ledger reset %s: %w", name, err)
	}
	return n > 0, nil
}

// Close closes the database.
func (l *SQLite) Close() error {
	return l.db.Close()
}
