package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/ericfisherdev/nametrack/internal/domain/model"
	"github.com/ericfisherdev/nametrack/internal/domain/port/driven"
)

// Compile-time interface satisfaction check.
var _ driven.VisitStore = (*VisitRepo)(nil)

// lastSeenLayout is the text form last_seen is written in. RFC3339 UTC keeps
// the column lexicographically sortable, which ORDER BY last_seen relies on.
const lastSeenLayout = time.RFC3339

// VisitRepo is the SQLite implementation of the VisitStore port interface.
type VisitRepo struct {
	db *DB
}

// NewVisitRepo creates a new VisitRepo backed by the given DB.
func NewVisitRepo(db *DB) *VisitRepo {
	return &VisitRepo{db: db}
}

// RecordVisit records one visit for name and returns the record's state prior
// to this call. The prior-state read and the upsert run in one transaction on
// the single-connection writer, so the receipt always matches the row that was
// incremented. The increment itself is a single ON CONFLICT statement; it can
// never lose an update regardless of interleaving.
func (r *VisitRepo) RecordVisit(ctx context.Context, name string, now time.Time) (model.VisitReceipt, error) {
	receipt := model.VisitReceipt{Name: name}

	tx, err := r.db.Writer.BeginTx(ctx, nil)
	if err != nil {
		return receipt, fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // Rollback after commit is a no-op.

	const selectQuery = `SELECT count, last_seen FROM visits WHERE name = ?`

	var lastSeen string
	err = tx.QueryRowContext(ctx, selectQuery, name).Scan(&receipt.PreviousCount, &lastSeen)
	switch {
	case err == sql.ErrNoRows:
		// First visit; receipt stays at zero values.
	case err != nil:
		return receipt, fmt.Errorf("read prior visit state for %q: %w", name, err)
	default:
		receipt.PreviousLastSeen, err = parseTime(lastSeen)
		if err != nil {
			return receipt, fmt.Errorf("parse last_seen for %q: %w", name, err)
		}
	}

	const upsertQuery = `
		INSERT INTO visits (name, count, last_seen)
		VALUES (?, 1, ?)
		ON CONFLICT(name) DO UPDATE SET
			count = count + 1,
			last_seen = excluded.last_seen
	`

	if _, err := tx.ExecContext(ctx, upsertQuery, name, now.UTC().Format(lastSeenLayout)); err != nil {
		return receipt, fmt.Errorf("record visit for %q: %w", name, err)
	}

	if err := tx.Commit(); err != nil {
		return receipt, fmt.Errorf("commit visit for %q: %w", name, err)
	}

	return receipt, nil
}

// ListTop returns up to limit records ranked descending by the given order.
func (r *VisitRepo) ListTop(ctx context.Context, limit int, order model.SortOrder) ([]model.VisitRecord, error) {
	if limit <= 0 {
		return nil, fmt.Errorf("limit must be positive, got %d", limit)
	}

	var query string
	switch order {
	case model.OrderByLastSeen:
		query = `SELECT name, count, last_seen FROM visits ORDER BY last_seen DESC LIMIT ?`
	case model.OrderByVisits:
		query = `SELECT name, count, last_seen FROM visits ORDER BY count DESC LIMIT ?`
	default:
		return nil, fmt.Errorf("unknown sort order %q", order)
	}

	rows, err := r.db.Reader.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("query top visits: %w", err)
	}
	defer rows.Close()

	var records []model.VisitRecord
	for rows.Next() {
		rec, err := scanVisitRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("scan visit record: %w", err)
		}
		records = append(records, *rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate visit records: %w", err)
	}

	return records, nil
}

// ClearAll removes every visit record. Clearing an empty registry succeeds.
func (r *VisitRepo) ClearAll(ctx context.Context) error {
	if _, err := r.db.Writer.ExecContext(ctx, `DELETE FROM visits`); err != nil {
		return fmt.Errorf("clear visits: %w", err)
	}

	return nil
}

// scanner abstracts over *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanVisitRecord(s scanner) (*model.VisitRecord, error) {
	var rec model.VisitRecord
	var lastSeen string

	if err := s.Scan(&rec.Name, &rec.Count, &lastSeen); err != nil {
		return nil, err
	}

	var err error
	rec.LastSeen, err = parseTime(lastSeen)
	if err != nil {
		return nil, fmt.Errorf("parse last_seen: %w", err)
	}

	return &rec, nil
}

// parseTime tries multiple SQLite datetime formats.
func parseTime(s string) (time.Time, error) {
	formats := []string{
		"2006-01-02T15:04:05Z",
		"2006-01-02 15:04:05",
		"2006-01-02T15:04:05",
		"2006-01-02 15:04:05.000",
		time.RFC3339,
		time.RFC3339Nano,
	}

	for _, format := range formats {
		if t, err := time.Parse(format, s); err == nil {
			return t, nil
		}
	}

	return time.Time{}, fmt.Errorf("unparseable time %q", s)
}
