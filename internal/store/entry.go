package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/wastelabs/wastelog/internal/models"
)

// entryColumns is the canonical column list for waste_entries scans.
var entryColumns = []string{"id", "entry_date", "business", "stream", "quantity_kg", "created_at"}

// EntryStore handles the mutable inventory of current waste entries.
type EntryStore struct {
	Base
}

// NewEntryStore creates an EntryStore.
func NewEntryStore(base Base) *EntryStore {
	return &EntryStore{Base: base}
}

// Add inserts a new entry and its insert audit row in one transaction,
// returning the stored entry with its assigned id.
func (s *EntryStore) Add(ctx context.Context, snap models.EntrySnapshot) (*models.WasteEntry, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	tx, err := s.Pool.Begin(ctx)
	if err != nil {
		return nil, models.Persistence("add entry", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck // best-effort rollback after commit.

	row := tx.QueryRow(ctx, `
		INSERT INTO waste_entries (entry_date, business, stream, quantity_kg)
		VALUES ($1, $2, $3, $4)
		RETURNING id, entry_date, business, stream, quantity_kg, created_at`,
		snap.Date, snap.Business, snap.Stream, snap.QuantityKG,
	)

	e, err := scanEntry(row.Scan)
	if err != nil {
		return nil, models.Persistence("add entry", err)
	}

	if err := insertAuditTx(ctx, tx, models.EventInsert, e.Snapshot(), uuid.NewString(), nil); err != nil {
		return nil, models.Persistence("add entry audit", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, models.Persistence("commit add entry", err)
	}

	return e, nil
}

// Delete removes one entry by id, writing a delete audit row with the
// entry's values as they were at removal time. Returns ErrEntryNotFound
// (and writes nothing) when the id is not present.
func (s *EntryStore) Delete(ctx context.Context, id int64) error {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	tx, err := s.Pool.Begin(ctx)
	if err != nil {
		return models.Persistence("delete entry", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck // best-effort rollback after commit.

	var snap models.EntrySnapshot

	err = tx.QueryRow(ctx, `
		SELECT entry_date, business, stream, quantity_kg
		FROM waste_entries WHERE id = $1
		FOR UPDATE`,
		id,
	).Scan(&snap.Date, &snap.Business, &snap.Stream, &snap.QuantityKG)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.ErrEntryNotFound
		}

		return models.Persistence("read entry for delete", err)
	}

	if err := insertAuditTx(ctx, tx, models.EventDelete, snap, uuid.NewString(), nil); err != nil {
		return models.Persistence("delete entry audit", err)
	}

	if _, err := tx.Exec(ctx, "DELETE FROM waste_entries WHERE id = $1", id); err != nil {
		return models.Persistence("delete entry", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return models.Persistence("commit delete entry", err)
	}

	return nil
}

// Reset clears every current entry, writing one reset audit row per
// cleared entry. The whole batch shares one op_id and one timestamp so
// the log can reconstitute it as a single operation. Returns the number
// of entries cleared; resetting an empty inventory returns 0 and writes
// nothing.
func (s *EntryStore) Reset(ctx context.Context) (int, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	tx, err := s.Pool.Begin(ctx)
	if err != nil {
		return 0, models.Persistence("reset inventory", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck // best-effort rollback after commit.

	rows, err := tx.Query(ctx, `
		SELECT entry_date, business, stream, quantity_kg
		FROM waste_entries
		ORDER BY id
		FOR UPDATE`,
	)
	if err != nil {
		return 0, models.Persistence("read entries for reset", err)
	}

	var snaps []models.EntrySnapshot

	for rows.Next() {
		var snap models.EntrySnapshot
		if err := rows.Scan(&snap.Date, &snap.Business, &snap.Stream, &snap.QuantityKG); err != nil {
			rows.Close()

			return 0, models.Persistence("scan entry for reset", err)
		}
		snaps = append(snaps, snap)
	}
	rows.Close()

	if err := rows.Err(); err != nil {
		return 0, models.Persistence("read entries for reset", err)
	}

	if len(snaps) == 0 {
		return 0, tx.Commit(ctx)
	}

	opID := uuid.NewString()
	at := time.Now().UTC()

	for _, snap := range snaps {
		if err := insertAuditTx(ctx, tx, models.EventReset, snap, opID, &at); err != nil {
			return 0, models.Persistence("reset audit", err)
		}
	}

	if _, err := tx.Exec(ctx, "DELETE FROM waste_entries"); err != nil {
		return 0, models.Persistence("reset inventory", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, models.Persistence("commit reset", err)
	}

	return len(snaps), nil
}

// ListForPeriod returns entries whose date falls in the given year (and
// month, when non-zero), ordered by date then id ascending.
func (s *EntryStore) ListForPeriod(ctx context.Context, p models.Period) ([]models.WasteEntry, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	start, end := periodBounds(p)

	query, args, err := psql.Select(entryColumns...).
		From("waste_entries").
		Where(sq.GtOrEq{"entry_date": start}).
		Where(sq.Lt{"entry_date": end}).
		OrderBy("entry_date ASC", "id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("building period query: %w", err)
	}

	rows, err := s.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, models.Persistence("list entries", err)
	}
	defer rows.Close()

	var entries []models.WasteEntry

	for rows.Next() {
		e, err := scanEntry(rows.Scan)
		if err != nil {
			return nil, models.Persistence("scan entry", err)
		}
		entries = append(entries, *e)
	}

	if err := rows.Err(); err != nil {
		return nil, models.Persistence("list entries", err)
	}

	return entries, nil
}

// AnnualTotal sums quantity_kg over entries dated within the year.
// Returns 0.0 when nothing matches.
func (s *EntryStore) AnnualTotal(ctx context.Context, year int) (float64, error) {
	return s.sumRange(ctx, models.Period{Year: year})
}

// MonthlyTotal sums quantity_kg over entries dated within the month.
func (s *EntryStore) MonthlyTotal(ctx context.Context, year, month int) (float64, error) {
	return s.sumRange(ctx, models.Period{Year: year, Month: month})
}

func (s *EntryStore) sumRange(ctx context.Context, p models.Period) (float64, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	start, end := periodBounds(p)

	query, args, err := psql.Select("COALESCE(SUM(quantity_kg), 0)").
		From("waste_entries").
		Where(sq.GtOrEq{"entry_date": start}).
		Where(sq.Lt{"entry_date": end}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("building sum query: %w", err)
	}

	var total float64
	if err := s.Pool.QueryRow(ctx, query, args...).Scan(&total); err != nil {
		return 0, models.Persistence("sum entries", err)
	}

	return total, nil
}

// periodBounds returns the half-open [start, end) date range for a period.
func periodBounds(p models.Period) (start, end time.Time) {
	if p.Month == 0 {
		start = time.Date(p.Year, time.January, 1, 0, 0, 0, 0, time.UTC)

		return start, start.AddDate(1, 0, 0)
	}

	start = time.Date(p.Year, time.Month(p.Month), 1, 0, 0, 0, 0, time.UTC)

	return start, start.AddDate(0, 1, 0)
}

// scanEntry scans one waste_entries row in entryColumns order.
func scanEntry(scan func(dest ...any) error) (*models.WasteEntry, error) {
	var e models.WasteEntry
	if err := scan(&e.ID, &e.Date, &e.Business, &e.Stream, &e.QuantityKG, &e.CreatedAt); err != nil {
		return nil, err
	}

	return &e, nil
}
