package store

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/wastelabs/wastelog/internal/models"
)

// auditColumns is the canonical column list for audit_log scans.
var auditColumns = []string{"id", "event", "entry_date", "business", "stream", "quantity_kg", "op_id", "created_at"}

// AuditStore provides access to the append-only audit_log table.
// It exposes no update or delete operation.
type AuditStore struct {
	Base
}

// NewAuditStore creates an AuditStore.
func NewAuditStore(base Base) *AuditStore {
	return &AuditStore{Base: base}
}

// Append inserts one audit record. Content is recorded as given — the
// store never rejects on content grounds. A nil snapshot leaves the
// snapshot columns null.
func (s *AuditStore) Append(ctx context.Context, kind models.EventKind, snap *models.EntrySnapshot) (*models.AuditRecord, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	var date, business, stream, quantity any
	if snap != nil {
		date, business, stream, quantity = snap.Date, snap.Business, snap.Stream, snap.QuantityKG
	}

	row := s.Pool.QueryRow(ctx, `
		INSERT INTO audit_log (event, entry_date, business, stream, quantity_kg, op_id)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, event, entry_date, business, stream, quantity_kg, op_id, created_at`,
		kind, date, business, stream, quantity, uuid.NewString(),
	)

	rec, err := scanAuditRecord(row.Scan)
	if err != nil {
		return nil, models.Persistence("append audit record", err)
	}

	return rec, nil
}

// Recent returns the newest records first, by id descending. A limit of 0
// returns an empty slice; a negative limit is a validation error.
func (s *AuditStore) Recent(ctx context.Context, limit int) ([]models.AuditRecord, error) {
	if limit < 0 {
		return nil, models.Invalid("limit", "must be >= 0")
	}

	if limit == 0 {
		return []models.AuditRecord{}, nil
	}

	ctx, cancel := withTimeout(ctx)
	defer cancel()

	query, args, err := psql.Select(auditColumns...).
		From("audit_log").
		OrderBy("id DESC").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("building recent query: %w", err)
	}

	return s.queryRecords(ctx, query, args)
}

// Query returns records matching the given filters, newest first.
// Returns records, a hasMore flag, and any error.
func (s *AuditStore) Query(ctx context.Context, opts models.AuditQueryOpts) ([]models.AuditRecord, bool, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	limit := opts.Limit
	if limit <= 0 {
		limit = 50
	}

	q := psql.Select(auditColumns...).From("audit_log")

	if opts.Kind != "" {
		q = q.Where(sq.Eq{"event": opts.Kind})
	}
	if opts.Since != nil {
		q = q.Where(sq.GtOrEq{"created_at": *opts.Since})
	}

	query, args, err := q.
		OrderBy("id DESC").
		Limit(uint64(limit + 1)).
		Offset(uint64(opts.Offset)).
		ToSql()
	if err != nil {
		return nil, false, fmt.Errorf("building audit query: %w", err)
	}

	records, err := s.queryRecords(ctx, query, args)
	if err != nil {
		return nil, false, err
	}

	hasMore := len(records) > limit
	if hasMore {
		records = records[:limit]
	}

	return records, hasMore, nil
}

// All returns the full audit sequence in insertion order (id ascending).
// Used by the export path, which serializes the whole trail.
func (s *AuditStore) All(ctx context.Context) ([]models.AuditRecord, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	query, args, err := psql.Select(auditColumns...).
		From("audit_log").
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("building audit export query: %w", err)
	}

	return s.queryRecords(ctx, query, args)
}

func (s *AuditStore) queryRecords(ctx context.Context, query string, args []any) ([]models.AuditRecord, error) {
	rows, err := s.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, models.Persistence("query audit log", err)
	}
	defer rows.Close()

	records, err := collectAuditRecords(rows)
	if err != nil {
		return nil, models.Persistence("scan audit log", err)
	}

	return records, nil
}

func collectAuditRecords(rows pgx.Rows) ([]models.AuditRecord, error) {
	var records []models.AuditRecord

	for rows.Next() {
		rec, err := scanAuditRecord(rows.Scan)
		if err != nil {
			return nil, err
		}
		records = append(records, *rec)
	}

	return records, rows.Err()
}

// scanAuditRecord scans one audit_log row in auditColumns order.
func scanAuditRecord(scan func(dest ...any) error) (*models.AuditRecord, error) {
	var r models.AuditRecord
	if err := scan(&r.ID, &r.Kind, &r.EntryDate, &r.Business, &r.Stream, &r.QuantityKG, &r.OpID, &r.CreatedAt); err != nil {
		return nil, err
	}

	return &r, nil
}
