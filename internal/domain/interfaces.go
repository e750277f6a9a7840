// Package domain defines the canonical service interfaces of the waste
// ledger. Consumers (the CLI today) depend on these rather than on the
// concrete service types.
package domain

import (
	"context"
	"io"

	"github.com/wastelabs/wastelog/internal/models"
)

// EntryService defines all inventory operations.
type EntryService interface {
	Add(ctx context.Context, req models.AddEntryRequest) (*models.WasteEntry, error)
	Delete(ctx context.Context, id int64) error
	Reset(ctx context.Context) (int, error)
	ListForPeriod(ctx context.Context, p models.Period) ([]models.WasteEntry, error)
	AnnualTotal(ctx context.Context, year int) (float64, error)
	MonthlyTotal(ctx context.Context, year, month int) (float64, error)
	UsageSummary(ctx context.Context, p models.Period) (*models.UsageSummary, error)
}

// AuditService defines audit log query and export operations. The log is
// append-only; records are written by entry mutations, never through this
// interface.
type AuditService interface {
	Recent(ctx context.Context, limit int) ([]models.AuditRecord, error)
	Query(ctx context.Context, opts models.AuditQueryOpts) ([]models.AuditRecord, bool, error)
	ExportCSV(ctx context.Context, w io.Writer) (int, error)
	ExportJSON(ctx context.Context, w io.Writer) (int, error)
}
