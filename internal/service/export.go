package service

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/wastelabs/wastelog/internal/models"
)

// exportHeader is the CSV column order for audit exports.
var exportHeader = []string{"id", "event", "entry_date", "business", "stream", "quantity_kg", "op_id", "timestamp"}

// ExportCSV writes the full audit trail to w as CSV in insertion order
// and returns the number of records written.
func (s *AuditService) ExportCSV(ctx context.Context, w io.Writer) (int, error) {
	records, err := s.store.All(ctx)
	if err != nil {
		return 0, err
	}

	cw := csv.NewWriter(w)

	if err := cw.Write(exportHeader); err != nil {
		return 0, fmt.Errorf("writing export header: %w", err)
	}

	for _, r := range records {
		if err := cw.Write(exportRow(r)); err != nil {
			return 0, fmt.Errorf("writing export row: %w", err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return 0, fmt.Errorf("flushing export: %w", err)
	}

	s.log.WithField("records", len(records)).Info("audit.export")

	return len(records), nil
}

// ExportJSON writes the full audit trail to w as a JSON array in
// insertion order and returns the number of records written.
func (s *AuditService) ExportJSON(ctx context.Context, w io.Writer) (int, error) {
	records, err := s.store.All(ctx)
	if err != nil {
		return 0, err
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	if err := enc.Encode(records); err != nil {
		return 0, fmt.Errorf("encoding export: %w", err)
	}

	s.log.WithField("records", len(records)).Info("audit.export")

	return len(records), nil
}

func exportRow(r models.AuditRecord) []string {
	var date, business, stream, quantity string

	if r.EntryDate != nil {
		date = r.EntryDate.Format(time.DateOnly)
	}
	if r.Business != nil {
		business = *r.Business
	}
	if r.Stream != nil {
		stream = *r.Stream
	}
	if r.QuantityKG != nil {
		quantity = strconv.FormatFloat(*r.QuantityKG, 'f', -1, 64)
	}

	return []string{
		strconv.FormatInt(r.ID, 10),
		string(r.Kind),
		date,
		business,
		stream,
		quantity,
		r.OpID,
		r.CreatedAt.UTC().Format(time.RFC3339),
	}
}
