// Package service provides business logic between the presentation layer
// and the data stores: domain validation, capacity math, logging, metrics.
package service

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/wastelabs/wastelog/internal/config"
	"github.com/wastelabs/wastelog/internal/domain"
	"github.com/wastelabs/wastelog/internal/metrics"
	"github.com/wastelabs/wastelog/internal/models"
)

// EntryStore is the data-access interface EntryService depends on.
type EntryStore interface {
	Add(ctx context.Context, snap models.EntrySnapshot) (*models.WasteEntry, error)
	Delete(ctx context.Context, id int64) error
	Reset(ctx context.Context) (int, error)
	ListForPeriod(ctx context.Context, p models.Period) ([]models.WasteEntry, error)
	AnnualTotal(ctx context.Context, year int) (float64, error)
	MonthlyTotal(ctx context.Context, year, month int) (float64, error)
}

// Compile-time check: *EntryService must satisfy domain.EntryService.
var _ domain.EntryService = (*EntryService)(nil)

// EntryService wraps EntryStore with validation against the configured
// business/stream sets and capacity evaluation.
type EntryService struct {
	store      EntryStore
	businesses map[string]bool
	streams    map[string]bool
	capacityKG float64
	log        *logrus.Logger
}

// NewEntryService creates an EntryService for the configured label sets
// and capacity.
func NewEntryService(store EntryStore, cfg *config.Config, log *logrus.Logger) *EntryService {
	return &EntryService{
		store:      store,
		businesses: toSet(cfg.Businesses),
		streams:    toSet(cfg.Streams),
		capacityKG: cfg.CapacityKG,
		log:        log,
	}
}

func toSet(labels []string) map[string]bool {
	set := make(map[string]bool, len(labels))
	for _, l := range labels {
		set[l] = true
	}

	return set
}

// Add validates the request and stores a new entry. The store writes the
// entry and its insert audit record as one transaction.
func (s *EntryService) Add(ctx context.Context, req models.AddEntryRequest) (*models.WasteEntry, error) {
	snap, err := s.validate(req)
	if err != nil {
		metrics.ErrorsTotal.WithLabelValues("validation").Inc()

		return nil, err
	}

	entry, err := s.store.Add(ctx, *snap)
	if err != nil {
		metrics.ErrorsTotal.WithLabelValues("persistence").Inc()

		return nil, err
	}

	metrics.MutationsTotal.WithLabelValues(string(models.EventInsert)).Inc()
	metrics.AuditRecordsTotal.Inc()

	s.log.WithFields(logrus.Fields{
		"entry_id":    entry.ID,
		"date":        entry.Date.Format(time.DateOnly),
		"business":    entry.Business,
		"stream":      entry.Stream,
		"quantity_kg": entry.QuantityKG,
	}).Info("entry.add")

	return entry, nil
}

// Delete removes one entry. Confirmation is the caller's gate; by the
// time this runs the deletion is unconditional.
func (s *EntryService) Delete(ctx context.Context, id int64) error {
	if err := s.store.Delete(ctx, id); err != nil {
		if models.IsPersistence(err) {
			metrics.ErrorsTotal.WithLabelValues("persistence").Inc()
		} else {
			metrics.ErrorsTotal.WithLabelValues("not_found").Inc()
		}

		return err
	}

	metrics.MutationsTotal.WithLabelValues(string(models.EventDelete)).Inc()
	metrics.AuditRecordsTotal.Inc()

	s.log.WithField("entry_id", id).Info("entry.delete")

	return nil
}

// Reset clears the whole inventory and logs how many entries went.
func (s *EntryService) Reset(ctx context.Context) (int, error) {
	cleared, err := s.store.Reset(ctx)
	if err != nil {
		metrics.ErrorsTotal.WithLabelValues("persistence").Inc()

		return 0, err
	}

	metrics.MutationsTotal.WithLabelValues(string(models.EventReset)).Inc()
	metrics.AuditRecordsTotal.Add(float64(cleared))

	s.log.WithField("cleared", cleared).Info("entry.reset")

	return cleared, nil
}

// ListForPeriod returns the period's entries (pass-through).
func (s *EntryService) ListForPeriod(ctx context.Context, p models.Period) ([]models.WasteEntry, error) {
	if err := validatePeriod(p); err != nil {
		return nil, err
	}

	return s.store.ListForPeriod(ctx, p)
}

// AnnualTotal returns the year's mass total (pass-through).
func (s *EntryService) AnnualTotal(ctx context.Context, year int) (float64, error) {
	return s.store.AnnualTotal(ctx, year)
}

// MonthlyTotal returns the month's mass total (pass-through).
func (s *EntryService) MonthlyTotal(ctx context.Context, year, month int) (float64, error) {
	if err := validatePeriod(models.Period{Year: year, Month: month}); err != nil {
		return 0, err
	}

	return s.store.MonthlyTotal(ctx, year, month)
}

// UsageSummary combines the month's total, the year's total, and the
// capacity evaluation for one period. Month 0 evaluates the whole year
// against capacity.
func (s *EntryService) UsageSummary(ctx context.Context, p models.Period) (*models.UsageSummary, error) {
	if err := validatePeriod(p); err != nil {
		return nil, err
	}

	var (
		monthly float64
		err     error
	)

	if p.Month == 0 {
		monthly, err = s.store.AnnualTotal(ctx, p.Year)
	} else {
		monthly, err = s.store.MonthlyTotal(ctx, p.Year, p.Month)
	}
	if err != nil {
		return nil, err
	}

	annual, err := s.store.AnnualTotal(ctx, p.Year)
	if err != nil {
		return nil, err
	}

	fraction := UsageFraction(monthly, s.capacityKG)

	return &models.UsageSummary{
		Period:        p,
		MonthlyTotal:  monthly,
		AnnualTotal:   annual,
		CapacityKG:    s.capacityKG,
		UsageFraction: fraction,
		OverThreshold: OverWarningThreshold(fraction),
	}, nil
}

// validate checks an add request against the configured domain and turns
// it into a store snapshot.
func (s *EntryService) validate(req models.AddEntryRequest) (*models.EntrySnapshot, error) {
	date, err := time.Parse(time.DateOnly, req.Date)
	if err != nil {
		return nil, models.Invalid("date", fmt.Sprintf("%q is not a YYYY-MM-DD calendar date", req.Date))
	}

	if !s.businesses[req.Business] {
		return nil, models.Invalid("business", fmt.Sprintf("%q is not in the configured business set", req.Business))
	}

	if !s.streams[req.Stream] {
		return nil, models.Invalid("stream", fmt.Sprintf("%q is not in the configured stream set", req.Stream))
	}

	if math.IsNaN(req.QuantityKG) || math.IsInf(req.QuantityKG, 0) {
		return nil, models.Invalid("quantity_kg", "must be a finite number")
	}

	if req.QuantityKG < 0 {
		return nil, models.Invalid("quantity_kg", "must be >= 0")
	}

	return &models.EntrySnapshot{
		Date:       date,
		Business:   req.Business,
		Stream:     req.Stream,
		QuantityKG: req.QuantityKG,
	}, nil
}

func validatePeriod(p models.Period) error {
	if p.Year < 1 {
		return models.Invalid("year", "must be a positive calendar year")
	}

	if p.Month < 0 || p.Month > 12 {
		return models.Invalid("month", "must be between 1 and 12, or 0 for the whole year")
	}

	return nil
}
