package service

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/wastelabs/wastelog/internal/domain"
	"github.com/wastelabs/wastelog/internal/models"
)

// AuditReadStore is the data-access interface AuditService depends on.
type AuditReadStore interface {
	Recent(ctx context.Context, limit int) ([]models.AuditRecord, error)
	Query(ctx context.Context, opts models.AuditQueryOpts) ([]models.AuditRecord, bool, error)
	All(ctx context.Context) ([]models.AuditRecord, error)
}

// Compile-time check: *AuditService must satisfy domain.AuditService.
var _ domain.AuditService = (*AuditService)(nil)

// AuditService exposes the read side of the audit log. Writes happen
// inside entry-mutation transactions and never go through here.
type AuditService struct {
	store AuditReadStore
	log   *logrus.Logger
}

// NewAuditService creates an AuditService.
func NewAuditService(store AuditReadStore, log *logrus.Logger) *AuditService {
	return &AuditService{store: store, log: log}
}

// Recent returns the newest records first (pass-through).
func (s *AuditService) Recent(ctx context.Context, limit int) ([]models.AuditRecord, error) {
	return s.store.Recent(ctx, limit)
}

// Query returns records matching the given filters (pass-through).
func (s *AuditService) Query(ctx context.Context, opts models.AuditQueryOpts) ([]models.AuditRecord, bool, error) {
	return s.store.Query(ctx, opts)
}
