package service

import (
	"context"
	"sync"

	"github.com/wastelabs/wastelog/internal/models"
)

// mockEntryStore records calls and returns configured responses.
type mockEntryStore struct {
	mu    sync.Mutex
	calls []string

	add           func(ctx context.Context, snap models.EntrySnapshot) (*models.WasteEntry, error)
	delete        func(ctx context.Context, id int64) error
	reset         func(ctx context.Context) (int, error)
	listForPeriod func(ctx context.Context, p models.Period) ([]models.WasteEntry, error)
	annualTotal   func(ctx context.Context, year int) (float64, error)
	monthlyTotal  func(ctx context.Context, year, month int) (float64, error)
}

func (m *mockEntryStore) record(name string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = append(m.calls, name)
}

func (m *mockEntryStore) Add(ctx context.Context, snap models.EntrySnapshot) (*models.WasteEntry, error) {
	m.record("Add")
	return m.add(ctx, snap)
}

func (m *mockEntryStore) Delete(ctx context.Context, id int64) error {
	m.record("Delete")
	return m.delete(ctx, id)
}

func (m *mockEntryStore) Reset(ctx context.Context) (int, error) {
	m.record("Reset")
	return m.reset(ctx)
}

func (m *mockEntryStore) ListForPeriod(ctx context.Context, p models.Period) ([]models.WasteEntry, error) {
	m.record("ListForPeriod")
	return m.listForPeriod(ctx, p)
}

func (m *mockEntryStore) AnnualTotal(ctx context.Context, year int) (float64, error) {
	m.record("AnnualTotal")
	return m.annualTotal(ctx, year)
}

func (m *mockEntryStore) MonthlyTotal(ctx context.Context, year, month int) (float64, error) {
	m.record("MonthlyTotal")
	return m.monthlyTotal(ctx, year, month)
}

// mockAuditStore records calls and returns configured responses.
type mockAuditStore struct {
	mu    sync.Mutex
	calls []string

	recent func(ctx context.Context, limit int) ([]models.AuditRecord, error)
	query  func(ctx context.Context, opts models.AuditQueryOpts) ([]models.AuditRecord, bool, error)
	all    func(ctx context.Context) ([]models.AuditRecord, error)
}

func (m *mockAuditStore) record(name string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = append(m.calls, name)
}

func (m *mockAuditStore) Recent(ctx context.Context, limit int) ([]models.AuditRecord, error) {
	m.record("Recent")
	return m.recent(ctx, limit)
}

func (m *mockAuditStore) Query(ctx context.Context, opts models.AuditQueryOpts) ([]models.AuditRecord, bool, error) {
	m.record("Query")
	return m.query(ctx, opts)
}

func (m *mockAuditStore) All(ctx context.Context) ([]models.AuditRecord, error) {
	m.record("All")
	return m.all(ctx)
}
