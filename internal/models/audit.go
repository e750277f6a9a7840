package models

import "time"

// EventKind is the kind of mutation an audit record describes.
type EventKind string

// Audit event kinds. These are the only values ever written to the log.
const (
	EventInsert EventKind = "insert"
	EventDelete EventKind = "delete"
	EventReset  EventKind = "reset"
)

// Valid reports whether k is one of the known event kinds.
func (k EventKind) Valid() bool {
	switch k {
	case EventInsert, EventDelete, EventReset:
		return true
	}
	return false
}

// AuditRecord is one immutable entry in the append-only audit log.
// The snapshot columns are nullable in the schema, so they are pointers
// here; in practice every record written carries a full snapshot.
type AuditRecord struct {
	ID         int64      `json:"id"`
	Kind       EventKind  `json:"event"`
	EntryDate  *time.Time `json:"entry_date,omitempty"`
	Business   *string    `json:"business,omitempty"`
	Stream     *string    `json:"stream,omitempty"`
	QuantityKG *float64   `json:"quantity_kg,omitempty"`
	OpID       string     `json:"op_id"`
	CreatedAt  time.Time  `json:"created_at"`
}

// EntrySnapshot is the audit-side copy of an entry's fields at mutation time.
type EntrySnapshot struct {
	Date       time.Time
	Business   string
	Stream     string
	QuantityKG float64
}

// Snapshot returns the audit snapshot of an entry.
func (e WasteEntry) Snapshot() EntrySnapshot {
	return EntrySnapshot{
		Date:       e.Date,
		Business:   e.Business,
		Stream:     e.Stream,
		QuantityKG: e.QuantityKG,
	}
}

// AuditQueryOpts holds filters for querying the audit log.
type AuditQueryOpts struct {
	Kind   EventKind
	Since  *time.Time
	Limit  int
	Offset int
}
