// Package store provides data access for the waste ledger.
//
// Two stores share one database: EntryStore owns the mutable inventory of
// current entries, AuditStore owns the append-only audit log. Every entry
// mutation writes its audit rows inside the same transaction, so a commit
// either lands both sides or neither.
package store

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/sirupsen/logrus"

	"github.com/wastelabs/wastelog/internal/dbpool"
	"github.com/wastelabs/wastelog/internal/models"
)

const defaultQueryTimeout = 30 * time.Second

// psql builds queries with Postgres-style $N placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// Base contains shared dependencies for all stores.
// Embed this in each store struct.
type Base struct {
	Pool *dbpool.Pool
	Log  *logrus.Logger
}

// withTimeout creates a context with the default query timeout.
func withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, defaultQueryTimeout)
}

// insertAuditTx appends one audit row inside the caller's transaction.
// A nil at uses the database clock; reset passes an explicit shared
// timestamp so every row of the batch carries the same event time.
func insertAuditTx(
	ctx context.Context,
	tx pgx.Tx,
	kind models.EventKind,
	snap models.EntrySnapshot,
	opID string,
	at *time.Time,
) error {
	_, err := tx.Exec(ctx, `
		INSERT INTO audit_log (event, entry_date, business, stream, quantity_kg, op_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, COALESCE($7, NOW()))`,
		kind, snap.Date, snap.Business, snap.Stream, snap.QuantityKG, opID, at,
	)

	return err
}
