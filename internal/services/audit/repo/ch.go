// Package repo writes access decisions to ClickHouse
package repo

import (
	"context"

	"gitgate/internal/platform/store"
	"gitgate/internal/services/audit/domain"
)

// Table is the ClickHouse table decisions land in
const Table = "access_decisions"

// Writer appends decision rows to the audit table
type Writer interface {
	Write(ctx context.Context, ds []domain.Decision) error
}

// CH implements Writer over the platform ClickHouse seam
type CH struct{ db store.Clickhouse }

// NewCH constructs a ClickHouse writer
func NewCH(db store.Clickhouse) *CH { return &CH{db: db} }

// Write implements Writer
func (w *CH) Write(ctx context.Context, ds []domain.Decision) error {
	if len(ds) == 0 {
		return nil
	}
	rows := make([][]any, 0, len(ds))
	for _, d := range ds {
		allowed := uint8(0)
		if d.Allowed {
			allowed = 1
		}
		rows = append(rows, []any{
			d.EventID, d.At, d.Protocol, d.Command,
			d.ActorKind, d.ActorID, d.ProjectID, d.Path,
			allowed, d.Code, d.Message, int32(d.Changes),
		})
	}
	return w.db.Insert(ctx, Table, rows)
}
