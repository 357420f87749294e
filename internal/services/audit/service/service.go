// Package service implements the access decision recorder
package service

import (
	"context"
	"time"

	"gitgate/internal/platform/logger"
	"gitgate/internal/services/audit/domain"
	"gitgate/internal/services/audit/repo"
)

// Svc records decisions one at a time; writes are best effort and a failed
// write is logged, never surfaced to the caller
type Svc struct {
	w   repo.Writer
	log logger.Logger
}

// New constructs a recorder; a nil writer yields a no-op recorder
func New(w repo.Writer, log logger.Logger) *Svc {
	return &Svc{w: w, log: log}
}

// Record implements domain.RecorderPort
func (s *Svc) Record(ctx context.Context, d domain.Decision) {
	if s == nil || s.w == nil {
		return
	}
	if d.At.IsZero() {
		d.At = time.Now().UTC()
	}
	if err := s.w.Write(ctx, []domain.Decision{d}); err != nil {
		s.log.Warn().
			Err(err).
			Str("event_id", d.EventID).
			Str("path", d.Path).
			Msg("audit write failed")
	}
}

var _ domain.RecorderPort = (*Svc)(nil)
