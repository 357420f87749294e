// Package domain defines the access decision audit types and ports
package domain

import (
	"context"
	"time"
)

// Decision is one gate verdict, recorded after the check completes
type Decision struct {
	EventID   string // uuid
	At        time.Time
	Protocol  string
	Command   string
	ActorKind string
	ActorID   int64
	ProjectID int64 // 0 when the path never resolved
	Path      string
	Allowed   bool
	Code      uint16 // platform error code, 0 when allowed
	Message   string
	Changes   int // ref changes in the push, 0 for pulls
}

// RecorderPort records decisions; implementations must never fail the check
// path, so Record has no error return and logs internally
type RecorderPort interface {
	Record(ctx context.Context, d Decision)
}
