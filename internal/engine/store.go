package engine

import (
	"context"
	"time"
)

// Snapshot is the denormalized row the store keeps next to the log:
// the cached fold plus the manual metrics. Only the metrics are
// authoritative; the cached state is advisory and is validated against
// Fold on every load.
type Snapshot struct {
	State     ProgressionState
	Metrics   ManualMetrics
	UpdatedAt time.Time
}

// Store is the persistence contract the engine depends on. The log is
// the sole source of truth; the snapshot is a load-time optimization.
// Implementations map timeouts and transport failures to plain errors;
// the engine wraps them in PersistenceError.
type Store interface {
	// LoadEvents returns the full completion log in append order.
	LoadEvents(ctx context.Context) ([]CompletionEvent, error)

	// AppendEvent durably appends one event. It must either append or
	// fail; a failure must not leave a partial row behind.
	AppendEvent(ctx context.Context, e CompletionEvent) error

	// LoadSnapshot returns the cached snapshot, or nil if none exists.
	LoadSnapshot(ctx context.Context) (*Snapshot, error)

	// SaveSnapshot overwrites the cached snapshot.
	SaveSnapshot(ctx context.Context, s Snapshot) error
}

// LoadReport describes what startup reconciliation found. A snapshot
// mismatch is informational, never fatal: the fold wins and the
// snapshot is rewritten.
type LoadReport struct {
	Events           int
	SnapshotMissing  bool
	SnapshotMismatch bool
	SnapshotHealed   bool
}
