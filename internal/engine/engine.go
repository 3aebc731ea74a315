// Package engine implements the progression ledger: an append-only
// completion log, the idempotency guard over it, the deterministic
// economy fold, and the commit protocol that ties them to a store.
package engine

import (
	"context"
	"sync"
	"time"

	"github.com/jhitchenor/hungerford-holdings/internal/catalog"
)

// Engine owns the working copy of the ledger and is the only writer to
// it. Commits serialize on the write lock so no two commits can
// interleave their guard-check-then-append sequence; queries share the
// read lock and only ever see a fully committed ledger.
type Engine struct {
	mu sync.RWMutex

	catalog *catalog.Catalog
	store   Store

	ledger  *Ledger
	state   ProgressionState
	metrics ManualMetrics

	readOnly bool
	report   LoadReport
}

// New loads the ledger from the store, reconciles the snapshot against
// the fold, and returns a read-write engine. A store failure here means
// the caller should fall back to NewDegraded rather than run against a
// working copy that would be lost on restart.
func New(ctx context.Context, cat *catalog.Catalog, store Store) (*Engine, error) {
	events, err := store.LoadEvents(ctx)
	if err != nil {
		return nil, PersistenceError{Op: "load", Err: err}
	}

	e := &Engine{
		catalog: cat,
		store:   store,
		ledger:  NewLedger(events),
	}
	e.state = Fold(e.ledger.Events())
	e.report.Events = e.ledger.Len()

	snap, err := store.LoadSnapshot(ctx)
	switch {
	case err != nil:
		// The cached state is advisory, but the manual metrics live
		// only in the snapshot row. Proceeding without them would
		// rewrite the row from the fold and lose them for good, so an
		// unreadable snapshot refuses the session like an unreadable
		// log does.
		return nil, PersistenceError{Op: "load snapshot", Err: err}
	case snap == nil:
		e.report.SnapshotMissing = true
	default:
		e.metrics = snap.Metrics.Clone()
		if snap.State != e.state {
			e.report.SnapshotMismatch = true
		}
	}

	if e.report.SnapshotMissing || e.report.SnapshotMismatch {
		if err := store.SaveSnapshot(ctx, e.snapshotLocked()); err == nil {
			e.report.SnapshotHealed = true
		}
	}
	return e, nil
}

// NewDegraded builds a read-only engine seeded from an empty ledger.
// Every commit is rejected with StoreUnavailableError; nothing is ever
// silently accepted into a local-only state.
func NewDegraded(cat *catalog.Catalog) *Engine {
	e := &Engine{
		catalog:  cat,
		ledger:   NewLedger(nil),
		readOnly: true,
	}
	e.state = Fold(nil)
	return e
}

// Catalog returns the immutable quest catalog the engine was built with.
func (e *Engine) Catalog() *catalog.Catalog { return e.catalog }

// ReadOnly reports whether the engine is in degraded mode.
func (e *Engine) ReadOnly() bool { return e.readOnly }

// LoadReport returns what startup reconciliation found.
func (e *Engine) LoadReport() LoadReport {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.report
}

// CommitResult reports one successful commit.
type CommitResult struct {
	Event          CompletionEvent
	XPAwarded      int
	RPAwarded      int
	CreditsAwarded int
	LevelBefore    int
	LevelAfter     int
	LevelUp        bool
	State          ProgressionState

	// SnapshotStale is set when the event was durably appended but the
	// snapshot cache write failed. The commit still succeeded: the next
	// load recomputes the snapshot from the log.
	SnapshotStale bool
}

// Commit records a completion of a flat-reward quest as of the given
// time. It is atomic from the caller's perspective: either the log
// gained the event and the returned state reflects it, or a typed
// error explains why nothing changed.
func (e *Engine) Commit(ctx context.Context, questID string, asOf time.Time) (*CommitResult, error) {
	return e.commit(ctx, questID, nil, asOf)
}

// CommitScored records a completion of a score-rule quest, computing
// rewardXP = base + max(0, cap - score) before entering the normal
// commit path. The computed reward is captured in the event verbatim.
func (e *Engine) CommitScored(ctx context.Context, questID string, score int, asOf time.Time) (*CommitResult, error) {
	return e.commit(ctx, questID, &score, asOf)
}

func (e *Engine) commit(ctx context.Context, questID string, score *int, asOf time.Time) (*CommitResult, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.readOnly {
		return nil, StoreUnavailableError{}
	}

	def, ok := e.catalog.Get(questID)
	if !ok {
		return nil, UnknownQuestError{ID: questID}
	}

	rewardXP := def.RewardXP
	rewardRP := def.RewardRP
	switch {
	case score != nil && def.Score == nil:
		return nil, ScoreRuleError{ID: questID, Scored: true}
	case score == nil && def.Score != nil:
		return nil, ScoreRuleError{ID: questID}
	case score != nil:
		rewardXP = def.Score.BaseXP
		if margin := def.Score.Cap - *score; margin > 0 {
			rewardXP += margin
		}
	}

	if !Admissible(e.ledger, def, asOf) {
		return nil, AlreadyCompletedError{ID: questID, Date: asOf}
	}

	event := CompletionEvent{
		QuestID:    questID,
		OccurredOn: DateOf(asOf),
		RewardXP:   rewardXP,
		RewardRP:   rewardRP,
	}

	// Durability first: no in-memory advance without a logged event.
	if err := e.store.AppendEvent(ctx, event); err != nil {
		return nil, PersistenceError{Op: "append", Err: err}
	}

	before := e.state
	e.ledger.Append(event)
	e.state = Fold(e.ledger.Events())

	res := &CommitResult{
		Event:          event,
		XPAwarded:      rewardXP,
		RPAwarded:      rewardRP,
		CreditsAwarded: CreditsForEvent(event),
		LevelBefore:    before.Level,
		LevelAfter:     e.state.Level,
		LevelUp:        e.state.Level > before.Level,
		State:          e.state,
	}

	// Snapshot write is a pure optimization; its failure never fails
	// the commit. The next load heals the divergence from the log.
	if err := e.store.SaveSnapshot(ctx, e.snapshotLocked()); err != nil {
		res.SnapshotStale = true
	}
	return res, nil
}

func (e *Engine) snapshotLocked() Snapshot {
	return Snapshot{
		State:     e.state,
		Metrics:   e.metrics.Clone(),
		UpdatedAt: time.Now().UTC(),
	}
}

// CurrentState returns the fold of the current ledger.
func (e *Engine) CurrentState() ProgressionState {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.state
}

// IsDone reports whether the quest is inadmissible as of the given
// time: done forever for Permanent quests, done today for Daily ones.
// Unknown ids report false.
func (e *Engine) IsDone(questID string, asOf time.Time) bool {
	e.mu.RLock()
	defer e.mu.RUnlock()

	def, ok := e.catalog.Get(questID)
	if !ok {
		return false
	}
	return !Admissible(e.ledger, def, asOf)
}

// Events returns a copy of the completion log for external charting.
func (e *Engine) Events() []CompletionEvent {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.ledger.Events()
}

// Metrics returns the current manual metrics.
func (e *Engine) Metrics() ManualMetrics {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.metrics.Clone()
}

// SetMetrics replaces the manual metrics and persists the snapshot.
// Unlike the commit-path snapshot write this one must succeed: the
// snapshot row is the only durable home the metrics have.
func (e *Engine) SetMetrics(ctx context.Context, m ManualMetrics) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.readOnly {
		return StoreUnavailableError{}
	}

	prev := e.metrics
	e.metrics = m.Clone()
	if err := e.store.SaveSnapshot(ctx, e.snapshotLocked()); err != nil {
		e.metrics = prev
		return PersistenceError{Op: "snapshot", Err: err}
	}
	return nil
}

// SelectCritical surfaces urgent work across all groups: definitions
// flagged urgent, or with a flat reward at or above minXP. Pure
// read-side query; it has no effect on commit semantics.
func SelectCritical(cat *catalog.Catalog, minXP int) []catalog.QuestDefinition {
	var out []catalog.QuestDefinition
	for _, q := range cat.All() {
		if q.Urgent || q.RewardXP >= minXP {
			out = append(out, q)
		}
	}
	return out
}

// SelectCritical applies the package-level query to the engine's own
// catalog.
func (e *Engine) SelectCritical(minXP int) []catalog.QuestDefinition {
	return SelectCritical(e.catalog, minXP)
}
