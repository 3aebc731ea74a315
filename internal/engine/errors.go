package engine

import (
	"fmt"
	"time"
)

// UnknownQuestError indicates a quest id with no catalog entry. This is
// a config/programmer error and is surfaced immediately.
type UnknownQuestError struct {
	ID string
}

func (e UnknownQuestError) Error() string {
	return fmt.Sprintf("unknown quest %q", e.ID)
}

// AlreadyCompletedError is the expected no-op outcome: the quest is not
// admissible for the given date. No state changed.
type AlreadyCompletedError struct {
	ID   string
	Date time.Time
}

func (e AlreadyCompletedError) Error() string {
	return fmt.Sprintf("quest %q already completed (as of %s)", e.ID, DateKey(e.Date))
}

// PersistenceError wraps a failed store operation. The in-memory state
// is guaranteed unchanged; the caller must retry or degrade, never
// treat it as success.
type PersistenceError struct {
	Op  string
	Err error
}

func (e PersistenceError) Error() string {
	return fmt.Sprintf("store %s failed: %v", e.Op, e.Err)
}

func (e PersistenceError) Unwrap() error { return e.Err }

// StoreUnavailableError is returned by every commit while the engine
// runs in degraded read-only mode (store unreachable at startup).
type StoreUnavailableError struct{}

func (StoreUnavailableError) Error() string {
	return "store unavailable: engine is read-only"
}

// ScoreRuleError indicates a scored commit against a quest with no
// score rule, or a plain commit against a score-only quest.
type ScoreRuleError struct {
	ID     string
	Scored bool
}

func (e ScoreRuleError) Error() string {
	if e.Scored {
		return fmt.Sprintf("quest %q has no score rule", e.ID)
	}
	return fmt.Sprintf("quest %q requires a score", e.ID)
}
