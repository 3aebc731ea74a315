package engine

import "time"

// CompletionEvent is one row of the progression ledger. Rewards are
// captured at commit time so later catalog edits never rewrite history.
// Events are write-once: nothing in this package mutates one after it
// has been appended.
type CompletionEvent struct {
	QuestID    string
	OccurredOn time.Time // civil date, normalized by DateOf
	RewardXP   int
	RewardRP   int
}

// ProgressionState is the fold of the ledger. It is a view, never a
// fact: it must always be reproducible by replaying the log from empty.
type ProgressionState struct {
	TotalXP int
	TotalRP int
	Credits int
	Level   int
	Rank    string
}

// ManualMetrics are user-entered scalars persisted alongside, but never
// derived from, the ledger.
type ManualMetrics struct {
	Streak   int
	GolfBest int
	Balances map[string]int
}

// Clone returns a deep copy so callers cannot alias the engine's map.
func (m ManualMetrics) Clone() ManualMetrics {
	out := m
	if m.Balances != nil {
		out.Balances = make(map[string]int, len(m.Balances))
		for k, v := range m.Balances {
			out.Balances[k] = v
		}
	}
	return out
}

// DateOf truncates t to its civil date. Daily admissibility is judged
// by calendar date, not elapsed hours, so a session spanning midnight
// re-evaluates with the date at the moment of commit.
func DateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// DateKey renders a civil date as the stable ledger key form.
func DateKey(t time.Time) string {
	return DateOf(t).Format("2006-01-02")
}
