package engine

import "time"

// Ledger is the in-memory working copy of the completion log: an
// append-only ordered slice plus a completion index so admissibility
// checks never rescan the full log.
//
// Index keys are questID for lifetime lookups and questID@date for
// per-day lookups; both are maintained on every append and rebuilt
// wholesale when a ledger is constructed from loaded events.
type Ledger struct {
	events []CompletionEvent
	index  map[string]int // key -> position of latest matching event
}

func NewLedger(events []CompletionEvent) *Ledger {
	l := &Ledger{
		events: make([]CompletionEvent, 0, len(events)),
		index:  make(map[string]int, len(events)*2),
	}
	for _, e := range events {
		l.Append(e)
	}
	return l
}

// Append records an event. It does not check admissibility; that is the
// guard's job, run by the commit protocol before any append.
func (l *Ledger) Append(e CompletionEvent) {
	e.OccurredOn = DateOf(e.OccurredOn)
	l.events = append(l.events, e)
	pos := len(l.events) - 1
	l.index[e.QuestID] = pos
	l.index[e.QuestID+"@"+DateKey(e.OccurredOn)] = pos
}

func (l *Ledger) Len() int { return len(l.events) }

// Events returns a copy of the log in append order. Callers get a
// snapshot they can read concurrently with future appends.
func (l *Ledger) Events() []CompletionEvent {
	out := make([]CompletionEvent, len(l.events))
	copy(out, l.events)
	return out
}

// Completed reports whether any event for questID exists.
func (l *Ledger) Completed(questID string) bool {
	_, ok := l.index[questID]
	return ok
}

// CompletedOn reports whether an event for questID exists on the given
// civil date.
func (l *Ledger) CompletedOn(questID string, date time.Time) bool {
	_, ok := l.index[questID+"@"+DateKey(date)]
	return ok
}

// Latest returns the most recent event for questID, if any.
func (l *Ledger) Latest(questID string) (CompletionEvent, bool) {
	pos, ok := l.index[questID]
	if !ok {
		return CompletionEvent{}, false
	}
	return l.events[pos], true
}
