package engine

import (
	"time"

	"github.com/jhitchenor/hungerford-holdings/internal/catalog"
)

// Admissible decides whether completing a quest as of the given date
// would be a new completion. Pure predicate over the ledger snapshot;
// it never mutates anything.
//
// Permanent quests are lifetime-once. Daily quests are once per civil
// date: the absence of today's record is the reset, there is no
// explicit reset step.
func Admissible(l *Ledger, def catalog.QuestDefinition, asOf time.Time) bool {
	switch def.Recurrence {
	case catalog.RecurrencePermanent:
		return !l.Completed(def.ID)
	case catalog.RecurrenceDaily:
		return !l.CompletedOn(def.ID, asOf)
	default:
		// Catalog validation rejects unknown recurrence; refuse rather
		// than guess if one slips through.
		return false
	}
}
