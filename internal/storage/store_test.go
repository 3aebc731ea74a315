package storage

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/jhitchenor/hungerford-holdings/internal/engine"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	ctx := context.Background()

	path := filepath.Join(t.TempDir(), "test.db")
	db, err := Open(ctx, path)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return NewStore(db)
}

func day(s string) time.Time {
	d, err := time.ParseInLocation("2006-01-02", s, time.UTC)
	if err != nil {
		panic(err)
	}
	return d
}

func TestEventsRoundTrip(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	events := []engine.CompletionEvent{
		{QuestID: "skincare", OccurredOn: day("2026-01-01"), RewardXP: 10},
		{QuestID: "dd_audit", OccurredOn: day("2026-01-01"), RewardXP: 60, RewardRP: 20},
		{QuestID: "skincare", OccurredOn: day("2026-01-02"), RewardXP: 10},
	}
	for _, e := range events {
		if err := st.AppendEvent(ctx, e); err != nil {
			t.Fatalf("append %q: %v", e.QuestID, err)
		}
	}

	got, err := st.LoadEvents(ctx)
	if err != nil {
		t.Fatalf("load events: %v", err)
	}
	if len(got) != len(events) {
		t.Fatalf("got %d events, want %d", len(got), len(events))
	}
	for i := range events {
		if got[i] != events[i] {
			t.Fatalf("event %d = %+v, want %+v", i, got[i], events[i])
		}
	}
}

func TestAppendDuplicateDayRejected(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	e := engine.CompletionEvent{QuestID: "skincare", OccurredOn: day("2026-01-01"), RewardXP: 10}
	if err := st.AppendEvent(ctx, e); err != nil {
		t.Fatalf("first append: %v", err)
	}
	if err := st.AppendEvent(ctx, e); err == nil {
		t.Fatalf("expected unique-index violation on duplicate (quest, date) append")
	}

	got, err := st.LoadEvents(ctx)
	if err != nil {
		t.Fatalf("load events: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("got %d events after rejected append, want 1", len(got))
	}
}

func TestSnapshotRoundTrip(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	got, err := st.LoadSnapshot(ctx)
	if err != nil {
		t.Fatalf("load empty snapshot: %v", err)
	}
	if got != nil {
		t.Fatalf("expected nil snapshot on fresh store, got %+v", got)
	}

	snap := engine.Snapshot{
		State: engine.ProgressionState{TotalXP: 510, TotalRP: 20, Credits: 55, Level: 2, Rank: "Associate"},
		Metrics: engine.ManualMetrics{
			Streak:   4,
			GolfBest: 82,
			Balances: map[string]int{"santander": -250, "chase": 1200},
		},
		UpdatedAt: time.Date(2026, 1, 2, 15, 4, 5, 0, time.UTC),
	}
	if err := st.SaveSnapshot(ctx, snap); err != nil {
		t.Fatalf("save snapshot: %v", err)
	}

	// Upsert overwrites in place.
	snap.State.TotalXP = 560
	snap.Metrics.Balances["chase"] = 1300
	if err := st.SaveSnapshot(ctx, snap); err != nil {
		t.Fatalf("save snapshot again: %v", err)
	}

	got, err = st.LoadSnapshot(ctx)
	if err != nil {
		t.Fatalf("load snapshot: %v", err)
	}
	if got == nil {
		t.Fatalf("expected snapshot, got nil")
	}
	if got.State != snap.State {
		t.Fatalf("state = %+v, want %+v", got.State, snap.State)
	}
	if got.Metrics.Streak != 4 || got.Metrics.GolfBest != 82 {
		t.Fatalf("metrics = %+v", got.Metrics)
	}
	if got.Metrics.Balances["chase"] != 1300 || got.Metrics.Balances["santander"] != -250 {
		t.Fatalf("balances = %+v", got.Metrics.Balances)
	}
}
