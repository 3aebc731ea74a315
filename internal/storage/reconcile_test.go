package storage

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhitchenor/hungerford-holdings/internal/catalog"
	"github.com/jhitchenor/hungerford-holdings/internal/engine"
)

// End-to-end reconciliation over the real sqlite store: commits in one
// session must replay bit-identically in the next, and a doctored
// snapshot must lose to the fold.
func TestSessionReplayOverSQLite(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "ledger.db")

	db, err := Open(ctx, path)
	require.NoError(t, err)

	eng, err := engine.New(ctx, catalog.Baseline(), NewStore(db))
	require.NoError(t, err)
	assert.True(t, eng.LoadReport().SnapshotMissing)

	_, err = eng.Commit(ctx, "skincare", day("2026-01-01"))
	require.NoError(t, err)
	_, err = eng.Commit(ctx, "dd_audit", day("2026-01-01"))
	require.NoError(t, err)
	res, err := eng.CommitScored(ctx, "golf_engagement", 82, day("2026-01-01"))
	require.NoError(t, err)
	assert.Equal(t, 58, res.XPAwarded)

	require.NoError(t, eng.SetMetrics(ctx, engine.ManualMetrics{Streak: 1, GolfBest: 82}))

	liveState := eng.CurrentState()
	require.NoError(t, db.Close())

	// Second session: same DB, fresh engine.
	db2, err := Open(ctx, path)
	require.NoError(t, err)
	defer db2.Close()

	eng2, err := engine.New(ctx, catalog.Baseline(), NewStore(db2))
	require.NoError(t, err)

	report := eng2.LoadReport()
	assert.Equal(t, 3, report.Events)
	assert.False(t, report.SnapshotMismatch, "clean shutdown must not report a mismatch")
	assert.Equal(t, liveState, eng2.CurrentState())
	assert.Equal(t, 82, eng2.Metrics().GolfBest)

	// The guard state replays too: same-day repeats stay rejected.
	_, err = eng2.Commit(ctx, "skincare", day("2026-01-01"))
	var already engine.AlreadyCompletedError
	require.ErrorAs(t, err, &already)

	_, err = eng2.Commit(ctx, "skincare", day("2026-01-02"))
	require.NoError(t, err)
}

func TestStaleSnapshotLosesToFold(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "ledger.db")

	db, err := Open(ctx, path)
	require.NoError(t, err)
	defer db.Close()
	st := NewStore(db)

	require.NoError(t, st.AppendEvent(ctx, engine.CompletionEvent{
		QuestID: "skincare", OccurredOn: day("2026-01-01"), RewardXP: 10,
	}))
	require.NoError(t, st.SaveSnapshot(ctx, engine.Snapshot{
		State:   engine.ProgressionState{TotalXP: 9999, Level: 20, Rank: "Chairman"},
		Metrics: engine.ManualMetrics{Streak: 7},
	}))

	eng, err := engine.New(ctx, catalog.Baseline(), st)
	require.NoError(t, err)

	report := eng.LoadReport()
	assert.True(t, report.SnapshotMismatch)
	assert.True(t, report.SnapshotHealed)

	want := engine.Fold(eng.Events())
	assert.Equal(t, want, eng.CurrentState())
	assert.Equal(t, 7, eng.Metrics().Streak, "manual metrics survive the heal")

	snap, err := st.LoadSnapshot(ctx)
	require.NoError(t, err)
	require.NotNil(t, snap)
	assert.Equal(t, want, snap.State)
}
