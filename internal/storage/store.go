package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jhitchenor/hungerford-holdings/internal/engine"
)

const snapshotKey = "main"

const dateLayout = "2006-01-02"

// Store is the SQLite implementation of engine.Store.
type Store struct {
	db *sql.DB
}

func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) LoadEvents(ctx context.Context) ([]engine.CompletionEvent, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT quest_id, occurred_on, reward_xp, reward_rp
		FROM completion_events
		ORDER BY id
	`)
	if err != nil {
		return nil, fmt.Errorf("events select: %w", err)
	}
	defer rows.Close()

	var out []engine.CompletionEvent
	for rows.Next() {
		var e engine.CompletionEvent
		var day string
		if err := rows.Scan(&e.QuestID, &day, &e.RewardXP, &e.RewardRP); err != nil {
			return nil, fmt.Errorf("events scan: %w", err)
		}
		e.OccurredOn, err = time.ParseInLocation(dateLayout, day, time.UTC)
		if err != nil {
			return nil, fmt.Errorf("events date %q: %w", day, err)
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("events rows: %w", err)
	}
	return out, nil
}

func (s *Store) AppendEvent(ctx context.Context, e engine.CompletionEvent) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO completion_events (quest_id, occurred_on, reward_xp, reward_rp)
		VALUES (?, ?, ?, ?)
	`, e.QuestID, e.OccurredOn.Format(dateLayout), e.RewardXP, e.RewardRP)
	if err != nil {
		return fmt.Errorf("event insert: %w", err)
	}
	return nil
}

func (s *Store) LoadSnapshot(ctx context.Context) (*engine.Snapshot, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT total_xp, total_rp, credits, level, rank, streak, golf_best, balances, updated_at
		FROM snapshot
		WHERE key = ?
	`, snapshotKey)

	var snap engine.Snapshot
	var balances sql.NullString
	var updated sql.NullTime
	err := row.Scan(
		&snap.State.TotalXP, &snap.State.TotalRP, &snap.State.Credits,
		&snap.State.Level, &snap.State.Rank,
		&snap.Metrics.Streak, &snap.Metrics.GolfBest,
		&balances, &updated,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("snapshot get: %w", err)
	}
	if balances.Valid && balances.String != "" {
		if err := json.Unmarshal([]byte(balances.String), &snap.Metrics.Balances); err != nil {
			return nil, fmt.Errorf("snapshot balances: %w", err)
		}
	}
	if updated.Valid {
		snap.UpdatedAt = updated.Time
	}
	return &snap, nil
}

func (s *Store) SaveSnapshot(ctx context.Context, snap engine.Snapshot) error {
	var balances *string
	if len(snap.Metrics.Balances) > 0 {
		raw, err := json.Marshal(snap.Metrics.Balances)
		if err != nil {
			return fmt.Errorf("snapshot balances: %w", err)
		}
		str := string(raw)
		balances = &str
	}

	// Single-statement upsert: sqlite applies it atomically, so the
	// cache row is never observable half-written.
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO snapshot (key, total_xp, total_rp, credits, level, rank, streak, golf_best, balances, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET
			total_xp = excluded.total_xp,
			total_rp = excluded.total_rp,
			credits = excluded.credits,
			level = excluded.level,
			rank = excluded.rank,
			streak = excluded.streak,
			golf_best = excluded.golf_best,
			balances = excluded.balances,
			updated_at = excluded.updated_at
	`, snapshotKey,
		snap.State.TotalXP, snap.State.TotalRP, snap.State.Credits,
		snap.State.Level, snap.State.Rank,
		snap.Metrics.Streak, snap.Metrics.GolfBest,
		balances, snap.UpdatedAt.UTC(),
	)
	if err != nil {
		return fmt.Errorf("snapshot upsert: %w", err)
	}
	return nil
}
