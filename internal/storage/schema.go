package storage

import (
	"context"
	"database/sql"
	"fmt"
)

func Migrate(ctx context.Context, db *sql.DB) error {
	stmts := []string{
		// The completion log: one durable row per event, append-only.
		// The unique index is the structural backstop to the engine's
		// idempotency guard: a duplicate (quest, date) append fails at
		// write time instead of corrupting history.
		`CREATE TABLE IF NOT EXISTS completion_events (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			quest_id TEXT NOT NULL,
			occurred_on TEXT NOT NULL,
			reward_xp INTEGER NOT NULL,
			reward_rp INTEGER NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);`,
		`CREATE UNIQUE INDEX IF NOT EXISTS idx_completion_events_quest_date
			ON completion_events(quest_id, occurred_on);`,

		// Advisory cache + manual metrics. Single row keyed by 'main'.
		`CREATE TABLE IF NOT EXISTS snapshot (
			key TEXT PRIMARY KEY,
			total_xp INTEGER NOT NULL DEFAULT 0,
			total_rp INTEGER NOT NULL DEFAULT 0,
			credits INTEGER NOT NULL DEFAULT 0,
			level INTEGER NOT NULL DEFAULT 1,
			rank TEXT NOT NULL DEFAULT '',
			streak INTEGER NOT NULL DEFAULT 0,
			golf_best INTEGER NOT NULL DEFAULT 0,
			balances TEXT,
			updated_at DATETIME
		);`,
	}

	for _, stmt := range stmts {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}
	return nil
}
