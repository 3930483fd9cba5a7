package storage

import (
	"context"
	"database/sql"
	"fmt"
)

func Migrate(ctx context.Context, db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS kv (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);`,
		// Audit trail of checklist transitions, one row per toggle/visit.
		`CREATE TABLE IF NOT EXISTS vote_log (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			target_id TEXT NOT NULL,
			action TEXT NOT NULL,
			day TEXT NOT NULL,
			at DATETIME NOT NULL
		);`,
		`CREATE INDEX IF NOT EXISTS idx_vote_log_day ON vote_log(day);`,
		`CREATE INDEX IF NOT EXISTS idx_vote_log_at ON vote_log(at);`,
	}

	return WithTx(ctx, db, func(tx *sql.Tx) error {
		for _, stmt := range stmts {
			if _, err := tx.ExecContext(ctx, stmt); err != nil {
				return fmt.Errorf("migrate: %w", err)
			}
		}
		return nil
	})
}
