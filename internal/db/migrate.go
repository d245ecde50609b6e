package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate runs all schema migrations.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			// Tolerate "duplicate column name" errors from ALTER TABLE
			// since the migration system re-runs all statements.
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS chat_sessions (
		id         TEXT PRIMARY KEY,
		started_at TEXT NOT NULL,
		ended_at   TEXT
	)`,

	`CREATE TABLE IF NOT EXISTS messages (
		id         TEXT PRIMARY KEY,
		session_id TEXT NOT NULL REFERENCES chat_sessions(id) ON DELETE CASCADE,
		role       TEXT NOT NULL CHECK(role IN ('user','bot')),
		content    TEXT NOT NULL,
		created_at TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_messages_session ON messages(session_id)`,
	`CREATE INDEX IF NOT EXISTS idx_messages_created ON messages(created_at)`,

	`CREATE TABLE IF NOT EXISTS profiles (
		session_id      TEXT PRIMARY KEY REFERENCES chat_sessions(id) ON DELETE CASCADE,
		name            TEXT NOT NULL DEFAULT '',
		age             INTEGER NOT NULL DEFAULT 0 CHECK(age >= 0),
		gender          TEXT NOT NULL DEFAULT '',
		medical_history TEXT NOT NULL DEFAULT '',
		medications     TEXT NOT NULL DEFAULT '',
		allergies       TEXT NOT NULL DEFAULT ''
	)`,
}
