package db

import (
	"database/sql"
	"fmt"
)

// migrations are idempotent schema statements, run in order on every
// open.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS custom_formats (
		id         TEXT PRIMARY KEY,
		name       TEXT NOT NULL,
		template   TEXT NOT NULL,
		valid      INTEGER NOT NULL DEFAULT 0,
		slots      TEXT NOT NULL,
		created_at TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS prompts (
		id              TEXT NOT NULL,
		version         INTEGER NOT NULL,
		scaffold        TEXT NOT NULL,
		raw_text        TEXT NOT NULL,
		outputs         TEXT NOT NULL,
		negative_prompt TEXT NOT NULL DEFAULT '',
		source_model    TEXT NOT NULL DEFAULT '',
		created_at      TEXT NOT NULL,
		PRIMARY KEY (id, version)
	)`,
	`CREATE INDEX IF NOT EXISTS idx_prompts_id ON prompts(id)`,
}

// Migrate runs all schema migrations.
func Migrate(database *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := database.Exec(stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}
