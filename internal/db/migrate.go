package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate runs all schema migrations. Statements are idempotent; the
// migration system re-runs all of them on every open.
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
	`CREATE TABLE IF NOT EXISTS roadmaps (
		id          TEXT PRIMARY KEY,
		slug        TEXT NOT NULL UNIQUE,
		title       TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		time_value  INTEGER NOT NULL DEFAULT 0,
		time_unit   TEXT NOT NULL DEFAULT '',
		source      TEXT NOT NULL DEFAULT 'file',
		archived_at TEXT,
		created_at  TEXT NOT NULL,
		updated_at  TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS roadmap_nodes (
		id          TEXT PRIMARY KEY,
		roadmap_id  TEXT NOT NULL REFERENCES roadmaps(id) ON DELETE CASCADE,
		parent_id   TEXT REFERENCES roadmap_nodes(id) ON DELETE CASCADE,
		kind        TEXT NOT NULL CHECK(kind IN ('module','topic','subtopic')),
		title       TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		estimate    TEXT NOT NULL DEFAULT '',
		order_index INTEGER NOT NULL DEFAULT 0
	)`,

	`CREATE INDEX IF NOT EXISTS idx_roadmap_nodes_roadmap
		ON roadmap_nodes(roadmap_id, parent_id, order_index)`,

	`CREATE TABLE IF NOT EXISTS export_log (
		id          TEXT PRIMARY KEY,
		roadmap_id  TEXT NOT NULL REFERENCES roadmaps(id) ON DELETE CASCADE,
		format      TEXT NOT NULL CHECK(format IN ('pdf','ics','gcal')),
		filename    TEXT NOT NULL DEFAULT '',
		entry_count INTEGER NOT NULL DEFAULT 0,
		created_at  TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_export_log_roadmap
		ON export_log(roadmap_id, created_at)`,
}
