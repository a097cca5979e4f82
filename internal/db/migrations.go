package db

import "fmt"

// migrate runs database migrations.
func (s *SQLite) migrate() error {
	query := `
		CREATE TABLE IF NOT EXISTS sessions (
			session_id      TEXT PRIMARY KEY,
			classrooms      TEXT NOT NULL,
			days            TEXT NOT NULL,
			time_slots      TEXT NOT NULL,
			created_at      DATETIME NOT NULL,
			updated_at      DATETIME NOT NULL
		);

		CREATE TABLE IF NOT EXISTS entries (
			id              TEXT PRIMARY KEY,
			session_id      TEXT NOT NULL REFERENCES sessions(session_id) ON DELETE CASCADE,
			position        INTEGER NOT NULL,
			day             TEXT NOT NULL,
			time_slot       TEXT NOT NULL,
			subject         TEXT NOT NULL,
			teacher         TEXT NOT NULL,
			classroom       TEXT NOT NULL,
			semester        TEXT NOT NULL,
			color           TEXT NOT NULL DEFAULT ''
		);

		CREATE INDEX IF NOT EXISTS idx_entries_session ON entries(session_id, position);
		CREATE INDEX IF NOT EXISTS idx_sessions_updated ON sessions(updated_at);
	`

	if _, err := s.db.Exec(query); err != nil {
		return fmt.Errorf("creating session tables: %w", err)
	}

	return nil
}
