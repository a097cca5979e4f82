// Package db provides SQLite storage implementation.
package db

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"slate/internal/schedule"
)

// SQLite implements schedule.Store using SQLite.
type SQLite struct {
	db *sql.DB
}

// New creates a new SQLite store and runs migrations.
func New(path string) (*SQLite, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("connecting to database: %w", err)
	}

	s := &SQLite{db: db}
	if err := s.migrate(); err != nil {
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return s, nil
}

// SaveSession upserts a session and replaces its stored entries.
func (s *SQLite) SaveSession(ctx context.Context, rec *schedule.SessionRecord) error {
	classrooms, days, slots, err := marshalMeta(rec.Meta)
	if err != nil {
		return err
	}

	now := time.Now()
	createdAt := rec.CreatedAt
	if createdAt.IsZero() {
		createdAt = now
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO sessions (session_id, classrooms, days, time_slots, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(session_id) DO UPDATE SET
			classrooms = excluded.classrooms,
			days       = excluded.days,
			time_slots = excluded.time_slots,
			updated_at = excluded.updated_at
	`, rec.SessionID, classrooms, days, slots, createdAt.Format(time.RFC3339), now.Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("upserting session: %w", err)
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM entries WHERE session_id = ?`, rec.SessionID); err != nil {
		return fmt.Errorf("clearing entries: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO entries (id, session_id, position, day, time_slot, subject, teacher, classroom, semester, color)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("preparing insert: %w", err)
	}
	defer func() { _ = stmt.Close() }()

	for i, e := range rec.Entries {
		if _, err := stmt.ExecContext(ctx, e.ID, rec.SessionID, i,
			e.Day, e.TimeSlot, e.Subject, e.Teacher, e.Classroom, e.Semester, e.Color); err != nil {
			return fmt.Errorf("inserting entry %d: %w", i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing session: %w", err)
	}
	return nil
}

// LoadSession retrieves a stored session by handle.
func (s *SQLite) LoadSession(ctx context.Context, sessionID string) (*schedule.SessionRecord, error) {
	return s.loadSession(ctx, `
		SELECT session_id, classrooms, days, time_slots, created_at, updated_at
		FROM sessions
		WHERE session_id = ?
	`, sessionID)
}

// LatestSession retrieves the most recently updated session.
func (s *SQLite) LatestSession(ctx context.Context) (*schedule.SessionRecord, error) {
	return s.loadSession(ctx, `
		SELECT session_id, classrooms, days, time_slots, created_at, updated_at
		FROM sessions
		ORDER BY updated_at DESC
		LIMIT 1
	`)
}

func (s *SQLite) loadSession(ctx context.Context, query string, args ...any) (*schedule.SessionRecord, error) {
	var (
		rec        schedule.SessionRecord
		classrooms string
		days       string
		slots      string
		createdAt  string
		updatedAt  string
	)

	err := s.db.QueryRowContext(ctx, query, args...).Scan(
		&rec.SessionID, &classrooms, &days, &slots, &createdAt, &updatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("querying session: %w", err)
	}

	if rec.Meta, err = unmarshalMeta(classrooms, days, slots); err != nil {
		return nil, err
	}
	if rec.CreatedAt, err = time.Parse(time.RFC3339, createdAt); err != nil {
		return nil, fmt.Errorf("parsing created at: %w", err)
	}
	if rec.UpdatedAt, err = time.Parse(time.RFC3339, updatedAt); err != nil {
		return nil, fmt.Errorf("parsing updated at: %w", err)
	}

	if rec.Entries, err = s.loadEntries(ctx, rec.SessionID); err != nil {
		return nil, err
	}
	return &rec, nil
}

func (s *SQLite) loadEntries(ctx context.Context, sessionID string) ([]*schedule.Entry, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, day, time_slot, subject, teacher, classroom, semester, color
		FROM entries
		WHERE session_id = ?
		ORDER BY position
	`, sessionID)
	if err != nil {
		return nil, fmt.Errorf("querying entries: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var entries []*schedule.Entry
	for rows.Next() {
		var e schedule.Entry
		if err := rows.Scan(&e.ID, &e.Day, &e.TimeSlot, &e.Subject, &e.Teacher, &e.Classroom, &e.Semester, &e.Color); err != nil {
			return nil, fmt.Errorf("scanning entry: %w", err)
		}
		entries = append(entries, &e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating entries: %w", err)
	}
	return entries, nil
}

// ListSessions returns summaries of all stored sessions, newest first.
func (s *SQLite) ListSessions(ctx context.Context) ([]schedule.SessionSummary, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT s.session_id, s.updated_at, COUNT(e.id)
		FROM sessions s
		LEFT JOIN entries e ON e.session_id = s.session_id
		GROUP BY s.session_id
		ORDER BY s.updated_at DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("querying sessions: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var out []schedule.SessionSummary
	for rows.Next() {
		var (
			sum       schedule.SessionSummary
			updatedAt string
		)
		if err := rows.Scan(&sum.SessionID, &updatedAt, &sum.Entries); err != nil {
			return nil, fmt.Errorf("scanning session: %w", err)
		}
		if sum.UpdatedAt, err = time.Parse(time.RFC3339, updatedAt); err != nil {
			return nil, fmt.Errorf("parsing updated at: %w", err)
		}
		out = append(out, sum)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating sessions: %w", err)
	}
	return out, nil
}

// DeleteSession removes a stored session and its entries.
func (s *SQLite) DeleteSession(ctx context.Context, sessionID string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM entries WHERE session_id = ?`, sessionID); err != nil {
		return fmt.Errorf("deleting entries: %w", err)
	}

	result, err := tx.ExecContext(ctx, `DELETE FROM sessions WHERE session_id = ?`, sessionID)
	if err != nil {
		return fmt.Errorf("deleting session: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return fmt.Errorf("session %s not found", sessionID)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing delete: %w", err)
	}
	return nil
}

// Close closes the database connection.
func (s *SQLite) Close() error {
	return s.db.Close()
}

func marshalMeta(m schedule.GridMetadata) (classrooms, days, slots string, err error) {
	cb, err := json.Marshal(m.Classrooms)
	if err != nil {
		return "", "", "", fmt.Errorf("marshaling classrooms: %w", err)
	}
	db, err := json.Marshal(m.Days)
	if err != nil {
		return "", "", "", fmt.Errorf("marshaling days: %w", err)
	}
	sb, err := json.Marshal(m.TimeSlots)
	if err != nil {
		return "", "", "", fmt.Errorf("marshaling time slots: %w", err)
	}
	return string(cb), string(db), string(sb), nil
}

func unmarshalMeta(classrooms, days, slots string) (schedule.GridMetadata, error) {
	var m schedule.GridMetadata
	if err := json.Unmarshal([]byte(classrooms), &m.Classrooms); err != nil {
		return m, fmt.Errorf("parsing classrooms: %w", err)
	}
	if err := json.Unmarshal([]byte(days), &m.Days); err != nil {
		return m, fmt.Errorf("parsing days: %w", err)
	}
	if err := json.Unmarshal([]byte(slots), &m.TimeSlots); err != nil {
		return m, fmt.Errorf("parsing time slots: %w", err)
	}
	return m, nil
}
