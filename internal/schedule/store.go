package schedule

import (
	"context"
	"time"
)

// SessionRecord is a locally persisted session: the handle, the grid
// metadata, and the last synchronized entry list.
type SessionRecord struct {
	SessionID string
	Meta      GridMetadata
	Entries   []*Entry
	CreatedAt time.Time
	UpdatedAt time.Time
}

// SessionSummary is a listing row for stored sessions.
type SessionSummary struct {
	SessionID string
	Entries   int
	UpdatedAt time.Time
}

// Store defines local persistence for sessions, so a later invocation
// can resume the most recent session instead of regenerating.
type Store interface {
	// SaveSession upserts a session and replaces its stored entries.
	SaveSession(ctx context.Context, rec *SessionRecord) error

	// LoadSession retrieves a stored session by handle.
	// Returns (nil, nil) when the session is unknown.
	LoadSession(ctx context.Context, sessionID string) (*SessionRecord, error)

	// LatestSession retrieves the most recently updated session.
	// Returns (nil, nil) when the store is empty.
	LatestSession(ctx context.Context) (*SessionRecord, error)

	// ListSessions returns summaries of all stored sessions, newest first.
	ListSessions(ctx context.Context) ([]SessionSummary, error)

	// DeleteSession removes a stored session and its entries.
	DeleteSession(ctx context.Context, sessionID string) error

	// Close releases any resources held by the store.
	Close() error
}
