package db

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"slate/internal/schedule"
)

func testStore(t *testing.T) *SQLite {
	t.Helper()
	s, err := New(filepath.Join(t.TempDir(), "slate.db"))
	if err != nil {
		t.Fatalf("creating store: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func testRecord(session string) *schedule.SessionRecord {
	return &schedule.SessionRecord{
		SessionID: session,
		Meta: schedule.GridMetadata{
			Classrooms: []string{"R1", "R2"},
			Days:       []string{"Mon", "Tue"},
			TimeSlots:  []string{"9-10", "10-11"},
		},
		Entries: []*schedule.Entry{
			schedule.NewEntry("Mon", "9-10", "Math", "A", "R1", "S1"),
			schedule.NewEntry("Tue", "10-11", "Physics", "B", "R2", "S2"),
		},
	}
}

func TestSaveAndLoadSession(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	if err := s.SaveSession(ctx, testRecord("sess-1")); err != nil {
		t.Fatalf("saving session: %v", err)
	}

	rec, err := s.LoadSession(ctx, "sess-1")
	if err != nil {
		t.Fatalf("loading session: %v", err)
	}
	if rec == nil {
		t.Fatal("expected session, got nil")
	}
	if len(rec.Entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(rec.Entries))
	}
	if rec.Entries[0].Subject != "Math" || rec.Entries[1].Subject != "Physics" {
		t.Errorf("entry order not preserved: %s, %s", rec.Entries[0].Subject, rec.Entries[1].Subject)
	}
	if len(rec.Meta.Days) != 2 || rec.Meta.Days[0] != "Mon" {
		t.Errorf("metadata not restored: %+v", rec.Meta)
	}
	if rec.Entries[0].ID == "" {
		t.Error("entry identifier lost in round trip")
	}
}

func TestLoadSession_Unknown(t *testing.T) {
	s := testStore(t)

	rec, err := s.LoadSession(context.Background(), "missing")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec != nil {
		t.Errorf("expected nil for unknown session, got %+v", rec)
	}
}

func TestSaveSession_ReplacesEntries(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	rec := testRecord("sess-1")
	if err := s.SaveSession(ctx, rec); err != nil {
		t.Fatalf("saving session: %v", err)
	}

	rec.Entries = rec.Entries[:1]
	if err := s.SaveSession(ctx, rec); err != nil {
		t.Fatalf("resaving session: %v", err)
	}

	loaded, err := s.LoadSession(ctx, "sess-1")
	if err != nil {
		t.Fatalf("loading session: %v", err)
	}
	if len(loaded.Entries) != 1 {
		t.Errorf("stale entries survived resave: %d", len(loaded.Entries))
	}
}

func TestLatestSession(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	empty, err := s.LatestSession(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if empty != nil {
		t.Errorf("expected nil on empty store, got %+v", empty)
	}

	old := testRecord("sess-old")
	old.CreatedAt = time.Now().Add(-time.Hour)
	if err := s.SaveSession(ctx, old); err != nil {
		t.Fatalf("saving session: %v", err)
	}
	time.Sleep(10 * time.Millisecond) // distinct updated_at timestamps
	if err := s.SaveSession(ctx, testRecord("sess-new")); err != nil {
		t.Fatalf("saving session: %v", err)
	}

	latest, err := s.LatestSession(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if latest == nil || latest.SessionID != "sess-new" {
		t.Errorf("expected sess-new, got %+v", latest)
	}
}

func TestListAndDeleteSessions(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	if err := s.SaveSession(ctx, testRecord("sess-1")); err != nil {
		t.Fatalf("saving session: %v", err)
	}

	sums, err := s.ListSessions(ctx)
	if err != nil {
		t.Fatalf("listing sessions: %v", err)
	}
	if len(sums) != 1 || sums[0].Entries != 2 {
		t.Fatalf("unexpected summaries: %+v", sums)
	}

	if err := s.DeleteSession(ctx, "sess-1"); err != nil {
		t.Fatalf("deleting session: %v", err)
	}
	if err := s.DeleteSession(ctx, "sess-1"); err == nil {
		t.Error("expected error deleting missing session")
	}

	rec, err := s.LoadSession(ctx, "sess-1")
	if err != nil || rec != nil {
		t.Errorf("session survived delete: %v %v", rec, err)
	}
}
