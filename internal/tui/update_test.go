package tui

import (
	"errors"
	"testing"
	"time"

	"slate/internal/config"
	"slate/internal/sched"
	"slate/internal/schedule"
	"slate/internal/tui/commands"
)

var errTest = errors.New("service unavailable")

func testModel(t *testing.T) *Model {
	t.Helper()
	cfg := config.Default()
	client := sched.New("http://127.0.0.1:1", time.Second)
	return New(client, nil, cfg)
}

func seedEntries(t *testing.T, m *Model, entries ...*schedule.Entry) {
	t.Helper()
	m.board.ReplaceAll(entries, m.board.Meta(), "sess-1")
	m.refreshGrid()
}

func TestGeneratedMsgAppliesResult(t *testing.T) {
	m := testModel(t)
	seq := m.board.NextSync()

	result := &sched.GenerateResult{
		SessionID: "sess-9",
		Entries: []*schedule.Entry{
			schedule.NewEntry("Monday", "09:00-10:00", "Math", "Rivera", "101", "S1"),
		},
		Conflicts: []schedule.Conflict{
			{Type: schedule.ConflictTeacher, Day: "Monday", TimeSlot: "09:00-10:00"},
		},
	}

	updated, _ := m.Update(commands.GeneratedMsg{Seq: seq, Result: result})
	model := updated.(Model)

	if model.board.Len() != 1 {
		t.Fatalf("entries = %d, want 1", model.board.Len())
	}
	if got := model.board.Session(); got != "sess-9" {
		t.Fatalf("session = %q, want %q", got, "sess-9")
	}
	if !model.flags.Flagged("Monday", "09:00-10:00") {
		t.Fatal("expected cell flagged after generation")
	}
}

func TestGeneratedMsgStaleSeqDiscarded(t *testing.T) {
	m := testModel(t)
	stale := m.board.NextSync()
	m.board.NextSync() // a newer call supersedes the first

	result := &sched.GenerateResult{
		SessionID: "sess-old",
		Entries: []*schedule.Entry{
			schedule.NewEntry("Monday", "09:00-10:00", "Math", "Rivera", "101", "S1"),
		},
	}

	updated, _ := m.Update(commands.GeneratedMsg{Seq: stale, Result: result})
	model := updated.(Model)

	if model.board.Len() != 0 {
		t.Fatalf("entries = %d, want 0 (stale response must not apply)", model.board.Len())
	}
	if model.board.Session() != "" {
		t.Fatalf("session = %q, want empty", model.board.Session())
	}
}

func TestStaleGeneratedMsgClearsLoading(t *testing.T) {
	m := testModel(t)
	m.loading = true
	m.loadingSeq = m.board.NextSync()
	m.board.NextSync() // user edit supersedes the generate

	result := &sched.GenerateResult{SessionID: "sess-old"}
	updated, _ := m.Update(commands.GeneratedMsg{Seq: m.loadingSeq, Result: result})
	model := updated.(Model)

	if model.loading {
		t.Fatal("loading must clear when the generate response arrives, even stale")
	}
	if model.board.Session() != "" {
		t.Fatalf("session = %q, want empty (stale result must not apply)", model.board.Session())
	}
}

func TestStaleGenerateFailureClearsLoading(t *testing.T) {
	m := testModel(t)
	m.loading = true
	m.loadingSeq = m.board.NextSync()
	m.board.NextSync()

	updated, _ := m.Update(commands.GenerateFailedMsg{Seq: m.loadingSeq, Err: errTest})
	model := updated.(Model)

	if model.loading {
		t.Fatal("loading must clear when the generate call fails, even stale")
	}
}

func TestRevalidatedMsgRebuildsFlags(t *testing.T) {
	m := testModel(t)
	seedEntries(t, m,
		schedule.NewEntry("Monday", "09:00-10:00", "Math", "Rivera", "101", "S1"),
	)
	m.flags.Rebuild([]schedule.Conflict{
		{Type: schedule.ConflictTeacher, Day: "Monday", TimeSlot: "09:00-10:00"},
	})
	seq := m.board.NextSync()

	updated, _ := m.Update(commands.RevalidatedMsg{Seq: seq, Conflicts: nil})
	model := updated.(Model)

	if model.flags.Count() != 0 {
		t.Fatalf("flags = %d, want 0 after clean revalidation", model.flags.Count())
	}
}

func TestRevalidatedMsgStaleSeqDiscarded(t *testing.T) {
	m := testModel(t)
	stale := m.board.NextSync()
	m.board.NextSync()

	updated, _ := m.Update(commands.RevalidatedMsg{
		Seq: stale,
		Conflicts: []schedule.Conflict{
			{Type: schedule.ConflictClassroom, Day: "Friday", TimeSlot: "13:00-14:00"},
		},
	})
	model := updated.(Model)

	if model.flags.Count() != 0 {
		t.Fatal("stale conflict report must not rebuild flags")
	}
}

func TestRevalidateFailedKeepsLocalState(t *testing.T) {
	m := testModel(t)
	seedEntries(t, m,
		schedule.NewEntry("Monday", "09:00-10:00", "Math", "Rivera", "101", "S1"),
	)
	seq := m.board.NextSync()

	updated, _ := m.Update(commands.RevalidateFailedMsg{Seq: seq, Err: errTest})
	model := updated.(Model)

	if model.board.Len() != 1 {
		t.Fatalf("entries = %d, want 1 (failure must not roll back)", model.board.Len())
	}
	status, isErr := model.currentStatus()
	if status == "" || !isErr {
		t.Fatalf("status = (%q, %v), want visible error", status, isErr)
	}
}

func TestSessionResumedLoadsBoardAndRevalidates(t *testing.T) {
	m := testModel(t)

	rec := &schedule.SessionRecord{
		SessionID: "sess-7",
		Meta:      m.board.Meta(),
		Entries: []*schedule.Entry{
			schedule.NewEntry("Tuesday", "10:00-11:00", "Physics", "Chen", "202", "S2"),
		},
	}

	updated, cmd := m.Update(commands.SessionResumedMsg{Record: rec})
	model := updated.(Model)

	if model.board.Len() != 1 {
		t.Fatalf("entries = %d, want 1", model.board.Len())
	}
	if got := model.board.Session(); got != "sess-7" {
		t.Fatalf("session = %q, want %q", got, "sess-7")
	}
	if cmd == nil {
		t.Fatal("expected a revalidation command after resume")
	}
}

func TestSessionResumedNilRecord(t *testing.T) {
	m := testModel(t)

	updated, cmd := m.Update(commands.SessionResumedMsg{Record: nil})
	model := updated.(Model)

	if cmd != nil {
		t.Fatal("no command expected without a stored session")
	}
	if status, _ := model.currentStatus(); status == "" {
		t.Fatal("expected a hint about generating")
	}
}
