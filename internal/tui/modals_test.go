package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"slate/internal/schedule"
)

func TestEscDiscardsPendingForm(t *testing.T) {
	m := testModel(t)

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter}) // open add form
	model := updated.(Model)
	model.formSubject.SetValue("Chemistry")

	updated, _ = model.Update(tea.KeyMsg{Type: tea.KeyEsc})
	model = updated.(Model)

	if model.mode != ModeNormal {
		t.Fatalf("mode = %v, want normal after cancel", model.mode)
	}
	if !model.pending.IsIdle() {
		t.Fatal("cancel must reset the pending action")
	}
	if model.board.Len() != 0 {
		t.Fatal("cancel must not mutate the board")
	}
}

func TestFormFocusCycles(t *testing.T) {
	m := testModel(t)

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	model := updated.(Model)
	if model.formFocus != 0 {
		t.Fatalf("initial focus = %d, want 0", model.formFocus)
	}

	for want := 1; want <= formFieldCount; want++ {
		updated, _ = model.Update(tea.KeyMsg{Type: tea.KeyTab})
		model = updated.(Model)
		if got := model.formFocus; got != want%formFieldCount {
			t.Fatalf("focus after %d tabs = %d, want %d", want, got, want%formFieldCount)
		}
	}
}

func TestConflictSummaryText(t *testing.T) {
	m := testModel(t)
	m.flags.Rebuild([]schedule.Conflict{
		{
			Type:     schedule.ConflictTeacher,
			Day:      "Monday",
			TimeSlot: "09:00-10:00",
			Teacher:  "Rivera",
			Subjects: []string{"Math", "Physics"},
		},
	})

	text := m.conflictSummaryText()
	if !strings.Contains(text, "teacher") || !strings.Contains(text, "Monday") {
		t.Fatalf("summary = %q, want conflict details", text)
	}
	if !strings.Contains(text, "Rivera") {
		t.Fatalf("summary = %q, want the teacher named", text)
	}
	if !strings.Contains(text, "09:00-10:00: teacher Rivera") {
		t.Fatalf("summary = %q, want heading joined to details with a colon", text)
	}
}

func TestConflictSummaryTextEmpty(t *testing.T) {
	m := testModel(t)
	if got := m.conflictSummaryText(); got != "No conflicts." {
		t.Fatalf("summary = %q, want empty marker", got)
	}
}
