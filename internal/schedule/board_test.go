package schedule

import (
	"errors"
	"testing"
)

func testMeta() GridMetadata {
	return GridMetadata{
		Classrooms: []string{"R1", "R2"},
		Days:       []string{"Mon", "Tue", "Wed"},
		TimeSlots:  []string{"9-10", "10-11", "11-12"},
	}
}

func testBoard(t *testing.T) *Board {
	t.Helper()
	b := NewBoard()
	b.ReplaceAll(sampleEntries()[:3], testMeta(), "sess-1")
	return b
}

func TestBoard_Move(t *testing.T) {
	b := testBoard(t)
	target := b.Entries()[0]
	before := *target
	othersBefore := b.Snapshot()

	if err := b.Move(target.ID, "Tue", "10-11"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if target.Day != "Tue" || target.TimeSlot != "10-11" {
		t.Errorf("entry not moved: %s/%s", target.Day, target.TimeSlot)
	}
	if target.Subject != before.Subject || target.Teacher != before.Teacher ||
		target.Classroom != before.Classroom || target.Semester != before.Semester {
		t.Error("move changed fields other than day and time slot")
	}
	if b.Len() != len(othersBefore) {
		t.Errorf("list length changed: %d -> %d", len(othersBefore), b.Len())
	}
	for i := 1; i < b.Len(); i++ {
		if *b.Entries()[i] != othersBefore[i] {
			t.Errorf("entry %d mutated by move of entry 0", i)
		}
	}
}

func TestBoard_Move_EmptiesSourceCell(t *testing.T) {
	b := NewBoard()
	b.ReplaceAll([]*Entry{NewEntry("Mon", "9-10", "Math", "A", "R1", "S1")}, testMeta(), "s")

	if err := b.Move(b.Entries()[0].ID, "Tue", "10-11"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	g := Project(b.Entries(), b.Meta().Days, b.Meta().TimeSlots)
	if g.Occupied("Mon", "9-10") {
		t.Error("source cell still occupied after move")
	}
	if !g.Occupied("Tue", "10-11") {
		t.Error("target cell empty after move")
	}
}

func TestBoard_Move_UnknownCell(t *testing.T) {
	b := testBoard(t)
	e := b.Entries()[0]
	day, slot := e.Day, e.TimeSlot

	err := b.Move(e.ID, "Sun", "9-10")
	if !errors.Is(err, ErrUnknownCell) {
		t.Fatalf("expected ErrUnknownCell, got %v", err)
	}
	if e.Day != day || e.TimeSlot != slot {
		t.Error("rejected move mutated the entry")
	}
}

func TestBoard_Save_Adding(t *testing.T) {
	b := testBoard(t)
	before := b.Len()

	e, err := b.Save(Adding("Wed", "11-12"), FormInput{Subject: "Biology", Teacher: "E", Semester: "S2"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if b.Len() != before+1 {
		t.Fatalf("expected %d entries, got %d", before+1, b.Len())
	}
	last := b.Entries()[b.Len()-1]
	if last != e {
		t.Error("new entry not appended at the end")
	}
	if e.Day != "Wed" || e.TimeSlot != "11-12" {
		t.Errorf("new entry at wrong cell: %s/%s", e.Day, e.TimeSlot)
	}
	if e.Subject != "Biology" || e.Teacher != "E" || e.Semester != "S2" {
		t.Errorf("form fields not applied: %+v", e)
	}
	if e.Classroom != "R1" {
		t.Errorf("expected default classroom R1, got %s", e.Classroom)
	}
	if e.ID == "" {
		t.Error("new entry has no stable identifier")
	}
}

func TestBoard_Save_AddingValidation(t *testing.T) {
	tests := []struct {
		name string
		in   FormInput
		want error
	}{
		{"empty subject", FormInput{Teacher: "A"}, ErrSubjectRequired},
		{"empty teacher", FormInput{Subject: "Math"}, ErrTeacherRequired},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := testBoard(t)
			before := b.Len()

			_, err := b.Save(Adding("Wed", "11-12"), tt.in)
			if !errors.Is(err, tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, err)
			}
			if b.Len() != before {
				t.Errorf("validation failure mutated the cache: %d -> %d", before, b.Len())
			}
		})
	}
}

func TestBoard_Save_Editing(t *testing.T) {
	b := testBoard(t)
	target := b.Entries()[1]
	before := *target

	_, err := b.Save(Editing(target.ID), FormInput{Subject: "Algebra", Teacher: "Z", Semester: "S3"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if target.Subject != "Algebra" || target.Teacher != "Z" || target.Semester != "S3" {
		t.Errorf("edit not applied: %+v", target)
	}
	if target.Day != before.Day || target.TimeSlot != before.TimeSlot || target.Classroom != before.Classroom {
		t.Error("edit changed day, time slot, or classroom")
	}
}

func TestBoard_Save_Idle(t *testing.T) {
	b := testBoard(t)
	before := b.Len()

	e, err := b.Save(Idle(), FormInput{Subject: "Math", Teacher: "A"})
	if err != nil || e != nil {
		t.Fatalf("idle save must be a no-op, got %v, %v", e, err)
	}
	if b.Len() != before {
		t.Error("idle save mutated the cache")
	}
}

func TestBoard_ReplaceAll_AssignsIDs(t *testing.T) {
	b := NewBoard()
	wire := []*Entry{{Day: "Mon", TimeSlot: "9-10", Subject: "Math"}}
	b.ReplaceAll(wire, testMeta(), "sess-9")

	if b.Entries()[0].ID == "" {
		t.Error("wire entry not assigned a stable identifier")
	}
	if b.Session() != "sess-9" {
		t.Errorf("session handle not stored: %q", b.Session())
	}
}

func TestBoard_SyncSequence(t *testing.T) {
	b := NewBoard()
	first := b.NextSync()
	second := b.NextSync()
	if second <= first {
		t.Errorf("sequence not monotonic: %d then %d", first, second)
	}
	if b.CurrentSync() != second {
		t.Errorf("current sequence %d, want %d", b.CurrentSync(), second)
	}
}

func TestBoard_SnapshotIsolation(t *testing.T) {
	b := testBoard(t)
	snap := b.Snapshot()
	b.Entries()[0].Day = "Wed"

	if snap[0].Day == "Wed" {
		t.Error("snapshot observed a later mutation")
	}
}
