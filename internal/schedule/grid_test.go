package schedule

import (
	"reflect"
	"testing"
)

func sampleEntries() []*Entry {
	return []*Entry{
		NewEntry("Mon", "9-10", "Math", "A", "R1", "S1"),
		NewEntry("Mon", "9-10", "Physics", "B", "R2", "S2"),
		NewEntry("Tue", "10-11", "Chemistry", "C", "R1", "S1"),
		NewEntry("Fri", "9-10", "Art", "D", "R3", "S1"), // Fri not projected
	}
}

func TestProject_CellContents(t *testing.T) {
	entries := sampleEntries()
	days := []string{"Mon", "Tue"}
	slots := []string{"9-10", "10-11"}

	g := Project(entries, days, slots)

	mon := g.At("Mon", "9-10")
	if len(mon) != 2 {
		t.Fatalf("expected 2 entries at Mon/9-10, got %d", len(mon))
	}
	if mon[0].Entry.Subject != "Math" || mon[1].Entry.Subject != "Physics" {
		t.Errorf("cell order not preserved: %s, %s", mon[0].Entry.Subject, mon[1].Entry.Subject)
	}
	if mon[0].Index != 0 || mon[1].Index != 1 {
		t.Errorf("expected positional indexes 0,1 got %d,%d", mon[0].Index, mon[1].Index)
	}

	tue := g.At("Tue", "10-11")
	if len(tue) != 1 || tue[0].Index != 2 {
		t.Fatalf("expected entry index 2 at Tue/10-11, got %+v", tue)
	}

	// The Friday entry is outside the projected days and must be hidden.
	for _, d := range days {
		for _, s := range slots {
			for _, p := range g.At(d, s) {
				if p.Entry.Subject == "Art" {
					t.Errorf("hidden entry appeared at %s/%s", d, s)
				}
			}
		}
	}
}

func TestProject_SingleEntryScenario(t *testing.T) {
	entries := []*Entry{NewEntry("Mon", "9-10", "Math", "A", "R1", "S1")}
	g := Project(entries, []string{"Mon", "Tue"}, []string{"9-10", "10-11"})

	if got := len(g.At("Mon", "9-10")); got != 1 {
		t.Errorf("expected 1 entry at Mon/9-10, got %d", got)
	}
	for _, cell := range [][2]string{{"Mon", "10-11"}, {"Tue", "9-10"}, {"Tue", "10-11"}} {
		if g.Occupied(cell[0], cell[1]) {
			t.Errorf("expected %s/%s empty", cell[0], cell[1])
		}
	}
}

func TestProject_Idempotent(t *testing.T) {
	entries := sampleEntries()
	days := []string{"Mon", "Tue"}
	slots := []string{"9-10", "10-11"}

	g1 := Project(entries, days, slots)
	g2 := Project(entries, days, slots)

	for _, d := range days {
		for _, s := range slots {
			if !reflect.DeepEqual(g1.At(d, s), g2.At(d, s)) {
				t.Errorf("projection differs at %s/%s", d, s)
			}
		}
	}
}

func TestProject_DoesNotCopyEntries(t *testing.T) {
	entries := sampleEntries()
	g := Project(entries, []string{"Mon"}, []string{"9-10"})

	p := g.At("Mon", "9-10")[0]
	if p.Entry != entries[0] {
		t.Error("projection copied the entry instead of referencing it")
	}
}

func TestSubjectColor_Deterministic(t *testing.T) {
	a := SubjectColor("Math")
	b := SubjectColor("Math")
	if a != b {
		t.Errorf("color not deterministic: %s vs %s", a, b)
	}
	if a == "" {
		t.Error("expected non-empty color")
	}
}
