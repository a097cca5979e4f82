package schedule

// Placement is an entry together with its positional index in the flat
// list. Downstream move and edit operations address entries by this
// index, so the projection must never reorder or copy.
type Placement struct {
	Index int
	Entry *Entry
}

// Grid is the derived day×slot view of the flat entry list.
type Grid struct {
	days  []string
	slots []string
	cells map[string][]Placement
}

// Project derives a grid from the entry list. Grid[day][slot] holds the
// entries occupying that cell in original list order; a cell may hold
// zero, one, or many entries. Entries whose day or time slot is outside
// the given dimensions appear in no cell (hidden, not deleted).
// Projection is idempotent: the same inputs always yield the same grid.
func Project(entries []*Entry, days, timeSlots []string) Grid {
	g := Grid{
		days:  days,
		slots: timeSlots,
		cells: make(map[string][]Placement),
	}
	known := make(map[string]bool, len(days)*len(timeSlots))
	for _, d := range days {
		for _, s := range timeSlots {
			known[cellKey(d, s)] = true
		}
	}
	for i, e := range entries {
		key := cellKey(e.Day, e.TimeSlot)
		if !known[key] {
			continue
		}
		g.cells[key] = append(g.cells[key], Placement{Index: i, Entry: e})
	}
	return g
}

// At returns the placements occupying (day, timeSlot), in list order.
func (g Grid) At(day, timeSlot string) []Placement {
	return g.cells[cellKey(day, timeSlot)]
}

// Days returns the projected day dimension.
func (g Grid) Days() []string {
	return g.days
}

// TimeSlots returns the projected time-slot dimension.
func (g Grid) TimeSlots() []string {
	return g.slots
}

// Occupied reports whether any entry occupies (day, timeSlot).
func (g Grid) Occupied(day, timeSlot string) bool {
	return len(g.cells[cellKey(day, timeSlot)]) > 0
}

func cellKey(day, timeSlot string) string {
	return day + "\x00" + timeSlot
}
