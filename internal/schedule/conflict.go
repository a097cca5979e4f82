package schedule

// ConflictType classifies a scheduling violation.
type ConflictType string

const (
	ConflictTeacher   ConflictType = "teacher"
	ConflictClassroom ConflictType = "classroom"
	ConflictStudent   ConflictType = "student"
)

// Conflict is a server-identified scheduling violation. Reports are
// ephemeral: recomputed wholesale by the service after every mutation,
// never merged incrementally on the client.
type Conflict struct {
	Type            ConflictType `json:"type"`
	Day             string       `json:"day"`
	TimeSlot        string       `json:"time_slot"`
	Teacher         string       `json:"teacher,omitempty"`
	Classroom       string       `json:"classroom,omitempty"`
	Semester        string       `json:"semester,omitempty"`
	Subjects        []string     `json:"subjects"`
	Suggestions     []string     `json:"suggestions,omitempty"`
	MissingSessions int          `json:"missing_sessions,omitempty"`
}

// HasCell reports whether the conflict names a specific grid cell.
// Unplaced-session conflicts from the generator carry no coordinates.
func (c Conflict) HasCell() bool {
	return c.Day != "" && c.TimeSlot != ""
}

// FlagSet maps a conflict report onto grid cells for visual flagging.
// Rebuild replaces the whole set each call, so repeated application of
// the same report is idempotent; multiple conflicts on one cell
// collapse to a single flag.
type FlagSet struct {
	flagged map[string][]Conflict
}

// NewFlagSet returns an empty flag set.
func NewFlagSet() *FlagSet {
	return &FlagSet{flagged: make(map[string][]Conflict)}
}

// Rebuild clears every previously flagged cell, then flags the cell of
// each conflict that names both a day and a time slot. Conflicts
// missing either coordinate are skipped.
func (f *FlagSet) Rebuild(conflicts []Conflict) {
	f.flagged = make(map[string][]Conflict)
	for _, c := range conflicts {
		if !c.HasCell() {
			continue
		}
		key := cellKey(c.Day, c.TimeSlot)
		f.flagged[key] = append(f.flagged[key], c)
	}
}

// Flagged reports whether (day, timeSlot) carries a conflict flag.
func (f *FlagSet) Flagged(day, timeSlot string) bool {
	return len(f.flagged[cellKey(day, timeSlot)]) > 0
}

// At returns the conflicts flagging (day, timeSlot).
func (f *FlagSet) At(day, timeSlot string) []Conflict {
	return f.flagged[cellKey(day, timeSlot)]
}

// Count returns the number of flagged cells, not conflicts.
func (f *FlagSet) Count() int {
	return len(f.flagged)
}
