package schedule

// PendingKind discriminates the pending-action states.
type PendingKind int

const (
	PendingIdle PendingKind = iota
	PendingAdding
	PendingEditing
)

// Pending is the client's current intent prior to a save: idle, adding
// a new entry to an empty cell, or editing an existing entry. The three
// states are mutually exclusive; entering one replaces the other.
type Pending struct {
	kind     PendingKind
	day      string
	timeSlot string
	entryID  string
}

// Idle returns the idle pending state.
func Idle() Pending {
	return Pending{kind: PendingIdle}
}

// Adding returns a pending state for a new entry at (day, timeSlot).
func Adding(day, timeSlot string) Pending {
	return Pending{kind: PendingAdding, day: day, timeSlot: timeSlot}
}

// Editing returns a pending state targeting an existing entry by ID.
func Editing(entryID string) Pending {
	return Pending{kind: PendingEditing, entryID: entryID}
}

// Kind returns the discriminant.
func (p Pending) Kind() PendingKind {
	return p.kind
}

// IsIdle reports whether no action is pending.
func (p Pending) IsIdle() bool {
	return p.kind == PendingIdle
}

// Cell returns the target cell of an Adding state.
func (p Pending) Cell() (string, string) {
	return p.day, p.timeSlot
}

// EntryID returns the target entry of an Editing state.
func (p Pending) EntryID() string {
	return p.entryID
}

// FormInput holds the user-editable fields of the entry form.
// Day, time slot, and classroom are never editable through the form.
type FormInput struct {
	Subject  string
	Teacher  string
	Semester string
}

// Validate checks the required form fields. Semester is optional.
func (f FormInput) Validate() error {
	if f.Subject == "" {
		return ErrSubjectRequired
	}
	if f.Teacher == "" {
		return ErrTeacherRequired
	}
	return nil
}
