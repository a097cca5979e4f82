package schedule

import "github.com/google/uuid"

// Board is the single source of truth for what is scheduled in the
// current session. It owns the ordered entry list, the grid metadata,
// the opaque session handle, and the synchronization sequence counter.
// All mutations go through its methods; the external service only ever
// contributes conflict reports and the initial generated timetable.
//
// Board is not safe for concurrent mutation. In the TUI every mutation
// happens on the update loop; sync commands work on snapshots.
type Board struct {
	entries []*Entry
	meta    GridMetadata
	session string
	syncSeq uint64
}

// NewBoard creates an empty board with no session.
func NewBoard() *Board {
	return &Board{}
}

// ReplaceAll swaps in a freshly generated timetable wholesale. Entries
// without a stable identifier (straight off the wire) are assigned one.
// Called only after a successful generation.
func (b *Board) ReplaceAll(entries []*Entry, meta GridMetadata, session string) {
	for _, e := range entries {
		if e.ID == "" {
			e.ID = uuid.NewString()
		}
	}
	b.entries = entries
	b.meta = meta
	b.session = session
}

// Entries returns the underlying ordered entry list. Callers must not
// reorder it; positional indexes derived from it address entries in
// move and edit operations.
func (b *Board) Entries() []*Entry {
	return b.entries
}

// Len returns the number of entries.
func (b *Board) Len() int {
	return len(b.entries)
}

// Meta returns the grid metadata of the current session.
func (b *Board) Meta() GridMetadata {
	return b.meta
}

// Session returns the opaque session handle, empty until the first
// successful generation.
func (b *Board) Session() string {
	return b.session
}

// SetSession stores the session handle for reuse on later calls.
func (b *Board) SetSession(session string) {
	b.session = session
}

// EntryByID returns the entry with the given stable identifier and its
// current index in the list, or (nil, -1).
func (b *Board) EntryByID(id string) (*Entry, int) {
	for i, e := range b.entries {
		if e.ID == id {
			return e, i
		}
	}
	return nil, -1
}

// Move sets the entry's day and time slot to the target cell, leaving
// subject, teacher, classroom, and semester untouched. Moving to a cell
// outside the grid metadata is rejected.
func (b *Board) Move(id, day, timeSlot string) error {
	if !b.meta.HasCell(day, timeSlot) {
		return ErrUnknownCell
	}
	e, _ := b.EntryByID(id)
	if e == nil {
		return ErrEntryNotFound
	}
	e.Day = day
	e.TimeSlot = timeSlot
	return nil
}

// Save applies a pending action with the given form input. Adding
// appends a new entry at the pending cell; Editing mutates only the
// subject, teacher, and semester of the target entry. Idle is a no-op.
// On validation failure nothing is mutated and the pending state stays
// active so the caller can correct and retry.
func (b *Board) Save(p Pending, in FormInput) (*Entry, error) {
	switch p.Kind() {
	case PendingAdding:
		return b.add(p, in)
	case PendingEditing:
		return b.edit(p, in)
	default:
		return nil, nil
	}
}

func (b *Board) add(p Pending, in FormInput) (*Entry, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	day, timeSlot := p.Cell()
	e := NewEntry(day, timeSlot, in.Subject, in.Teacher, b.meta.DefaultClassroom(), in.Semester)
	b.entries = append(b.entries, e)
	return e, nil
}

func (b *Board) edit(p Pending, in FormInput) (*Entry, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	e, _ := b.EntryByID(p.EntryID())
	if e == nil {
		return nil, ErrEntryNotFound
	}
	e.Subject = in.Subject
	e.Teacher = in.Teacher
	e.Semester = in.Semester
	e.Color = SubjectColor(in.Subject)
	return e, nil
}

// Snapshot returns a value copy of the entry list for the wire, so an
// in-flight revalidation never observes later mutations.
func (b *Board) Snapshot() []Entry {
	out := make([]Entry, len(b.entries))
	for i, e := range b.entries {
		out[i] = *e
	}
	return out
}

// NextSync advances and returns the synchronization sequence number.
// Each network call carries the sequence it was issued under; responses
// carrying an older sequence are discarded, so the last issued call
// wins regardless of arrival order.
func (b *Board) NextSync() uint64 {
	b.syncSeq++
	return b.syncSeq
}

// CurrentSync returns the sequence of the most recently issued call.
func (b *Board) CurrentSync() uint64 {
	return b.syncSeq
}
