// Package schedule defines the core domain types for slate: timetable
// entries, the board state container, grid projection, and conflict flags.
package schedule

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// Validation errors.
var (
	ErrSubjectRequired = errors.New("subject cannot be empty")
	ErrTeacherRequired = errors.New("teacher cannot be empty")
)

// Domain errors.
var (
	ErrEntryNotFound = errors.New("entry not found")
	ErrUnknownCell   = errors.New("day or time slot not in the grid")
	ErrNoSession     = errors.New("no active session")
)

// Entry represents one scheduled occupancy of a subject, teacher, and
// classroom at a given day and time slot.
type Entry struct {
	ID        string `json:"-"`
	Day       string `json:"day"`
	TimeSlot  string `json:"time_slot"`
	Subject   string `json:"subject"`
	Teacher   string `json:"teacher"`
	Classroom string `json:"classroom"`
	Semester  string `json:"semester"`
	Color     string `json:"subject_color,omitempty"`
}

// NewEntry creates an entry with a fresh stable identifier.
func NewEntry(day, timeSlot, subject, teacher, classroom, semester string) *Entry {
	return &Entry{
		ID:        uuid.NewString(),
		Day:       day,
		TimeSlot:  timeSlot,
		Subject:   subject,
		Teacher:   teacher,
		Classroom: classroom,
		Semester:  semester,
		Color:     SubjectColor(subject),
	}
}

// Cell returns the (day, time slot) coordinates the entry occupies.
func (e *Entry) Cell() (string, string) {
	return e.Day, e.TimeSlot
}

// Label returns a short display label for grid blocks.
func (e *Entry) Label() string {
	if e.Classroom == "" {
		return e.Subject
	}
	return fmt.Sprintf("%s (%s)", e.Subject, e.Classroom)
}

// SubjectColor returns a deterministic pastel HSL color for a subject
// name. Matches the hash the scheduling service uses, so locally added
// entries get the same tint as generated ones.
func SubjectColor(name string) string {
	h := 0
	for _, ch := range name {
		h = (h*31 + int(ch)) % 360
	}
	return fmt.Sprintf("hsl(%d,65%%,85%%)", h)
}

// GridMetadata holds the dimensions used to project entries into a grid.
// Set once per successful generation and reused for every render.
type GridMetadata struct {
	Classrooms []string `json:"classrooms"`
	Days       []string `json:"days"`
	TimeSlots  []string `json:"time_slots"`
}

// HasCell reports whether (day, timeSlot) is a cell of the grid.
func (m GridMetadata) HasCell(day, timeSlot string) bool {
	return contains(m.Days, day) && contains(m.TimeSlots, timeSlot)
}

// DefaultClassroom returns the first known classroom, or a sentinel
// when no classrooms are configured. Used for entries added by hand.
func (m GridMetadata) DefaultClassroom() string {
	if len(m.Classrooms) > 0 {
		return m.Classrooms[0]
	}
	return "TBD"
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
