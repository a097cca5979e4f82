package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/textinput"

	"slate/internal/config"
	"slate/internal/sched"
	"slate/internal/schedule"
	"slate/internal/tui/theme"
)

// Mode represents the current interaction mode.
type Mode int

const (
	ModeNormal Mode = iota
	ModeMove        // Relocating an entry; drop commits, esc restores
	ModeModal
)

// ModalType identifies the type of modal.
type ModalType int

const (
	ModalNone      ModalType = iota
	ModalEntryForm           // Add or edit an entry
	ModalConflicts           // Conflict listing for the cursor cell
	ModalHelp
)

// Form focus order: subject, teacher, semester.
const formFieldCount = 3

// Position represents a cursor position in the grid.
type Position struct {
	Day  int // Index into meta.Days
	Slot int // Index into meta.TimeSlots
}

// Model is the main TUI model.
type Model struct {
	// Dependencies
	client *sched.Client
	store  schedule.Store
	config *config.Config

	// Theme and styles
	theme  *theme.Theme
	styles *Styles

	// Schedule state
	board   *schedule.Board
	flags   *schedule.FlagSet
	grid    schedule.Grid
	pending schedule.Pending

	// Cursor
	cursor Position
	block  int // Index into the stack at the cursor cell

	mode Mode

	// Move mode
	moveID   string
	moveFrom Position

	// Modal state
	modalType    ModalType
	formSubject  textinput.Model
	formTeacher  textinput.Model
	formSemester textinput.Model
	formFocus    int
	formErr      string
	conflictCell bool // Conflicts modal scoped to cursor cell vs all

	// Overlay state
	overlay ModalOverlay

	// Async state
	loading    bool
	loadingSeq uint64
	syncing    bool

	// Terminal dimensions
	width  int
	height int

	// Messages
	statusMsg  string    // Temporary status/error message
	statusErr  bool      // Render status in the warning color
	statusTime time.Time // When to clear message

	err error
}

// New creates a new TUI model.
func New(client *sched.Client, store schedule.Store, cfg *config.Config) *Model {
	t, err := theme.Load(cfg.UI.Theme)
	if err != nil {
		t, _ = theme.Load("")
	}
	styles := NewStyles(t)

	newInput := func(placeholder string) textinput.Model {
		ti := textinput.New()
		ti.Placeholder = placeholder
		ti.CharLimit = 64
		ti.Width = 28
		ti.PlaceholderStyle = styles.ModalPlaceholderStyle
		ti.TextStyle = styles.ModalInputTextStyle
		ti.PromptStyle = styles.ModalInputTextStyle
		ti.Cursor.Style = styles.ModalInputCursorStyle
		ti.Cursor.TextStyle = styles.ModalInputTextStyle
		return ti
	}

	board := schedule.NewBoard()
	meta := schedule.GridMetadata{
		Classrooms: cfg.Roster.Classrooms,
		Days:       cfg.Roster.Days,
		TimeSlots:  cfg.Roster.TimeSlots,
	}
	board.ReplaceAll(nil, meta, "")

	m := &Model{
		client:       client,
		store:        store,
		config:       cfg,
		theme:        t,
		styles:       styles,
		board:        board,
		flags:        schedule.NewFlagSet(),
		pending:      schedule.Idle(),
		formSubject:  newInput("Subject"),
		formTeacher:  newInput("Teacher"),
		formSemester: newInput("Semester (optional)"),
		overlay:      NewModalOverlay(),
	}
	m.refreshGrid()
	return m
}

// refreshGrid rebuilds the grid projection from the entry cache.
func (m *Model) refreshGrid() {
	meta := m.board.Meta()
	m.grid = schedule.Project(m.board.Entries(), meta.Days, meta.TimeSlots)
	m.clampCursor()
}

func (m *Model) clampCursor() {
	meta := m.board.Meta()
	if m.cursor.Day >= len(meta.Days) {
		m.cursor.Day = len(meta.Days) - 1
	}
	if m.cursor.Day < 0 {
		m.cursor.Day = 0
	}
	if m.cursor.Slot >= len(meta.TimeSlots) {
		m.cursor.Slot = len(meta.TimeSlots) - 1
	}
	if m.cursor.Slot < 0 {
		m.cursor.Slot = 0
	}
	m.clampBlock()
}

func (m *Model) clampBlock() {
	n := len(m.cursorPlacements())
	if m.block >= n {
		m.block = n - 1
	}
	if m.block < 0 {
		m.block = 0
	}
}

// cursorCell returns the day and time slot labels under the cursor.
func (m *Model) cursorCell() (string, string) {
	meta := m.board.Meta()
	if m.cursor.Day >= len(meta.Days) || m.cursor.Slot >= len(meta.TimeSlots) {
		return "", ""
	}
	return meta.Days[m.cursor.Day], meta.TimeSlots[m.cursor.Slot]
}

// cursorPlacements returns the entry stack at the cursor cell.
func (m *Model) cursorPlacements() []schedule.Placement {
	day, slot := m.cursorCell()
	if day == "" {
		return nil
	}
	return m.grid.At(day, slot)
}

// cursorEntry returns the selected entry at the cursor, or nil.
func (m *Model) cursorEntry() *schedule.Entry {
	placements := m.cursorPlacements()
	if len(placements) == 0 {
		return nil
	}
	i := m.block
	if i >= len(placements) {
		i = len(placements) - 1
	}
	return placements[i].Entry
}

// sessionRecord builds a persistence record from the current board.
func (m *Model) sessionRecord() *schedule.SessionRecord {
	return &schedule.SessionRecord{
		SessionID: m.board.Session(),
		Meta:      m.board.Meta(),
		Entries:   m.board.Entries(),
	}
}

// setStatus shows a temporary status message.
func (m *Model) setStatus(msg string, isErr bool) {
	m.statusMsg = msg
	m.statusErr = isErr
	m.statusTime = time.Now().Add(5 * time.Second)
}

// currentStatus returns the status line, honoring expiry.
func (m *Model) currentStatus() (string, bool) {
	if m.statusMsg == "" || time.Now().After(m.statusTime) {
		return "", false
	}
	return m.statusMsg, m.statusErr
}
