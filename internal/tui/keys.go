package tui

import (
	"errors"
	"fmt"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"slate/internal/sched"
	"slate/internal/schedule"
	"slate/internal/tui/commands"
)

// handleKeyMsg handles keyboard input.
func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	LogKeyPress(msg)

	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	switch m.mode {
	case ModeMove:
		return m.handleMoveKeys(msg)
	case ModeModal:
		return m.handleModalKeys(msg)
	default:
		return m.handleNormalKeys(msg)
	}
}

// handleNormalKeys handles keys in normal mode.
func (m Model) handleNormalKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	meta := m.board.Meta()

	switch msg.String() {
	case "q":
		return m, tea.Quit

	// Navigation
	case "h", "left":
		if m.cursor.Day > 0 {
			m.cursor.Day--
			m.block = 0
			m.clampBlock()
		}
	case "l", "right":
		if m.cursor.Day < len(meta.Days)-1 {
			m.cursor.Day++
			m.block = 0
			m.clampBlock()
		}
	case "k", "up":
		if m.cursor.Slot > 0 {
			m.cursor.Slot--
			m.block = 0
			m.clampBlock()
		}
	case "j", "down":
		if m.cursor.Slot < len(meta.TimeSlots)-1 {
			m.cursor.Slot++
			m.block = 0
			m.clampBlock()
		}
	case "tab":
		// Cycle through stacked entries in the cell
		if n := len(m.cursorPlacements()); n > 1 {
			m.block = (m.block + 1) % n
		}

	// Entry form: edit when occupied, add when empty
	case "enter", "a":
		if m.syncing {
			m.setStatus("Sync in progress...", false)
			return m, nil
		}
		if entry := m.cursorEntry(); entry != nil && msg.String() == "enter" {
			m.openEditForm(entry)
			return m, nil
		}
		day, slot := m.cursorCell()
		if day == "" {
			return m, nil
		}
		m.openAddForm(day, slot)
		return m, nil

	// Move mode
	case "m":
		entry := m.cursorEntry()
		if entry == nil {
			m.setStatus("Nothing to move here", false)
			return m, nil
		}
		m.mode = ModeMove
		m.moveID = entry.ID
		m.moveFrom = m.cursor
		LogModeChange(ModeNormal, ModeMove, "move start")
		return m, nil

	// Sync
	case "g":
		if cmd := m.generate(); cmd != nil {
			return m, cmd
		}
		return m, nil
	case "r":
		if cmd := m.revalidate(); cmd != nil {
			return m, cmd
		}
		return m, nil

	// Conflicts
	case "c":
		m.openConflicts(true)
		return m, nil
	case "C":
		m.openConflicts(false)
		return m, nil

	// Export links
	case "e":
		cmd := m.copyExportLink(sched.ExportPDF)
		return m, cmd
	case "x":
		cmd := m.copyExportLink(sched.ExportExcel)
		return m, cmd

	case "?":
		m.mode = ModeModal
		m.modalType = ModalHelp
		return m, nil
	}

	return m, nil
}

// handleMoveKeys handles keys while relocating an entry.
func (m Model) handleMoveKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	meta := m.board.Meta()

	switch msg.String() {
	case "h", "left":
		if m.cursor.Day > 0 {
			m.cursor.Day--
		}
	case "l", "right":
		if m.cursor.Day < len(meta.Days)-1 {
			m.cursor.Day++
		}
	case "k", "up":
		if m.cursor.Slot > 0 {
			m.cursor.Slot--
		}
	case "j", "down":
		if m.cursor.Slot < len(meta.TimeSlots)-1 {
			m.cursor.Slot++
		}

	case "enter":
		day, slot := m.cursorCell()
		if err := m.board.Move(m.moveID, day, slot); err != nil {
			m.setStatus(fmt.Sprintf("Move failed: %v", err), true)
			m.exitMove()
			return m, nil
		}
		m.exitMove()
		m.setStatus(fmt.Sprintf("Moved to %s %s", day, slot), false)
		cmd := m.mutated()
		return m, cmd

	case "esc", "q":
		m.cursor = m.moveFrom
		m.exitMove()
		return m, nil
	}

	return m, nil
}

func (m *Model) exitMove() {
	LogModeChange(ModeMove, ModeNormal, "move end")
	m.mode = ModeNormal
	m.moveID = ""
	m.block = 0
	m.clampBlock()
}

// handleModalKeys handles keys while a modal is open.
func (m Model) handleModalKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.modalType {
	case ModalEntryForm:
		return m.handleFormKeys(msg)
	case ModalConflicts:
		switch msg.String() {
		case "y":
			return m, m.copyConflictSummary()
		case "esc", "q", "enter", "c":
			m.closeModal()
		}
		return m, nil
	case ModalHelp:
		switch msg.String() {
		case "esc", "q", "enter", "?":
			m.closeModal()
		}
		return m, nil
	}
	m.closeModal()
	return m, nil
}

// handleFormKeys handles keys in the entry form modal.
func (m Model) handleFormKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		// Discard: pending action never lands on the board
		m.pending = schedule.Idle()
		m.closeModal()
		return m, nil

	case "tab", "down":
		m.setFormFocus((m.formFocus + 1) % formFieldCount)
		return m, nil
	case "shift+tab", "up":
		m.setFormFocus((m.formFocus + formFieldCount - 1) % formFieldCount)
		return m, nil

	case "enter":
		in := schedule.FormInput{
			Subject:  m.formSubject.Value(),
			Teacher:  m.formTeacher.Value(),
			Semester: m.formSemester.Value(),
		}
		entry, err := m.board.Save(m.pending, in)
		if err != nil {
			m.formErr = formErrorText(err)
			return m, nil
		}
		m.pending = schedule.Idle()
		m.closeModal()
		if entry == nil {
			return m, nil
		}
		m.setStatus("Saved "+entry.Subject, false)
		cmd := m.mutated()
		return m, cmd
	}

	var cmd tea.Cmd
	switch m.formFocus {
	case 0:
		m.formSubject, cmd = m.formSubject.Update(msg)
	case 1:
		m.formTeacher, cmd = m.formTeacher.Update(msg)
	case 2:
		m.formSemester, cmd = m.formSemester.Update(msg)
	}
	return m, cmd
}

func formErrorText(err error) string {
	switch {
	case errors.Is(err, schedule.ErrSubjectRequired):
		return "Subject is required"
	case errors.Is(err, schedule.ErrTeacherRequired):
		return "Teacher is required"
	default:
		return err.Error()
	}
}

// copyConflictSummary puts a plain-text conflict listing on the
// clipboard.
func (m *Model) copyConflictSummary() tea.Cmd {
	text := m.conflictSummaryText()
	return func() tea.Msg {
		if err := clipboard.WriteAll(text); err != nil {
			return commands.ErrMsg{Err: fmt.Errorf("copying conflicts: %w", err)}
		}
		return commands.StatusMsgCmd{Msg: "Conflicts copied"}
	}
}

// copyExportLink puts a server export URL on the clipboard.
func (m *Model) copyExportLink(kind sched.ExportKind) tea.Cmd {
	url, err := m.client.ExportURL(kind, m.board.Session())
	if err != nil {
		m.setStatus("No session to export yet", true)
		return nil
	}
	return func() tea.Msg {
		if err := clipboard.WriteAll(url); err != nil {
			return commands.ErrMsg{Err: fmt.Errorf("copying export link: %w", err)}
		}
		return commands.ExportCopiedMsg{URL: url}
	}
}
