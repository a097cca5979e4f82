package tui

import (
	"fmt"
	"strings"

	"slate/internal/schedule"
	"slate/internal/tui/view"
)

// openAddForm opens the entry form for an empty cell.
func (m *Model) openAddForm(day, timeSlot string) {
	m.pending = schedule.Adding(day, timeSlot)
	m.resetForm("", "", "")
	m.mode = ModeModal
	m.modalType = ModalEntryForm
	LogModeChange(ModeNormal, ModeModal, "add form")
}

// openEditForm opens the entry form prefilled from an existing entry.
func (m *Model) openEditForm(entry *schedule.Entry) {
	m.pending = schedule.Editing(entry.ID)
	m.resetForm(entry.Subject, entry.Teacher, entry.Semester)
	m.mode = ModeModal
	m.modalType = ModalEntryForm
	LogModeChange(ModeNormal, ModeModal, "edit form")
}

// openConflicts opens the conflict listing, scoped to the cursor cell
// or showing every flagged cell.
func (m *Model) openConflicts(cellOnly bool) {
	m.conflictCell = cellOnly
	m.mode = ModeModal
	m.modalType = ModalConflicts
	LogModeChange(ModeNormal, ModeModal, "conflicts")
}

func (m *Model) closeModal() {
	LogModeChange(ModeModal, ModeNormal, "close")
	m.mode = ModeNormal
	m.modalType = ModalNone
	m.formErr = ""
}

func (m *Model) resetForm(subject, teacher, semester string) {
	m.formSubject.SetValue(subject)
	m.formTeacher.SetValue(teacher)
	m.formSemester.SetValue(semester)
	m.formErr = ""
	m.setFormFocus(0)
}

func (m *Model) setFormFocus(i int) {
	m.formFocus = i
	m.formSubject.Blur()
	m.formTeacher.Blur()
	m.formSemester.Blur()
	switch i {
	case 0:
		m.formSubject.Focus()
	case 1:
		m.formTeacher.Focus()
	case 2:
		m.formSemester.Focus()
	}
}

// renderModal renders the current modal content.
func (m Model) renderModal() string {
	switch m.modalType {
	case ModalEntryForm:
		return m.renderEntryForm()
	case ModalConflicts:
		return m.renderConflicts()
	case ModalHelp:
		return m.renderHelp()
	}
	return ""
}

func (m Model) renderEntryForm() string {
	title := "New entry"
	if m.pending.Kind() == schedule.PendingEditing {
		title = "Edit entry"
	}
	if day, slot := m.pending.Cell(); day != "" {
		title = fmt.Sprintf("%s · %s %s", title, day, slot)
	}

	fields := []view.FormField{
		{Label: "Subject", Value: m.formSubject.View(), Focused: m.formFocus == 0},
		{Label: "Teacher", Value: m.formTeacher.View(), Focused: m.formFocus == 1},
		{Label: "Semester", Value: m.formSemester.View(), Focused: m.formFocus == 2},
	}
	body := view.RenderFormBody(fields, m.formErr, m.styles.Modal)
	footer := "tab: next field • enter: save • esc: cancel"
	return view.RenderModalFrame(title, body, footer, m.styles.Modal)
}

func (m Model) renderConflicts() string {
	title := "Conflicts"
	var lines []view.ConflictLine

	if m.conflictCell {
		day, slot := m.cursorCell()
		title = fmt.Sprintf("Conflicts · %s %s", day, slot)
		for _, c := range m.flags.At(day, slot) {
			lines = append(lines, conflictLine(c))
		}
	} else {
		meta := m.board.Meta()
		for _, day := range meta.Days {
			for _, slot := range meta.TimeSlots {
				for _, c := range m.flags.At(day, slot) {
					lines = append(lines, conflictLine(c))
				}
			}
		}
	}

	body := view.RenderConflictBody(lines, "No conflicts here.", m.styles.Modal)
	return view.RenderModalFrame(title, body, "y: copy • esc: close", m.styles.Modal)
}

func conflictLine(c schedule.Conflict) view.ConflictLine {
	heading := fmt.Sprintf("[%s] %s %s", c.Type, c.Day, c.TimeSlot)
	var details []string
	if c.Teacher != "" {
		details = append(details, "teacher "+c.Teacher)
	}
	if c.Classroom != "" {
		details = append(details, "classroom "+c.Classroom)
	}
	if c.Semester != "" {
		details = append(details, "semester "+c.Semester)
	}
	if len(c.Subjects) > 0 {
		details = append(details, strings.Join(c.Subjects, ", "))
	}
	if len(c.Suggestions) > 0 {
		details = append(details, "try: "+strings.Join(c.Suggestions, "; "))
	}
	return view.ConflictLine{Heading: heading, Detail: strings.Join(details, " · ")}
}

// conflictSummaryText renders the current conflict listing as plain
// text for the clipboard.
func (m Model) conflictSummaryText() string {
	var b strings.Builder
	meta := m.board.Meta()
	for _, day := range meta.Days {
		for _, slot := range meta.TimeSlots {
			for _, c := range m.flags.At(day, slot) {
				line := conflictLine(c)
				b.WriteString(line.Heading)
				if line.Detail != "" {
					b.WriteString(": ")
					b.WriteString(line.Detail)
				}
				b.WriteString("\n")
			}
		}
	}
	if b.Len() == 0 {
		return "No conflicts."
	}
	return b.String()
}

func (m Model) renderHelp() string {
	body := strings.Join([]string{
		"h/j/k/l  move cursor",
		"tab      cycle entries in cell",
		"enter    edit entry / add in empty cell",
		"a        add entry here",
		"m        pick up entry, enter drops it",
		"g        generate timetable",
		"r        re-check conflicts",
		"c / C    conflicts at cell / everywhere",
		"e / x    copy PDF / Excel export link",
		"q        quit",
	}, "\n")
	return view.RenderModalFrame("Keys", m.styles.Modal.ModalBodyStyle.Render(body), "esc: close", m.styles.Modal)
}
