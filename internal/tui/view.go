package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"slate/internal/schedule"
	"slate/internal/tui/view"
)

const timeColWidth = 12

// View renders the TUI using a boxed, parent-controlled layout.
func (m Model) View() string {
	state := m.viewState()
	return view.Render(state)
}

func (m Model) viewState() view.ViewState {
	base := m.renderAppContent()
	showModal := m.mode == ModeModal && m.modalType != ModalNone
	modal := ""
	if showModal {
		modal = m.renderModal()
		m.overlay.SetActive(true)
	} else {
		m.overlay.SetActive(false)
	}

	return view.ViewState{
		Width:            m.width,
		Height:           m.height,
		BaseContent:      base,
		ModalContent:     modal,
		ShowModal:        showModal,
		Overlay:          m.overlay,
		EmptyPlaceholder: "Loading...",
	}
}

func (m Model) renderAppContent() string {
	if m.width <= 0 || m.height <= 0 {
		return "Terminal too small"
	}

	title := m.renderTitle()
	gridBox := view.RenderTable(m.tableViewState())
	footerBox := view.RenderFooter(m.footerViewState())

	content := lipgloss.JoinVertical(lipgloss.Left, title, gridBox, footerBox)
	app := m.styles.AppStyle.Render(content)
	return view.PadLinesWithBackground(app, m.width, m.height, m.styles.colorBg)
}

func (m Model) renderTitle() string {
	title := "slate"
	if session := m.board.Session(); session != "" {
		title = fmt.Sprintf("slate · session %s", shortSession(session))
	}
	if m.loading {
		title += " · generating..."
	} else if m.syncing {
		title += " · syncing..."
	}
	return m.styles.TitleStyle.Render(title)
}

func (m Model) tableViewState() view.TableViewState {
	meta := m.board.Meta()
	if len(meta.Days) == 0 || len(meta.TimeSlots) == 0 {
		return view.TableViewState{Render: false}
	}

	gridH := m.height - 4 // title + footer lines
	if gridH < 3 {
		gridH = 3
	}

	headers := make([]string, 0, len(meta.Days)+1)
	headers = append(headers, "Time")
	headers = append(headers, meta.Days...)

	headerStyles := make([]lipgloss.Style, len(headers))
	headerStyles[0] = m.styles.TimeColumnStyle.Width(timeColWidth)
	for i := 1; i < len(headers); i++ {
		headerStyles[i] = m.styles.DayHeaderStyle
	}

	colWidth := m.colWidth(len(meta.Days))
	rows, cellStyles := m.buildGridRows(colWidth)

	return view.TableViewState{
		InnerW:       m.width,
		GridH:        gridH,
		Headers:      headers,
		HeaderStyles: headerStyles,
		Content: view.TableContent{
			Rows:       rows,
			CellStyles: cellStyles,
		},
		BorderStyle: m.styles.BorderStyle,
		Bg:          m.styles.colorBg,
		Render:      true,
	}
}

func (m Model) colWidth(days int) int {
	if days <= 0 {
		return minColWidth
	}
	w := (m.width - timeColWidth - days - 2) / days
	if w < minColWidth {
		w = minColWidth
	}
	return w
}

// buildGridRows produces one table row per time slot with a style for
// every cell.
func (m Model) buildGridRows(colWidth int) ([][]string, [][]lipgloss.Style) {
	meta := m.board.Meta()
	rows := make([][]string, 0, len(meta.TimeSlots))
	styles := make([][]lipgloss.Style, 0, len(meta.TimeSlots))

	for si, slot := range meta.TimeSlots {
		row := make([]string, 0, len(meta.Days)+1)
		rowStyles := make([]lipgloss.Style, 0, len(meta.Days)+1)
		row = append(row, slot)
		rowStyles = append(rowStyles, m.styles.TimeColumnStyle)

		for di, day := range meta.Days {
			text, style := m.renderCell(day, slot, di, si, colWidth)
			row = append(row, text)
			rowStyles = append(rowStyles, style)
		}
		rows = append(rows, row)
		styles = append(styles, rowStyles)
	}
	return rows, styles
}

func (m Model) renderCell(day, slot string, di, si, colWidth int) (string, lipgloss.Style) {
	placements := m.grid.At(day, slot)
	isCursor := m.cursor.Day == di && m.cursor.Slot == si
	flagged := m.flags.Flagged(day, slot)

	// Move mode: preview at the cursor, faded block at the origin
	if m.mode == ModeMove {
		if isCursor {
			entry, _ := m.board.EntryByID(m.moveID)
			label := "?"
			if entry != nil {
				label = entry.Label()
			}
			return view.TruncateLabel("» "+label, colWidth), m.styles.MovePreviewStyle
		}
		if m.moveFrom.Day == di && m.moveFrom.Slot == si {
			text := m.cellText(placements, colWidth, -1)
			return text, m.styles.MoveSourceStyle
		}
	}

	selected := -1
	if isCursor && len(placements) > 0 {
		selected = m.block
		if selected >= len(placements) {
			selected = len(placements) - 1
		}
	}
	text := m.cellText(placements, colWidth, selected)

	switch {
	case isCursor && flagged:
		return text, m.styles.FlaggedCursor
	case isCursor:
		return text, m.styles.CursorStyle
	case flagged:
		return text, m.styles.FlaggedCellStyle
	case len(placements) > 0:
		return text, m.styles.EntryCellStyle
	default:
		return text, m.styles.EmptyCellStyle
	}
}

// cellText renders the entry stack for a cell. The selected index gets
// a marker so stacked entries can be told apart while cycling.
func (m Model) cellText(placements []schedule.Placement, colWidth, selected int) string {
	if len(placements) == 0 {
		return ""
	}
	lines := make([]string, 0, len(placements))
	for i, p := range placements {
		label := p.Entry.Label()
		if i == selected && len(placements) > 1 {
			label = "▸" + label
		}
		lines = append(lines, view.TruncateLabel(label, colWidth))
	}
	return strings.Join(lines, "\n")
}

func (m Model) footerViewState() view.FooterViewState {
	legend := fmt.Sprintf("%d entries · %d conflicts", m.board.Len(), m.flags.Count())

	status, isErr := m.currentStatus()
	style := m.styles.StatusStyle
	if isErr {
		style = m.styles.StatusErrStyle
	}

	help := "h/j/k/l: move · enter: edit · a: add · m: relocate · g: generate · c: conflicts · ?: keys · q: quit"
	if m.mode == ModeMove {
		help = "h/j/k/l: choose cell · enter: drop · esc: cancel"
	}

	return view.FooterViewState{
		InnerW:     m.width,
		FooterH:    3,
		LegendLine: m.styles.LegendStyle.Render(legend),
		StatusLine: style.Render(status),
		HelpLine:   m.styles.HelpStyle.Render(help),
		Bg:         m.styles.colorBg,
	}
}
