// Package tui provides the terminal user interface for slate.
package tui

import (
	"github.com/charmbracelet/lipgloss"

	"slate/internal/tui/theme"
	"slate/internal/tui/view"
)

// Minimum terminal width per day column before labels are truncated hard.
const minColWidth = 10

// Styles holds all lipgloss styles for the TUI, derived from a theme.
type Styles struct {
	colorBg          lipgloss.Color
	colorBgHighlight lipgloss.Color
	colorBgSelection lipgloss.Color
	colorFg          lipgloss.Color
	colorFgMuted     lipgloss.Color
	colorAccent      lipgloss.Color
	colorWarning     lipgloss.Color
	colorSuccess     lipgloss.Color

	// Title and grid chrome
	TitleStyle      lipgloss.Style
	DayHeaderStyle  lipgloss.Style
	TimeColumnStyle lipgloss.Style
	BorderStyle     lipgloss.Style

	// Cells
	EntryCellStyle   lipgloss.Style
	EmptyCellStyle   lipgloss.Style
	CursorStyle      lipgloss.Style
	FlaggedCellStyle lipgloss.Style
	FlaggedCursor    lipgloss.Style
	MovePreviewStyle lipgloss.Style
	MoveSourceStyle  lipgloss.Style

	// Footer
	LegendStyle    lipgloss.Style
	StatusStyle    lipgloss.Style
	StatusErrStyle lipgloss.Style
	HelpStyle      lipgloss.Style

	// App frame
	AppStyle lipgloss.Style

	// Modal
	ModalBackdropColor lipgloss.Color
	Modal              view.ModalStyles

	// Modal inputs
	ModalPlaceholderStyle lipgloss.Style
	ModalInputTextStyle   lipgloss.Style
	ModalInputCursorStyle lipgloss.Style
}

// NewStyles creates styles from a theme.
func NewStyles(t *theme.Theme) *Styles {
	p := theme.NewPalette(t)

	s := &Styles{
		colorBg:          p.Bg,
		colorBgHighlight: p.BgHighlight,
		colorBgSelection: p.BgSelection,
		colorFg:          p.Fg,
		colorFgMuted:     p.FgMuted,
		colorAccent:      p.Accent,
		colorWarning:     p.Warning,
		colorSuccess:     p.Success,
	}

	s.TitleStyle = lipgloss.NewStyle().
		Foreground(p.Accent).
		Background(p.Bg).
		Bold(true).
		Padding(0, 1)

	s.DayHeaderStyle = lipgloss.NewStyle().
		Foreground(p.Accent).
		Background(p.Bg).
		Bold(true).
		Align(lipgloss.Center)

	s.TimeColumnStyle = lipgloss.NewStyle().
		Foreground(p.FgMuted).
		Background(p.Bg)

	s.BorderStyle = lipgloss.NewStyle().
		Foreground(p.Accent).
		Background(p.Bg)

	s.EntryCellStyle = lipgloss.NewStyle().
		Foreground(p.Fg).
		Background(p.BgHighlight)

	s.EmptyCellStyle = lipgloss.NewStyle().
		Foreground(p.FgMuted).
		Background(p.Bg)

	s.CursorStyle = lipgloss.NewStyle().
		Foreground(p.Fg).
		Background(p.BgSelection).
		Bold(true)

	s.FlaggedCellStyle = lipgloss.NewStyle().
		Foreground(p.Warning).
		Background(p.BgHighlight).
		Bold(true)

	s.FlaggedCursor = lipgloss.NewStyle().
		Foreground(p.Warning).
		Background(p.BgSelection).
		Bold(true)

	s.MovePreviewStyle = lipgloss.NewStyle().
		Foreground(p.Bg).
		Background(p.Warning).
		Bold(true)

	s.MoveSourceStyle = lipgloss.NewStyle().
		Foreground(p.FgMuted).
		Background(p.Bg).
		Faint(true)

	s.LegendStyle = lipgloss.NewStyle().
		Foreground(p.FgMuted).
		Background(p.Bg)

	s.StatusStyle = lipgloss.NewStyle().
		Foreground(p.Success).
		Background(p.Bg)

	s.StatusErrStyle = lipgloss.NewStyle().
		Foreground(p.Warning).
		Background(p.Bg)

	s.HelpStyle = lipgloss.NewStyle().
		Foreground(p.FgMuted).
		Background(p.Bg)

	s.AppStyle = lipgloss.NewStyle().
		Background(p.Bg)

	s.ModalBackdropColor = p.ModalBg

	s.Modal = view.ModalStyles{
		ModalHeaderStyle: lipgloss.NewStyle().Background(p.ModalBg),
		ModalTitleStyle: lipgloss.NewStyle().
			Foreground(p.Accent).
			Background(p.ModalBg).
			Bold(true),
		ModalFooterStyle: lipgloss.NewStyle().
			Foreground(p.FgMuted).
			Background(p.ModalBg),
		ModalStyle: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.ModalBorder).
			BorderBackground(p.ModalBg).
			Background(p.ModalBg).
			Padding(1, 2),
		ModalBodyStyle: lipgloss.NewStyle().
			Foreground(p.Fg).
			Background(p.ModalBg),
		ModalErrorStyle: lipgloss.NewStyle().
			Foreground(p.Warning).
			Background(p.ModalBg),
	}

	s.ModalPlaceholderStyle = lipgloss.NewStyle().
		Foreground(p.FgMuted).
		Background(p.ModalBg)

	s.ModalInputTextStyle = lipgloss.NewStyle().
		Foreground(p.Fg).
		Background(p.ModalBg)

	s.ModalInputCursorStyle = lipgloss.NewStyle().
		Foreground(p.Accent).
		Background(p.ModalBg)

	return s
}
