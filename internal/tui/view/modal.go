package view

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ModalStyles groups the styles needed to render modal frames.
type ModalStyles struct {
	ModalHeaderStyle lipgloss.Style
	ModalTitleStyle  lipgloss.Style
	ModalFooterStyle lipgloss.Style
	ModalStyle       lipgloss.Style
	ModalBodyStyle   lipgloss.Style
	ModalErrorStyle  lipgloss.Style
}

// RenderModalFrame renders a modal with the provided title, body, and footer.
func RenderModalFrame(title, body, footer string, styles ModalStyles) string {
	var b strings.Builder

	header := styles.ModalHeaderStyle.Render(styles.ModalTitleStyle.Render(title))
	b.WriteString(header)
	if body != "" {
		b.WriteString("\n\n")
		b.WriteString(body)
	}
	if footer != "" {
		b.WriteString("\n\n")
		b.WriteString(styles.ModalFooterStyle.Render(footer))
	}

	return styles.ModalStyle.Render(b.String())
}

// FormField is one labelled input line in a modal form.
type FormField struct {
	Label   string
	Value   string
	Focused bool
}

// RenderFormBody renders labelled input rows plus an optional error line.
func RenderFormBody(fields []FormField, errLine string, styles ModalStyles) string {
	var b strings.Builder
	for i, f := range fields {
		if i > 0 {
			b.WriteString("\n")
		}
		label := styles.ModalBodyStyle.Render(f.Label + ": ")
		if f.Focused {
			label = styles.ModalTitleStyle.Render(f.Label + ": ")
		}
		b.WriteString(label)
		b.WriteString(f.Value)
	}
	if errLine != "" {
		b.WriteString("\n\n")
		b.WriteString(styles.ModalErrorStyle.Render(errLine))
	}
	return b.String()
}

// ConflictLine is one row in the conflict modal body.
type ConflictLine struct {
	Heading string
	Detail  string
}

// RenderConflictBody renders the conflict listing for the conflicts modal.
func RenderConflictBody(lines []ConflictLine, empty string, styles ModalStyles) string {
	if len(lines) == 0 {
		return styles.ModalBodyStyle.Render(empty)
	}
	var b strings.Builder
	for i, l := range lines {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(styles.ModalErrorStyle.Render(l.Heading))
		if l.Detail != "" {
			b.WriteString("\n")
			b.WriteString(styles.ModalBodyStyle.Render("  " + l.Detail))
		}
	}
	return b.String()
}
