package view

import "github.com/charmbracelet/lipgloss"

// FooterViewState holds the strings needed to render the footer section.
type FooterViewState struct {
	InnerW     int
	FooterH    int
	LegendLine string
	StatusLine string
	HelpLine   string
	Bg         lipgloss.Color
}

// RenderFooter renders legend, status, and help lines.
func RenderFooter(state FooterViewState) string {
	if state.FooterH <= 0 {
		return ""
	}

	s := state.LegendLine + "\n"
	s += state.StatusLine + "\n"
	s += state.HelpLine

	return PlaceBox(state.InnerW, state.FooterH, lipgloss.Bottom, s, state.Bg)
}
