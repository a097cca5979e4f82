// Package theme provides color themes for the TUI.
package theme

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Theme holds all colors for a TUI theme.
type Theme struct {
	Name        string
	Bg          string // Base background
	BgHighlight string // Entry blocks, subtle highlight
	BgSelection string // Cursor, selection
	Fg          string // Primary foreground
	FgMuted     string // Empty cells, muted elements
	Accent      string // Title, primary accent, borders
	Warning     string // Conflict flags, move mode
	Success     string // Sync ok, saved status

	ModalBorder string
	ModalBg     string
}

var builtins = map[string]Theme{
	"frappe": {
		Name:        "frappe",
		Bg:          "#303446",
		BgHighlight: "#414559",
		BgSelection: "#51576d",
		Fg:          "#c6d0f5",
		FgMuted:     "#737994",
		Accent:      "#8caaee",
		Warning:     "#e78284",
		Success:     "#a6d189",
		ModalBorder: "#babbf1",
		ModalBg:     "#292c3c",
	},
	"mocha": {
		Name:        "mocha",
		Bg:          "#1e1e2e",
		BgHighlight: "#313244",
		BgSelection: "#45475a",
		Fg:          "#cdd6f4",
		FgMuted:     "#6c7086",
		Accent:      "#89b4fa",
		Warning:     "#f38ba8",
		Success:     "#a6e3a1",
		ModalBorder: "#b4befe",
		ModalBg:     "#181825",
	},
	"macchiato": {
		Name:        "macchiato",
		Bg:          "#24273a",
		BgHighlight: "#363a4f",
		BgSelection: "#494d64",
		Fg:          "#cad3f5",
		FgMuted:     "#6e738d",
		Accent:      "#8aadf4",
		Warning:     "#ed8796",
		Success:     "#a6da95",
		ModalBorder: "#b7bdf8",
		ModalBg:     "#1e2030",
	},
	"latte": {
		Name:        "latte",
		Bg:          "#eff1f5",
		BgHighlight: "#ccd0da",
		BgSelection: "#bcc0cc",
		Fg:          "#4c4f69",
		FgMuted:     "#9ca0b0",
		Accent:      "#1e66f5",
		Warning:     "#d20f39",
		Success:     "#40a02b",
		ModalBorder: "#7287fd",
		ModalBg:     "#e6e9ef",
	},
}

// Load returns the theme with the given name.
// Falls back to frappe if the theme is not found.
func Load(name string) (*Theme, error) {
	if name == "" {
		name = "frappe"
	}
	t, ok := builtins[strings.ToLower(name)]
	if !ok {
		if f, ok := builtins["frappe"]; ok {
			return &f, nil
		}
		return nil, fmt.Errorf("loading theme %q: not found", name)
	}
	return &t, nil
}

// Names lists the built-in theme names.
func Names() []string {
	return []string{"frappe", "latte", "macchiato", "mocha"}
}

// Color returns a lipgloss.Color for the given hex string.
func Color(hex string) lipgloss.Color {
	return lipgloss.Color(hex)
}

// Palette holds precomputed lipgloss colors derived from a Theme.
type Palette struct {
	Bg          lipgloss.Color
	BgHighlight lipgloss.Color
	BgSelection lipgloss.Color
	Fg          lipgloss.Color
	FgMuted     lipgloss.Color
	Accent      lipgloss.Color
	Warning     lipgloss.Color
	Success     lipgloss.Color
	ModalBorder lipgloss.Color
	ModalBg     lipgloss.Color
}

// NewPalette derives a Palette from the provided Theme.
func NewPalette(t *Theme) *Palette {
	if t == nil {
		t, _ = Load("")
	}
	return &Palette{
		Bg:          Color(t.Bg),
		BgHighlight: Color(t.BgHighlight),
		BgSelection: Color(t.BgSelection),
		Fg:          Color(t.Fg),
		FgMuted:     Color(t.FgMuted),
		Accent:      Color(t.Accent),
		Warning:     Color(t.Warning),
		Success:     Color(t.Success),
		ModalBorder: Color(t.ModalBorder),
		ModalBg:     Color(t.ModalBg),
	}
}
