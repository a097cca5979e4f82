package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// ModalOverlay splices a modal box into the middle of the base view.
// The modal content carries its own background; only the splice needs
// ANSI-aware cutting so the base styling survives on either side.
type ModalOverlay struct {
	active bool
}

// NewModalOverlay initializes an overlay.
func NewModalOverlay() ModalOverlay {
	return ModalOverlay{}
}

// SetActive controls overlay visibility.
func (o *ModalOverlay) SetActive(active bool) {
	o.active = active
}

// Active reports whether the overlay is visible.
func (o ModalOverlay) Active() bool {
	return o.active
}

// Render draws the modal on top of base content.
func (o ModalOverlay) Render(base string, width, height int, content string) string {
	if !o.active || width <= 0 || height <= 0 {
		return base
	}

	contentLines := splitContent(content)
	contentW, contentH := contentSize(contentLines)
	if contentW == 0 || contentH == 0 {
		return base
	}
	if contentW > width {
		contentW = width
	}
	if contentH > height {
		contentH = height
	}

	top := (height - contentH) / 2
	left := (width - contentW) / 2

	baseLines := normalizeLines(base, width, height)

	lines := make([]string, 0, height)
	for row := 0; row < height; row++ {
		if row < top || row >= top+contentH {
			lines = append(lines, baseLines[row])
			continue
		}

		line := contentLines[row-top]
		if lipgloss.Width(line) > contentW {
			line = ansi.Cut(line, 0, contentW)
		}
		if pad := contentW - lipgloss.Width(line); pad > 0 {
			line += strings.Repeat(" ", pad)
		}

		baseLine := baseLines[row]
		leftSlice := ansi.Cut(baseLine, 0, left)
		rightSlice := ansi.Cut(baseLine, left+contentW, width)
		lines = append(lines, leftSlice+line+ansi.ResetStyle+rightSlice)
	}

	return strings.Join(lines, "\n")
}

func splitContent(content string) []string {
	if content == "" {
		return nil
	}
	lines := strings.Split(content, "\n")
	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

func contentSize(lines []string) (int, int) {
	maxWidth := 0
	for _, line := range lines {
		if w := lipgloss.Width(line); w > maxWidth {
			maxWidth = w
		}
	}
	return maxWidth, len(lines)
}

func normalizeLines(base string, width, height int) []string {
	lines := strings.Split(base, "\n")
	for len(lines) < height {
		lines = append(lines, "")
	}
	if len(lines) > height {
		lines = lines[:height]
	}
	for i, line := range lines {
		w := lipgloss.Width(line)
		if w > width {
			lines[i] = ansi.Cut(line, 0, width)
		} else if w < width {
			lines[i] = line + strings.Repeat(" ", width-w)
		}
	}
	return lines
}
