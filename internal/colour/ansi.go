package colour

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const defaultWidth = 8

// Swatch renders colour previews for a terminal writer.
// When disabled it renders plain text so output stays pipe-friendly.
type Swatch struct {
	renderer *lipgloss.Renderer
	enabled  bool
}

// NewSwatch creates a Swatch that writes for w.
func NewSwatch(w io.Writer, enabled bool) *Swatch {
	return &Swatch{
		renderer: lipgloss.NewRenderer(w),
		enabled:  enabled,
	}
}

// Enabled reports whether previews are drawn.
func (s *Swatch) Enabled() bool {
	return s.enabled
}

// Block returns a solid block of the given colour, width characters wide.
func (s *Swatch) Block(c RGB, width int) string {
	if !s.enabled {
		return ""
	}
	if width <= 0 {
		width = defaultWidth
	}
	return s.renderer.NewStyle().Background(lipgloss.Color(c.Hex())).Render(strings.Repeat(" ", width))
}

// Sample renders text in fg on bg, centred in a block width characters wide.
func (s *Swatch) Sample(fg, bg RGB, text string, width int) string {
	if width <= 0 {
		width = defaultWidth
	}

	// Pad or truncate text to fit width.
	displayText := text
	if len(text) > width {
		displayText = text[:width]
	} else if len(text) < width {
		padding := (width - len(text)) / 2
		displayText = strings.Repeat(" ", padding) + text + strings.Repeat(" ", width-len(text)-padding)
	}

	if !s.enabled {
		return displayText
	}

	return s.renderer.NewStyle().
		Foreground(lipgloss.Color(fg.Hex())).
		Background(lipgloss.Color(bg.Hex())).
		Render(displayText)
}

// Label formats a colour with a preview block, a label and its hex code.
func (s *Swatch) Label(c RGB, label string) string {
	if !s.enabled {
		return fmt.Sprintf("%-20s %s", label, c.Hex())
	}
	return fmt.Sprintf("%s  %-20s %s", s.Block(c, defaultWidth), label, c.Hex())
}
