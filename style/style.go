// Package style provides the color identifiers and the colorize primitive used
// to decorate art and info lines, plus visible-width measurement that ignores
// the escape sequences the decoration adds.
package style

import (
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"
	"github.com/muesli/termenv"
)

// Color is an ANSI palette index understood by lipgloss.
type Color string

// Standard terminal colors. The bright indices match what most fetch tools
// call "red", "green" and so on; the Dark variants are the low-intensity ones.
const (
	Black   Color = "0"
	Red     Color = "9"
	Green   Color = "10"
	Yellow  Color = "11"
	Blue    Color = "12"
	Magenta Color = "13"
	Cyan    Color = "14"
	White   Color = "15"

	DarkRed    Color = "1"
	DarkYellow Color = "3"
	Grey       Color = "7"
)

// TabWidth is the number of spaces a tab is rendered as. Colorize expands
// tabs to this many spaces and VisibleWidth counts them the same way.
const TabWidth = 4

// Painter wraps text with a foreground color.
type Painter interface {
	Colorize(text string, c Color) string
}

// Renderer is a Painter backed by a lipgloss renderer bound to an output.
type Renderer struct {
	r *lipgloss.Renderer
}

// NewRenderer returns a Renderer that detects the color profile of w.
func NewRenderer(w io.Writer) *Renderer {
	return &Renderer{r: lipgloss.NewRenderer(w)}
}

// NewRendererWithProfile returns a Renderer that always uses profile,
// regardless of what w supports.
func NewRendererWithProfile(w io.Writer, profile termenv.Profile) *Renderer {
	r := lipgloss.NewRenderer(w)
	r.SetColorProfile(profile)
	return &Renderer{r: r}
}

// Colorize implements Painter.
func (p *Renderer) Colorize(text string, c Color) string {
	if text == "" {
		return ""
	}
	return p.r.NewStyle().Foreground(lipgloss.Color(c)).TabWidth(TabWidth).Render(text)
}

// VisibleWidth returns the number of terminal cells s occupies, excluding any
// escape sequences. Each tab counts as TabWidth cells.
func VisibleWidth(s string) int {
	s = ansi.Strip(s)
	if strings.Contains(s, "\t") {
		s = strings.ReplaceAll(s, "\t", tabSpaces)
	}
	return runewidth.StringWidth(s)
}

var tabSpaces = strings.Repeat(" ", TabWidth)
