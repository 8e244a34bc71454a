// Package theme bundles an art block with the two colors used to render the
// system summary.
package theme

import (
	"errors"
	"fmt"
	"strings"

	"sysfetch/ascii"
	"sysfetch/style"
)

// ErrUnknownVariant is returned by ParseVariant for names that do not match a
// built-in theme.
var ErrUnknownVariant = errors.New("unknown theme")

// Variant identifies one of the built-in themes.
type Variant int

const (
	Wavey Variant = iota
	Alone
	Desert
	Windows
)

var variantNames = [...]string{
	Wavey:   "wavey",
	Alone:   "alone",
	Desert:  "desert",
	Windows: "windows",
}

func (v Variant) String() string {
	if v < 0 || int(v) >= len(variantNames) {
		return fmt.Sprintf("Variant(%d)", int(v))
	}
	return variantNames[v]
}

// Variants returns the names of all built-in themes in declaration order.
func Variants() []string {
	names := make([]string, len(variantNames))
	copy(names, variantNames[:])
	return names
}

// ParseVariant maps a case-insensitive theme name to its Variant.
func ParseVariant(name string) (Variant, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	for i, candidate := range variantNames {
		if candidate == n {
			return Variant(i), nil
		}
	}
	return 0, fmt.Errorf("%w %q (available: %s)", ErrUnknownVariant, name, strings.Join(Variants(), ", "))
}

// swatchOrder is the fixed color order of the footer swatch.
var swatchOrder = [...]style.Color{
	style.Black,
	style.Red,
	style.Green,
	style.Yellow,
	style.Blue,
	style.Magenta,
	style.Cyan,
	style.White,
}

const swatchBlock = "███"

// Theme is an immutable art block plus a primary and secondary color.
type Theme struct {
	art       string
	primary   style.Color
	secondary style.Color
	longest   int
}

// New builds a Theme from an unstyled art block. The longest line length is
// measured once here in terminal cells.
func New(art string, primary, secondary style.Color) *Theme {
	t := &Theme{
		art:       art,
		primary:   primary,
		secondary: secondary,
	}
	for _, line := range splitLines(art) {
		if w := style.VisibleWidth(line); w > t.longest {
			t.longest = w
		}
	}
	return t
}

// Builtin returns the theme for v. Unknown values fall back to Alone.
func Builtin(v Variant) *Theme {
	switch v {
	case Wavey:
		return New(strings.Join(ascii.Seal(), "\n"), style.Blue, style.White)
	case Desert:
		return New(strings.Join(ascii.Camel(), "\n"), style.DarkYellow, style.White)
	case Windows:
		return New(strings.Join(ascii.Windows(), "\n"), style.Cyan, style.White)
	default:
		return New(strings.Join(ascii.Alone(), "\n"), style.DarkRed, style.White)
	}
}

// Art returns the art block verbatim.
func (t *Theme) Art() string { return t.art }

// ArtLines returns the art block split into rows.
func (t *Theme) ArtLines() []string { return splitLines(t.art) }

// Primary colors the art and the info field names.
func (t *Theme) Primary() style.Color { return t.primary }

// Secondary colors the info values.
func (t *Theme) Secondary() style.Color { return t.secondary }

// LongestLineLength is the visible width of the widest art row, or 0 for an
// empty block.
func (t *Theme) LongestLineLength() int { return t.longest }

// Visual renders the eight-color swatch shown under the info column.
func (t *Theme) Visual(p style.Painter) string {
	var b strings.Builder
	for _, c := range swatchOrder {
		b.WriteString(p.Colorize(swatchBlock, c))
	}
	return b.String()
}

// splitLines splits on newlines; a trailing newline does not produce an
// extra empty row.
func splitLines(s string) []string {
	if s == "" {
		return nil
	}
	lines := strings.Split(s, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}
