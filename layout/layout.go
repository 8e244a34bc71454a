// Package layout renders two columns of text side by side: an unstyled art
// block on the left, colored when printed, and pre-colored info lines on the
// right.
//
// All padding is computed from visible widths. Escape sequences added by
// colorizing never count toward a column's width.
package layout

import (
	"io"
	"strings"

	"sysfetch/style"
)

// Engine lays out columns for a terminal of a fixed width. The width is
// captured once; resizes during a render are not observed.
type Engine struct {
	width   int
	painter style.Painter
}

// New returns an Engine for a terminal width columns wide. Negative widths
// are treated as zero.
func New(width int, p style.Painter) *Engine {
	if width < 0 {
		width = 0
	}
	return &Engine{width: width, painter: p}
}

// Width returns the terminal width the engine was created with.
func (e *Engine) Width() int { return e.width }

// HalfWidth is the nominal boundary between the two columns.
func (e *Engine) HalfWidth() int { return e.width / 2 }

// Render pairs left[i] with right[i]. Left lines are colored with leftColor
// and centered as a block inside the left half, using longestLeft as the
// block width. Right lines left over once left is exhausted are indented by
// the full half width. Mismatched lengths are never an error.
func (e *Engine) Render(left, right []string, longestLeft int, leftColor style.Color) string {
	half := e.HalfWidth()
	begin := saturatingSub(half, longestLeft) / 2
	beginSpacer := strings.Repeat(" ", begin)

	var b strings.Builder
	next := 0
	for _, line := range left {
		info := ""
		if next < len(right) {
			info = right[next]
			next++
		}
		lineSpacer := saturatingSub(half, style.VisibleWidth(line))
		end := saturatingSub(lineSpacer, begin)

		b.WriteString(beginSpacer)
		b.WriteString(e.painter.Colorize(line, leftColor))
		b.WriteString(strings.Repeat(" ", end))
		b.WriteString(info)
		b.WriteByte('\n')
	}

	margin := strings.Repeat(" ", half)
	for _, info := range right[next:] {
		b.WriteString(margin)
		b.WriteString(info)
		b.WriteByte('\n')
	}

	return b.String()
}

// Print renders the columns and writes them to w in a single Write, so no
// partial block reaches the output.
func (e *Engine) Print(w io.Writer, left, right []string, longestLeft int, leftColor style.Color) error {
	_, err := io.WriteString(w, e.Render(left, right, longestLeft, leftColor))
	return err
}

func saturatingSub(a, b int) int {
	if a <= b {
		return 0
	}
	return a - b
}
