// Package terminal reports the width of the terminal the summary is printed
// to.
package terminal

import (
	"errors"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/x/term"
)

// ErrNoTerminal is returned when no width source is available.
var ErrNoTerminal = errors.New("unable to determine terminal width")

// Width returns the terminal width in columns. It asks stdout first, then
// the platform fallback (the controlling terminal through stderr or stdin),
// then $COLUMNS.
func Width() (int, error) {
	return width(stdoutWidth, platformWidth, os.Getenv)
}

func width(primary, fallback func() (int, error), getenv func(string) string) (int, error) {
	if w, err := primary(); err == nil && w > 0 {
		return w, nil
	}
	if w, err := fallback(); err == nil && w > 0 {
		return w, nil
	}
	if cols := strings.TrimSpace(getenv("COLUMNS")); cols != "" {
		if w, err := strconv.Atoi(cols); err == nil && w > 0 {
			return w, nil
		}
	}
	return 0, ErrNoTerminal
}

func stdoutWidth() (int, error) {
	w, _, err := term.GetSize(os.Stdout.Fd())
	return w, err
}
