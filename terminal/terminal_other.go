//go:build !unix

package terminal

import (
	"os"

	"github.com/charmbracelet/x/term"
)

func platformWidth() (int, error) {
	w, _, err := term.GetSize(os.Stderr.Fd())
	return w, err
}
