package ascii

import (
	"strings"
	"testing"
)

func TestBlocksAreUnstyled(t *testing.T) {
	blocks := map[string][]string{
		"seal":    Seal(),
		"alone":   Alone(),
		"camel":   Camel(),
		"windows": Windows(),
	}

	for name, lines := range blocks {
		if len(lines) == 0 {
			t.Fatalf("%s: empty art block", name)
		}
		for i, line := range lines {
			if strings.Contains(line, "\x1b") {
				t.Fatalf("%s line %d contains an escape sequence: %q", name, i, line)
			}
			if strings.Contains(line, "\n") {
				t.Fatalf("%s line %d contains a newline: %q", name, i, line)
			}
		}
	}
}

func TestBlocksReturnFreshSlices(t *testing.T) {
	a := Alone()
	a[0] = "mutated"
	if Alone()[0] == "mutated" {
		t.Fatalf("Alone() shares its backing array between calls")
	}
}
