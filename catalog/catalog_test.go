package catalog

import (
	"bytes"
	"reflect"
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/termenv"

	"sysfetch/style"
	"sysfetch/sysinfo"
)

// markPainter wraps text as <color:text> so the styled spans are visible.
type markPainter struct{}

func (markPainter) Colorize(text string, c style.Color) string {
	return "<" + string(c) + ":" + text + ">"
}

type plainPainter struct{}

func (plainPainter) Colorize(text string, _ style.Color) string { return text }

func sampleInfo() *sysinfo.SystemInfo {
	return &sysinfo.SystemInfo{
		HostName:    "devbox",
		Host:        "ubuntu",
		OS:          "Ubuntu 22.04 x86_64",
		Kernel:      "6.5.0",
		Uptime:      "2 hours",
		Shell:       "/bin/zsh",
		Resolutions: []string{"2560x1440"},
		WM:          "iTerm.app",
		Terminal:    "iTerm2",
		CPUs:        []string{"Apple M1 Pro"},
		GPUs:        []string{"GPU A", "GPU B"},
		Memory:      "6144MiB / 32768MiB",
	}
}

func TestLines(t *testing.T) {
	got := New(sampleInfo()).Lines(plainPainter{}, style.Red, style.White)
	want := []string{
		"devbox",
		"------",
		"Host: ubuntu",
		"OS: Ubuntu 22.04 x86_64",
		"Kernel: 6.5.0",
		"Uptime: 2 hours",
		"Shell: /bin/zsh",
		"Resolution: 2560x1440",
		"WM: iTerm.app",
		"Terminal: iTerm2",
		"CPU: Apple M1 Pro",
		"GPU (1): GPU A",
		"GPU (2): GPU B",
		"Memory: 6144MiB / 32768MiB",
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Lines() =\n%q\nwant\n%q", got, want)
	}
}

func TestLinesColoring(t *testing.T) {
	got := New(sampleInfo()).Lines(markPainter{}, style.Red, style.White)

	checks := map[int]string{
		0:  "<9:devbox>",
		1:  "<9:------>",
		2:  "<9:Host>: <15:ubuntu>",
		11: "<9:GPU> (<9:1>): <15:GPU A>",
		12: "<9:GPU> (<9:2>): <15:GPU B>",
	}
	for i, want := range checks {
		if got[i] != want {
			t.Fatalf("line %d = %q; want %q", i, got[i], want)
		}
	}
}

func TestFailedFactKeepsItsLine(t *testing.T) {
	info := sampleInfo()
	info.GPUs = nil
	info.Kernel = ""

	got := New(info).Lines(plainPainter{}, style.Red, style.White)
	if len(got) != 13 {
		t.Fatalf("got %d lines; want 13", len(got))
	}
	if got[4] != "Kernel: "+sysinfo.PlaceholderKernel {
		t.Fatalf("line 4 = %q", got[4])
	}
	if got[11] != "GPU: Unable to get GPU" {
		t.Fatalf("line 11 = %q; want GPU placeholder", got[11])
	}
	if !strings.HasPrefix(got[12], "Memory: ") {
		t.Fatalf("line 12 = %q; catalog order broken", got[12])
	}
}

func TestFieldOrder(t *testing.T) {
	var names []string
	for _, f := range New(sampleInfo()).Fields() {
		names = append(names, f.Name)
	}
	want := []string{"HostName", "HostUnderline", "Host", "OS", "Kernel", "Uptime", "Shell",
		"Resolution", "WM", "Terminal", "CPU", "GPU", "Memory"}
	if !reflect.DeepEqual(names, want) {
		t.Fatalf("field order = %q; want %q", names, want)
	}
}

func TestRuleMatchesVisibleHostWidth(t *testing.T) {
	info := sampleInfo()
	info.HostName = "ホスト"
	got := New(info).Lines(plainPainter{}, style.Red, style.White)
	if got[1] != "------" {
		t.Fatalf("rule = %q; want 6 dashes for a 6-cell host name", got[1])
	}
}

func TestLinesWithRenderer(t *testing.T) {
	p := style.NewRendererWithProfile(&bytes.Buffer{}, termenv.ANSI)
	styled := New(sampleInfo()).Lines(p, style.Red, style.White)
	plain := New(sampleInfo()).Lines(plainPainter{}, style.Red, style.White)

	if len(styled) != len(plain) {
		t.Fatalf("styled has %d lines; plain has %d", len(styled), len(plain))
	}
	for i := range styled {
		if !strings.Contains(styled[i], "\x1b[") {
			t.Fatalf("line %d is not styled: %q", i, styled[i])
		}
		if ansi.Strip(styled[i]) != plain[i] {
			t.Fatalf("line %d stripped = %q; want %q", i, ansi.Strip(styled[i]), plain[i])
		}
	}
}
