// Package main provides the sysfetch command-line tool, which prints a
// summary of the host beside a piece of text art, split into two columns
// sized to the terminal.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/muesli/termenv"

	"sysfetch/catalog"
	"sysfetch/layout"
	"sysfetch/style"
	"sysfetch/sysinfo"
	"sysfetch/terminal"
	"sysfetch/theme"
)

// themeEnv names the environment variable that selects the default theme.
const themeEnv = "SYSFETCH_THEME"

// options holds the parsed command line.
type options struct {
	theme      theme.Variant
	listThemes bool
	width      int
	noColor    bool
	timeout    time.Duration
	debug      bool
}

// main is the entry point for the sysfetch application.
// It captures the terminal width, gathers the host facts, and prints the
// art and the facts side-by-side in a single write.
func main() {
	opts, err := parseFlags(os.Args[1:], os.Getenv, os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	if opts.listThemes {
		fmt.Println(strings.Join(theme.Variants(), "\n"))
		return
	}

	if opts.debug {
		_ = os.Setenv(sysinfo.DebugEnv, "1")
	}

	// The width is read once, before anything is gathered; without it there
	// is no layout to render.
	width := opts.width
	if width <= 0 {
		width, err = terminal.Width()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error getting terminal size: %v\n", err)
			os.Exit(1)
		}
	}

	collector := sysinfo.NewCollector()
	collector.Timeout = opts.timeout
	info := collector.Collect(context.Background())

	var painter style.Painter = style.NewRenderer(os.Stdout)
	if opts.noColor {
		painter = style.NewRendererWithProfile(os.Stdout, termenv.Ascii)
	}

	if err := display(os.Stdout, theme.Builtin(opts.theme), info, width, painter); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing output: %v\n", err)
		os.Exit(1)
	}
}

// parseFlags reads the command line. The theme defaults to $SYSFETCH_THEME,
// then to the "alone" theme. Usage and flag errors are written to output.
func parseFlags(args []string, getenv func(string) string, output io.Writer) (*options, error) {
	fs := flag.NewFlagSet("sysfetch", flag.ContinueOnError)
	fs.SetOutput(output)

	defaultTheme := theme.Alone.String()
	if name := getenv(themeEnv); name != "" {
		defaultTheme = name
	}

	themeName := fs.String("theme", defaultTheme, "art theme: "+strings.Join(theme.Variants(), ", "))
	listThemes := fs.Bool("list-themes", false, "print the available themes and exit")
	width := fs.Int("width", 0, "terminal width override (0 queries the terminal)")
	noColor := fs.Bool("no-color", false, "disable colored output")
	timeout := fs.Duration("timeout", sysinfo.DefaultTimeout, "time limit for each system query")
	debug := fs.Bool("debug", false, "trace system queries on stderr (sets "+sysinfo.DebugEnv+")")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() > 0 {
		return nil, fmt.Errorf("unexpected argument %q", fs.Arg(0))
	}

	v, err := theme.ParseVariant(*themeName)
	if err != nil {
		return nil, err
	}

	return &options{
		theme:      v,
		listThemes: *listThemes,
		width:      *width,
		noColor:    *noColor,
		timeout:    *timeout,
		debug:      *debug,
	}, nil
}

// display renders the art and the info lines side-by-side to w.
//
// The info column is the catalog lines followed by a blank line and the
// theme's color swatch.
func display(w io.Writer, th *theme.Theme, info *sysinfo.SystemInfo, width int, p style.Painter) error {
	lines := catalog.New(info).Lines(p, th.Primary(), th.Secondary())
	lines = append(lines, "", th.Visual(p))

	eng := layout.New(width, p)
	return eng.Print(w, th.ArtLines(), lines, th.LongestLineLength(), th.Primary())
}
