// Package catalog turns collected host facts into the ordered, colored info
// lines printed beside the art.
package catalog

import (
	"fmt"
	"strings"

	"sysfetch/style"
	"sysfetch/sysinfo"
)

// Kind selects how a field is rendered.
type Kind int

const (
	// KindTitle prints the value alone in the primary color.
	KindTitle Kind = iota
	// KindRule prints a run of dashes under the title.
	KindRule
	// KindScalar prints "Name: value".
	KindScalar
	// KindList prints "Name: value" for one value and "Name (i): value"
	// for several.
	KindList
)

// Field is one entry of the catalog.
type Field struct {
	Name        string
	Kind        Kind
	Values      []string
	Placeholder string
}

// Catalog is the fixed, ordered list of fields.
type Catalog struct {
	fields []Field
}

// New builds the catalog from collected facts.
func New(info *sysinfo.SystemInfo) *Catalog {
	scalar := func(name, value, placeholder string) Field {
		return Field{Name: name, Kind: KindScalar, Values: []string{value}, Placeholder: placeholder}
	}
	list := func(name string, values []string, placeholder string) Field {
		return Field{Name: name, Kind: KindList, Values: values, Placeholder: placeholder}
	}

	return &Catalog{fields: []Field{
		{Name: "HostName", Kind: KindTitle, Values: []string{info.HostName}, Placeholder: sysinfo.PlaceholderHostName},
		{Name: "HostUnderline", Kind: KindRule, Values: []string{info.HostName}, Placeholder: sysinfo.PlaceholderHostName},
		scalar("Host", info.Host, sysinfo.PlaceholderHost),
		scalar("OS", info.OS, sysinfo.PlaceholderOS),
		scalar("Kernel", info.Kernel, sysinfo.PlaceholderKernel),
		scalar("Uptime", info.Uptime, sysinfo.PlaceholderUptime),
		scalar("Shell", info.Shell, sysinfo.PlaceholderShell),
		list("Resolution", info.Resolutions, sysinfo.PlaceholderResolution),
		scalar("WM", info.WM, sysinfo.PlaceholderWM),
		scalar("Terminal", info.Terminal, sysinfo.PlaceholderTerminal),
		list("CPU", info.CPUs, sysinfo.PlaceholderCPU),
		list("GPU", info.GPUs, sysinfo.PlaceholderGPU),
		scalar("Memory", info.Memory, sysinfo.PlaceholderMemory),
	}}
}

// Fields returns the catalog entries in display order.
func (c *Catalog) Fields() []Field {
	out := make([]Field, len(c.fields))
	copy(out, c.fields)
	return out
}

// Lines renders every field, labels in primary and values in secondary.
// Each field yields at least one line.
func (c *Catalog) Lines(p style.Painter, primary, secondary style.Color) []string {
	var lines []string
	for _, f := range c.fields {
		lines = append(lines, f.lines(p, primary, secondary)...)
	}
	return lines
}

func (f Field) lines(p style.Painter, primary, secondary style.Color) []string {
	values := f.values()

	switch f.Kind {
	case KindTitle:
		return []string{p.Colorize(values[0], primary)}
	case KindRule:
		return []string{p.Colorize(strings.Repeat("-", style.VisibleWidth(values[0])), primary)}
	case KindList:
		if len(values) > 1 {
			out := make([]string, len(values))
			for i, v := range values {
				out[i] = fmt.Sprintf("%s (%s): %s",
					p.Colorize(f.Name, primary),
					p.Colorize(fmt.Sprint(i+1), primary),
					p.Colorize(v, secondary))
			}
			return out
		}
	}
	return []string{fmt.Sprintf("%s: %s", p.Colorize(f.Name, primary), p.Colorize(values[0], secondary))}
}

// values returns the non-blank values, or the placeholder when there are
// none.
func (f Field) values() []string {
	var out []string
	for _, v := range f.Values {
		if strings.TrimSpace(v) != "" {
			out = append(out, v)
		}
	}
	if len(out) == 0 {
		return []string{f.Placeholder}
	}
	return out
}
