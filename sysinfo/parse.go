package sysinfo

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
)

var (
	// xrandrGeometry matches the current mode of a connected output,
	// e.g. "1920x1080+0+0".
	xrandrGeometry = regexp.MustCompile(`^(\d+x\d+)\+\d+\+\d+$`)

	// profilerResolution matches "Resolution: 3456 x 2234 Retina".
	profilerResolution = regexp.MustCompile(`(\d+)\s*x\s*(\d+)`)
)

// parseXrandr returns the active resolution of each connected output in
// `xrandr --current` output. Outputs without an active mode are skipped.
func parseXrandr(out []byte) []string {
	var res []string
	sc := bufio.NewScanner(bytes.NewReader(out))
	for sc.Scan() {
		fields := strings.Fields(sc.Text())
		if len(fields) < 3 || fields[1] != "connected" {
			continue
		}
		for _, f := range fields[2:] {
			if m := xrandrGeometry.FindStringSubmatch(f); m != nil {
				res = append(res, m[1])
				break
			}
		}
	}
	return res
}

// parseLspci returns display controllers from `lspci -mm` output as
// "Vendor Device".
func parseLspci(out []byte) []string {
	var gpus []string
	sc := bufio.NewScanner(bytes.NewReader(out))
	for sc.Scan() {
		fields := splitQuoted(sc.Text())
		if len(fields) < 4 {
			continue
		}
		class := fields[1]
		if !strings.Contains(class, "VGA") && !strings.Contains(class, "3D") && !strings.Contains(class, "Display") {
			continue
		}
		name := strings.TrimSpace(fields[2] + " " + fields[3])
		if name != "" {
			gpus = append(gpus, name)
		}
	}
	return gpus
}

// splitQuoted splits an `lspci -mm` record into its fields. Quoted fields may
// contain spaces; the quotes are removed.
func splitQuoted(line string) []string {
	var fields []string
	var cur strings.Builder
	inQuote, inField := false, false
	for _, r := range line {
		switch {
		case r == '"':
			inQuote = !inQuote
			inField = true
		case r == ' ' && !inQuote:
			if inField {
				fields = append(fields, cur.String())
				cur.Reset()
				inField = false
			}
		default:
			cur.WriteRune(r)
			inField = true
		}
	}
	if inField {
		fields = append(fields, cur.String())
	}
	return fields
}

// parseSystemProfilerGPUs reads `system_profiler SPDisplaysDataType` output.
// Each "Chipset Model" starts a GPU; a following "VRAM" line annotates it as
// "Name (Size VRAM)".
func parseSystemProfilerGPUs(out []byte) []string {
	var gpus []string
	annotated := false
	sc := bufio.NewScanner(bytes.NewReader(out))
	for sc.Scan() {
		key, value, ok := strings.Cut(strings.TrimSpace(sc.Text()), ": ")
		if !ok {
			continue
		}
		switch {
		case key == "Chipset Model":
			gpus = append(gpus, strings.TrimSpace(value))
			annotated = false
		case strings.HasPrefix(key, "VRAM") && len(gpus) > 0 && !annotated:
			last := len(gpus) - 1
			gpus[last] = fmt.Sprintf("%s (%s VRAM)", gpus[last], strings.TrimSpace(value))
			annotated = true
		}
	}
	return gpus
}

// parseSystemProfilerResolutions returns "WxH" for each "Resolution:" entry.
func parseSystemProfilerResolutions(out []byte) []string {
	var res []string
	sc := bufio.NewScanner(bytes.NewReader(out))
	for sc.Scan() {
		key, value, ok := strings.Cut(strings.TrimSpace(sc.Text()), ": ")
		if !ok || key != "Resolution" {
			continue
		}
		if m := profilerResolution.FindStringSubmatch(value); m != nil {
			res = append(res, m[1]+"x"+m[2])
		}
	}
	return res
}

// parseCIMNames decodes the Name property from ConvertTo-Json output, which
// is a single object for one instance and an array for several. Generic
// fallback adapters are dropped.
func parseCIMNames(out []byte) ([]string, error) {
	type named struct{ Name string }

	out = bytes.TrimSpace(out)
	var items []named
	if len(out) > 0 && out[0] == '[' {
		if err := json.Unmarshal(out, &items); err != nil {
			return nil, err
		}
	} else {
		var one named
		if err := json.Unmarshal(out, &one); err != nil {
			return nil, err
		}
		items = append(items, one)
	}

	var names []string
	for _, it := range items {
		name := strings.TrimSpace(it.Name)
		if name == "" || strings.Contains(strings.ToLower(name), "microsoft basic") {
			continue
		}
		names = append(names, name)
	}
	return names, nil
}
