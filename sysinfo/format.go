// Package sysinfo - Formatting utilities
package sysinfo

import (
	"fmt"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// FormatUptime converts a duration into a human-readable uptime string.
//
// Parameters:
//   - uptime: The duration to format
//
// Returns:
//   - A string listing the non-zero days, hours, minutes and seconds
//
// Example: FormatUptime(26*time.Hour + 5*time.Second) returns "1 day, 2 hours, 5 seconds"
func FormatUptime(uptime time.Duration) string {
	if uptime < 0 {
		uptime = 0
	}
	total := int64(uptime / time.Second)

	units := []struct {
		seconds int64
		name    string
	}{
		{24 * 60 * 60, "day"},
		{60 * 60, "hour"},
		{60, "min"},
		{1, "second"},
	}

	var parts []string
	for _, u := range units {
		n := total / u.seconds
		total -= n * u.seconds
		if n > 0 {
			parts = append(parts, fmt.Sprintf("%d %s%s", n, u.name, plural(n)))
		}
	}
	if len(parts) == 0 {
		return "0 seconds"
	}
	return strings.Join(parts, ", ")
}

// plural returns "s" if count is not 1, empty string otherwise.
func plural(count int64) string {
	if count != 1 {
		return "s"
	}
	return ""
}

// FormatMemory renders used and total byte counts in whole mebibytes.
//
// Example: FormatMemory(512<<20, 2048<<20) returns "512MiB / 2048MiB"
func FormatMemory(used, total uint64) string {
	const mib = 1024 * 1024
	return fmt.Sprintf("%dMiB / %dMiB", used/mib, total/mib)
}

// platformNames maps platform identifiers whose title-cased form reads badly.
var platformNames = map[string]string{
	"darwin":   "macOS",
	"opensuse": "openSUSE",
	"freebsd":  "FreeBSD",
	"openbsd":  "OpenBSD",
	"netbsd":   "NetBSD",
}

// describeOS builds the OS line. A non-empty product name reported by the
// platform wins; otherwise the platform, version and architecture are
// combined, e.g. "Ubuntu 22.04 x86_64".
func describeOS(platform, version, arch, product string) string {
	if product = strings.TrimSpace(product); product != "" {
		return product
	}
	if platform = strings.TrimSpace(platform); platform == "" {
		return ""
	}
	name, ok := platformNames[strings.ToLower(platform)]
	if !ok {
		name = cases.Title(language.English).String(platform)
	}

	parts := []string{name}
	if v := strings.TrimSpace(version); v != "" {
		parts = append(parts, v)
	}
	if a := strings.TrimSpace(arch); a != "" {
		parts = append(parts, a)
	}
	return strings.Join(parts, " ")
}
