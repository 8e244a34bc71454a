//go:build linux

package sysinfo

import "context"

// queryGPUs lists display controllers via lspci.
func queryGPUs(ctx context.Context) ([]string, error) {
	out, err := runCommand(ctx, "lspci", "-mm")
	if err != nil {
		return nil, err
	}
	return parseLspci(out), nil
}

// queryResolutions lists active X outputs via xrandr. Wayland sessions
// without XWayland report nothing and fall back to the placeholder.
func queryResolutions(ctx context.Context) ([]string, error) {
	out, err := runCommand(ctx, "xrandr", "--current")
	if err != nil {
		return nil, err
	}
	return parseXrandr(out), nil
}
