//go:build !windows

package sysinfo

import "context"

// queryProductName has no platform source outside Windows; the OS line is
// built from the host platform information instead.
func queryProductName(context.Context) (string, error) { return "", errUnsupported }
