//go:build !linux && !darwin && !windows

package sysinfo

import "context"

func queryGPUs(context.Context) ([]string, error) { return nil, errUnsupported }

func queryResolutions(context.Context) ([]string, error) { return nil, errUnsupported }
