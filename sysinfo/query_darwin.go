//go:build darwin

package sysinfo

import "context"

// displayProfile is shared by the GPU and display queries; system_profiler
// takes about a second per run.
var displayProfile = &sharedOutput{
	run: func(ctx context.Context) ([]byte, error) {
		return runCommand(ctx, "system_profiler", "SPDisplaysDataType")
	},
}

func queryGPUs(ctx context.Context) ([]string, error) {
	out, err := displayProfile.get(ctx)
	if err != nil {
		return nil, err
	}
	return parseSystemProfilerGPUs(out), nil
}

func queryResolutions(ctx context.Context) ([]string, error) {
	out, err := displayProfile.get(ctx)
	if err != nil {
		return nil, err
	}
	return parseSystemProfilerResolutions(out), nil
}
