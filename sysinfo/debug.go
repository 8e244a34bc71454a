package sysinfo

import (
	"errors"
	"fmt"
	"os"
)

// DebugEnv enables debug tracing of individual queries on stderr.
const DebugEnv = "SYSFETCH_DEBUG"

var (
	errNoData      = errors.New("no data")
	errUnsupported = errors.New("not supported on this platform")
)

func envLookup(key string) string { return os.Getenv(key) }

// debugf traces query timings and failures. Failures are expected on many
// hosts, so they are never reported outside debug mode.
func debugf(format string, args ...any) {
	if os.Getenv(DebugEnv) == "" {
		return
	}
	fmt.Fprintf(os.Stderr, "sysfetch debug: "+format+"\n", args...)
}
