package sysinfo

import (
	"context"
	"fmt"
	"os/exec"
	"sync"
)

// runCommand runs name with args and returns its stdout. The context bounds
// how long the command may run.
func runCommand(ctx context.Context, name string, args ...string) ([]byte, error) {
	out, err := exec.CommandContext(ctx, name, args...).Output()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return out, nil
}

// sharedOutput runs a command at most once and hands the same output to
// every caller. Queries that parse different facts out of one slow command
// share an instance.
type sharedOutput struct {
	run func(ctx context.Context) ([]byte, error)

	mu   sync.Mutex
	done bool
	out  []byte
	err  error
}

func (s *sharedOutput) get(ctx context.Context) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.done {
		s.out, s.err = s.run(ctx)
		s.done = true
	}
	return s.out, s.err
}
