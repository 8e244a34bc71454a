package sysinfo

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
)

func TestSharedOutputRunsOnce(t *testing.T) {
	var calls atomic.Int32
	s := &sharedOutput{
		run: func(context.Context) ([]byte, error) {
			calls.Add(1)
			return []byte("Chipset Model: Apple M2\n"), nil
		},
	}

	var wg sync.WaitGroup
	outs := make([][]byte, 4)
	for i := range outs {
		wg.Add(1)
		go func() {
			defer wg.Done()
			out, err := s.get(context.Background())
			if err != nil {
				t.Errorf("get() error: %v", err)
			}
			outs[i] = out
		}()
	}
	wg.Wait()

	if n := calls.Load(); n != 1 {
		t.Fatalf("command ran %d times; want 1", n)
	}
	for i, out := range outs {
		if string(out) != "Chipset Model: Apple M2\n" {
			t.Fatalf("caller %d got %q", i, out)
		}
	}
}

func TestSharedOutputKeepsError(t *testing.T) {
	var calls int
	s := &sharedOutput{
		run: func(context.Context) ([]byte, error) {
			calls++
			return nil, errQuery
		},
	}

	for range 2 {
		if _, err := s.get(context.Background()); err != errQuery {
			t.Fatalf("get() error = %v; want %v", err, errQuery)
		}
	}
	if calls != 1 {
		t.Fatalf("command ran %d times; want 1", calls)
	}
}
