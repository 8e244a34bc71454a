//go:build windows
// +build windows

package sysinfo

import (
	"context"
	"fmt"
	"os/exec"
	"syscall"
)

// runPowerShell runs a PowerShell command and returns raw stdout bytes. The
// command is executed with -NoProfile and the window hidden; ctx bounds its
// run time.
func runPowerShell(ctx context.Context, cmd string) ([]byte, error) {
	c := exec.CommandContext(ctx, "powershell", "-NoProfile", "-Command", cmd)
	c.SysProcAttr = &syscall.SysProcAttr{HideWindow: true}
	out, err := c.Output()
	if err != nil {
		return nil, fmt.Errorf("powershell: %w", err)
	}
	return out, nil
}
