// Package sysinfo gathers the raw host facts shown in the system summary:
// host and OS identity, kernel, uptime, shell, displays, CPUs, GPUs and
// memory.
//
// Every fact is best effort. A query that fails or returns nothing leaves a
// fixed placeholder in its place, so the number of facts never depends on
// what the host could report.
package sysinfo

import (
	"context"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/host"
	"github.com/shirou/gopsutil/v4/mem"
)

// Placeholders shown when a fact cannot be obtained.
const (
	PlaceholderHostName   = "Unable to get hostname"
	PlaceholderHost       = "Unable to get host"
	PlaceholderOS         = "Unable to get OS"
	PlaceholderKernel     = "Unable to get kernel"
	PlaceholderUptime     = "Unable to get uptime"
	PlaceholderShell      = "Unable to get shell"
	PlaceholderResolution = "Unable to get display!"
	PlaceholderWM         = "Unable to get WM"
	PlaceholderTerminal   = "Unable to get terminal"
	PlaceholderCPU        = "Unable to get CPU!"
	PlaceholderGPU        = "Unable to get GPU"
	PlaceholderMemory     = "Unable to get memory"
)

// DefaultTimeout bounds each individual query.
const DefaultTimeout = 2 * time.Second

// SystemInfo holds the collected facts. After Collect returns, every scalar
// field is non-empty and every list has at least one entry.
type SystemInfo struct {
	// HostName is the machine's network name
	HostName string

	// Host is the distribution or platform identifier (e.g. "ubuntu")
	Host string

	// OS is the human-readable operating system name and version
	OS string

	// Kernel is the kernel version
	Kernel string

	// Uptime is the formatted time since boot
	Uptime string

	// Shell is the user's login shell
	Shell string

	// Resolutions lists connected display resolutions, e.g. "2560x1440"
	Resolutions []string

	// WM is the window manager or terminal program reported by the session
	WM string

	// Terminal is the terminal emulator
	Terminal string

	// CPUs lists distinct processor model names
	CPUs []string

	// GPUs lists graphics adapters
	GPUs []string

	// Memory shows used/total RAM
	Memory string
}

// Collector runs the fact queries. Each query is a field so tests can
// replace it; NewCollector fills them with the real implementations.
// Queries are independent: one failing only costs the facts it feeds.
type Collector struct {
	HostName      func(ctx context.Context) (string, error)
	Platform      func(ctx context.Context) (platform, family, version string, err error)
	KernelVersion func(ctx context.Context) (string, error)
	KernelArch    func(ctx context.Context) (string, error)
	Uptime        func(ctx context.Context) (uint64, error)

	CPUInfo     func(ctx context.Context) ([]cpu.InfoStat, error)
	Memory      func(ctx context.Context) (*mem.VirtualMemoryStat, error)
	GPUs        func(ctx context.Context) ([]string, error)
	Resolutions func(ctx context.Context) ([]string, error)
	ProductName func(ctx context.Context) (string, error)
	Getenv      func(key string) string

	// Timeout bounds each query individually. Zero means DefaultTimeout.
	Timeout time.Duration
}

// NewCollector returns a Collector wired to the host.
func NewCollector() *Collector {
	return &Collector{
		HostName:      queryHostName,
		Platform:      host.PlatformInformationWithContext,
		KernelVersion: host.KernelVersionWithContext,
		KernelArch:    queryKernelArch,
		Uptime:        host.UptimeWithContext,

		CPUInfo:     cpu.InfoWithContext,
		Memory:      mem.VirtualMemoryWithContext,
		GPUs:        queryGPUs,
		Resolutions: queryResolutions,
		ProductName: queryProductName,
		Getenv:      envLookup,
		Timeout:     DefaultTimeout,
	}
}

// Collect runs all queries concurrently and returns the populated facts.
// It never fails; failed queries are replaced by placeholders.
func (c *Collector) Collect(ctx context.Context) *SystemInfo {
	info := &SystemInfo{}

	var wg sync.WaitGroup
	var mu sync.Mutex

	// run executes fn under its own timeout and applies the result under mu.
	run := func(name string, fn func(ctx context.Context) (func(*SystemInfo), error)) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			qctx, cancel := context.WithTimeout(ctx, c.timeout())
			defer cancel()

			start := time.Now()
			apply, err := fn(qctx)
			if err != nil {
				debugf("%s query failed after %s: %v", name, time.Since(start).Round(time.Millisecond), err)
				return
			}
			debugf("%s query took %s", name, time.Since(start).Round(time.Millisecond))
			mu.Lock()
			apply(info)
			mu.Unlock()
		}()
	}

	// The OS line combines several queries, so its parts are gathered here
	// and described once every query has finished.
	var osParts struct{ platform, version, arch, product string }

	if c.HostName != nil {
		run("hostname", func(ctx context.Context) (func(*SystemInfo), error) {
			name, err := c.HostName(ctx)
			if err != nil {
				return nil, err
			}
			return func(si *SystemInfo) { si.HostName = strings.TrimSpace(name) }, nil
		})
	}

	if c.Platform != nil {
		run("platform", func(ctx context.Context) (func(*SystemInfo), error) {
			platform, _, version, err := c.Platform(ctx)
			if err != nil {
				return nil, err
			}
			return func(si *SystemInfo) {
				si.Host = strings.TrimSpace(platform)
				osParts.platform = platform
				osParts.version = version
			}, nil
		})
	}

	if c.KernelArch != nil {
		run("arch", func(ctx context.Context) (func(*SystemInfo), error) {
			arch, err := c.KernelArch(ctx)
			if err != nil {
				return nil, err
			}
			return func(*SystemInfo) { osParts.arch = arch }, nil
		})
	}

	if c.ProductName != nil {
		run("product", func(ctx context.Context) (func(*SystemInfo), error) {
			product, err := c.ProductName(ctx)
			if err != nil {
				return nil, err
			}
			return func(*SystemInfo) { osParts.product = product }, nil
		})
	}

	if c.KernelVersion != nil {
		run("kernel", func(ctx context.Context) (func(*SystemInfo), error) {
			kernel, err := c.KernelVersion(ctx)
			if err != nil {
				return nil, err
			}
			return func(si *SystemInfo) { si.Kernel = strings.TrimSpace(kernel) }, nil
		})
	}

	if c.Uptime != nil {
		run("uptime", func(ctx context.Context) (func(*SystemInfo), error) {
			secs, err := c.Uptime(ctx)
			if err != nil {
				return nil, err
			}
			if secs == 0 {
				return nil, errNoData
			}
			return func(si *SystemInfo) { si.Uptime = FormatUptime(time.Duration(secs) * time.Second) }, nil
		})
	}

	if c.CPUInfo != nil {
		run("cpu", func(ctx context.Context) (func(*SystemInfo), error) {
			stats, err := c.CPUInfo(ctx)
			if err != nil {
				return nil, err
			}
			names := cpuModels(stats)
			return func(si *SystemInfo) { si.CPUs = names }, nil
		})
	}

	if c.Memory != nil {
		run("memory", func(ctx context.Context) (func(*SystemInfo), error) {
			vm, err := c.Memory(ctx)
			if err != nil {
				return nil, err
			}
			if vm.Total == 0 {
				return nil, errNoData
			}
			return func(si *SystemInfo) { si.Memory = FormatMemory(vm.Used, vm.Total) }, nil
		})
	}

	if c.GPUs != nil {
		run("gpu", func(ctx context.Context) (func(*SystemInfo), error) {
			gpus, err := c.GPUs(ctx)
			if err != nil {
				return nil, err
			}
			return func(si *SystemInfo) { si.GPUs = gpus }, nil
		})
	}

	if c.Resolutions != nil {
		run("display", func(ctx context.Context) (func(*SystemInfo), error) {
			res, err := c.Resolutions(ctx)
			if err != nil {
				return nil, err
			}
			return func(si *SystemInfo) { si.Resolutions = res }, nil
		})
	}

	getenv := c.Getenv
	if getenv == nil {
		getenv = envLookup
	}
	shell, wm, term := shellName(getenv), getenv("TERM_PROGRAM"), terminalName(getenv)

	wg.Wait()

	info.OS = describeOS(osParts.platform, osParts.version, osParts.arch, osParts.product)
	info.Shell = shell
	info.WM = wm
	info.Terminal = term
	fillPlaceholders(info)
	return info
}

func queryHostName(context.Context) (string, error) {
	return os.Hostname()
}

func queryKernelArch(context.Context) (string, error) {
	return host.KernelArch()
}

func (c *Collector) timeout() time.Duration {
	if c.Timeout <= 0 {
		return DefaultTimeout
	}
	return c.Timeout
}

// fillPlaceholders replaces every missing fact with its placeholder.
func fillPlaceholders(info *SystemInfo) {
	scalars := []struct {
		field       *string
		placeholder string
	}{
		{&info.HostName, PlaceholderHostName},
		{&info.Host, PlaceholderHost},
		{&info.OS, PlaceholderOS},
		{&info.Kernel, PlaceholderKernel},
		{&info.Uptime, PlaceholderUptime},
		{&info.Shell, PlaceholderShell},
		{&info.WM, PlaceholderWM},
		{&info.Terminal, PlaceholderTerminal},
		{&info.Memory, PlaceholderMemory},
	}
	for _, s := range scalars {
		if strings.TrimSpace(*s.field) == "" {
			*s.field = s.placeholder
		}
	}

	info.Resolutions = nonEmpty(info.Resolutions, PlaceholderResolution)
	info.CPUs = nonEmpty(info.CPUs, PlaceholderCPU)
	info.GPUs = nonEmpty(info.GPUs, PlaceholderGPU)
}

// nonEmpty drops blank entries and returns [placeholder] if nothing is left.
func nonEmpty(values []string, placeholder string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	if len(out) == 0 {
		return []string{placeholder}
	}
	return out
}

// cpuModels returns the distinct model names in first-seen order.
func cpuModels(stats []cpu.InfoStat) []string {
	seen := make(map[string]bool, len(stats))
	var names []string
	for _, s := range stats {
		name := strings.Join(strings.Fields(s.ModelName), " ")
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true
		names = append(names, name)
	}
	return names
}

func shellName(getenv func(string) string) string {
	if shell := getenv("SHELL"); shell != "" {
		return shell
	}
	if getenv("PSModulePath") != "" {
		return "PowerShell"
	}
	return getenv("COMSPEC")
}

func terminalName(getenv func(string) string) string {
	if t := getenv("LC_TERMINAL"); t != "" {
		return t
	}
	if getenv("WT_SESSION") != "" {
		return "Windows Terminal"
	}
	return getenv("TERM")
}
