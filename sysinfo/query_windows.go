//go:build windows
// +build windows

// Package sysinfo - Windows-specific implementation
package sysinfo

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/sys/windows"
	"golang.org/x/sys/windows/registry"
)

var (
	moduser32 = windows.NewLazySystemDLL("user32.dll")

	procGetSystemMetrics = moduser32.NewProc("GetSystemMetrics")
)

const currentVersionKey = `SOFTWARE\Microsoft\Windows NT\CurrentVersion`

// queryProductName retrieves the Windows product name from the registry.
//
// Returns:
//   - The product name with its display version (e.g., "Windows 11 Pro 23H2")
//   - An error if the registry key cannot be read
//
// Builds 22000 and later still report "Windows 10" in ProductName; the name
// is corrected from CurrentBuild.
func queryProductName(ctx context.Context) (string, error) {
	k, err := registry.OpenKey(registry.LOCAL_MACHINE, currentVersionKey, registry.QUERY_VALUE)
	if err != nil {
		return "", fmt.Errorf("open %s: %w", currentVersionKey, err)
	}
	defer func() { _ = k.Close() }()

	productName, _, err := k.GetStringValue("ProductName")
	if err != nil {
		return "", fmt.Errorf("read ProductName: %w", err)
	}

	if buildStr, _, berr := k.GetStringValue("CurrentBuild"); berr == nil {
		if build, cerr := strconv.Atoi(buildStr); cerr == nil && build >= 22000 {
			productName = strings.Replace(productName, "Windows 10", "Windows 11", 1)
		}
	}

	if displayVersion, _, derr := k.GetStringValue("DisplayVersion"); derr == nil && displayVersion != "" {
		return fmt.Sprintf("%s %s", productName, displayVersion), nil
	}
	return productName, nil
}

// queryResolutions retrieves the primary monitor's resolution.
//
// Uses Windows GetSystemMetrics API with SM_CXSCREEN and SM_CYSCREEN.
func queryResolutions(ctx context.Context) ([]string, error) {
	const (
		SM_CXSCREEN = 0
		SM_CYSCREEN = 1
	)

	width, _, _ := procGetSystemMetrics.Call(uintptr(SM_CXSCREEN))
	height, _, _ := procGetSystemMetrics.Call(uintptr(SM_CYSCREEN))

	if width == 0 || height == 0 {
		return nil, errNoData
	}

	return []string{fmt.Sprintf("%dx%d", width, height)}, nil
}

// queryGPUs retrieves the names of all video controllers.
//
// Tries PowerShell/CIM first, then enumerates the display adapter class in
// the registry.
func queryGPUs(ctx context.Context) ([]string, error) {
	psCmd := "Get-CimInstance Win32_VideoController | Select-Object -Property Name | ConvertTo-Json -Compress"
	out, err := runPowerShell(ctx, psCmd)
	if err == nil {
		names, perr := parseCIMNames(out)
		if perr == nil && len(names) > 0 {
			return names, nil
		}
		debugf("cim video controllers unusable: %v", perr)
	} else {
		debugf("cim video controllers failed: %v", err)
	}

	if names := gpusFromRegistry(); len(names) > 0 {
		return names, nil
	}
	return nil, errNoData
}

// gpusFromRegistry enumerates the video controller class registry keys.
func gpusFromRegistry() []string {
	classKey := `SYSTEM\CurrentControlSet\Control\Class\{4d36e968-e325-11ce-bfc1-08002be10318}`

	k, err := registry.OpenKey(registry.LOCAL_MACHINE, classKey, registry.ENUMERATE_SUB_KEYS|registry.QUERY_VALUE)
	if err != nil {
		return nil
	}
	defer func() { _ = k.Close() }()

	// Subkeys are 0000, 0001, ... one per adapter instance.
	subkeys, err := k.ReadSubKeyNames(-1)
	if err != nil {
		return nil
	}

	var names []string
	for _, subkey := range subkeys {
		subkeyPath := classKey + `\` + subkey
		for _, value := range []string{"DriverDesc", "HardwareInformation.AdapterString"} {
			gpu := registryString(registry.LOCAL_MACHINE, subkeyPath, value)
			if gpu == "" || strings.Contains(strings.ToLower(gpu), "microsoft basic") {
				continue
			}
			names = append(names, gpu)
			break
		}
	}
	return names
}

// registryString reads a string value, returning "" on any error.
func registryString(key registry.Key, path string, valueName string) string {
	k, err := registry.OpenKey(key, path, registry.QUERY_VALUE)
	if err != nil {
		return ""
	}
	defer func() { _ = k.Close() }()

	value, _, err := k.GetStringValue(valueName)
	if err != nil {
		return ""
	}

	return strings.TrimSpace(value)
}
