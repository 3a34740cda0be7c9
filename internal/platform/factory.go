package platform

import (
	"fmt"
	"runtime"
)

// New creates the accent color Source for the current OS.
// Returns an error if the current platform is not supported.
func New() (Source, error) {
	return NewForOS(runtime.GOOS)
}

// NewForOS creates the accent color Source for the specified OS.
// Supported values for goos: "linux", "windows", "darwin". A source
// for an OS other than the one this binary was built for is returned
// as-is but fails on use.
func NewForOS(goos string) (Source, error) {
	switch goos {
	case "linux":
		return NewLinuxSource(), nil
	case "windows":
		return NewWindowsSource(), nil
	case "darwin":
		return NewDarwinSource(), nil
	default:
		return nil, fmt.Errorf("unsupported platform: %s", goos)
	}
}
