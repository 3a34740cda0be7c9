//go:build !windows

package platform

// NewWindowsSource is a stub for non-Windows builds. The returned
// source fails on use.
func NewWindowsSource() Source {
	return unavailableSource{name: "windows"}
}
