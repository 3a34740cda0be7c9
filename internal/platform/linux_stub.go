//go:build !linux

package platform

// NewLinuxSource is a stub for non-Linux builds. The returned source
// fails on use.
func NewLinuxSource() Source {
	return unavailableSource{name: "linux"}
}
