//go:build !darwin

package platform

// NewDarwinSource is a stub for non-Darwin builds. The returned source
// fails on use.
func NewDarwinSource() Source {
	return unavailableSource{name: "darwin"}
}
