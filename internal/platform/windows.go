//go:build windows

package platform

import (
	"fmt"

	"golang.org/x/sys/windows/registry"
)

// dwmKeyPath is the registry key holding the Desktop Window Manager
// colorization settings.
const dwmKeyPath = `Software\Microsoft\Windows\DWM`

// windowsSource reads the accent color from the DWM registry key.
type windowsSource struct{}

// NewWindowsSource creates the Windows accent color source.
func NewWindowsSource() Source {
	return windowsSource{}
}

func (windowsSource) Name() string {
	return "windows"
}

// Colorization reads ColorizationColor from HKCU. The value is packed
// 0xAARRGGBB; the alpha byte is dropped.
func (windowsSource) Colorization() (uint8, uint8, uint8, error) {
	key, err := registry.OpenKey(registry.CURRENT_USER, dwmKeyPath, registry.QUERY_VALUE)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("accent color not found: %w", err)
	}
	defer key.Close()

	val, _, err := key.GetIntegerValue("ColorizationColor")
	if err != nil {
		return 0, 0, 0, fmt.Errorf("accent color not found: %w", err)
	}

	return uint8(val >> 16), uint8(val >> 8), uint8(val), nil
}
