//go:build darwin

package platform

import (
	"os/exec"
	"strconv"
	"strings"
)

// macAccents maps the AppleAccentColor preference index to the system
// accent palette. The preference is absent when the user keeps the
// default, which renders as blue.
var macAccents = map[int][3]uint8{
	-1: {0x8e, 0x8e, 0x93}, // graphite
	0:  {0xff, 0x3b, 0x30}, // red
	1:  {0xff, 0x95, 0x00}, // orange
	2:  {0xff, 0xcc, 0x00}, // yellow
	3:  {0x28, 0xcd, 0x41}, // green
	4:  {0x00, 0x7a, 0xff}, // blue
	5:  {0xaf, 0x52, 0xde}, // purple
	6:  {0xff, 0x2d, 0x55}, // pink
}

var macDefaultAccent = [3]uint8{0x00, 0x7a, 0xff}

// darwinSource reads the accent color preference via defaults(1).
type darwinSource struct{}

// NewDarwinSource creates the macOS accent color source.
func NewDarwinSource() Source {
	return darwinSource{}
}

func (darwinSource) Name() string {
	return "darwin"
}

func (darwinSource) Colorization() (uint8, uint8, uint8, error) {
	out, err := exec.Command("defaults", "read", "-g", "AppleAccentColor").Output()
	if err != nil {
		// The key is absent when the accent is the default.
		return macDefaultAccent[0], macDefaultAccent[1], macDefaultAccent[2], nil
	}
	index, err := strconv.Atoi(strings.TrimSpace(string(out)))
	if err != nil {
		return macDefaultAccent[0], macDefaultAccent[1], macDefaultAccent[2], nil
	}
	rgb, ok := macAccents[index]
	if !ok {
		rgb = macDefaultAccent
	}
	return rgb[0], rgb[1], rgb[2], nil
}
