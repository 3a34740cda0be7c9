//go:build linux

package platform

import (
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/jezek/xgb"
	"github.com/jezek/xgb/xproto"
)

// xrdbAccentKeys are the X resource names probed for an accent color,
// most specific first. The leading "*" of a resource name is stripped
// before matching.
var xrdbAccentKeys = []string{
	"accentColor",
	"selectionBackground",
	"highlightColor",
	"color4",
}

// gnomeAccents maps the GNOME accent-color setting to the libadwaita
// palette values.
var gnomeAccents = map[string][3]uint8{
	"blue":   {0x35, 0x84, 0xe4},
	"teal":   {0x21, 0x90, 0xa4},
	"green":  {0x3a, 0x94, 0x4a},
	"yellow": {0xc8, 0x88, 0x00},
	"orange": {0xed, 0x5b, 0x00},
	"red":    {0xe6, 0x2d, 0x42},
	"pink":   {0xd5, 0x61, 0x99},
	"purple": {0x91, 0x41, 0xac},
	"slate":  {0x6f, 0x83, 0x96},
}

var errNoAccent = errors.New("accent color not found")

// linuxSource reads the accent color from the desktop environment.
// It uses multiple detection methods for better compatibility:
//  1. The RESOURCE_MANAGER property on the X root window (xrdb)
//  2. The GNOME accent-color setting via gsettings
//  3. The KDE AccentColor entry in kdeglobals
type linuxSource struct{}

// NewLinuxSource creates the Linux accent color source.
func NewLinuxSource() Source {
	return linuxSource{}
}

func (linuxSource) Name() string {
	return "linux"
}

func (linuxSource) Colorization() (uint8, uint8, uint8, error) {
	if r, g, b, ok := xrdbAccent(); ok {
		return r, g, b, nil
	}
	if r, g, b, ok := gnomeAccent(); ok {
		return r, g, b, nil
	}
	if r, g, b, ok := kdeAccent(); ok {
		return r, g, b, nil
	}
	return 0, 0, 0, errNoAccent
}

// xrdbAccent reads the X resource database from the root window and
// scans it for a known accent resource.
func xrdbAccent() (uint8, uint8, uint8, bool) {
	conn, err := xgb.NewConn()
	if err != nil {
		return 0, 0, 0, false
	}
	defer conn.Close()

	setup := xproto.Setup(conn)
	if len(setup.Roots) == 0 {
		return 0, 0, 0, false
	}
	root := setup.Roots[0].Root

	// RESOURCE_MANAGER holds the whole xrdb database as one STRING.
	reply, err := xproto.GetProperty(conn, false, root, xproto.AtomResourceManager,
		xproto.AtomString, 0, 1<<20).Reply()
	if err != nil || reply == nil || len(reply.Value) == 0 {
		return 0, 0, 0, false
	}

	resources := parseXResources(string(reply.Value))
	for _, key := range xrdbAccentKeys {
		if value, ok := resources[key]; ok {
			if r, g, b, ok := parseHexRGB(value); ok {
				return r, g, b, true
			}
		}
	}
	return 0, 0, 0, false
}

// parseXResources splits an xrdb dump into name/value pairs. Resource
// names are stored without their leading "*" or "." wildcard.
func parseXResources(db string) map[string]string {
	resources := make(map[string]string)
	for _, line := range strings.Split(db, "\n") {
		name, value, ok := strings.Cut(line, ":")
		if !ok {
			continue
		}
		name = strings.TrimLeft(strings.TrimSpace(name), "*.")
		value = strings.TrimSpace(value)
		if name == "" || value == "" {
			continue
		}
		resources[name] = value
	}
	return resources
}

// parseHexRGB parses "#rrggbb" and "#rgb" color values.
func parseHexRGB(s string) (uint8, uint8, uint8, bool) {
	if !strings.HasPrefix(s, "#") {
		return 0, 0, 0, false
	}
	digits := s[1:]
	switch len(digits) {
	case 6:
		v, err := strconv.ParseUint(digits, 16, 32)
		if err != nil {
			return 0, 0, 0, false
		}
		return uint8(v >> 16), uint8(v >> 8), uint8(v), true
	case 3:
		v, err := strconv.ParseUint(digits, 16, 16)
		if err != nil {
			return 0, 0, 0, false
		}
		r := uint8(v >> 8 & 0xf)
		g := uint8(v >> 4 & 0xf)
		b := uint8(v & 0xf)
		return r<<4 | r, g<<4 | g, b<<4 | b, true
	default:
		return 0, 0, 0, false
	}
}

// gnomeAccent queries the GNOME accent-color setting.
func gnomeAccent() (uint8, uint8, uint8, bool) {
	out, err := exec.Command("gsettings", "get", "org.gnome.desktop.interface", "accent-color").Output()
	if err != nil {
		return 0, 0, 0, false
	}
	name := strings.Trim(strings.TrimSpace(string(out)), "'")
	rgb, ok := gnomeAccents[name]
	if !ok {
		return 0, 0, 0, false
	}
	return rgb[0], rgb[1], rgb[2], true
}

// kdeAccent reads the AccentColor entry from the KDE kdeglobals file.
// The value is stored as decimal "r,g,b".
func kdeAccent() (uint8, uint8, uint8, bool) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return 0, 0, 0, false
	}
	data, err := os.ReadFile(filepath.Join(configDir, "kdeglobals"))
	if err != nil {
		return 0, 0, 0, false
	}

	inGeneral := false
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if strings.HasPrefix(line, "[") {
			inGeneral = line == "[General]"
			continue
		}
		if !inGeneral {
			continue
		}
		value, ok := strings.CutPrefix(line, "AccentColor=")
		if !ok {
			continue
		}
		parts := strings.Split(value, ",")
		if len(parts) != 3 {
			return 0, 0, 0, false
		}
		var rgb [3]uint8
		for i, part := range parts {
			n, err := strconv.ParseUint(strings.TrimSpace(part), 10, 8)
			if err != nil {
				return 0, 0, 0, false
			}
			rgb[i] = uint8(n)
		}
		return rgb[0], rgb[1], rgb[2], true
	}
	return 0, 0, 0, false
}
