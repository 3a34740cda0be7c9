// This file implements the YAML theme parser. The YAML form carries the
// same fields as the Lua form, nested under a top-level theme key.

package config

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/tintkit/tint/pkg/tint"
)

// YAMLParser parses YAML theme files.
type YAMLParser struct{}

// NewYAMLParser creates a new YAMLParser.
func NewYAMLParser() *YAMLParser {
	return &YAMLParser{}
}

// themeDocument is the top-level YAML structure.
type themeDocument struct {
	Theme themeSection `yaml:"theme"`
}

// themeSection mirrors Theme with pointer fields so absent keys keep
// their defaults.
type themeSection struct {
	ActiveColor   *tint.Value `yaml:"active_color"`
	InactiveColor *tint.Value `yaml:"inactive_color"`
	Width         *int        `yaml:"width"`
	Offset        *int        `yaml:"offset"`
	Radius        *float64    `yaml:"radius"`
}

// Parse parses a YAML theme from content bytes. Absent fields keep
// their default values.
func (p *YAMLParser) Parse(content []byte) (*Theme, error) {
	var doc themeDocument
	if err := yaml.Unmarshal(content, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse YAML theme: %w", err)
	}

	theme := DefaultTheme()
	if doc.Theme.ActiveColor != nil {
		theme.ActiveColor = *doc.Theme.ActiveColor
	}
	if doc.Theme.InactiveColor != nil {
		theme.InactiveColor = *doc.Theme.InactiveColor
	}
	if doc.Theme.Width != nil {
		theme.Width = *doc.Theme.Width
	}
	if doc.Theme.Offset != nil {
		theme.Offset = *doc.Theme.Offset
	}
	if doc.Theme.Radius != nil {
		theme.Radius = *doc.Theme.Radius
	}

	return &theme, nil
}
