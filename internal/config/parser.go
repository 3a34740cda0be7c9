// This file implements the unified parser that auto-detects the theme
// file format.

package config

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"regexp"
)

// Parser provides a unified interface for parsing theme files.
// It automatically detects whether a file uses the Lua or YAML format.
type Parser struct {
	luaParser  *LuaParser
	yamlParser *YAMLParser
}

// NewParser creates a new Parser that can handle both Lua and YAML themes.
func NewParser() (*Parser, error) {
	luaParser, err := NewLuaParser()
	if err != nil {
		return nil, fmt.Errorf("failed to create Lua parser: %w", err)
	}

	return &Parser{
		luaParser:  luaParser,
		yamlParser: NewYAMLParser(),
	}, nil
}

// ParseFile reads and parses a theme file, auto-detecting the format.
// Returns a Theme on success or an error if parsing fails.
func (p *Parser) ParseFile(path string) (*Theme, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read theme file %s: %w", path, err)
	}

	return p.Parse(content)
}

// Parse parses theme content, auto-detecting the format.
// It uses the presence of a "tint.theme =" assignment to detect Lua.
func (p *Parser) Parse(content []byte) (*Theme, error) {
	if isLuaTheme(content) {
		return p.luaParser.Parse(content)
	}
	return p.yamlParser.Parse(content)
}

// luaThemePattern matches "tint.theme" followed by optional whitespace
// and "=" at the start of a line. This identifies the Lua theme format
// and reduces false positives from YAML values mentioning tint.theme.
var luaThemePattern = regexp.MustCompile(`(?m)^\s*tint\.theme\s*=`)

// isLuaTheme determines if the content is a Lua theme.
func isLuaTheme(content []byte) bool {
	return luaThemePattern.Match(content)
}

// ParseFromFS reads and parses a theme file from an embedded filesystem.
// It auto-detects the format based on content.
func (p *Parser) ParseFromFS(fsys fs.FS, path string) (*Theme, error) {
	content, err := fs.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read theme from FS %s: %w", path, err)
	}

	return p.Parse(content)
}

// ParseReader parses a theme from an io.Reader.
// The format parameter must be "lua" or "yaml".
// Use this for dynamically generated or network-loaded themes.
func (p *Parser) ParseReader(r io.Reader, format string) (*Theme, error) {
	content, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read theme: %w", err)
	}

	switch format {
	case "lua":
		return p.luaParser.Parse(content)
	case "yaml":
		return p.yamlParser.Parse(content)
	default:
		return nil, fmt.Errorf("unknown format: %s (expected 'lua' or 'yaml')", format)
	}
}

// Close releases resources associated with the parser.
func (p *Parser) Close() error {
	if p.luaParser != nil {
		return p.luaParser.Close()
	}
	return nil
}
