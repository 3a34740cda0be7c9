package config

import (
	"testing"

	"github.com/tintkit/tint/pkg/tint"
)

func newLuaParser(t *testing.T) *LuaParser {
	t.Helper()
	parser, err := NewLuaParser()
	if err != nil {
		t.Fatalf("NewLuaParser() failed: %v", err)
	}
	t.Cleanup(func() { parser.Close() })
	return parser
}

// TestLuaParserDefaults tests that an empty chunk yields the default theme.
func TestLuaParserDefaults(t *testing.T) {
	parser := newLuaParser(t)

	theme, err := parser.Parse([]byte(""))
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}

	want := DefaultTheme()
	if theme.ActiveColor.Expr != want.ActiveColor.Expr {
		t.Errorf("Expected active color %q, got %q", want.ActiveColor.Expr, theme.ActiveColor.Expr)
	}
	if theme.Width != want.Width {
		t.Errorf("Expected width %d, got %d", want.Width, theme.Width)
	}
	if theme.Offset != want.Offset {
		t.Errorf("Expected offset %d, got %d", want.Offset, theme.Offset)
	}
	if theme.Radius != want.Radius {
		t.Errorf("Expected radius %g, got %g", want.Radius, theme.Radius)
	}
}

// TestLuaParserFullTheme tests extraction of every theme field.
func TestLuaParserFullTheme(t *testing.T) {
	parser := newLuaParser(t)

	theme, err := parser.Parse([]byte(`tint.theme = {
    active_color = "accent",
    inactive_color = "darken(#89b4fa, 30%)",
    width = 4,
    offset = -2,
    radius = 12.5,
}`))
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}

	if theme.ActiveColor.Expr != "accent" {
		t.Errorf("Expected active color 'accent', got %q", theme.ActiveColor.Expr)
	}
	if theme.InactiveColor.Expr != "darken(#89b4fa, 30%)" {
		t.Errorf("Expected inactive color 'darken(#89b4fa, 30%%)', got %q", theme.InactiveColor.Expr)
	}
	if theme.Width != 4 {
		t.Errorf("Expected width 4, got %d", theme.Width)
	}
	if theme.Offset != -2 {
		t.Errorf("Expected offset -2, got %d", theme.Offset)
	}
	if theme.Radius != 12.5 {
		t.Errorf("Expected radius 12.5, got %g", theme.Radius)
	}
}

// TestLuaParserMappingColor tests the declarative colors/direction table form.
func TestLuaParserMappingColor(t *testing.T) {
	parser := newLuaParser(t)

	theme, err := parser.Parse([]byte(`tint.theme = {
    active_color = {
        colors = { "#ff0000", "#00ff00", "blue" },
        direction = "to bottom",
    },
}`))
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}

	m := theme.ActiveColor.Mapping
	if m == nil {
		t.Fatal("Expected a mapping color, got an expression")
	}
	if len(m.Colors) != 3 {
		t.Fatalf("Expected 3 colors, got %d: %v", len(m.Colors), m.Colors)
	}
	if m.Colors[2] != "blue" {
		t.Errorf("Expected colors[2] 'blue', got %q", m.Colors[2])
	}
	if m.Direction.Token != "to bottom" {
		t.Errorf("Expected direction 'to bottom', got %q", m.Direction.Token)
	}
}

// TestLuaParserCoordinateDirection tests the explicit start/end direction form.
func TestLuaParserCoordinateDirection(t *testing.T) {
	parser := newLuaParser(t)

	theme, err := parser.Parse([]byte(`tint.theme = {
    inactive_color = {
        colors = { "#000000", "#ffffff" },
        direction = { start = { 0, 0 }, ["end"] = { 1, 1 } },
    },
}`))
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}

	m := theme.InactiveColor.Mapping
	if m == nil {
		t.Fatal("Expected a mapping color, got an expression")
	}
	coords := m.Direction.Coordinates
	if coords == nil {
		t.Fatal("Expected coordinate direction, got token")
	}
	want := tint.Coordinates{Start: [2]float64{0, 0}, End: [2]float64{1, 1}}
	if *coords != want {
		t.Errorf("Expected coordinates %v, got %v", want, *coords)
	}
}

// TestLuaParserComputedTheme tests that themes may use Lua to build values.
func TestLuaParserComputedTheme(t *testing.T) {
	parser := newLuaParser(t)

	theme, err := parser.Parse([]byte(`local base = "#89b4fa"
local amount = 15
tint.theme = {
    active_color = base,
    inactive_color = "darken(" .. base .. ", " .. amount .. "%)",
    width = 2 * 3,
}`))
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}

	if theme.ActiveColor.Expr != "#89b4fa" {
		t.Errorf("Expected active color '#89b4fa', got %q", theme.ActiveColor.Expr)
	}
	if theme.InactiveColor.Expr != "darken(#89b4fa, 15%)" {
		t.Errorf("Expected inactive color 'darken(#89b4fa, 15%%)', got %q", theme.InactiveColor.Expr)
	}
	if theme.Width != 6 {
		t.Errorf("Expected width 6, got %d", theme.Width)
	}
}

// TestLuaParserNumericCoercion tests int/float conversion of numeric fields.
func TestLuaParserNumericCoercion(t *testing.T) {
	parser := newLuaParser(t)

	theme, err := parser.Parse([]byte(`tint.theme = {
    width = 8.9,
    radius = 12,
}`))
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}

	if theme.Width != 8 {
		t.Errorf("Expected width truncated to 8, got %d", theme.Width)
	}
	if theme.Radius != 12.0 {
		t.Errorf("Expected radius 12.0, got %g", theme.Radius)
	}
}

// TestLuaParserErrors tests that malformed themes report errors.
func TestLuaParserErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"unclosed brace", `tint.theme = {`},
		{"runtime error", `error("boom")`},
		{"color wrong type", `tint.theme = { active_color = 42 }`},
		{"colors not a table", `tint.theme = { active_color = { colors = "red" } }`},
		{"colors entry wrong type", `tint.theme = { active_color = { colors = { 1, 2 } } }`},
		{"direction wrong type", `tint.theme = { active_color = { colors = { "#fff" }, direction = 5 } }`},
		{"point wrong shape", `tint.theme = { active_color = { colors = { "#fff" }, direction = { start = { 0 }, ["end"] = { 1, 1 } } } }`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parser := newLuaParser(t)
			if _, err := parser.Parse([]byte(tt.content)); err == nil {
				t.Error("Expected parse error, got nil")
			}
		})
	}
}

// TestLuaParserReplacedGlobal tests themes that overwrite tint wholesale.
func TestLuaParserReplacedGlobal(t *testing.T) {
	parser := newLuaParser(t)

	// Replacing the whole table instead of assigning tint.theme still works.
	theme, err := parser.Parse([]byte(`tint = { theme = { width = 3 } }`))
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}
	if theme.Width != 3 {
		t.Errorf("Expected width 3, got %d", theme.Width)
	}

	// Clobbering tint with a non-table is an error.
	if _, err := parser.Parse([]byte(`tint = "nope"`)); err == nil {
		t.Error("Expected error for non-table tint global, got nil")
	}
}
