// This file implements the Lua theme parser. Themes assign a table to
// the tint.theme global; the parser executes the file under resource
// limits and extracts the fields it knows about.

package config

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/arnodel/golua/lib"
	rt "github.com/arnodel/golua/runtime"

	"github.com/tintkit/tint/pkg/tint"
)

// LuaParser parses Lua theme files. It uses the Golua runtime to execute
// Lua code and extract theme values from the tint.theme table.
type LuaParser struct {
	runtime *rt.Runtime
	cleanup func()
	mu      sync.Mutex
}

// NewLuaParser creates a new LuaParser with a fresh Lua runtime.
func NewLuaParser() (*LuaParser, error) {
	return NewLuaParserWithOutput(io.Discard)
}

// NewLuaParserWithOutput creates a LuaParser with custom output for
// print and friends.
func NewLuaParserWithOutput(stdout io.Writer) (*LuaParser, error) {
	if stdout == nil {
		stdout = os.Stdout
	}

	runtime := rt.New(stdout)
	cleanup := lib.LoadAll(runtime)

	return &LuaParser{
		runtime: runtime,
		cleanup: cleanup,
	}, nil
}

// Parse parses a Lua theme from content bytes.
// It executes the Lua code and extracts theme values from tint.theme.
func (p *LuaParser) Parse(content []byte) (*Theme, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	// Initialize tint global table
	p.initTintGlobal()

	// Compile and execute the Lua theme
	closure, err := p.runtime.CompileAndLoadLuaChunk(
		"theme",
		content,
		rt.TableValue(p.runtime.GlobalEnv()),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to compile Lua theme: %w", err)
	}

	// Execute with resource limits
	ctx := rt.RuntimeContextDef{
		HardLimits: rt.RuntimeResources{
			Cpu:    10_000_000,
			Memory: 50 * 1024 * 1024, // 50 MB
		},
	}
	p.runtime.PushContext(ctx)
	defer p.runtime.PopContext()

	thread := p.runtime.MainThread()
	_, err = rt.Call1(thread, rt.FunctionValue(closure))
	if err != nil {
		return nil, fmt.Errorf("failed to execute Lua theme: %w", err)
	}

	// Extract theme values from the tint global table
	return p.extractTheme()
}

// initTintGlobal initializes the tint global table for theme parsing.
func (p *LuaParser) initTintGlobal() {
	tintTable := rt.NewTable()

	// Initialize empty theme table
	themeTable := rt.NewTable()
	tintTable.Set(rt.StringValue("theme"), rt.TableValue(themeTable))

	p.runtime.GlobalEnv().Set(rt.StringValue("tint"), rt.TableValue(tintTable))
}

// extractTheme extracts theme values from the tint global table.
func (p *LuaParser) extractTheme() (*Theme, error) {
	theme := DefaultTheme()

	// Get tint global
	tintVal := p.runtime.GlobalEnv().Get(rt.StringValue("tint"))
	if tintVal == rt.NilValue {
		return &theme, nil // Return defaults if no tint table
	}

	tintTable, ok := tintVal.TryTable()
	if !ok {
		return nil, fmt.Errorf("tint is not a table")
	}

	// Extract tint.theme table
	themeVal := tintTable.Get(rt.StringValue("theme"))
	if themeTable, ok := themeVal.TryTable(); ok {
		if err := extractThemeTable(&theme, themeTable); err != nil {
			return nil, err
		}
	}

	return &theme, nil
}

// extractThemeTable extracts theme values from the tint.theme table.
func extractThemeTable(theme *Theme, table *rt.Table) error {
	// Color settings (string expression or colors/direction table)
	val, err := getTableValue(table, "active_color")
	if err != nil {
		return err
	}
	if val != nil {
		theme.ActiveColor = *val
	}

	val, err = getTableValue(table, "inactive_color")
	if err != nil {
		return err
	}
	if val != nil {
		theme.InactiveColor = *val
	}

	// Numeric settings
	if val := getTableInt(table, "width"); val != nil {
		theme.Width = *val
	}
	if val := getTableInt(table, "offset"); val != nil {
		theme.Offset = *val
	}
	if val := getTableFloat(table, "radius"); val != nil {
		theme.Radius = *val
	}

	return nil
}

// getTableValue retrieves a color value from a Lua table. A string is an
// expression; a table is the declarative colors/direction form.
// Returns nil if the key doesn't exist.
func getTableValue(table *rt.Table, key string) (*tint.Value, error) {
	val := table.Get(rt.StringValue(key))
	if val == rt.NilValue {
		return nil, nil
	}

	if s, ok := val.TryString(); ok {
		v := tint.ValueExpr(s)
		return &v, nil
	}

	if t, ok := val.TryTable(); ok {
		m, err := extractMapping(t, key)
		if err != nil {
			return nil, err
		}
		v := tint.ValueMapping(m)
		return &v, nil
	}

	return nil, fmt.Errorf("invalid %s: expected string or table", key)
}

// extractMapping extracts a colors/direction table.
func extractMapping(table *rt.Table, key string) (tint.Mapping, error) {
	var m tint.Mapping

	colorsVal := table.Get(rt.StringValue("colors"))
	colorsTable, ok := colorsVal.TryTable()
	if !ok {
		return m, fmt.Errorf("invalid %s: colors must be a table", key)
	}
	for i := int64(1); ; i++ {
		entry := colorsTable.Get(rt.IntValue(i))
		if entry == rt.NilValue {
			break
		}
		s, ok := entry.TryString()
		if !ok {
			return m, fmt.Errorf("invalid %s: colors[%d] must be a string", key, i)
		}
		m.Colors = append(m.Colors, s)
	}

	// An absent direction keeps the default.
	if dirVal := table.Get(rt.StringValue("direction")); dirVal != rt.NilValue {
		if s, ok := dirVal.TryString(); ok {
			m.Direction = tint.DirectionToken(s)
		} else if dirTable, ok := dirVal.TryTable(); ok {
			coords, err := extractCoordinates(dirTable, key)
			if err != nil {
				return m, err
			}
			m.Direction = tint.Direction{Coordinates: &coords}
		} else {
			return m, fmt.Errorf("invalid %s: direction must be a string or table", key)
		}
	}

	return m, nil
}

// extractCoordinates extracts a direction table with start and end points.
func extractCoordinates(table *rt.Table, key string) (tint.Coordinates, error) {
	var coords tint.Coordinates

	start, err := extractPoint(table, "start", key)
	if err != nil {
		return coords, err
	}
	end, err := extractPoint(table, "end", key)
	if err != nil {
		return coords, err
	}

	coords.Start = start
	coords.End = end
	return coords, nil
}

// extractPoint extracts a two-element {x, y} table.
func extractPoint(table *rt.Table, name, key string) ([2]float64, error) {
	var point [2]float64

	val := table.Get(rt.StringValue(name))
	pointTable, ok := val.TryTable()
	if !ok {
		return point, fmt.Errorf("invalid %s: direction.%s must be a {x, y} table", key, name)
	}

	for i := int64(0); i < 2; i++ {
		n, ok := tableNumber(pointTable, i+1)
		if !ok {
			return point, fmt.Errorf("invalid %s: direction.%s[%d] must be a number", key, name, i+1)
		}
		point[i] = n
	}
	return point, nil
}

// tableNumber retrieves a numeric array entry from a Lua table.
func tableNumber(table *rt.Table, i int64) (float64, bool) {
	val := table.Get(rt.IntValue(i))
	if f, ok := val.TryFloat(); ok {
		return f, true
	}
	if n, ok := val.TryInt(); ok {
		return float64(n), true
	}
	return 0, false
}

// Close releases resources associated with the parser's Lua runtime.
func (p *LuaParser) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.cleanup != nil {
		p.cleanup()
		p.cleanup = nil
	}
	return nil
}

// getTableFloat retrieves a float64 value from a Lua table.
// Returns nil if the key doesn't exist or is not a number.
func getTableFloat(table *rt.Table, key string) *float64 {
	val := table.Get(rt.StringValue(key))
	if val == rt.NilValue {
		return nil
	}

	if n, ok := val.TryFloat(); ok {
		return &n
	}

	// Try int conversion
	if n, ok := val.TryInt(); ok {
		f := float64(n)
		return &f
	}

	return nil
}

// getTableInt retrieves an int value from a Lua table.
// Returns nil if the key doesn't exist or is not a number.
func getTableInt(table *rt.Table, key string) *int {
	val := table.Get(rt.StringValue(key))
	if val == rt.NilValue {
		return nil
	}

	if n, ok := val.TryInt(); ok {
		i := int(n)
		return &i
	}

	// Try float conversion (truncate)
	if f, ok := val.TryFloat(); ok {
		i := int(f)
		return &i
	}

	return nil
}
