package tint

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// defaultValueExpr is the expression a zero Value parses as.
const defaultValueExpr = "#000000"

// Direction is a gradient direction as it appears in configuration:
// either a direction token ("to right", "45deg") or explicit
// coordinates. At most one of the two is set.
type Direction struct {
	// Token is the textual direction, resolved through
	// ResolveDirection. Empty means unset.
	Token string

	// Coordinates are explicit start/end points, bypassing resolution.
	Coordinates *Coordinates
}

// DirectionToken creates a textual Direction.
func DirectionToken(token string) Direction {
	return Direction{Token: token}
}

// resolve converts the direction to coordinates. An unset direction
// falls back to the default.
func (d Direction) resolve() (Coordinates, error) {
	if d.Coordinates != nil {
		return *d.Coordinates, nil
	}
	token := d.Token
	if token == "" {
		token = defaultDirection
	}
	return ResolveDirection(token)
}

// UnmarshalYAML decodes either a scalar direction token or a mapping
// with start/end coordinates.
func (d *Direction) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		return node.Decode(&d.Token)
	case yaml.MappingNode:
		d.Coordinates = new(Coordinates)
		return node.Decode(d.Coordinates)
	default:
		return fmt.Errorf("line %d: direction must be a string or a start/end mapping", node.Line)
	}
}

// UnmarshalJSON decodes either a string direction token or an object
// with start/end coordinates.
func (d *Direction) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		return json.Unmarshal(data, &d.Token)
	}
	d.Coordinates = new(Coordinates)
	return json.Unmarshal(data, d.Coordinates)
}

// Mapping is the declarative gradient form used in configuration files:
// a list of color tokens plus a direction.
type Mapping struct {
	// Colors are single color tokens, not full expressions.
	Colors []string `yaml:"colors" json:"colors"`

	// Direction is the gradient direction; unset means the default.
	Direction Direction `yaml:"direction" json:"direction"`
}

// NewMapping creates a Mapping from color tokens and a direction.
func NewMapping(colors []string, direction Direction) Mapping {
	return Mapping{Colors: colors, Direction: direction}
}

// FromMapping builds a Color from a declarative mapping. Zero colors
// degenerate to the default solid; one color is a Solid of that token.
// With more colors, stops keep their declared slots (stop i of n sits at
// i/(n-1)) and tokens that fail to parse leave their slot empty; when
// every token fails the mapping has no valid colors. Accent tokens
// resolve as inactive.
func FromMapping(m Mapping) (Color, error) {
	return FromMappingActive(m, false)
}

// FromMappingActive builds a Color from a declarative mapping, resolving
// accent tokens in their active state when active is true.
func FromMappingActive(m Mapping, active bool) (Color, error) {
	switch len(m.Colors) {
	case 0:
		return NewSolid(defaultRGBA()), nil
	case 1:
		c, err := parseToken(m.Colors[0], active)
		if err != nil {
			return nil, err
		}
		return NewSolid(c), nil
	}

	step := 1.0 / float64(len(m.Colors)-1)
	stops := make([]Stop, 0, len(m.Colors))
	for i, tok := range m.Colors {
		c, err := parseToken(tok, active)
		if err != nil {
			continue
		}
		stops = append(stops, Stop{Position: float64(i) * step, Color: c})
	}

	switch len(stops) {
	case 0:
		return nil, newParseError(KindNoValidColors, fmt.Sprint(m.Colors))
	case 1:
		return NewSolid(stops[0].Color), nil
	}

	coords, err := m.Direction.resolve()
	if err != nil {
		return nil, err
	}
	return NewGradient(stops, coords), nil
}

// Value is a color definition as it appears in configuration: either a
// full expression string or a declarative Mapping. The zero Value is the
// default color expression "#000000".
type Value struct {
	// Expr is the expression form, parsed through Parse.
	Expr string

	// Mapping is the declarative form; when set it takes precedence
	// over Expr.
	Mapping *Mapping
}

// ValueExpr creates an expression-form Value.
func ValueExpr(expr string) Value {
	return Value{Expr: expr}
}

// ValueMapping creates a mapping-form Value.
func ValueMapping(m Mapping) Value {
	return Value{Mapping: &m}
}

// FromValue builds a Color from a configuration value, with accent
// tokens resolved as inactive.
func FromValue(v Value) (Color, error) {
	return FromValueActive(v, false)
}

// FromValueActive builds a Color from a configuration value, resolving
// accent tokens in their active state when active is true.
func FromValueActive(v Value, active bool) (Color, error) {
	if v.Mapping != nil {
		return FromMappingActive(*v.Mapping, active)
	}
	expr := v.Expr
	if expr == "" {
		expr = defaultValueExpr
	}
	return ParseActive(expr, active)
}

// UnmarshalYAML decodes either a scalar expression or a colors/direction
// mapping.
func (v *Value) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		return node.Decode(&v.Expr)
	case yaml.MappingNode:
		v.Mapping = new(Mapping)
		return node.Decode(v.Mapping)
	default:
		return fmt.Errorf("line %d: color must be a string or a colors/direction mapping", node.Line)
	}
}

// UnmarshalJSON decodes either a string expression or a colors/direction
// object.
func (v *Value) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		return json.Unmarshal(data, &v.Expr)
	}
	v.Mapping = new(Mapping)
	return json.Unmarshal(data, v.Mapping)
}
