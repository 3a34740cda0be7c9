package tint

import "strings"

// Parse parses a color expression into a Color. The expression is a
// single color token, a comma-separated gradient of tokens with an
// optional trailing direction, or either of those wrapped in
// "gradient( ... )". Accent tokens resolve as inactive; use ParseActive
// to control that.
func Parse(expr string) (Color, error) {
	return ParseActive(expr, false)
}

// ParseActive parses a color expression, resolving accent tokens in
// their active state when active is true.
func ParseActive(expr string, active bool) (Color, error) {
	s := strings.TrimSpace(expr)
	if strings.HasPrefix(s, "gradient(") && strings.HasSuffix(s, ")") {
		inner := strings.TrimSuffix(strings.TrimPrefix(s, "gradient("), ")")
		return ParseActive(inner, active)
	}

	tokens, lastEnd := scanTokens(s)
	if len(tokens) == 0 {
		return nil, newParseError(KindNoValidColors, s)
	}

	if len(tokens) == 1 {
		c, err := parseToken(tokens[0], active)
		if err != nil {
			return nil, err
		}
		return NewSolid(c), nil
	}

	// Everything after the last color token may carry the direction; the
	// first valid direction among its comma-separated fields wins.
	direction := defaultDirection
	for _, field := range strings.Split(s[lastEnd:], ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		if validDirection(field) {
			direction = field
			break
		}
	}

	// Tokens that fail to parse are dropped from the stop list; the stop
	// spacing is computed over the survivors.
	colors := make([]RGBA, 0, len(tokens))
	for _, tok := range tokens {
		c, err := parseToken(tok, active)
		if err != nil {
			continue
		}
		colors = append(colors, c)
	}

	switch len(colors) {
	case 0:
		return nil, newParseError(KindNoValidColors, s)
	case 1:
		return NewSolid(colors[0]), nil
	}

	coords, err := ResolveDirection(direction)
	if err != nil {
		return nil, err
	}
	return NewGradient(uniformStops(colors), coords), nil
}

// MustParse parses a color expression and panics if parsing fails.
// Use this only for known-good expressions in initialization code.
func MustParse(expr string) Color {
	c, err := Parse(expr)
	if err != nil {
		panic(err)
	}
	return c
}

// uniformStops spreads colors evenly across [0, 1]: stop i of n sits at
// i/(n-1).
func uniformStops(colors []RGBA) []Stop {
	step := 1.0 / float64(len(colors)-1)
	stops := make([]Stop, len(colors))
	for i, c := range colors {
		stops[i] = Stop{Position: float64(i) * step, Color: c}
	}
	return stops
}
