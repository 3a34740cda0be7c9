package tint

import (
	"math"
	"strconv"
	"strings"
)

// defaultDirection is used when a gradient expression names no direction.
const defaultDirection = "to right"

// keywordDirections maps the eight keyword phrases to their coordinates.
// Start and end are always antipodal points on the unit square, with y
// growing downward.
var keywordDirections = map[string]Coordinates{
	"to right":        {Start: [2]float64{0.0, 0.5}, End: [2]float64{1.0, 0.5}},
	"to left":         {Start: [2]float64{1.0, 0.5}, End: [2]float64{0.0, 0.5}},
	"to top":          {Start: [2]float64{0.5, 1.0}, End: [2]float64{0.5, 0.0}},
	"to bottom":       {Start: [2]float64{0.5, 0.0}, End: [2]float64{0.5, 1.0}},
	"to top right":    {Start: [2]float64{0.0, 1.0}, End: [2]float64{1.0, 0.0}},
	"to top left":     {Start: [2]float64{1.0, 1.0}, End: [2]float64{0.0, 0.0}},
	"to bottom right": {Start: [2]float64{0.0, 0.0}, End: [2]float64{1.0, 1.0}},
	"to bottom left":  {Start: [2]float64{1.0, 0.0}, End: [2]float64{0.0, 1.0}},
}

// ResolveDirection converts a direction token into normalized gradient
// coordinates. The token is one of the eight keyword phrases, or an angle
// with an optional deg, grad, rad, or turn suffix (a bare number is read
// as degrees). Anything else is an invalid direction.
func ResolveDirection(s string) (Coordinates, error) {
	if c, ok := keywordDirections[s]; ok {
		return c, nil
	}
	deg, ok := parseAngle(s)
	if !ok {
		return Coordinates{}, newParseError(KindInvalidGradientCoordinates, s)
	}
	return coordinatesForAngle(deg), nil
}

// validDirection reports whether s would resolve without error.
func validDirection(s string) bool {
	if _, ok := keywordDirections[s]; ok {
		return true
	}
	_, ok := parseAngle(s)
	return ok
}

// parseAngle reads an angle token and normalizes it to degrees.
// The grad suffix is checked before rad, which it contains.
func parseAngle(s string) (float64, bool) {
	convert := 1.0
	switch {
	case strings.HasSuffix(s, "deg"):
		s = s[:len(s)-len("deg")]
	case strings.HasSuffix(s, "grad"):
		s = s[:len(s)-len("grad")]
		convert = 360.0 / 400.0
	case strings.HasSuffix(s, "rad"):
		s = s[:len(s)-len("rad")]
		convert = 180.0 / math.Pi
	case strings.HasSuffix(s, "turn"):
		s = s[:len(s)-len("turn")]
		convert = 360.0
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v * convert, true
}

// coordinatesForAngle derives the start and end points for an angle in
// degrees (0 is up, clockwise positive). The gradient's progression line
// passes through the unit square's center; its slope follows from the
// angle, with the vertical case saturated to the largest float so the
// edge re-solve below lands on x = 0.5 without dividing by zero.
func coordinatesForAngle(deg float64) Coordinates {
	sector := math.Mod(math.Abs(deg), 360)

	var m float64
	if sector == 90 || sector == 270 {
		m = math.MaxFloat64
		if deg < 0 {
			m = -m
		}
	} else {
		m = math.Tan(-deg * math.Pi / 180)
	}
	b := -m*0.5 + 0.5

	// Sample x positions by 180-degree sector so start precedes end
	// along the progression direction.
	x0, x1 := 0.0, 1.0
	if sector >= 90 && sector < 270 {
		x0, x1 = 1.0, 0.0
	}

	return Coordinates{
		Start: linePoint(x0, m, b),
		End:   linePoint(x1, m, b),
	}
}

// linePoint evaluates y = m*x + b and clamps the point to the unit square
// by re-solving for x on the crossed horizontal edge.
func linePoint(x, m, b float64) [2]float64 {
	y := m*x + b
	switch {
	case y > 1:
		return [2]float64{(1 - b) / m, 1}
	case y < 0:
		return [2]float64{-b / m, 0}
	}
	return [2]float64{x, y}
}
