// This file contains fuzzing tests for the color expression parser to
// ensure robustness against malformed or unexpected input.

package tint

import "testing"

// FuzzParse tests the expression parser with arbitrary input. It ensures
// parsing never panics and that results uphold the gradient invariants.
func FuzzParse(f *testing.F) {
	// Valid expressions
	f.Add("#ff0000")
	f.Add("#f00")
	f.Add("#ff000080")
	f.Add("red")
	f.Add("transparent")
	f.Add("accent")
	f.Add("rgb(255, 0, 0)")
	f.Add("rgba(255, 0, 0, 0.5)")
	f.Add("rgb(100%, 50%, 0%)")
	f.Add("darken(#ff0000, 25%)")
	f.Add("lighten(rgb(128, 0, 0), 50)")
	f.Add("darken(darken(#ff0000, 10), 10)")
	f.Add("red, blue")
	f.Add("red blue green, to bottom right")
	f.Add("#ff0000 #00ff00 #0000ff, 45deg")
	f.Add("gradient(red, blue, to left)")

	// Edge cases
	f.Add("")
	f.Add("   ")
	f.Add("#")
	f.Add("to right")
	f.Add("gradient()")
	f.Add("gradient(gradient(red))")
	f.Add("accent accent")
	f.Add("grayish")

	// Malformed inputs
	f.Add("#12345")
	f.Add("#zzz")
	f.Add("rgb(")
	f.Add("rgb(1, 2)")
	f.Add("rgb(100%, 0, 0)")
	f.Add("rgba(1, 2, 3, 4, 5)")
	f.Add("darken(#ff0000)")
	f.Add("darken(, 10)")
	f.Add("red, #12345, blue")
	f.Add("\xff\xfe")
	f.Add("#\xc3\xbfff")

	f.Fuzz(func(t *testing.T, expr string) {
		// Pin the accent source so fuzzing never touches the host
		// platform.
		SetAccentSource(StaticAccent(RGBA{R: 0.5, G: 0.5, B: 0.5, A: 1}))
		defer SetAccentSource(nil)

		c, err := Parse(expr)
		if err != nil {
			if c != nil {
				t.Errorf("Parse(%q) returned both a color and an error", expr)
			}
			return
		}
		if c == nil {
			t.Fatalf("Parse(%q) returned nil color with nil error", expr)
		}

		g, ok := c.(*Gradient)
		if !ok {
			return
		}
		if len(g.Stops) < 2 {
			t.Errorf("Parse(%q) produced a gradient with %d stops", expr, len(g.Stops))
		}
		prev := -1.0
		for i, s := range g.Stops {
			if s.Position < 0 || s.Position > 1 {
				t.Errorf("Parse(%q) stop %d position %v out of range", expr, i, s.Position)
			}
			if s.Position <= prev {
				t.Errorf("Parse(%q) stop positions not increasing: %v after %v", expr, s.Position, prev)
			}
			prev = s.Position
		}
	})
}

// FuzzResolveDirection tests direction resolution with arbitrary input.
func FuzzResolveDirection(f *testing.F) {
	// Keywords
	f.Add("to right")
	f.Add("to bottom left")

	// Angles
	f.Add("45deg")
	f.Add("-90deg")
	f.Add("100grad")
	f.Add("1.5rad")
	f.Add("0.25turn")
	f.Add("360")
	f.Add("1e10")
	f.Add("-1e10")

	// Edge cases
	f.Add("")
	f.Add("deg")
	f.Add("to")
	f.Add("NaNdeg")
	f.Add("Infdeg")
	f.Add("-Infturn")

	f.Fuzz(func(t *testing.T, s string) {
		// Resolution should not panic on any input. Finite results stay
		// on the unit square.
		coords, err := ResolveDirection(s)
		if err != nil {
			return
		}
		for _, v := range []float64{coords.Start[0], coords.Start[1], coords.End[0], coords.End[1]} {
			if v < 0 || v > 1 {
				t.Errorf("ResolveDirection(%q) produced out-of-square coordinate %v", s, v)
			}
		}
	})
}
