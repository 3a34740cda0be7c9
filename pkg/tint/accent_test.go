package tint

import (
	"errors"
	"testing"
)

// failingAccent is an AccentSource that always fails.
type failingAccent struct {
	err error
}

func (f failingAccent) Colorization() (RGBA, error) {
	return RGBA{}, f.err
}

func TestAccentActive(t *testing.T) {
	SetAccentSource(StaticAccent(RGBA{R: 0.2, G: 0.4, B: 0.8, A: 1}))
	t.Cleanup(func() { SetAccentSource(nil) })

	got, err := accentColor(true)
	if err != nil {
		t.Fatalf("accentColor failed: %v", err)
	}
	want := RGBA{R: 0.2, G: 0.4, B: 0.8, A: 1}
	if !rgbaApproxEqual(got, want, 1e-9) {
		t.Errorf("active accent = %v, want %v", got, want)
	}
}

func TestAccentInactive(t *testing.T) {
	SetAccentSource(StaticAccent(RGBA{R: 0.2, G: 0.4, B: 0.8, A: 1}))
	t.Cleanup(func() { SetAccentSource(nil) })

	got, err := accentColor(false)
	if err != nil {
		t.Fatalf("accentColor failed: %v", err)
	}

	avg := (0.2 + 0.4 + 0.8) / 3
	want := RGBA{
		R: avg/1.5 + 0.2/10,
		G: avg/1.5 + 0.4/10,
		B: avg/1.5 + 0.8/10,
		A: 1,
	}
	if !rgbaApproxEqual(got, want, 1e-9) {
		t.Errorf("inactive accent = %v, want %v", got, want)
	}
}

func TestAccentIgnoresSourceAlpha(t *testing.T) {
	SetAccentSource(StaticAccent(RGBA{R: 1, A: 0.25}))
	t.Cleanup(func() { SetAccentSource(nil) })

	got, err := accentColor(true)
	if err != nil {
		t.Fatalf("accentColor failed: %v", err)
	}
	if got.A != 1 {
		t.Errorf("accent alpha = %v, want 1", got.A)
	}
}

func TestAccentSourceFailure(t *testing.T) {
	cause := errors.New("registry key missing")
	SetAccentSource(failingAccent{err: cause})
	t.Cleanup(func() { SetAccentSource(nil) })

	_, err := Parse("accent")
	if err == nil {
		t.Fatal("Expected error, got nil")
	}
	if !errors.Is(err, ErrInvalidAccent) {
		t.Errorf("error = %v, want %v", err, ErrInvalidAccent)
	}
	if !errors.Is(err, cause) {
		t.Errorf("error %v should wrap the source failure", err)
	}

	var perr *ParseError
	if !errors.As(err, &perr) {
		t.Fatal("error is not a *ParseError")
	}
	if perr.Input != "accent" {
		t.Errorf("error input = %q, want %q", perr.Input, "accent")
	}
}

func TestAccentInGradient(t *testing.T) {
	SetAccentSource(StaticAccent(RGBA{R: 0.5, G: 0.5, B: 1, A: 1}))
	t.Cleanup(func() { SetAccentSource(nil) })

	c, err := ParseActive("accent, white", true)
	if err != nil {
		t.Fatalf("ParseActive failed: %v", err)
	}
	g, ok := c.(*Gradient)
	if !ok {
		t.Fatalf("Expected *Gradient, got %T", c)
	}
	want := RGBA{R: 0.5, G: 0.5, B: 1, A: 1}
	if !rgbaApproxEqual(g.Stops[0].Color, want, 1e-9) {
		t.Errorf("first stop = %v, want the accent color", g.Stops[0].Color)
	}
}

func TestAccentFailureDropsGradientStop(t *testing.T) {
	// In a multi-token expression a failing accent source drops only the
	// accent stop; the survivors are renumbered over [0, 1].
	SetAccentSource(failingAccent{err: errors.New("no accent available")})
	t.Cleanup(func() { SetAccentSource(nil) })

	c, err := Parse("red accent blue, to right")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	g, ok := c.(*Gradient)
	if !ok {
		t.Fatalf("Expected *Gradient, got %T", c)
	}
	if len(g.Stops) != 2 {
		t.Fatalf("Expected 2 stops after the accent drop, got %d", len(g.Stops))
	}
	if g.Stops[0].Position != 0 || g.Stops[1].Position != 1 {
		t.Errorf("stop positions = %v, %v, want 0, 1", g.Stops[0].Position, g.Stops[1].Position)
	}
	if g.Stops[0].Color != (RGBA{R: 1, A: 1}) {
		t.Errorf("first stop = %v, want red", g.Stops[0].Color)
	}
	if g.Stops[1].Color != (RGBA{B: 1, A: 1}) {
		t.Errorf("second stop = %v, want blue", g.Stops[1].Color)
	}
	wantDir := Coordinates{Start: [2]float64{0, 0.5}, End: [2]float64{1, 0.5}}
	if g.Direction != wantDir {
		t.Errorf("direction = %v, want %v", g.Direction, wantDir)
	}
}

func TestAccentFailureKeepsMappingSlots(t *testing.T) {
	// In a declarative mapping the surviving colors keep their declared
	// slots; the failed accent leaves a gap instead of renumbering.
	SetAccentSource(failingAccent{err: errors.New("no accent available")})
	t.Cleanup(func() { SetAccentSource(nil) })

	m := NewMapping([]string{"red", "accent", "lime", "blue"}, DirectionToken("to right"))
	c, err := FromMapping(m)
	if err != nil {
		t.Fatalf("FromMapping failed: %v", err)
	}
	g, ok := c.(*Gradient)
	if !ok {
		t.Fatalf("Expected *Gradient, got %T", c)
	}
	if len(g.Stops) != 3 {
		t.Fatalf("Expected 3 stops after the accent drop, got %d", len(g.Stops))
	}

	step := 1.0 / 3.0
	wantPositions := []float64{0, 2 * step, 3 * step}
	for i, want := range wantPositions {
		if g.Stops[i].Position != want {
			t.Errorf("stop %d position = %v, want %v", i, g.Stops[i].Position, want)
		}
	}
	if g.Stops[1].Color != (RGBA{G: 1, A: 1}) {
		t.Errorf("stop 1 = %v, want lime at its declared slot", g.Stops[1].Color)
	}
}

func TestSetAccentSourceNilRestoresPlatform(t *testing.T) {
	SetAccentSource(StaticAccent(RGBA{R: 1, A: 1}))
	SetAccentSource(nil)

	if _, ok := currentAccentSource().(platformAccent); !ok {
		t.Errorf("source after SetAccentSource(nil) = %T, want platformAccent", currentAccentSource())
	}
}
