package config

import (
	"testing"

	"github.com/tintkit/tint/pkg/tint"
)

// TestDefaultTheme tests the default theme values.
func TestDefaultTheme(t *testing.T) {
	theme := DefaultTheme()

	if theme.ActiveColor.Expr != DefaultColorExpr {
		t.Errorf("Expected active color %q, got %q", DefaultColorExpr, theme.ActiveColor.Expr)
	}
	if theme.InactiveColor.Expr != DefaultColorExpr {
		t.Errorf("Expected inactive color %q, got %q", DefaultColorExpr, theme.InactiveColor.Expr)
	}
	if theme.Width != DefaultWidth {
		t.Errorf("Expected width %d, got %d", DefaultWidth, theme.Width)
	}
	if theme.Offset != DefaultOffset {
		t.Errorf("Expected offset %d, got %d", DefaultOffset, theme.Offset)
	}
	if theme.Radius != DefaultRadius {
		t.Errorf("Expected radius %g, got %g", DefaultRadius, theme.Radius)
	}
}

// TestThemeResolve tests resolving the active and inactive border colors.
func TestThemeResolve(t *testing.T) {
	accent := tint.RGBA{R: 0.5, G: 0.25, B: 0.75, A: 1}
	tint.SetAccentSource(tint.StaticAccent(accent))
	defer tint.SetAccentSource(nil)

	theme := DefaultTheme()

	active, err := theme.Active()
	if err != nil {
		t.Fatalf("Active() failed: %v", err)
	}
	solid, ok := active.(*tint.Solid)
	if !ok {
		t.Fatalf("Expected *tint.Solid, got %T", active)
	}
	if solid.Color != accent {
		t.Errorf("Expected active color %v, got %v", accent, solid.Color)
	}

	inactive, err := theme.Inactive()
	if err != nil {
		t.Fatalf("Inactive() failed: %v", err)
	}
	solid, ok = inactive.(*tint.Solid)
	if !ok {
		t.Fatalf("Expected *tint.Solid, got %T", inactive)
	}
	avg := (accent.R + accent.G + accent.B) / 3
	want := tint.RGBA{
		R: avg/1.5 + accent.R/10,
		G: avg/1.5 + accent.G/10,
		B: avg/1.5 + accent.B/10,
		A: 1,
	}
	if solid.Color != want {
		t.Errorf("Expected inactive color %v, got %v", want, solid.Color)
	}
}

// TestThemeResolveGradient tests resolving a declarative gradient value.
func TestThemeResolveGradient(t *testing.T) {
	theme := DefaultTheme()
	theme.ActiveColor = tint.ValueMapping(tint.NewMapping(
		[]string{"#000000", "#ffffff"},
		tint.DirectionToken("to bottom"),
	))

	active, err := theme.Active()
	if err != nil {
		t.Fatalf("Active() failed: %v", err)
	}
	grad, ok := active.(*tint.Gradient)
	if !ok {
		t.Fatalf("Expected *tint.Gradient, got %T", active)
	}
	if len(grad.Stops) != 2 {
		t.Errorf("Expected 2 stops, got %d", len(grad.Stops))
	}
}

// TestThemeValidate tests theme geometry validation.
func TestThemeValidate(t *testing.T) {
	tests := []struct {
		name         string
		mutate       func(*Theme)
		wantErrors   int
		wantWarnings int
	}{
		{"defaults", func(*Theme) {}, 0, 0},
		{"negative width", func(th *Theme) { th.Width = -1 }, 1, 0},
		{"huge width", func(th *Theme) { th.Width = 500 }, 0, 1},
		{"negative radius", func(th *Theme) { th.Radius = -0.5 }, 1, 0},
		{"huge offset", func(th *Theme) { th.Offset = -300 }, 0, 1},
		{"multiple errors", func(th *Theme) { th.Width = -1; th.Radius = -1 }, 2, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			theme := DefaultTheme()
			tt.mutate(&theme)

			result := theme.Validate()
			if len(result.Errors) != tt.wantErrors {
				t.Errorf("Expected %d errors, got %d: %v", tt.wantErrors, len(result.Errors), result.Errors)
			}
			if len(result.Warnings) != tt.wantWarnings {
				t.Errorf("Expected %d warnings, got %d: %v", tt.wantWarnings, len(result.Warnings), result.Warnings)
			}

			wantValid := tt.wantErrors == 0
			if result.IsValid() != wantValid {
				t.Errorf("IsValid() = %v, want %v", result.IsValid(), wantValid)
			}
			if (result.Error() == nil) != wantValid {
				t.Errorf("Error() = %v, want nil: %v", result.Error(), wantValid)
			}
		})
	}
}
