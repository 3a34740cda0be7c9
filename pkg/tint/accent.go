package tint

import (
	"sync/atomic"

	"github.com/tintkit/tint/internal/platform"
)

// AccentSource supplies the platform colorization color backing the
// "accent" token. Implementations return the raw RGB triple; the alpha
// channel is ignored. The call is synchronous and may fail; no retry is
// attempted.
type AccentSource interface {
	Colorization() (RGBA, error)
}

// accentHolder boxes the injected source so it can live in an atomic
// pointer.
type accentHolder struct {
	src AccentSource
}

var accentSource atomic.Pointer[accentHolder]

// SetAccentSource replaces the accent color source used by all parsing
// entry points. Passing nil restores the platform default. Safe to call
// concurrently with parsing.
func SetAccentSource(src AccentSource) {
	if src == nil {
		accentSource.Store(nil)
		return
	}
	accentSource.Store(&accentHolder{src: src})
}

func currentAccentSource() AccentSource {
	if h := accentSource.Load(); h != nil {
		return h.src
	}
	return platformAccent{}
}

// StaticAccent returns an AccentSource that always reports c. Useful in
// tests and headless environments without a system accent color.
func StaticAccent(c RGBA) AccentSource {
	return staticAccent{c: c}
}

type staticAccent struct {
	c RGBA
}

func (s staticAccent) Colorization() (RGBA, error) {
	return s.c, nil
}

// platformAccent queries the host OS through the platform layer.
type platformAccent struct{}

func (platformAccent) Colorization() (RGBA, error) {
	src, err := platform.New()
	if err != nil {
		return RGBA{}, err
	}
	r, g, b, err := src.Colorization()
	if err != nil {
		return RGBA{}, err
	}
	return RGBA{
		R: float64(r) / 255,
		G: float64(g) / 255,
		B: float64(b) / 255,
		A: 1,
	}, nil
}

// accentColor resolves the accent token. Active accents return the raw
// colorization triple at full opacity; inactive accents are desaturated
// toward their channel average, again fully opaque.
func accentColor(active bool) (RGBA, error) {
	c, err := currentAccentSource().Colorization()
	if err != nil {
		return RGBA{}, wrapParseError(KindInvalidAccent, "accent", err)
	}
	if active {
		return RGBA{R: c.R, G: c.G, B: c.B, A: 1}, nil
	}
	avg := (c.R + c.G + c.B) / 3
	return RGBA{
		R: avg/1.5 + c.R/10,
		G: avg/1.5 + c.G/10,
		B: avg/1.5 + c.B/10,
		A: 1,
	}, nil
}
