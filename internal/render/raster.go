// Package render rasterizes parsed colors into images.
//
// Solid colors fill the whole image; gradients project each pixel onto
// the gradient axis and interpolate between the bracketing stops. The
// gradient axis is the start/end coordinate pair scaled to the image
// size, so diagonal gradients follow the image diagonal rather than a
// fixed angle.
package render

import (
	"image"

	"github.com/tintkit/tint/pkg/tint"
)

// Rasterize renders a color into a width by height image. Non-positive
// dimensions yield an empty image. The color's opacity scales the alpha
// of every pixel.
func Rasterize(c tint.Color, width, height int) *image.NRGBA {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	img := image.NewNRGBA(image.Rect(0, 0, width, height))

	switch c := c.(type) {
	case *tint.Solid:
		fillSolid(img, c)
	case *tint.Gradient:
		fillGradient(img, c)
	}
	return img
}

func fillSolid(img *image.NRGBA, s *tint.Solid) {
	px := withOpacity(s.Color, s.Opacity()).NRGBA()
	bounds := img.Bounds()
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			img.SetNRGBA(x, y, px)
		}
	}
}

func fillGradient(img *image.NRGBA, g *tint.Gradient) {
	bounds := img.Bounds()
	w := float64(bounds.Dx())
	h := float64(bounds.Dy())

	// Scale the unit-space axis to the image size.
	sx := g.Direction.Start[0] * w
	sy := g.Direction.Start[1] * h
	dx := g.Direction.End[0]*w - sx
	dy := g.Direction.End[1]*h - sy
	lenSq := dx*dx + dy*dy

	opacity := g.Opacity()
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			t := 0.0
			if lenSq > 0 {
				// Project the pixel center onto the axis.
				px := float64(x) + 0.5 - sx
				py := float64(y) + 0.5 - sy
				t = (px*dx + py*dy) / lenSq
			}
			img.SetNRGBA(x, y, withOpacity(g.At(t), opacity).NRGBA())
		}
	}
}

// withOpacity scales a color's alpha channel.
func withOpacity(c tint.RGBA, opacity float64) tint.RGBA {
	c.A *= opacity
	return c
}

// Swatch renders a color into a square image of the given side length.
// It is a convenience for previews and tests.
func Swatch(c tint.Color, size int) *image.NRGBA {
	return Rasterize(c, size, size)
}
