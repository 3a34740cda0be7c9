// This file bridges rasterized colors into Ebiten images for GPU drawing.

package render

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/tintkit/tint/pkg/tint"
)

// NewBrushImage renders a color into a GPU-backed Ebiten image.
// The result is suitable for DrawImage composition, e.g. as a window
// border fill.
func NewBrushImage(c tint.Color, width, height int) *ebiten.Image {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	return ebiten.NewImageFromImage(Rasterize(c, width, height))
}
