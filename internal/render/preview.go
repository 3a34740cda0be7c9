// This file implements the preview window that displays resolved theme
// colors as swatches.

package render

import (
	"context"
	"errors"
	"image/color"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/tintkit/tint/pkg/tint"
)

// ErrPreviewTerminated is returned when the preview loop is terminated
// via context cancellation.
var ErrPreviewTerminated = errors.New("preview terminated")

// DefaultSwatchSize is the default swatch side length in pixels.
const DefaultSwatchSize = 128

// previewPadding is the gap around and between swatches in pixels.
const previewPadding = 16

// previewBackground is the window background behind the swatches.
var previewBackground = color.NRGBA{R: 0x1e, G: 0x1e, B: 0x1e, A: 0xff}

// Preview implements ebiten.Game and displays color swatches in a window.
type Preview struct {
	title      string
	swatchSize int
	images     []*ebiten.Image
	mu         sync.RWMutex
	running    bool
	ctx        context.Context
}

// NewPreview creates a preview showing one swatch per color.
// A non-positive swatchSize falls back to DefaultSwatchSize.
func NewPreview(title string, swatchSize int, colors ...tint.Color) *Preview {
	if swatchSize < 1 {
		swatchSize = DefaultSwatchSize
	}
	p := &Preview{
		title:      title,
		swatchSize: swatchSize,
	}
	p.SetColors(colors...)
	return p
}

// SetContext sets a context for the preview loop. When the context is
// cancelled, the loop terminates gracefully.
func (p *Preview) SetContext(ctx context.Context) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.ctx = ctx
}

// SetColors replaces the displayed swatches. Safe to call while the
// preview is running, which is how theme reloads update the window.
func (p *Preview) SetColors(colors ...tint.Color) {
	images := make([]*ebiten.Image, 0, len(colors))
	for _, c := range colors {
		images = append(images, NewBrushImage(c, p.swatchSize, p.swatchSize))
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	for _, img := range p.images {
		img.Deallocate()
	}
	p.images = images
}

// Update implements ebiten.Game.Update.
func (p *Preview) Update() error {
	p.mu.RLock()
	defer p.mu.RUnlock()

	// Check for context cancellation (used for programmatic shutdown)
	if p.ctx != nil {
		select {
		case <-p.ctx.Done():
			return ErrPreviewTerminated
		default:
		}
	}
	return nil
}

// Draw implements ebiten.Game.Draw.
func (p *Preview) Draw(screen *ebiten.Image) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	screen.Fill(previewBackground)

	x := float64(previewPadding)
	for _, img := range p.images {
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(x, previewPadding)
		screen.DrawImage(img, op)
		x += float64(p.swatchSize + previewPadding)
	}
}

// Layout implements ebiten.Game.Layout.
func (p *Preview) Layout(outsideWidth, outsideHeight int) (int, int) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	n := len(p.images)
	if n == 0 {
		n = 1
	}
	width := n*p.swatchSize + (n+1)*previewPadding
	height := p.swatchSize + 2*previewPadding
	return width, height
}

// Run starts the Ebiten game loop. This function blocks until the
// window is closed or the context is cancelled.
func (p *Preview) Run() error {
	width, height := p.Layout(0, 0)
	ebiten.SetWindowSize(width, height)
	ebiten.SetWindowTitle(p.title)

	p.mu.Lock()
	p.running = true
	p.mu.Unlock()

	err := ebiten.RunGame(p)

	p.mu.Lock()
	p.running = false
	p.mu.Unlock()

	return err
}

// IsRunning returns whether the preview loop is currently running.
func (p *Preview) IsRunning() bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.running
}
