package render

import (
	"context"
	"errors"
	"testing"
)

// TestPreviewLayout tests the window size derived from the swatch count.
func TestPreviewLayout(t *testing.T) {
	p := NewPreview("test", 100)

	// With no swatches the layout reserves room for one.
	w, h := p.Layout(0, 0)
	if w != 100+2*previewPadding {
		t.Errorf("Expected width %d, got %d", 100+2*previewPadding, w)
	}
	if h != 100+2*previewPadding {
		t.Errorf("Expected height %d, got %d", 100+2*previewPadding, h)
	}
}

// TestPreviewDefaultSwatchSize tests the swatch size fallback.
func TestPreviewDefaultSwatchSize(t *testing.T) {
	p := NewPreview("test", 0)
	w, _ := p.Layout(0, 0)
	if w != DefaultSwatchSize+2*previewPadding {
		t.Errorf("Expected width %d, got %d", DefaultSwatchSize+2*previewPadding, w)
	}
}

// TestPreviewUpdate tests that Update runs without a context.
func TestPreviewUpdate(t *testing.T) {
	p := NewPreview("test", 64)
	if err := p.Update(); err != nil {
		t.Errorf("Update() failed: %v", err)
	}
}

// TestPreviewContextCancellation tests graceful termination.
func TestPreviewContextCancellation(t *testing.T) {
	p := NewPreview("test", 64)

	ctx, cancel := context.WithCancel(context.Background())
	p.SetContext(ctx)

	if err := p.Update(); err != nil {
		t.Errorf("Update() before cancellation failed: %v", err)
	}

	cancel()
	if err := p.Update(); !errors.Is(err, ErrPreviewTerminated) {
		t.Errorf("Update() after cancellation = %v, want ErrPreviewTerminated", err)
	}
}

// TestPreviewIsRunning tests the initial running state.
func TestPreviewIsRunning(t *testing.T) {
	p := NewPreview("test", 64)
	if p.IsRunning() {
		t.Error("Expected IsRunning() false before Run()")
	}
}
