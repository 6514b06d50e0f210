// Package render defines the drawing surface contract the viewers draw
// against. Implementations live in subpackages: term (tcell terminal)
// and gl (raylib window). Viewers depend only on these interfaces.
package render

import (
	"time"

	"github.com/san-kum/samplescope/internal/tensor"
)

// Backend creates figures. A backend is chosen once at viewer
// construction; viewers never mix backends.
type Backend interface {
	NewFigure(cfg FigureConfig) (Figure, error)
}

// FigureConfig carries the window size hint and title. Zero width or
// height means the backend default.
type FigureConfig struct {
	Title  string
	Width  int
	Height int
}

// Figure is one window. Surfaces are allocated once via Subplot and
// reused for the figure's lifetime.
type Figure interface {
	// Subplot returns the axes at (row, col) of an nrows x ncols grid,
	// allocating it on first use.
	Subplot(row, col, nrows, ncols int) (Axes, error)

	// Draw flushes pending drawing to the screen.
	Draw()

	// Wait blocks until a key press or the timeout elapses, whichever
	// comes first, and reports whether a key arrived. A non-positive
	// timeout returns immediately after polling for input.
	Wait(timeout time.Duration) bool

	Close() error
}

// Axes is one display surface inside a figure.
type Axes interface {
	Clear()

	// Image draws a displayable tensor (MxN, MxNx3 or MxNx4) scaled to
	// the surface. The error is the backend's own; viewers propagate it
	// unchanged.
	Image(t *tensor.Tensor, opts ImageOptions) error

	// AddPatch overlays a geometric patch in image coordinates.
	AddPatch(p Patch)

	// Text draws s at (x, y) in image coordinates.
	Text(x, y float64, s string, st TextStyle)

	// HeightPx is the surface's current pixel height, used for font
	// sizing.
	HeightPx() int
}

// ImageOptions are pass-through styling for Image. Extra holds
// backend-specific options not modeled here.
type ImageOptions struct {
	// Interpolation is "", "nearest" or "bilinear".
	Interpolation string

	// Colormap names the grayscale mapping, e.g. "gray" or "viridis".
	Colormap string

	Extra map[string]any
}
