package view

import (
	"fmt"
	"time"

	"github.com/san-kum/samplescope/internal/render"
	"github.com/san-kum/samplescope/internal/sample"
	"github.com/san-kum/samplescope/internal/tensor"
)

// GridOptions configure a GridImageViewer. Zero values mean: one row,
// as many columns as image columns, backend default figure size, a near
// zero pause.
type GridOptions struct {
	Rows, Cols          int
	FigWidth, FigHeight int
	Pause               time.Duration
	Image               render.ImageOptions
}

// GridImageViewer displays the image columns of each element in a fixed
// grid of surfaces, allocated once at construction and redrawn in place
// every call.
type GridImageViewer struct {
	imgcols []int
	fig     render.Figure
	axes    []render.Axes
	pause   time.Duration
	imopts  render.ImageOptions
}

// NewGridImageViewer validates the layout against the image columns and
// allocates the figure and its surfaces in row-major order. A layout
// whose row*col count does not match the column count fails with
// ErrLayout before any surface exists.
func NewGridImageViewer(b render.Backend, imgcols sample.Cols, opts GridOptions) (*GridImageViewer, error) {
	if len(imgcols) == 0 {
		return nil, ErrNoImageColumns
	}
	rows, cols, n := opts.Rows, opts.Cols, len(imgcols)
	if rows == 0 {
		rows = 1
	}
	if cols == 0 {
		cols = n
	}
	if n != rows*cols {
		return nil, fmt.Errorf("%w: %d images in a %dx%d grid", ErrLayout, n, rows, cols)
	}

	fig, err := b.NewFigure(render.FigureConfig{
		Title:  "samplescope: images",
		Width:  opts.FigWidth,
		Height: opts.FigHeight,
	})
	if err != nil {
		return nil, err
	}
	axes := make([]render.Axes, n)
	for i := range axes {
		ax, err := fig.Subplot(i/cols, i%cols, rows, cols)
		if err != nil {
			return nil, err
		}
		axes[i] = ax
	}
	return &GridImageViewer{
		imgcols: imgcols,
		fig:     fig,
		axes:    axes,
		pause:   opts.Pause,
		imopts:  opts.Image,
	}, nil
}

// Process draws every configured image column into its surface, then
// blocks for a key press or the configured pause. The element is
// returned unchanged. Malformed image shapes surface the backend's
// error.
func (v *GridImageViewer) Process(e sample.Element) (sample.Element, error) {
	for i, col := range v.imgcols {
		ax := v.axes[i]
		ax.Clear()
		img := e[col].(*tensor.Tensor).Squeeze()
		if err := ax.Image(img, v.imopts); err != nil {
			return e, fmt.Errorf("view: column %d: %w", col, err)
		}
		v.fig.Draw()
	}
	v.fig.Wait(v.pause)
	return e, nil
}

// StopRequested reports whether the user asked the figure to stop.
// Drivers poll this between elements.
func (v *GridImageViewer) StopRequested() bool {
	s, ok := v.fig.(interface{ StopRequested() bool })
	return ok && s.StopRequested()
}

// Close releases the figure. Viewers normally hold their window for the
// process lifetime; Close exists so drivers can restore the terminal.
func (v *GridImageViewer) Close() error { return v.fig.Close() }
