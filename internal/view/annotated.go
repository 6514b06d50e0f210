package view

import (
	"fmt"
	"time"

	"github.com/san-kum/samplescope/internal/anno"
	"github.com/san-kum/samplescope/internal/render"
	"github.com/san-kum/samplescope/internal/sample"
	"github.com/san-kum/samplescope/internal/tensor"
)

// Label placement constants: the font size is the surface height over
// fontDiv; labels are placed in a column at x = rowUnit/2 where rowUnit
// is a sixth of the image height, stepping one rowUnit down per label.
const (
	fontDiv       = 22.0
	rowFrac       = 6.0
	labelRowStart = 0.7
	labelRowStep  = 1.0
)

// AnnoOptions configure an AnnotatedImageViewer. Zero-valued styles
// fall back to the documented defaults.
type AnnoOptions struct {
	FigWidth, FigHeight int
	Pause               time.Duration

	// Interpolation is passed to the image draw call.
	Interpolation string

	Shape render.LineStyle
	Text  render.TextStyle
}

// AnnotatedImageViewer displays one image column per element and
// overlays its annotation columns: shape sequences as outlined patches,
// anything else as stacked text labels.
type AnnotatedImageViewer struct {
	imgcol   int
	annocols []int
	fig      render.Figure
	ax       render.Axes
	pause    time.Duration
	interp   string
	shape    render.LineStyle
	text     render.TextStyle
}

// NewAnnotatedImageViewer opens one window with a single surface.
// Annotation column order is insignificant; drawing iterates the set in
// ascending index order.
func NewAnnotatedImageViewer(b render.Backend, imgcol int, annocols sample.ColSet, opts AnnoOptions) (*AnnotatedImageViewer, error) {
	shape := opts.Shape
	if shape == (render.LineStyle{}) {
		shape = render.DefaultShapeStyle()
	}
	text := opts.Text
	if text == (render.TextStyle{}) {
		text = render.DefaultTextStyle()
	}

	fig, err := b.NewFigure(render.FigureConfig{
		Title:  "samplescope: annotations",
		Width:  opts.FigWidth,
		Height: opts.FigHeight,
	})
	if err != nil {
		return nil, err
	}
	ax, err := fig.Subplot(0, 0, 1, 1)
	if err != nil {
		return nil, err
	}
	return &AnnotatedImageViewer{
		imgcol:   imgcol,
		annocols: annocols.Sorted(),
		fig:      fig,
		ax:       ax,
		pause:    opts.Pause,
		interp:   opts.Interpolation,
		shape:    shape,
		text:     text,
	}, nil
}

// Process draws the image, dispatches each annotation column to shape
// or text rendering, flushes and blocks for a key press or the pause.
// The text stacking offset is call-local: it resets to its starting row
// on every call.
func (v *AnnotatedImageViewer) Process(e sample.Element) (sample.Element, error) {
	img := e[v.imgcol].(*tensor.Tensor).Squeeze()
	v.ax.Clear()
	if err := v.ax.Image(img, render.ImageOptions{Interpolation: v.interp}); err != nil {
		return e, fmt.Errorf("view: column %d: %w", v.imgcol, err)
	}

	row := labelRowStart
	for _, col := range v.annocols {
		val := anno.Classify(e[col])
		switch val.Kind() {
		case anno.KindShapes:
			for _, p := range anno.Patches(val.Shapes(), v.shape) {
				v.ax.AddPatch(p)
			}
		case anno.KindLabel:
			st := v.text
			st.Size = float64(v.ax.HeightPx()) / fontDiv
			p := float64(img.Shape()[0]) / rowFrac
			v.ax.Text(p/2, p*row, val.Label(), st)
			row += labelRowStep
		}
	}
	v.fig.Draw()
	v.fig.Wait(v.pause)
	return e, nil
}

// StopRequested reports whether the user asked the figure to stop.
func (v *AnnotatedImageViewer) StopRequested() bool {
	s, ok := v.fig.(interface{ StopRequested() bool })
	return ok && s.StopRequested()
}

// Close releases the figure.
func (v *AnnotatedImageViewer) Close() error { return v.fig.Close() }
