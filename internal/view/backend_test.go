package view

import (
	"time"

	"github.com/san-kum/samplescope/internal/render"
	"github.com/san-kum/samplescope/internal/tensor"
)

// fakeBackend records every drawing call so tests can assert on the
// exact sequence the viewers produce.
type fakeBackend struct {
	figs []*fakeFigure
}

func (b *fakeBackend) NewFigure(cfg render.FigureConfig) (render.Figure, error) {
	f := &fakeFigure{cfg: cfg}
	b.figs = append(b.figs, f)
	return f, nil
}

type fakeFigure struct {
	cfg    render.FigureConfig
	axes   []*fakeAxes
	draws  int
	waits  []time.Duration
	closed bool
}

func (f *fakeFigure) Subplot(row, col, nrows, ncols int) (render.Axes, error) {
	ax := &fakeAxes{row: row, col: col, heightPx: 220}
	f.axes = append(f.axes, ax)
	return ax, nil
}

func (f *fakeFigure) Draw() { f.draws++ }

func (f *fakeFigure) Wait(timeout time.Duration) bool {
	f.waits = append(f.waits, timeout)
	return false
}

func (f *fakeFigure) Close() error {
	f.closed = true
	return nil
}

type imageCall struct {
	shape []int
	opts  render.ImageOptions
}

type textCall struct {
	x, y float64
	s    string
	st   render.TextStyle
}

type fakeAxes struct {
	row, col int
	heightPx int
	clears   int
	images   []imageCall
	patches  []render.Patch
	texts    []textCall
}

func (a *fakeAxes) Clear() { a.clears++ }

func (a *fakeAxes) Image(t *tensor.Tensor, opts render.ImageOptions) error {
	a.images = append(a.images, imageCall{shape: t.Shape(), opts: opts})
	return nil
}

func (a *fakeAxes) AddPatch(p render.Patch) { a.patches = append(a.patches, p) }

func (a *fakeAxes) Text(x, y float64, s string, st render.TextStyle) {
	a.texts = append(a.texts, textCall{x: x, y: y, s: s, st: st})
}

func (a *fakeAxes) HeightPx() int { return a.heightPx }
