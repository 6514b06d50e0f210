// Package gl renders figures into a raylib window. Raylib drives one
// OS window per process, so a gl backend supports a single live figure;
// the terminal backend has no such limit.
package gl

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"math"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/san-kum/samplescope/internal/render"
	"github.com/san-kum/samplescope/internal/tensor"
)

// ErrWindowBusy indicates a second figure was requested while the
// process window is in use.
var ErrWindowBusy = errors.New("gl: window already owned by another figure")

const (
	defaultWidth  = 960
	defaultHeight = 720
)

// Window background, monochrome like the rest of the tooling.
var colBg = rl.NewColor(10, 10, 10, 255)

var windowOpen bool

// Backend creates raylib figures.
type Backend struct{}

func NewBackend() *Backend { return &Backend{} }

type figure struct {
	axes   []*axes
	stop   bool
	closed bool
}

func (b *Backend) NewFigure(cfg render.FigureConfig) (render.Figure, error) {
	if windowOpen {
		return nil, ErrWindowBusy
	}
	w, h := cfg.Width, cfg.Height
	if w == 0 {
		w = defaultWidth
	}
	if h == 0 {
		h = defaultHeight
	}
	rl.InitWindow(int32(w), int32(h), cfg.Title)
	rl.SetTargetFPS(60)
	rl.SetExitKey(0)
	windowOpen = true
	return &figure{}, nil
}

func (f *figure) Subplot(row, col, nrows, ncols int) (render.Axes, error) {
	if row < 0 || row >= nrows || col < 0 || col >= ncols {
		return nil, fmt.Errorf("gl: subplot (%d,%d) outside %dx%d grid", row, col, nrows, ncols)
	}
	ax := &axes{fig: f, row: row, col: col, nrows: nrows, ncols: ncols}
	f.axes = append(f.axes, ax)
	return ax, nil
}

// Draw renders one frame with the retained contents of every surface.
func (f *figure) Draw() {
	rl.BeginDrawing()
	rl.ClearBackground(colBg)
	for _, ax := range f.axes {
		ax.render()
	}
	rl.EndDrawing()
}

// Wait keeps the window responsive until a key press or the deadline,
// re-rendering each frame.
func (f *figure) Wait(timeout time.Duration) bool {
	deadline := time.Now().Add(timeout)
	for {
		if rl.WindowShouldClose() {
			f.stop = true
			return true
		}
		f.Draw()
		if key := rl.GetKeyPressed(); key != 0 {
			if key == rl.KeyQ || key == rl.KeyEscape {
				f.stop = true
			}
			return true
		}
		if timeout <= 0 || time.Now().After(deadline) {
			return false
		}
	}
}

// StopRequested reports whether the user closed the window or pressed
// q or escape.
func (f *figure) StopRequested() bool { return f.stop }

func (f *figure) Close() error {
	if f.closed {
		return nil
	}
	f.closed = true
	for _, ax := range f.axes {
		ax.unload()
	}
	rl.CloseWindow()
	windowOpen = false
	return nil
}

type textOp struct {
	x, y float64
	s    string
	st   render.TextStyle
}

type axes struct {
	fig   *figure
	row   int
	col   int
	nrows int
	ncols int

	tex     rl.Texture2D
	hasTex  bool
	imgRows int
	imgCols int
	patches []render.Patch
	texts   []textOp
}

func (a *axes) Clear() {
	a.patches = a.patches[:0]
	a.texts = a.texts[:0]
}

func (a *axes) Image(t *tensor.Tensor, opts render.ImageOptions) error {
	if !t.IsImage() {
		return tensor.ErrNotImage
	}
	a.unload()
	img := toNRGBA(t)
	rimg := rl.NewImageFromImage(img)
	a.tex = rl.LoadTextureFromImage(rimg)
	rl.UnloadImage(rimg)
	if opts.Interpolation == "bilinear" {
		rl.SetTextureFilter(a.tex, rl.FilterBilinear)
	} else {
		rl.SetTextureFilter(a.tex, rl.FilterPoint)
	}
	a.hasTex = true
	a.imgRows = t.Shape()[0]
	a.imgCols = t.Shape()[1]
	return nil
}

func (a *axes) AddPatch(p render.Patch) { a.patches = append(a.patches, p) }

func (a *axes) Text(x, y float64, s string, st render.TextStyle) {
	a.texts = append(a.texts, textOp{x: x, y: y, s: s, st: st})
}

// viewport returns this surface's window rectangle in pixels.
func (a *axes) viewport() (x0, y0, w, h float64) {
	sw, sh := float64(rl.GetScreenWidth()), float64(rl.GetScreenHeight())
	w = sw / float64(a.ncols)
	h = sh / float64(a.nrows)
	return float64(a.col) * w, float64(a.row) * h, w, h
}

func (a *axes) HeightPx() int {
	_, _, _, h := a.viewport()
	return int(h)
}

// mapping returns the image-to-window transform fitting the image into
// the viewport with preserved aspect ratio.
func (a *axes) mapping() (ox, oy, scale float64) {
	x0, y0, w, h := a.viewport()
	scale = math.Min(w/float64(a.imgCols), h/float64(a.imgRows))
	ox = x0 + (w-float64(a.imgCols)*scale)/2
	oy = y0 + (h-float64(a.imgRows)*scale)/2
	return ox, oy, scale
}

func (a *axes) render() {
	if !a.hasTex {
		return
	}
	ox, oy, scale := a.mapping()
	src := rl.NewRectangle(0, 0, float32(a.imgCols), float32(a.imgRows))
	dst := rl.NewRectangle(float32(ox), float32(oy),
		float32(float64(a.imgCols)*scale), float32(float64(a.imgRows)*scale))
	rl.DrawTexturePro(a.tex, src, dst, rl.NewVector2(0, 0), 0, rl.White)

	for _, p := range a.patches {
		a.renderPatch(p, ox, oy, scale)
	}
	for _, t := range a.texts {
		size := int32(t.st.Size)
		if size < 10 {
			size = 10
		}
		px := int32(ox + t.x*scale)
		py := int32(oy + t.y*scale)
		tw := rl.MeasureText(t.s, size)
		if bg, ok := t.st.Background.Parse(); ok {
			rl.DrawRectangle(px-2, py-2, tw+4, size+4, toRaylib(bg))
		}
		rl.DrawText(t.s, px, py, size, toRaylib(mustParse(t.st.Color)))
	}
}

func (a *axes) renderPatch(p render.Patch, ox, oy, scale float64) {
	edge := toRaylib(mustParse(p.Style.EdgeColor))
	thick := float32(p.Style.LineWidth)
	if thick < 1 {
		thick = 1
	}
	n := len(p.Verts)
	if n == 0 {
		return
	}
	last := n - 1
	if !p.Closed {
		last = n - 2
	}
	for i := 0; i <= last; i++ {
		v0, v1 := p.Verts[i], p.Verts[(i+1)%n]
		rl.DrawLineEx(
			rl.NewVector2(float32(ox+v0.X*scale), float32(oy+v0.Y*scale)),
			rl.NewVector2(float32(ox+v1.X*scale), float32(oy+v1.Y*scale)),
			thick, edge)
	}
}

func (a *axes) unload() {
	if a.hasTex {
		rl.UnloadTexture(a.tex)
		a.hasTex = false
	}
}

func toNRGBA(t *tensor.Tensor) *image.NRGBA {
	rows, cols := t.Shape()[0], t.Shape()[1]
	img := image.NewNRGBA(image.Rect(0, 0, cols, rows))
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			red, g, b, alpha := tensor.RGBA(t, r, c)
			img.SetNRGBA(c, r, color.NRGBA{
				R: u8(red), G: u8(g), B: u8(b), A: u8(alpha),
			})
		}
	}
	return img
}

func mustParse(c render.Color) render.RGBA {
	if rgba, ok := c.Parse(); ok {
		return rgba
	}
	return render.RGBA{R: 255, G: 255, B: 255, A: 1}
}

func toRaylib(c render.RGBA) rl.Color {
	return rl.NewColor(c.R, c.G, c.B, uint8(c.A*255+0.5))
}

func u8(v float64) uint8 {
	if v < 0 {
		v = 0
	}
	if v > 1 {
		v = 1
	}
	return uint8(v*255 + 0.5)
}
