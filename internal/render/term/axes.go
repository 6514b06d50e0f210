package term

import (
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/san-kum/samplescope/internal/render"
	"github.com/san-kum/samplescope/internal/tensor"
)

const halfBlock = '▀'

// axes is one rectangular cell region of the screen. The image mapping
// (origin and scale in half-block pixels) is recomputed on every Image
// call so later overlays land on the right spot after a resize.
type axes struct {
	fig   *figure
	row   int
	col   int
	nrows int
	ncols int

	offX, offY, scale float64
}

// region returns the cell rectangle of this subplot, below the one-row
// title bar.
func (a *axes) region() (x0, y0, w, h int) {
	sw, sh := a.fig.screen.Size()
	cw := sw / a.ncols
	ch := (sh - 1) / a.nrows
	return a.col * cw, 1 + a.row*ch, cw, ch
}

func (a *axes) Clear() {
	x0, y0, w, h := a.region()
	for y := y0; y < y0+h; y++ {
		for x := x0; x < x0+w; x++ {
			a.fig.screen.SetContent(x, y, ' ', nil, tcell.StyleDefault)
		}
	}
}

// Image scales the tensor into the region with half-block cells, two
// vertical pixels per cell, preserving aspect ratio.
func (a *axes) Image(t *tensor.Tensor, opts render.ImageOptions) error {
	if !t.IsImage() {
		return tensor.ErrNotImage
	}
	x0, y0, w, h := a.region()
	if w <= 0 || h <= 0 {
		return nil
	}
	rows, cols := t.Shape()[0], t.Shape()[1]
	pw, ph := float64(w), float64(2*h)
	scale := math.Min(pw/float64(cols), ph/float64(rows))
	dw, dh := int(float64(cols)*scale), int(float64(rows)*scale)
	if dw < 1 {
		dw = 1
	}
	if dh < 1 {
		dh = 1
	}
	a.offX = (pw - float64(dw)) / 2
	a.offY = (ph - float64(dh)) / 2
	a.scale = scale

	cmap := colormap(opts.Colormap, a.fig.theme)
	bilinear := opts.Interpolation == "bilinear"

	for cy := 0; cy < h; cy++ {
		for cx := 0; cx < w; cx++ {
			top, okT := a.samplePixel(t, cx, 2*cy, dw, dh, bilinear, cmap)
			bot, okB := a.samplePixel(t, cx, 2*cy+1, dw, dh, bilinear, cmap)
			if !okT && !okB {
				continue
			}
			style := tcell.StyleDefault.Foreground(toTcell(top)).Background(toTcell(bot))
			a.fig.screen.SetContent(x0+cx, y0+cy, halfBlock, nil, style)
		}
	}
	return nil
}

// samplePixel maps the half-block pixel (px, py) back into the source
// image and returns its display color.
func (a *axes) samplePixel(t *tensor.Tensor, px, py, dw, dh int, bilinear bool, cmap func(float64) render.RGBA) (render.RGBA, bool) {
	ix := float64(px) - a.offX
	iy := float64(py) - a.offY
	if ix < 0 || iy < 0 || ix >= float64(dw) || iy >= float64(dh) {
		return render.RGBA{}, false
	}
	u := (ix + 0.5) / a.scale
	v := (iy + 0.5) / a.scale
	rows, cols := t.Shape()[0], t.Shape()[1]

	if !bilinear {
		r := clampInt(int(v), 0, rows-1)
		c := clampInt(int(u), 0, cols-1)
		return pixelColor(t, r, c, cmap), true
	}

	r0 := clampInt(int(v-0.5), 0, rows-1)
	c0 := clampInt(int(u-0.5), 0, cols-1)
	r1 := clampInt(r0+1, 0, rows-1)
	c1 := clampInt(c0+1, 0, cols-1)
	fr := clamp01(v - 0.5 - float64(r0))
	fc := clamp01(u - 0.5 - float64(c0))

	blendRow := func(r int) render.RGBA {
		return lerpRGBA(pixelColor(t, r, c0, cmap), pixelColor(t, r, c1, cmap), fc)
	}
	return lerpRGBA(blendRow(r0), blendRow(r1), fr), true
}

// AddPatch draws the patch outline at half-block resolution on top of
// the current image.
func (a *axes) AddPatch(p render.Patch) {
	color := mustParse(p.Style.EdgeColor)
	verts := p.Verts
	n := len(verts)
	if n == 0 {
		return
	}
	last := n - 1
	if !p.Closed {
		last = n - 2
	}
	for i := 0; i <= last; i++ {
		v0 := verts[i]
		v1 := verts[(i+1)%n]
		a.line(a.toPixel(v0), a.toPixel(v1), color)
	}
	// FaceColor is not honored: filling cells would hide the image.
}

type pix struct{ x, y int }

func (a *axes) toPixel(v render.Vec) pix {
	return pix{
		x: int(a.offX + v.X*a.scale),
		y: int(a.offY + v.Y*a.scale),
	}
}

// line is Bresenham stepping over half-block pixels.
func (a *axes) line(p0, p1 pix, color render.RGBA) {
	dx := absInt(p1.x - p0.x)
	dy := absInt(p1.y - p0.y)
	sx, sy := 1, 1
	if p0.x > p1.x {
		sx = -1
	}
	if p0.y > p1.y {
		sy = -1
	}
	err := dx - dy
	x, y := p0.x, p0.y
	for {
		a.setPixel(x, y, color)
		if x == p1.x && y == p1.y {
			return
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x += sx
		}
		if e2 < dx {
			err += dx
			y += sy
		}
	}
}

// setPixel colors one half-block pixel, preserving the other half of
// the cell.
func (a *axes) setPixel(px, py int, color render.RGBA) {
	x0, y0, w, h := a.region()
	cx, cy := px, py/2
	if cx < 0 || cy < 0 || cx >= w || cy >= h {
		return
	}
	sx, sy := x0+cx, y0+cy
	_, _, style, _ := a.fig.screen.GetContent(sx, sy)
	fg, bg, _ := style.Decompose()
	c := toTcell(color)
	if py%2 == 0 {
		fg = c
	} else {
		bg = c
	}
	a.fig.screen.SetContent(sx, sy, halfBlock, nil, tcell.StyleDefault.Foreground(fg).Background(bg))
}

// Text draws s starting at image coordinates (x, y). Size and family
// are ignored: terminal cells have one size.
func (a *axes) Text(x, y float64, s string, st render.TextStyle) {
	x0, y0, w, h := a.region()
	p := a.toPixel(render.Vec{X: x, Y: y})
	cx, cy := p.x, p.y/2
	if cy < 0 || cy >= h {
		return
	}
	style := tcell.StyleDefault.Foreground(toTcell(mustParse(st.Color)))
	if bg, ok := st.Background.Parse(); ok {
		style = style.Background(toTcell(bg))
	}
	for _, r := range s {
		if cx >= w {
			break
		}
		if cx >= 0 {
			a.fig.screen.SetContent(x0+cx, y0+cy, r, nil, style)
		}
		cx++
	}
}

// HeightPx reports the region height in half-block pixels.
func (a *axes) HeightPx() int {
	_, _, _, h := a.region()
	return 2 * h
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
