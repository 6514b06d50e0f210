package term

import (
	"github.com/gdamore/tcell/v2"

	"github.com/san-kum/samplescope/internal/render"
	"github.com/san-kum/samplescope/internal/tensor"
)

// mustParse resolves a color spec, falling back to white for None.
func mustParse(c render.Color) render.RGBA {
	if rgba, ok := c.Parse(); ok {
		return rgba
	}
	return render.RGBA{R: 255, G: 255, B: 255, A: 1}
}

func toTcell(c render.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// colormap returns the luminance-to-color mapping for grayscale
// images: "gray" (default), "hot", or "theme" which uses the active
// theme's ramp.
func colormap(name string, th Theme) func(float64) render.RGBA {
	switch name {
	case "theme":
		return func(v float64) render.RGBA {
			return lerpRGBA(th.RampLo, th.RampHi, v)
		}
	case "hot":
		return func(v float64) render.RGBA {
			// black -> red -> yellow -> white
			switch {
			case v < 1.0/3:
				return render.RGBA{R: u8(3 * v), A: 1}
			case v < 2.0/3:
				return render.RGBA{R: 255, G: u8(3*v - 1), A: 1}
			default:
				return render.RGBA{R: 255, G: 255, B: u8(3*v - 2), A: 1}
			}
		}
	default:
		return func(v float64) render.RGBA {
			g := u8(v)
			return render.RGBA{R: g, G: g, B: g, A: 1}
		}
	}
}

// pixelColor resolves the display color of one source pixel: RGB
// tensors use their channels, grayscale tensors go through the
// colormap.
func pixelColor(t *tensor.Tensor, r, c int, cmap func(float64) render.RGBA) render.RGBA {
	if t.Rank() == 2 {
		return cmap(tensor.Gray(t, r, c))
	}
	red, g, b, a := tensor.RGBA(t, r, c)
	return render.RGBA{R: u8(red * a), G: u8(g * a), B: u8(b * a), A: 1}
}

func lerpRGBA(a, b render.RGBA, t float64) render.RGBA {
	t = clamp01(t)
	return render.RGBA{
		R: uint8(float64(a.R) + t*(float64(b.R)-float64(a.R))),
		G: uint8(float64(a.G) + t*(float64(b.G)-float64(a.G))),
		B: uint8(float64(a.B) + t*(float64(b.B)-float64(a.B))),
		A: 1,
	}
}

func u8(v float64) uint8 {
	v = clamp01(v)
	return uint8(v*255 + 0.5)
}
