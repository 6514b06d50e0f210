// Package source provides synthetic sample streams for demos and
// tests. Each source is an infinite generator of fixed-arity elements;
// bound it with pipeline.Take.
package source

import (
	"fmt"
	"math"
	"math/rand"
	"sort"

	"github.com/san-kum/samplescope/internal/anno"
	"github.com/san-kum/samplescope/internal/pipeline"
	"github.com/san-kum/samplescope/internal/sample"
	"github.com/san-kum/samplescope/internal/tensor"
)

// New returns the named source, or an error listing the known names.
func New(name string, w, h int) (pipeline.Source, error) {
	switch name {
	case "gradient":
		return Gradient(w, h), nil
	case "noise":
		return Noise(w, h, 42), nil
	case "bounce":
		return Bounce(w, h), nil
	default:
		return nil, fmt.Errorf("source: unknown source %q (have %v)", name, Names())
	}
}

// Names lists the available sources in stable order.
func Names() []string {
	names := []string{"gradient", "noise", "bounce"}
	sort.Strings(names)
	return names
}

// Gradient yields (image, label): a diagonal grayscale gradient whose
// phase advances each frame.
func Gradient(w, h int) pipeline.Source {
	frame := 0
	return sourceFunc(func() (sample.Element, bool) {
		img := tensor.Zeros(h, w)
		phase := float64(frame) * 0.15
		for r := 0; r < h; r++ {
			for c := 0; c < w; c++ {
				v := 0.5 + 0.5*math.Sin(phase+float64(r+c)/float64(w+h)*2*math.Pi)
				img.Set(v, r, c)
			}
		}
		e := sample.Element{img, fmt.Sprintf("frame %d", frame)}
		frame++
		return e, true
	})
}

// Noise yields (image, label): uint8 RGB noise plus a text label with
// the frame index.
func Noise(w, h int, seed int64) pipeline.Source {
	rng := rand.New(rand.NewSource(seed))
	frame := 0
	return sourceFunc(func() (sample.Element, bool) {
		data := make([]float64, h*w*3)
		for i := range data {
			data[i] = float64(rng.Intn(256))
		}
		img := tensor.New(tensor.Uint8, data, h, w, 3)
		e := sample.Element{img, fmt.Sprintf("noise %d", frame)}
		frame++
		return e, true
	})
}

// Bounce yields (image, shapes, label): a ball bouncing inside the
// frame, its outline and bounding box as shape annotations, and a
// position label. Exercises both annotation kinds.
func Bounce(w, h int) pipeline.Source {
	x, y := float64(w)/2, float64(h)/2
	vx, vy := float64(w)/40+1, float64(h)/55+1
	radius := math.Max(2, float64(minInt(w, h))/10)
	return sourceFunc(func() (sample.Element, bool) {
		x += vx
		y += vy
		if x < radius || x > float64(w)-radius {
			vx = -vx
			x += 2 * vx
		}
		if y < radius || y > float64(h)-radius {
			vy = -vy
			y += 2 * vy
		}

		img := tensor.New(tensor.Uint8, make([]float64, h*w*3), h, w, 3)
		for r := 0; r < h; r++ {
			for c := 0; c < w; c++ {
				d := math.Hypot(float64(c)-x, float64(r)-y)
				if d <= radius {
					img.Set(230, r, c, 0)
					img.Set(90, r, c, 1)
					img.Set(40, r, c, 2)
				} else {
					img.Set(20, r, c, 2)
				}
			}
		}
		shapes := []anno.Shape{
			anno.Circle{X: x, Y: y, R: radius},
			anno.Rect{X: x - radius, Y: y - radius, W: 2 * radius, H: 2 * radius},
		}
		label := fmt.Sprintf("ball (%.0f,%.0f)", x, y)
		return sample.Element{img, shapes, label}, true
	})
}

type sourceFunc func() (sample.Element, bool)

func (f sourceFunc) Next() (sample.Element, bool) { return f() }

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
