// Package anno models per-sample image annotations: geometric shape
// descriptors and opaque text labels, plus the classification step that
// decides which of the two a runtime value is.
package anno

import (
	"fmt"
	"math"
	"reflect"

	"github.com/san-kum/samplescope/internal/render"
)

// circleSegments controls the polyline approximation of curved shapes.
const circleSegments = 32

// Shape is one geometric annotation descriptor. Coordinates are image
// coordinates (x = column, y = row).
type Shape interface {
	// Vertices returns the outline polyline.
	Vertices() []render.Vec

	// Closed reports whether the outline loops back to the start.
	Closed() bool
}

// Rect is an axis-aligned box anchored at its top-left corner.
type Rect struct {
	X, Y, W, H float64
}

func (r Rect) Vertices() []render.Vec {
	return []render.Vec{
		{X: r.X, Y: r.Y},
		{X: r.X + r.W, Y: r.Y},
		{X: r.X + r.W, Y: r.Y + r.H},
		{X: r.X, Y: r.Y + r.H},
	}
}

func (r Rect) Closed() bool { return true }

// Circle is a circle centered at (X, Y).
type Circle struct {
	X, Y, R float64
}

func (c Circle) Vertices() []render.Vec {
	return arc(c.X, c.Y, c.R, c.R)
}

func (c Circle) Closed() bool { return true }

// Ellipse is an axis-aligned ellipse centered at (X, Y).
type Ellipse struct {
	X, Y, RX, RY float64
}

func (e Ellipse) Vertices() []render.Vec {
	return arc(e.X, e.Y, e.RX, e.RY)
}

func (e Ellipse) Closed() bool { return true }

// Polygon is an arbitrary closed outline.
type Polygon struct {
	Points []render.Vec
}

func (p Polygon) Vertices() []render.Vec { return p.Points }
func (p Polygon) Closed() bool           { return true }

// Line is an open segment.
type Line struct {
	X1, Y1, X2, Y2 float64
}

func (l Line) Vertices() []render.Vec {
	return []render.Vec{{X: l.X1, Y: l.Y1}, {X: l.X2, Y: l.Y2}}
}

func (l Line) Closed() bool { return false }

// Point marks a single position, drawn as a small diamond.
type Point struct {
	X, Y float64
}

func (p Point) Vertices() []render.Vec {
	return []render.Vec{
		{X: p.X, Y: p.Y - 1},
		{X: p.X + 1, Y: p.Y},
		{X: p.X, Y: p.Y + 1},
		{X: p.X - 1, Y: p.Y},
	}
}

func (p Point) Closed() bool { return true }

func arc(cx, cy, rx, ry float64) []render.Vec {
	vs := make([]render.Vec, circleSegments)
	for i := range vs {
		a := 2 * math.Pi * float64(i) / circleSegments
		vs[i] = render.Vec{X: cx + rx*math.Cos(a), Y: cy + ry*math.Sin(a)}
	}
	return vs
}

// Bounds returns the bounding box of a shape's outline.
func Bounds(s Shape) (x0, y0, x1, y1 float64) {
	vs := s.Vertices()
	if len(vs) == 0 {
		return 0, 0, 0, 0
	}
	x0, y0 = vs[0].X, vs[0].Y
	x1, y1 = x0, y0
	for _, v := range vs[1:] {
		x0 = math.Min(x0, v.X)
		y0 = math.Min(y0, v.Y)
		x1 = math.Max(x1, v.X)
		y1 = math.Max(y1, v.Y)
	}
	return x0, y0, x1, y1
}

// Kind discriminates the two annotation cases.
type Kind int

const (
	// KindShapes is a sequence of geometric descriptors.
	KindShapes Kind = iota
	// KindLabel is an opaque value rendered as text.
	KindLabel
)

// Value is a classified annotation field: either shapes or a label,
// decided once when the value enters the viewer.
type Value struct {
	kind   Kind
	shapes []Shape
	label  string
}

func (v Value) Kind() Kind      { return v.kind }
func (v Value) Shapes() []Shape { return v.shapes }
func (v Value) Label() string   { return v.label }

// Classify inspects a runtime annotation value. Slices and arrays whose
// elements all implement Shape classify as KindShapes; everything else,
// including mixed sequences, is an opaque label.
func Classify(v any) Value {
	if shapes, ok := asShapes(v); ok {
		return Value{kind: KindShapes, shapes: shapes}
	}
	return Value{kind: KindLabel, label: fmt.Sprintf("%v", v)}
}

func asShapes(v any) ([]Shape, bool) {
	if s, ok := v.([]Shape); ok {
		return s, true
	}
	rv := reflect.ValueOf(v)
	if !rv.IsValid() || (rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array) {
		return nil, false
	}
	out := make([]Shape, rv.Len())
	for i := range out {
		s, ok := rv.Index(i).Interface().(Shape)
		if !ok {
			return nil, false
		}
		out[i] = s
	}
	return out, true
}

// Patches translates shape descriptors into drawable patches, one patch
// per descriptor, all sharing the given style.
func Patches(shapes []Shape, st render.LineStyle) []render.Patch {
	ps := make([]render.Patch, len(shapes))
	for i, s := range shapes {
		ps[i] = render.Patch{Verts: s.Vertices(), Closed: s.Closed(), Style: st}
	}
	return ps
}
