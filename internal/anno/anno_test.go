package anno

import (
	"math"
	"testing"

	"github.com/san-kum/samplescope/internal/render"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want Kind
	}{
		{"shape slice", []Shape{Rect{0, 0, 5, 5}}, KindShapes},
		{"typed slice", []Rect{{0, 0, 1, 1}}, KindShapes},
		{"any slice of shapes", []any{Circle{1, 1, 2}, Line{0, 0, 3, 3}}, KindShapes},
		{"empty slice", []Shape{}, KindShapes},
		{"string", "cat", KindLabel},
		{"int", 7, KindLabel},
		{"float", 0.93, KindLabel},
		{"nil", nil, KindLabel},
		{"mixed slice", []any{Rect{}, "oops"}, KindLabel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(tt.in).Kind(); got != tt.want {
				t.Errorf("Classify(%v).Kind() = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestClassify_Label(t *testing.T) {
	v := Classify(42)
	if v.Label() != "42" {
		t.Errorf("Label() = %q, want %q", v.Label(), "42")
	}
	if Classify("dog").Label() != "dog" {
		t.Error("string label should pass through")
	}
}

func TestPatches_OnePerDescriptor(t *testing.T) {
	shapes := []Shape{Rect{0, 0, 2, 2}, Circle{5, 5, 1}, Line{0, 0, 9, 9}}
	st := render.DefaultShapeStyle()
	ps := Patches(shapes, st)
	if len(ps) != 3 {
		t.Fatalf("len(Patches) = %d, want 3", len(ps))
	}
	for i, p := range ps {
		if p.Style != st {
			t.Errorf("patch %d style = %+v, want %+v", i, p.Style, st)
		}
	}
	if !ps[0].Closed || ps[2].Closed {
		t.Error("rect should be closed, line open")
	}
}

func TestRect_Vertices(t *testing.T) {
	vs := Rect{X: 1, Y: 2, W: 3, H: 4}.Vertices()
	want := []render.Vec{{X: 1, Y: 2}, {X: 4, Y: 2}, {X: 4, Y: 6}, {X: 1, Y: 6}}
	if len(vs) != 4 {
		t.Fatalf("rect has %d vertices", len(vs))
	}
	for i := range vs {
		if vs[i] != want[i] {
			t.Errorf("vertex %d = %v, want %v", i, vs[i], want[i])
		}
	}
}

func TestBounds(t *testing.T) {
	x0, y0, x1, y1 := Bounds(Circle{X: 10, Y: 10, R: 5})
	if math.Abs(x0-5) > 0.1 || math.Abs(y0-5) > 0.1 || math.Abs(x1-15) > 0.1 || math.Abs(y1-15) > 0.1 {
		t.Errorf("circle bounds = %v,%v,%v,%v", x0, y0, x1, y1)
	}
}
