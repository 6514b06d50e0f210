package tensor

import (
	"math"
	"reflect"
	"testing"
)

func TestShapeStr(t *testing.T) {
	tests := []struct {
		shape []int
		want  string
	}{
		{[]int{10, 20, 3}, "10x20x3"},
		{[]int{5}, "5"},
		{[]int{2, 2}, "2x2"},
	}

	for _, tt := range tests {
		if got := Zeros(tt.shape...).ShapeStr(); got != tt.want {
			t.Errorf("ShapeStr(%v) = %q, want %q", tt.shape, got, tt.want)
		}
	}
}

func TestMinMax(t *testing.T) {
	tr := New(Float64, []float64{3, -1, 7, 0}, 2, 2)
	if tr.Min() != -1 {
		t.Errorf("Min() = %v, want -1", tr.Min())
	}
	if tr.Max() != 7 {
		t.Errorf("Max() = %v, want 7", tr.Max())
	}

	z := Zeros(10, 20, 3)
	if z.Min() != 0 || z.Max() != 0 {
		t.Errorf("zero tensor range = %v..%v, want 0..0", z.Min(), z.Max())
	}
}

func TestAtSet(t *testing.T) {
	tr := Zeros(3, 4)
	tr.Set(2.5, 1, 2)
	if got := tr.At(1, 2); got != 2.5 {
		t.Errorf("At(1,2) = %v, want 2.5", got)
	}
	// row-major layout: offset = 1*4 + 2
	if tr.Data()[6] != 2.5 {
		t.Error("Set did not use row-major layout")
	}
}

func TestSqueeze(t *testing.T) {
	tests := []struct {
		name  string
		shape []int
		want  []int
	}{
		{"trailing singleton", []int{10, 20, 1}, []int{10, 20}},
		{"no singleton", []int{10, 20, 3}, []int{10, 20, 3}},
		{"middle singleton", []int{4, 1, 5}, []int{4, 5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sq := Zeros(tt.shape...).Squeeze()
			if !reflect.DeepEqual(sq.Shape(), tt.want) {
				t.Errorf("Squeeze shape = %v, want %v", sq.Shape(), tt.want)
			}
		})
	}
}

func TestSqueeze_SharesData(t *testing.T) {
	tr := Zeros(2, 2, 1)
	sq := tr.Squeeze()
	sq.Set(9, 1, 1)
	if tr.At(1, 1, 0) != 9 {
		t.Error("Squeeze should return a view over the same data")
	}
}

func TestIsImage(t *testing.T) {
	tests := []struct {
		shape []int
		want  bool
	}{
		{[]int{10, 20}, true},
		{[]int{10, 20, 3}, true},
		{[]int{10, 20, 4}, true},
		{[]int{10, 20, 2}, false},
		{[]int{10}, false},
		{[]int{2, 3, 4, 5}, false},
	}

	for _, tt := range tests {
		if got := Zeros(tt.shape...).IsImage(); got != tt.want {
			t.Errorf("IsImage(%v) = %v, want %v", tt.shape, got, tt.want)
		}
	}
}

func TestDTypeNormalization(t *testing.T) {
	u := New(Uint8, []float64{255, 0, 127.5, 255}, 2, 2)
	if got := Gray(u, 0, 0); got != 1 {
		t.Errorf("Gray uint8 255 = %v, want 1", got)
	}
	f := New(Float64, []float64{0.25}, 1, 1)
	if got := Gray(f, 0, 0); got != 0.25 {
		t.Errorf("Gray float64 0.25 = %v, want 0.25", got)
	}
}

func TestRGBA(t *testing.T) {
	rgb := New(Uint8, []float64{255, 0, 0}, 1, 1, 3)
	r, g, b, a := RGBA(rgb, 0, 0)
	if r != 1 || g != 0 || b != 0 || a != 1 {
		t.Errorf("RGBA = %v,%v,%v,%v want 1,0,0,1", r, g, b, a)
	}

	gray := New(Float64, []float64{0.5}, 1, 1)
	r, g, b, _ = RGBA(gray, 0, 0)
	if r != 0.5 || g != 0.5 || b != 0.5 {
		t.Error("grayscale RGBA should replicate luminance")
	}

	lum := Gray(rgb, 0, 0)
	if math.Abs(lum-0.299) > 1e-9 {
		t.Errorf("Gray of pure red = %v, want 0.299", lum)
	}
}

func TestClone_Independent(t *testing.T) {
	a := Full(1, 2, 2)
	b := a.Clone()
	b.Set(5, 0, 0)
	if a.At(0, 0) != 1 {
		t.Error("Clone shares data with original")
	}
}
