package tensor

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrNotImage indicates a tensor whose shape cannot be displayed as an
// image (rank must be 2, or 3 with 3 or 4 channels, after Squeeze).
var ErrNotImage = errors.New("tensor: shape is not displayable as an image")

// DType tags the logical element type of a tensor. Data is stored as
// float64 regardless; the tag controls display and normalization.
type DType int

const (
	Float64 DType = iota
	Uint8
)

func (d DType) String() string {
	switch d {
	case Uint8:
		return "uint8"
	default:
		return "float64"
	}
}

// Tensor is an n-dimensional numeric array in row-major layout.
type Tensor struct {
	shape []int
	data  []float64
	dtype DType
}

// New builds a tensor around existing data. len(data) must equal the
// product of the shape.
func New(dtype DType, data []float64, shape ...int) *Tensor {
	n := 1
	for _, s := range shape {
		n *= s
	}
	if n != len(data) {
		panic(fmt.Sprintf("tensor: data length %d does not match shape %v", len(data), shape))
	}
	return &Tensor{shape: append([]int(nil), shape...), data: data, dtype: dtype}
}

// Zeros returns a zero-filled float64 tensor.
func Zeros(shape ...int) *Tensor {
	n := 1
	for _, s := range shape {
		n *= s
	}
	return New(Float64, make([]float64, n), shape...)
}

// Full returns a tensor filled with v.
func Full(v float64, shape ...int) *Tensor {
	t := Zeros(shape...)
	for i := range t.data {
		t.data[i] = v
	}
	return t
}

func (t *Tensor) Shape() []int { return t.shape }
func (t *Tensor) Rank() int    { return len(t.shape) }
func (t *Tensor) Len() int     { return len(t.data) }
func (t *Tensor) DType() DType { return t.dtype }

// Data exposes the flat backing slice. Mutations are visible to all
// views sharing it.
func (t *Tensor) Data() []float64 { return t.data }

func (t *Tensor) offset(idx []int) int {
	if len(idx) != len(t.shape) {
		panic(fmt.Sprintf("tensor: %d indices for rank %d", len(idx), len(t.shape)))
	}
	off := 0
	for i, ix := range idx {
		off = off*t.shape[i] + ix
	}
	return off
}

// At returns the element at the given multi-index.
func (t *Tensor) At(idx ...int) float64 { return t.data[t.offset(idx)] }

// Set stores v at the given multi-index.
func (t *Tensor) Set(v float64, idx ...int) { t.data[t.offset(idx)] = v }

// Min returns the smallest element. Zero for an empty tensor.
func (t *Tensor) Min() float64 {
	if len(t.data) == 0 {
		return 0
	}
	min := t.data[0]
	for _, v := range t.data[1:] {
		if v < min {
			min = v
		}
	}
	return min
}

// Max returns the largest element. Zero for an empty tensor.
func (t *Tensor) Max() float64 {
	if len(t.data) == 0 {
		return 0
	}
	max := t.data[0]
	for _, v := range t.data[1:] {
		if v > max {
			max = v
		}
	}
	return max
}

// ShapeStr renders the shape as "d1xd2x...".
func (t *Tensor) ShapeStr() string {
	parts := make([]string, len(t.shape))
	for i, s := range t.shape {
		parts[i] = strconv.Itoa(s)
	}
	return strings.Join(parts, "x")
}

// Squeeze drops every singleton axis, e.g. MxNx1 becomes MxN. The
// returned tensor shares the backing data.
func (t *Tensor) Squeeze() *Tensor {
	shape := make([]int, 0, len(t.shape))
	for _, s := range t.shape {
		if s != 1 {
			shape = append(shape, s)
		}
	}
	return &Tensor{shape: shape, data: t.data, dtype: t.dtype}
}

// Clone returns a deep copy.
func (t *Tensor) Clone() *Tensor {
	data := make([]float64, len(t.data))
	copy(data, t.data)
	return New(t.dtype, data, t.shape...)
}

// IsImage reports whether the tensor is displayable: rank 2 (grayscale)
// or rank 3 with 3 (RGB) or 4 (RGBA) channels.
func (t *Tensor) IsImage() bool {
	switch t.Rank() {
	case 2:
		return true
	case 3:
		c := t.shape[2]
		return c == 3 || c == 4
	default:
		return false
	}
}

// norm maps a stored value to [0,1] according to the dtype tag.
func (t *Tensor) norm(v float64) float64 {
	if t.dtype == Uint8 {
		v /= 255
	}
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Gray returns the normalized luminance at (row, col) for a displayable
// image tensor.
func Gray(t *Tensor, r, c int) float64 {
	if t.Rank() == 2 {
		return t.norm(t.At(r, c))
	}
	// Rec. 601 luma
	red, g, b, _ := RGBA(t, r, c)
	return 0.299*red + 0.587*g + 0.114*b
}

// RGBA returns normalized color channels at (row, col). Grayscale
// tensors replicate luminance; missing alpha is 1.
func RGBA(t *Tensor, r, c int) (red, g, b, a float64) {
	if t.Rank() == 2 {
		v := t.norm(t.At(r, c))
		return v, v, v, 1
	}
	red = t.norm(t.At(r, c, 0))
	g = t.norm(t.At(r, c, 1))
	b = t.norm(t.At(r, c, 2))
	a = 1
	if t.shape[2] == 4 {
		a = t.norm(t.At(r, c, 3))
	}
	return red, g, b, a
}
