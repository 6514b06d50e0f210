package sample

import "sort"

// Element is one sample flowing through a pipeline: an ordered,
// fixed-arity tuple of heterogeneous fields.
type Element []any

// AsElement wraps any value as an Element. A value that already is an
// Element passes through; anything else becomes a 1-tuple.
func AsElement(v any) Element {
	if e, ok := v.(Element); ok {
		return e
	}
	return Element{v}
}

// Arity returns the number of fields in the element.
func (e Element) Arity() int { return len(e) }

// Clone returns a shallow copy. Field values are shared.
func (e Element) Clone() Element {
	c := make(Element, len(e))
	copy(c, e)
	return c
}

// Cols selects element columns by position. A nil Cols selects all
// columns. Order is significant: viewers map columns to display
// surfaces by list position.
type Cols []int

// AllCols selects every column of an element.
var AllCols Cols

// Col selects a single column.
func Col(i int) Cols { return Cols{i} }

// ColList selects the given columns in order.
func ColList(is ...int) Cols { return Cols(is) }

// Contains reports whether column i is selected. A nil selector
// contains every index.
func (c Cols) Contains(i int) bool {
	if c == nil {
		return true
	}
	for _, v := range c {
		if v == i {
			return true
		}
	}
	return false
}

// Resolve expands the selector against an element arity. A nil selector
// resolves to 0..arity-1; an explicit selector resolves to itself.
func (c Cols) Resolve(arity int) []int {
	if c != nil {
		return c
	}
	all := make([]int, arity)
	for i := range all {
		all[i] = i
	}
	return all
}

// ColSet selects columns without order significance. Duplicates
// collapse.
type ColSet map[int]struct{}

// NewColSet builds a set from indices.
func NewColSet(is ...int) ColSet {
	s := make(ColSet, len(is))
	for _, i := range is {
		s[i] = struct{}{}
	}
	return s
}

// Sorted returns the member indices in ascending order. Iterating the
// sorted form keeps multi-column rendering deterministic.
func (s ColSet) Sorted() []int {
	out := make([]int, 0, len(s))
	for i := range s {
		out = append(out, i)
	}
	sort.Ints(out)
	return out
}
