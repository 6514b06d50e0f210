package sample

import (
	"reflect"
	"testing"
)

func TestAsElement(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want Element
	}{
		{"scalar", 3, Element{3}},
		{"string", "text", Element{"text"}},
		{"element", Element{1, 2}, Element{1, 2}},
		{"nil value", nil, Element{nil}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := AsElement(tt.in); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("AsElement(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestElement_Clone(t *testing.T) {
	e := Element{1, "a"}
	c := e.Clone()
	c[0] = 2
	if e[0] != 1 {
		t.Error("Clone did not create independent copy")
	}
	if e.Arity() != 2 {
		t.Errorf("Arity() = %d, want 2", e.Arity())
	}
}

func TestCols_Contains(t *testing.T) {
	tests := []struct {
		name string
		cols Cols
		idx  int
		want bool
	}{
		{"nil contains any", AllCols, 5, true},
		{"member", ColList(0, 2), 2, true},
		{"non-member", ColList(0, 2), 1, false},
		{"single", Col(1), 1, true},
		{"empty explicit", ColList(), 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.cols.Contains(tt.idx); got != tt.want {
				t.Errorf("Contains(%d) = %v, want %v", tt.idx, got, tt.want)
			}
		})
	}
}

func TestCols_Resolve(t *testing.T) {
	if got := AllCols.Resolve(3); !reflect.DeepEqual(got, []int{0, 1, 2}) {
		t.Errorf("nil Resolve(3) = %v", got)
	}
	if got := ColList(2, 0).Resolve(3); !reflect.DeepEqual(got, []int{2, 0}) {
		t.Errorf("explicit Resolve kept order: got %v", got)
	}
}

func TestColSet(t *testing.T) {
	s := NewColSet(3, 1, 3, 2)
	if len(s) != 3 {
		t.Errorf("duplicates should collapse: len = %d", len(s))
	}
	if got := s.Sorted(); !reflect.DeepEqual(got, []int{1, 2, 3}) {
		t.Errorf("Sorted() = %v, want [1 2 3]", got)
	}
}
