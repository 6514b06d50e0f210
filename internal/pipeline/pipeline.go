// Package pipeline is the minimal upstream contract the viewers plug
// into: a source yields one element at a time, stages receive it, may
// produce side effects, and forward it unchanged. There is no engine,
// no buffering and no back channel.
package pipeline

import "github.com/san-kum/samplescope/internal/sample"

// Stage processes one element and forwards it. Viewers are stages that
// return their input unchanged.
type Stage interface {
	Process(sample.Element) (sample.Element, error)
}

// Func adapts a function to the Stage interface.
type Func func(sample.Element) (sample.Element, error)

func (f Func) Process(e sample.Element) (sample.Element, error) { return f(e) }

// Chain composes stages left to right into one stage.
func Chain(stages ...Stage) Stage {
	return Func(func(e sample.Element) (sample.Element, error) {
		var err error
		for _, s := range stages {
			if e, err = s.Process(e); err != nil {
				return e, err
			}
		}
		return e, nil
	})
}

// Source yields elements until exhaustion.
type Source interface {
	Next() (sample.Element, bool)
}

// SliceSource yields a fixed slice of elements.
type SliceSource struct {
	elems []sample.Element
	pos   int
}

func NewSliceSource(elems ...sample.Element) *SliceSource {
	return &SliceSource{elems: elems}
}

func (s *SliceSource) Next() (sample.Element, bool) {
	if s.pos >= len(s.elems) {
		return nil, false
	}
	e := s.elems[s.pos]
	s.pos++
	return e, true
}

// Take bounds a source to at most n elements.
func Take(src Source, n int) Source {
	return &takeSource{src: src, left: n}
}

type takeSource struct {
	src  Source
	left int
}

func (t *takeSource) Next() (sample.Element, bool) {
	if t.left <= 0 {
		return nil, false
	}
	t.left--
	return t.src.Next()
}

// Run drives the source through the stages until exhaustion or the
// first error, and returns the number of elements fully processed.
func Run(src Source, stages ...Stage) (int, error) {
	chain := Chain(stages...)
	n := 0
	for {
		e, ok := src.Next()
		if !ok {
			return n, nil
		}
		if _, err := chain.Process(e); err != nil {
			return n, err
		}
		n++
	}
}
