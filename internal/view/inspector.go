package view

import (
	"fmt"
	"io"
	"math"
	"os"
	"reflect"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/san-kum/samplescope/internal/sample"
	"github.com/san-kum/samplescope/internal/tensor"
)

// statsCapacity bounds the per-column min/max history kept for trend
// charts.
const statsCapacity = 600

var (
	itemStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true)
	fieldStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
)

// ColumnStats accumulates per-column tensor statistics across calls.
type ColumnStats struct {
	Count    int       `json:"count"`
	TypeName string    `json:"type"`
	Mins     []float64 `json:"mins,omitempty"`
	Maxs     []float64 `json:"maxs,omitempty"`
}

func (s *ColumnStats) observe(v any) {
	s.Count++
	s.TypeName = typeName(v)
	t, ok := v.(*tensor.Tensor)
	if !ok {
		return
	}
	s.Mins = append(s.Mins, t.Min())
	s.Maxs = append(s.Maxs, t.Max())
	if len(s.Mins) > statsCapacity {
		s.Mins = s.Mins[1:]
		s.Maxs = s.Maxs[1:]
	}
}

// InspectorOptions configure a ColumnInspector. The zero value writes
// plain text to stdout.
type InspectorOptions struct {
	// Out receives the reports. Defaults to os.Stdout.
	Out io.Writer

	// Styled renders reports with terminal colors.
	Styled bool
}

// ColumnInspector prints a structural report for every element passing
// through it: per-column runtime type, and shape/dtype/range for tensor
// columns. It holds a call counter and running statistics but never
// buffers the stream.
type ColumnInspector struct {
	cols   sample.Cols
	out    io.Writer
	styled bool
	cnt    int
	stats  map[int]*ColumnStats
}

// NewColumnInspector builds an inspector reporting on the selected
// columns. A nil selector reports on all columns.
func NewColumnInspector(cols sample.Cols, opts InspectorOptions) *ColumnInspector {
	out := opts.Out
	if out == nil {
		out = os.Stdout
	}
	return &ColumnInspector{
		cols:   cols,
		out:    out,
		styled: opts.Styled,
		stats:  make(map[int]*ColumnStats),
	}
}

// Process prints the report for e, advances the item counter and
// returns e unchanged.
func (ci *ColumnInspector) Process(e sample.Element) (sample.Element, error) {
	fmt.Fprint(ci.out, ci.render(e, ci.cnt))
	ci.cnt++
	for i, v := range e {
		if !ci.cols.Contains(i) {
			continue
		}
		st, ok := ci.stats[i]
		if !ok {
			st = &ColumnStats{}
			ci.stats[i] = st
		}
		st.observe(v)
	}
	return e, nil
}

// Report renders the report for e at the current counter position
// without printing, counting or recording statistics.
func (ci *ColumnInspector) Report(e sample.Element) string {
	return ci.render(e, ci.cnt)
}

// Count returns the number of items processed so far.
func (ci *ColumnInspector) Count() int { return ci.cnt }

// Stats returns the per-column running statistics, keyed by column
// index.
func (ci *ColumnInspector) Stats() map[int]*ColumnStats { return ci.stats }

func (ci *ColumnInspector) render(e sample.Element, n int) string {
	var b strings.Builder
	b.WriteString(ci.item(fmt.Sprintf("item %d: <%s>", n, typeName(e))))
	b.WriteByte('\n')
	for i, v := range e {
		if !ci.cols.Contains(i) {
			continue
		}
		b.WriteString(ci.field(fmt.Sprintf("  %d: <%s> %s", i, typeName(v), describe(v))))
		b.WriteByte('\n')
	}
	return b.String()
}

func (ci *ColumnInspector) item(s string) string {
	if ci.styled {
		return itemStyle.Render(s)
	}
	return s
}

func (ci *ColumnInspector) field(s string) string {
	if ci.styled {
		return fieldStyle.Render(s)
	}
	return s
}

func describe(v any) string {
	if t, ok := v.(*tensor.Tensor); ok {
		return fmt.Sprintf("shape:%s dtype:%s range:%s..%s",
			t.ShapeStr(), t.DType(), fnum(t.Min(), t.DType()), fnum(t.Max(), t.DType()))
	}
	return fmt.Sprintf("%v", v)
}

// typeName returns a short runtime type name: "tensor" for tensors,
// "element" for tuples, the bare Go type name otherwise.
func typeName(v any) string {
	switch v.(type) {
	case nil:
		return "nil"
	case *tensor.Tensor:
		return "tensor"
	case sample.Element:
		return "element"
	}
	t := reflect.TypeOf(v)
	if name := t.Name(); name != "" {
		return name
	}
	return t.String()
}

// fnum formats a statistic the way the report promises: float64 values
// always carry a decimal point ("0.0"), uint8 values print as integers.
func fnum(v float64, d tensor.DType) string {
	if d == tensor.Uint8 {
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
	if v == math.Trunc(v) && math.Abs(v) < 1e15 {
		return strconv.FormatFloat(v, 'f', 1, 64)
	}
	return strconv.FormatFloat(v, 'g', -1, 64)
}
