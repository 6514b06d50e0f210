package view

import (
	"strings"
	"testing"

	"github.com/san-kum/samplescope/internal/sample"
	"github.com/san-kum/samplescope/internal/tensor"
)

func TestInspector_Report(t *testing.T) {
	var out strings.Builder
	ci := NewColumnInspector(sample.AllCols, InspectorOptions{Out: &out})

	e := sample.Element{tensor.Zeros(10, 20, 3), 1}
	got, err := ci.Process(e)
	if err != nil {
		t.Fatalf("Process() error = %v", err)
	}
	if got.Arity() != 2 || got[1] != 1 {
		t.Error("Process should return the element unchanged")
	}

	want := "item 0: <element>\n" +
		"  0: <tensor> shape:10x20x3 dtype:float64 range:0.0..0.0\n" +
		"  1: <int> 1\n"
	if out.String() != want {
		t.Errorf("report = %q, want %q", out.String(), want)
	}
}

func TestInspector_CounterMonotonic(t *testing.T) {
	var out strings.Builder
	ci := NewColumnInspector(sample.AllCols, InspectorOptions{Out: &out})

	for i := 0; i < 4; i++ {
		if _, err := ci.Process(sample.Element{i}); err != nil {
			t.Fatalf("Process() error = %v", err)
		}
	}
	lines := strings.Split(out.String(), "\n")
	var items []string
	for _, l := range lines {
		if strings.HasPrefix(l, "item ") {
			items = append(items, l)
		}
	}
	if len(items) != 4 {
		t.Fatalf("got %d item headers, want 4", len(items))
	}
	for i, l := range items {
		if !strings.HasPrefix(l, "item "+string(rune('0'+i))) {
			t.Errorf("header %d = %q", i, l)
		}
	}
	if ci.Count() != 4 {
		t.Errorf("Count() = %d, want 4", ci.Count())
	}
}

func TestInspector_ColumnFiltering(t *testing.T) {
	var out strings.Builder
	ci := NewColumnInspector(sample.Col(1), InspectorOptions{Out: &out})

	if _, err := ci.Process(sample.Element{1, 2}); err != nil {
		t.Fatalf("Process() error = %v", err)
	}
	rep := out.String()
	if strings.Contains(rep, "  0:") {
		t.Errorf("column 0 should be filtered out: %q", rep)
	}
	if !strings.Contains(rep, "  1: <int> 2") {
		t.Errorf("column 1 missing: %q", rep)
	}
}

func TestInspector_StringAndFloatFields(t *testing.T) {
	var out strings.Builder
	ci := NewColumnInspector(sample.AllCols, InspectorOptions{Out: &out})
	if _, err := ci.Process(sample.Element{"text", 0.5}); err != nil {
		t.Fatalf("Process() error = %v", err)
	}
	rep := out.String()
	if !strings.Contains(rep, "  0: <string> text") {
		t.Errorf("string field: %q", rep)
	}
	if !strings.Contains(rep, "  1: <float64> 0.5") {
		t.Errorf("float field: %q", rep)
	}
}

func TestInspector_Uint8Range(t *testing.T) {
	var out strings.Builder
	ci := NewColumnInspector(sample.AllCols, InspectorOptions{Out: &out})
	img := tensor.New(tensor.Uint8, []float64{0, 255, 10, 20}, 2, 2)
	if _, err := ci.Process(sample.Element{img}); err != nil {
		t.Fatalf("Process() error = %v", err)
	}
	if !strings.Contains(out.String(), "dtype:uint8 range:0..255") {
		t.Errorf("uint8 range: %q", out.String())
	}
}

func TestInspector_ReportDoesNotAdvance(t *testing.T) {
	ci := NewColumnInspector(sample.AllCols, InspectorOptions{Out: &strings.Builder{}})
	e := sample.Element{1}
	r1 := ci.Report(e)
	r2 := ci.Report(e)
	if r1 != r2 {
		t.Error("Report should not advance the counter")
	}
	if ci.Count() != 0 {
		t.Errorf("Count() after Report = %d, want 0", ci.Count())
	}
}

func TestInspector_Stats(t *testing.T) {
	ci := NewColumnInspector(sample.AllCols, InspectorOptions{Out: &strings.Builder{}})
	for i := 0; i < 3; i++ {
		img := tensor.Full(float64(i), 4, 4)
		if _, err := ci.Process(sample.Element{img, "lbl"}); err != nil {
			t.Fatalf("Process() error = %v", err)
		}
	}
	st := ci.Stats()[0]
	if st == nil || st.Count != 3 {
		t.Fatalf("column 0 stats = %+v", st)
	}
	if len(st.Maxs) != 3 || st.Maxs[2] != 2 {
		t.Errorf("Maxs = %v", st.Maxs)
	}
	if ci.Stats()[1].Mins != nil {
		t.Error("non-tensor column should not record ranges")
	}
}
