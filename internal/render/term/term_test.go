package term

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/san-kum/samplescope/internal/anno"
	"github.com/san-kum/samplescope/internal/render"
	"github.com/san-kum/samplescope/internal/tensor"
)

// newSimFigure builds a figure over a tcell simulation screen.
func newSimFigure(t *testing.T, title string) (render.Figure, tcell.SimulationScreen) {
	t.Helper()
	var sim tcell.SimulationScreen
	b := NewBackend("mono")
	b.newScreen = func() (tcell.Screen, error) {
		sim = tcell.NewSimulationScreen("UTF-8")
		return sim, nil
	}
	fig, err := b.NewFigure(render.FigureConfig{Title: title})
	if err != nil {
		t.Fatalf("NewFigure() error = %v", err)
	}
	t.Cleanup(func() { fig.Close() })
	return fig, sim
}

func TestFigure_ImageFillsCells(t *testing.T) {
	fig, sim := newSimFigure(t, "test")
	ax, err := fig.Subplot(0, 0, 1, 1)
	if err != nil {
		t.Fatalf("Subplot() error = %v", err)
	}

	if err := ax.Image(tensor.Full(1, 10, 10), render.ImageOptions{}); err != nil {
		t.Fatalf("Image() error = %v", err)
	}
	fig.Draw()

	cells, w, h := sim.GetContents()
	blocks := 0
	for _, c := range cells {
		if len(c.Runes) > 0 && c.Runes[0] == halfBlock {
			blocks++
		}
	}
	if blocks == 0 {
		t.Errorf("no half-block cells drawn on a %dx%d screen", w, h)
	}
}

func TestFigure_SubplotOutOfGrid(t *testing.T) {
	fig, _ := newSimFigure(t, "test")
	if _, err := fig.Subplot(2, 0, 2, 1); err == nil {
		t.Error("expected error for subplot outside the grid")
	}
}

func TestFigure_WaitTimesOut(t *testing.T) {
	fig, _ := newSimFigure(t, "test")
	start := time.Now()
	if fig.Wait(20 * time.Millisecond) {
		t.Error("Wait should report no key on timeout")
	}
	if time.Since(start) > 500*time.Millisecond {
		t.Error("Wait blocked far past its timeout")
	}
}

func TestFigure_WaitWakesOnKey(t *testing.T) {
	fig, sim := newSimFigure(t, "test")
	sim.InjectKey(tcell.KeyRune, ' ', tcell.ModNone)
	if !fig.Wait(2 * time.Second) {
		t.Error("Wait should wake on an injected key")
	}
}

func TestFigure_StopRequested(t *testing.T) {
	fig, sim := newSimFigure(t, "test")
	f := fig.(*figure)
	if f.StopRequested() {
		t.Fatal("no stop requested yet")
	}
	sim.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)
	if !fig.Wait(2 * time.Second) {
		t.Fatal("Wait should see the q key")
	}
	if !f.StopRequested() {
		t.Error("q should request a stop")
	}
}

func TestAxes_NonImageTensor(t *testing.T) {
	fig, _ := newSimFigure(t, "test")
	ax, _ := fig.Subplot(0, 0, 1, 1)
	if err := ax.Image(tensor.Zeros(5), render.ImageOptions{}); err == nil {
		t.Error("rank-1 tensor should be rejected")
	}
}

func TestAxes_PatchAndText(t *testing.T) {
	fig, sim := newSimFigure(t, "test")
	ax, _ := fig.Subplot(0, 0, 1, 1)
	if err := ax.Image(tensor.Zeros(20, 20), render.ImageOptions{}); err != nil {
		t.Fatalf("Image() error = %v", err)
	}

	ps := anno.Patches([]anno.Shape{anno.Rect{X: 2, Y: 2, W: 10, H: 10}}, render.DefaultShapeStyle())
	for _, p := range ps {
		ax.AddPatch(p)
	}
	ax.Text(1, 5, "hello", render.DefaultTextStyle())
	fig.Draw()

	cells, _, _ := sim.GetContents()
	found := false
	for _, c := range cells {
		if len(c.Runes) > 0 && c.Runes[0] == 'h' {
			found = true
		}
	}
	if !found {
		t.Error("text overlay not drawn")
	}
}

func TestColormaps(t *testing.T) {
	th := GetTheme("green")
	tests := []struct {
		name string
		v    float64
		want render.RGBA
	}{
		{"gray low", 0, render.RGBA{R: 0, G: 0, B: 0, A: 1}},
		{"gray high", 1, render.RGBA{R: 255, G: 255, B: 255, A: 1}},
	}
	cm := colormap("gray", th)
	for _, tt := range tests {
		if got := cm(tt.v); got != tt.want {
			t.Errorf("%s: %v, want %v", tt.name, got, tt.want)
		}
	}

	themeMap := colormap("theme", th)
	if got := themeMap(1); got.G != 255 || got.R != 0 {
		t.Errorf("theme ramp high = %+v", got)
	}

	hot := colormap("hot", th)
	if got := hot(1); got != (render.RGBA{R: 255, G: 255, B: 255, A: 1}) {
		t.Errorf("hot(1) = %+v", got)
	}
}

func TestGetTheme_Fallback(t *testing.T) {
	if GetTheme("nope").Name != "mono" {
		t.Error("unknown theme should fall back to mono")
	}
	if len(ThemeNames()) != len(Themes) {
		t.Error("ThemeNames should cover all themes")
	}
}
