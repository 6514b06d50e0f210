package render

import "testing"

func TestColorParse(t *testing.T) {
	tests := []struct {
		name string
		in   Color
		want RGBA
		ok   bool
	}{
		{"named", "yellow", RGBA{255, 255, 0, 1}, true},
		{"short name", "k", RGBA{0, 0, 0, 1}, true},
		{"hex", "#ffcc00", RGBA{255, 204, 0, 1}, true},
		{"alpha suffix", "white@0.5", RGBA{255, 255, 255, 0.5}, true},
		{"none", None, RGBA{}, false},
		{"case insensitive", "Red", RGBA{255, 0, 0, 1}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.in.Parse()
			if ok != tt.ok {
				t.Fatalf("Parse(%q) ok = %v, want %v", tt.in, ok, tt.ok)
			}
			if ok && got != tt.want {
				t.Errorf("Parse(%q) = %+v, want %+v", tt.in, got, tt.want)
			}
		})
	}
}

func TestDefaultStyles(t *testing.T) {
	sh := DefaultShapeStyle()
	if sh.EdgeColor != "yellow" || sh.FaceColor != None || sh.LineWidth != 1 {
		t.Errorf("DefaultShapeStyle() = %+v", sh)
	}

	tx := DefaultTextStyle()
	if tx.Color != "black" || tx.Family != "monospace" {
		t.Errorf("DefaultTextStyle() = %+v", tx)
	}
	bg, ok := tx.Background.Parse()
	if !ok || bg.A != 0.5 {
		t.Errorf("default text background alpha = %v, want 0.5", bg.A)
	}
}
