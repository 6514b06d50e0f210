package render

import (
	"strconv"
	"strings"
)

// Color is a color specification: a name ("yellow"), a hex triplet
// ("#ffcc00"), optionally with an alpha suffix ("white@0.5"). The empty
// color means "none" (no fill, default background).
type Color string

// None is the absent color, used for unfilled shapes.
const None Color = ""

// RGBA is a resolved color. Channels are 0-255, alpha 0-1.
type RGBA struct {
	R, G, B uint8
	A       float64
}

var named = map[string]RGBA{
	"black":   {0, 0, 0, 1},
	"white":   {255, 255, 255, 1},
	"red":     {255, 0, 0, 1},
	"green":   {0, 255, 0, 1},
	"blue":    {0, 0, 255, 1},
	"yellow":  {255, 255, 0, 1},
	"cyan":    {0, 255, 255, 1},
	"magenta": {255, 0, 255, 1},
	"gray":    {128, 128, 128, 1},
	"orange":  {255, 165, 0, 1},
	"k":       {0, 0, 0, 1},
	"w":       {255, 255, 255, 1},
	"y":       {255, 255, 0, 1},
}

// Parse resolves the color to RGBA. Unknown names resolve to white;
// None reports ok=false.
func (c Color) Parse() (rgba RGBA, ok bool) {
	s := string(c)
	if s == "" {
		return RGBA{}, false
	}
	alpha := 1.0
	if at := strings.LastIndexByte(s, '@'); at >= 0 {
		if a, err := strconv.ParseFloat(s[at+1:], 64); err == nil {
			alpha = a
		}
		s = s[:at]
	}
	if v, found := named[strings.ToLower(s)]; found {
		v.A = alpha
		return v, true
	}
	if len(s) == 7 && s[0] == '#' {
		r := hexByte(s[1:3])
		g := hexByte(s[3:5])
		b := hexByte(s[5:7])
		return RGBA{r, g, b, alpha}, true
	}
	return RGBA{255, 255, 255, alpha}, true
}

func hexByte(s string) uint8 {
	v, _ := strconv.ParseUint(s, 16, 8)
	return uint8(v)
}

// LineStyle describes shape overlays. An empty FaceColor leaves the
// shape unfilled.
type LineStyle struct {
	EdgeColor Color
	FaceColor Color
	LineWidth float64
}

// DefaultShapeStyle matches the annotated viewer defaults: yellow
// outline, no fill, width 1.
func DefaultShapeStyle() LineStyle {
	return LineStyle{EdgeColor: "yellow", FaceColor: None, LineWidth: 1}
}

// TextStyle describes label overlays. Size zero lets the caller compute
// a size from the surface height.
type TextStyle struct {
	Color      Color
	Background Color
	Size       float64
	Family     string
}

// DefaultTextStyle matches the annotated viewer defaults: black text on
// a half-transparent white background, monospace.
func DefaultTextStyle() TextStyle {
	return TextStyle{Color: "black", Background: "white@0.5", Family: "monospace"}
}
