package term

import "github.com/san-kum/samplescope/internal/render"

// Theme controls the chrome colors of a terminal figure and the ramp
// grayscale images map through when the "theme" colormap is selected.
type Theme struct {
	Name    string
	Title   render.Color
	Frame   render.Color
	RampLo  render.RGBA
	RampHi  render.RGBA
}

var (
	ThemeMono = Theme{
		Name:   "mono",
		Title:  "#ffffff",
		Frame:  "#444444",
		RampLo: render.RGBA{R: 0, G: 0, B: 0, A: 1},
		RampHi: render.RGBA{R: 255, G: 255, B: 255, A: 1},
	}

	ThemeGreen = Theme{
		Name:   "green",
		Title:  "#00ff00",
		Frame:  "#005500",
		RampLo: render.RGBA{R: 0, G: 17, B: 0, A: 1},
		RampHi: render.RGBA{R: 0, G: 255, B: 0, A: 1},
	}

	ThemeAmber = Theme{
		Name:   "amber",
		Title:  "#ffbf00",
		Frame:  "#553f00",
		RampLo: render.RGBA{R: 20, G: 10, B: 0, A: 1},
		RampHi: render.RGBA{R: 255, G: 191, B: 0, A: 1},
	}

	ThemeCyber = Theme{
		Name:   "cyber",
		Title:  "#00ffff",
		Frame:  "#444466",
		RampLo: render.RGBA{R: 10, G: 0, B: 26, A: 1},
		RampHi: render.RGBA{R: 255, G: 0, B: 255, A: 1},
	}

	Themes = []Theme{ThemeMono, ThemeGreen, ThemeAmber, ThemeCyber}
)

// GetTheme returns a theme by name, falling back to mono.
func GetTheme(name string) Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
		}
	}
	return ThemeMono
}

// ThemeNames lists the available theme names.
func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}
