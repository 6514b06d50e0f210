package config

var Presets = map[string]map[string]*Config{
	"bounce": {
		"quick": {
			Source: "bounce", Frames: 50, Backend: "term", Theme: "mono", Pause: 0.1,
			Image: ImageConfig{Width: 96, Height: 64, Interpolation: "nearest"},
		},
		"slow": {
			Source: "bounce", Frames: 200, Backend: "term", Theme: "green", Pause: 0.5,
			Image: ImageConfig{Width: 128, Height: 96, Interpolation: "bilinear"},
		},
		"window": {
			Source: "bounce", Frames: 300, Backend: "gl", Theme: "mono", Pause: 0.05,
			Figure: FigureConfig{Width: 960, Height: 720},
			Image:  ImageConfig{Width: 160, Height: 120, Interpolation: "bilinear"},
		},
	},
	"gradient": {
		"gray": {
			Source: "gradient", Frames: 100, Backend: "term", Theme: "mono", Pause: 0.1,
			Image: ImageConfig{Width: 96, Height: 64, Colormap: "gray"},
		},
		"hot": {
			Source: "gradient", Frames: 100, Backend: "term", Theme: "amber", Pause: 0.1,
			Image: ImageConfig{Width: 96, Height: 64, Colormap: "hot"},
		},
		"themed": {
			Source: "gradient", Frames: 100, Backend: "term", Theme: "cyber", Pause: 0.1,
			Image: ImageConfig{Width: 96, Height: 64, Colormap: "theme"},
		},
	},
	"noise": {
		"coarse": {
			Source: "noise", Frames: 60, Backend: "term", Theme: "mono", Pause: 0.2,
			Image: ImageConfig{Width: 48, Height: 32, Interpolation: "nearest"},
		},
		"fine": {
			Source: "noise", Frames: 60, Backend: "term", Theme: "mono", Pause: 0.2,
			Image: ImageConfig{Width: 192, Height: 128, Interpolation: "nearest"},
		},
	},
}

func GetPreset(source, preset string) *Config {
	sourcePresets, ok := Presets[source]
	if !ok {
		return nil
	}
	cfg, ok := sourcePresets[preset]
	if !ok {
		return nil
	}
	return cfg
}

func ListPresets(source string) []string {
	sourcePresets, ok := Presets[source]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(sourcePresets))
	for name := range sourcePresets {
		names = append(names, name)
	}
	return names
}
