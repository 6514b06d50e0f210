package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/samplescope/internal/render/term"
)

const (
	DefaultPause     = 0.2
	DefaultWidth     = 960
	DefaultHeight    = 720
	DefaultFrames    = 100
	DefaultImgWidth  = 96
	DefaultImgHeight = 64
)

type Config struct {
	Source  string       `yaml:"source"`
	Frames  int          `yaml:"frames"`
	Backend string       `yaml:"backend"`
	Theme   string       `yaml:"theme"`
	Pause   float64      `yaml:"pause"`
	Figure  FigureConfig `yaml:"figure"`
	Layout  LayoutConfig `yaml:"layout"`
	Image   ImageConfig  `yaml:"image"`
	Shape   ShapeConfig  `yaml:"shape"`
	Text    TextConfig   `yaml:"text"`
}

type FigureConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// LayoutConfig positions grid viewer panes. Zero rows or cols means
// derive from the number of image columns.
type LayoutConfig struct {
	Rows int `yaml:"rows"`
	Cols int `yaml:"cols"`
}

type ImageConfig struct {
	Width         int    `yaml:"width"`
	Height        int    `yaml:"height"`
	Colormap      string `yaml:"colormap"`
	Interpolation string `yaml:"interpolation"`
}

type ShapeConfig struct {
	EdgeColor string  `yaml:"edge_color"`
	FaceColor string  `yaml:"face_color"`
	LineWidth float64 `yaml:"line_width"`
}

type TextConfig struct {
	Color      string `yaml:"color"`
	Background string `yaml:"background"`
	Family     string `yaml:"family"`
}

func DefaultConfig() *Config {
	return &Config{
		Source:  "bounce",
		Frames:  DefaultFrames,
		Backend: "term",
		Theme:   "mono",
		Pause:   DefaultPause,
		Figure:  FigureConfig{Width: DefaultWidth, Height: DefaultHeight},
		Image:   ImageConfig{Width: DefaultImgWidth, Height: DefaultImgHeight, Interpolation: "nearest"},
		Shape:   ShapeConfig{EdgeColor: "yellow", FaceColor: "none", LineWidth: 1},
		Text:    TextConfig{Color: "black", Background: "white@0.5", Family: "monospace"},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate rejects values the viewers would fail on later, so a bad
// config file aborts before any screen or window opens.
func (c *Config) Validate() error {
	if c.Pause < 0 {
		return fmt.Errorf("pause must be >= 0, got %g", c.Pause)
	}
	if c.Frames < 0 {
		return fmt.Errorf("frames must be >= 0, got %d", c.Frames)
	}
	if c.Layout.Rows < 0 || c.Layout.Cols < 0 {
		return fmt.Errorf("layout must be non-negative, got %dx%d", c.Layout.Rows, c.Layout.Cols)
	}
	if c.Image.Width < 1 || c.Image.Height < 1 {
		return fmt.Errorf("image size must be positive, got %dx%d", c.Image.Width, c.Image.Height)
	}
	switch c.Backend {
	case "term", "gl":
	default:
		return fmt.Errorf("unknown backend %q (want term or gl)", c.Backend)
	}
	if !knownTheme(c.Theme) {
		return fmt.Errorf("unknown theme %q (want one of %v)", c.Theme, term.ThemeNames())
	}
	return nil
}

func knownTheme(name string) bool {
	for _, n := range term.ThemeNames() {
		if n == name {
			return true
		}
	}
	return false
}
