package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/san-kum/samplescope/internal/browse"
	"github.com/san-kum/samplescope/internal/config"
	"github.com/san-kum/samplescope/internal/export"
	"github.com/san-kum/samplescope/internal/pipeline"
	"github.com/san-kum/samplescope/internal/render"
	"github.com/san-kum/samplescope/internal/render/gl"
	"github.com/san-kum/samplescope/internal/render/term"
	"github.com/san-kum/samplescope/internal/sample"
	"github.com/san-kum/samplescope/internal/source"
	"github.com/san-kum/samplescope/internal/view"
)

var (
	configFile string
	preset     string
	frames     int
	pause      float64
	backend    string
	theme      string
	imgWidth   int
	imgHeight  int
	// inspect
	colsFlag string
	styled   bool
	statsOut string
	// view
	rows     int
	gridCols int
	cmap     string
	interp   string
	figW     int
	figH     int
	// annotate
	imgCol       int
	annoColsFlag string
	edgeColor    string
	faceColor    string
	lineWidth    float64
	textColor    string
	textBg       string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "samplescope",
		Short: "inspect and visualize elements flowing through a data pipeline",
	}

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&preset, "preset", "", "use preset configuration")
	rootCmd.PersistentFlags().IntVar(&frames, "frames", config.DefaultFrames, "number of elements to pull")
	rootCmd.PersistentFlags().Float64Var(&pause, "pause", config.DefaultPause, "seconds to wait between elements (0 = free run)")
	rootCmd.PersistentFlags().StringVar(&backend, "backend", "term", "render backend (term, gl)")
	rootCmd.PersistentFlags().StringVar(&theme, "theme", "mono", "terminal theme")
	rootCmd.PersistentFlags().IntVar(&imgWidth, "img-width", config.DefaultImgWidth, "generated image width")
	rootCmd.PersistentFlags().IntVar(&imgHeight, "img-height", config.DefaultImgHeight, "generated image height")

	inspectCmd := &cobra.Command{
		Use:   "inspect [source]",
		Short: "print per-column type and stats reports",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runInspect,
	}
	inspectCmd.Flags().StringVar(&colsFlag, "cols", "", "columns to report, comma separated (default all)")
	inspectCmd.Flags().BoolVar(&styled, "styled", false, "colorize reports")
	inspectCmd.Flags().StringVar(&statsOut, "out", "", "write accumulated stats as JSON (- for stdout)")

	viewCmd := &cobra.Command{
		Use:   "view [source]",
		Short: "display image columns in a grid",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runView,
	}
	viewCmd.Flags().StringVar(&colsFlag, "cols", "0", "image columns, comma separated")
	viewCmd.Flags().IntVar(&rows, "rows", 0, "grid rows (0 = one row)")
	viewCmd.Flags().IntVar(&gridCols, "grid-cols", 0, "grid columns (0 = one per image)")
	viewCmd.Flags().StringVar(&cmap, "cmap", "", "grayscale colormap (gray, hot, theme)")
	viewCmd.Flags().StringVar(&interp, "interp", "nearest", "interpolation (nearest, bilinear)")
	viewCmd.Flags().IntVar(&figW, "fig-width", 0, "figure width in pixels (gl backend)")
	viewCmd.Flags().IntVar(&figH, "fig-height", 0, "figure height in pixels (gl backend)")

	annotateCmd := &cobra.Command{
		Use:   "annotate [source]",
		Short: "display one image column with its annotation overlays",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runAnnotate,
	}
	annotateCmd.Flags().IntVar(&imgCol, "img-col", 0, "image column")
	annotateCmd.Flags().StringVar(&annoColsFlag, "anno-cols", "1,2", "annotation columns, comma separated")
	annotateCmd.Flags().StringVar(&interp, "interp", "nearest", "interpolation (nearest, bilinear)")
	annotateCmd.Flags().StringVar(&edgeColor, "edge-color", "yellow", "shape edge color")
	annotateCmd.Flags().StringVar(&faceColor, "face-color", "none", "shape face color")
	annotateCmd.Flags().Float64Var(&lineWidth, "line-width", 1, "shape line width")
	annotateCmd.Flags().StringVar(&textColor, "text-color", "black", "label text color")
	annotateCmd.Flags().StringVar(&textBg, "text-bg", "white@0.5", "label background color")
	annotateCmd.Flags().IntVar(&figW, "fig-width", 0, "figure width in pixels (gl backend)")
	annotateCmd.Flags().IntVar(&figH, "fig-height", 0, "figure height in pixels (gl backend)")

	browseCmd := &cobra.Command{
		Use:   "browse [source]",
		Short: "step through a stream interactively",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runBrowse,
	}
	browseCmd.Flags().StringVar(&colsFlag, "cols", "", "columns to report, comma separated (default all)")

	sourcesCmd := &cobra.Command{
		Use:   "sources",
		Short: "list available sample sources",
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range source.Names() {
				fmt.Println(name)
			}
		},
	}

	presetsCmd := &cobra.Command{
		Use:   "presets [source]",
		Short: "list available presets for a source",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			presets := config.ListPresets(args[0])
			if len(presets) == 0 {
				fmt.Printf("no presets for source: %s\n", args[0])
				return nil
			}
			fmt.Printf("presets for %s:\n", args[0])
			for _, p := range presets {
				fmt.Printf("  %s\n", p)
			}
			return nil
		},
	}

	initCmd := &cobra.Command{
		Use:   "init [path]",
		Short: "write a default config file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "samplescope.yaml"
			if len(args) > 0 {
				path = args[0]
			}
			if err := config.Save(path, config.DefaultConfig()); err != nil {
				return err
			}
			fmt.Printf("wrote %s\n", path)
			return nil
		},
	}

	rootCmd.AddCommand(inspectCmd, viewCmd, annotateCmd, browseCmd, sourcesCmd, presetsCmd, initCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// resolveConfig merges preset, config file and flags, in rising
// precedence.
func resolveConfig(cmd *cobra.Command, args []string) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if len(args) > 0 {
		cfg.Source = args[0]
	}

	if preset != "" {
		p := config.GetPreset(cfg.Source, preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets(cfg.Source))
		}
		*cfg = *p
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		if len(args) > 0 {
			loaded.Source = args[0]
		}
		cfg = loaded
	}

	f := cmd.Flags()
	if f.Changed("frames") {
		cfg.Frames = frames
	}
	if f.Changed("pause") {
		cfg.Pause = pause
	}
	if f.Changed("backend") {
		cfg.Backend = backend
	}
	if f.Changed("theme") {
		cfg.Theme = theme
	}
	if f.Changed("img-width") {
		cfg.Image.Width = imgWidth
	}
	if f.Changed("img-height") {
		cfg.Image.Height = imgHeight
	}
	if f.Changed("rows") {
		cfg.Layout.Rows = rows
	}
	if f.Changed("grid-cols") {
		cfg.Layout.Cols = gridCols
	}
	if f.Changed("cmap") {
		cfg.Image.Colormap = cmap
	}
	if f.Changed("interp") {
		cfg.Image.Interpolation = interp
	}
	if f.Changed("fig-width") {
		cfg.Figure.Width = figW
	}
	if f.Changed("fig-height") {
		cfg.Figure.Height = figH
	}
	if f.Changed("edge-color") {
		cfg.Shape.EdgeColor = edgeColor
	}
	if f.Changed("face-color") {
		cfg.Shape.FaceColor = faceColor
	}
	if f.Changed("line-width") {
		cfg.Shape.LineWidth = lineWidth
	}
	if f.Changed("text-color") {
		cfg.Text.Color = textColor
	}
	if f.Changed("text-bg") {
		cfg.Text.Background = textBg
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func newBackend(cfg *config.Config) render.Backend {
	if cfg.Backend == "gl" {
		return gl.NewBackend()
	}
	return term.NewBackend(cfg.Theme)
}

func newSource(cfg *config.Config) (pipeline.Source, error) {
	src, err := source.New(cfg.Source, cfg.Image.Width, cfg.Image.Height)
	if err != nil {
		return nil, err
	}
	return pipeline.Take(src, cfg.Frames), nil
}

func pauseDuration(cfg *config.Config) time.Duration {
	return time.Duration(cfg.Pause * float64(time.Second))
}

// parseCols turns "0,2" into a selector. Empty means all columns.
func parseCols(s string) (sample.Cols, error) {
	if s == "" {
		return sample.AllCols, nil
	}
	var cols sample.Cols
	for _, part := range strings.Split(s, ",") {
		i, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return nil, fmt.Errorf("bad column list %q: %w", s, err)
		}
		cols = append(cols, i)
	}
	return cols, nil
}

// drive pulls elements through the stage until exhaustion, an error, or
// a user stop request.
func drive(src pipeline.Source, stage pipeline.Stage) (int, error) {
	stopper, _ := stage.(interface{ StopRequested() bool })
	n := 0
	for {
		e, ok := src.Next()
		if !ok {
			return n, nil
		}
		if _, err := stage.Process(e); err != nil {
			return n, err
		}
		n++
		if stopper != nil && stopper.StopRequested() {
			return n, nil
		}
	}
}

func runInspect(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd, args)
	if err != nil {
		return err
	}
	cols, err := parseCols(colsFlag)
	if err != nil {
		return err
	}
	src, err := newSource(cfg)
	if err != nil {
		return err
	}

	insp := view.NewColumnInspector(cols, view.InspectorOptions{Styled: styled})
	n, err := pipeline.Run(src, insp)
	if err != nil {
		return err
	}
	fmt.Printf("inspected %d items\n", n)

	switch statsOut {
	case "":
		return nil
	case "-":
		return export.StatsStdout(cfg.Source, insp)
	default:
		return export.Stats(statsOut, cfg.Source, insp)
	}
}

func runView(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd, args)
	if err != nil {
		return err
	}
	imgcols, err := parseCols(colsFlag)
	if err != nil {
		return err
	}
	src, err := newSource(cfg)
	if err != nil {
		return err
	}

	viewer, err := view.NewGridImageViewer(newBackend(cfg), imgcols, view.GridOptions{
		Rows:      cfg.Layout.Rows,
		Cols:      cfg.Layout.Cols,
		FigWidth:  cfg.Figure.Width,
		FigHeight: cfg.Figure.Height,
		Pause:     pauseDuration(cfg),
		Image: render.ImageOptions{
			Colormap:      cfg.Image.Colormap,
			Interpolation: cfg.Image.Interpolation,
		},
	})
	if err != nil {
		return err
	}
	defer viewer.Close()

	n, err := drive(src, viewer)
	if err != nil {
		return err
	}
	viewer.Close()
	fmt.Printf("displayed %d elements\n", n)
	return nil
}

func runAnnotate(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd, args)
	if err != nil {
		return err
	}
	annocols, err := parseCols(annoColsFlag)
	if err != nil {
		return err
	}
	src, err := newSource(cfg)
	if err != nil {
		return err
	}

	viewer, err := view.NewAnnotatedImageViewer(newBackend(cfg), imgCol,
		sample.NewColSet(annocols...), view.AnnoOptions{
			FigWidth:      cfg.Figure.Width,
			FigHeight:     cfg.Figure.Height,
			Pause:         pauseDuration(cfg),
			Interpolation: cfg.Image.Interpolation,
			Shape: render.LineStyle{
				EdgeColor: render.Color(cfg.Shape.EdgeColor),
				FaceColor: render.Color(cfg.Shape.FaceColor),
				LineWidth: cfg.Shape.LineWidth,
			},
			Text: render.TextStyle{
				Color:      render.Color(cfg.Text.Color),
				Background: render.Color(cfg.Text.Background),
				Family:     cfg.Text.Family,
			},
		})
	if err != nil {
		return err
	}
	defer viewer.Close()

	n, err := drive(src, viewer)
	if err != nil {
		return err
	}
	viewer.Close()
	fmt.Printf("displayed %d elements\n", n)
	return nil
}

func runBrowse(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd, args)
	if err != nil {
		return err
	}
	cols, err := parseCols(colsFlag)
	if err != nil {
		return err
	}
	src, err := newSource(cfg)
	if err != nil {
		return err
	}
	return browse.Run(browse.NewModel(src, cols, cfg.Source, pauseDuration(cfg)))
}
