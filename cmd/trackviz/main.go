package main

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/trackviz"
	"github.com/san-kum/trackviz/internal/config"
	"github.com/san-kum/trackviz/internal/export"
	"github.com/san-kum/trackviz/internal/track"
	"github.com/san-kum/trackviz/internal/viz"
	"github.com/spf13/cobra"
)

var (
	delayMs    int
	window     bool
	theme      string
	configFile string
	preset     string
	verbose    bool
	svgSize    int
)

// main registers the trackviz commands and exits with status 1 when a command fails.
func main() {
	rootCmd := &cobra.Command{
		Use:          "trackviz",
		Short:        "animated drone trajectory viewer",
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")

	playCmd := &cobra.Command{
		Use:   "play [file]",
		Short: "animate a track file",
		Args:  cobra.ExactArgs(1),
		RunE:  playFile,
	}
	addDisplayFlags(playCmd)

	demoCmd := &cobra.Command{
		Use:   "demo [sample]",
		Short: "animate a bundled sample track",
		Args:  cobra.MaximumNArgs(1),
		RunE:  playDemo,
	}
	addDisplayFlags(demoCmd)

	samplesCmd := &cobra.Command{
		Use:   "samples",
		Short: "list bundled sample tracks",
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range config.ListSamples() {
				fmt.Println(name)
			}
		},
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list display presets",
		Run: func(cmd *cobra.Command, args []string) {
			names := config.ListPresets()
			sort.Strings(names)
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tDELAY\tFRONTEND\tPLOT")
			for _, name := range names {
				p := config.GetPreset(name)
				fmt.Fprintf(w, "%s\t%dms\t%s\t%dx%d\n", name, p.DelayMs, p.Frontend, p.Terminal.Cols, p.Terminal.Rows)
			}
			w.Flush()
		},
	}

	infoCmd := &cobra.Command{
		Use:   "info [file]",
		Short: "summarize a track file",
		Args:  cobra.ExactArgs(1),
		RunE:  trackInfo,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [file]",
		Short: "plot x and y against time",
		Args:  cobra.ExactArgs(1),
		RunE:  plotTrack,
	}

	svgCmd := &cobra.Command{
		Use:   "svg [file]",
		Short: "render the finished track as SVG on stdout",
		Args:  cobra.ExactArgs(1),
		RunE:  renderSVG,
	}
	svgCmd.Flags().IntVar(&svgSize, "size", 500, "image size in pixels")

	configCmd := &cobra.Command{
		Use:   "config",
		Short: "manage display config files",
	}
	configInitCmd := &cobra.Command{
		Use:   "init [file]",
		Short: "write the default (or a preset) display config as yaml",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "trackviz.yaml"
			if len(args) > 0 {
				path = args[0]
			}
			if err := writeConfig(path, preset); err != nil {
				return err
			}
			fmt.Println("wrote", path)
			return nil
		},
	}
	configInitCmd.Flags().StringVar(&preset, "preset", "", "start from a preset configuration")
	configCmd.AddCommand(configInitCmd)

	rootCmd.AddCommand(playCmd, demoCmd, samplesCmd, presetsCmd, infoCmd, plotCmd, svgCmd, configCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addDisplayFlags(cmd *cobra.Command) {
	cmd.Flags().IntVar(&delayMs, "delay", config.DefaultDelayMs, "step delay in milliseconds")
	cmd.Flags().BoolVar(&window, "window", false, "open a native window instead of the terminal UI")
	cmd.Flags().StringVar(&theme, "theme", config.DefaultTheme,
		"terminal color theme ("+strings.Join(viz.ThemeNames(), ", ")+")")
	cmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	cmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
}

func newLogger() *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// displayConfig merges preset, config file and flags, in that order.
func displayConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if preset != "" {
		cfg = config.GetPreset(preset)
		if cfg == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
	}
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}
	if (preset == "" && configFile == "") || cmd.Flags().Changed("delay") {
		cfg.DelayMs = delayMs
	}
	if cmd.Flags().Changed("theme") {
		cfg.Theme = theme
	}
	if window {
		cfg.Frontend = config.FrontendWindow
	}
	return cfg, nil
}

// writeConfig saves the default config, or the named preset, to path.
// An existing file is left alone.
func writeConfig(path, presetName string) error {
	cfg := config.DefaultConfig()
	if presetName != "" {
		cfg = config.GetPreset(presetName)
		if cfg == nil {
			return fmt.Errorf("unknown preset: %s (available: %v)", presetName, config.ListPresets())
		}
	}
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("%s already exists", path)
	}
	return config.Save(path, cfg)
}

// displayOptions builds the playback options. The terminal UI owns the
// screen, so logs only go to stderr for the window frontend.
func displayOptions(cmd *cobra.Command) ([]trackviz.Option, *config.Config, error) {
	cfg, err := displayConfig(cmd)
	if err != nil {
		return nil, nil, err
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	if cfg.Frontend == config.FrontendWindow {
		logger = newLogger()
	}
	return []trackviz.Option{trackviz.WithConfig(cfg), trackviz.WithLogger(logger)}, cfg, nil
}

func playFile(cmd *cobra.Command, args []string) error {
	opts, _, err := displayOptions(cmd)
	if err != nil {
		return err
	}
	return trackviz.VisualizeFromData(args[0], opts...)
}

func playDemo(cmd *cobra.Command, args []string) error {
	name := "figure8"
	if len(args) > 0 {
		name = args[0]
	}
	data, ok := config.Sample(name)
	if !ok {
		return fmt.Errorf("unknown sample: %s (available: %v)", name, config.ListSamples())
	}
	t, err := track.Parse(bytes.NewReader(data), newLogger())
	if err != nil {
		return err
	}

	opts, cfg, err := displayOptions(cmd)
	if err != nil {
		return err
	}
	p := t.Params
	return trackviz.Visualize([2][]float64{t.Positions.X, t.Positions.Y}, t.Checkpoints.Sorted(), p.XMax,
		p.Mass, p.Drag, p.Theta1, p.Theta2, cfg.DelayMs, opts...)
}

func trackInfo(cmd *cobra.Command, args []string) error {
	t, err := track.Load(args[0], newLogger())
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "SAMPLES\t%d\n", t.Len())
	fmt.Fprintf(w, "X_MAX\t%d\n", t.Params.XMax)
	fmt.Fprintf(w, "DELAY (FILE)\t%s\n", t.Params.Delay)
	fmt.Fprintf(w, "MASS\t%s\n", t.Params.Mass)
	fmt.Fprintf(w, "DRAG\t%s\n", t.Params.Drag)
	fmt.Fprintf(w, "THETA 1\t%s\n", t.Params.Theta1)
	fmt.Fprintf(w, "THETA 2\t%s\n", t.Params.Theta2)

	cps := t.Checkpoints.Sorted()
	strs := make([]string, len(cps))
	for i, c := range cps {
		strs[i] = fmt.Sprint(c)
	}
	fmt.Fprintf(w, "CHECKPOINTS\t%s\n", strings.Join(strs, " "))

	outside := 0
	for i := 0; i < t.Len(); i++ {
		x, y := t.Positions.At(i)
		lim := float64(t.Params.XMax)
		if x < -lim || x > lim || y < -lim || y > lim {
			outside++
		}
	}
	fmt.Fprintf(w, "OUTSIDE GRID\t%d\n", outside)
	return w.Flush()
}

func plotTrack(cmd *cobra.Command, args []string) error {
	t, err := track.Load(args[0], newLogger())
	if err != nil {
		return err
	}
	if t.Len() == 0 {
		return fmt.Errorf("no data to plot")
	}

	for _, series := range []struct {
		caption string
		data    []float64
	}{
		{"x vs time", t.Positions.X},
		{"y vs time", t.Positions.Y},
	} {
		graph := asciigraph.Plot(series.data,
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.Caption(series.caption),
		)
		fmt.Println(graph)
		fmt.Println()
	}
	return nil
}

func renderSVG(cmd *cobra.Command, args []string) error {
	t, err := track.Load(args[0], newLogger())
	if err != nil {
		return err
	}
	if svgSize < 100 {
		return fmt.Errorf("size must be at least 100, got %d", svgSize)
	}
	fmt.Println(export.TrackToSVG(t, svgSize))
	return nil
}
