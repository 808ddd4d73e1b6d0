// Package trackviz plays back precomputed drone trajectories.
//
// A trajectory is a list of (x, y) samples plus a set of checkpoint indices
// and a few simulation values shown for reference. [Visualize] animates data
// held in memory; [VisualizeFromData] reads it from a text file first. Both
// block until the display is closed.
//
// The default display is a terminal UI. [WithWindow] opens a native window
// instead.
package trackviz

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/san-kum/trackviz/internal/config"
	"github.com/san-kum/trackviz/internal/gui"
	"github.com/san-kum/trackviz/internal/track"
	"github.com/san-kum/trackviz/internal/viz"
)

// DefaultDelayMs is the step delay used by VisualizeFromData.
const DefaultDelayMs = config.DefaultDelayMs

type settings struct {
	cfg    *config.Config
	logger *slog.Logger
}

// Option adjusts how a trajectory is displayed.
type Option func(*settings)

// WithDelay sets the pause between two rendered samples in milliseconds.
func WithDelay(ms int) Option {
	return func(s *settings) { s.cfg.DelayMs = ms }
}

// WithWindow displays the trajectory in a native window.
func WithWindow() Option {
	return func(s *settings) { s.cfg.Frontend = config.FrontendWindow }
}

// WithTheme selects a terminal colour theme by name.
func WithTheme(name string) Option {
	return func(s *settings) { s.cfg.Theme = name }
}

// WithConfig replaces the display configuration. Options after it still apply.
func WithConfig(cfg *config.Config) Option {
	return func(s *settings) {
		c := *cfg
		s.cfg = &c
	}
}

// WithLogger routes diagnostics to l.
func WithLogger(l *slog.Logger) Option {
	return func(s *settings) { s.logger = l }
}

func newSettings(opts []Option) *settings {
	s := &settings{cfg: config.DefaultConfig()}
	for _, o := range opts {
		o(s)
	}
	if s.logger == nil {
		s.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return s
}

// Visualize animates positions[0] (x) against positions[1] (y). Samples whose
// index is in checkpoints are drawn as large green markers, the rest as small
// red ones. mass, drag, theta1 and theta2 are only displayed. delayMs is the
// pause between two samples and overrides any WithDelay option.
func Visualize(positions [2][]float64, checkpoints []int, xMax int, mass, drag, theta1, theta2 string, delayMs int, opts ...Option) error {
	t, err := track.New(positions, checkpoints, track.Params{
		Mass:   mass,
		Drag:   drag,
		Theta1: theta1,
		Theta2: theta2,
		Delay:  fmt.Sprint(delayMs),
		XMax:   xMax,
	})
	if err != nil {
		return err
	}
	s := newSettings(append(opts[:len(opts):len(opts)], WithDelay(delayMs)))
	return show(t, s)
}

// VisualizeFromData loads the track file at path and animates it. The step
// delay is DefaultDelayMs unless WithDelay is given; the delay line stored in
// the file is shown but not used for pacing.
func VisualizeFromData(path string, opts ...Option) error {
	s := newSettings(opts)
	t, err := track.Load(path, s.logger)
	if err != nil {
		return err
	}
	return show(t, s)
}

func show(t *track.Track, s *settings) error {
	if err := s.cfg.Validate(); err != nil {
		return err
	}
	logger := s.logger
	if s.cfg.LogFile != "" {
		f, err := os.OpenFile(s.cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return fmt.Errorf("opening log file: %w", err)
		}
		defer f.Close()
		logger = slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}

	delay := s.cfg.Delay()
	logger.Info("starting playback", "frontend", s.cfg.Frontend, "samples", t.Len(), "delay", delay)

	if s.cfg.Frontend == config.FrontendWindow {
		gui.Run(t, gui.Options{
			Delay:  delay,
			Width:  s.cfg.Window.Width,
			Height: s.cfg.Window.Height,
			FPS:    s.cfg.Window.FPS,
			Logger: logger,
		})
		return nil
	}
	return viz.Run(t, viz.Options{
		Delay:    delay,
		Cols:     s.cfg.Terminal.Cols,
		Rows:     s.cfg.Terminal.Rows,
		LabelGap: s.cfg.Terminal.LabelGap,
		Theme:    s.cfg.Theme,
		Logger:   logger,
	})
}
