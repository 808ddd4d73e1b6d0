package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	DefaultDelayMs   = 200
	DefaultFrontend  = FrontendTerminal
	DefaultTheme     = "classic"
	DefaultCols      = 41
	DefaultRows      = 21
	DefaultLabelGap  = 6
	DefaultWinWidth  = 850
	DefaultWinHeight = 500
	DefaultWinFPS    = 60

	FrontendTerminal = "terminal"
	FrontendWindow   = "window"

	minTerminalCols = 11
	minTerminalRows = 6
	minWindowDim    = 200
)

type Config struct {
	DelayMs  int            `yaml:"delay_ms"`
	Frontend string         `yaml:"frontend"`
	Theme    string         `yaml:"theme"`
	LogFile  string         `yaml:"log_file"`
	Terminal TerminalConfig `yaml:"terminal"`
	Window   WindowConfig   `yaml:"window"`
}

// TerminalConfig sizes the braille plot in character cells.
type TerminalConfig struct {
	Cols     int `yaml:"cols"`
	Rows     int `yaml:"rows"`
	LabelGap int `yaml:"label_gap"`
}

type WindowConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
	FPS    int `yaml:"fps"`
}

func DefaultConfig() *Config {
	return &Config{
		DelayMs:  DefaultDelayMs,
		Frontend: DefaultFrontend,
		Theme:    DefaultTheme,
		Terminal: TerminalConfig{
			Cols:     DefaultCols,
			Rows:     DefaultRows,
			LabelGap: DefaultLabelGap,
		},
		Window: WindowConfig{
			Width:  DefaultWinWidth,
			Height: DefaultWinHeight,
			FPS:    DefaultWinFPS,
		},
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
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Save writes cfg as yaml to path.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) Validate() error {
	if c.DelayMs < 0 {
		return fmt.Errorf("delay_ms must not be negative, got %d", c.DelayMs)
	}
	if c.Frontend != FrontendTerminal && c.Frontend != FrontendWindow {
		return fmt.Errorf("unknown frontend %q (want %s or %s)", c.Frontend, FrontendTerminal, FrontendWindow)
	}
	if c.Terminal.Cols < minTerminalCols || c.Terminal.Rows < minTerminalRows {
		return fmt.Errorf("terminal plot too small: %dx%d", c.Terminal.Cols, c.Terminal.Rows)
	}
	if c.Window.Width < minWindowDim || c.Window.Height < minWindowDim {
		return fmt.Errorf("window too small: %dx%d", c.Window.Width, c.Window.Height)
	}
	return nil
}

// Delay returns the per-step delay as a duration.
func (c *Config) Delay() time.Duration {
	return time.Duration(c.DelayMs) * time.Millisecond
}
