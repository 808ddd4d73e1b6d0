package config

var Presets = map[string]*Config{
	"slow": {
		DelayMs: 500, Frontend: FrontendTerminal, Theme: DefaultTheme,
		Terminal: TerminalConfig{Cols: DefaultCols, Rows: DefaultRows, LabelGap: DefaultLabelGap},
		Window:   WindowConfig{Width: DefaultWinWidth, Height: DefaultWinHeight, FPS: DefaultWinFPS},
	},
	"fast": {
		DelayMs: 40, Frontend: FrontendTerminal, Theme: DefaultTheme,
		Terminal: TerminalConfig{Cols: DefaultCols, Rows: DefaultRows, LabelGap: DefaultLabelGap},
		Window:   WindowConfig{Width: DefaultWinWidth, Height: DefaultWinHeight, FPS: DefaultWinFPS},
	},
	"large": {
		DelayMs: DefaultDelayMs, Frontend: FrontendTerminal, Theme: DefaultTheme,
		Terminal: TerminalConfig{Cols: 61, Rows: 31, LabelGap: DefaultLabelGap},
		Window:   WindowConfig{Width: DefaultWinWidth, Height: DefaultWinHeight, FPS: DefaultWinFPS},
	},
	"window": {
		DelayMs: DefaultDelayMs, Frontend: FrontendWindow, Theme: DefaultTheme,
		Terminal: TerminalConfig{Cols: DefaultCols, Rows: DefaultRows, LabelGap: DefaultLabelGap},
		Window:   WindowConfig{Width: DefaultWinWidth, Height: DefaultWinHeight, FPS: DefaultWinFPS},
	},
}

// GetPreset returns a copy of the named preset, or nil.
func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	c := *cfg
	return &c
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	return names
}
