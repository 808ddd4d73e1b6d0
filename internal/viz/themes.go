package viz

import "github.com/charmbracelet/lipgloss"

// Theme defines the colour scheme of the plot and side panel.
type Theme struct {
	Name       string
	Title      lipgloss.Color
	Text       lipgloss.Color
	Muted      lipgloss.Color
	Grid       lipgloss.Color
	Label      lipgloss.Color
	Track      lipgloss.Color
	Sample     lipgloss.Color
	Checkpoint lipgloss.Color
	Playing    lipgloss.Color
	Stopped    lipgloss.Color
}

// Available themes
var (
	ThemeClassic = Theme{
		Name:       "classic",
		Title:      lipgloss.Color("#ffffff"),
		Text:       lipgloss.Color("#e0e0e0"),
		Muted:      lipgloss.Color("#777777"),
		Grid:       lipgloss.Color("#555555"),
		Label:      lipgloss.Color("#999999"),
		Track:      lipgloss.Color("#ffffff"),
		Sample:     lipgloss.Color("#ff0000"), // red
		Checkpoint: lipgloss.Color("#00c000"), // green
		Playing:    lipgloss.Color("#00ff88"),
		Stopped:    lipgloss.Color("#ffaa00"),
	}

	ThemeCyberpunk = Theme{
		Name:       "cyberpunk",
		Title:      lipgloss.Color("#ff00ff"),
		Text:       lipgloss.Color("#ffffff"),
		Muted:      lipgloss.Color("#666666"),
		Grid:       lipgloss.Color("#444466"),
		Label:      lipgloss.Color("#00ffff"),
		Track:      lipgloss.Color("#ffff00"),
		Sample:     lipgloss.Color("#ff0044"),
		Checkpoint: lipgloss.Color("#00ff00"),
		Playing:    lipgloss.Color("#00ffff"),
		Stopped:    lipgloss.Color("#ff8800"),
	}

	ThemeOcean = Theme{
		Name:       "ocean",
		Title:      lipgloss.Color("#00a8cc"),
		Text:       lipgloss.Color("#e0f0ff"),
		Muted:      lipgloss.Color("#4488aa"),
		Grid:       lipgloss.Color("#0077be"),
		Label:      lipgloss.Color("#4488aa"),
		Track:      lipgloss.Color("#e0f0ff"),
		Sample:     lipgloss.Color("#ff4444"),
		Checkpoint: lipgloss.Color("#00ff88"),
		Playing:    lipgloss.Color("#00ff88"),
		Stopped:    lipgloss.Color("#ffcc00"),
	}

	// Monochrome terminals still tell markers apart by size.
	ThemeMono = Theme{
		Name:       "mono",
		Title:      lipgloss.Color("#ffffff"),
		Text:       lipgloss.Color("#ffffff"),
		Muted:      lipgloss.Color("#888888"),
		Grid:       lipgloss.Color("#888888"),
		Label:      lipgloss.Color("#888888"),
		Track:      lipgloss.Color("#cccccc"),
		Sample:     lipgloss.Color("#ffffff"),
		Checkpoint: lipgloss.Color("#ffffff"),
		Playing:    lipgloss.Color("#ffffff"),
		Stopped:    lipgloss.Color("#888888"),
	}

	// All available themes
	Themes = []Theme{
		ThemeClassic,
		ThemeCyberpunk,
		ThemeOcean,
		ThemeMono,
	}
)

// GetTheme returns a theme by name, falling back to classic.
func GetTheme(name string) Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
		}
	}
	return ThemeClassic
}

// NextTheme returns the theme after t in Themes.
func NextTheme(t Theme) Theme {
	for i, th := range Themes {
		if th.Name == t.Name {
			return Themes[(i+1)%len(Themes)]
		}
	}
	return ThemeClassic
}

// ThemeNames returns list of available theme names
func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}

// InkStyle returns the lipgloss style for a canvas ink.
func (t Theme) InkStyle(ink Ink) lipgloss.Style {
	s := lipgloss.NewStyle()
	switch ink {
	case InkGrid:
		return s.Foreground(t.Grid)
	case InkLabel:
		return s.Foreground(t.Label)
	case InkTrack:
		return s.Foreground(t.Track)
	case InkSample:
		return s.Foreground(t.Sample)
	case InkCheckpoint:
		return s.Foreground(t.Checkpoint).Bold(true)
	default:
		return s
	}
}
