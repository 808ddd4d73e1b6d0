package viz

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/san-kum/trackviz/internal/track"
)

// Run opens the terminal player on the alternate screen and blocks until the
// user quits.
func Run(t *track.Track, opts Options) error {
	m := NewPlayer(t, opts)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}
