package viz

import (
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/san-kum/trackviz/internal/anim"
	"github.com/san-kum/trackviz/internal/track"
)

const (
	title = "Optimal trajectory visualisation"

	// Marker radii in braille sub-pixels.
	checkpointRadius = 2
	sampleRadius     = 1

	dashOn  = 4
	dashOff = 1
)

// Options configures a terminal Player.
type Options struct {
	Delay    time.Duration
	Cols     int
	Rows     int
	LabelGap int
	Theme    string
	Logger   *slog.Logger
}

// stepMsg is a scheduled animation tick. gen ties it to the Play that
// scheduled it.
type stepMsg struct {
	gen int
}

// scheduler returns a command delivering stepMsg{gen} after d.
type scheduler func(d time.Duration, gen int) tea.Cmd

func tickAfter(d time.Duration, gen int) tea.Cmd {
	if d <= 0 {
		return func() tea.Msg { return stepMsg{gen: gen} }
	}
	return tea.Tick(d, func(time.Time) tea.Msg { return stepMsg{gen: gen} })
}

// Player is the bubbletea model that animates a track on a braille canvas.
type Player struct {
	session  *anim.Session
	canvas   *Canvas
	theme    Theme
	schedule scheduler
	logger   *slog.Logger
	showHelp bool
}

// NewPlayer draws the grid for t and returns a stopped player.
func NewPlayer(t *track.Track, opts Options) Player {
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	proj := anim.Projector{
		CenterX:  opts.Cols,
		CenterY:  opts.Rows * 2,
		HalfSpan: min(opts.Cols-1, opts.Rows*2-1),
		XMax:     t.Params.XMax,
	}
	p := Player{
		session:  anim.NewSession(t, proj, opts.Delay, opts.Logger),
		canvas:   NewCanvas(opts.Cols, opts.Rows),
		theme:    GetTheme(opts.Theme),
		schedule: tickAfter,
		logger:   opts.Logger,
	}
	p.drawGrid(opts.LabelGap)
	return p
}

func (m Player) Init() tea.Cmd {
	return tea.SetWindowTitle(title)
}

// Update handles input events and animation ticks.
func (m Player) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "p", "enter":
			return m, m.play()
		case "s":
			m.session.Pause()
		case " ":
			if m.session.State() == anim.Playing {
				m.session.Pause()
				return m, nil
			}
			return m, m.play()
		case "t":
			m.theme = NextTheme(m.theme)
		case "?":
			m.showHelp = !m.showHelp
		}
	case tea.MouseMsg:
		if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		switch m.layout().hit(msg.X, msg.Y) {
		case playButton:
			return m, m.play()
		case stopButton:
			m.session.Pause()
		}
	case stepMsg:
		stroke, ok := m.session.Step(msg.gen)
		if !ok {
			return m, nil
		}
		m.draw(stroke)
		return m, m.schedule(m.session.Delay(), msg.gen)
	}
	return m, nil
}

// play starts a new step loop with an immediate first tick.
func (m Player) play() tea.Cmd {
	gen, ok := m.session.Play()
	if !ok {
		return nil
	}
	return m.schedule(0, gen)
}

func (m Player) draw(s anim.Stroke) {
	m.canvas.DrawLine(s.From.X, s.From.Y, s.To.X, s.To.Y, InkTrack)
	if s.Marker.Large() {
		m.canvas.Disc(s.To.X, s.To.Y, checkpointRadius, InkCheckpoint)
	} else {
		m.canvas.Disc(s.To.X, s.To.Y, sampleRadius, InkSample)
	}
	m.logger.Debug("step", "index", s.Index, "marker", s.Marker, "x", s.To.X, "y", s.To.Y)
}

// drawGrid draws the dashed axes and integer labels.
func (m Player) drawGrid(labelGap int) {
	proj := m.session.Projector()
	tl, br := proj.Bounds()
	cx, cy := proj.CenterX, proj.CenterY
	m.canvas.DrawDashed(cx, tl.Y, cx, br.Y, dashOn, dashOff, InkGrid)
	m.canvas.DrawDashed(tl.X, cy, br.X, cy, dashOn, dashOff, InkGrid)

	labelRow := cy/4 + 1
	axisCol := cx / 2
	// centred under the tick, kept inside the canvas
	under := func(px int, s string) int {
		return max(0, min(m.canvas.Width-len(s), px/2-len(s)/2))
	}
	for _, tk := range proj.Ticks(labelGap) {
		pos, neg := strconv.Itoa(tk.Value), strconv.Itoa(-tk.Value)
		m.canvas.Text(under(cx+tk.Offset, pos), labelRow, pos)
		m.canvas.Text(under(cx-tk.Offset, neg), labelRow, neg)
		m.canvas.Text(axisCol-1-len(pos), (cy-tk.Offset)/4, pos)
		m.canvas.Text(axisCol-1-len(neg), (cy+tk.Offset)/4, neg)
	}
}

type button int

const (
	noButton button = iota
	playButton
	stopButton
)

// panelLayout locates the clickable buttons in the rendered view.
type panelLayout struct {
	buttonsX, buttonsY int
	playW, stopW, gap  int
}

func (l panelLayout) hit(x, y int) button {
	h := lipgloss.Height(buttonStyle.Render("Play"))
	if y < l.buttonsY || y >= l.buttonsY+h {
		return noButton
	}
	switch {
	case x >= l.buttonsX && x < l.buttonsX+l.playW:
		return playButton
	case x >= l.buttonsX+l.playW+l.gap && x < l.buttonsX+l.playW+l.gap+l.stopW:
		return stopButton
	}
	return noButton
}

func (m Player) layout() panelLayout {
	plotW := lipgloss.Width(plotStyle.Render(m.canvas.String()))
	_, buttonsY := m.panelLines()
	return panelLayout{
		buttonsX: plotW + panelStyle.GetBorderLeftSize() + panelStyle.GetPaddingLeft(),
		buttonsY: buttonsY,
		playW:    lipgloss.Width(buttonStyle.Render("Play")),
		stopW:    lipgloss.Width(buttonStyle.Render("Stop")),
		gap:      1,
	}
}

// panelLines renders the side panel and returns the line the buttons start on.
func (m Player) panelLines() ([]string, int) {
	p := m.session.Track().Params
	th := m.theme
	bold := lipgloss.NewStyle().Bold(true).Foreground(th.Title)
	value := lipgloss.NewStyle().Foreground(th.Text)
	label := labelStyle.Foreground(th.Text)

	row := func(k, v string) string { return label.Render(k) + value.Render(v) }

	status := m.session.State()
	statusColor := th.Stopped
	if status == anim.Playing {
		statusColor = th.Playing
	}

	lines := []string{
		bold.Render(title),
		"",
		row("MASS", p.Mass),
		row("DRAG", p.Drag),
		row("THETA 1", p.Theta1),
		row("THETA 2", p.Theta2),
		"",
		row("Current time", strconv.Itoa(m.session.CurrentTime())),
		lipgloss.NewStyle().Bold(true).Foreground(statusColor).Render(status.String()),
		lipgloss.NewStyle().Foreground(th.Muted).Render(
			fmt.Sprintf("%s %d/%d", ProgressBar(m.session.Progress(), 20), m.session.Index(), m.session.Track().Len())),
		"",
	}

	// long values wrap inside the panel, so measure the rendered height
	buttonsY := lipgloss.Height(panelStyle.Render(strings.Join(lines, "\n")))
	playBtn := buttonStyle.BorderForeground(th.Muted)
	stopBtn := buttonStyle.BorderForeground(th.Muted)
	if status == anim.Playing {
		playBtn = playBtn.BorderForeground(th.Playing)
	} else {
		stopBtn = stopBtn.BorderForeground(th.Stopped)
	}
	buttons := lipgloss.JoinHorizontal(lipgloss.Top, playBtn.Render("Play"), " ", stopBtn.Render("Stop"))
	lines = append(lines, strings.Split(buttons, "\n")...)
	lines = append(lines, "", keyStyle.Render("P:Play S:Stop SP:Toggle"), keyStyle.Render("T:Theme ?:Help Q:Quit"))
	return lines, buttonsY
}

// View renders the plot and the side panel.
func (m Player) View() string {
	plot := plotStyle.BorderForeground(m.theme.Grid).Render(m.canvas.Render(m.theme.InkStyle))
	lines, _ := m.panelLines()
	body := lipgloss.JoinHorizontal(lipgloss.Top, plot, panelStyle.Render(strings.Join(lines, "\n")))
	if !m.showHelp {
		return body
	}
	legend := lipgloss.JoinHorizontal(lipgloss.Top,
		m.theme.InkStyle(InkCheckpoint).Render("● checkpoint"), "   ",
		m.theme.InkStyle(InkSample).Render("• sample"), "   ",
		m.theme.InkStyle(InkTrack).Render("─ trajectory"))
	help := fmt.Sprintf("x_max ±%d   step delay %v   %d samples   %d checkpoints",
		m.session.Track().Params.XMax, m.session.Delay(), m.session.Track().Len(), len(m.session.Track().Checkpoints))
	return body + "\n\n" + legend + "\n" + keyStyle.Render(help)
}

// Session exposes the playback state.
func (m Player) Session() *anim.Session { return m.session }

// Canvas exposes the drawing surface.
func (m Player) Canvas() *Canvas { return m.canvas }
