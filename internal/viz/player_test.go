package viz

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/san-kum/trackviz/internal/anim"
	"github.com/san-kum/trackviz/internal/track"
)

func scenarioPlayer(t *testing.T) (Player, *[]time.Duration) {
	t.Helper()
	tr, err := track.New([2][]float64{{1.0, 2.0}, {1.0, 0.0}}, []int{1}, track.Params{
		Mass: "1", Drag: "0.1", Theta1: "0", Theta2: "0", XMax: 2,
	})
	if err != nil {
		t.Fatal(err)
	}
	m := NewPlayer(tr, Options{Delay: 100 * time.Millisecond, Cols: 41, Rows: 21, LabelGap: 6})

	var delays []time.Duration
	m.schedule = func(d time.Duration, gen int) tea.Cmd {
		delays = append(delays, d)
		return func() tea.Msg { return stepMsg{gen: gen} }
	}
	return m, &delays
}

func key(s string) tea.KeyMsg {
	if s == " " {
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func update(t *testing.T, m Player, msg tea.Msg) (Player, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	p, ok := next.(Player)
	if !ok {
		t.Fatalf("unexpected model type %T", next)
	}
	return p, cmd
}

func TestPlayerStartsStopped(t *testing.T) {
	m, delays := scenarioPlayer(t)

	if m.Session().State() != anim.Stopped {
		t.Errorf("expected stopped, got %s", m.Session().State())
	}
	if len(*delays) != 0 {
		t.Error("nothing should be scheduled before play")
	}
	if !strings.Contains(m.View(), "STOPPED") {
		t.Error("view should show stopped state")
	}
}

func TestPlayerScenario(t *testing.T) {
	m, delays := scenarioPlayer(t)
	proj := m.Session().Projector()

	m, cmd := update(t, m, key("p"))
	if cmd == nil {
		t.Fatal("play should schedule a step")
	}

	m, cmd = update(t, m, cmd())
	p0 := proj.ToPixel(1, 1)
	if got := m.Canvas().InkAt(p0.X, p0.Y); got != InkSample {
		t.Errorf("point 0 should be a red sample marker, got ink %d", got)
	}
	if m.Session().CurrentTime() != 0 {
		t.Errorf("expected current time 0, got %d", m.Session().CurrentTime())
	}
	if cmd == nil {
		t.Fatal("expected next tick")
	}

	m, cmd = update(t, m, cmd())
	p1 := proj.ToPixel(2, 0)
	if got := m.Canvas().InkAt(p1.X, p1.Y); got != InkCheckpoint {
		t.Errorf("point 1 should be a green checkpoint marker, got ink %d", got)
	}
	if m.Session().CurrentTime() != 1 {
		t.Errorf("expected current time 1, got %d", m.Session().CurrentTime())
	}

	m, cmd = update(t, m, cmd())
	if cmd != nil {
		t.Error("no tick should be scheduled after the last sample")
	}
	if m.Session().State() != anim.Finished {
		t.Errorf("expected finished, got %s", m.Session().State())
	}

	want := []time.Duration{0, 100 * time.Millisecond, 100 * time.Millisecond}
	if len(*delays) != len(want) {
		t.Fatalf("expected %d schedules, got %v", len(want), *delays)
	}
	for i := range want {
		if (*delays)[i] != want[i] {
			t.Errorf("schedule %d: got %v want %v", i, (*delays)[i], want[i])
		}
	}
}

func TestPlayerPauseDropsPendingTick(t *testing.T) {
	m, _ := scenarioPlayer(t)

	m, cmd := update(t, m, key("p"))
	m, cmd = update(t, m, cmd())
	pending := cmd()

	m, _ = update(t, m, key("s"))
	m, cmd = update(t, m, pending)
	if cmd != nil {
		t.Error("stale tick must not reschedule")
	}
	if m.Session().Index() != 1 {
		t.Errorf("expected index 1, got %d", m.Session().Index())
	}
	p1 := m.Session().Projector().ToPixel(2, 0)
	if m.Canvas().InkAt(p1.X, p1.Y) == InkCheckpoint {
		t.Error("paused player drew the next point")
	}

	m, cmd = update(t, m, key(" "))
	if cmd == nil {
		t.Fatal("space should resume")
	}
	m, _ = update(t, m, cmd())
	if m.Session().Index() != 2 {
		t.Errorf("expected resume from index 1, got index %d", m.Session().Index())
	}
}

func TestPlayerMouseButtons(t *testing.T) {
	m, _ := scenarioPlayer(t)
	l := m.layout()

	click := tea.MouseMsg{X: l.buttonsX + 1, Y: l.buttonsY + 1, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
	m, cmd := update(t, m, click)
	if cmd == nil || m.Session().State() != anim.Playing {
		t.Fatal("clicking Play should start playback")
	}

	stop := tea.MouseMsg{X: l.buttonsX + l.playW + l.gap + 1, Y: l.buttonsY + 1, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
	m, _ = update(t, m, stop)
	if m.Session().State() != anim.Stopped {
		t.Errorf("clicking Stop should pause, got %s", m.Session().State())
	}

	if l.hit(0, 0) != noButton {
		t.Error("plot area is not a button")
	}
}

func TestPlayerMouseButtonsWithWrappedValues(t *testing.T) {
	tr, err := track.New([2][]float64{{1}, {1}}, nil, track.Params{
		Mass: "1.2345678901234567890123456789 kg", Drag: "0.1", Theta1: "0", Theta2: "0", XMax: 2,
	})
	if err != nil {
		t.Fatal(err)
	}
	m := NewPlayer(tr, Options{Delay: time.Millisecond, Cols: 41, Rows: 21, LabelGap: 6})
	l := m.layout()

	row := -1
	for i, line := range strings.Split(m.View(), "\n") {
		if strings.Contains(line, "Play") && strings.Contains(line, "Stop") && !strings.Contains(line, "P:Play") {
			row = i
			break
		}
	}
	if row != l.buttonsY+1 {
		t.Fatalf("button labels rendered on row %d, hit box expects %d", row, l.buttonsY+1)
	}
	if l.hit(l.buttonsX+1, row) != playButton {
		t.Error("click on the Play label should hit the Play button")
	}
}

func TestPlayerView(t *testing.T) {
	m, _ := scenarioPlayer(t)
	m, cmd := update(t, m, key("p"))
	m, _ = update(t, m, cmd())

	view := m.View()
	for _, want := range []string{title, "MASS", "DRAG", "THETA 1", "THETA 2", "Current time", "PLAYING", "Play", "Stop"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}

	m, _ = update(t, m, key("?"))
	if !strings.Contains(m.View(), "checkpoint") {
		t.Error("legend should list checkpoint marker")
	}
}

func TestPlayerQuitAndTheme(t *testing.T) {
	m, _ := scenarioPlayer(t)

	m, _ = update(t, m, key("t"))
	if m.theme.Name != ThemeCyberpunk.Name {
		t.Errorf("expected theme cycle to cyberpunk, got %s", m.theme.Name)
	}

	_, cmd := update(t, m, key("q"))
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("q should quit")
	}
}

func TestPlayerGridLabels(t *testing.T) {
	m, _ := scenarioPlayer(t)
	plain := m.Canvas().String()

	for _, want := range []string{"1", "2", "-1", "-2"} {
		if !strings.Contains(plain, want) {
			t.Errorf("grid missing label %q", want)
		}
	}
}
