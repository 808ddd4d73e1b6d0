package gui

import (
	"fmt"
	"io"
	"log/slog"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/san-kum/trackviz/internal/anim"
	"github.com/san-kum/trackviz/internal/track"
)

const title = "Animated trajectory visualisation"

// Layout of the original 850x500 canvas.
const (
	gridLeft   = 20
	gridRight  = 480
	gridCenter = 250
	gridHalf   = 225
	axisStart  = 25
	axisEnd    = 475

	checkpointRadius = 4
	sampleRadius     = 1

	dashOn  = 4
	dashOff = 1
)

var (
	ColBg         = rl.NewColor(240, 240, 240, 255)
	ColGrid       = rl.White
	ColAxis       = rl.NewColor(60, 60, 60, 255)
	ColText       = rl.Black
	ColTrack      = rl.Black
	ColSample     = rl.Red
	ColCheckpoint = rl.Green
	ColButton     = rl.NewColor(220, 220, 220, 255)
	ColButtonHot  = rl.NewColor(200, 200, 200, 255)
)

// Options configures the window.
type Options struct {
	Delay  time.Duration
	Width  int
	Height int
	FPS    int
	Logger *slog.Logger
}

// Window animates a track in a native raylib window.
type Window struct {
	session *anim.Session
	timer   anim.Timer
	strokes []anim.Stroke
	logger  *slog.Logger

	playBtn rl.Rectangle
	stopBtn rl.Rectangle
}

func initWindow(opts Options) {
	rl.InitWindow(int32(opts.Width), int32(opts.Height), title)
	rl.SetTargetFPS(int32(opts.FPS))
}

// NewWindow returns a stopped window model for t. It does not open the window.
func NewWindow(t *track.Track, opts Options) *Window {
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	proj := anim.Projector{CenterX: gridCenter, CenterY: gridCenter, HalfSpan: gridHalf, XMax: t.Params.XMax}
	return &Window{
		session: anim.NewSession(t, proj, opts.Delay, opts.Logger),
		strokes: make([]anim.Stroke, 0, t.Len()),
		logger:  opts.Logger,
		playBtn: rl.NewRectangle(600, 400, 60, 40),
		stopBtn: rl.NewRectangle(690, 400, 60, 40),
	}
}

// Run opens the window and blocks until it is closed.
func Run(t *track.Track, opts Options) {
	initWindow(opts)
	defer rl.CloseWindow()
	w := NewWindow(t, opts)
	w.RunLoop()
}

func (w *Window) RunLoop() {
	for !rl.WindowShouldClose() {
		w.Update(now())
		w.Draw()
	}
}

func now() time.Duration {
	return time.Duration(rl.GetTime() * float64(time.Second))
}

// Update handles input and fires the step timer.
func (w *Window) Update(t time.Duration) {
	mouse := rl.GetMousePosition()
	clicked := rl.IsMouseButtonPressed(rl.MouseLeftButton)

	switch {
	case rl.IsKeyPressed(rl.KeyP), clicked && rl.CheckCollisionPointRec(mouse, w.playBtn):
		w.play(t)
	case rl.IsKeyPressed(rl.KeyS), clicked && rl.CheckCollisionPointRec(mouse, w.stopBtn):
		w.session.Pause()
	case rl.IsKeyPressed(rl.KeySpace):
		if w.session.State() == anim.Playing {
			w.session.Pause()
		} else {
			w.play(t)
		}
	}

	if stroke, ok := anim.Drive(w.session, &w.timer, t); ok {
		w.strokes = append(w.strokes, stroke)
		w.logger.Debug("step", "index", stroke.Index, "marker", stroke.Marker)
	}
}

func (w *Window) play(t time.Duration) {
	if gen, ok := w.session.Play(); ok {
		w.timer.Schedule(t, 0, gen)
	}
}

func (w *Window) Draw() {
	rl.BeginDrawing()
	rl.ClearBackground(ColBg)

	w.drawGrid()
	w.drawTrack()
	w.drawPanel()

	rl.EndDrawing()
}

func (w *Window) drawGrid() {
	rl.DrawRectangle(gridLeft, gridLeft, gridRight-gridLeft, gridRight-gridLeft, ColGrid)
	dashed(gridCenter, axisStart, gridCenter, axisEnd)
	dashed(axisStart, gridCenter, axisEnd, gridCenter)

	for _, tk := range w.session.Projector().Ticks(12) {
		pos, neg := fmt.Sprint(tk.Value), fmt.Sprint(-tk.Value)
		centered(pos, gridCenter+tk.Offset, gridCenter+10, 10)
		centered(neg, gridCenter-tk.Offset, gridCenter+10, 10)
		centered(neg, gridCenter-10, gridCenter+tk.Offset, 10)
		centered(pos, gridCenter-10, gridCenter-tk.Offset, 10)
	}
}

func (w *Window) drawTrack() {
	for _, s := range w.strokes {
		rl.DrawLine(int32(s.From.X), int32(s.From.Y), int32(s.To.X), int32(s.To.Y), ColTrack)
	}
	for _, s := range w.strokes {
		if s.Marker.Large() {
			rl.DrawCircle(int32(s.To.X), int32(s.To.Y), checkpointRadius, ColCheckpoint)
		} else {
			rl.DrawCircle(int32(s.To.X), int32(s.To.Y), sampleRadius, ColSample)
		}
	}
}

func (w *Window) drawPanel() {
	p := w.session.Track().Params

	centered("Optimal trajectory visualisation", 675, 35, 18)
	rows := []struct {
		key, val string
		y        int
	}{
		{"MASS", p.Mass, 85},
		{"DRAG", p.Drag, 115},
		{"THETA 1", p.Theta1, 145},
		{"THETA 2", p.Theta2, 175},
		{"Current time", fmt.Sprint(w.session.CurrentTime()), 250},
	}
	for _, r := range rows {
		drawText(r.key, 520, r.y-8, 15, ColText)
		drawText(r.val, 640, r.y-8, 15, ColText)
	}
	drawText(w.session.State().String(), 520, 290, 15, ColAxis)

	mouse := rl.GetMousePosition()
	button(w.playBtn, "Play", rl.CheckCollisionPointRec(mouse, w.playBtn))
	button(w.stopBtn, "Stop", rl.CheckCollisionPointRec(mouse, w.stopBtn))
	drawText("[P] PLAY  [S] STOP  [SPACE] TOGGLE  [ESC] QUIT", 520, 470, 10, ColAxis)
}

func button(r rl.Rectangle, label string, hot bool) {
	fill := ColButton
	if hot {
		fill = ColButtonHot
	}
	rl.DrawRectangleRec(r, fill)
	rl.DrawRectangleLinesEx(r, 1, ColAxis)
	centered(label, int(r.X+r.Width/2), int(r.Y+r.Height/2), 15)
}

// dashed draws an axis-aligned dashed line.
func dashed(x0, y0, x1, y1 int) {
	if x0 == x1 {
		for y := y0; y < y1; y += dashOn + dashOff {
			rl.DrawLine(int32(x0), int32(y), int32(x0), int32(min(y+dashOn, y1)), ColAxis)
		}
		return
	}
	for x := x0; x < x1; x += dashOn + dashOff {
		rl.DrawLine(int32(x), int32(y0), int32(min(x+dashOn, x1)), int32(y0), ColAxis)
	}
}

// centered draws text centred on (x, y).
func centered(text string, x, y, size int) {
	w := int(rl.MeasureText(text, int32(size)))
	drawText(text, x-w/2, y-size/2, size, ColText)
}

func drawText(text string, x, y, size int, color rl.Color) {
	rl.DrawText(text, int32(x), int32(y), int32(size), color)
}

// Session exposes the playback state.
func (w *Window) Session() *anim.Session { return w.session }
