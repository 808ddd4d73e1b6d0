package anim

import (
	"log/slog"
	"time"

	"github.com/san-kum/trackviz/internal/track"
)

// State is the playback state of a Session.
type State int

const (
	Stopped State = iota
	Playing
	// Finished means every sample has been drawn. It schedules nothing, like Stopped.
	Finished
)

func (s State) String() string {
	switch s {
	case Playing:
		return "PLAYING"
	case Finished:
		return "FINISHED"
	default:
		return "STOPPED"
	}
}

// Stroke is one animation step: a segment from the previously drawn point
// and a marker at the new one.
type Stroke struct {
	Index  int
	From   Pixel
	To     Pixel
	Marker Marker
}

// Session steps through a track one sample per tick.
type Session struct {
	track  *track.Track
	proj   Projector
	delay  time.Duration
	logger *slog.Logger

	state State
	index int
	gen   int
	prev  Pixel
	drawn int
}

// NewSession returns a stopped session positioned at the first sample.
func NewSession(t *track.Track, proj Projector, delay time.Duration, logger *slog.Logger) *Session {
	if logger == nil {
		logger = slog.Default()
	}
	return &Session{
		track:  t,
		proj:   proj,
		delay:  delay,
		logger: logger,
		state:  Stopped,
		prev:   proj.Origin(),
		drawn:  -1,
	}
}

// Play enters Playing and starts a new tick generation. The caller should
// schedule an immediate tick carrying the returned generation. ok is false
// when every sample is already drawn.
func (s *Session) Play() (gen int, ok bool) {
	if s.index >= s.track.Len() {
		s.state = Finished
		return s.gen, false
	}
	s.state = Playing
	s.gen++
	s.logger.Debug("play", "index", s.index, "generation", s.gen)
	return s.gen, true
}

// Pause stops a playing session. Pending ticks are ignored by Step.
func (s *Session) Pause() {
	if s.state != Playing {
		return
	}
	s.state = Stopped
	s.logger.Debug("pause", "index", s.index)
}

// Toggle pauses a playing session and plays any other.
func (s *Session) Toggle() (gen int, ok bool) {
	if s.state == Playing {
		s.Pause()
		return s.gen, false
	}
	return s.Play()
}

// Step draws the sample at the current index. It returns false, and the
// caller must not schedule another tick, when the session is not playing,
// gen is stale, or the track is exhausted.
func (s *Session) Step(gen int) (Stroke, bool) {
	if s.state != Playing || gen != s.gen {
		return Stroke{}, false
	}
	if s.index >= s.track.Len() {
		s.state = Finished
		s.logger.Debug("finished", "samples", s.track.Len())
		return Stroke{}, false
	}

	x, y := s.track.Positions.At(s.index)
	to := s.proj.ToPixel(x, y)
	stroke := Stroke{
		Index:  s.index,
		From:   s.prev,
		To:     to,
		Marker: MarkerFor(s.track.Checkpoints, s.index),
	}

	s.prev = to
	s.drawn = s.index
	s.index++
	return stroke, true
}

func (s *Session) State() State { return s.state }

// Index is the next sample to draw.
func (s *Session) Index() int { return s.index }

func (s *Session) Generation() int { return s.gen }

func (s *Session) Delay() time.Duration { return s.delay }

func (s *Session) Track() *track.Track { return s.track }

func (s *Session) Projector() Projector { return s.proj }

// CurrentTime is the index of the last drawn sample, 0 before the first step.
func (s *Session) CurrentTime() int {
	if s.drawn < 0 {
		return 0
	}
	return s.drawn
}

// Progress returns the fraction of samples drawn.
func (s *Session) Progress() float64 {
	if s.track.Len() == 0 {
		return 1
	}
	return float64(s.index) / float64(s.track.Len())
}
