package anim

import "time"

// Timer is a single pending tick for frame-loop toolkits that poll a clock
// instead of delivering timer events. Scheduling replaces any pending tick.
type Timer struct {
	due   time.Duration
	gen   int
	armed bool
}

// Schedule arms the timer to fire at now+after with the given generation.
func (t *Timer) Schedule(now, after time.Duration, gen int) {
	t.due = now + after
	t.gen = gen
	t.armed = true
}

// Fire returns the pending generation once now has reached the deadline,
// disarming the timer.
func (t *Timer) Fire(now time.Duration) (int, bool) {
	if !t.armed || now < t.due {
		return 0, false
	}
	t.armed = false
	return t.gen, true
}

// Armed reports whether a tick is pending.
func (t *Timer) Armed() bool { return t.armed }

// Drive fires t against s: a due tick steps the session and, when a stroke
// was produced, the next tick is scheduled after the session delay.
func Drive(s *Session, t *Timer, now time.Duration) (Stroke, bool) {
	gen, ok := t.Fire(now)
	if !ok {
		return Stroke{}, false
	}
	stroke, ok := s.Step(gen)
	if ok {
		t.Schedule(now, s.Delay(), gen)
	}
	return stroke, ok
}
