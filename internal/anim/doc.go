// Package anim holds the toolkit-independent part of the trajectory player.
//
// A [Session] owns all mutable playback state: the current sample index, the
// play/pause state and the last drawn pixel. Frontends feed it timer ticks
// and draw the [Stroke] values it returns:
//
//	gen, ok := s.Play()
//	// schedule a tick carrying gen
//	stroke, ok := s.Step(gen)
//	// draw stroke, schedule the next tick after s.Delay()
//
// Every Play starts a new tick generation. Ticks scheduled before a Pause or
// a second Play carry an older generation and are dropped by Step, so only
// one step loop is ever live.
//
// A [Projector] maps domain coordinates onto the frontend's pixel grid.
package anim
