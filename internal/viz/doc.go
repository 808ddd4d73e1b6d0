// Package viz is the terminal frontend of the trajectory player.
//
// [Player] is a Bubble Tea model that draws the grid and the animated track
// on a braille [Canvas] and lists the simulation parameters beside it. Each
// animation step is a tea.Tick carrying the generation of the Play that
// scheduled it, so pausing or replaying drops ticks already in flight.
//
// # Key Bindings
//
//	P, Enter - Play
//	S        - Stop
//	Space    - Play/Stop
//	T        - Cycle color themes
//	?        - Show legend
//	Q, Esc   - Quit
//
// The Play and Stop buttons in the side panel also accept mouse clicks.
package viz
