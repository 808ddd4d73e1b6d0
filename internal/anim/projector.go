package anim

import "math"

// Pixel is a position on a frontend's drawing surface. Y grows downwards.
type Pixel struct {
	X, Y int
}

// Projector maps domain coordinates in [-XMax, XMax] onto a square grid of
// pixels centred at (CenterX, CenterY) with HalfSpan pixels from centre to edge.
type Projector struct {
	CenterX  int
	CenterY  int
	HalfSpan int
	XMax     int
}

// Scale returns pixels per domain unit.
func (p Projector) Scale() float64 {
	if p.XMax <= 0 {
		return 0
	}
	return float64(p.HalfSpan) / float64(p.XMax)
}

// ToPixel converts a domain point. Increasing y moves up the screen.
func (p Projector) ToPixel(x, y float64) Pixel {
	s := p.Scale()
	return Pixel{
		X: p.CenterX + int(math.Round(x*s)),
		Y: p.CenterY - int(math.Round(y*s)),
	}
}

// Origin is the pixel of the domain point (0, 0).
func (p Projector) Origin() Pixel {
	return Pixel{X: p.CenterX, Y: p.CenterY}
}

// Bounds returns the top-left and bottom-right grid corners.
func (p Projector) Bounds() (Pixel, Pixel) {
	return Pixel{X: p.CenterX - p.HalfSpan, Y: p.CenterY - p.HalfSpan},
		Pixel{X: p.CenterX + p.HalfSpan, Y: p.CenterY + p.HalfSpan}
}

// Tick is an integer axis label and its pixel distance from the centre.
type Tick struct {
	Value  int
	Offset int
}

// Ticks returns the labels 1..XMax, keeping only every n-th one so that
// consecutive labels are at least minGap pixels apart.
func (p Projector) Ticks(minGap int) []Tick {
	if p.XMax <= 0 {
		return nil
	}
	s := p.Scale()
	every := 1
	if minGap > 0 && s > 0 && s < float64(minGap) {
		every = int(math.Ceil(float64(minGap) / s))
	}
	ticks := make([]Tick, 0, p.XMax/every)
	for i := every; i <= p.XMax; i += every {
		ticks = append(ticks, Tick{Value: i, Offset: int(math.Round(float64(i) * s))})
	}
	return ticks
}
