package track

import (
	"fmt"
	"sort"
)

// Positions holds index-aligned x and y coordinates, one pair per time step.
type Positions struct {
	X []float64
	Y []float64
}

// Len returns the number of samples.
func (p Positions) Len() int {
	return len(p.X)
}

// At returns the sample at index i.
func (p Positions) At(i int) (float64, float64) {
	return p.X[i], p.Y[i]
}

// Checkpoints is the set of sample indices rendered as mandatory waypoints.
type Checkpoints map[int]struct{}

func NewCheckpoints(indices ...int) Checkpoints {
	c := make(Checkpoints, len(indices))
	for _, i := range indices {
		c[i] = struct{}{}
	}
	return c
}

func (c Checkpoints) Has(i int) bool {
	_, ok := c[i]
	return ok
}

// Sorted returns the indices in ascending order.
func (c Checkpoints) Sorted() []int {
	out := make([]int, 0, len(c))
	for i := range c {
		out = append(out, i)
	}
	sort.Ints(out)
	return out
}

// Params are the simulation values shown next to the plot. Mass, drag and the
// thrust angles are display-only and never converted to numbers.
type Params struct {
	Mass   string
	Drag   string
	Theta1 string
	Theta2 string
	// Delay is the per-step delay line as written in the file.
	Delay  string
	XMax   int
}

// Track is a fully loaded trajectory. It is not modified after construction.
type Track struct {
	Positions   Positions
	Checkpoints Checkpoints
	Params      Params
}

// New builds a track from in-memory data and validates it.
func New(positions [2][]float64, checkpoints []int, params Params) (*Track, error) {
	t := &Track{
		Positions:   Positions{X: positions[0], Y: positions[1]},
		Checkpoints: NewCheckpoints(checkpoints...),
		Params:      params,
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return t, nil
}

// Validate reports data that would make the player index out of range or divide by zero.
func (t *Track) Validate() error {
	if len(t.Positions.X) != len(t.Positions.Y) {
		return fmt.Errorf("%w: %d x values but %d y values", ErrInvalidTrack, len(t.Positions.X), len(t.Positions.Y))
	}
	if t.Params.XMax <= 0 {
		return fmt.Errorf("%w: x_max must be positive, got %d", ErrInvalidTrack, t.Params.XMax)
	}
	return nil
}

// Len returns the number of samples.
func (t *Track) Len() int {
	return t.Positions.Len()
}
