package viz

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Braille Patterns: 2x4 dots
// 1 4
// 2 5
// 3 6
// 7 8
//
// Unicode offset 0x2800
var pixelMap = [4][2]int{
	{0x1, 0x8},
	{0x2, 0x10},
	{0x4, 0x20},
	{0x40, 0x80},
}

const blank = rune(0x2800)

// Ink is the colour class of a cell. When several inks land in one cell the
// highest one wins, except InkLabel which is replaced by any dot.
type Ink uint8

const (
	InkNone Ink = iota
	InkGrid
	InkTrack
	InkSample
	InkCheckpoint
	InkLabel
)

// Canvas is a braille pixel canvas with one ink per character cell.
// Its size in sub-pixels is (Width*2) x (Height*4).
type Canvas struct {
	Width, Height int
	Grid          [][]rune
	Inks          [][]Ink
}

func NewCanvas(w, h int) *Canvas {
	c := &Canvas{
		Width:  w,
		Height: h,
		Grid:   make([][]rune, h),
		Inks:   make([][]Ink, h),
	}
	for i := range c.Grid {
		c.Grid[i] = make([]rune, w)
		c.Inks[i] = make([]Ink, w)
	}
	c.Clear()
	return c
}

// Plot sets the sub-pixel (x, y) with the given ink. Out of range is a no-op.
func (c *Canvas) Plot(x, y int, ink Ink) {
	if x < 0 || y < 0 {
		return
	}

	col := x / 2
	row := y / 4
	if col >= c.Width || row >= c.Height {
		return
	}

	if c.Inks[row][col] == InkLabel {
		c.Grid[row][col] = blank
		c.Inks[row][col] = InkNone
	}
	c.Grid[row][col] |= rune(pixelMap[y%4][x%2])
	if ink > c.Inks[row][col] {
		c.Inks[row][col] = ink
	}
}

// IsSet reports whether the sub-pixel (x, y) is lit.
func (c *Canvas) IsSet(x, y int) bool {
	if x < 0 || y < 0 || x/2 >= c.Width || y/4 >= c.Height {
		return false
	}
	r := c.Grid[y/4][x/2]
	if c.Inks[y/4][x/2] == InkLabel {
		return false
	}
	return r&rune(pixelMap[y%4][x%2]) != 0
}

// InkAt returns the ink of the cell holding sub-pixel (x, y).
func (c *Canvas) InkAt(x, y int) Ink {
	if x < 0 || y < 0 || x/2 >= c.Width || y/4 >= c.Height {
		return InkNone
	}
	return c.Inks[y/4][x/2]
}

// Text writes s into cells starting at (col, row), clipped to the canvas.
func (c *Canvas) Text(col, row int, s string) {
	if row < 0 || row >= c.Height {
		return
	}
	for i, r := range []rune(s) {
		cc := col + i
		if cc < 0 || cc >= c.Width {
			continue
		}
		c.Grid[row][cc] = r
		c.Inks[row][cc] = InkLabel
	}
}

// Clear resets the canvas
func (c *Canvas) Clear() {
	for i := range c.Grid {
		for j := range c.Grid[i] {
			c.Grid[i][j] = blank
			c.Inks[i][j] = InkNone
		}
	}
}

// DrawLine draws a line using Bresenham's algorithm
func (c *Canvas) DrawLine(x0, y0, x1, y1 int, ink Ink) {
	c.line(x0, y0, x1, y1, 1, 0, ink)
}

// DrawDashed draws a line lighting `on` pixels then skipping `off`.
func (c *Canvas) DrawDashed(x0, y0, x1, y1, on, off int, ink Ink) {
	c.line(x0, y0, x1, y1, on, off, ink)
}

func (c *Canvas) line(x0, y0, x1, y1, on, off int, ink Ink) {
	dx := absInt(x1 - x0)
	dy := absInt(y1 - y0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx - dy
	period := on + off

	for n := 0; ; n++ {
		if off == 0 || n%period < on {
			c.Plot(x0, y0, ink)
		}
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x0 += sx
		}
		if e2 < dx {
			err += dx
			y0 += sy
		}
	}
}

// Disc fills a circle of radius r around (cx, cy).
func (c *Canvas) Disc(cx, cy, r int, ink Ink) {
	limit := r*r + r
	for dy := -r; dy <= r; dy++ {
		for dx := -r; dx <= r; dx++ {
			if dx*dx+dy*dy <= limit {
				c.Plot(cx+dx, cy+dy, ink)
			}
		}
	}
}

func (c *Canvas) String() string {
	var b strings.Builder
	for _, row := range c.Grid {
		b.WriteString(string(row) + "\n")
	}
	return b.String()
}

// Render colours each run of equally inked cells with the matching style.
func (c *Canvas) Render(style func(Ink) lipgloss.Style) string {
	var b strings.Builder
	for i, row := range c.Grid {
		start := 0
		for j := 1; j <= len(row); j++ {
			if j < len(row) && c.Inks[i][j] == c.Inks[i][start] {
				continue
			}
			b.WriteString(style(c.Inks[i][start]).Render(string(row[start:j])))
			start = j
		}
		if i < len(c.Grid)-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
