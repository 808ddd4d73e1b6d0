package track

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"strings"
)

// Layout offsets relative to the sample count T.
const (
	offsetDelay       = 1
	offsetMass        = 2
	offsetDrag        = 3
	offsetThetas      = 4
	offsetCheckpoints = 5
	offsetXMax        = 6

	// trailerLines is the number of lines after the sample rows.
	trailerLines = 6

	// maxLineSize bounds a single line; checkpoint lines can be long.
	maxLineSize = 64 << 20
)

// Load opens path and parses it with Parse.
func Load(path string, logger *slog.Logger) (*Track, error) {
	if logger == nil {
		logger = slog.Default()
	}
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) || errors.Is(err, fs.ErrPermission) {
			return nil, fmt.Errorf("%w: %s", ErrFileMissing, path)
		}
		return nil, fmt.Errorf("%w: %s: %v", ErrFileMissing, path, err)
	}
	defer f.Close()

	t, err := Parse(f, logger)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", path, err)
	}
	logger.Debug("loaded track", "path", path, "samples", t.Len(), "checkpoints", len(t.Checkpoints), "x_max", t.Params.XMax)
	return t, nil
}

// Parse reads the line-oriented track layout:
//
//	T
//	x y            (T lines)
//	delay
//	mass
//	drag
//	theta_1 theta_2
//	checkpoint indices
//	x_max
//
// Nothing is returned unless the whole file parses.
func Parse(r io.Reader, logger *slog.Logger) (*Track, error) {
	if logger == nil {
		logger = slog.Default()
	}
	lines, err := readLines(r)
	if err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		return nil, malformed(0, "empty file")
	}

	n, err := strconv.Atoi(strings.TrimSpace(lines[0]))
	if err != nil {
		return nil, malformed(0, "sample count %q is not an integer", strings.TrimSpace(lines[0]))
	}
	if n < 0 {
		return nil, malformed(0, "negative sample count %d", n)
	}
	if n > len(lines)-trailerLines-1 {
		return nil, malformed(len(lines), "%d samples need %d more lines, got %d", n, trailerLines, len(lines)-1)
	}

	pos := Positions{X: make([]float64, 0, n), Y: make([]float64, 0, n)}
	for i := 1; i <= n; i++ {
		fields := strings.Fields(lines[i])
		if len(fields) < 2 {
			return nil, malformed(i, "want 2 coordinates, got %d", len(fields))
		}
		x, err := strconv.ParseFloat(fields[0], 64)
		if err != nil {
			return nil, malformed(i, "bad x %q", fields[0])
		}
		y, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			return nil, malformed(i, "bad y %q", fields[1])
		}
		pos.X = append(pos.X, x)
		pos.Y = append(pos.Y, y)
	}

	thetas := strings.Fields(lines[n+offsetThetas])
	if len(thetas) < 2 {
		return nil, malformed(n+offsetThetas, "want 2 thrust angles, got %d", len(thetas))
	}

	cpLine := n + offsetCheckpoints
	var indices []int
	for _, tok := range strings.Fields(lines[cpLine]) {
		idx, err := strconv.Atoi(tok)
		if err != nil {
			return nil, malformed(cpLine, "bad checkpoint index %q", tok)
		}
		if idx < 0 || idx >= n {
			logger.Debug("checkpoint outside sample range", "index", idx, "samples", n)
		}
		indices = append(indices, idx)
	}

	xMaxLine := n + offsetXMax
	xMax, err := strconv.Atoi(strings.TrimSpace(lines[xMaxLine]))
	if err != nil {
		return nil, malformed(xMaxLine, "x_max %q is not an integer", strings.TrimSpace(lines[xMaxLine]))
	}
	if xMax <= 0 {
		return nil, malformed(xMaxLine, "x_max must be positive, got %d", xMax)
	}

	return &Track{
		Positions:   pos,
		Checkpoints: NewCheckpoints(indices...),
		Params: Params{
			Delay:  strings.TrimSpace(lines[n+offsetDelay]),
			Mass:   strings.TrimSpace(lines[n+offsetMass]),
			Drag:   strings.TrimSpace(lines[n+offsetDrag]),
			Theta1: thetas[0],
			Theta2: thetas[1],
			XMax:   xMax,
		},
	}, nil
}

func readLines(r io.Reader) ([]string, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, bufio.MaxScanTokenSize), maxLineSize)
	var lines []string
	for scanner.Scan() {
		lines = append(lines, strings.TrimRight(scanner.Text(), "\r"))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading track data: %w", err)
	}
	return lines, nil
}
