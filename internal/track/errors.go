package track

import (
	"errors"
	"fmt"
)

// Loader errors. Callers match them with errors.Is.
var (
	// ErrFileMissing indicates the track file does not exist or cannot be opened.
	ErrFileMissing = errors.New("track: file not found")

	// ErrMalformed indicates the file has fewer lines or tokens than its sample count implies.
	ErrMalformed = errors.New("track: invalid file format")

	// ErrInvalidTrack indicates in-memory data that cannot be animated.
	ErrInvalidTrack = errors.New("track: invalid track data")
)

// LineError wraps a parse failure with the 0-indexed line it happened on.
type LineError struct {
	Line    int
	Reason  string
	Wrapped error
}

func (e *LineError) Error() string {
	return fmt.Sprintf("%s (line %d: %s)", e.Wrapped.Error(), e.Line, e.Reason)
}

func (e *LineError) Unwrap() error {
	return e.Wrapped
}

func malformed(line int, format string, args ...any) error {
	return &LineError{Line: line, Reason: fmt.Sprintf(format, args...), Wrapped: ErrMalformed}
}
