package anim

import "github.com/san-kum/trackviz/internal/track"

// Marker is the style a sample is drawn with.
type Marker int

const (
	// SampleMarker is the small red dot used for ordinary samples.
	SampleMarker Marker = iota
	// CheckpointMarker is the large green dot used for checkpoints.
	CheckpointMarker
)

// MarkerFor picks the style for sample i.
func MarkerFor(cp track.Checkpoints, i int) Marker {
	if cp.Has(i) {
		return CheckpointMarker
	}
	return SampleMarker
}

func (m Marker) Large() bool { return m == CheckpointMarker }

// Color is the colour name used by every frontend.
func (m Marker) Color() string {
	if m == CheckpointMarker {
		return "green"
	}
	return "red"
}

func (m Marker) String() string {
	if m == CheckpointMarker {
		return "checkpoint"
	}
	return "sample"
}
