package export

import (
	"fmt"
	"strings"

	"github.com/san-kum/trackviz/internal/anim"
	"github.com/san-kum/trackviz/internal/track"
)

const (
	svgMargin        = 25
	checkpointRadius = 4
	sampleRadius     = 1
)

// TrackToSVG renders the whole track as it looks once playback has finished:
// dashed axes, integer labels, the connecting path from the origin and one
// marker per sample.
func TrackToSVG(t *track.Track, size int) string {
	half := size/2 - svgMargin
	proj := anim.Projector{CenterX: size / 2, CenterY: size / 2, HalfSpan: half, XMax: t.Params.XMax}
	tl, br := proj.Bounds()
	c := size / 2

	var sb strings.Builder

	// SVG header
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#ffffff"/>
<g stroke="#3c3c3c" stroke-dasharray="4,1">
<line x1="%d" y1="%d" x2="%d" y2="%d"/>
<line x1="%d" y1="%d" x2="%d" y2="%d"/>
</g>
`, size, size, size, size, c, tl.Y, c, br.Y, tl.X, c, br.X, c))

	sb.WriteString(`<g font-family="sans-serif" font-size="10" text-anchor="middle">` + "\n")
	for _, tk := range proj.Ticks(12) {
		sb.WriteString(fmt.Sprintf(`<text x="%d" y="%d">%d</text>
<text x="%d" y="%d">%d</text>
<text x="%d" y="%d">%d</text>
<text x="%d" y="%d">%d</text>
`, c+tk.Offset, c+14, tk.Value, c-tk.Offset, c+14, -tk.Value,
			c-12, c-tk.Offset+4, tk.Value, c-12, c+tk.Offset+4, -tk.Value))
	}
	sb.WriteString("</g>\n")

	if t.Len() == 0 {
		sb.WriteString("</svg>")
		return sb.String()
	}

	o := proj.Origin()
	sb.WriteString(fmt.Sprintf(`<path fill="none" stroke="#000000" stroke-width="1" d="M%d,%d`, o.X, o.Y))
	for i := 0; i < t.Len(); i++ {
		p := proj.ToPixel(t.Positions.At(i))
		sb.WriteString(fmt.Sprintf(" L%d,%d", p.X, p.Y))
	}
	sb.WriteString(`"/>` + "\n")

	for i := 0; i < t.Len(); i++ {
		p := proj.ToPixel(t.Positions.At(i))
		m := anim.MarkerFor(t.Checkpoints, i)
		r := sampleRadius
		if m.Large() {
			r = checkpointRadius
		}
		sb.WriteString(fmt.Sprintf(`<circle cx="%d" cy="%d" r="%d" fill="%s"><title>%d</title></circle>
`, p.X, p.Y, r, m.Color(), i))
	}

	sb.WriteString("</svg>")
	return sb.String()
}
