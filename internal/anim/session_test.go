package anim

import (
	"io"
	"log/slog"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/trackviz/internal/track"
)

var _ = Describe("Session", func() {
	var (
		tr   *track.Track
		proj Projector
		s    *Session
	)

	BeforeEach(func() {
		var err error
		tr, err = track.New([2][]float64{{1.0, 2.0}, {1.0, 0.0}}, []int{1}, track.Params{
			Mass: "1", Drag: "0.1", Theta1: "0", Theta2: "0", XMax: 2,
		})
		Expect(err).NotTo(HaveOccurred())
		proj = Projector{CenterX: 250, CenterY: 250, HalfSpan: 225, XMax: 2}
		s = NewSession(tr, proj, 100*time.Millisecond, slog.New(slog.NewTextHandler(io.Discard, nil)))
	})

	It("starts stopped at the first sample", func() {
		Expect(s.State()).To(Equal(Stopped))
		Expect(s.Index()).To(Equal(0))
		Expect(s.CurrentTime()).To(Equal(0))
		Expect(s.Delay()).To(Equal(100 * time.Millisecond))
	})

	It("ignores ticks while stopped", func() {
		_, ok := s.Step(s.Generation())
		Expect(ok).To(BeFalse())
		Expect(s.Index()).To(Equal(0))
	})

	It("draws a small red point then a large green checkpoint, then stops", func() {
		gen, ok := s.Play()
		Expect(ok).To(BeTrue())
		Expect(s.State()).To(Equal(Playing))

		first, ok := s.Step(gen)
		Expect(ok).To(BeTrue())
		Expect(first.Index).To(Equal(0))
		Expect(first.From).To(Equal(proj.Origin()))
		Expect(first.To).To(Equal(proj.ToPixel(1, 1)))
		Expect(first.Marker).To(Equal(SampleMarker))
		Expect(first.Marker.Color()).To(Equal("red"))
		Expect(first.Marker.Large()).To(BeFalse())
		Expect(s.CurrentTime()).To(Equal(0))

		second, ok := s.Step(gen)
		Expect(ok).To(BeTrue())
		Expect(second.Index).To(Equal(1))
		Expect(second.From).To(Equal(first.To))
		Expect(second.To).To(Equal(Pixel{X: 475, Y: 250}))
		Expect(second.Marker).To(Equal(CheckpointMarker))
		Expect(second.Marker.Color()).To(Equal("green"))
		Expect(second.Marker.Large()).To(BeTrue())
		Expect(s.CurrentTime()).To(Equal(1))

		_, ok = s.Step(gen)
		Expect(ok).To(BeFalse())
		Expect(s.State()).To(Equal(Finished))
		Expect(s.Progress()).To(BeNumerically("==", 1))
	})

	It("drops ticks scheduled before a pause", func() {
		gen, _ := s.Play()
		_, ok := s.Step(gen)
		Expect(ok).To(BeTrue())

		s.Pause()
		Expect(s.State()).To(Equal(Stopped))
		_, ok = s.Step(gen)
		Expect(ok).To(BeFalse())
		Expect(s.Index()).To(Equal(1))
	})

	It("resumes from the current index with a fresh generation", func() {
		gen, _ := s.Play()
		s.Step(gen)
		s.Pause()

		next, ok := s.Play()
		Expect(ok).To(BeTrue())
		Expect(next).NotTo(Equal(gen))

		_, ok = s.Step(gen)
		Expect(ok).To(BeFalse(), "stale tick from the first run")

		stroke, ok := s.Step(next)
		Expect(ok).To(BeTrue())
		Expect(stroke.Index).To(Equal(1))
	})

	It("keeps a single step loop when play is pressed twice", func() {
		first, _ := s.Play()
		second, _ := s.Play()

		_, ok := s.Step(first)
		Expect(ok).To(BeFalse())
		_, ok = s.Step(second)
		Expect(ok).To(BeTrue())
		Expect(s.Index()).To(Equal(1))
	})

	It("draws nothing when played at the end", func() {
		gen, _ := s.Play()
		s.Step(gen)
		s.Step(gen)
		s.Step(gen)

		_, ok := s.Play()
		Expect(ok).To(BeFalse())
		Expect(s.State()).To(Equal(Finished))
	})

	It("toggles between playing and stopped", func() {
		_, ok := s.Toggle()
		Expect(ok).To(BeTrue())
		Expect(s.State()).To(Equal(Playing))

		_, ok = s.Toggle()
		Expect(ok).To(BeFalse())
		Expect(s.State()).To(Equal(Stopped))
	})

	It("handles an empty track", func() {
		empty, err := track.New([2][]float64{nil, nil}, nil, track.Params{XMax: 1})
		Expect(err).NotTo(HaveOccurred())
		e := NewSession(empty, proj, time.Millisecond, nil)

		_, ok := e.Play()
		Expect(ok).To(BeFalse())
		Expect(e.State()).To(Equal(Finished))
	})
})

var _ = Describe("MarkerFor", func() {
	It("uses the checkpoint style only for listed indices", func() {
		cp := track.NewCheckpoints(0, 3)
		for i := 0; i < 5; i++ {
			m := MarkerFor(cp, i)
			if i == 0 || i == 3 {
				Expect(m).To(Equal(CheckpointMarker), "index %d", i)
			} else {
				Expect(m).To(Equal(SampleMarker), "index %d", i)
			}
		}
	})
})
