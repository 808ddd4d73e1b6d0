package anim

import (
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/trackviz/internal/track"
)

var _ = Describe("Timer", func() {
	It("fires once at the deadline", func() {
		var t Timer
		Expect(t.Armed()).To(BeFalse())

		t.Schedule(time.Second, 100*time.Millisecond, 3)
		_, ok := t.Fire(time.Second + 99*time.Millisecond)
		Expect(ok).To(BeFalse())

		gen, ok := t.Fire(time.Second + 100*time.Millisecond)
		Expect(ok).To(BeTrue())
		Expect(gen).To(Equal(3))

		_, ok = t.Fire(2 * time.Second)
		Expect(ok).To(BeFalse())
	})

	It("replaces a pending tick", func() {
		var t Timer
		t.Schedule(0, time.Second, 1)
		t.Schedule(0, 0, 2)
		gen, ok := t.Fire(0)
		Expect(ok).To(BeTrue())
		Expect(gen).To(Equal(2))
	})
})

var _ = Describe("Drive", func() {
	var (
		s     *Session
		timer Timer
	)

	BeforeEach(func() {
		tr, err := track.New([2][]float64{{1.0, 2.0}, {1.0, 0.0}}, []int{1}, track.Params{XMax: 2})
		Expect(err).NotTo(HaveOccurred())
		s = NewSession(tr, Projector{CenterX: 250, CenterY: 250, HalfSpan: 225, XMax: 2}, 100*time.Millisecond, nil)
		timer = Timer{}
	})

	It("steps one sample per delay and then disarms", func() {
		gen, _ := s.Play()
		timer.Schedule(0, 0, gen)

		first, ok := Drive(s, &timer, 0)
		Expect(ok).To(BeTrue())
		Expect(first.Marker).To(Equal(SampleMarker))

		_, ok = Drive(s, &timer, 50*time.Millisecond)
		Expect(ok).To(BeFalse())

		second, ok := Drive(s, &timer, 100*time.Millisecond)
		Expect(ok).To(BeTrue())
		Expect(second.Marker).To(Equal(CheckpointMarker))

		_, ok = Drive(s, &timer, 200*time.Millisecond)
		Expect(ok).To(BeFalse())
		Expect(timer.Armed()).To(BeFalse())
		Expect(s.State()).To(Equal(Finished))
	})

	It("stops rescheduling after a pause", func() {
		gen, _ := s.Play()
		timer.Schedule(0, 0, gen)
		Drive(s, &timer, 0)

		s.Pause()
		_, ok := Drive(s, &timer, time.Second)
		Expect(ok).To(BeFalse())
		Expect(timer.Armed()).To(BeFalse())
		Expect(s.Index()).To(Equal(1))
	})
})
