package anim

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Projector", func() {
	// Grid of the original window: centre 250, 225 px to each edge.
	var p Projector

	BeforeEach(func() {
		p = Projector{CenterX: 250, CenterY: 250, HalfSpan: 225, XMax: 7}
	})

	It("maps (X, 0) to the right grid edge", func() {
		_, br := p.Bounds()
		Expect(p.ToPixel(7, 0)).To(Equal(Pixel{X: br.X, Y: 250}))
	})

	It("maps (0, X) to the top grid edge", func() {
		tl, _ := p.Bounds()
		Expect(p.ToPixel(0, 7)).To(Equal(Pixel{X: 250, Y: tl.Y}))
	})

	It("inverts the vertical axis", func() {
		up := p.ToPixel(0, 1)
		down := p.ToPixel(0, -1)
		Expect(up.Y).To(BeNumerically("<", p.CenterY))
		Expect(down.Y).To(BeNumerically(">", p.CenterY))
	})

	It("puts the origin at the grid centre", func() {
		Expect(p.ToPixel(0, 0)).To(Equal(p.Origin()))
	})

	DescribeTable("edge mapping holds for any bound",
		func(xMax, half int) {
			q := Projector{CenterX: half, CenterY: half, HalfSpan: half, XMax: xMax}
			x := float64(xMax)
			Expect(q.ToPixel(x, 0).X).To(Equal(2 * half))
			Expect(q.ToPixel(0, x).Y).To(Equal(0))
			Expect(q.ToPixel(-x, -x)).To(Equal(Pixel{X: 0, Y: 2 * half}))
		},
		Entry("x_max 1", 1, 40),
		Entry("x_max 2", 2, 225),
		Entry("x_max 3", 3, 40),
		Entry("x_max 11", 11, 225),
	)

	Describe("Ticks", func() {
		It("labels every unit when there is room", func() {
			ticks := p.Ticks(10)
			Expect(ticks).To(HaveLen(7))
			Expect(ticks[0]).To(Equal(Tick{Value: 1, Offset: 32}))
			Expect(ticks[6].Offset).To(Equal(225))
		})

		It("thins labels that would overlap", func() {
			q := Projector{HalfSpan: 40, XMax: 20}
			ticks := q.Ticks(6)
			Expect(ticks).To(HaveLen(6))
			Expect(ticks[0].Value).To(Equal(3))
			for i := 1; i < len(ticks); i++ {
				Expect(ticks[i].Offset - ticks[i-1].Offset).To(BeNumerically(">=", 6))
			}
		})

		It("returns nothing without a bound", func() {
			Expect(Projector{HalfSpan: 10}.Ticks(1)).To(BeEmpty())
		})
	})
})
