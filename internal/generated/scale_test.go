package generated_test

import (
	"math"
	"sync"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/slidescale/internal/calc"
	"github.com/san-kum/slidescale/internal/generated"
	"github.com/san-kum/slidescale/internal/scale"
	"github.com/san-kum/slidescale/internal/scalefunc"
)

var cTable = []scale.Subsection{
	{Start: 1, Intervals: []float64{1, 0.1, 0.05, 0.01}, Labels: []int{0, 1}},
	{Start: 2, Intervals: []float64{1, 0.5, 0.1, 0.02}, Labels: []int{0}},
	{Start: 4, Intervals: []float64{1, 0.5, 0.1, 0.05}, Labels: []int{0}},
}

func mustDefinition(begin, end float64, opts ...scale.Option) *scale.Definition {
	opts = append([]scale.Option{scale.WithSubsections(cTable...)}, opts...)
	d, err := scale.New("C", scalefunc.Log{}, begin, end, opts...)
	Expect(err).NotTo(HaveOccurred())
	return d
}

func coarse(opts ...scale.Option) *scale.Definition {
	opts = append([]scale.Option{scale.WithSubsections(
		scale.Subsection{Start: 0, Intervals: []float64{10}, Labels: []int{0}},
	)}, opts...)
	d, err := scale.New("deg", scalefunc.Linear{}, 0, 90, opts...)
	Expect(err).NotTo(HaveOccurred())
	return d
}

var _ = Describe("Scale", func() {
	Describe("on a dial", func() {
		var s *generated.Scale

		BeforeEach(func() {
			s = generated.New(mustDefinition(1, 10, scale.WithCircular(100)), calc.Modulo)
		})

		It("returns the 0° tick for a cursor just short of 360°", func() {
			t, ok := s.NearestTickToAngle(359.9)
			Expect(ok).To(BeTrue())
			Expect(t.Value).To(Equal(1.0))
			Expect(t.Angle()).To(BeNumerically("~", 0, 1e-9))
		})

		It("wraps position queries around the dial", func() {
			t, ok := s.NearestTickToPosition(0.99999)
			Expect(ok).To(BeTrue())
			Expect(t.Value).To(Equal(1.0))
		})

		It("returns every tick exactly once for a full-circle query", func() {
			ticks := s.TicksInAngularRange(0, 360)
			Expect(ticks).To(HaveLen(s.Len()))

			seen := map[float64]bool{}
			for _, t := range ticks {
				Expect(seen[t.Position]).To(BeFalse(), "duplicate position %v", t.Position)
				seen[t.Position] = true
			}
		})

		It("splits wrapping sweeps into two ranges", func() {
			wrapped := s.TicksInWrappingRange(350, 10)
			direct := append(s.TicksInAngularRange(350, 360), s.TicksInAngularRange(0, 10)...)
			Expect(wrapped).To(Equal(direct))
			Expect(wrapped).NotTo(BeEmpty())
			Expect(s.TicksInWrappingRange(0, 360)).To(HaveLen(s.Len()))
		})

		It("rejects a wrapping range passed as a plain range", func() {
			Expect(s.TicksInAngularRange(350, 10)).To(BeNil())
		})

		It("returns at most one tick for a zero-width range", func() {
			Expect(len(s.TicksInAngularRange(0, 0))).To(Equal(1))
			Expect(len(s.TicksInAngularRange(1.234, 1.234))).To(BeNumerically("<=", 1))
		})
	})

	Describe("tie breaking", func() {
		It("prefers the earlier tick in generation order", func() {
			s := generated.New(coarse(), calc.Modulo)

			t, ok := s.NearestTickToPosition(5.0 / 90)
			Expect(ok).To(BeTrue())
			Expect(t.Value).To(Equal(0.0))

			t, ok = s.NearestTickToAngle(s.Ticks()[1].Angle() / 2)
			Expect(ok).To(BeTrue())
			Expect(t.Value).To(Equal(0.0))
		})

		It("is stable for per-level duplicates", func() {
			s := generated.New(mustDefinition(1, 10), calc.PerLevel)
			t, ok := s.NearestTickToPosition(math.Log10(2))
			Expect(ok).To(BeTrue())
			Expect(t.Value).To(Equal(2.0))
			Expect(t.Level).To(Equal(0))
			Expect(s.TicksInRange(math.Log10(2), math.Log10(2))).To(HaveLen(4))
		})
	})

	Describe("on a linear scale", func() {
		It("does not wrap position queries", func() {
			s := generated.New(mustDefinition(1, 10), calc.Modulo)
			t, ok := s.NearestTickToPosition(0.9999)
			Expect(ok).To(BeTrue())
			Expect(t.Value).To(Equal(10.0))
		})

		It("keeps both ends", func() {
			s := generated.New(coarse(), calc.Modulo)
			Expect(s.Len()).To(Equal(10))
			Expect(s.TicksInRange(0, 1)).To(HaveLen(10))
			Expect(s.TicksInRange(0.5, 1)).To(HaveLen(5))
		})
	})

	It("exposes labels and constants", func() {
		s := generated.New(mustDefinition(1, 10, scale.WithConstants(scale.Constant{Label: "π", Value: math.Pi})), calc.Modulo)
		Expect(s.Constants()).To(HaveLen(1))
		Expect(s.Constants()[0].Level).To(Equal(calc.ConstantLevel))
		for _, t := range s.LabeledTicks() {
			Expect(t.Label).NotTo(BeEmpty())
		}
		Expect(s.LabeledTicks()).To(HaveLen(10 + 2 + 7))
	})

	It("rejects non-finite queries", func() {
		s := generated.New(mustDefinition(1, 10), calc.Modulo)
		_, ok := s.NearestTickToAngle(math.NaN())
		Expect(ok).To(BeFalse())
		_, ok = s.NearestTickToPosition(math.Inf(1))
		Expect(ok).To(BeFalse())
	})

	It("hands out copies of its ticks", func() {
		s := generated.New(mustDefinition(1, 10), calc.Modulo)
		ticks := s.Ticks()
		ticks[0].Value = 99
		Expect(s.Ticks()[0].Value).To(Equal(1.0))
	})

	It("serves concurrent readers", func() {
		s := generated.New(mustDefinition(1, 10, scale.WithCircular(60)), calc.Modulo)
		want, _ := s.NearestTickToAngle(123.4)

		var wg sync.WaitGroup
		results := make([]calc.TickMark, 16)
		for i := range results {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				results[i], _ = s.NearestTickToAngle(123.4)
				_ = s.TicksInAngularRange(0, 360)
			}(i)
		}
		wg.Wait()
		for _, r := range results {
			Expect(r).To(Equal(want))
		}
	})

	It("builds many scales in input order", func() {
		defs := []*scale.Definition{
			mustDefinition(1, 10),
			coarse(),
			mustDefinition(10, 1),
			mustDefinition(1, 10, scale.WithCircular(40)),
		}
		built := generated.BuildAll(defs, calc.Modulo)
		Expect(built).To(HaveLen(len(defs)))
		for i, s := range built {
			Expect(s.Definition()).To(BeIdenticalTo(defs[i]))
			Expect(s.Algorithm()).To(Equal(calc.Modulo))
		}
	})
})
