package ode_test

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/mhalvorsen/odelab/internal/ode"
)

var _ = Describe("State", func() {
	Describe("IsValid", func() {
		It("accepts empty and finite states", func() {
			Expect(ode.State{}.IsValid()).To(BeTrue())
			Expect(ode.State{0, 0}.IsValid()).To(BeTrue())
			Expect(ode.State{1.0, -2.5, 3.0}.IsValid()).To(BeTrue())
		})

		It("rejects NaN and infinities", func() {
			Expect(ode.State{1.0, math.NaN()}.IsValid()).To(BeFalse())
			Expect(ode.State{math.Inf(1)}.IsValid()).To(BeFalse())
			Expect(ode.State{math.Inf(-1), 0}.IsValid()).To(BeFalse())
		})
	})

	Describe("Norm", func() {
		It("computes the Euclidean norm", func() {
			Expect(ode.State{3, 4}.Norm()).To(BeNumerically("~", 5.0, 1e-12))
			Expect(ode.State{1, 1, 1, 1}.Norm()).To(BeNumerically("~", 2.0, 1e-12))
			Expect(ode.State{}.Norm()).To(BeZero())
		})
	})

	Describe("Clone", func() {
		It("creates an independent copy", func() {
			src := ode.State{1, 2, 3}
			dst := src.Clone()
			dst[0] = 99
			Expect(src[0]).To(Equal(1.0))
			Expect(dst[1:]).To(Equal(src[1:]))
		})
	})

	Describe("Sub and Scale", func() {
		It("operates component-wise", func() {
			a := ode.State{4, 5, 6}
			b := ode.State{1, 2, 3}
			Expect(a.Sub(b)).To(Equal(ode.State{3, 3, 3}))
			Expect(b.Scale(2)).To(Equal(ode.State{2, 4, 6}))
		})
	})
})

var _ = Describe("StepError", func() {
	It("reports step and time, and unwraps", func() {
		err := &ode.StepError{Step: 150, Time: 1.5, Wrapped: ode.ErrDimensionMismatch}
		Expect(err.Error()).To(Equal("step 150 (t=1.5000): ode: dimension mismatch"))
		Expect(err).To(MatchError(ode.ErrDimensionMismatch))
	})
})
