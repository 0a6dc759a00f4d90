package ode_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/mhalvorsen/odelab/internal/ode"
)

var _ = Describe("Linspace", func() {
	It("spans both endpoints inclusive", func() {
		grid := ode.Linspace(0, 6.0, 600)
		Expect(grid).To(HaveLen(600))
		Expect(grid[0]).To(Equal(0.0))
		Expect(grid[599]).To(Equal(6.0))
	})

	It("uses spacing (stop-start)/(n-1)", func() {
		grid := ode.Linspace(0, 1.0, 5)
		Expect(grid).To(HaveLen(5))
		for i, want := range []float64{0, 0.25, 0.5, 0.75, 1.0} {
			Expect(grid[i]).To(BeNumerically("~", want, 1e-15))
		}
	})

	It("returns the start point alone when n is 1", func() {
		Expect(ode.Linspace(0, 0.15, 1)).To(Equal([]float64{0.0}))
	})

	It("returns an empty grid for n <= 0", func() {
		Expect(ode.Linspace(0, 1, 0)).To(BeEmpty())
		Expect(ode.Linspace(0, 1, -3)).To(BeEmpty())
	})

	It("handles nonzero start", func() {
		grid := ode.Linspace(2.0, 4.0, 3)
		Expect(grid).To(Equal([]float64{2.0, 3.0, 4.0}))
	})
})
