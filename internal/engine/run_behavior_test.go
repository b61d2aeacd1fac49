package engine_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"qubitsim/internal/engine"
)

func mean(xs []float64) float64 {
	sum := 0.0
	for _, x := range xs {
		sum += x
	}
	return sum / float64(len(xs))
}

func splitAtDay(res *engine.Result, series []float64, day float64) (pre, post []float64) {
	for i, d := range res.Days {
		if d >= day {
			return series[:i], series[i:]
		}
	}
	return series, nil
}

var _ = Describe("Simulation run", func() {
	Describe("the mission scenario", func() {
		var res *engine.Result

		BeforeEach(func() {
			eng, err := engine.New(engine.Config{DurationDays: 120, ActivationDay: 75, Seed: 42})
			Expect(err).NotTo(HaveOccurred())
			res = eng.Run()
		})

		It("produces four aligned series over the horizon", func() {
			Expect(res.Ticks()).To(Equal(120 * engine.HoursPerDay))
			Expect(res.FidelitySC).To(HaveLen(res.Ticks()))
			Expect(res.FidelityTI).To(HaveLen(res.Ticks()))
			Expect(res.Temperature).To(HaveLen(res.Ticks()))
		})

		It("raises mean fidelity after activation for both technologies", func() {
			preSC, postSC := splitAtDay(res, res.FidelitySC, 75)
			preTI, postTI := splitAtDay(res, res.FidelityTI, 75)

			Expect(mean(postSC)).To(BeNumerically(">", mean(preSC)))
			Expect(mean(postTI)).To(BeNumerically(">", mean(preTI)))
		})

		It("keeps fidelity saturated to the unit interval", func() {
			for _, f := range res.FidelitySC {
				Expect(f).To(And(BeNumerically(">=", 0), BeNumerically("<=", 1)))
			}
			for _, f := range res.FidelityTI {
				Expect(f).To(And(BeNumerically(">=", 0), BeNumerically("<=", 1)))
			}
		})
	})

	Describe("activation at the horizon boundary", func() {
		It("never applies the uplift within the run", func() {
			// At hourly resolution the last tick sits at day 10 - 1/24,
			// so a day-10 activation leaves the mask all-false and mean
			// fidelity stays at the pre-activation baseline.
			eng, err := engine.New(engine.Config{DurationDays: 10, ActivationDay: 10, Seed: 1})
			Expect(err).NotTo(HaveOccurred())

			res := eng.Run()
			Expect(mean(res.FidelitySC)).To(BeNumerically("<", 0.78))
			Expect(mean(res.FidelityTI)).To(BeNumerically("<", 0.88))
		})
	})

	Describe("activation at day zero", func() {
		It("applies the uplift to every tick", func() {
			eng, err := engine.New(engine.Config{DurationDays: 10, ActivationDay: 0, Seed: 1})
			Expect(err).NotTo(HaveOccurred())

			res := eng.Run()
			Expect(mean(res.FidelitySC)).To(BeNumerically(">", 0.85))
			Expect(mean(res.FidelityTI)).To(BeNumerically(">", 0.89))
		})
	})

	Describe("reproducibility", func() {
		It("gives bitwise-identical first runs for equal seeds", func() {
			cfg := engine.Config{DurationDays: 45, ActivationDay: 20, Seed: 7}

			a, err := engine.New(cfg)
			Expect(err).NotTo(HaveOccurred())
			b, err := engine.New(cfg)
			Expect(err).NotTo(HaveOccurred())

			Expect(a.Run()).To(Equal(b.Run()))
		})
	})
})
