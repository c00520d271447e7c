package sweep_test

import (
	"context"
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/bifurc/internal/maps"
	"github.com/san-kum/bifurc/internal/sweep"
)

var _ = Describe("Runner", func() {
	var cfg sweep.Config

	BeforeEach(func() {
		cfg = sweep.Config{
			Map:     maps.Logistic,
			X0:      0.5,
			RMin:    2.8,
			RMax:    4.0,
			RPoints: 101,
			Skip:    50,
			N:       20,
			Workers: 4,
		}
	})

	It("produces exactly n samples for every control value", func() {
		result, err := sweep.NewRunner().Run(context.Background(), cfg)
		Expect(err).NotTo(HaveOccurred())
		Expect(result.Columns).To(HaveLen(cfg.RPoints))
		for _, col := range result.Columns {
			Expect(col.States).To(HaveLen(cfg.N))
		}
	})

	It("orders columns by control value regardless of completion order", func() {
		result, err := sweep.NewRunner().Run(context.Background(), cfg)
		Expect(err).NotTo(HaveOccurred())

		Expect(result.Columns[0].R).To(Equal(cfg.RMin))
		Expect(result.Columns[len(result.Columns)-1].R).To(Equal(cfg.RMax))
		for i := 1; i < len(result.Columns); i++ {
			Expect(result.Columns[i].R).To(BeNumerically(">", result.Columns[i-1].R))
		}
	})

	It("is invariant to the worker count", func() {
		serial := cfg
		serial.Workers = 1
		parallel := cfg
		parallel.Workers = 8

		a, err := sweep.NewRunner().Run(context.Background(), serial)
		Expect(err).NotTo(HaveOccurred())
		b, err := sweep.NewRunner().Run(context.Background(), parallel)
		Expect(err).NotTo(HaveOccurred())

		Expect(b.Columns).To(Equal(a.Columns))
	})

	It("is deterministic across repeated runs", func() {
		a, err := sweep.NewRunner().Run(context.Background(), cfg)
		Expect(err).NotTo(HaveOccurred())
		b, err := sweep.NewRunner().Run(context.Background(), cfg)
		Expect(err).NotTo(HaveOccurred())

		Expect(b.Columns).To(Equal(a.Columns))
	})

	It("notifies observers once per chunk", func() {
		notifications := make(chan struct{}, cfg.Workers)
		runner := sweep.NewRunner()
		runner.AddObserver(sweep.ObserverFunc(func(chunk, columns int) {
			notifications <- struct{}{}
		}))

		_, err := runner.Run(context.Background(), cfg)
		Expect(err).NotTo(HaveOccurred())
		Expect(notifications).To(HaveLen(cfg.Workers))
	})

	DescribeTable("rejects invalid configurations before any work starts",
		func(mutate func(*sweep.Config)) {
			mutate(&cfg)
			result, err := sweep.NewRunner().Run(context.Background(), cfg)
			Expect(err).To(MatchError(sweep.ErrBadConfig))
			Expect(result).To(BeNil())
		},
		Entry("nil map", func(c *sweep.Config) { c.Map = nil }),
		Entry("zero r_points", func(c *sweep.Config) { c.RPoints = 0 }),
		Entry("zero samples", func(c *sweep.Config) { c.N = 0 }),
		Entry("negative skip", func(c *sweep.Config) { c.Skip = -1 }),
		Entry("zero workers", func(c *sweep.Config) { c.Workers = 0 }),
		Entry("inverted range", func(c *sweep.Config) { c.RMin = 4.0; c.RMax = 2.8 }),
	)

	It("fails the whole run when a worker panics, naming the control value", func() {
		cfg.Map = func(x, r float64) float64 {
			if r > 3.9 {
				panic("unstable recurrence")
			}
			return maps.Logistic(x, r)
		}

		result, err := sweep.NewRunner().Run(context.Background(), cfg)
		Expect(result).To(BeNil())

		var werr *sweep.WorkerError
		Expect(errors.As(err, &werr)).To(BeTrue())
		Expect(werr.R).To(BeNumerically(">", 3.9))
	})

	It("tears down cleanly on context cancellation without a partial result", func() {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		result, err := sweep.NewRunner().Run(ctx, cfg)
		Expect(err).To(MatchError(context.Canceled))
		Expect(result).To(BeNil())
	})

	It("handles a single control value", func() {
		cfg.RPoints = 1
		result, err := sweep.NewRunner().Run(context.Background(), cfg)
		Expect(err).NotTo(HaveOccurred())
		Expect(result.Columns).To(HaveLen(1))
		Expect(result.Columns[0].R).To(Equal(cfg.RMin))
	})
})
