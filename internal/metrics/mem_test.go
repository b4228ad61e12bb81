package metrics_test

import (
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/jeffypooo/bsdmon/internal/metrics"
)

const kib = 1024

var _ = Describe("NewMemUsage", func() {
	It("computes used memory from a meminfo-sized reading", func() {
		usage, err := metrics.NewMemUsage(16_777_216*kib, 8_388_608*kib)
		Expect(err).NotTo(HaveOccurred())
		Expect(usage.Total).To(Equal(uint64(16 << 30)))
		Expect(usage.Used).To(Equal(uint64(8 << 30)))
		Expect(usage.UsagePct).To(BeNumerically("~", 50.0, 1e-9))
	})

	It("keeps used plus available equal to total", func() {
		for _, tc := range []struct{ total, available uint64 }{
			{1, 0}, {1, 1}, {4096, 1024}, {1 << 40, 12345},
		} {
			usage, err := metrics.NewMemUsage(tc.total, tc.available)
			Expect(err).NotTo(HaveOccurred())
			Expect(usage.Used + usage.Available).To(Equal(tc.total))
			Expect(usage.Used).To(BeNumerically("<=", usage.Total))
		}
	})

	It("rejects a zero total", func() {
		_, err := metrics.NewMemUsage(0, 0)
		Expect(err).To(MatchError(metrics.ErrPlatform))
	})

	It("clamps available memory above the total", func() {
		usage, err := metrics.NewMemUsage(100, 150)
		Expect(err).NotTo(HaveOccurred())
		Expect(usage.Used).To(BeZero())
		Expect(usage.UsagePct).To(BeZero())
	})
})

var _ = Describe("MetricsCollector.Memory", func() {
	It("reads through the memory source", func() {
		mc := metrics.NewMetricsCollector(metrics.WithMemorySource(fakeMemory{total: 200, available: 50}))
		usage, err := mc.Memory()
		Expect(err).NotTo(HaveOccurred())
		Expect(usage).To(Equal(metrics.MemUsage{Used: 150, Available: 50, Total: 200, UsagePct: 75}))
	})

	It("wraps source failures", func() {
		cause := errors.New("sysctl hw.physmem: permission denied")
		mc := metrics.NewMetricsCollector(metrics.WithMemorySource(fakeMemory{err: cause}))
		_, err := mc.Memory()
		Expect(err).To(MatchError(cause))
		Expect(err.Error()).To(HavePrefix("error getting memory usage"))
	})

	It("treats a zero total as a failure", func() {
		mc := metrics.NewMetricsCollector(metrics.WithMemorySource(fakeMemory{}))
		_, err := mc.Memory()
		Expect(err).To(MatchError(metrics.ErrPlatform))
	})

	It("reads the host memory", func() {
		total, available, err := metrics.NewMemorySource().Memory()
		Expect(err).NotTo(HaveOccurred())
		Expect(total).To(BeNumerically(">", 0))
		Expect(available).To(BeNumerically("<=", total))
	})
})
