package metrics

import (
	"errors"
	"fmt"
	"time"

	"github.com/shirou/gopsutil/v4/cpu"
)

// SampleInterval is the pause between the two CPU counter readings. A shorter
// window is noisier and a longer one delays the report.
const SampleInterval = 1 * time.Second

// CpuTimeSource reads the host's cumulative CPU time counters.
type CpuTimeSource interface {
	Times() (CpuTimes, error)
}

// NewCpuTimeSource returns the counter source for the platform bsdmon was built for.
func NewCpuTimeSource() CpuTimeSource {
	return hostCpuTimes{}
}

type hostCpuTimes struct{}

// aggregateTimes returns gopsutil's all-core totals.
func aggregateTimes() (cpu.TimesStat, error) {
	times, err := cpu.Times(false)
	if err != nil {
		return cpu.TimesStat{}, platformError("cpu times", err)
	}
	if len(times) == 0 {
		return cpu.TimesStat{}, platformError("cpu times", errors.New("no aggregate counters reported"))
	}
	return times[0], nil
}

// Utilization returns the share of non-idle time between two counter readings,
// as a percentage. It is 0 when no time has elapsed between them.
func Utilization(prev, curr CpuTimes) float64 {
	totalDelta := curr.total() - prev.total()
	if totalDelta <= 0 {
		return 0
	}
	activeDelta := curr.active() - prev.active()
	pct := activeDelta / totalDelta * 100
	switch {
	case pct < 0:
		return 0
	case pct > 100:
		return 100
	}
	return pct
}

// CPU samples the counters twice, Interval apart, and reports the utilization
// over that window. It blocks for the whole interval.
func (mc *MetricsCollector) CPU() (CpuUsage, error) {
	prev, err := mc.cpu.Times()
	if err != nil {
		return CpuUsage{}, fmt.Errorf("failed to get initial CPU times: %w", err)
	}
	mc.sleep(mc.params.Interval)
	curr, err := mc.cpu.Times()
	if err != nil {
		return CpuUsage{}, fmt.Errorf("failed to get CPU times: %w", err)
	}
	return CpuUsage{UsagePct: Utilization(prev, curr)}, nil
}
