package metrics

import (
	"errors"
	"fmt"

	"github.com/shirou/gopsutil/v4/mem"
)

// MemorySource reads total physical memory and how much of it is available,
// both in bytes.
type MemorySource interface {
	Memory() (total, available uint64, err error)
}

// NewMemorySource returns the memory source for the platform bsdmon was built for.
func NewMemorySource() MemorySource {
	return hostMemory{}
}

type hostMemory struct{}

func virtualMemory() (*mem.VirtualMemoryStat, error) {
	vm, err := mem.VirtualMemory()
	if err != nil {
		return nil, platformError("virtual memory", err)
	}
	return vm, nil
}

// NewMemUsage derives used memory from total and available. A zero total is
// reported as an error since no percentage can be computed from it.
func NewMemUsage(total, available uint64) (MemUsage, error) {
	if total == 0 {
		return MemUsage{}, platformError("memory usage", errors.New("total memory reported as zero"))
	}
	if available > total {
		available = total
	}
	used := total - available
	return MemUsage{
		Used:      used,
		Available: available,
		Total:     total,
		UsagePct:  float64(used) / float64(total) * 100,
	}, nil
}

func (mc *MetricsCollector) Memory() (MemUsage, error) {
	total, available, err := mc.mem.Memory()
	if err != nil {
		return MemUsage{}, fmt.Errorf("error getting memory usage: %w", err)
	}
	usage, err := NewMemUsage(total, available)
	if err != nil {
		return MemUsage{}, fmt.Errorf("error getting memory usage: %w", err)
	}
	return usage, nil
}
