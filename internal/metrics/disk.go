package metrics

import (
	"fmt"

	"github.com/shirou/gopsutil/v4/disk"
)

// RootMountPoint is the only filesystem bsdmon reports on.
const RootMountPoint = "/"

// DiskSource reads filesystem totals for a mount point. total is the block
// count times the fragment size; free is the free block count times the same
// size, including blocks reserved for root.
type DiskSource interface {
	Usage(path string) (total, free uint64, err error)
}

func NewDiskSource() DiskSource {
	return hostDisk{}
}

type hostDisk struct{}

func (hostDisk) Usage(path string) (uint64, uint64, error) {
	u, err := disk.Usage(path)
	if err != nil {
		return 0, 0, platformError("statfs "+path, err)
	}
	// gopsutil's Free excludes reserved blocks; Used is derived from bfree.
	return u.Total, u.Total - u.Used, nil
}

// NewDiskUsage derives used space from total and free. An empty filesystem
// reports 0% rather than an error.
func NewDiskUsage(path string, total, free uint64) DiskUsage {
	if free > total {
		free = total
	}
	used := total - free
	var pct float64
	if total > 0 {
		pct = float64(used) / float64(total) * 100
	}
	return DiskUsage{
		Path:        path,
		Total:       total,
		Free:        free,
		Used:        used,
		UsedPercent: pct,
	}
}

func (mc *MetricsCollector) Disk() (DiskUsage, error) {
	path := mc.params.MountPoint
	total, free, err := mc.disk.Usage(path)
	if err != nil {
		return DiskUsage{}, fmt.Errorf("error getting disk usage: %w", err)
	}
	return NewDiskUsage(path, total, free), nil
}
