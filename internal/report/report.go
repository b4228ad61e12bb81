// Package report prints a single system snapshot in bsdmon's fixed text layout.
package report

import (
	"fmt"
	"io"

	"github.com/labstack/gommon/bytes"
	"github.com/labstack/gommon/log"

	"github.com/jeffypooo/bsdmon/internal/metrics"
)

const (
	title     = "bsdmon - System Monitor"
	underline = "======================="
)

// Collector is the set of metric reads a report is built from.
type Collector interface {
	CPU() (metrics.CpuUsage, error)
	Memory() (metrics.MemUsage, error)
	Disk() (metrics.DiskUsage, error)
	Interfaces() ([]metrics.Interface, error)
}

type Reporter struct {
	out    io.Writer
	logger *log.Logger
	mc     Collector
}

func New(out io.Writer, logger *log.Logger, mc Collector) *Reporter {
	return &Reporter{out: out, logger: logger, mc: mc}
}

// Write prints the header, then CPU, memory, disk and network sections in that
// order, each as soon as it is read. Only a CPU failure is returned; the other
// sections log their error and carry on.
func (r *Reporter) Write() error {
	fmt.Fprintln(r.out, title)
	fmt.Fprintln(r.out, underline)

	cpu, err := r.mc.CPU()
	if err != nil {
		return err
	}
	fmt.Fprintf(r.out, "CPU Usage: %.2f%%\n", cpu.UsagePct)

	mem, err := r.mc.Memory()
	if err != nil {
		r.logger.Errorf("%v", err)
		fmt.Fprintln(r.out, "Memory Usage: Error retrieving information")
	} else {
		fmt.Fprintf(r.out, "Memory Usage: %.2f GB / %.2f GB (%.2f%% used)\n",
			gib(mem.Used), gib(mem.Total), mem.UsagePct)
	}

	disk, err := r.mc.Disk()
	if err != nil {
		r.logger.Errorf("%v", err)
		fmt.Fprintln(r.out, "Disk Usage: Error retrieving information")
	} else {
		fmt.Fprintf(r.out, "Disk Usage (%q): %.2f GB / %.2f GB (%.2f%% used)\n",
			disk.Path, gib(disk.Used), gib(disk.Total), disk.UsedPercent)
	}

	ifaces, err := r.mc.Interfaces()
	if err != nil {
		r.logger.Errorf("%v", err)
		return nil
	}
	fmt.Fprintln(r.out, "Network interfaces:")
	for _, iface := range ifaces {
		fmt.Fprintf(r.out, "  %s: %s (mask: %s)\n", iface.Name, iface.Addr, iface.Netmask)
	}
	return nil
}

func gib(n uint64) float64 {
	return float64(n) / bytes.GiB
}
