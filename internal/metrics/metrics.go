package metrics

import (
	"time"
)

type MetricsParams struct {
	Interval   time.Duration
	MountPoint string
}

// DefaultParams returns the fixed sampling window and the root mount point.
func DefaultParams() MetricsParams {
	return MetricsParams{
		Interval:   SampleInterval,
		MountPoint: RootMountPoint,
	}
}

// MetricsCollector reads one metric per call from its sources. It holds no
// state between calls and is not safe for concurrent use.
type MetricsCollector struct {
	params MetricsParams
	cpu    CpuTimeSource
	mem    MemorySource
	disk   DiskSource
	net    InterfaceSource
	sleep  func(time.Duration)
	onSkip func(iface string, err error)
}

type Option func(*MetricsCollector)

func WithParams(params MetricsParams) Option {
	return func(mc *MetricsCollector) { mc.params = params }
}

func WithCpuTimeSource(s CpuTimeSource) Option {
	return func(mc *MetricsCollector) { mc.cpu = s }
}

func WithMemorySource(s MemorySource) Option {
	return func(mc *MetricsCollector) { mc.mem = s }
}

func WithDiskSource(s DiskSource) Option {
	return func(mc *MetricsCollector) { mc.disk = s }
}

func WithInterfaceSource(s InterfaceSource) Option {
	return func(mc *MetricsCollector) { mc.net = s }
}

// WithSleep replaces time.Sleep for the pause between CPU samples.
func WithSleep(sleep func(time.Duration)) Option {
	return func(mc *MetricsCollector) { mc.sleep = sleep }
}

// WithSkipHandler is called for every interface address Interfaces skips.
func WithSkipHandler(fn func(iface string, err error)) Option {
	return func(mc *MetricsCollector) { mc.onSkip = fn }
}

// NewMetricsCollector returns a collector backed by the host's sources unless
// options replace them.
func NewMetricsCollector(opts ...Option) *MetricsCollector {
	mc := &MetricsCollector{
		params: DefaultParams(),
		cpu:    NewCpuTimeSource(),
		mem:    NewMemorySource(),
		disk:   NewDiskSource(),
		net:    NewInterfaceSource(),
		sleep:  time.Sleep,
		onSkip: func(string, error) {},
	}
	for _, opt := range opts {
		opt(mc)
	}
	return mc
}
