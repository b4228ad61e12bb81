package metrics

// CpuTimes is one reading of the aggregate CPU time counters, summed over all
// cores. Interrupt is only populated where the platform reports it apart from
// system time.
type CpuTimes struct {
	User      float64 `json:"user"`
	Nice      float64 `json:"nice"`
	System    float64 `json:"system"`
	Idle      float64 `json:"idle"`
	Interrupt float64 `json:"interrupt"`
}

func (t CpuTimes) active() float64 {
	return t.User + t.Nice + t.System + t.Interrupt
}

func (t CpuTimes) total() float64 {
	return t.active() + t.Idle
}

type CpuUsage struct {
	UsagePct float64 `json:"usage"`
}

type MemUsage struct {
	Used      uint64  `json:"used"`
	Available uint64  `json:"available"`
	Total     uint64  `json:"total"`
	UsagePct  float64 `json:"usage"`
}

type DiskUsage struct {
	Path        string  `json:"path"`
	Total       uint64  `json:"total"`
	Free        uint64  `json:"free"`
	Used        uint64  `json:"used"`
	UsedPercent float64 `json:"used_percent"`
}

// Interface is a non-loopback interface address in dotted-quad form.
type Interface struct {
	Name    string `json:"name"`
	Addr    string `json:"addr"`
	Netmask string `json:"netmask"`
}

// InterfaceRecord is what an InterfaceSource reports for one interface.
// Addrs are in CIDR notation, e.g. "192.168.1.5/24".
type InterfaceRecord struct {
	Name     string
	Loopback bool
	Addrs    []string
}
