package metrics

import (
	"fmt"
	"net"
	"slices"

	psnet "github.com/shirou/gopsutil/v4/net"
)

// InterfaceSource enumerates the host's network interfaces and their addresses.
type InterfaceSource interface {
	Interfaces() ([]InterfaceRecord, error)
}

func NewInterfaceSource() InterfaceSource {
	return hostInterfaces{}
}

type hostInterfaces struct{}

const flagLoopback = "loopback"

func (hostInterfaces) Interfaces() ([]InterfaceRecord, error) {
	stats, err := psnet.Interfaces()
	if err != nil {
		return nil, &Error{Op: "list interfaces", Kind: ErrEnumeration, Err: err}
	}
	records := make([]InterfaceRecord, 0, len(stats))
	for _, s := range stats {
		r := InterfaceRecord{
			Name:     s.Name,
			Loopback: slices.Contains(s.Flags, flagLoopback),
		}
		for _, a := range s.Addrs {
			r.Addrs = append(r.Addrs, a.Addr)
		}
		records = append(records, r)
	}
	return records, nil
}

// parseIPv4 splits a CIDR address into dotted-quad address and netmask. ok is
// false for addresses of any other family.
func parseIPv4(cidr string) (addr, mask string, ok bool, err error) {
	ip, ipnet, err := net.ParseCIDR(cidr)
	if err != nil {
		return "", "", false, &Error{Op: "parse address " + cidr, Kind: ErrParse, Err: err}
	}
	ip4 := ip.To4()
	if ip4 == nil {
		return "", "", false, nil
	}
	if len(ipnet.Mask) != net.IPv4len {
		return "", "", false, &Error{Op: "parse address " + cidr, Kind: ErrParse}
	}
	return ip4.String(), net.IP(ipnet.Mask).String(), true, nil
}

// Interfaces lists every IPv4 address on a non-loopback interface, in the
// order the host enumerates them. Addresses that cannot be parsed are skipped
// and reported through the collector's skip hook.
func (mc *MetricsCollector) Interfaces() ([]Interface, error) {
	records, err := mc.net.Interfaces()
	if err != nil {
		return nil, fmt.Errorf("error getting network interfaces: %w", err)
	}
	var ifaces []Interface
	for _, r := range records {
		if r.Loopback {
			continue
		}
		for _, a := range r.Addrs {
			addr, mask, ok, err := parseIPv4(a)
			if err != nil {
				mc.onSkip(r.Name, err)
				continue
			}
			if !ok {
				continue
			}
			ifaces = append(ifaces, Interface{
				Name:    r.Name,
				Addr:    addr,
				Netmask: mask,
			})
		}
	}
	return ifaces, nil
}
