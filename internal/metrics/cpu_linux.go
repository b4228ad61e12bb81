//go:build linux

package metrics

// Times reports user, nice, system and idle from /proc/stat. irq and softirq
// are left out of the active time.
func (hostCpuTimes) Times() (CpuTimes, error) {
	t, err := aggregateTimes()
	if err != nil {
		return CpuTimes{}, err
	}
	return CpuTimes{
		User:   t.User,
		Nice:   t.Nice,
		System: t.System,
		Idle:   t.Idle,
	}, nil
}
