//go:build freebsd

package metrics

// Times sums kern.cp_times over all cores. FreeBSD keeps interrupt time apart
// from system time, so it is reported separately and counted as active.
func (hostCpuTimes) Times() (CpuTimes, error) {
	t, err := aggregateTimes()
	if err != nil {
		return CpuTimes{}, err
	}
	return CpuTimes{
		User:      t.User,
		Nice:      t.Nice,
		System:    t.System,
		Idle:      t.Idle,
		Interrupt: t.Irq,
	}, nil
}
