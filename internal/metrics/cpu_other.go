//go:build !linux && !freebsd

package metrics

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
