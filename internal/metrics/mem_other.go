//go:build !linux && !freebsd

package metrics

func (hostMemory) Memory() (uint64, uint64, error) {
	vm, err := virtualMemory()
	if err != nil {
		return 0, 0, err
	}
	return vm.Total, vm.Available, nil
}
