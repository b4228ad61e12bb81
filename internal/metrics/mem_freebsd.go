//go:build freebsd

package metrics

// Memory uses hw.physmem and the free page count. Inactive and laundry pages
// count as used.
func (hostMemory) Memory() (uint64, uint64, error) {
	vm, err := virtualMemory()
	if err != nil {
		return 0, 0, err
	}
	return vm.Total, vm.Free, nil
}
