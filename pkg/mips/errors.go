package mips

import "fmt"

// ErrMemoryFault is wrapped into the error returned by a load/store
// handler when the effective address falls outside every memory
// region. The cycle driver turns this into a halt, not a panic: it
// stops the machine and surfaces a diagnostic rather than aborting
// the process.
var ErrMemoryFault = fmt.Errorf("mips: memory fault")

func memoryFault(addr uint32) error {
	return fmt.Errorf("%w: address 0x%08X is outside every region", ErrMemoryFault, addr)
}
