package mips

import (
	"errors"
	"fmt"
)

// Halted is returned by cycle when the machine halts before executing
// the fetched word (fetch from an undefined address, a zero word, or a
// decode failure); Run, Step and Go absorb it and return nil. They
// return a Halted themselves only when called on a machine that is
// already halted. A SYSCALL halt clears Running without producing a
// Halted. It is not a fatal error: the caller may keep inspecting state.
type Halted struct {
	Reason string
}

func (h *Halted) Error() string { return "mips: halted: " + h.Reason }

// cycle runs fetch/decode/execute/advance-PC for one instruction. It
// returns a *Halted (non-fatal) if the machine halts this
// cycle, or a plain error for a memory fault encountered mid-handler
// — a load or store to an undefined address aborts the cycle without
// committing any state.
func (m *Machine) cycle() error {
	word, ok := m.Memory.Read32(m.Current.PC)
	if !ok {
		m.Running = false
		return &Halted{Reason: fmt.Sprintf("fetch from undefined address 0x%08X", m.Current.PC)}
	}
	if word == 0 {
		m.Running = false
		return &Halted{Reason: "fetched zero word"}
	}

	instr, err := Decode(word)
	if err != nil {
		m.Running = false
		return &Halted{Reason: err.Error()}
	}

	var advance bool
	switch instr.Kind {
	case KindJ:
		advance = m.execJType(instr.J)
	case KindI:
		advance, err = m.execIType(instr.I)
	case KindR:
		advance, err = m.execRType(instr.R)
	}
	if err != nil {
		m.Running = false
		return err
	}
	if advance {
		m.Next.PC = m.Current.PC + 4
	}
	m.commit()
	return nil
}

// Peek decodes the instruction at the current PC without executing it,
// for the REPL's verbose trace. ok is false if PC is outside every
// memory region or the word does not decode.
func (m *Machine) Peek() (instr Instruction, word uint32, ok bool) {
	word, ok = m.Memory.Read32(m.Current.PC)
	if !ok {
		return Instruction{}, word, false
	}
	instr, err := Decode(word)
	if err != nil {
		return Instruction{}, word, false
	}
	return instr, word, true
}

// Step executes a single cycle. It is Run(1).
func (m *Machine) Step() error {
	return m.Run(1)
}

// Run executes up to n cycles, stopping early if the machine halts.
// Run returns nil even when the machine halts partway through — halting
// is an expected outcome, not a failure of Run itself — except for a
// mid-handler memory fault, which is returned so the caller can report
// it.
func (m *Machine) Run(n uint32) error {
	if !m.Running {
		return &Halted{Reason: "already halted"}
	}
	for i := uint32(0); i < n; i++ {
		if !m.Running {
			break
		}
		if err := m.cycle(); err != nil {
			var h *Halted
			if errors.As(err, &h) {
				return nil
			}
			return err
		}
	}
	return nil
}

// Go runs until the machine halts.
func (m *Machine) Go() error {
	if !m.Running {
		return &Halted{Reason: "already halted"}
	}
	for m.Running {
		if err := m.cycle(); err != nil {
			var h *Halted
			if errors.As(err, &h) {
				return nil
			}
			return err
		}
	}
	return nil
}
