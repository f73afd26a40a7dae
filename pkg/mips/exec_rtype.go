package mips

// execRType executes an R-form instruction. All but JR/JALR advance PC
// by 4 unconditionally.
func (m *Machine) execRType(instr RForm) (advance bool, err error) {
	rs := m.Current.Regs[instr.Rs]
	rt := m.Current.Regs[instr.Rt]

	switch instr.Op {
	case SLL:
		m.Next.Regs[instr.Rd] = rt << instr.Shamt
	case SRL:
		m.Next.Regs[instr.Rd] = rt >> instr.Shamt
	case SRA:
		m.Next.Regs[instr.Rd] = uint32(int32(rt) >> instr.Shamt)
	case SLLV:
		m.Next.Regs[instr.Rd] = rt << (rs & 0x1F)
	case SRLV:
		m.Next.Regs[instr.Rd] = rt >> (rs & 0x1F)
	case SRAV:
		m.Next.Regs[instr.Rd] = uint32(int32(rt) >> (rs & 0x1F))

	case JR:
		m.Next.PC = rs
		return false, nil
	case JALR:
		m.Next.PC = rs
		m.Next.Regs[instr.Rd] = m.Current.PC + 4
		return false, nil

	case ADD, ADDU:
		// No overflow trapping: all arithmetic here is modular, so the
		// signed and unsigned forms behave identically.
		m.Next.Regs[instr.Rd] = rs + rt
	case SUB, SUBU:
		m.Next.Regs[instr.Rd] = rs - rt
	case AND:
		m.Next.Regs[instr.Rd] = rs & rt
	case OR:
		m.Next.Regs[instr.Rd] = rs | rt
	case XOR:
		m.Next.Regs[instr.Rd] = rs ^ rt
	case NOR:
		m.Next.Regs[instr.Rd] = ^(rs | rt)
	case SLT:
		m.Next.Regs[instr.Rd] = boolToWord(int32(rs) < int32(rt))
	case SLTU:
		m.Next.Regs[instr.Rd] = boolToWord(rs < rt)

	case MULT:
		product := uint64(int64(int32(rs)) * int64(int32(rt)))
		m.Next.HI = uint32(product >> 32)
		m.Next.LO = uint32(product)
	case MULTU:
		product := uint64(rs) * uint64(rt)
		m.Next.HI = uint32(product >> 32)
		m.Next.LO = uint32(product)
	case DIV:
		// Division by zero is undefined in MIPS-I; this implementation
		// leaves HI/LO unchanged.
		if rt != 0 {
			m.Next.LO = uint32(int32(rs) / int32(rt))
			m.Next.HI = uint32(int32(rs) % int32(rt))
		}
	case DIVU:
		if rt != 0 {
			m.Next.LO = rs / rt
			m.Next.HI = rs % rt
		}
	case MFHI:
		m.Next.Regs[instr.Rd] = m.Current.HI
	case MFLO:
		m.Next.Regs[instr.Rd] = m.Current.LO
	case MTHI:
		m.Next.HI = rs
	case MTLO:
		m.Next.LO = rs

	case SYSCALL:
		// v0, the syscall-number register, is R2 by MIPS convention —
		// it is not encoded in the instruction word itself.
		if m.Current.Regs[2] == 10 {
			m.Running = false
		}
	}
	return true, nil
}

func boolToWord(b bool) uint32 {
	if b {
		return 1
	}
	return 0
}
