package mips

// execIType executes an I-form instruction: branches, immediate
// arithmetic/logical, loads, and stores.
func (m *Machine) execIType(instr IForm) (advance bool, err error) {
	rs := m.Current.Regs[instr.Rs]
	rt := m.Current.Regs[instr.Rt]

	branchTarget := uint32(int32(m.Current.PC) + se18(instr.Imm<<2))

	takeBranch := func(cond bool) (bool, error) {
		if cond {
			m.Next.PC = branchTarget
			return false, nil
		}
		return true, nil
	}

	switch instr.Op {
	case BEQ:
		return takeBranch(rs == rt)
	case BNE:
		return takeBranch(rs != rt)
	case BLEZ:
		return takeBranch(int32(rs) <= 0)
	case BGTZ:
		return takeBranch(int32(rs) > 0)
	case BLTZ:
		return takeBranch(int32(rs) < 0)
	case BGEZ:
		return takeBranch(int32(rs) >= 0)
	case BLTZAL:
		// The link happens unconditionally, whether or not the branch
		// is taken, and is written into Next rather than Current so it
		// survives the commit regardless of the branch outcome.
		m.Next.Regs[31] = m.Current.PC + 4
		return takeBranch(int32(rs) < 0)
	case BGEZAL:
		m.Next.Regs[31] = m.Current.PC + 4
		return takeBranch(int32(rs) >= 0)

	case ADDI, ADDIU:
		m.Next.Regs[instr.Rt] = uint32(int32(rs) + se16(instr.Imm))
	case SLTI:
		m.Next.Regs[instr.Rt] = boolToWord(int32(rs) < se16(instr.Imm))
	case SLTIU:
		m.Next.Regs[instr.Rt] = boolToWord(rs < uint32(se16(instr.Imm)))
	case ANDI:
		m.Next.Regs[instr.Rt] = rs & instr.Imm
	case ORI:
		m.Next.Regs[instr.Rt] = rs | instr.Imm
	case XORI:
		m.Next.Regs[instr.Rt] = rs ^ instr.Imm
	case LUI:
		m.Next.Regs[instr.Rt] = instr.Imm << 16

	case LB:
		addr := uint32(int32(rs) + se16(instr.Imm))
		v, ok := m.Memory.Read8(addr)
		if !ok {
			return false, memoryFault(addr)
		}
		m.Next.Regs[instr.Rt] = uint32(se8(uint32(v)))
	case LH:
		addr := uint32(int32(rs) + se16(instr.Imm))
		v, ok := m.Memory.Read16(addr)
		if !ok {
			return false, memoryFault(addr)
		}
		m.Next.Regs[instr.Rt] = uint32(se16(uint32(v)))
	case LW:
		addr := uint32(int32(rs) + se16(instr.Imm))
		v, ok := m.Memory.Read32(addr)
		if !ok {
			return false, memoryFault(addr)
		}
		m.Next.Regs[instr.Rt] = v
	case LBU:
		addr := uint32(int32(rs) + se16(instr.Imm))
		v, ok := m.Memory.Read8(addr)
		if !ok {
			return false, memoryFault(addr)
		}
		m.Next.Regs[instr.Rt] = uint32(v)
	case LHU:
		addr := uint32(int32(rs) + se16(instr.Imm))
		v, ok := m.Memory.Read16(addr)
		if !ok {
			return false, memoryFault(addr)
		}
		m.Next.Regs[instr.Rt] = uint32(v)

	case SB:
		addr := uint32(int32(rs) + se16(instr.Imm))
		if !m.Memory.Write8(addr, uint8(rt)) {
			return false, memoryFault(addr)
		}
	case SH:
		addr := uint32(int32(rs) + se16(instr.Imm))
		if !m.Memory.Write16(addr, uint16(rt)) {
			return false, memoryFault(addr)
		}
	case SW:
		addr := uint32(int32(rs) + se16(instr.Imm))
		if !m.Memory.Write32(addr, rt) {
			return false, memoryFault(addr)
		}
	}
	return true, nil
}
