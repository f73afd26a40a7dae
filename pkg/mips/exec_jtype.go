package mips

// execJType executes a J-form instruction (J, JAL). It always assigns
// Next.PC itself, so it always returns advance=false — the cycle
// driver must not also apply its default PC+4 advance.
func (m *Machine) execJType(instr JForm) (advance bool) {
	target := (m.Current.PC & 0xF0000000) | (instr.Target << 2)
	m.Next.PC = target
	if instr.Op == JAL {
		m.Next.Regs[31] = m.Current.PC + 4
	}
	return false
}
