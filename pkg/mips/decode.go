package mips

import "fmt"

// ErrUnknownOpcode is returned by Decode when the primary opcode, or the
// funct/rt sub-field that refines it, is not in the supported domain.
var ErrUnknownOpcode = fmt.Errorf("mips: unknown opcode")

// Bitfield extraction helpers. Decode is a pure function: it never
// touches memory or registers.

func decodeOpcode(word uint32) uint32 { return (word >> 26) & 0x3F }
func decodeRs(word uint32) uint32     { return (word >> 21) & 0x1F }
func decodeRt(word uint32) uint32     { return (word >> 16) & 0x1F }
func decodeRd(word uint32) uint32     { return (word >> 11) & 0x1F }
func decodeShamt(word uint32) uint32  { return (word >> 6) & 0x1F }
func decodeFunct(word uint32) uint32  { return word & 0x3F }
func decodeImm(word uint32) uint32    { return word & 0xFFFF }
func decodeTarget(word uint32) uint32 { return word & 0x3FFFFFF }

// functTable maps an R-form funct field to its ROp.
var functTable = map[uint32]ROp{
	0x00: SLL,
	0x02: SRL,
	0x03: SRA,
	0x04: SLLV,
	0x06: SRLV,
	0x07: SRAV,
	0x08: JR,
	0x09: JALR,
	0x0C: SYSCALL,
	0x10: MFHI,
	0x11: MTHI,
	0x12: MFLO,
	0x13: MTLO,
	0x18: MULT,
	0x19: MULTU,
	0x1A: DIV,
	0x1B: DIVU,
	0x20: ADD,
	0x21: ADDU,
	0x22: SUB,
	0x23: SUBU,
	0x24: AND,
	0x25: OR,
	0x26: XOR,
	0x27: NOR,
	0x2A: SLT,
	0x2B: SLTU,
}

// opcodeIOpTable maps a primary opcode directly to an IOp, for every
// I-form instruction except the REGIMM group (primary opcode 1).
var opcodeIOpTable = map[uint32]IOp{
	0x04: BEQ,
	0x05: BNE,
	0x06: BLEZ,
	0x07: BGTZ,
	0x08: ADDI,
	0x09: ADDIU,
	0x0A: SLTI,
	0x0B: SLTIU,
	0x0C: ANDI,
	0x0D: ORI,
	0x0E: XORI,
	0x0F: LUI,
	0x20: LB,
	0x21: LH,
	0x23: LW,
	0x24: LBU,
	0x25: LHU,
	0x28: SB,
	0x29: SH,
	0x2B: SW,
}

// regimmTable maps the rt field of a REGIMM (primary opcode 1) word to
// its IOp.
var regimmTable = map[uint32]IOp{
	0x00: BLTZ,
	0x01: BGEZ,
	0x10: BLTZAL,
	0x11: BGEZAL,
}

// Decode turns a 32-bit instruction word into a tagged Instruction.
// It is total on the opcode/funct tables documented above and returns
// ErrUnknownOpcode for anything outside them.
func Decode(word uint32) (Instruction, error) {
	opcode := decodeOpcode(word)
	switch opcode {
	case 0x02, 0x03:
		op := J
		if opcode == 0x03 {
			op = JAL
		}
		return Instruction{
			Kind: KindJ,
			J:    JForm{Opcode: opcode, Target: decodeTarget(word), Op: op},
		}, nil
	case 0x00:
		funct := decodeFunct(word)
		op, ok := functTable[funct]
		if !ok {
			return Instruction{}, fmt.Errorf("%w: funct 0x%02X", ErrUnknownOpcode, funct)
		}
		return Instruction{
			Kind: KindR,
			R: RForm{
				Opcode: opcode,
				Rs:     decodeRs(word),
				Rt:     decodeRt(word),
				Rd:     decodeRd(word),
				Shamt:  decodeShamt(word),
				Funct:  funct,
				Op:     op,
			},
		}, nil
	case 0x01:
		rt := decodeRt(word)
		op, ok := regimmTable[rt]
		if !ok {
			return Instruction{}, fmt.Errorf("%w: REGIMM rt 0x%02X", ErrUnknownOpcode, rt)
		}
		return Instruction{
			Kind: KindI,
			I: IForm{
				Opcode: opcode,
				Rs:     decodeRs(word),
				Rt:     rt,
				Imm:    decodeImm(word),
				Op:     op,
			},
		}, nil
	default:
		op, ok := opcodeIOpTable[opcode]
		if !ok {
			return Instruction{}, fmt.Errorf("%w: 0x%02X", ErrUnknownOpcode, opcode)
		}
		return Instruction{
			Kind: KindI,
			I: IForm{
				Opcode: opcode,
				Rs:     decodeRs(word),
				Rt:     decodeRt(word),
				Imm:    decodeImm(word),
				Op:     op,
			},
		}, nil
	}
}
