package mips

import "fmt"

// Disassemble renders instr as MIPS-style assembly text, used by the
// REPL's verbose trace.
func Disassemble(instr Instruction) string {
	switch instr.Kind {
	case KindJ:
		return disasmJType(instr.J)
	case KindI:
		return disasmIType(instr.I)
	case KindR:
		return disasmRType(instr.R)
	default:
		return "<unknown>"
	}
}

func disasmJType(j JForm) string {
	name := "j"
	if j.Op == JAL {
		name = "jal"
	}
	return fmt.Sprintf("%s 0x%07X", name, j.Target)
}

func disasmIType(i IForm) string {
	switch i.Op {
	case BEQ:
		return fmt.Sprintf("beq $%d, $%d, %d", i.Rs, i.Rt, int32(se16(i.Imm)))
	case BNE:
		return fmt.Sprintf("bne $%d, $%d, %d", i.Rs, i.Rt, int32(se16(i.Imm)))
	case BLEZ:
		return fmt.Sprintf("blez $%d, %d", i.Rs, int32(se16(i.Imm)))
	case BGTZ:
		return fmt.Sprintf("bgtz $%d, %d", i.Rs, int32(se16(i.Imm)))
	case BLTZ:
		return fmt.Sprintf("bltz $%d, %d", i.Rs, int32(se16(i.Imm)))
	case BGEZ:
		return fmt.Sprintf("bgez $%d, %d", i.Rs, int32(se16(i.Imm)))
	case BLTZAL:
		return fmt.Sprintf("bltzal $%d, %d", i.Rs, int32(se16(i.Imm)))
	case BGEZAL:
		return fmt.Sprintf("bgezal $%d, %d", i.Rs, int32(se16(i.Imm)))
	case ADDI:
		return fmt.Sprintf("addi $%d, $%d, %d", i.Rt, i.Rs, int32(se16(i.Imm)))
	case ADDIU:
		return fmt.Sprintf("addiu $%d, $%d, %d", i.Rt, i.Rs, int32(se16(i.Imm)))
	case SLTI:
		return fmt.Sprintf("slti $%d, $%d, %d", i.Rt, i.Rs, int32(se16(i.Imm)))
	case SLTIU:
		return fmt.Sprintf("sltiu $%d, $%d, %d", i.Rt, i.Rs, int32(se16(i.Imm)))
	case ANDI:
		return fmt.Sprintf("andi $%d, $%d, 0x%X", i.Rt, i.Rs, i.Imm)
	case ORI:
		return fmt.Sprintf("ori $%d, $%d, 0x%X", i.Rt, i.Rs, i.Imm)
	case XORI:
		return fmt.Sprintf("xori $%d, $%d, 0x%X", i.Rt, i.Rs, i.Imm)
	case LUI:
		return fmt.Sprintf("lui $%d, 0x%X", i.Rt, i.Imm)
	case LB:
		return fmt.Sprintf("lb $%d, %d($%d)", i.Rt, int32(se16(i.Imm)), i.Rs)
	case LH:
		return fmt.Sprintf("lh $%d, %d($%d)", i.Rt, int32(se16(i.Imm)), i.Rs)
	case LW:
		return fmt.Sprintf("lw $%d, %d($%d)", i.Rt, int32(se16(i.Imm)), i.Rs)
	case LBU:
		return fmt.Sprintf("lbu $%d, %d($%d)", i.Rt, int32(se16(i.Imm)), i.Rs)
	case LHU:
		return fmt.Sprintf("lhu $%d, %d($%d)", i.Rt, int32(se16(i.Imm)), i.Rs)
	case SB:
		return fmt.Sprintf("sb $%d, %d($%d)", i.Rt, int32(se16(i.Imm)), i.Rs)
	case SH:
		return fmt.Sprintf("sh $%d, %d($%d)", i.Rt, int32(se16(i.Imm)), i.Rs)
	case SW:
		return fmt.Sprintf("sw $%d, %d($%d)", i.Rt, int32(se16(i.Imm)), i.Rs)
	default:
		return fmt.Sprintf("<unknown i-type: %v>", i.Op)
	}
}

func disasmRType(r RForm) string {
	switch r.Op {
	case SLL:
		return fmt.Sprintf("sll $%d, $%d, %d", r.Rd, r.Rt, r.Shamt)
	case SRL:
		return fmt.Sprintf("srl $%d, $%d, %d", r.Rd, r.Rt, r.Shamt)
	case SRA:
		return fmt.Sprintf("sra $%d, $%d, %d", r.Rd, r.Rt, r.Shamt)
	case SLLV:
		return fmt.Sprintf("sllv $%d, $%d, $%d", r.Rd, r.Rt, r.Rs)
	case SRLV:
		return fmt.Sprintf("srlv $%d, $%d, $%d", r.Rd, r.Rt, r.Rs)
	case SRAV:
		return fmt.Sprintf("srav $%d, $%d, $%d", r.Rd, r.Rt, r.Rs)
	case JR:
		return fmt.Sprintf("jr $%d", r.Rs)
	case JALR:
		return fmt.Sprintf("jalr $%d, $%d", r.Rd, r.Rs)
	case ADD:
		return fmt.Sprintf("add $%d, $%d, $%d", r.Rd, r.Rs, r.Rt)
	case ADDU:
		return fmt.Sprintf("addu $%d, $%d, $%d", r.Rd, r.Rs, r.Rt)
	case SUB:
		return fmt.Sprintf("sub $%d, $%d, $%d", r.Rd, r.Rs, r.Rt)
	case SUBU:
		return fmt.Sprintf("subu $%d, $%d, $%d", r.Rd, r.Rs, r.Rt)
	case AND:
		return fmt.Sprintf("and $%d, $%d, $%d", r.Rd, r.Rs, r.Rt)
	case OR:
		return fmt.Sprintf("or $%d, $%d, $%d", r.Rd, r.Rs, r.Rt)
	case XOR:
		return fmt.Sprintf("xor $%d, $%d, $%d", r.Rd, r.Rs, r.Rt)
	case NOR:
		return fmt.Sprintf("nor $%d, $%d, $%d", r.Rd, r.Rs, r.Rt)
	case SLT:
		return fmt.Sprintf("slt $%d, $%d, $%d", r.Rd, r.Rs, r.Rt)
	case SLTU:
		return fmt.Sprintf("sltu $%d, $%d, $%d", r.Rd, r.Rs, r.Rt)
	case MULT:
		return fmt.Sprintf("mult $%d, $%d", r.Rs, r.Rt)
	case MULTU:
		return fmt.Sprintf("multu $%d, $%d", r.Rs, r.Rt)
	case DIV:
		return fmt.Sprintf("div $%d, $%d", r.Rs, r.Rt)
	case DIVU:
		return fmt.Sprintf("divu $%d, $%d", r.Rs, r.Rt)
	case MFHI:
		return fmt.Sprintf("mfhi $%d", r.Rd)
	case MFLO:
		return fmt.Sprintf("mflo $%d", r.Rd)
	case MTHI:
		return fmt.Sprintf("mthi $%d", r.Rs)
	case MTLO:
		return fmt.Sprintf("mtlo $%d", r.Rs)
	case SYSCALL:
		return "syscall"
	default:
		return fmt.Sprintf("<unknown r-type: %v>", r.Op)
	}
}
