package vm

import (
	"fmt"
	"strings"
)

// Disassemble returns a human-readable representation of the bytecode.
func Disassemble(chunk *Chunk, name string) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("== %s ==\n", name))

	offset := 0
	for offset < len(chunk.Code) {
		offset = disassembleInstruction(&sb, chunk, offset)
	}

	return sb.String()
}

func disassembleInstruction(sb *strings.Builder, chunk *Chunk, offset int) int {
	sb.WriteString(fmt.Sprintf("%04d ", offset))

	if offset > 0 && chunk.Lines[offset] == chunk.Lines[offset-1] {
		sb.WriteString("   | ")
	} else {
		sb.WriteString(fmt.Sprintf("%4d ", chunk.Lines[offset]))
	}

	op := Opcode(chunk.Code[offset])

	switch op {
	case OpConst:
		return constantInstruction(sb, chunk, offset)
	case OpLoad, OpStore:
		return slotInstruction(sb, op, chunk, offset)
	case OpJump, OpJumpIfFalse:
		return jumpInstruction(sb, op, chunk, offset)
	default:
		if name, ok := OpcodeNames[op]; ok {
			sb.WriteString(fmt.Sprintf("%s\n", name))
			return offset + 1
		}
		sb.WriteString(fmt.Sprintf("Unknown opcode %d\n", op))
		return offset + 1
	}
}

func constantInstruction(sb *strings.Builder, chunk *Chunk, offset int) int {
	addr := int(chunk.ReadOperand(offset + 1))

	if addr < len(chunk.Constants) {
		sb.WriteString(fmt.Sprintf("%-16s %4d '%s'\n", "CONST", addr, chunk.Constants[addr].Inspect()))
	} else {
		sb.WriteString(fmt.Sprintf("%-16s %4d (invalid)\n", "CONST", addr))
	}

	return offset + 1 + OperandWidth
}

func slotInstruction(sb *strings.Builder, op Opcode, chunk *Chunk, offset int) int {
	slot := chunk.ReadOperand(offset + 1)
	sb.WriteString(fmt.Sprintf("%-16s %4d\n", OpcodeNames[op], slot))
	return offset + 1 + OperandWidth
}

func jumpInstruction(sb *strings.Builder, op Opcode, chunk *Chunk, offset int) int {
	jump := chunk.ReadOffset(offset + 1)
	target := offset + 1 + OperandWidth + int(jump)
	sb.WriteString(fmt.Sprintf("%-16s %4d -> %d\n", OpcodeNames[op], jump, target))
	return offset + 1 + OperandWidth
}
