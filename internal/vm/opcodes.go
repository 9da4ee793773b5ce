// Package vm implements the Lina bytecode compiler and the stack
// machine that executes it.
package vm

// Opcode represents a single VM instruction.
type Opcode byte

const (
	// Stack manipulation
	OpConst Opcode = iota // push constant from pool (u32 address)
	OpLoad                // push slot value (u32 slot)
	OpStore               // pop into slot (u32 slot)
	OpDup                 // duplicate top of stack
	OpPop                 // discard top of stack

	// Control flow
	OpJump        // unconditional jump (i32 signed distance)
	OpJumpIfFalse // jump if top of stack is false (i32 signed distance)
	OpHalt        // stop execution

	// Side effects
	OpWrite // pop and print top of stack

	// Comparison
	OpEq // ==
	OpNe // !=
	OpLt // <
	OpLe // <=
	OpGt // >
	OpGe // >=

	// Logic
	OpAnd // e
	OpOr  // ou

	// Arithmetic
	OpAdd // +
	OpSub // -
	OpMul // *
	OpDiv // /
	OpRem // %

	// Type casts
	OpCastInt   // como inteiro
	OpCastFloat // como real
	OpCastStr   // como texto
)

// OpcodeNames maps opcodes to their string names (for the disassembler).
var OpcodeNames = map[Opcode]string{
	OpConst: "CONST",
	OpLoad:  "LOAD",
	OpStore: "STORE",
	OpDup:   "DUP",
	OpPop:   "POP",

	OpJump:        "JUMP",
	OpJumpIfFalse: "JUMP_IF_FALSE",
	OpHalt:        "HALT",

	OpWrite: "WRITE",

	OpEq: "EQ",
	OpNe: "NE",
	OpLt: "LT",
	OpLe: "LE",
	OpGt: "GT",
	OpGe: "GE",

	OpAnd: "AND",
	OpOr:  "OR",

	OpAdd: "ADD",
	OpSub: "SUB",
	OpMul: "MUL",
	OpDiv: "DIV",
	OpRem: "REM",

	OpCastInt:   "CAST_INT",
	OpCastFloat: "CAST_FLOAT",
	OpCastStr:   "CAST_STR",
}
