package vm

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Run executes chunk to completion. It returns on OpHalt or on the
// first runtime error; nothing is retried.
func (m *VM) Run(chunk *Chunk) error {
	m.chunk = chunk
	m.ip = 0

	for m.ip < len(chunk.Code) {
		op := Opcode(chunk.Code[m.ip])
		m.ip++

		switch op {
		case OpConst:
			addr := chunk.ReadOperand(m.ip)
			m.ip += OperandWidth
			if int(addr) >= len(chunk.Constants) {
				return m.runtimeError("constant address %d out of range", addr)
			}
			m.push(chunk.Constants[addr])

		case OpLoad:
			slot := chunk.ReadOperand(m.ip)
			m.ip += OperandWidth
			m.push(m.Slot(int(slot)))

		case OpStore:
			slot := chunk.ReadOperand(m.ip)
			m.ip += OperandWidth
			m.setSlot(int(slot), m.pop())

		case OpDup:
			m.push(m.peek())

		case OpPop:
			m.pop()

		case OpJump:
			offset := chunk.ReadOffset(m.ip)
			m.ip += OperandWidth
			m.ip += int(offset)

		case OpJumpIfFalse:
			offset := chunk.ReadOffset(m.ip)
			m.ip += OperandWidth
			if !m.pop().IsTruthy() {
				m.ip += int(offset)
			}

		case OpHalt:
			return nil

		case OpWrite:
			// Immediate, unbuffered output.
			fmt.Fprintln(m.out, m.pop().Inspect())

		case OpEq, OpNe, OpLt, OpLe, OpGt, OpGe:
			if err := m.execCompare(op); err != nil {
				return err
			}

		case OpAnd:
			right, left := m.pop(), m.pop()
			m.push(BoolVal(left.IsTruthy() && right.IsTruthy()))

		case OpOr:
			right, left := m.pop(), m.pop()
			m.push(BoolVal(left.IsTruthy() || right.IsTruthy()))

		case OpAdd, OpSub, OpMul, OpDiv, OpRem:
			if err := m.execArithmetic(op); err != nil {
				return err
			}

		case OpCastInt, OpCastFloat, OpCastStr:
			if err := m.execCast(op); err != nil {
				return err
			}

		default:
			return m.runtimeError("unknown opcode %d", op)
		}
	}

	return m.runtimeError("bytecode ran off the end without halt")
}

// execArithmetic applies a binary arithmetic opcode. Mixed Int/Float
// operands widen to Float; the counted loop's Float 1.0 increment
// relies on this coercion.
func (m *VM) execArithmetic(op Opcode) error {
	right, left := m.pop(), m.pop()

	if op == OpAdd && left.IsText() && right.IsText() {
		m.push(TextVal(left.Str + right.Str))
		return nil
	}

	if !left.IsNumeric() || !right.IsNumeric() {
		return m.runtimeError("arithmetic on %s and %s", left.TypeName(), right.TypeName())
	}

	if left.IsInt() && right.IsInt() {
		a, b := left.Int, right.Int
		switch op {
		case OpAdd:
			m.push(IntVal(a + b))
		case OpSub:
			m.push(IntVal(a - b))
		case OpMul:
			m.push(IntVal(a * b))
		case OpDiv:
			if b == 0 {
				return m.runtimeError("division by zero")
			}
			m.push(IntVal(a / b))
		case OpRem:
			if b == 0 {
				return m.runtimeError("division by zero")
			}
			m.push(IntVal(a % b))
		}
		return nil
	}

	a, b := left.AsFloat(), right.AsFloat()
	switch op {
	case OpAdd:
		m.push(FloatVal(a + b))
	case OpSub:
		m.push(FloatVal(a - b))
	case OpMul:
		m.push(FloatVal(a * b))
	case OpDiv:
		if b == 0 {
			return m.runtimeError("division by zero")
		}
		m.push(FloatVal(a / b))
	case OpRem:
		m.push(FloatVal(math.Mod(a, b)))
	}
	return nil
}

func (m *VM) execCompare(op Opcode) error {
	right, left := m.pop(), m.pop()

	// Equality works across all kinds; runtime equality coerces
	// Int/Float (unlike the constant pool's strict interning).
	if op == OpEq || op == OpNe {
		eq := runtimeEqual(left, right)
		if op == OpNe {
			eq = !eq
		}
		m.push(BoolVal(eq))
		return nil
	}

	var cmp int
	switch {
	case left.IsNumeric() && right.IsNumeric():
		a, b := left.AsFloat(), right.AsFloat()
		switch {
		case a < b:
			cmp = -1
		case a > b:
			cmp = 1
		}
	case left.IsText() && right.IsText():
		cmp = strings.Compare(left.Str, right.Str)
	default:
		return m.runtimeError("cannot order %s and %s", left.TypeName(), right.TypeName())
	}

	switch op {
	case OpLt:
		m.push(BoolVal(cmp < 0))
	case OpLe:
		m.push(BoolVal(cmp <= 0))
	case OpGt:
		m.push(BoolVal(cmp > 0))
	case OpGe:
		m.push(BoolVal(cmp >= 0))
	}
	return nil
}

func runtimeEqual(left, right Value) bool {
	if left.IsNumeric() && right.IsNumeric() {
		return left.AsFloat() == right.AsFloat()
	}
	return left.Equals(right)
}

func (m *VM) execCast(op Opcode) error {
	v := m.pop()

	switch op {
	case OpCastInt:
		switch v.Type {
		case ValInt:
			m.push(v)
		case ValFloat:
			m.push(IntVal(int64(v.Flt)))
		case ValText:
			n, err := strconv.ParseInt(strings.TrimSpace(v.Str), 10, 64)
			if err != nil {
				return m.runtimeError("cannot cast %q to inteiro", v.Str)
			}
			m.push(IntVal(n))
		default:
			return m.runtimeError("cannot cast %s to inteiro", v.TypeName())
		}

	case OpCastFloat:
		switch v.Type {
		case ValFloat:
			m.push(v)
		case ValInt:
			m.push(FloatVal(float64(v.Int)))
		case ValText:
			f, err := strconv.ParseFloat(strings.TrimSpace(v.Str), 64)
			if err != nil {
				return m.runtimeError("cannot cast %q to real", v.Str)
			}
			m.push(FloatVal(f))
		default:
			return m.runtimeError("cannot cast %s to real", v.TypeName())
		}

	case OpCastStr:
		m.push(TextVal(v.Inspect()))
	}

	return nil
}
