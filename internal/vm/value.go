package vm

import (
	"fmt"
	"strconv"
)

// ValueType identifies the kind of value stored in a Value.
type ValueType uint8

const (
	ValNil ValueType = iota
	ValInt
	ValFloat
	ValBool
	ValText
)

var valueTypeNames = map[ValueType]string{
	ValNil:   "nulo",
	ValInt:   "inteiro",
	ValFloat: "real",
	ValBool:  "booleano",
	ValText:  "texto",
}

// Value is a stack-allocated tagged union for the four runtime kinds
// (plus nil). It is used both as a constant-pool entry and as a VM
// stack cell.
type Value struct {
	Type ValueType
	Int  int64
	Flt  float64
	Str  string
	Bln  bool
}

// Constructors

func NilVal() Value            { return Value{Type: ValNil} }
func IntVal(v int64) Value     { return Value{Type: ValInt, Int: v} }
func FloatVal(v float64) Value { return Value{Type: ValFloat, Flt: v} }
func BoolVal(v bool) Value     { return Value{Type: ValBool, Bln: v} }
func TextVal(v string) Value   { return Value{Type: ValText, Str: v} }

// Type checking helpers

func (v Value) IsInt() bool   { return v.Type == ValInt }
func (v Value) IsFloat() bool { return v.Type == ValFloat }
func (v Value) IsBool() bool  { return v.Type == ValBool }
func (v Value) IsText() bool  { return v.Type == ValText }
func (v Value) IsNil() bool   { return v.Type == ValNil }

// IsNumeric reports whether v participates in arithmetic.
func (v Value) IsNumeric() bool { return v.Type == ValInt || v.Type == ValFloat }

// AsFloat widens a numeric value to float64.
func (v Value) AsFloat() float64 {
	if v.Type == ValInt {
		return float64(v.Int)
	}
	return v.Flt
}

// Equals is the equality the constant pool interns by. It is strict on
// type: Int 10 and Float 10.0 are distinct pool entries. Floats compare
// with ==, so a NaN entry never matches itself and would be interned
// again each time.
func (v Value) Equals(other Value) bool {
	if v.Type != other.Type {
		return false
	}
	switch v.Type {
	case ValNil:
		return true
	case ValInt:
		return v.Int == other.Int
	case ValFloat:
		return v.Flt == other.Flt
	case ValBool:
		return v.Bln == other.Bln
	case ValText:
		return v.Str == other.Str
	default:
		return false
	}
}

// IsTruthy reports the value's behavior under jump-if-false.
func (v Value) IsTruthy() bool {
	switch v.Type {
	case ValBool:
		return v.Bln
	case ValNil:
		return false
	case ValInt:
		return v.Int != 0
	case ValFloat:
		return v.Flt != 0
	case ValText:
		return v.Str != ""
	default:
		return false
	}
}

// TypeName returns the Lina-facing name of the value's kind.
func (v Value) TypeName() string {
	if name, ok := valueTypeNames[v.Type]; ok {
		return name
	}
	return "desconhecido"
}

// Inspect returns the value's display form, as printed by `imprima`.
func (v Value) Inspect() string {
	switch v.Type {
	case ValInt:
		return strconv.FormatInt(v.Int, 10)
	case ValFloat:
		return strconv.FormatFloat(v.Flt, 'g', -1, 64)
	case ValBool:
		if v.Bln {
			return "verdadeiro"
		}
		return "falso"
	case ValText:
		return v.Str
	case ValNil:
		return "nulo"
	default:
		return fmt.Sprintf("<?%d>", v.Type)
	}
}
