package vm

import "testing"

func TestValueInspect(t *testing.T) {
	tests := []struct {
		value Value
		want  string
	}{
		{IntVal(42), "42"},
		{IntVal(-7), "-7"},
		{FloatVal(2.5), "2.5"},
		{FloatVal(3), "3"},
		{BoolVal(true), "verdadeiro"},
		{BoolVal(false), "falso"},
		{TextVal("olá"), "olá"},
		{NilVal(), "nulo"},
	}

	for _, tt := range tests {
		if got := tt.value.Inspect(); got != tt.want {
			t.Errorf("Inspect(%s %v) = %q, want %q", tt.value.TypeName(), tt.value, got, tt.want)
		}
	}
}

func TestValueEqualsIsStrictOnKind(t *testing.T) {
	if IntVal(10).Equals(FloatVal(10)) {
		t.Errorf("inteiro 10 must not equal real 10.0 for interning")
	}
	if !IntVal(10).Equals(IntVal(10)) {
		t.Errorf("inteiro 10 must equal itself")
	}
	if TextVal("1").Equals(IntVal(1)) {
		t.Errorf("texto \"1\" must not equal inteiro 1")
	}
	if !NilVal().Equals(NilVal()) {
		t.Errorf("nulo must equal nulo")
	}
}

func TestValueTruthiness(t *testing.T) {
	truthy := []Value{BoolVal(true), IntVal(1), IntVal(-1), FloatVal(0.1), TextVal("x")}
	falsy := []Value{BoolVal(false), NilVal(), IntVal(0), FloatVal(0), TextVal("")}

	for _, v := range truthy {
		if !v.IsTruthy() {
			t.Errorf("%s %s should be truthy", v.TypeName(), v.Inspect())
		}
	}
	for _, v := range falsy {
		if v.IsTruthy() {
			t.Errorf("%s %s should be falsy", v.TypeName(), v.Inspect())
		}
	}
}
