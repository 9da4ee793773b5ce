package diagnostics

import (
	"errors"
	"testing"

	"github.com/linalang/lina/internal/token"
)

func TestErrorFormatting(t *testing.T) {
	d := NewError(ErrC001, token.Token{Line: 3, Column: 7}, `variable "x" is not defined`)

	if got, want := d.Error(), `3:7: UndefinedVariable[C001]: variable "x" is not defined`; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}

	d.File = "programa.lina"
	if got, want := d.Error(), `programa.lina:3:7: UndefinedVariable[C001]: variable "x" is not defined`; got != want {
		t.Errorf("Error() with file = %q, want %q", got, want)
	}
}

func TestErrorWithoutPosition(t *testing.T) {
	d := NewError(ErrR001, token.Token{}, "division by zero")
	if got, want := d.Error(), "RuntimeError[R001]: division by zero"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestName(t *testing.T) {
	if got := (&Diagnostic{Code: ErrC003}).Name(); got != "UnsupportedCast" {
		t.Errorf("Name() = %q", got)
	}
	if got := (&Diagnostic{Code: "Z999"}).Name(); got != "Error" {
		t.Errorf("unknown code Name() = %q, want Error", got)
	}
}

func TestIs(t *testing.T) {
	d := NewError(ErrC002, token.Token{}, "bad target")

	if !Is(d, ErrC002) {
		t.Errorf("Is should match the carried code")
	}
	if Is(d, ErrC001) {
		t.Errorf("Is must not match a different code")
	}
	if Is(errors.New("plain"), ErrC002) {
		t.Errorf("Is must reject non-diagnostics")
	}
	if Is(nil, ErrC002) {
		t.Errorf("Is must reject nil")
	}
}
