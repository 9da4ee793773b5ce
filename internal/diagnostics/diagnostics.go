// Package diagnostics defines the coded errors reported by the Lina
// toolchain. Every failure is fatal: the pipeline stops at the first
// stage that produced diagnostics and no artifact is returned.
package diagnostics

import (
	"fmt"

	"github.com/linalang/lina/internal/token"
)

// Diagnostic codes. The C-codes are the compiler's error taxonomy.
const (
	ErrL001 = "L001" // illegal character
	ErrP001 = "P001" // syntax error
	ErrC001 = "C001" // undefined variable
	ErrC002 = "C002" // invalid assignment target
	ErrC003 = "C003" // unsupported cast
	ErrC004 = "C004" // unsupported operator
	ErrC005 = "C005" // unsupported literal
	ErrR001 = "R001" // runtime error
)

// codeNames maps codes to their taxonomy names for display.
var codeNames = map[string]string{
	ErrL001: "IllegalCharacter",
	ErrP001: "SyntaxError",
	ErrC001: "UndefinedVariable",
	ErrC002: "InvalidAssignmentTarget",
	ErrC003: "UnsupportedCast",
	ErrC004: "UnsupportedOperator",
	ErrC005: "UnsupportedLiteral",
	ErrR001: "RuntimeError",
}

// Diagnostic is a positioned, coded error.
type Diagnostic struct {
	Code    string
	Message string
	File    string
	Line    int
	Column  int
}

// NewError creates a diagnostic at the position of tok.
func NewError(code string, tok token.Token, message string) *Diagnostic {
	return &Diagnostic{
		Code:    code,
		Message: message,
		Line:    tok.Line,
		Column:  tok.Column,
	}
}

// Name returns the taxonomy name for the diagnostic's code.
func (d *Diagnostic) Name() string {
	if name, ok := codeNames[d.Code]; ok {
		return name
	}
	return "Error"
}

func (d *Diagnostic) Error() string {
	if d.File != "" {
		return fmt.Sprintf("%s:%d:%d: %s[%s]: %s", d.File, d.Line, d.Column, d.Name(), d.Code, d.Message)
	}
	if d.Line > 0 {
		return fmt.Sprintf("%d:%d: %s[%s]: %s", d.Line, d.Column, d.Name(), d.Code, d.Message)
	}
	return fmt.Sprintf("%s[%s]: %s", d.Name(), d.Code, d.Message)
}

// Is reports whether err is a Diagnostic carrying the given code.
func Is(err error, code string) bool {
	d, ok := err.(*Diagnostic)
	return ok && d.Code == code
}
