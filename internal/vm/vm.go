package vm

import (
	"fmt"
	"io"
	"os"

	"github.com/linalang/lina/internal/diagnostics"
	"github.com/linalang/lina/internal/token"
)

// VM executes a compiled chunk. Like the compiler it is exclusively
// owned by one run; create a fresh instance per program.
type VM struct {
	chunk *Chunk
	ip    int

	stack []Value
	slots []Value

	out io.Writer
}

// New creates a VM writing program output to stdout.
func New() *VM {
	return &VM{
		stack: make([]Value, 0, 64),
		out:   os.Stdout,
	}
}

// SetOutput redirects `imprima` output, mainly for tests.
func (m *VM) SetOutput(w io.Writer) {
	m.out = w
}

// Slot returns the current value of a variable slot (for inspection
// after a run; slots are never cleared between instructions).
func (m *VM) Slot(i int) Value {
	if i < 0 || i >= len(m.slots) {
		return NilVal()
	}
	return m.slots[i]
}

func (m *VM) push(v Value) {
	m.stack = append(m.stack, v)
}

func (m *VM) pop() Value {
	v := m.stack[len(m.stack)-1]
	m.stack = m.stack[:len(m.stack)-1]
	return v
}

func (m *VM) peek() Value {
	return m.stack[len(m.stack)-1]
}

// setSlot grows the slot array as needed; the compiler hands out
// contiguous indices so growth is bounded by the slot high-water mark.
func (m *VM) setSlot(i int, v Value) {
	for len(m.slots) <= i {
		m.slots = append(m.slots, NilVal())
	}
	m.slots[i] = v
}

// runtimeError builds an R001 diagnostic at the current instruction.
func (m *VM) runtimeError(format string, args ...any) error {
	tok := token.Token{}
	if m.ip > 0 && m.ip <= len(m.chunk.Lines) {
		tok.Line = m.chunk.Lines[m.ip-1]
	}
	return diagnostics.NewError(diagnostics.ErrR001, tok, fmt.Sprintf(format, args...))
}
