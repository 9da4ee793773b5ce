package vm

import (
	"fmt"

	"github.com/linalang/lina/internal/ast"
	"github.com/linalang/lina/internal/diagnostics"
	"github.com/linalang/lina/internal/token"
)

// Compiler translates a syntax tree into a Chunk. Each compilation
// owns its compiler, chunk, scope stack and slot counter outright;
// concurrent compilations must use independent instances.
type Compiler struct {
	chunk *Chunk

	// scopes is the frame stack: each frame maps names to slot
	// indices for one block. Frames are plain maps so rebinding a
	// name inside a frame allocates a fresh slot and abandons the
	// old one; that leak is kept deliberately, downstream tooling
	// reads raw slot numbers.
	scopes []map[string]int

	// slotCount is the high-water mark of live slots.
	slotCount int
}

// NewCompiler creates a compiler for one compilation.
func NewCompiler() *Compiler {
	return &Compiler{chunk: NewChunk()}
}

// Compile translates program and returns the finished chunk, halt
// opcode appended. On error no chunk is returned; there are no partial
// artifacts.
func (c *Compiler) Compile(program *ast.Program) (*Chunk, error) {
	if err := c.compileBlock(program.Block); err != nil {
		return nil, err
	}
	c.chunk.WriteOp(OpHalt, 0)
	return c.chunk, nil
}

// errorf builds the coded diagnostic every compile failure travels as.
func (c *Compiler) errorf(code string, tok token.Token, format string, args ...any) error {
	return diagnostics.NewError(code, tok, fmt.Sprintf(format, args...))
}
