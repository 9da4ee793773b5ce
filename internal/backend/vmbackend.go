package backend

import (
	"fmt"
	"io"
	"os"

	"github.com/linalang/lina/internal/ast"
	"github.com/linalang/lina/internal/pipeline"
	"github.com/linalang/lina/internal/vm"
)

// VMBackend executes programs by compiling to bytecode and running the
// stack machine.
type VMBackend struct {
	out io.Writer
}

// NewVM creates a new VM backend writing to stdout.
func NewVM() *VMBackend {
	return &VMBackend{out: os.Stdout}
}

// SetOutput redirects program output (tests capture it here).
func (b *VMBackend) SetOutput(w io.Writer) {
	b.out = w
}

// Run compiles and executes the program using the VM.
func (b *VMBackend) Run(ctx *pipeline.PipelineContext) error {
	program, err := programFromContext(ctx)
	if err != nil {
		return err
	}

	compiler := vm.NewCompiler()
	chunk, err := compiler.Compile(program)
	if err != nil {
		return err
	}

	machine := vm.New()
	if b.out != nil {
		machine.SetOutput(b.out)
	}
	return machine.Run(chunk)
}

// Name returns the backend name.
func (b *VMBackend) Name() string {
	return "vm"
}

// Disassemble compiles the program and returns its bytecode listing.
func (b *VMBackend) Disassemble(ctx *pipeline.PipelineContext) (string, error) {
	program, err := programFromContext(ctx)
	if err != nil {
		return "", err
	}

	compiler := vm.NewCompiler()
	chunk, err := compiler.Compile(program)
	if err != nil {
		return "", err
	}

	return vm.Disassemble(chunk, "main"), nil
}

// Build compiles the program into a distributable bundle.
func (b *VMBackend) Build(ctx *pipeline.PipelineContext) (*vm.Bundle, error) {
	program, err := programFromContext(ctx)
	if err != nil {
		return nil, err
	}

	compiler := vm.NewCompiler()
	chunk, err := compiler.Compile(program)
	if err != nil {
		return nil, err
	}

	return vm.NewBundle(chunk, ctx.FilePath), nil
}

func programFromContext(ctx *pipeline.PipelineContext) (*ast.Program, error) {
	if ctx.AstRoot == nil {
		return nil, fmt.Errorf("no AST to compile")
	}
	program, ok := ctx.AstRoot.(*ast.Program)
	if !ok {
		return nil, fmt.Errorf("AST root is not a Program: %T", ctx.AstRoot)
	}
	return program, nil
}
