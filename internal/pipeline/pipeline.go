// Package pipeline wires the toolchain stages (lexer, parser, compiler,
// execution) into a linear sequence sharing one context.
package pipeline

import (
	"github.com/linalang/lina/internal/diagnostics"
	"github.com/linalang/lina/internal/token"
)

// Processor is a single pipeline stage.
type Processor interface {
	Process(ctx *PipelineContext) *PipelineContext
}

// PipelineContext carries the artifacts produced by each stage.
type PipelineContext struct {
	SourceCode  string
	FilePath    string
	TokenStream []token.Token
	AstRoot     any // *ast.Program once the parser ran
	Errors      []*diagnostics.Diagnostic
}

// NewPipelineContext creates a context for compiling source.
func NewPipelineContext(source string) *PipelineContext {
	return &PipelineContext{SourceCode: source}
}

// HasErrors reports whether any stage failed.
func (ctx *PipelineContext) HasErrors() bool {
	return len(ctx.Errors) > 0
}

// AddError appends a diagnostic, stamping the context's file path.
func (ctx *PipelineContext) AddError(d *diagnostics.Diagnostic) {
	if d.File == "" {
		d.File = ctx.FilePath
	}
	ctx.Errors = append(ctx.Errors, d)
}

// Pipeline represents a sequence of processing stages.
type Pipeline struct {
	processors []Processor
}

func New(processors ...Processor) *Pipeline {
	return &Pipeline{processors: processors}
}

// Run executes the pipeline. Stages after a failure still run so each
// can decide to bail out; they are expected to return the context
// untouched when it already carries errors.
func (p *Pipeline) Run(initialCtx *PipelineContext) *PipelineContext {
	ctx := initialCtx
	for _, processor := range p.processors {
		ctx = processor.Process(ctx)
	}
	return ctx
}
