package parser

import (
	"github.com/linalang/lina/internal/diagnostics"
	"github.com/linalang/lina/internal/pipeline"
	"github.com/linalang/lina/internal/token"
)

// ParserProcessor is the pipeline stage that builds the syntax tree.
type ParserProcessor struct{}

func (pp *ParserProcessor) Process(ctx *pipeline.PipelineContext) *pipeline.PipelineContext {
	if ctx.HasErrors() {
		return ctx
	}
	if ctx.TokenStream == nil {
		// Should not happen when the lexer runs first, but as a safeguard:
		ctx.AddError(diagnostics.NewError(diagnostics.ErrP001, token.Token{}, "parser: token stream is nil"))
		return ctx
	}

	parser := New(ctx.TokenStream, ctx)
	program := parser.ParseProgram()
	program.File = ctx.FilePath
	ctx.AstRoot = program

	return ctx
}
