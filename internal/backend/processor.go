package backend

import (
	"github.com/linalang/lina/internal/diagnostics"
	"github.com/linalang/lina/internal/pipeline"
	"github.com/linalang/lina/internal/token"
)

// ExecutionProcessor is the pipeline stage that runs a Backend.
type ExecutionProcessor struct {
	Backend Backend
}

// NewExecutionProcessor creates a pipeline step for the given backend.
func NewExecutionProcessor(b Backend) *ExecutionProcessor {
	return &ExecutionProcessor{Backend: b}
}

func (p *ExecutionProcessor) Process(ctx *pipeline.PipelineContext) *pipeline.PipelineContext {
	// If previous stages failed, don't run execution.
	if ctx.AstRoot == nil || ctx.HasErrors() {
		return ctx
	}

	if err := p.Backend.Run(ctx); err != nil {
		// Compile and runtime errors already travel as diagnostics;
		// anything else becomes a generic runtime diagnostic.
		if d, ok := err.(*diagnostics.Diagnostic); ok {
			ctx.AddError(d)
		} else {
			ctx.AddError(diagnostics.NewError(diagnostics.ErrR001, token.Token{}, err.Error()))
		}
	}

	return ctx
}
