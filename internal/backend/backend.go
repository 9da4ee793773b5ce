// Package backend provides the execution seam between the pipeline and
// the virtual machine. The repository's only backend is the bytecode
// VM; the interface is the point where an embedder plugs in a
// different consumer for compiled chunks.
package backend

import (
	"io"

	"github.com/linalang/lina/internal/pipeline"
)

// Backend is the interface for execution backends.
type Backend interface {
	// Run compiles and executes the program from the pipeline context.
	Run(ctx *pipeline.PipelineContext) error

	// SetOutput redirects program output.
	SetOutput(w io.Writer)

	// Name returns the backend name for display.
	Name() string
}
