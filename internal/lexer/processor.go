package lexer

import (
	"fmt"

	"github.com/linalang/lina/internal/diagnostics"
	"github.com/linalang/lina/internal/pipeline"
	"github.com/linalang/lina/internal/token"
)

// LexerProcessor is the pipeline stage that tokenizes the source.
type LexerProcessor struct{}

func (lp *LexerProcessor) Process(ctx *pipeline.PipelineContext) *pipeline.PipelineContext {
	l := New(ctx.SourceCode)

	var tokens []token.Token
	for {
		tok := l.NextToken()
		if tok.Type == token.ILLEGAL {
			ctx.AddError(diagnostics.NewError(
				diagnostics.ErrL001,
				tok,
				fmt.Sprintf("illegal character %q", tok.Lexeme),
			))
		}
		tokens = append(tokens, tok)
		if tok.Type == token.EOF {
			break
		}
	}

	ctx.TokenStream = tokens
	return ctx
}
