package parser

import (
	"testing"

	"github.com/linalang/lina/internal/ast"
	"github.com/linalang/lina/internal/diagnostics"
	"github.com/linalang/lina/internal/lexer"
	"github.com/linalang/lina/internal/pipeline"
	"github.com/linalang/lina/internal/token"
)

func parseProgram(t *testing.T, input string) *ast.Program {
	t.Helper()

	ctx := runFrontend(input)
	if ctx.HasErrors() {
		t.Fatalf("parse error: %s", ctx.Errors[0].Error())
	}
	return ctx.AstRoot.(*ast.Program)
}

func parseError(t *testing.T, input string) *diagnostics.Diagnostic {
	t.Helper()

	ctx := runFrontend(input)
	if !ctx.HasErrors() {
		t.Fatalf("expected a parse error for %q", input)
	}
	return ctx.Errors[0]
}

func runFrontend(input string) *pipeline.PipelineContext {
	ctx := pipeline.NewPipelineContext(input)
	lp := lexer.LexerProcessor{}
	pp := ParserProcessor{}
	return pp.Process(lp.Process(ctx))
}

func firstStatement(t *testing.T, input string) ast.Statement {
	t.Helper()

	program := parseProgram(t, input)
	if len(program.Block.Statements) == 0 {
		t.Fatalf("program has no statements")
	}
	return program.Block.Statements[0]
}

func TestParseAssignStatement(t *testing.T) {
	stmt, ok := firstStatement(t, "x := 10").(*ast.AssignStatement)
	if !ok {
		t.Fatalf("not an assignment statement")
	}
	if stmt.Name.Value != "x" {
		t.Errorf("name = %q, want x", stmt.Name.Value)
	}
	if stmt.Type != nil {
		t.Errorf("bare assignment carries a type annotation")
	}
	lit, ok := stmt.Value.(*ast.IntegerLiteral)
	if !ok || lit.Value != 10 {
		t.Errorf("value = %#v, want integer 10", stmt.Value)
	}
}

func TestParseTypedAssignStatement(t *testing.T) {
	stmt, ok := firstStatement(t, "x: inteiro := 2").(*ast.AssignStatement)
	if !ok {
		t.Fatalf("not an assignment statement")
	}
	if stmt.Type == nil || stmt.Type.Name != "inteiro" {
		t.Fatalf("type annotation = %#v, want inteiro", stmt.Type)
	}
}

func TestParseIfStatement(t *testing.T) {
	stmt, ok := firstStatement(t, "se x < 2 faça\n imprima x\nfim").(*ast.IfStatement)
	if !ok {
		t.Fatalf("not an if statement")
	}
	cond, ok := stmt.Condition.(*ast.InfixExpression)
	if !ok || cond.Operator != token.LT {
		t.Fatalf("condition = %#v, want x < 2", stmt.Condition)
	}
	if len(stmt.Body.Statements) != 1 {
		t.Fatalf("body has %d statements, want 1", len(stmt.Body.Statements))
	}
	if _, ok := stmt.Body.Statements[0].(*ast.PrintStatement); !ok {
		t.Errorf("body statement is not a print")
	}
}

func TestParseWhileStatement(t *testing.T) {
	stmt, ok := firstStatement(t, "enquanto x < 3 faça x := x + 1 fim").(*ast.WhileStatement)
	if !ok {
		t.Fatalf("not a while statement")
	}
	if _, ok := stmt.Body.Statements[0].(*ast.AssignStatement); !ok {
		t.Errorf("body statement is not an assignment")
	}
}

func TestParseForStatement(t *testing.T) {
	stmt, ok := firstStatement(t, "para i até 10 faça imprima i fim").(*ast.ForStatement)
	if !ok {
		t.Fatalf("not a for statement")
	}
	if stmt.Ident.Value != "i" {
		t.Errorf("loop variable = %q, want i", stmt.Ident.Value)
	}
	limit, ok := stmt.Limit.(*ast.IntegerLiteral)
	if !ok || limit.Value != 10 {
		t.Errorf("limit = %#v, want integer 10", stmt.Limit)
	}
}

func TestParseForLimitAcceptsFloat(t *testing.T) {
	stmt := firstStatement(t, "para i até 2.5 faça fim").(*ast.ForStatement)
	limit, ok := stmt.Limit.(*ast.FloatLiteral)
	if !ok || limit.Value != 2.5 {
		t.Errorf("limit = %#v, want real 2.5", stmt.Limit)
	}
}

func TestParsePrecedence(t *testing.T) {
	stmt := firstStatement(t, "1 + 2 * 3").(*ast.ExpressionStatement)

	sum, ok := stmt.Value.(*ast.InfixExpression)
	if !ok || sum.Operator != token.PLUS {
		t.Fatalf("root = %#v, want +", stmt.Value)
	}
	product, ok := sum.Right.(*ast.InfixExpression)
	if !ok || product.Operator != token.STAR {
		t.Fatalf("right = %#v, want 2 * 3", sum.Right)
	}
}

func TestParseCastBindsTighterThanSum(t *testing.T) {
	stmt := firstStatement(t, `"1" como inteiro + 2`).(*ast.ExpressionStatement)

	sum, ok := stmt.Value.(*ast.InfixExpression)
	if !ok || sum.Operator != token.PLUS {
		t.Fatalf("root = %#v, want +", stmt.Value)
	}
	cast, ok := sum.Left.(*ast.CastExpression)
	if !ok || cast.Target.Name != "inteiro" {
		t.Fatalf("left = %#v, want a cast to inteiro", sum.Left)
	}
}

func TestParseGroupingOverridesPrecedence(t *testing.T) {
	stmt := firstStatement(t, "(1 + 2) * 3").(*ast.ExpressionStatement)

	product, ok := stmt.Value.(*ast.InfixExpression)
	if !ok || product.Operator != token.STAR {
		t.Fatalf("root = %#v, want *", stmt.Value)
	}
	if sum, ok := product.Left.(*ast.InfixExpression); !ok || sum.Operator != token.PLUS {
		t.Fatalf("left = %#v, want 1 + 2", product.Left)
	}
}

func TestParseCompoundAssignIsRightAssociative(t *testing.T) {
	stmt := firstStatement(t, "x += y += 1").(*ast.ExpressionStatement)

	outer, ok := stmt.Value.(*ast.InfixExpression)
	if !ok || outer.Operator != token.PLUS_ASSIGN {
		t.Fatalf("root = %#v, want +=", stmt.Value)
	}
	if inner, ok := outer.Right.(*ast.InfixExpression); !ok || inner.Operator != token.PLUS_ASSIGN {
		t.Fatalf("right = %#v, want y += 1", outer.Right)
	}
}

func TestParseSeparators(t *testing.T) {
	tests := []string{
		"x := 1; y := 2; imprima x",
		"x := 1\ny := 2\nimprima x",
		"\n\nx := 1\n;\ny := 2 ; imprima x\n",
	}
	for _, input := range tests {
		program := parseProgram(t, input)
		if got := len(program.Block.Statements); got != 3 {
			t.Errorf("%q: %d statements, want 3", input, got)
		}
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"unterminated block", "enquanto x < 3 faça x := 1"},
		{"missing block keyword", "se x < 2 imprima x fim"},
		{"missing assign after annotation", "x: inteiro 2"},
		{"unknown type annotation", "x: quatro := 1"},
		{"non-literal loop limit", "i := 0\npara i até n faça fim"},
		{"dangling operator", "1 +"},
		{"unbalanced parenthesis", "(1 + 2"},
		{"stray closing keyword", "fim"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := parseError(t, tt.input)
			if d.Code != diagnostics.ErrP001 {
				t.Errorf("code = %s, want %s", d.Code, diagnostics.ErrP001)
			}
		})
	}
}

func TestParserProcessorSkipsAfterLexerErrors(t *testing.T) {
	ctx := runFrontend("x @ 1")

	if !ctx.HasErrors() {
		t.Fatalf("expected the lexer diagnostic to survive")
	}
	if ctx.Errors[0].Code != diagnostics.ErrL001 {
		t.Errorf("code = %s, want %s", ctx.Errors[0].Code, diagnostics.ErrL001)
	}
	if ctx.AstRoot != nil {
		t.Errorf("parser ran despite lexer errors")
	}
}
