// Package parser builds the syntax tree from a token stream. It is a
// Pratt parser; input is expected to be well formed and the first
// syntax error aborts parsing with a diagnostic, no recovery.
package parser

import (
	"fmt"
	"strconv"

	"github.com/linalang/lina/internal/ast"
	"github.com/linalang/lina/internal/diagnostics"
	"github.com/linalang/lina/internal/pipeline"
	"github.com/linalang/lina/internal/token"
)

// Operator precedence levels, lowest first.
const (
	LOWEST     int = iota + 1
	ASSIGNMENT     // := += -= *= /= %= **=
	OR             // ou
	AND            // e
	EQUALITY       // == !=
	COMPARISON     // < <= > >=
	SUM            // + -
	PRODUCT        // * / %
	EXPONENT       // **
	CAST           // como
)

var precedences = map[token.TokenType]int{
	token.ASSIGN:         ASSIGNMENT,
	token.PLUS_ASSIGN:    ASSIGNMENT,
	token.MINUS_ASSIGN:   ASSIGNMENT,
	token.STAR_ASSIGN:    ASSIGNMENT,
	token.SLASH_ASSIGN:   ASSIGNMENT,
	token.PERCENT_ASSIGN: ASSIGNMENT,
	token.POW_ASSIGN:     ASSIGNMENT,
	token.OU:             OR,
	token.E:              AND,
	token.EQ:             EQUALITY,
	token.NE:             EQUALITY,
	token.LT:             COMPARISON,
	token.LE:             COMPARISON,
	token.GT:             COMPARISON,
	token.GE:             COMPARISON,
	token.PLUS:           SUM,
	token.MINUS:          SUM,
	token.STAR:           PRODUCT,
	token.SLASH:          PRODUCT,
	token.PERCENT:        PRODUCT,
	token.POW:            EXPONENT,
	token.COMO:           CAST,
}

type (
	prefixParseFn func() ast.Expression
	infixParseFn  func(ast.Expression) ast.Expression
)

type Parser struct {
	tokens []token.Token
	pos    int

	curToken  token.Token
	peekToken token.Token

	ctx *pipeline.PipelineContext

	prefixParseFns map[token.TokenType]prefixParseFn
	infixParseFns  map[token.TokenType]infixParseFn
}

func New(tokens []token.Token, ctx *pipeline.PipelineContext) *Parser {
	p := &Parser{tokens: tokens, ctx: ctx}

	p.prefixParseFns = map[token.TokenType]prefixParseFn{
		token.IDENT:      p.parseIdentifier,
		token.INT:        p.parseIntegerLiteral,
		token.FLOAT:      p.parseFloatLiteral,
		token.STRING:     p.parseStringLiteral,
		token.VERDADEIRO: p.parseBooleanLiteral,
		token.FALSO:      p.parseBooleanLiteral,
		token.NULO:       p.parseNilLiteral,
		token.LPAREN:     p.parseGroupedExpression,
	}

	p.infixParseFns = map[token.TokenType]infixParseFn{
		token.COMO: p.parseCastExpression,
	}
	for _, op := range []token.TokenType{
		token.ASSIGN, token.PLUS_ASSIGN, token.MINUS_ASSIGN,
		token.STAR_ASSIGN, token.SLASH_ASSIGN, token.PERCENT_ASSIGN,
		token.POW_ASSIGN,
		token.OU, token.E,
		token.EQ, token.NE, token.LT, token.LE, token.GT, token.GE,
		token.PLUS, token.MINUS, token.STAR, token.SLASH,
		token.PERCENT, token.POW,
	} {
		p.infixParseFns[op] = p.parseInfixExpression
	}

	// Prime curToken and peekToken.
	p.nextToken()
	p.nextToken()
	return p
}

func (p *Parser) nextToken() {
	p.curToken = p.peekToken
	if p.pos < len(p.tokens) {
		p.peekToken = p.tokens[p.pos]
		p.pos++
	} else {
		p.peekToken = token.Token{Type: token.EOF}
	}
}

func (p *Parser) curPrecedence() int {
	if prec, ok := precedences[p.curToken.Type]; ok {
		return prec
	}
	return LOWEST
}

func (p *Parser) peekPrecedence() int {
	if prec, ok := precedences[p.peekToken.Type]; ok {
		return prec
	}
	return LOWEST
}

func (p *Parser) expectPeek(t token.TokenType) bool {
	if p.peekToken.Type == t {
		p.nextToken()
		return true
	}
	p.errorf(p.peekToken, "expected %q, got %q", t, p.peekToken.Lexeme)
	return false
}

func (p *Parser) errorf(tok token.Token, format string, args ...any) {
	p.ctx.AddError(diagnostics.NewError(
		diagnostics.ErrP001,
		tok,
		fmt.Sprintf(format, args...),
	))
}

// --- Expressions ---

func (p *Parser) parseExpression(precedence int) ast.Expression {
	prefix := p.prefixParseFns[p.curToken.Type]
	if prefix == nil {
		p.errorf(p.curToken, "unexpected token %q in expression", p.curToken.Lexeme)
		return nil
	}
	left := prefix()

	for left != nil && precedence < p.peekPrecedence() {
		infix := p.infixParseFns[p.peekToken.Type]
		if infix == nil {
			return left
		}
		p.nextToken()
		left = infix(left)
	}

	return left
}

func (p *Parser) parseIdentifier() ast.Expression {
	return &ast.Identifier{Token: p.curToken, Value: p.curToken.Lexeme}
}

func (p *Parser) parseIntegerLiteral() ast.Expression {
	value, err := strconv.ParseInt(p.curToken.Literal, 10, 64)
	if err != nil {
		p.errorf(p.curToken, "could not parse %q as integer", p.curToken.Literal)
		return nil
	}
	return &ast.IntegerLiteral{Token: p.curToken, Value: value}
}

func (p *Parser) parseFloatLiteral() ast.Expression {
	value, err := strconv.ParseFloat(p.curToken.Literal, 64)
	if err != nil {
		p.errorf(p.curToken, "could not parse %q as number", p.curToken.Literal)
		return nil
	}
	return &ast.FloatLiteral{Token: p.curToken, Value: value}
}

func (p *Parser) parseStringLiteral() ast.Expression {
	return &ast.StringLiteral{Token: p.curToken, Value: p.curToken.Literal}
}

func (p *Parser) parseBooleanLiteral() ast.Expression {
	return &ast.BooleanLiteral{Token: p.curToken, Value: p.curToken.Type == token.VERDADEIRO}
}

func (p *Parser) parseNilLiteral() ast.Expression {
	return &ast.NilLiteral{Token: p.curToken}
}

func (p *Parser) parseGroupedExpression() ast.Expression {
	p.nextToken()
	expr := p.parseExpression(LOWEST)
	if !p.expectPeek(token.RPAREN) {
		return nil
	}
	return expr
}

func (p *Parser) parseInfixExpression(left ast.Expression) ast.Expression {
	expr := &ast.InfixExpression{
		Token:    p.curToken,
		Operator: p.curToken.Type,
		Left:     left,
	}

	precedence := p.curPrecedence()
	// Assignment-flavored operators are right associative.
	if precedence == ASSIGNMENT {
		precedence--
	}
	p.nextToken()
	expr.Right = p.parseExpression(precedence)
	if expr.Right == nil {
		return nil
	}
	return expr
}

func (p *Parser) parseCastExpression(left ast.Expression) ast.Expression {
	expr := &ast.CastExpression{Token: p.curToken, Value: left}
	p.nextToken()
	expr.Target = p.parseTypeAnnotation()
	if expr.Target == nil {
		return nil
	}
	return expr
}

// parseTypeAnnotation parses a type keyword at the current token.
func (p *Parser) parseTypeAnnotation() *ast.TypeAnnotation {
	switch p.curToken.Type {
	case token.TIPO_INTEIRO, token.TIPO_REAL, token.TIPO_TEXTO, token.TIPO_BOOLEANO:
		return &ast.TypeAnnotation{Token: p.curToken, Name: p.curToken.Lexeme}
	default:
		p.errorf(p.curToken, "expected a type name, got %q", p.curToken.Lexeme)
		return nil
	}
}
