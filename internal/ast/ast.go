// Package ast defines the syntax tree the parser produces and the
// compiler consumes. The statement and expression sets are small and
// closed; consumers switch over them exhaustively.
package ast

import (
	"github.com/linalang/lina/internal/token"
)

// Node is the base interface for all AST nodes.
type Node interface {
	TokenLiteral() string
}

// Statement is a Node that represents a statement.
type Statement interface {
	Node
	statementNode()
	GetToken() token.Token
}

// Expression is a Node that represents an expression.
type Expression interface {
	Node
	expressionNode()
	GetToken() token.Token
}

// Program is the root node of every tree the parser produces.
type Program struct {
	File  string // source file path
	Block *Block
}

func (p *Program) TokenLiteral() string {
	if p.Block != nil {
		return p.Block.TokenLiteral()
	}
	return ""
}

// Block is an ordered statement list; translating one opens a scope.
type Block struct {
	Statements []Statement
}

func (b *Block) TokenLiteral() string {
	if len(b.Statements) > 0 {
		return b.Statements[0].TokenLiteral()
	}
	return ""
}

// TypeAnnotation is a declared type on an assignment. It is parsed and
// stored but never verified; checking is out of scope.
type TypeAnnotation struct {
	Token token.Token // the type keyword token
	Name  string
}

// AssignStatement represents `x := expr` (optionally `x: tipo := expr`).
// A bare assignment to a visible name re-assigns it; a first or typed
// assignment declares, binding a fresh slot even for a name already
// bound in the same scope.
type AssignStatement struct {
	Token token.Token // the identifier token
	Name  *Identifier
	Type  *TypeAnnotation // optional, unchecked
	Value Expression
}

func (as *AssignStatement) statementNode()        {}
func (as *AssignStatement) TokenLiteral() string  { return as.Token.Lexeme }
func (as *AssignStatement) GetToken() token.Token { return as.Token }

// IfStatement represents `se cond faça corpo fim` (no else form).
type IfStatement struct {
	Token     token.Token // the 'se' token
	Condition Expression
	Body      *Block
}

func (is *IfStatement) statementNode()        {}
func (is *IfStatement) TokenLiteral() string  { return is.Token.Lexeme }
func (is *IfStatement) GetToken() token.Token { return is.Token }

// WhileStatement represents `enquanto cond faça corpo fim`.
type WhileStatement struct {
	Token     token.Token // the 'enquanto' token
	Condition Expression
	Body      *Block
}

func (ws *WhileStatement) statementNode()        {}
func (ws *WhileStatement) TokenLiteral() string  { return ws.Token.Lexeme }
func (ws *WhileStatement) GetToken() token.Token { return ws.Token }

// ForStatement represents `para x até limite faça corpo fim`.
// The loop variable must already be bound; the header binds nothing.
// The limit is a literal and the bound is inclusive.
type ForStatement struct {
	Token token.Token // the 'para' token
	Ident *Identifier
	Limit Expression // literal node
	Body  *Block
}

func (fs *ForStatement) statementNode()        {}
func (fs *ForStatement) TokenLiteral() string  { return fs.Token.Lexeme }
func (fs *ForStatement) GetToken() token.Token { return fs.Token }

// PrintStatement represents `imprima expr`.
type PrintStatement struct {
	Token token.Token // the 'imprima' token
	Value Expression
}

func (ps *PrintStatement) statementNode()        {}
func (ps *PrintStatement) TokenLiteral() string  { return ps.Token.Lexeme }
func (ps *PrintStatement) GetToken() token.Token { return ps.Token }

// ExpressionStatement is a bare expression; its value is discarded.
type ExpressionStatement struct {
	Token token.Token // first token of the expression
	Value Expression
}

func (es *ExpressionStatement) statementNode()        {}
func (es *ExpressionStatement) TokenLiteral() string  { return es.Token.Lexeme }
func (es *ExpressionStatement) GetToken() token.Token { return es.Token }
