package vm

import (
	"github.com/linalang/lina/internal/ast"
	"github.com/linalang/lina/internal/diagnostics"
	"github.com/linalang/lina/internal/token"
)

// binaryOpcodes maps non-assigning operators and their compound forms
// to the opcode that computes them. Pure `:=` computes nothing and
// `**` is parsed but not lowered.
var binaryOpcodes = map[token.TokenType]Opcode{
	token.GT: OpGt,
	token.LT: OpLt,
	token.GE: OpGe,
	token.LE: OpLe,
	token.EQ: OpEq,
	token.NE: OpNe,

	token.E:  OpAnd,
	token.OU: OpOr,

	token.PLUS:           OpAdd,
	token.PLUS_ASSIGN:    OpAdd,
	token.MINUS:          OpSub,
	token.MINUS_ASSIGN:   OpSub,
	token.STAR:           OpMul,
	token.STAR_ASSIGN:    OpMul,
	token.SLASH:          OpDiv,
	token.SLASH_ASSIGN:   OpDiv,
	token.PERCENT:        OpRem,
	token.PERCENT_ASSIGN: OpRem,
}

// isAssignOp reports whether op stores into its left operand.
func isAssignOp(op token.TokenType) bool {
	switch op {
	case token.ASSIGN, token.PLUS_ASSIGN, token.MINUS_ASSIGN,
		token.STAR_ASSIGN, token.SLASH_ASSIGN, token.PERCENT_ASSIGN,
		token.POW_ASSIGN:
		return true
	}
	return false
}

func (c *Compiler) compileExpression(expr ast.Expression) error {
	switch node := expr.(type) {
	case *ast.IntegerLiteral:
		c.emitConstant(IntVal(node.Value), node.Token.Line)
	case *ast.FloatLiteral:
		c.emitConstant(FloatVal(node.Value), node.Token.Line)
	case *ast.StringLiteral:
		c.emitConstant(TextVal(node.Value), node.Token.Line)
	case *ast.BooleanLiteral:
		c.emitConstant(BoolVal(node.Value), node.Token.Line)
	case *ast.NilLiteral:
		// The pool holds four kinds; 'nulo' has no runtime encoding.
		return c.errorf(diagnostics.ErrC005, node.Token, "'nulo' cannot be used as a value")
	case *ast.Identifier:
		slot, ok := c.resolveLocal(node.Value)
		if !ok {
			return c.errorf(diagnostics.ErrC001, node.Token, "variable %q is not defined", node.Value)
		}
		c.emit(OpLoad, node.Token.Line)
		c.emitOperand(uint32(slot), node.Token.Line)
	case *ast.InfixExpression:
		return c.compileInfixExpression(node)
	case *ast.CastExpression:
		return c.compileCastExpression(node)
	default:
		panic("compiler: unhandled expression node")
	}
	return nil
}

func (c *Compiler) compileInfixExpression(node *ast.InfixExpression) error {
	line := node.Token.Line

	if node.Operator == token.POW || node.Operator == token.POW_ASSIGN {
		return c.errorf(diagnostics.ErrC004, node.Token, "operator %q is not supported", node.Token.Lexeme)
	}

	var target *ast.Identifier
	if isAssignOp(node.Operator) {
		// The destination must be a plain identifier. Checked before
		// any emission so a failing statement leaves no bytecode.
		ident, ok := node.Left.(*ast.Identifier)
		if !ok {
			return c.errorf(diagnostics.ErrC002, node.Token,
				"left side of %q must be an identifier", node.Token.Lexeme)
		}
		target = ident
	}

	// Pure := never evaluates its left side; compound operators use it
	// as the operator's first input. Left before right is load-bearing
	// even for commutative operators.
	if node.Operator != token.ASSIGN {
		if err := c.compileExpression(node.Left); err != nil {
			return err
		}
	}
	if err := c.compileExpression(node.Right); err != nil {
		return err
	}

	if op, ok := binaryOpcodes[node.Operator]; ok {
		c.emit(op, line)
	}

	if target != nil {
		slot, ok := c.resolveLocal(target.Value)
		if !ok {
			return c.errorf(diagnostics.ErrC001, target.Token, "variable %q is not defined", target.Value)
		}
		// Keep one copy as the expression's value, store the other.
		c.emit(OpDup, line)
		c.emit(OpStore, line)
		c.emitOperand(uint32(slot), line)
	}

	return nil
}

func (c *Compiler) compileCastExpression(node *ast.CastExpression) error {
	if _, isNil := node.Value.(*ast.NilLiteral); isNil {
		return c.errorf(diagnostics.ErrC003, node.Token, "'nulo' cannot be cast")
	}

	if err := c.compileExpression(node.Value); err != nil {
		return err
	}

	switch node.Target.Token.Type {
	case token.TIPO_INTEIRO:
		c.emit(OpCastInt, node.Token.Line)
	case token.TIPO_REAL:
		c.emit(OpCastFloat, node.Token.Line)
	case token.TIPO_TEXTO:
		c.emit(OpCastStr, node.Token.Line)
	default:
		return c.errorf(diagnostics.ErrC003, node.Target.Token,
			"no cast to type %q", node.Target.Name)
	}
	return nil
}
