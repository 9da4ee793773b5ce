package vm

import (
	"github.com/linalang/lina/internal/ast"
	"github.com/linalang/lina/internal/diagnostics"
)

// compileBlock translates one block inside a fresh scope frame. The
// frame lives for exactly this call; closing it restores the slot
// counter to its pre-open value.
func (c *Compiler) compileBlock(block *ast.Block) error {
	c.beginScope()
	for _, stmt := range block.Statements {
		if err := c.compileStatement(stmt); err != nil {
			return err
		}
	}
	c.endScope()
	return nil
}

// compileStatement translates a single statement. Control flow builds
// no block graph: each construct is a self-contained jump pattern
// resolved as soon as its sub-block's byte length is known.
func (c *Compiler) compileStatement(stmt ast.Statement) error {
	switch node := stmt.(type) {
	case *ast.AssignStatement:
		return c.compileAssignStatement(node)

	case *ast.IfStatement:
		if err := c.compileExpression(node.Condition); err != nil {
			return err
		}
		exitJump := c.emitJump(OpJumpIfFalse, node.Token.Line)
		if err := c.compileBlock(node.Body); err != nil {
			return err
		}
		// Distance over the body: exactly its byte length.
		c.patchJump(exitJump)

	case *ast.WhileStatement:
		loopStart := c.chunk.Len()
		if err := c.compileExpression(node.Condition); err != nil {
			return err
		}
		exitJump := c.emitJump(OpJumpIfFalse, node.Token.Line)
		if err := c.compileBlock(node.Body); err != nil {
			return err
		}
		c.emitLoop(loopStart, node.Token.Line)
		// Land just past the back-jump.
		c.patchJump(exitJump)

	case *ast.ForStatement:
		return c.compileForStatement(node)

	case *ast.PrintStatement:
		if err := c.compileExpression(node.Value); err != nil {
			return err
		}
		c.emit(OpWrite, node.Token.Line)

	case *ast.ExpressionStatement:
		if err := c.compileExpression(node.Value); err != nil {
			return err
		}
		c.emit(OpPop, node.Token.Line)

	default:
		panic("compiler: unhandled statement node")
	}
	return nil
}

// compileAssignStatement translates `x := e`. A bare assignment to a
// name that is already visible stores into the existing slot, exactly
// like the pure-assignment operator in expression position (a loop
// body's `x := x + 1` must keep updating the slot its condition
// reads). A first assignment, or one carrying a type annotation,
// declares: it binds a fresh slot every time, even when the name is
// already bound in the same frame, leaving the old slot permanently
// unreachable.
func (c *Compiler) compileAssignStatement(node *ast.AssignStatement) error {
	line := node.Token.Line

	if slot, ok := c.resolveLocal(node.Name.Value); ok && node.Type == nil {
		if err := c.compileExpression(node.Value); err != nil {
			return err
		}
		c.emit(OpStore, line)
		c.emitOperand(uint32(slot), line)
		return nil
	}

	// Bind before evaluating, as declarations always did: the new
	// binding shadows from here on, including inside its own
	// initializer.
	slot := c.bindLocal(node.Name.Value)
	if err := c.compileExpression(node.Value); err != nil {
		return err
	}
	c.emit(OpStore, line)
	c.emitOperand(uint32(slot), line)
	return nil
}

// compileForStatement translates the counted loop. The header binds
// nothing: the loop variable must already live in an enclosing scope.
// Each iteration compares variable <= limit (inclusive bound), runs the
// body, then adds a Float 1.0 and stores back; the increment is always
// floating point regardless of the variable's runtime kind, relying on
// the VM's numeric coercion.
func (c *Compiler) compileForStatement(node *ast.ForStatement) error {
	line := node.Token.Line

	slot, ok := c.resolveLocal(node.Ident.Value)
	if !ok {
		return c.errorf(diagnostics.ErrC001, node.Ident.Token,
			"variable %q is not defined", node.Ident.Value)
	}

	loopStart := c.chunk.Len()

	c.emit(OpLoad, line)
	c.emitOperand(uint32(slot), line)
	if err := c.compileExpression(node.Limit); err != nil {
		return err
	}
	c.emit(OpLe, line)
	exitJump := c.emitJump(OpJumpIfFalse, line)

	if err := c.compileBlock(node.Body); err != nil {
		return err
	}

	c.emit(OpLoad, line)
	c.emitOperand(uint32(slot), line)
	c.emitConstant(FloatVal(1.0), line)
	c.emit(OpAdd, line)
	c.emit(OpStore, line)
	c.emitOperand(uint32(slot), line)

	c.emitLoop(loopStart, line)
	c.patchJump(exitJump)
	return nil
}
