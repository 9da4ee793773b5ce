package parser

import (
	"github.com/linalang/lina/internal/ast"
	"github.com/linalang/lina/internal/token"
)

// ParseProgram parses the whole token stream into a Program.
func (p *Parser) ParseProgram() *ast.Program {
	program := &ast.Program{Block: &ast.Block{}}

	p.skipSeparators()
	for p.curToken.Type != token.EOF {
		stmt := p.parseStatement()
		if stmt == nil {
			// Fatal: the tree is not usable past the first syntax error.
			return program
		}
		program.Block.Statements = append(program.Block.Statements, stmt)
		p.nextToken()
		p.skipSeparators()
	}

	return program
}

// skipSeparators consumes statement separators (newlines, semicolons).
func (p *Parser) skipSeparators() {
	for p.curToken.Type == token.NEWLINE || p.curToken.Type == token.SEMICOLON {
		p.nextToken()
	}
}

func (p *Parser) parseStatement() ast.Statement {
	switch p.curToken.Type {
	case token.SE:
		return p.parseIfStatement()
	case token.ENQUANTO:
		return p.parseWhileStatement()
	case token.PARA:
		return p.parseForStatement()
	case token.IMPRIMA:
		return p.parsePrintStatement()
	case token.IDENT:
		// Only `x := e` and `x: tipo := e` are assignment statements;
		// anything else starting with an identifier is an expression.
		if p.peekToken.Type == token.ASSIGN || p.peekToken.Type == token.COLON {
			return p.parseAssignStatement()
		}
		return p.parseExpressionStatement()
	default:
		return p.parseExpressionStatement()
	}
}

func (p *Parser) parseAssignStatement() ast.Statement {
	stmt := &ast.AssignStatement{
		Token: p.curToken,
		Name:  &ast.Identifier{Token: p.curToken, Value: p.curToken.Lexeme},
	}

	if p.peekToken.Type == token.COLON {
		p.nextToken() // on ':'
		p.nextToken() // on the type name
		stmt.Type = p.parseTypeAnnotation()
		if stmt.Type == nil {
			return nil
		}
	}

	if !p.expectPeek(token.ASSIGN) {
		return nil
	}
	p.nextToken()

	stmt.Value = p.parseExpression(LOWEST)
	if stmt.Value == nil {
		return nil
	}
	return stmt
}

func (p *Parser) parseIfStatement() ast.Statement {
	stmt := &ast.IfStatement{Token: p.curToken}

	p.nextToken()
	stmt.Condition = p.parseExpression(LOWEST)
	if stmt.Condition == nil {
		return nil
	}

	if !p.expectPeek(token.FACA) {
		return nil
	}

	stmt.Body = p.parseBlock()
	if stmt.Body == nil {
		return nil
	}
	return stmt
}

func (p *Parser) parseWhileStatement() ast.Statement {
	stmt := &ast.WhileStatement{Token: p.curToken}

	p.nextToken()
	stmt.Condition = p.parseExpression(LOWEST)
	if stmt.Condition == nil {
		return nil
	}

	if !p.expectPeek(token.FACA) {
		return nil
	}

	stmt.Body = p.parseBlock()
	if stmt.Body == nil {
		return nil
	}
	return stmt
}

func (p *Parser) parseForStatement() ast.Statement {
	stmt := &ast.ForStatement{Token: p.curToken}

	if !p.expectPeek(token.IDENT) {
		return nil
	}
	stmt.Ident = &ast.Identifier{Token: p.curToken, Value: p.curToken.Lexeme}

	if !p.expectPeek(token.ATE) {
		return nil
	}
	p.nextToken()

	stmt.Limit = p.parseLimitLiteral()
	if stmt.Limit == nil {
		return nil
	}

	if !p.expectPeek(token.FACA) {
		return nil
	}

	stmt.Body = p.parseBlock()
	if stmt.Body == nil {
		return nil
	}
	return stmt
}

// parseLimitLiteral parses the counted loop's limit, which must be a
// literal (the header does not evaluate arbitrary expressions).
func (p *Parser) parseLimitLiteral() ast.Expression {
	switch p.curToken.Type {
	case token.INT:
		return p.parseIntegerLiteral()
	case token.FLOAT:
		return p.parseFloatLiteral()
	default:
		p.errorf(p.curToken, "expected a numeric limit after 'até', got %q", p.curToken.Lexeme)
		return nil
	}
}

func (p *Parser) parsePrintStatement() ast.Statement {
	stmt := &ast.PrintStatement{Token: p.curToken}

	p.nextToken()
	stmt.Value = p.parseExpression(LOWEST)
	if stmt.Value == nil {
		return nil
	}
	return stmt
}

func (p *Parser) parseExpressionStatement() ast.Statement {
	stmt := &ast.ExpressionStatement{Token: p.curToken}

	stmt.Value = p.parseExpression(LOWEST)
	if stmt.Value == nil {
		return nil
	}
	return stmt
}

// parseBlock parses statements up to the closing 'fim'. The current
// token is the block keyword ('faça'); it is consumed here.
func (p *Parser) parseBlock() *ast.Block {
	block := &ast.Block{}

	p.nextToken()
	p.skipSeparators()
	for p.curToken.Type != token.FIM {
		if p.curToken.Type == token.EOF {
			p.errorf(p.curToken, "unterminated block: expected 'fim'")
			return nil
		}
		stmt := p.parseStatement()
		if stmt == nil {
			return nil
		}
		block.Statements = append(block.Statements, stmt)
		p.nextToken()
		p.skipSeparators()
	}

	return block
}
