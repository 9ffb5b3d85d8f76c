// Package parser implements the Parser external collaborator (spec §6):
// it consumes the token cursor the Scanner produced and yields the AST
// core operates on, leaving parent/symbol/table fields unset for the
// Binder to fill in.
//
// Call shape (parser.New(ctx.TokenStream, ctx), p.ParseProgram()) is
// grounded on the teacher's internal/analyzer/strict_mode_test.go
// analyzeSource helper.
package parser

import (
	"strconv"

	"github.com/funvibe/minic/internal/ast"
	"github.com/funvibe/minic/internal/diagnostics"
	"github.com/funvibe/minic/internal/pipeline"
	"github.com/funvibe/minic/internal/token"
)

// Parser is a hand-written recursive-descent parser over a fixed token
// stream (no re-lexing, no backtracking beyond one token of lookahead).
type Parser struct {
	tokens []token.Token
	pos    int
	ctx    *pipeline.PipelineContext
}

// New builds a Parser over tokens, recording diagnostics into ctx.Sink.
func New(tokens []token.Token, ctx *pipeline.PipelineContext) *Parser {
	return &Parser{tokens: tokens, ctx: ctx}
}

func (p *Parser) cur() token.Token {
	if p.pos >= len(p.tokens) {
		return token.Token{Type: token.EOF}
	}
	return p.tokens[p.pos]
}

func (p *Parser) peek() token.Token {
	if p.pos+1 >= len(p.tokens) {
		return token.Token{Type: token.EOF}
	}
	return p.tokens[p.pos+1]
}

func (p *Parser) advance() token.Token {
	t := p.cur()
	if p.pos < len(p.tokens) {
		p.pos++
	}
	return t
}

func (p *Parser) at(t token.Type) bool { return p.cur().Type == t }

const errParse diagnostics.ErrorCode = "E_PARSE"

func (p *Parser) errorf(format string, args ...any) {
	p.ctx.Sink.Report(diagnostics.Newf(errParse, p.cur(), format, args...))
}

// expect consumes a token of type t. If the current token doesn't match,
// it records a diagnostic and returns the current token without consuming
// it.
func (p *Parser) expect(t token.Type, what string) token.Token {
	if p.at(t) {
		return p.advance()
	}
	p.errorf("expected %s, got %q", what, p.cur().Lexeme)
	return p.cur()
}

// ParseProgram parses the whole token stream into a Module.
func (p *Parser) ParseProgram() *ast.Module {
	mod := &ast.Module{}
	for !p.at(token.EOF) {
		stmt := p.parseStatement()
		if stmt != nil {
			mod.Statements = append(mod.Statements, stmt)
		} else {
			// avoid infinite loop on unparseable tokens
			p.advance()
		}
	}
	return mod
}

func (p *Parser) parseStatement() ast.Statement {
	switch p.cur().Type {
	case token.VAR:
		return p.parseVar()
	case token.TYPE:
		return p.parseTypeAlias()
	case token.RETURN:
		return p.parseReturn()
	default:
		return p.parseExpressionStatement()
	}
}

func (p *Parser) parseVar() *ast.Var {
	tok := p.advance() // 'var'
	name := p.parseIdentifier()
	v := &ast.Var{Token: tok, Name: name}
	if p.at(token.COLON) {
		p.advance()
		v.TypeName = p.parseTypeNode()
	}
	p.expect(token.ASSIGN, "'='")
	v.Initializer = p.parseExpression()
	p.consumeSemicolon()
	return v
}

func (p *Parser) parseTypeAlias() *ast.TypeAlias {
	tok := p.advance() // 'type'
	name := p.parseIdentifier()
	ta := &ast.TypeAlias{Token: tok, Name: name}
	p.expect(token.ASSIGN, "'='")
	ta.TypeName = p.parseTypeNode()
	p.consumeSemicolon()
	return ta
}

func (p *Parser) parseReturn() *ast.Return {
	tok := p.advance() // 'return'
	r := &ast.Return{Token: tok}
	if !p.at(token.SEMICOLON) && !p.at(token.RBRACE) && !p.at(token.EOF) {
		r.Expression = p.parseExpression()
	}
	p.consumeSemicolon()
	return r
}

func (p *Parser) parseExpressionStatement() *ast.ExpressionStatement {
	tok := p.cur()
	expr := p.parseExpression()
	p.consumeSemicolon()
	return &ast.ExpressionStatement{Token: tok, Expression: expr}
}

func (p *Parser) consumeSemicolon() {
	if p.at(token.SEMICOLON) {
		p.advance()
	}
}

func (p *Parser) parseIdentifier() *ast.Identifier {
	tok := p.expect(token.IDENT, "identifier")
	return &ast.Identifier{Token: tok, Text: tok.Lexeme}
}

// ---- Expressions ----

func (p *Parser) parseExpression() ast.Expression {
	return p.parseAssignment()
}

func (p *Parser) parseAssignment() ast.Expression {
	if p.at(token.IDENT) && p.peek().Type == token.ASSIGN {
		name := p.parseIdentifier()
		tok := p.advance() // '='
		value := p.parseAssignment()
		return &ast.Assignment{Token: tok, Name: name, Value: value}
	}
	return p.parseCall()
}

func (p *Parser) parseCall() ast.Expression {
	expr := p.parsePrimary()
	for {
		if p.at(token.LT) {
			callTok := p.cur()
			typeArgs := p.parseTypeArgumentList()
			p.expect(token.LPAREN, "'('")
			args := p.parseArgumentList()
			expr = &ast.Call{Token: callTok, Expression: expr, TypeArguments: typeArgs, Arguments: args}
			continue
		}
		if p.at(token.LPAREN) {
			callTok := p.cur()
			p.advance()
			args := p.parseArgumentList()
			expr = &ast.Call{Token: callTok, Expression: expr, Arguments: args}
			continue
		}
		break
	}
	return expr
}

func (p *Parser) parseTypeArgumentList() []ast.TypeNode {
	p.expect(token.LT, "'<'")
	var args []ast.TypeNode
	if !p.at(token.GT) {
		args = append(args, p.parseTypeNode())
		for p.at(token.COMMA) {
			p.advance()
			args = append(args, p.parseTypeNode())
		}
	}
	p.expect(token.GT, "'>'")
	return args
}

func (p *Parser) parseArgumentList() []ast.Expression {
	var args []ast.Expression
	if !p.at(token.RPAREN) {
		args = append(args, p.parseExpression())
		for p.at(token.COMMA) {
			p.advance()
			args = append(args, p.parseExpression())
		}
	}
	p.expect(token.RPAREN, "')'")
	return args
}

func (p *Parser) parsePrimary() ast.Expression {
	switch p.cur().Type {
	case token.IDENT:
		return p.parseIdentifier()
	case token.NUMBER:
		tok := p.advance()
		v, _ := strconv.ParseFloat(tok.Lexeme, 64)
		return &ast.NumericLiteral{Token: tok, Value: v}
	case token.STRING:
		tok := p.advance()
		return &ast.StringLiteral{Token: tok, Value: tok.Lexeme}
	case token.LBRACE:
		return p.parseObjectLiteral()
	case token.FUNCTION:
		return p.parseFunction()
	case token.LPAREN:
		p.advance()
		expr := p.parseExpression()
		p.expect(token.RPAREN, "')'")
		return expr
	default:
		p.errorf("unexpected token %q in expression", p.cur().Lexeme)
		tok := p.advance()
		return &ast.Identifier{Token: tok, Text: tok.Lexeme}
	}
}

func (p *Parser) parseObjectLiteral() *ast.Object {
	tok := p.advance() // '{'
	obj := &ast.Object{Token: tok}
	for !p.at(token.RBRACE) && !p.at(token.EOF) {
		name := p.parseIdentifier()
		p.expect(token.COLON, "':'")
		value := p.parseExpression()
		obj.Properties = append(obj.Properties, &ast.PropertyAssignment{Token: name.Token, Name: name, Initializer: value})
		if p.at(token.COMMA) {
			p.advance()
		} else {
			break
		}
	}
	p.expect(token.RBRACE, "'}'")
	return obj
}

func (p *Parser) parseFunction() *ast.Function {
	tok := p.advance() // 'function'
	fn := &ast.Function{Token: tok}
	if p.at(token.IDENT) {
		fn.Name = p.parseIdentifier()
	}
	if p.at(token.LT) {
		fn.TypeParameters = p.parseTypeParameterList()
	}
	p.expect(token.LPAREN, "'('")
	fn.Parameters = p.parseParameterList()
	if p.at(token.COLON) {
		p.advance()
		fn.TypeName = p.parseTypeNode()
	}
	p.expect(token.LBRACE, "'{'")
	for !p.at(token.RBRACE) && !p.at(token.EOF) {
		fn.Body = append(fn.Body, p.parseStatement())
	}
	p.expect(token.RBRACE, "'}'")
	return fn
}

func (p *Parser) parseTypeParameterList() []*ast.TypeParameter {
	p.expect(token.LT, "'<'")
	var params []*ast.TypeParameter
	if !p.at(token.GT) {
		params = append(params, p.parseTypeParameter())
		for p.at(token.COMMA) {
			p.advance()
			params = append(params, p.parseTypeParameter())
		}
	}
	p.expect(token.GT, "'>'")
	return params
}

func (p *Parser) parseTypeParameter() *ast.TypeParameter {
	name := p.parseIdentifier()
	return &ast.TypeParameter{Token: name.Token, Name: name}
}

func (p *Parser) parseParameterList() []*ast.Parameter {
	var params []*ast.Parameter
	if !p.at(token.RPAREN) {
		params = append(params, p.parseParameter())
		for p.at(token.COMMA) {
			p.advance()
			params = append(params, p.parseParameter())
		}
	}
	p.expect(token.RPAREN, "')'")
	return params
}

func (p *Parser) parseParameter() *ast.Parameter {
	name := p.parseIdentifier()
	param := &ast.Parameter{Token: name.Token, Name: name}
	if p.at(token.COLON) {
		p.advance()
		param.TypeName = p.parseTypeNode()
	}
	return param
}

// ---- Type nodes ----

func (p *Parser) parseTypeNode() ast.TypeNode {
	switch p.cur().Type {
	case token.LBRACE:
		return p.parseObjectLiteralType()
	case token.LT, token.LPAREN:
		return p.parseSignatureType()
	case token.IDENT:
		return p.parseIdentifier()
	default:
		p.errorf("unexpected token %q in type", p.cur().Lexeme)
		tok := p.advance()
		return &ast.Identifier{Token: tok, Text: tok.Lexeme}
	}
}

func (p *Parser) parseObjectLiteralType() *ast.ObjectLiteralType {
	tok := p.advance() // '{'
	olt := &ast.ObjectLiteralType{Token: tok}
	for !p.at(token.RBRACE) && !p.at(token.EOF) {
		name := p.parseIdentifier()
		pd := &ast.PropertyDeclaration{Token: name.Token, Name: name}
		if p.at(token.COLON) {
			p.advance()
			pd.TypeName = p.parseTypeNode()
		}
		olt.Properties = append(olt.Properties, pd)
		if p.at(token.COMMA) {
			p.advance()
		} else {
			break
		}
	}
	p.expect(token.RBRACE, "'}'")
	return olt
}

func (p *Parser) parseSignatureType() *ast.Signature {
	tok := p.cur()
	sig := &ast.Signature{Token: tok}
	if p.at(token.LT) {
		sig.TypeParameters = p.parseTypeParameterList()
	}
	p.expect(token.LPAREN, "'('")
	sig.Parameters = p.parseParameterList()
	p.expect(token.FAT_ARROW, "'=>'")
	sig.TypeName = p.parseTypeNode()
	return sig
}
