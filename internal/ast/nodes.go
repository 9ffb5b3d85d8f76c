package ast

import (
	"github.com/funvibe/minic/internal/token"
	"github.com/funvibe/minic/internal/types"
)

// base is embedded by every concrete node to carry the parent back-
// reference the Binder fills in (spec §3 — "every node carries
// {kind, pos, parent}"). Parent is a weak, lookup-only reference: it
// never owns the node it points to (spec §9).
type base struct {
	parent Node
}

func (b *base) GetParent() Node  { return b.parent }
func (b *base) SetParent(p Node) { b.parent = p }

// declBase is embedded by every declaration node; Symbol is the
// back-pointer the Binder attaches (spec §3 — "declaration nodes
// additionally carry a symbol back-pointer").
type declBase struct {
	base
	Symbol *types.Symbol
}

// ---- Module ----

// Module is the root node (spec §3). Locals is the module-level scope
// table, populated by the Binder.
type Module struct {
	base
	Statements []Statement
	Locals     *types.Table
}

func (m *Module) TokenLiteral() string {
	if len(m.Statements) > 0 {
		return m.Statements[0].TokenLiteral()
	}
	return ""
}
func (m *Module) GetToken() token.Token {
	if len(m.Statements) > 0 {
		return m.Statements[0].GetToken()
	}
	return token.Token{}
}
func (m *Module) Accept(v Visitor) { v.VisitModule(m) }

// ---- Statements ----

// Var is `var name[: Type] = initializer`.
type Var struct {
	declBase
	Token       token.Token
	Name        *Identifier
	TypeName    TypeNode // optional
	Initializer Expression
}

func (n *Var) statementNode()        {}
func (n *Var) TokenLiteral() string  { return n.Token.Lexeme }
func (n *Var) GetToken() token.Token { return n.Token }
func (n *Var) Accept(v Visitor)      { v.VisitVar(n) }

// TypeAlias is `type name = typename`.
type TypeAlias struct {
	declBase
	Token    token.Token
	Name     *Identifier
	TypeName TypeNode
}

func (n *TypeAlias) statementNode()        {}
func (n *TypeAlias) TokenLiteral() string  { return n.Token.Lexeme }
func (n *TypeAlias) GetToken() token.Token { return n.Token }
func (n *TypeAlias) Accept(v Visitor)      { v.VisitTypeAlias(n) }

// ExpressionStatement wraps an expression used as a statement.
type ExpressionStatement struct {
	base
	Token      token.Token
	Expression Expression
}

func (n *ExpressionStatement) statementNode()        {}
func (n *ExpressionStatement) TokenLiteral() string  { return n.Token.Lexeme }
func (n *ExpressionStatement) GetToken() token.Token { return n.Token }
func (n *ExpressionStatement) Accept(v Visitor)      { v.VisitExpressionStatement(n) }

// Return is `return expression`.
type Return struct {
	base
	Token      token.Token
	Expression Expression
}

func (n *Return) statementNode()        {}
func (n *Return) TokenLiteral() string  { return n.Token.Lexeme }
func (n *Return) GetToken() token.Token { return n.Token }
func (n *Return) Accept(v Visitor)      { v.VisitReturn(n) }

// ---- Expressions ----

// Identifier is a name occurrence, either a value or type reference
// depending on position.
type Identifier struct {
	base
	Token token.Token
	Text  string
}

func (n *Identifier) expressionNode()      {}
func (n *Identifier) typeNode()            {}
func (n *Identifier) TokenLiteral() string { return n.Token.Lexeme }
func (n *Identifier) GetToken() token.Token { return n.Token }
func (n *Identifier) Accept(v Visitor)      { v.VisitIdentifier(n) }

// NumericLiteral is a decimal-digit literal.
type NumericLiteral struct {
	base
	Token token.Token
	Value float64
}

func (n *NumericLiteral) expressionNode()      {}
func (n *NumericLiteral) TokenLiteral() string { return n.Token.Lexeme }
func (n *NumericLiteral) GetToken() token.Token { return n.Token }
func (n *NumericLiteral) Accept(v Visitor)      { v.VisitNumericLiteral(n) }

// StringLiteral is a double-quoted string literal.
type StringLiteral struct {
	base
	Token token.Token
	Value string
}

func (n *StringLiteral) expressionNode()      {}
func (n *StringLiteral) TokenLiteral() string { return n.Token.Lexeme }
func (n *StringLiteral) GetToken() token.Token { return n.Token }
func (n *StringLiteral) Accept(v Visitor)      { v.VisitStringLiteral(n) }

// Assignment is `name = value`.
type Assignment struct {
	base
	Token token.Token
	Name  *Identifier
	Value Expression
}

func (n *Assignment) expressionNode()      {}
func (n *Assignment) TokenLiteral() string { return n.Token.Lexeme }
func (n *Assignment) GetToken() token.Token { return n.Token }
func (n *Assignment) Accept(v Visitor)      { v.VisitAssignment(n) }

// Object is an object literal `{ k: v, ... }`. Symbol.Members (set by the
// Binder) maps property name to the PropertyAssignment's symbol.
type Object struct {
	declBase
	Token      token.Token
	Properties []*PropertyAssignment
}

func (n *Object) expressionNode()      {}
func (n *Object) TokenLiteral() string { return n.Token.Lexeme }
func (n *Object) GetToken() token.Token { return n.Token }
func (n *Object) Accept(v Visitor)      { v.VisitObject(n) }

// PropertyAssignment is one `name: initializer` entry of an Object.
type PropertyAssignment struct {
	declBase
	Token       token.Token
	Name        *Identifier
	Initializer Expression
}

func (n *PropertyAssignment) TokenLiteral() string { return n.Token.Lexeme }
func (n *PropertyAssignment) GetToken() token.Token { return n.Token }
func (n *PropertyAssignment) Accept(v Visitor)      { v.VisitPropertyAssignment(n) }

// Function is a function expression/declaration.
type Function struct {
	declBase
	Token          token.Token
	Name           *Identifier // optional
	TypeParameters []*TypeParameter
	Parameters     []*Parameter
	TypeName       TypeNode // optional declared return type
	Body           []Statement
	Locals         *types.Table
}

func (n *Function) expressionNode()      {}
func (n *Function) TokenLiteral() string { return n.Token.Lexeme }
func (n *Function) GetToken() token.Token { return n.Token }
func (n *Function) Accept(v Visitor)      { v.VisitFunction(n) }

// Parameter is one function parameter.
type Parameter struct {
	declBase
	Token    token.Token
	Name     *Identifier
	TypeName TypeNode // optional
}

func (n *Parameter) TokenLiteral() string  { return n.Token.Lexeme }
func (n *Parameter) GetToken() token.Token { return n.Token }
func (n *Parameter) Accept(v Visitor)      { v.VisitParameter(n) }

// TypeParameter is one `<T>` generic parameter.
type TypeParameter struct {
	declBase
	Token token.Token
	Name  *Identifier
}

func (n *TypeParameter) TokenLiteral() string  { return n.Token.Lexeme }
func (n *TypeParameter) GetToken() token.Token { return n.Token }
func (n *TypeParameter) Accept(v Visitor)      { v.VisitTypeParameter(n) }

// Call is `expression<typeArguments>(arguments)`.
type Call struct {
	base
	Token         token.Token
	Expression    Expression
	TypeArguments []TypeNode // optional, explicit type arguments
	Arguments     []Expression
}

func (n *Call) expressionNode()      {}
func (n *Call) TokenLiteral() string { return n.Token.Lexeme }
func (n *Call) GetToken() token.Token { return n.Token }
func (n *Call) Accept(v Visitor)      { v.VisitCall(n) }

// ---- Type nodes ----

// ObjectLiteralType is `{ name: Type, ... }` in type position.
type ObjectLiteralType struct {
	declBase
	Token      token.Token
	Properties []*PropertyDeclaration
}

func (n *ObjectLiteralType) typeNode()            {}
func (n *ObjectLiteralType) TokenLiteral() string { return n.Token.Lexeme }
func (n *ObjectLiteralType) GetToken() token.Token { return n.Token }
func (n *ObjectLiteralType) Accept(v Visitor)      { v.VisitObjectLiteralType(n) }

// PropertyDeclaration is one `name[: Type]` entry of an ObjectLiteralType.
type PropertyDeclaration struct {
	declBase
	Token    token.Token
	Name     *Identifier
	TypeName TypeNode // optional; absent means any
}

func (n *PropertyDeclaration) TokenLiteral() string  { return n.Token.Lexeme }
func (n *PropertyDeclaration) GetToken() token.Token { return n.Token }
func (n *PropertyDeclaration) Accept(v Visitor)      { v.VisitPropertyDeclaration(n) }

// Signature is a function type node: `<T>(p1: T1, ...) => R`.
type Signature struct {
	declBase
	Token          token.Token
	TypeParameters []*TypeParameter // optional
	Parameters     []*Parameter
	TypeName       TypeNode
	Locals         *types.Table
}

func (n *Signature) typeNode()            {}
func (n *Signature) TokenLiteral() string { return n.Token.Lexeme }
func (n *Signature) GetToken() token.Token { return n.Token }
func (n *Signature) Accept(v Visitor)      { v.VisitSignature(n) }
