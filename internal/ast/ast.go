// Package ast defines the immutable tree produced by the Parser and
// augmented post-hoc by the Binder with parent back-references and symbol
// attachments.
package ast

import "github.com/funvibe/minic/internal/token"

// Node is the base interface implemented by every AST node.
type Node interface {
	TokenLiteral() string
	GetToken() token.Token
	Accept(v Visitor)
	GetParent() Node
	SetParent(Node)
}

// Statement is a Node that appears in a statement position.
type Statement interface {
	Node
	statementNode()
}

// Expression is a Node that appears in an expression position.
type Expression interface {
	Node
	expressionNode()
}

// TypeNode is a Node that appears in a type-annotation position.
type TypeNode interface {
	Node
	typeNode()
}

// Visitor is implemented by consumers that walk the tree by kind, the same
// double-dispatch shape the teacher's ast package uses (Accept(v Visitor)
// calling back into a Visit* method per node kind). internal/emitter is
// the one consumer in this tree that walks every node kind to produce
// output, the same shape as the teacher's
// internal/prettyprinter.CodePrinter; the Binder and Checker dispatch by
// type switch instead, since they only ever need to branch on a handful
// of kinds at a time rather than render the whole tree.
type Visitor interface {
	VisitModule(n *Module)
	VisitVar(n *Var)
	VisitTypeAlias(n *TypeAlias)
	VisitExpressionStatement(n *ExpressionStatement)
	VisitReturn(n *Return)
	VisitIdentifier(n *Identifier)
	VisitNumericLiteral(n *NumericLiteral)
	VisitStringLiteral(n *StringLiteral)
	VisitAssignment(n *Assignment)
	VisitObject(n *Object)
	VisitPropertyAssignment(n *PropertyAssignment)
	VisitFunction(n *Function)
	VisitParameter(n *Parameter)
	VisitTypeParameter(n *TypeParameter)
	VisitCall(n *Call)
	VisitObjectLiteralType(n *ObjectLiteralType)
	VisitPropertyDeclaration(n *PropertyDeclaration)
	VisitSignature(n *Signature)
}
