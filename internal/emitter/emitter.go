// Package emitter implements the Emitter downstream collaborator (spec
// §6): it renders a transformed (annotation-free) statement list back
// to source text under the exact format rules the spec fixes.
//
// The renderer is a Visitor (ast.Visitor) accumulating output into a
// buffer through a small write helper, rather than building strings
// bottom-up — the same shape as the teacher's
// internal/prettyprinter.CodePrinter, which is itself a buffer-based
// Visitor walking the AST by node kind via node.Accept(p). Unlike
// CodePrinter, this Emitter has no operator precedence or line-width
// concerns to track, since spec §6 fixes one flat rendering per node
// kind.
package emitter

import (
	"bytes"
	"strconv"

	"github.com/funvibe/minic/internal/ast"
	"github.com/funvibe/minic/internal/diagnostics"
)

// emitter walks a transformed tree once, writing source text as it goes.
type emitter struct {
	buf bytes.Buffer
}

var _ ast.Visitor = (*emitter)(nil)

func (e *emitter) write(s string) { e.buf.WriteString(s) }

func (e *emitter) String() string { return e.buf.String() }

// statements renders stmts, each separated by ";\n" (spec §6).
func (e *emitter) statements(stmts []ast.Statement) {
	for i, stmt := range stmts {
		if i > 0 {
			e.write(";\n")
		}
		stmt.Accept(e)
	}
}

// Emit renders stmts, each statement separated by ";\n" (spec §6).
func Emit(stmts []ast.Statement) string {
	e := &emitter{}
	e.statements(stmts)
	return e.String()
}

func (e *emitter) VisitModule(n *ast.Module) { e.statements(n.Statements) }

func (e *emitter) VisitVar(n *ast.Var) {
	e.write("var ")
	e.write(n.Name.Text)
	e.write(" = ")
	n.Initializer.Accept(e)
}

func (e *emitter) VisitTypeAlias(n *ast.TypeAlias) {
	diagnostics.Fatalf("emitter: TypeAlias reached Emitter; Transform should have dropped it")
}

func (e *emitter) VisitExpressionStatement(n *ast.ExpressionStatement) {
	n.Expression.Accept(e)
}

func (e *emitter) VisitReturn(n *ast.Return) {
	e.write("return")
	if n.Expression != nil {
		e.write(" ")
		n.Expression.Accept(e)
	}
}

func (e *emitter) VisitIdentifier(n *ast.Identifier) { e.write(n.Text) }

func (e *emitter) VisitNumericLiteral(n *ast.NumericLiteral) {
	e.write(strconv.FormatFloat(n.Value, 'f', -1, 64))
}

func (e *emitter) VisitStringLiteral(n *ast.StringLiteral) {
	e.write(`"` + n.Value + `"`)
}

func (e *emitter) VisitAssignment(n *ast.Assignment) {
	e.write(n.Name.Text)
	e.write(" = ")
	n.Value.Accept(e)
}

func (e *emitter) VisitObject(n *ast.Object) {
	e.write("{ ")
	for i, prop := range n.Properties {
		if i > 0 {
			e.write(", ")
		}
		prop.Accept(e)
	}
	e.write(" }")
}

func (e *emitter) VisitPropertyAssignment(n *ast.PropertyAssignment) {
	e.write(n.Name.Text)
	e.write(": ")
	n.Initializer.Accept(e)
}

func (e *emitter) VisitFunction(n *ast.Function) {
	e.write("function ")
	if n.Name != nil {
		e.write(n.Name.Text)
	}
	e.write("(")
	for i, p := range n.Parameters {
		if i > 0 {
			e.write(", ")
		}
		p.Accept(e)
	}
	e.write(") { ")
	e.statements(n.Body)
	e.write(" }")
}

func (e *emitter) VisitParameter(n *ast.Parameter) { e.write(n.Name.Text) }

func (e *emitter) VisitTypeParameter(n *ast.TypeParameter) {
	diagnostics.Fatalf("emitter: TypeParameter reached Emitter; Transform should have dropped it")
}

func (e *emitter) VisitCall(n *ast.Call) {
	n.Expression.Accept(e)
	e.write("(")
	for i, arg := range n.Arguments {
		if i > 0 {
			e.write(", ")
		}
		arg.Accept(e)
	}
	e.write(")")
}

func (e *emitter) VisitObjectLiteralType(n *ast.ObjectLiteralType) {
	diagnostics.Fatalf("emitter: ObjectLiteralType reached Emitter; Transform should have dropped it")
}

func (e *emitter) VisitPropertyDeclaration(n *ast.PropertyDeclaration) {
	diagnostics.Fatalf("emitter: PropertyDeclaration reached Emitter; Transform should have dropped it")
}

func (e *emitter) VisitSignature(n *ast.Signature) {
	diagnostics.Fatalf("emitter: Signature reached Emitter; Transform should have dropped it")
}
