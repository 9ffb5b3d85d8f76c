package binder

import (
	"github.com/funvibe/minic/internal/ast"
	"github.com/funvibe/minic/internal/types"
)

func (b *Binder) bindExpression(expr ast.Expression, table *types.Table) {
	switch n := expr.(type) {
	case *ast.Identifier:
		// Identifiers carry no symbol of their own; the Checker resolves
		// them by name at check time (spec §4.4).

	case *ast.NumericLiteral, *ast.StringLiteral:
		// literals need no binding

	case *ast.Assignment:
		b.setParent(n.Name, n)
		b.setParent(n.Value, n)
		b.bindExpression(n.Value, table)
		// n.Name is deliberately left unbound to any declaration (spec §9
		// open question 5): it is resolved like a plain Identifier by the
		// Checker, not declared here.

	case *ast.Object:
		b.bindObject(n, table)

	case *ast.Function:
		b.bindFunction(n, table)

	case *ast.Call:
		b.setParent(n.Expression, n)
		b.bindExpression(n.Expression, table)
		for _, ta := range n.TypeArguments {
			b.setParent(ta, n)
			b.bindTypeNode(ta, table)
		}
		for _, arg := range n.Arguments {
			b.setParent(arg, n)
			b.bindExpression(arg, table)
		}

	default:
		diagFatalUnknownKind("expression", expr)
	}
}

// bindObject gives the object literal its own symbol (sentinel name,
// never inserted into any enclosing table) and declares each property
// into that symbol's fresh members table (spec §4.1, §4.5).
func (b *Binder) bindObject(n *ast.Object, table *types.Table) {
	sym := types.NewSymbol(objectLiteralName, n, types.Value)
	sym.Members = types.NewTable()
	n.Symbol = sym

	for _, prop := range n.Properties {
		b.setParent(prop, n)
		propSym := b.declareSymbol(sym.Members, prop, prop.Name.Text, types.Value)
		prop.Symbol = propSym
		b.setParent(prop.Name, prop)
		b.setParent(prop.Initializer, prop)
		b.bindExpression(prop.Initializer, table)
	}
}

// bindFunction declares type parameters and parameters into the
// function's own locals table, then binds the body against that table
// (spec §4.1 — "A Function's body statements are bound against the
// Function's locals").
func (b *Binder) bindFunction(n *ast.Function, table *types.Table) {
	n.Locals = types.NewTable()
	n.Symbol = &types.Symbol{Name: functionSymbolName(n)}
	n.Symbol.AddDeclaration(n, types.Value)

	for _, tp := range n.TypeParameters {
		sym := b.declareNamed(n.Locals, tp, tp.Name, types.TypeMeaning)
		tp.Symbol = sym
		b.setParent(tp, n)
		b.setParent(tp.Name, tp)
	}
	for _, param := range n.Parameters {
		sym := b.declareNamed(n.Locals, param, param.Name, types.Value)
		param.Symbol = sym
		b.setParent(param, n)
		b.setParent(param.Name, param)
		if param.TypeName != nil {
			b.setParent(param.TypeName, param)
			b.bindTypeNode(param.TypeName, n.Locals)
		}
	}
	if n.TypeName != nil {
		b.setParent(n.TypeName, n)
		b.bindTypeNode(n.TypeName, n.Locals)
	}
	for _, stmt := range n.Body {
		b.setParent(stmt, n)
		b.bindStatement(stmt, n.Locals)
	}
}

func functionSymbolName(n *ast.Function) string {
	if n.Name != nil {
		return n.Name.Text
	}
	return objectLiteralName
}
