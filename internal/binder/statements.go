package binder

import (
	"github.com/funvibe/minic/internal/ast"
	"github.com/funvibe/minic/internal/types"
)

func (b *Binder) bindStatement(stmt ast.Statement, table *types.Table) {
	switch n := stmt.(type) {
	case *ast.Var:
		sym := b.declareNamed(table, n, n.Name, types.Value)
		n.Symbol = sym
		b.setParent(n.Name, n)
		if n.TypeName != nil {
			b.setParent(n.TypeName, n)
			b.bindTypeNode(n.TypeName, table)
		}
		b.setParent(n.Initializer, n)
		b.bindExpression(n.Initializer, table)

	case *ast.TypeAlias:
		sym := b.declareNamed(table, n, n.Name, types.TypeMeaning)
		n.Symbol = sym
		b.setParent(n.Name, n)
		b.setParent(n.TypeName, n)
		b.bindTypeNode(n.TypeName, table)

	case *ast.ExpressionStatement:
		b.setParent(n.Expression, n)
		b.bindExpression(n.Expression, table)

	case *ast.Return:
		if n.Expression != nil {
			b.setParent(n.Expression, n)
			b.bindExpression(n.Expression, table)
		}

	default:
		diagFatalUnknownKind("statement", stmt)
	}
}
