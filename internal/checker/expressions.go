package checker

import (
	"github.com/funvibe/minic/internal/ast"
	"github.com/funvibe/minic/internal/diagnostics"
	"github.com/funvibe/minic/internal/types"
)

func (c *Checker) checkExpression(expr ast.Expression) types.Type {
	switch n := expr.(type) {
	case *ast.Identifier:
		sym, ok := c.resolve(n, n.Text, types.Value)
		if !ok {
			c.sink.ReportAt(n, diagnostics.ErrUnresolvedValue, "Could not resolve %s", n.Text)
			return c.errorType
		}
		return c.getValueTypeOfSymbol(sym)

	case *ast.NumericLiteral:
		return c.numberType

	case *ast.StringLiteral:
		return c.stringType

	case *ast.Object:
		return c.checkObject(n)

	case *ast.Assignment:
		v := c.checkExpression(n.Value)
		t := c.checkExpression(n.Name)
		if !c.isAssignableTo(v, t) {
			c.sink.ReportAt(n.Name, diagnostics.ErrAssign,
				"Cannot assign value of type '%s' to variable of type '%s'.",
				c.typeToString(v), c.typeToString(t))
		}
		return t

	case *ast.Function:
		return c.getValueTypeOfSymbol(n.Symbol)

	case *ast.Call:
		return c.checkCall(n)

	default:
		diagnostics.Fatalf("checker: unknown expression kind %T", expr)
		panic("unreachable")
	}
}

// checkObject builds a fresh members table from the symbols the Binder
// already placed on the object's own scope, recursively checks every
// property initializer, and returns a freshly-id'd Object type — object
// types are never cached, so two syntactically identical literals
// produce distinct type identities (spec §4.5).
func (c *Checker) checkObject(obj *ast.Object) types.Type {
	members := types.NewTable()
	for _, prop := range obj.Properties {
		sym, ok := c.resolve(prop, prop.Name.Text, types.Value)
		if !ok {
			diagnostics.Fatalf("checker: property %q missing its binder-placed symbol", prop.Name.Text)
		}
		members.Set(prop.Name.Text, sym)
		c.checkExpression(prop.Initializer)
	}
	return types.Object{ID: c.ids.Next(), Members: members}
}
