package checker

import (
	"github.com/funvibe/minic/internal/ast"
	"github.com/funvibe/minic/internal/diagnostics"
	"github.com/funvibe/minic/internal/types"
)

func (c *Checker) checkType(t ast.TypeNode) types.Type {
	switch n := t.(type) {
	case *ast.Identifier:
		switch n.Text {
		case "string":
			return c.stringType
		case "number":
			return c.numberType
		}
		sym, ok := c.resolve(n, n.Text, types.TypeMeaning)
		if !ok {
			c.sink.ReportAt(n, diagnostics.ErrUnresolvedType, "Could not resolve type %s", n.Text)
			return c.errorType
		}
		return c.getTypeTypeOfSymbol(sym)

	case *ast.ObjectLiteralType:
		return c.checkObjectLiteralType(n)

	case *ast.Signature:
		return c.getTypeTypeOfSymbol(n.Symbol)

	default:
		diagnostics.Fatalf("checker: unknown type node kind %T", t)
		panic("unreachable")
	}
}

// checkObjectLiteralType mirrors checkObject for type position, memoising
// its result on the node's own symbol so repeat references to the same
// literal type (e.g. via a TypeAlias) share one Object type id (spec
// §4.5).
func (c *Checker) checkObjectLiteralType(olt *ast.ObjectLiteralType) types.Type {
	if olt.Symbol.TypeType != nil {
		return olt.Symbol.TypeType
	}
	members := types.NewTable()
	for _, prop := range olt.Properties {
		sym, ok := c.resolve(prop, prop.Name.Text, types.Value)
		if !ok {
			diagnostics.Fatalf("checker: property declaration %q missing its binder-placed symbol", prop.Name.Text)
		}
		members.Set(prop.Name.Text, sym)
		c.checkPropertyDeclaration(prop)
	}
	result := types.Object{ID: c.ids.Next(), Members: members}
	olt.Symbol.TypeType = result
	return result
}

func (c *Checker) checkPropertyDeclaration(decl *ast.PropertyDeclaration) types.Type {
	if decl.TypeName != nil {
		return c.checkType(decl.TypeName)
	}
	return c.anyType
}
