// Package checker implements the on-demand, memoised type checker (spec
// §4.2-§4.12): canonical primitive types, name resolution, statement/
// expression dispatch, call checking, generic instantiation and
// inference, and structural assignability.
//
// The dispatch-by-type-switch shape and the sink-reporting convention
// are grounded on the teacher's internal/analyzer package (funvibe/funxy),
// which drives its semantic pass the same way: a small set of top-level
// Check* entry points, each type-switching on the AST node it was handed
// and reporting into a shared diagnostics sink rather than returning
// errors up the call stack.
package checker

import (
	"github.com/funvibe/minic/internal/ast"
	"github.com/funvibe/minic/internal/diagnostics"
	"github.com/funvibe/minic/internal/types"
)

// Checker holds everything one compile unit's type-checking pass needs:
// the canonical primitives, the id/type-variable allocators, the shared
// diagnostics sink, and the reentrancy guards that stand in for a
// per-symbol "in progress" marker (spec §9 design note — kept off Symbol
// itself and tracked here instead, so Symbol stays a plain data record).
type Checker struct {
	sink *diagnostics.Sink
	ids  *types.IDAllocator
	tv   *types.TypeVarAllocator

	stringType types.Type
	numberType types.Type
	errorType  types.Type
	anyType    types.Type

	valueInProgress map[*types.Symbol]bool
	typeInProgress  map[*types.Symbol]bool
}

// New returns a Checker with the four canonical primitives pre-allocated
// (spec §4.2), reporting into sink.
func New(sink *diagnostics.Sink) *Checker {
	ids := types.NewIDAllocator()
	c := &Checker{
		sink:            sink,
		ids:             ids,
		tv:              types.NewTypeVarAllocator(ids),
		valueInProgress: make(map[*types.Symbol]bool),
		typeInProgress:  make(map[*types.Symbol]bool),
	}
	c.stringType = types.Primitive{ID: ids.Next(), Name: "string"}
	c.numberType = types.Primitive{ID: ids.Next(), Name: "number"}
	c.errorType = types.Primitive{ID: ids.Next(), Name: "error"}
	c.anyType = types.Primitive{ID: ids.Next(), Name: "any"}
	return c
}

// Check type-checks module's top-level statements left to right and
// returns their types in source order (spec §6 — the `check(module)`
// entry point).
func (c *Checker) Check(module *ast.Module) []types.Type {
	result := make([]types.Type, len(module.Statements))
	for i, stmt := range module.Statements {
		result[i] = c.checkStatement(stmt)
	}
	return result
}

func (c *Checker) checkStatement(stmt ast.Statement) types.Type {
	switch n := stmt.(type) {
	case *ast.ExpressionStatement:
		return c.checkExpression(n.Expression)

	case *ast.Var:
		i := c.checkExpression(n.Initializer)
		if n.TypeName == nil {
			return i
		}
		t := c.checkType(n.TypeName)
		if !c.isAssignableTo(i, t) {
			c.sink.ReportAt(n.Initializer, diagnostics.ErrAssignInit,
				"Cannot assign initialiser of type '%s' to variable with declared type '%s'.",
				c.typeToString(i), c.typeToString(t))
		}
		return t

	case *ast.TypeAlias:
		return c.checkType(n.TypeName)

	case *ast.Return:
		if n.Expression == nil {
			return c.anyType
		}
		return c.checkExpression(n.Expression)

	default:
		diagnostics.Fatalf("checker: unknown statement kind %T", stmt)
		panic("unreachable")
	}
}

// resolve walks parent links outward from location, consulting each
// scope-owning node's table, and returns the first symbol declared
// under name with a declaration of the requested meaning (spec §4.3).
func (c *Checker) resolve(location ast.Node, name string, meaning types.Meaning) (*types.Symbol, bool) {
	for node := location; node != nil; node = node.GetParent() {
		table := scopeTableOf(node)
		if table == nil {
			continue
		}
		if sym, ok := table.Get(name); ok && sym.HasMeaning(meaning) {
			return sym, true
		}
	}
	return nil, false
}

// scopeTableOf returns the table a scope-owning node exposes to
// resolve(), or nil if node does not own a scope. Object and
// ObjectLiteralType own their members table on their own symbol rather
// than a Locals field, matching how the Binder attaches it (spec §3,
// §4.5).
func scopeTableOf(node ast.Node) *types.Table {
	switch n := node.(type) {
	case *ast.Module:
		return n.Locals
	case *ast.Function:
		return n.Locals
	case *ast.Signature:
		return n.Locals
	case *ast.Object:
		if n.Symbol != nil {
			return n.Symbol.Members
		}
	case *ast.ObjectLiteralType:
		if n.Symbol != nil {
			return n.Symbol.Members
		}
	}
	return nil
}
