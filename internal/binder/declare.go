package binder

import (
	"github.com/funvibe/minic/internal/ast"
	"github.com/funvibe/minic/internal/diagnostics"
	"github.com/funvibe/minic/internal/types"
)

// objectLiteralName is the sentinel name object literals are declared
// under within their own scope bookkeeping (spec §4.1 — "the sentinel
// `__object` for object literals"). Object literals don't otherwise need
// a table entry of their own; this sentinel exists only so declareSymbol
// has a uniform name/meaning contract across every declaration kind.
const objectLiteralName = "__object"

// declareSymbol implements spec §4.1's declareSymbol(container,
// declaration, meaning) contract.
func (b *Binder) declareSymbol(container *types.Table, decl types.Decl, name string, meaning types.Meaning) *types.Symbol {
	if existing, ok := container.Get(name); ok {
		if conflict, hasConflict := existing.FirstConflict(meaning); hasConflict {
			b.sink.Report(diagnostics.Newf(
				diagnostics.ErrRedeclare,
				decl.GetToken(),
				"Cannot redeclare %s; first declared at %d",
				name, conflict.GetToken().Pos,
			))
			return existing
		}
		existing.AddDeclaration(decl, meaning)
		return existing
	}
	sym := types.NewSymbol(name, decl, meaning)
	container.Set(name, sym)
	return sym
}

// declareNamed is declareSymbol for a node whose name comes from an
// *ast.Identifier, the common case for every declaration kind except
// object literals.
func (b *Binder) declareNamed(container *types.Table, decl types.Decl, name *ast.Identifier, meaning types.Meaning) *types.Symbol {
	if name == nil {
		return b.declareSymbol(container, decl, objectLiteralName, meaning)
	}
	return b.declareSymbol(container, decl, name.Text, meaning)
}
