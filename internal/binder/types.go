package binder

import (
	"github.com/funvibe/minic/internal/ast"
	"github.com/funvibe/minic/internal/types"
)

// signatureLiteralName is the sentinel name Signature type nodes use in
// place of objectLiteralName, kept distinct so a diagnostic referencing
// a symbol's synthetic name can tell which anonymous kind produced it.
const signatureLiteralName = "__signature"

func (b *Binder) bindTypeNode(t ast.TypeNode, table *types.Table) {
	switch n := t.(type) {
	case *ast.Identifier:
		// resolved by name at check time, same as a value Identifier.

	case *ast.ObjectLiteralType:
		b.bindObjectLiteralType(n, table)

	case *ast.Signature:
		b.bindSignature(n, table)

	default:
		diagFatalUnknownKind("type node", t)
	}
}

// bindObjectLiteralType mirrors bindObject: a fresh anonymous symbol
// owns a members table that each PropertyDeclaration is declared into
// (spec §4.5).
func (b *Binder) bindObjectLiteralType(n *ast.ObjectLiteralType, table *types.Table) {
	sym := types.NewSymbol(objectLiteralName, n, types.TypeMeaning)
	sym.Members = types.NewTable()
	n.Symbol = sym

	for _, prop := range n.Properties {
		b.setParent(prop, n)
		propSym := b.declareSymbol(sym.Members, prop, prop.Name.Text, types.Value)
		prop.Symbol = propSym
		b.setParent(prop.Name, prop)
		if prop.TypeName != nil {
			b.setParent(prop.TypeName, prop)
			b.bindTypeNode(prop.TypeName, table)
		}
	}
}

// bindSignature declares the signature's own type parameters and
// parameters into its own locals table (spec §4.1, §4.8 — a Signature
// type node needs a Locals table of its own so its parameters can be
// instantiated independent of any enclosing Function).
func (b *Binder) bindSignature(n *ast.Signature, table *types.Table) {
	n.Locals = types.NewTable()
	sym := types.NewSymbol(signatureLiteralName, n, types.TypeMeaning)
	n.Symbol = sym

	for _, tp := range n.TypeParameters {
		tpSym := b.declareNamed(n.Locals, tp, tp.Name, types.TypeMeaning)
		tp.Symbol = tpSym
		b.setParent(tp, n)
		b.setParent(tp.Name, tp)
	}
	for _, param := range n.Parameters {
		paramSym := b.declareNamed(n.Locals, param, param.Name, types.Value)
		param.Symbol = paramSym
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
}
