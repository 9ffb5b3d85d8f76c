package checker

import (
	"github.com/funvibe/minic/internal/ast"
	"github.com/funvibe/minic/internal/diagnostics"
	"github.com/funvibe/minic/internal/types"
)

// getValueTypeOfSymbol implements spec §4.10's value-type query,
// including the instantiated-symbol delegation and the reentrancy guard
// that stands in for self-referential declarations (spec §9 design
// note).
func (c *Checker) getValueTypeOfSymbol(sym *types.Symbol) types.Type {
	if sym.ValueDeclaration == nil {
		diagnostics.Fatalf("checker: cannot get value type of %q with no value declaration", sym.Name)
	}
	if sym.ValueType != nil {
		return sym.ValueType
	}
	if sym.Target != nil {
		result := c.instantiateType(c.getValueTypeOfSymbol(sym.Target), sym.Mapper)
		sym.ValueType = result
		return result
	}
	if c.valueInProgress[sym] {
		return c.anyType
	}
	c.valueInProgress[sym] = true
	defer delete(c.valueInProgress, sym)

	var result types.Type
	switch d := sym.ValueDeclaration.(type) {
	case *ast.Var:
		result = c.checkStatement(d)
	case *ast.TypeAlias:
		result = c.checkStatement(d)
	case *ast.Object:
		result = c.checkExpression(d)
	case *ast.PropertyAssignment:
		result = c.checkExpression(d.Initializer)
	case *ast.PropertyDeclaration:
		result = c.checkPropertyDeclaration(d)
	case *ast.Parameter:
		if d.TypeName != nil {
			result = c.checkType(d.TypeName)
		} else {
			result = c.anyType
		}
	case *ast.Function:
		result = c.getTypeOfFunction(d)
	default:
		diagnostics.Fatalf("checker: value declaration %T has no value-type rule", d)
	}
	sym.ValueType = result
	return result
}

// getTypeOfFunction implements spec §4.10's function-type builder.
func (c *Checker) getTypeOfFunction(fn *ast.Function) types.Type {
	for _, tp := range fn.TypeParameters {
		c.getTypeTypeOfSymbol(tp.Symbol)
	}
	for _, p := range fn.Parameters {
		if p.TypeName != nil {
			c.checkType(p.TypeName)
		}
	}

	var declaredType types.Type
	if fn.TypeName != nil {
		declaredType = c.checkType(fn.TypeName)
	}
	bodyType := c.checkBody(fn.Body, declaredType)

	returnType := declaredType
	if returnType == nil {
		returnType = bodyType
	}

	sig := &types.Signature{
		TypeParameters: symbolsOf(fn.TypeParameters, func(tp *ast.TypeParameter) *types.Symbol { return tp.Symbol }),
		Parameters:     symbolsOf(fn.Parameters, func(p *ast.Parameter) *types.Symbol { return p.Symbol }),
		ReturnType:     returnType,
	}
	result := types.Function{ID: c.ids.Next(), Signature: sig}
	fn.Symbol.ValueType = result
	return result
}

// getTypeOfSignature implements spec §4.10's analogous builder for
// Signature type nodes; an absent return type annotation defaults to
// anyType rather than falling back to a checked body, since a Signature
// type node has no body to check.
func (c *Checker) getTypeOfSignature(decl *ast.Signature) types.Type {
	for _, tp := range decl.TypeParameters {
		c.getTypeTypeOfSymbol(tp.Symbol)
	}
	for _, p := range decl.Parameters {
		if p.TypeName != nil {
			c.checkType(p.TypeName)
		}
	}

	returnType := c.anyType
	if decl.TypeName != nil {
		returnType = c.checkType(decl.TypeName)
	}

	sig := &types.Signature{
		TypeParameters: symbolsOf(decl.TypeParameters, func(tp *ast.TypeParameter) *types.Symbol { return tp.Symbol }),
		Parameters:     symbolsOf(decl.Parameters, func(p *ast.Parameter) *types.Symbol { return p.Symbol }),
		ReturnType:     returnType,
	}
	result := types.Function{ID: c.ids.Next(), Signature: sig}
	decl.Symbol.TypeType = result
	return result
}

// getTypeTypeOfSymbol implements spec §4.10's type-type query.
func (c *Checker) getTypeTypeOfSymbol(sym *types.Symbol) types.Type {
	if sym.TypeType != nil {
		return sym.TypeType
	}
	if sym.Target != nil {
		result := c.instantiateType(c.getTypeTypeOfSymbol(sym.Target), sym.Mapper)
		sym.TypeType = result
		return result
	}
	if c.typeInProgress[sym] {
		return c.anyType
	}
	c.typeInProgress[sym] = true
	defer delete(c.typeInProgress, sym)

	for _, decl := range sym.Declarations() {
		switch d := decl.(type) {
		case *ast.TypeAlias:
			result := c.checkType(d.TypeName)
			sym.TypeType = result
			return result
		case *ast.TypeParameter:
			tv := c.tv.Fresh(d.Name.Text)
			sym.TypeType = tv
			return tv
		case *ast.Signature:
			return c.getTypeOfSignature(d)
		}
	}
	diagnostics.Fatalf("checker: symbol %q has no type-producing declaration", sym.Name)
	panic("unreachable")
}

// checkBody implements spec §4.10's body-checking procedure: every
// statement is checked for its side effects, Return statements are
// collected via a shallow traversal that does not descend into nested
// function bodies (those belong to the nested Function's own
// getTypeOfFunction call), and each collected return is validated
// against declaredType when present.
func (c *Checker) checkBody(body []ast.Statement, declaredType types.Type) types.Type {
	var returnTypes []types.Type
	for _, stmt := range body {
		ret, ok := stmt.(*ast.Return)
		if !ok {
			c.checkStatement(stmt)
			continue
		}
		rt := c.checkStatement(ret)
		returnTypes = append(returnTypes, rt)
		if declaredType != nil && !c.isAssignableTo(rt, declaredType) {
			c.sink.ReportAt(ret, diagnostics.ErrReturnType,
				"Returned type '%s' does not match declared return type '%s'.",
				c.typeToString(rt), c.typeToString(declaredType))
		}
	}
	if len(returnTypes) > 0 {
		return returnTypes[0]
	}
	return c.anyType
}

func symbolsOf[T any](items []T, get func(T) *types.Symbol) []*types.Symbol {
	if len(items) == 0 {
		return nil
	}
	out := make([]*types.Symbol, len(items))
	for i, item := range items {
		out[i] = get(item)
	}
	return out
}
