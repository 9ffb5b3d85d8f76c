package checker

import (
	"github.com/funvibe/minic/internal/ast"
	"github.com/funvibe/minic/internal/diagnostics"
	"github.com/funvibe/minic/internal/types"
)

// checkCall implements spec §4.7's seven-step call-checking procedure.
func (c *Checker) checkCall(call *ast.Call) types.Type {
	et := c.checkExpression(call.Expression)
	fn, ok := et.(types.Function)
	if !ok {
		c.sink.ReportAt(call.Expression, diagnostics.ErrNotCallable,
			"Cannot call expression of type '%s'.", c.typeToString(et))
		return c.errorType
	}

	argTypes := make([]types.Type, len(call.Arguments))
	for i, arg := range call.Arguments {
		argTypes[i] = c.checkExpression(arg)
	}

	sig := fn.Signature
	if len(sig.TypeParameters) > 0 {
		typeParameters := make([]types.TypeVariable, len(sig.TypeParameters))
		for i, s := range sig.TypeParameters {
			typeParameters[i] = c.getTypeTypeOfSymbol(s).(types.TypeVariable)
		}

		var typeArguments []types.Type
		switch {
		case len(call.TypeArguments) == 0:
			typeArguments = c.inferTypeArguments(typeParameters, sig, argTypes)
		case len(call.TypeArguments) != len(typeParameters):
			c.sink.ReportAt(call.Expression, diagnostics.ErrTypeArgCount,
				"Expected %d type arguments, but got %d.", len(typeParameters), len(call.TypeArguments))
			typeArguments = make([]types.Type, len(typeParameters))
			for i := range typeArguments {
				typeArguments[i] = c.anyType
			}
		default:
			typeArguments = make([]types.Type, len(call.TypeArguments))
			for i, ta := range call.TypeArguments {
				typeArguments[i] = c.checkType(ta)
			}
		}

		mapper := types.NewMapper(typeParameters, typeArguments)
		sig = c.instantiateSignature(sig, mapper)
	}

	if len(sig.Parameters) != len(call.Arguments) {
		c.sink.ReportAt(call.Expression, diagnostics.ErrArgCount,
			"Expected %d arguments, but got %d.", len(sig.Parameters), len(call.Arguments))
	}

	n := min(len(argTypes), len(sig.Parameters))
	for i := 0; i < n; i++ {
		pt := c.getValueTypeOfSymbol(sig.Parameters[i])
		if !c.isAssignableTo(argTypes[i], pt) {
			c.sink.ReportAt(call.Arguments[i], diagnostics.ErrArgType,
				"Expected argument of type '%s', but got '%s'.", c.typeToString(pt), c.typeToString(argTypes[i]))
		}
	}

	return sig.ReturnType
}

// inferTypeArguments implements spec §4.9: one inference pass over the
// signature's declared parameter positions, keeping the first candidate
// collected per type parameter. Unconstrained parameters fall back to
// anyType (spec §9 open question 1 family — "preserve as-is or expose a
// flag"; anyType is the least-surprising stand-in for "no candidate
// found" since the checker has no undefined type of its own).
func (c *Checker) inferTypeArguments(typeParameters []types.TypeVariable, sig *types.Signature, argTypes []types.Type) []types.Type {
	inferences := make(map[int][]types.Type)
	for i, paramSym := range sig.Parameters {
		if i >= len(argTypes) {
			continue
		}
		pt := c.getValueTypeOfSymbol(paramSym)
		c.inferType(argTypes[i], pt, inferences)
	}

	result := make([]types.Type, len(typeParameters))
	for i, tp := range typeParameters {
		if candidates, ok := inferences[tp.ID]; ok && len(candidates) > 0 {
			result[i] = candidates[0]
		} else {
			result[i] = c.anyType
		}
	}
	return result
}

// inferType recurses structurally on target, recording source as a
// candidate wherever target bottoms out at a TypeVariable (spec §4.9).
// Object and Primitive targets contribute no inference in this version.
func (c *Checker) inferType(source, target types.Type, inferences map[int][]types.Type) {
	switch tgt := target.(type) {
	case types.Function:
		srcFn, ok := source.(types.Function)
		if !ok {
			return
		}
		for i := range tgt.Signature.TypeParameters {
			if i >= len(srcFn.Signature.TypeParameters) {
				break
			}
			srcTV := c.getTypeTypeOfSymbol(srcFn.Signature.TypeParameters[i])
			tgtTV := c.getTypeTypeOfSymbol(tgt.Signature.TypeParameters[i])
			c.inferType(srcTV, tgtTV, inferences)
		}
		for i := range tgt.Signature.Parameters {
			if i >= len(srcFn.Signature.Parameters) {
				break
			}
			sp := c.getValueTypeOfSymbol(srcFn.Signature.Parameters[i])
			tp := c.getValueTypeOfSymbol(tgt.Signature.Parameters[i])
			c.inferType(sp, tp, inferences)
		}
		c.inferType(srcFn.Signature.ReturnType, tgt.Signature.ReturnType, inferences)

	case types.TypeVariable:
		inferences[tgt.ID] = append(inferences[tgt.ID], source)
	}
}
