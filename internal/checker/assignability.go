package checker

import "github.com/funvibe/minic/internal/types"

// isAssignableTo implements spec §4.11's structural assignability rule.
// It is reflexive but not symmetric: isAssignableTo(target, source) can
// diverge from isAssignableTo(source, target) for Function types, where
// parameters compare contravariantly.
func (c *Checker) isAssignableTo(source, target types.Type) bool {
	if source == target {
		return true
	}
	if c.isAnyOrError(source) || c.isAnyOrError(target) {
		return true
	}

	if _, ok := source.(types.Primitive); ok {
		return false
	}
	if _, ok := target.(types.Primitive); ok {
		return false
	}

	if srcObj, ok := source.(types.Object); ok {
		targetObj, ok := target.(types.Object)
		if !ok {
			return false
		}
		return c.objectAssignable(srcObj, targetObj)
	}

	if srcFn, ok := source.(types.Function); ok {
		targetFn, ok := target.(types.Function)
		if !ok {
			return false
		}
		return c.functionAssignable(srcFn, targetFn)
	}

	return false
}

func (c *Checker) isAnyOrError(t types.Type) bool {
	return t == c.anyType || t == c.errorType
}

func (c *Checker) objectAssignable(source, target types.Object) bool {
	for _, name := range target.Members.Names() {
		targetSym, _ := target.Members.Get(name)
		sourceSym, ok := source.Members.Get(name)
		if !ok {
			return false
		}
		sourceType := c.getValueTypeOfSymbol(sourceSym)
		targetType := c.getValueTypeOfSymbol(targetSym)
		if !c.isAssignableTo(sourceType, targetType) {
			return false
		}
	}
	return true
}

func (c *Checker) functionAssignable(source, target types.Function) bool {
	sourceSig := source.Signature
	targetSig := target.Signature

	if len(sourceSig.TypeParameters) > 0 && len(targetSig.TypeParameters) > 0 {
		n := min(len(sourceSig.TypeParameters), len(targetSig.TypeParameters))
		sources := make([]types.TypeVariable, n)
		renamedTo := make([]types.Type, n)
		for i := 0; i < n; i++ {
			sources[i] = c.getTypeTypeOfSymbol(targetSig.TypeParameters[i]).(types.TypeVariable)
			renamedTo[i] = c.getTypeTypeOfSymbol(sourceSig.TypeParameters[i])
		}
		targetSig = c.instantiateSignature(targetSig, types.NewMapper(sources, renamedTo))
	}

	if !c.isAssignableTo(sourceSig.ReturnType, targetSig.ReturnType) {
		return false
	}
	if len(sourceSig.Parameters) > len(targetSig.Parameters) {
		return false
	}
	for i := range sourceSig.Parameters {
		sourceParamType := c.getValueTypeOfSymbol(sourceSig.Parameters[i])
		targetParamType := c.getValueTypeOfSymbol(targetSig.Parameters[i])
		if !c.isAssignableTo(targetParamType, sourceParamType) {
			return false
		}
	}
	return true
}
