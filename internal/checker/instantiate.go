package checker

import "github.com/funvibe/minic/internal/types"

// instantiateType substitutes through a generic type per its kind (spec
// §4.8). No instantiation is cached — every call allocates fresh ids for
// the kinds that carry one.
func (c *Checker) instantiateType(t types.Type, mapper *types.Mapper) types.Type {
	switch v := t.(type) {
	case types.Primitive:
		return v

	case types.Function:
		return types.Function{ID: c.ids.Next(), Signature: c.instantiateSignature(v.Signature, mapper)}

	case types.Object:
		members := types.NewTable()
		for _, name := range v.Members.Names() {
			sym, _ := v.Members.Get(name)
			members.Set(name, c.instantiateSymbol(sym, mapper))
		}
		return types.Object{ID: c.ids.Next(), Members: members}

	case types.TypeVariable:
		if target, ok := mapper.Lookup(v); ok {
			return target
		}
		return v

	default:
		return t
	}
}

// instantiateSignature builds a concrete signature from a generic one:
// its own type parameter list is dropped (it has been applied, not
// carried forward), each parameter symbol is instantiated, and the
// return type is substituted (spec §4.8).
func (c *Checker) instantiateSignature(sig *types.Signature, mapper *types.Mapper) *types.Signature {
	parameters := make([]*types.Symbol, len(sig.Parameters))
	for i, p := range sig.Parameters {
		parameters[i] = c.instantiateSymbol(p, mapper)
	}
	return &types.Signature{
		Parameters: parameters,
		ReturnType: c.instantiateType(sig.ReturnType, mapper),
		Target:     sig,
		Mapper:     mapper,
	}
}

// instantiateSymbol wraps sym as a derived symbol that lazily
// substitutes its target's cached type the first time it is queried
// (spec §4.8) — see getValueTypeOfSymbol/getTypeTypeOfSymbol's
// instantiated-symbol branch.
func (c *Checker) instantiateSymbol(sym *types.Symbol, mapper *types.Mapper) *types.Symbol {
	return types.NewInstantiatedSymbol(sym, mapper)
}
