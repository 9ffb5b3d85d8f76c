package types

// IDAllocator is a compile-scoped monotonic counter for Type IDs (spec §9 —
// "a compile-scoped counter, not a global, to keep compiles independent").
type IDAllocator struct {
	next int
}

// NewIDAllocator returns an allocator starting at 1 (0 is reserved so the
// zero value of an ID-bearing struct is never mistaken for a real type).
func NewIDAllocator() *IDAllocator {
	return &IDAllocator{next: 1}
}

func (a *IDAllocator) Next() int {
	id := a.next
	a.next++
	return id
}

// TypeVarAllocator mints fresh TypeVariables, used for TypeParameter
// elaboration (spec §4.10 getTypeTypeOfSymbol).
type TypeVarAllocator struct {
	ids *IDAllocator
}

func NewTypeVarAllocator(ids *IDAllocator) *TypeVarAllocator {
	return &TypeVarAllocator{ids: ids}
}

func (a *TypeVarAllocator) Fresh(name string) TypeVariable {
	return TypeVariable{ID: a.ids.Next(), Name: name}
}
