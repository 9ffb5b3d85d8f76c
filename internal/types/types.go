// Package types implements the four-kind type universe (spec §3, §4.2)
// together with the Symbol/Table model the Binder and Checker share.
//
// Symbol and Type live in the same package because they are mutually
// recursive by design: an Object type carries a members Table of Symbols,
// and a Symbol caches the Type the Checker computed for its declaration.
// Declarations themselves stay in package ast; Symbol references them only
// through the package-local Decl interface below, which any ast node
// satisfies structurally — this is what keeps ast -> types a one-way
// import instead of a cycle.
package types

import "github.com/funvibe/minic/internal/token"

// Decl is the minimal surface a declaration node must expose to be held by
// a Symbol. Every ast.Statement/ast.Expression implements it already.
type Decl interface {
	TokenLiteral() string
	GetToken() token.Token
}

// Meaning classifies whether a declaration contributes a value name or a
// type name to its scope (spec §4.1).
type Meaning int

const (
	Value Meaning = iota
	TypeMeaning
)

func (m Meaning) String() string {
	if m == Value {
		return "value"
	}
	return "type"
}

// Type is implemented by every member of the type universe.
type Type interface {
	// typeNode is unexported so only this package can introduce new kinds,
	// matching the closed set spec §3 enumerates.
	typeNode()
	id() int
}

// Primitive is one of the four pre-allocated canonical types.
type Primitive struct {
	ID   int
	Name string
}

func (Primitive) typeNode()   {}
func (p Primitive) id() int   { return p.ID }

// Object is a structural record type. Two syntactically identical object
// literals produce distinct Object values with distinct IDs (spec §4.5 —
// object types are never cached).
type Object struct {
	ID      int
	Members *Table
}

func (Object) typeNode() {}
func (o Object) id() int { return o.ID }

// Function carries a Signature. Two Function types are distinguished by ID
// even when structurally identical, mirroring Object.
type Function struct {
	ID        int
	Signature *Signature
}

func (Function) typeNode() {}
func (f Function) id() int { return f.ID }

// TypeVariable stands for an as-yet-uninstantiated type parameter.
// Substitution during instantiation matches TypeVariables by ID, not by
// name — two TypeVariables with the same Name are distinct unless they
// carry the same ID.
type TypeVariable struct {
	ID   int
	Name string
}

func (TypeVariable) typeNode() {}
func (t TypeVariable) id() int { return t.ID }

// Signature is a function's parametric description.
type Signature struct {
	TypeParameters []*Symbol // nil for non-generic signatures
	Parameters     []*Symbol
	ReturnType     Type
	Target         *Signature // set when this signature was produced by instantiation
	Mapper         *Mapper
}

// Mapper is a parallel pair of TypeVariable -> Type substitutions, compared
// by ID on the TypeVariable side (spec §3).
type Mapper struct {
	Sources []TypeVariable
	SourceIDs []int // pointer-identity surrogate: the allocator guarantees unique IDs per TypeVariable instance
	Targets []Type
}

// NewMapper builds a Mapper for the given sources/targets, recording the
// sources' IDs so Lookup can match by identity even though Go interface
// values aren't comparable by pointer when they wrap value types.
func NewMapper(sources []TypeVariable, targets []Type) *Mapper {
	ids := make([]int, len(sources))
	for i, s := range sources {
		ids[i] = s.ID
	}
	return &Mapper{Sources: sources, SourceIDs: ids, Targets: targets}
}

// Lookup returns the Mapper's substitution target for tv, if any.
func (m *Mapper) Lookup(tv TypeVariable) (Type, bool) {
	if m == nil {
		return nil, false
	}
	for i, id := range m.SourceIDs {
		if id == tv.ID {
			return m.Targets[i], true
		}
	}
	return nil, false
}
