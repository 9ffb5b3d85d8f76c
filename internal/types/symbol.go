package types

// declInfo pairs a declaration with the meaning it contributes.
type declInfo struct {
	decl    Decl
	meaning Meaning
}

// Symbol aggregates every declaration of one name within a scope (spec
// §3 Symbol).
type Symbol struct {
	Name string

	declarations []declInfo

	// ValueDeclaration is the first declaration that contributed a Value
	// meaning, or nil if none did.
	ValueDeclaration Decl

	// ValueType/TypeType memoise the Checker's result; absent (nil) until
	// first computed.
	ValueType Type
	TypeType  Type

	// Members holds the scope table for Object/ObjectLiteralType-originating
	// symbols. nil for every other symbol kind.
	Members *Table

	// Target/Mapper are set only on symbols produced by instantiation
	// (spec §4.8); Target is the generic symbol this one was derived from.
	Target *Symbol
	Mapper *Mapper
}

// NewSymbol creates a symbol whose first declaration is decl.
func NewSymbol(name string, decl Decl, meaning Meaning) *Symbol {
	s := &Symbol{Name: name}
	s.AddDeclaration(decl, meaning)
	return s
}

// NewInstantiatedSymbol produces the symbol instantiateSymbol returns
// (spec §4.8): declarations and valueDeclaration carry over unchanged,
// Target/Mapper record how it was derived, and ValueType/TypeType start
// nil so the Checker lazily materialises them by substituting through
// the target's cached type on first query.
func NewInstantiatedSymbol(target *Symbol, mapper *Mapper) *Symbol {
	declarations := make([]declInfo, len(target.declarations))
	copy(declarations, target.declarations)
	return &Symbol{
		Name:             target.Name,
		declarations:     declarations,
		ValueDeclaration: target.ValueDeclaration,
		Members:          target.Members,
		Target:           target,
		Mapper:           mapper,
	}
}

func (s *Symbol) AddDeclaration(decl Decl, meaning Meaning) {
	s.declarations = append(s.declarations, declInfo{decl: decl, meaning: meaning})
	if meaning == Value && s.ValueDeclaration == nil {
		s.ValueDeclaration = decl
	}
}

// Declarations returns every declaration contributing to this symbol, in
// the order they were bound.
func (s *Symbol) Declarations() []Decl {
	out := make([]Decl, len(s.declarations))
	for i, d := range s.declarations {
		out[i] = d.decl
	}
	return out
}

// HasMeaning reports whether any declaration of s has the given meaning.
func (s *Symbol) HasMeaning(m Meaning) bool {
	for _, d := range s.declarations {
		if d.meaning == m {
			return true
		}
	}
	return false
}

// FirstConflict returns the first existing declaration that shares
// meaning m; its position is used to render "first declared at"
// diagnostics.
func (s *Symbol) FirstConflict(m Meaning) (Decl, bool) {
	for _, d := range s.declarations {
		if d.meaning == m {
			return d.decl, true
		}
	}
	return nil, false
}

// Table is an ordered-by-insertion mapping from name to Symbol, owned by
// exactly one scope (Module/Function/Signature locals, or an
// Object/ObjectLiteralType's members).
type Table struct {
	order   []string
	symbols map[string]*Symbol
}

// NewTable returns an empty Table.
func NewTable() *Table {
	return &Table{symbols: make(map[string]*Symbol)}
}

// Get looks up name within this table only (no outer-scope walk — that is
// the Checker's resolve() responsibility, not the Table's).
func (t *Table) Get(name string) (*Symbol, bool) {
	s, ok := t.symbols[name]
	return s, ok
}

// Set inserts or overwrites the symbol for name.
func (t *Table) Set(name string, sym *Symbol) {
	if _, exists := t.symbols[name]; !exists {
		t.order = append(t.order, name)
	}
	t.symbols[name] = sym
}

// Names returns the table's keys in insertion order, the order
// typeToString (spec §4.2) enumerates Object members in.
func (t *Table) Names() []string {
	out := make([]string, len(t.order))
	copy(out, t.order)
	return out
}

// Len reports the number of symbols in the table.
func (t *Table) Len() int { return len(t.order) }
