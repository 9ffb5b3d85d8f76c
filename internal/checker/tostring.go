package checker

import (
	"strings"

	"github.com/funvibe/minic/internal/types"
)

// typeToString renders a type for diagnostic messages (spec §4.2).
func (c *Checker) typeToString(t types.Type) string {
	switch v := t.(type) {
	case types.Primitive:
		return v.Name

	case types.Object:
		names := v.Members.Names()
		parts := make([]string, len(names))
		for i, name := range names {
			sym, _ := v.Members.Get(name)
			parts[i] = name + ": " + c.typeToString(c.getValueTypeOfSymbol(sym))
		}
		return "{ " + strings.Join(parts, ", ") + " }"

	case types.Function:
		parts := make([]string, len(v.Signature.Parameters))
		for i, p := range v.Signature.Parameters {
			parts[i] = p.Name + ": " + c.typeToString(c.getValueTypeOfSymbol(p))
		}
		return "(" + strings.Join(parts, ", ") + ") => " + c.typeToString(v.Signature.ReturnType)

	case types.TypeVariable:
		return v.Name

	default:
		return "<unknown>"
	}
}
