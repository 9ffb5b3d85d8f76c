package testsupport

import (
	"fmt"
	"strings"

	"golang.org/x/tools/txtar"
)

// Golden is one parsed golden/*.txtar fixture: a source section plus the
// expected diagnostics and emitted output for it (spec.md §8's
// concrete end-to-end scenarios).
//
// A fixture file looks like:
//
//	-- source --
//	var x: number = 1
//	-- diagnostics --
//	-- emit --
//	var x = 1
type Golden struct {
	Name        string
	Source      string
	Diagnostics string
	Emit        string
}

// LoadGolden parses a txtar archive's bytes into a Golden fixture.
// Repurposes golang.org/x/tools/txtar — the teacher's go/packages
// introspection dependency — as golden-file test tooling, a standard use
// of that package elsewhere in the Go ecosystem.
func LoadGolden(name string, data []byte) (*Golden, error) {
	archive := txtar.Parse(data)
	g := &Golden{Name: name}
	for _, f := range archive.Files {
		content := strings.TrimSuffix(string(f.Data), "\n")
		switch f.Name {
		case "source":
			g.Source = content
		case "diagnostics":
			g.Diagnostics = content
		case "emit":
			g.Emit = content
		default:
			return nil, fmt.Errorf("golden %s: unknown section %q", name, f.Name)
		}
	}
	if g.Source == "" {
		return nil, fmt.Errorf("golden %s: missing -- source -- section", name)
	}
	return g, nil
}
