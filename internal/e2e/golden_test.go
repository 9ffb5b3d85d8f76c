// Package e2e runs the golden/*.txtar fixtures (spec.md §8's concrete
// end-to-end scenarios) through the full lex/parse/bind/check/
// transform/emit pipeline.
package e2e

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/funvibe/minic/internal/emitter"
	"github.com/funvibe/minic/internal/testsupport"
	"github.com/funvibe/minic/internal/transform"
)

const goldenDir = "../../golden"

func TestGolden(t *testing.T) {
	entries, err := os.ReadDir(goldenDir)
	if err != nil {
		t.Fatalf("reading golden dir: %v", err)
	}

	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".txtar" {
			continue
		}
		t.Run(entry.Name(), func(t *testing.T) {
			data, err := os.ReadFile(filepath.Join(goldenDir, entry.Name()))
			if err != nil {
				t.Fatalf("reading fixture: %v", err)
			}
			g, err := testsupport.LoadGolden(entry.Name(), data)
			if err != nil {
				t.Fatalf("parsing fixture: %v", err)
			}

			result := testsupport.CompileSource(g.Source)

			gotDiags := ""
			for i, d := range result.Errors() {
				if i > 0 {
					gotDiags += "\n"
				}
				gotDiags += string(d.Code) + ": " + d.Message
			}
			if gotDiags != g.Diagnostics {
				t.Errorf("diagnostics mismatch:\n got: %q\nwant: %q", gotDiags, g.Diagnostics)
			}

			transformed := transform.Statements(result.Module.Statements)
			gotEmit := emitter.Emit(transformed)
			if gotEmit != g.Emit {
				t.Errorf("emit mismatch:\n got: %q\nwant: %q", gotEmit, g.Emit)
			}
		})
	}
}
