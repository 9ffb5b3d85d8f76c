// Package testsupport holds test-only helpers shared across package
// tests: a one-call lex/parse/bind/check pipeline runner grounded on the
// teacher's own internal/analyzer/strict_mode_test.go analyzeSource
// helper, and a golden/*.txtar fixture reader for the end-to-end
// scenarios in spec.md §8.
package testsupport

import (
	"github.com/funvibe/minic/internal/ast"
	"github.com/funvibe/minic/internal/binder"
	"github.com/funvibe/minic/internal/checker"
	"github.com/funvibe/minic/internal/diagnostics"
	"github.com/funvibe/minic/internal/lexer"
	"github.com/funvibe/minic/internal/parser"
	"github.com/funvibe/minic/internal/pipeline"
	"github.com/funvibe/minic/internal/types"
)

var pl = pipeline.New(
	&lexer.LexerProcessor{},
	&parser.Processor{},
	&binder.Processor{},
	&checker.Processor{},
)

// Result is everything CompileSource ran and produced, for tests that
// want more than just the error list.
type Result struct {
	Module *ast.Module
	Types  []types.Type
	Sink   *diagnostics.Sink
}

// CompileSource lexes, parses, binds and checks input, mirroring the
// teacher's analyzeSource helper but returning the full pipeline result
// rather than just the flat error slice.
func CompileSource(input string) *Result {
	ctx := pl.Run(pipeline.NewPipelineContext(input))
	return &Result{Module: ctx.AstRoot, Types: ctx.CheckedTypes, Sink: ctx.Sink}
}

// Errors is a convenience for tests that only care about the flat
// diagnostic list.
func (r *Result) Errors() []*diagnostics.DiagnosticError {
	return r.Sink.Errors()
}
