// Package pipeline threads a compile unit through the Scanner -> Parser ->
// Binder -> Checker -> Transform -> Emitter stages.
//
// The shape (Pipeline.Run looping Processor.Process, continuing on errors
// "to collect diagnostics from all stages") is grounded on the teacher's
// own internal/pipeline/pipeline.go. PipelineContext's fields are
// reconstructed from call sites referenced throughout the teacher's tests
// (ctx.TokenStream, ctx.Sink, ctx.AstRoot, ctx.FilePath,
// pipeline.NewPipelineContext(input)) since that struct's source file was
// not part of the retrieval pack.
package pipeline

import (
	"github.com/funvibe/minic/internal/ast"
	"github.com/funvibe/minic/internal/diagnostics"
	"github.com/funvibe/minic/internal/token"
	"github.com/funvibe/minic/internal/types"
	"github.com/google/uuid"
)

// PipelineContext carries one compile unit's state across stages.
type PipelineContext struct {
	// CompileID identifies this compile unit; minted once per compile with
	// google/uuid. The CLI driver's verbose log line does not print it,
	// and the compile cache is keyed by source hash, not by this ID.
	CompileID uuid.UUID

	FilePath string
	Source   string

	TokenStream []token.Token
	AstRoot     *ast.Module

	// CheckedTypes holds the top-level statement types the Checker
	// produced, in source order (spec §6 — the `check(module)` entry
	// point's return value).
	CheckedTypes []types.Type

	// TransformedRoot/Emitted are filled by the Transform and Emitter
	// stages, which run whether or not earlier stages recorded
	// diagnostics.
	TransformedRoot *ast.Module
	Emitted         string

	// Sink is the single diagnostics sink every stage (Parser, Binder,
	// Checker) reports into (spec §4.12, §9 design note — "thread an
	// explicit, owned sink through Binder and Checker; do not rely on
	// process-global mutable state").
	Sink *diagnostics.Sink
}

// NewPipelineContext starts a fresh compile unit for source.
func NewPipelineContext(source string) *PipelineContext {
	return &PipelineContext{
		CompileID: uuid.New(),
		Source:    source,
		Sink:      diagnostics.NewSink(),
	}
}

// Errors returns every diagnostic recorded so far, in report order.
func (ctx *PipelineContext) Errors() []*diagnostics.DiagnosticError {
	return ctx.Sink.Errors()
}

// Processor is one pipeline stage.
type Processor interface {
	Process(ctx *PipelineContext) *PipelineContext
}

// ProcessorFunc adapts a plain function to Processor.
type ProcessorFunc func(ctx *PipelineContext) *PipelineContext

func (f ProcessorFunc) Process(ctx *PipelineContext) *PipelineContext { return f(ctx) }

// Pipeline is an ordered sequence of processing stages.
type Pipeline struct {
	processors []Processor
}

// New builds a Pipeline running processors in order.
func New(processors ...Processor) *Pipeline {
	return &Pipeline{processors: processors}
}

// Run executes every stage in order, continuing even if an earlier stage
// recorded errors, so later stages (e.g. an LSP wanting both parse and
// semantic diagnostics) still get a chance to contribute.
func (p *Pipeline) Run(initialCtx *PipelineContext) *PipelineContext {
	ctx := initialCtx
	for _, processor := range p.processors {
		ctx = processor.Process(ctx)
	}
	return ctx
}
