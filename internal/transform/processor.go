package transform

import (
	"github.com/funvibe/minic/internal/ast"
	"github.com/funvibe/minic/internal/pipeline"
)

// Processor is the pipeline.Processor wrapper around Statements.
type Processor struct{}

func (pr *Processor) Process(ctx *pipeline.PipelineContext) *pipeline.PipelineContext {
	ctx.TransformedRoot = &ast.Module{
		Statements: Statements(ctx.AstRoot.Statements),
		Locals:     ctx.AstRoot.Locals,
	}
	return ctx
}
