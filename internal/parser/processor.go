package parser

import "github.com/funvibe/minic/internal/pipeline"

// Processor is the pipeline.Processor wrapper around Parser.
type Processor struct{}

func (pr *Processor) Process(ctx *pipeline.PipelineContext) *pipeline.PipelineContext {
	p := New(ctx.TokenStream, ctx)
	ctx.AstRoot = p.ParseProgram()
	return ctx
}
