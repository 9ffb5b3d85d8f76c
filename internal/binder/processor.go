package binder

import "github.com/funvibe/minic/internal/pipeline"

// Processor is the pipeline.Processor wrapper around Binder.
type Processor struct{}

func (pr *Processor) Process(ctx *pipeline.PipelineContext) *pipeline.PipelineContext {
	New(ctx.Sink).Bind(ctx.AstRoot)
	return ctx
}
