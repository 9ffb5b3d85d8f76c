package checker

import "github.com/funvibe/minic/internal/pipeline"

// Processor is the pipeline.Processor wrapper around Checker.
type Processor struct{}

func (pr *Processor) Process(ctx *pipeline.PipelineContext) *pipeline.PipelineContext {
	ctx.CheckedTypes = New(ctx.Sink).Check(ctx.AstRoot)
	return ctx
}
