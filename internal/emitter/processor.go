package emitter

import "github.com/funvibe/minic/internal/pipeline"

// Processor is the pipeline.Processor wrapper around Emit.
type Processor struct{}

func (pr *Processor) Process(ctx *pipeline.PipelineContext) *pipeline.PipelineContext {
	ctx.Emitted = Emit(ctx.TransformedRoot.Statements)
	return ctx
}
