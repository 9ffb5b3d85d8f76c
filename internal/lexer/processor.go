package lexer

import (
	"github.com/funvibe/minic/internal/pipeline"
	"github.com/funvibe/minic/internal/token"
)

// LexerProcessor is the pipeline.Processor wrapper around Lexer, grounded
// on the teacher's lexer.LexerProcessor used by
// internal/analyzer/strict_mode_test.go's analyzeSource helper.
type LexerProcessor struct{}

func (p *LexerProcessor) Process(ctx *pipeline.PipelineContext) *pipeline.PipelineContext {
	l := New(ctx.Source)
	var stream []token.Token
	for {
		tok := l.NextToken()
		stream = append(stream, tok)
		if tok.Type == token.EOF {
			break
		}
	}
	ctx.TokenStream = stream
	return ctx
}
