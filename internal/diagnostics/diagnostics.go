// Package diagnostics implements the compile-scoped error sink (spec
// §4.12): a mapping from position to the first diagnostic recorded there.
//
// The teacher repo (funvibe/funxy) references this exact shape —
// diagnostics.DiagnosticError, diagnostics.ErrorCode, diagnostics.NewError
// — from dozens of call sites (internal/parser/expressions_do.go,
// internal/backend/processor.go, internal/analyzer/*_test.go) but its
// source file was not part of the retrieval pack, so it is reconstructed
// here from those call sites.
package diagnostics

import (
	"fmt"

	"github.com/funvibe/minic/internal/token"
)

// ErrorCode is a stable short tag for one diagnostic shape, letting tests
// and downstream tooling match on "which diagnostic" without parsing
// message text (spec_full's Diagnostic.Code supplement).
type ErrorCode string

const (
	ErrAssignInit      ErrorCode = "E_ASSIGN_INIT"
	ErrAssign          ErrorCode = "E_ASSIGN"
	ErrUnresolvedValue ErrorCode = "E_UNRESOLVED_VALUE"
	ErrUnresolvedType  ErrorCode = "E_UNRESOLVED_TYPE"
	ErrNotCallable     ErrorCode = "E_NOT_CALLABLE"
	ErrArgCount        ErrorCode = "E_ARG_COUNT"
	ErrTypeArgCount    ErrorCode = "E_TYPE_ARG_COUNT"
	ErrArgType         ErrorCode = "E_ARG_TYPE"
	ErrReturnType      ErrorCode = "E_RETURN_TYPE"
	ErrRedeclare       ErrorCode = "E_REDECLARE"
)

// DiagnosticError is one recorded diagnostic.
type DiagnosticError struct {
	Code    ErrorCode
	Token   token.Token
	Message string
}

func (e *DiagnosticError) Error() string {
	return e.Message
}

// NewError builds a DiagnosticError at tok with message already formatted.
func NewError(code ErrorCode, tok token.Token, message string) *DiagnosticError {
	return &DiagnosticError{Code: code, Token: tok, Message: message}
}

// Newf is NewError with fmt.Sprintf formatting, the common case at call
// sites that build the message inline.
func Newf(code ErrorCode, tok token.Token, format string, args ...any) *DiagnosticError {
	return NewError(code, tok, fmt.Sprintf(format, args...))
}

// Sink is the compile-scoped mapping from position to the first diagnostic
// recorded there (spec §4.12). Report takes a built DiagnosticError;
// ReportAt takes a node and extracts its token's position.
type Sink struct {
	byPos   map[token.Pos]*DiagnosticError
	ordered []*DiagnosticError
}

// NewSink returns an empty sink.
func NewSink() *Sink {
	return &Sink{byPos: make(map[token.Pos]*DiagnosticError)}
}

// PosProvider is satisfied by any ast node (GetToken() token.Token).
type PosProvider interface {
	GetToken() token.Token
}

// Report records d unless a diagnostic already exists at d.Token.Pos, in
// which case it is dropped (spec §4.12 — "duplicate errors at the same
// position are dropped").
func (s *Sink) Report(d *DiagnosticError) {
	if _, exists := s.byPos[d.Token.Pos]; exists {
		return
	}
	s.byPos[d.Token.Pos] = d
	s.ordered = append(s.ordered, d)
}

// ReportAt is a convenience that reports code/message at node's position.
func (s *Sink) ReportAt(node PosProvider, code ErrorCode, format string, args ...any) {
	s.Report(Newf(code, node.GetToken(), format, args...))
}

// Errors returns every recorded diagnostic in the order first reported.
func (s *Sink) Errors() []*DiagnosticError {
	out := make([]*DiagnosticError, len(s.ordered))
	copy(out, s.ordered)
	return out
}

// Len reports how many diagnostics are recorded.
func (s *Sink) Len() int { return len(s.ordered) }

// Clear resets the sink for a new compile unit.
func (s *Sink) Clear() {
	s.byPos = make(map[token.Pos]*DiagnosticError)
	s.ordered = nil
}
