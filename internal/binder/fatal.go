package binder

import "github.com/funvibe/minic/internal/diagnostics"

// diagFatalUnknownKind aborts the compile: an unrecognized node kind
// reaching the Binder means the Parser produced something outside its
// contract (spec §7 — "structural surprises... raise a fatal internal
// error").
func diagFatalUnknownKind(where string, node any) {
	diagnostics.Fatalf("binder: unknown %s kind %T", where, node)
}
