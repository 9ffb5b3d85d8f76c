package diagnostics

import "fmt"

// InternalError signals a broken pre-condition — a contract violation by
// the Parser/Binder that the Checker cannot recover from (spec §7 tier 2).
// These are never added to a Sink; they abort the compile via panic/recover
// at the pipeline boundary.
type InternalError struct {
	Message string
}

func (e *InternalError) Error() string { return "internal error: " + e.Message }

// Fatalf panics with an *InternalError built from format/args. Callers at
// the top of the pipeline recover and convert it into a single crash
// diagnostic instead of letting the process die (spec §7 — "record-at-
// position and continue" does not apply to internal invariants, but the
// driver still has to produce an exit code instead of a raw panic).
func Fatalf(format string, args ...any) {
	panic(&InternalError{Message: fmt.Sprintf(format, args...)})
}
