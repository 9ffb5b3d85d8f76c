package checker_test

import (
	"strings"
	"testing"

	"github.com/funvibe/minic/internal/diagnostics"
	"github.com/funvibe/minic/internal/testsupport"
)

// expectCheckerError asserts at least one recorded diagnostic carries code.
func expectCheckerError(t *testing.T, input string, code diagnostics.ErrorCode) *diagnostics.DiagnosticError {
	t.Helper()
	result := testsupport.CompileSource(input)
	errs := result.Errors()
	if len(errs) == 0 {
		t.Fatalf("expected error %s, but got none\ninput: %s", code, input)
	}
	for _, e := range errs {
		if e.Code == code {
			return e
		}
	}
	var msgs []string
	for _, e := range errs {
		msgs = append(msgs, e.Error())
	}
	t.Fatalf("expected error %s, got:\n%s\ninput: %s", code, strings.Join(msgs, "\n"), input)
	return nil
}

func expectCheckerErrorContains(t *testing.T, input string, code diagnostics.ErrorCode, substr string) {
	t.Helper()
	e := expectCheckerError(t, input, code)
	if !strings.Contains(e.Error(), substr) {
		t.Errorf("expected error message to contain %q, got: %s", substr, e.Error())
	}
}

func expectNoCheckerErrors(t *testing.T, input string) {
	t.Helper()
	result := testsupport.CompileSource(input)
	if errs := result.Errors(); len(errs) > 0 {
		var msgs []string
		for _, e := range errs {
			msgs = append(msgs, e.Error())
		}
		t.Fatalf("expected no errors, got:\n%s\ninput: %s", strings.Join(msgs, "\n"), input)
	}
}

func TestAssignInitMismatch(t *testing.T) {
	expectCheckerErrorContains(t, `var x: number = "hi"`, diagnostics.ErrAssignInit, "number")
}

func TestAssignInitOk(t *testing.T) {
	expectNoCheckerErrors(t, `var x: number = 1`)
}

func TestUnresolvedValue(t *testing.T) {
	expectCheckerError(t, `var x = y`, diagnostics.ErrUnresolvedValue)
}

func TestUnresolvedType(t *testing.T) {
	expectCheckerError(t, `var x: Missing = 1`, diagnostics.ErrUnresolvedType)
}

func TestNotCallable(t *testing.T) {
	expectCheckerError(t, `var x = 1; x()`, diagnostics.ErrNotCallable)
}

func TestArgCountMismatch(t *testing.T) {
	expectCheckerError(t, `var f = function (x: number): number { return x }; f(1, 2)`, diagnostics.ErrArgCount)
}

func TestTypeArgCountMismatch(t *testing.T) {
	expectCheckerError(t, `var id = function <T>(x: T): T { return x }; id<number, string>(1)`, diagnostics.ErrTypeArgCount)
}

func TestArgTypeMismatch(t *testing.T) {
	expectCheckerErrorContains(t, `var f = function (x: number): number { return x }; f("hi")`, diagnostics.ErrArgType, "string")
}

func TestReturnTypeMismatch(t *testing.T) {
	expectCheckerErrorContains(t, `var f = function (x: number): string { return x }`, diagnostics.ErrReturnType, "number")
}

func TestRedeclareSameMeaning(t *testing.T) {
	expectCheckerError(t, `var x = 1; var x = 2`, diagnostics.ErrRedeclare)
}

func TestRedeclareDifferentMeaningsAllowed(t *testing.T) {
	expectNoCheckerErrors(t, `type X = number; var X = 1`)
}

func TestGenericIdentityInferred(t *testing.T) {
	expectNoCheckerErrors(t, `var id = function <T>(x: T): T { return x }; id(1)`)
}

func TestGenericExplicitTypeArgument(t *testing.T) {
	expectNoCheckerErrors(t, `var id = function <T>(x: T): T { return x }; id<number>(1)`)
}

func TestStructuralObjectAssignabilityAllowsExtraMembers(t *testing.T) {
	expectNoCheckerErrors(t, `type P = { x: number }; var p: P = { x: 1, y: 2 }`)
}

func TestObjectLiteralMissingMemberRejected(t *testing.T) {
	expectCheckerError(t, `type P = { x: number, y: number }; var p: P = { x: 1 }`, diagnostics.ErrAssignInit)
}

func TestFunctionParameterContravariance(t *testing.T) {
	// a function accepting `any` satisfies a target expecting a narrower
	// parameter type, since any argument the caller could pass is also
	// assignable to `any`.
	expectNoCheckerErrors(t, `
var useNumberFn = function (f: (x: number) => number): number { return f(1) };
var takesAny = function (x: any): number { return 1 };
useNumberFn(takesAny)
`)
}
