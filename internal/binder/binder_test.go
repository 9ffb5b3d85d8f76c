package binder_test

import (
	"testing"

	"github.com/funvibe/minic/internal/ast"
	"github.com/funvibe/minic/internal/testsupport"
	"github.com/funvibe/minic/internal/types"
)

// Spec §3's invariants: every non-root node has a non-nil parent, every
// declaration node has a non-nil symbol. Exercised the way the teacher's
// analyzer tests exercise invariants — by compiling a small program and
// inspecting the resulting tree, not by calling binder internals directly.

func TestVarGetsSymbolAndParent(t *testing.T) {
	result := testsupport.CompileSource(`var x = 1`)
	stmt := result.Module.Statements[0].(*ast.Var)

	if stmt.Symbol == nil {
		t.Fatal("expected Var to have a non-nil symbol after binding")
	}
	if stmt.Name.GetParent() != ast.Node(stmt) {
		t.Error("expected Var.Name's parent to be the Var node")
	}
	if stmt.GetParent() != ast.Node(result.Module) {
		t.Error("expected top-level Var's parent to be the module")
	}
}

func TestTypeAliasAndVarShareNameDifferentMeanings(t *testing.T) {
	result := testsupport.CompileSource(`type X = number; var X = 1`)
	alias := result.Module.Statements[0].(*ast.TypeAlias)
	v := result.Module.Statements[1].(*ast.Var)

	if alias.Symbol == nil || v.Symbol == nil {
		t.Fatal("expected both declarations to have non-nil symbols")
	}
	if alias.Symbol != v.Symbol {
		t.Error("expected TypeAlias and Var sharing a name to aggregate into the same symbol")
	}
	if len(result.Errors()) != 0 {
		t.Errorf("expected no diagnostics for same-name different-meaning declarations, got %v", result.Errors())
	}
}

func TestRedeclareSameMeaningReportsOncePerExtraDeclaration(t *testing.T) {
	result := testsupport.CompileSource(`var x = 1; var x = 2; var x = 3`)
	errs := result.Errors()
	count := 0
	for _, e := range errs {
		if e.Code == "E_REDECLARE" {
			count++
		}
	}
	if count != 2 {
		t.Errorf("expected one E_REDECLARE diagnostic per extra declaration (2), got %d", count)
	}
}

func TestFunctionParametersDeclaredInOwnScope(t *testing.T) {
	result := testsupport.CompileSource(`var f = function (x: number): number { return x }`)
	v := result.Module.Statements[0].(*ast.Var)
	fn := v.Initializer.(*ast.Function)

	if fn.Locals == nil {
		t.Fatal("expected Function to have a populated Locals table")
	}
	sym, ok := fn.Locals.Get("x")
	if !ok {
		t.Fatal("expected parameter x to be declared in the function's own scope")
	}
	if !sym.HasMeaning(types.Value) {
		t.Error("expected parameter x to carry Value meaning")
	}
}

func TestObjectLiteralPropertiesGetParentAndSymbol(t *testing.T) {
	result := testsupport.CompileSource(`var p = { x: 1, y: 2 }`)
	v := result.Module.Statements[0].(*ast.Var)
	obj := v.Initializer.(*ast.Object)

	if obj.Symbol == nil {
		t.Fatal("expected object literal to have a synthesized symbol")
	}
	for _, prop := range obj.Properties {
		if prop.Symbol == nil {
			t.Errorf("expected property %s to have a non-nil symbol", prop.Name.Text)
		}
		if prop.GetParent() != ast.Node(obj) {
			t.Errorf("expected property %s's parent to be the object literal", prop.Name.Text)
		}
	}
}
