// Package transform implements the Transform downstream collaborator
// (spec §6): it strips the type annotations the Checker already
// consumed and drops TypeAlias statements entirely, leaving a tree the
// Emitter can render without knowing anything about types.
//
// The in-place mutation style (rather than building a parallel
// annotation-free tree) is purpose-built for spec §6's Transform
// contract; the teacher repo has no analogous pass (its evaluator
// consumes its own AST directly, annotations and all).
package transform

import "github.com/funvibe/minic/internal/ast"

// Statements strips type annotations from stmts and drops every
// TypeAlias, returning the surviving statements in source order (spec
// §6 — "Transform receives the checked statement list").
func Statements(stmts []ast.Statement) []ast.Statement {
	out := make([]ast.Statement, 0, len(stmts))
	for _, stmt := range stmts {
		if _, ok := stmt.(*ast.TypeAlias); ok {
			continue
		}
		out = append(out, statement(stmt))
	}
	return out
}

func statement(stmt ast.Statement) ast.Statement {
	switch n := stmt.(type) {
	case *ast.Var:
		n.TypeName = nil
		expression(n.Initializer)
	case *ast.ExpressionStatement:
		expression(n.Expression)
	case *ast.Return:
		if n.Expression != nil {
			expression(n.Expression)
		}
	}
	return stmt
}

func expression(expr ast.Expression) {
	switch n := expr.(type) {
	case *ast.Object:
		for _, prop := range n.Properties {
			expression(prop.Initializer)
		}
	case *ast.Assignment:
		expression(n.Value)
	case *ast.Function:
		n.TypeName = nil
		n.TypeParameters = nil
		for _, p := range n.Parameters {
			p.TypeName = nil
		}
		n.Body = Statements(n.Body)
	case *ast.Call:
		expression(n.Expression)
		n.TypeArguments = nil
		for _, arg := range n.Arguments {
			expression(arg)
		}
	}
}
