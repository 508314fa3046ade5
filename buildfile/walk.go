// Copyright 2025 The Chromium Authors
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package buildfile

import (
	"go.starlark.net/syntax"
)

// CallSite is one function call found in a build description file.
type CallSite struct {
	// Fun is the callee name. Only calls of a plain identifier are
	// reported; method calls like mod.find_dep() are not.
	Fun string

	// Pos is the start position of the call expression.
	Pos syntax.Position

	// Conditional reports whether the call site is lexically inside a
	// branch of a conditional construct: an if/elif/else statement, a
	// conditional expression, or a comprehension with an if clause.
	Conditional bool

	call *syntax.CallExpr
}

// Positional returns the i-th positional argument of the call.
func (c CallSite) Positional(i int) (syntax.Expr, bool) {
	n := 0
	for _, arg := range c.call.Args {
		if isKeywordArg(arg) || isStarArg(arg) {
			continue
		}
		if n == i {
			return arg, true
		}
		n++
	}
	return nil, false
}

// Keyword returns the value of the named keyword argument of the call.
func (c CallSite) Keyword(name string) (syntax.Expr, bool) {
	for _, arg := range c.call.Args {
		bin, ok := arg.(*syntax.BinaryExpr)
		if !ok || bin.Op != syntax.EQ {
			continue
		}
		if id, ok := bin.X.(*syntax.Ident); ok && id.Name == name {
			return bin.Y, true
		}
	}
	return nil, false
}

// keyword arguments are represented as name=value binary expressions
// in the call's argument list.
func isKeywordArg(arg syntax.Expr) bool {
	bin, ok := arg.(*syntax.BinaryExpr)
	if !ok || bin.Op != syntax.EQ {
		return false
	}
	_, ok = bin.X.(*syntax.Ident)
	return ok
}

func isStarArg(arg syntax.Expr) bool {
	un, ok := arg.(*syntax.UnaryExpr)
	return ok && (un.Op == syntax.STAR || un.Op == syntax.STARSTAR)
}

// StringLiteral returns the value of e if it is a string literal.
func StringLiteral(e syntax.Expr) (string, bool) {
	lit, ok := e.(*syntax.Literal)
	if !ok || lit.Token != syntax.STRING {
		return "", false
	}
	s, ok := lit.Value.(string)
	return s, ok
}

// BoolLiteral returns the value of e if it is a True or False literal.
// The starlark grammar represents booleans as predeclared identifiers,
// not literal tokens.
func BoolLiteral(e syntax.Expr) (value, ok bool) {
	id, isIdent := e.(*syntax.Ident)
	if !isIdent {
		return false, false
	}
	switch id.Name {
	case "True":
		return true, true
	case "False":
		return false, true
	}
	return false, false
}

// WalkCalls visits every call site in the file in document order
// (depth first, left to right; a nested call is visited after the call
// that encloses it since the enclosing call starts earlier in the
// text) and reports for each whether it is conditionally reached.
func (f *File) WalkCalls(fn func(c CallSite)) {
	w := callWalker{fn: fn}
	w.stmts(f.syn.Stmts, false)
}

type callWalker struct {
	fn func(CallSite)
}

func (w callWalker) stmts(stmts []syntax.Stmt, cond bool) {
	for _, s := range stmts {
		w.stmt(s, cond)
	}
}

func (w callWalker) stmt(s syntax.Stmt, cond bool) {
	switch s := s.(type) {
	case *syntax.AssignStmt:
		w.expr(s.LHS, cond)
		w.expr(s.RHS, cond)
	case *syntax.BranchStmt:
	case *syntax.DefStmt:
		w.exprs(s.Params, cond)
		w.stmts(s.Body, cond)
	case *syntax.ExprStmt:
		w.expr(s.X, cond)
	case *syntax.ForStmt:
		w.expr(s.X, cond)
		w.stmts(s.Body, cond)
	case *syntax.WhileStmt:
		w.expr(s.Cond, cond)
		w.stmts(s.Body, cond)
	case *syntax.IfStmt:
		// The condition itself is always reached; only the branches
		// are conditional. An elif shows up as a nested IfStmt in
		// False and stays conditional through the recursion.
		w.expr(s.Cond, cond)
		w.stmts(s.True, true)
		w.stmts(s.False, true)
	case *syntax.LoadStmt:
	case *syntax.ReturnStmt:
		if s.Result != nil {
			w.expr(s.Result, cond)
		}
	}
}

func (w callWalker) exprs(exprs []syntax.Expr, cond bool) {
	for _, e := range exprs {
		w.expr(e, cond)
	}
}

func (w callWalker) expr(e syntax.Expr, cond bool) {
	switch e := e.(type) {
	case nil:
	case *syntax.BinaryExpr:
		w.expr(e.X, cond)
		w.expr(e.Y, cond)
	case *syntax.CallExpr:
		if id, ok := e.Fn.(*syntax.Ident); ok {
			start, _ := e.Span()
			w.fn(CallSite{
				Fun:         id.Name,
				Pos:         start,
				Conditional: cond,
				call:        e,
			})
		}
		w.expr(e.Fn, cond)
		w.exprs(e.Args, cond)
	case *syntax.Comprehension:
		// The body textually precedes the clauses. A body guarded by
		// an if clause is conditionally reached.
		hasIf := false
		for _, cl := range e.Clauses {
			if _, ok := cl.(*syntax.IfClause); ok {
				hasIf = true
			}
		}
		w.expr(e.Body, cond || hasIf)
		for _, cl := range e.Clauses {
			switch cl := cl.(type) {
			case *syntax.ForClause:
				w.expr(cl.X, cond)
			case *syntax.IfClause:
				w.expr(cl.Cond, cond)
			}
		}
	case *syntax.CondExpr:
		// Document order: true-branch, condition, false-branch.
		w.expr(e.True, true)
		w.expr(e.Cond, cond)
		w.expr(e.False, true)
	case *syntax.DictExpr:
		w.exprs(e.List, cond)
	case *syntax.DictEntry:
		w.expr(e.Key, cond)
		w.expr(e.Value, cond)
	case *syntax.DotExpr:
		w.expr(e.X, cond)
	case *syntax.Ident:
	case *syntax.IndexExpr:
		w.expr(e.X, cond)
		w.expr(e.Y, cond)
	case *syntax.LambdaExpr:
		w.exprs(e.Params, cond)
		w.expr(e.Body, cond)
	case *syntax.ListExpr:
		w.exprs(e.List, cond)
	case *syntax.Literal:
	case *syntax.ParenExpr:
		w.expr(e.X, cond)
	case *syntax.SliceExpr:
		w.expr(e.X, cond)
		w.expr(e.Lo, cond)
		w.expr(e.Hi, cond)
		w.expr(e.Step, cond)
	case *syntax.TupleExpr:
		w.exprs(e.List, cond)
	case *syntax.UnaryExpr:
		w.expr(e.X, cond)
	}
}
