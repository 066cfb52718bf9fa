// Copyright 2024 Irfan Sharif.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or
// implied. See the License for the specific language governing
// permissions and limitations under the License.

// Package rewrite splices synthesized snapshot literals into the right
// argument slot of the right call, without disturbing anything else in
// the file.
//
// Go has no trailing-closure call syntax, so the slot-resolution rules
// in the spec this package implements (replace in place / set the
// leading slot / overwrite a matching label / insert before a mismatched
// label / append / pad-append) are adapted onto a Go-native stand-in: a
// maximal run of function-literal arguments at the tail of a call's
// argument list. The first one in that run is the unlabeled "matches"
// closure; any after it are snaptest.Named(label, func() string {...})
// calls.
package rewrite

import (
	"go/token"

	"github.com/dave/dst"
)

const namedFuncIdent = "Named"

// closureRun describes the maximal trailing run of closure-like
// arguments in a call's Args: bare function literals or
// snaptest.Named(label, fn) calls.
type closureRun struct {
	start int // index into Args where the run begins; == len(Args) if empty
}

func findClosureRun(args []dst.Expr) closureRun {
	i := len(args)
	for i > 0 && isClosureArg(args[i-1]) {
		i--
	}
	return closureRun{start: i}
}

func isClosureArg(e dst.Expr) bool {
	switch v := e.(type) {
	case *dst.FuncLit:
		return true
	case *dst.CallExpr:
		return calleeName(v.Fun) == namedFuncIdent && len(v.Args) == 2
	}
	return false
}

// calleeName returns the base identifier of a call's callee, ignoring
// any package/receiver qualifier: "snaptest.Named" and "Named" both
// yield "Named". The locator and rewriter only ever need the base name,
// matching the spec's "functionName" being the called expression's base
// name.
func calleeName(fun dst.Expr) string {
	switch f := fun.(type) {
	case *dst.Ident:
		return f.Name
	case *dst.SelectorExpr:
		return f.Sel.Name
	}
	return ""
}

// closureLabel returns the label a closure-like argument is addressed
// by: "" for a bare function literal (the unlabeled leading slot), or
// the string literal passed as the first argument to Named.
func closureLabel(e dst.Expr) (label string, ok bool) {
	switch v := e.(type) {
	case *dst.FuncLit:
		return "", true
	case *dst.CallExpr:
		if calleeName(v.Fun) != namedFuncIdent || len(v.Args) != 2 {
			return "", false
		}
		lit, ok := v.Args[0].(*dst.BasicLit)
		if !ok || lit.Kind != token.STRING {
			return "", false
		}
		unquoted, err := unquoteLabel(lit.Value)
		if err != nil {
			return "", false
		}
		return unquoted, true
	}
	return "", false
}

// bodyOf returns the *dst.FuncLit a closure-like argument carries,
// whether it's bare or wrapped in Named.
func bodyOf(e dst.Expr) *dst.FuncLit {
	switch v := e.(type) {
	case *dst.FuncLit:
		return v
	case *dst.CallExpr:
		if fn, ok := v.Args[1].(*dst.FuncLit); ok {
			return fn
		}
	}
	return nil
}

// withBody returns a copy of the closure-like argument e with its
// function literal replaced by newBody, preserving the Named(label, ...)
// wrapper if present.
func withBody(e dst.Expr, newBody *dst.FuncLit) dst.Expr {
	if call, ok := e.(*dst.CallExpr); ok {
		clone := dst.Clone(call).(*dst.CallExpr)
		clone.Args[1] = newBody
		return clone
	}
	return newBody
}
