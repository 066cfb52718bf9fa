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

package source

import (
	"go/ast"
)

// CalleeName returns the base identifier of a call expression's callee,
// ignoring any package/receiver qualifier: "snaptest.MatchInline" and
// "MatchInline" both yield "MatchInline".
func CalleeName(call *ast.CallExpr) string {
	switch f := call.Fun.(type) {
	case *ast.Ident:
		return f.Name
	case *ast.SelectorExpr:
		return f.Sel.Name
	}
	return ""
}

// CallsOnLine returns every call expression whose callee ends on the
// given (1-based) source line, in the order they're encountered walking
// the tree.
func (p *Parsed) CallsOnLine(line int) []*ast.CallExpr {
	var calls []*ast.CallExpr
	ast.Inspect(p.Ast, func(n ast.Node) bool {
		call, ok := n.(*ast.CallExpr)
		if !ok {
			return true
		}
		if p.Fset.Position(call.Fun.End()).Line == line {
			calls = append(calls, call)
		}
		return true
	})
	return calls
}

// CallAt returns the unique call expression whose callee ends at the
// given (line, column), if any. Matching on the end of the callee
// (rather than the start of the whole call) is what lets a failure
// message point at "the call", independent of how many arguments or
// trailing closures follow.
func (p *Parsed) CallAt(line, column int) (*ast.CallExpr, bool) {
	var found *ast.CallExpr
	ast.Inspect(p.Ast, func(n ast.Node) bool {
		if found != nil {
			return false
		}
		call, ok := n.(*ast.CallExpr)
		if !ok {
			return true
		}
		pos := p.Fset.Position(call.Fun.End())
		if pos.Line == line && pos.Column == column {
			found = call
			return false
		}
		return true
	})
	return found, found != nil
}
