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

// Package locate answers one question, read-only: given the (line,
// column) of a known assertion call and which closure slot it targets,
// what line is that closure on? Used to aim a failure message at the
// closure even when the surrounding rewrite hasn't happened yet (or
// never will, because the run isn't recording).
package locate

import (
	"go/ast"

	"github.com/irfansharif/snaptest/internal/record"
	"github.com/irfansharif/snaptest/internal/source"
)

// ResolveColumn recovers the column half of a call site's (line,
// column) key from just a line number and the callee's base name -
// runtime.Caller gives Go code a line but no column. If exactly one
// call on that line is named funcName, its column is unambiguous. Zero
// or more than one match is reported via ok=false: the spec treats an
// unlocatable call site as out of scope for rewriting, not as an error
// to paper over with a guess.
func ResolveColumn(p *source.Parsed, line int, funcName string) (column int, ok bool) {
	var match *ast.CallExpr
	for _, call := range p.CallsOnLine(line) {
		if source.CalleeName(call) != funcName {
			continue
		}
		if match != nil {
			return 0, false // ambiguous: more than one call to funcName on this line
		}
		match = call
	}
	if match == nil {
		return 0, false
	}
	return p.Fset.Position(match.Fun.End()).Column, true
}

// Locate reports the line of the closure-like argument that
// desc.Offset addresses in the call ending at (line, column). ok is
// false if the call site can't be found, or if it's found but the
// target slot doesn't currently hold a closure (nothing to point at
// yet) - in both cases the caller should fall back to the assertion's
// own line, per the spec's "call-site not locatable" error taxonomy.
func Locate(p *source.Parsed, line, column int, desc record.Descriptor) (targetLine int, ok bool) {
	call, ok := p.CallAt(line, column)
	if !ok {
		return 0, false
	}

	run := closureRunStart(call.Args)
	n := len(call.Args) - run
	if desc.Offset >= n {
		return 0, false
	}

	target := call.Args[run+desc.Offset]
	return p.Fset.Position(target.Pos()).Line, true
}

// closureRunStart mirrors internal/rewrite's findClosureRun, duplicated
// over go/ast instead of dst: locate only ever reads positions, so it
// has no need for dst's decorated, mutation-friendly tree.
func closureRunStart(args []ast.Expr) int {
	i := len(args)
	for i > 0 && isClosureArg(args[i-1]) {
		i--
	}
	return i
}

func isClosureArg(e ast.Expr) bool {
	switch v := e.(type) {
	case *ast.FuncLit:
		return true
	case *ast.CallExpr:
		return calleeName(v.Fun) == "Named" && len(v.Args) == 2
	}
	return false
}

func calleeName(fun ast.Expr) string {
	switch f := fun.(type) {
	case *ast.Ident:
		return f.Name
	case *ast.SelectorExpr:
		return f.Sel.Name
	}
	return ""
}
