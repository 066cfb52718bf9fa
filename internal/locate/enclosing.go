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

package locate

import (
	"go/ast"

	"golang.org/x/tools/go/ast/astutil"

	"github.com/irfansharif/snaptest/internal/source"
)

// EnclosingFuncName names the test function a call site lives in, for
// failure messages like "example_test.go:12 (TestGreeting): snaptest:
// ...". It walks the
// path from the file root down to call using astutil.PathEnclosingInterval
// rather than a second bespoke ast.Inspect, since this is exactly the
// "what contains this node" query the function exists for. Returns ""
// if call isn't (for whatever reason) inside a function declaration -
// package-level var initializers, say.
func EnclosingFuncName(p *source.Parsed, call *ast.CallExpr) string {
	path, _ := astutil.PathEnclosingInterval(p.Ast, call.Pos(), call.End())
	for _, n := range path {
		if fn, ok := n.(*ast.FuncDecl); ok {
			return fn.Name.Name
		}
	}
	return ""
}
