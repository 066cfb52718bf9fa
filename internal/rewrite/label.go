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

package rewrite

import (
	"go/token"
	"strconv"

	"github.com/dave/dst"
)

func unquoteLabel(lit string) (string, error) {
	return strconv.Unquote(lit)
}

// buildNamedCall synthesizes `snaptest.Named("label", <body>)`.
func buildNamedCall(label string, body *dst.FuncLit) *dst.CallExpr {
	return &dst.CallExpr{
		Fun: &dst.SelectorExpr{
			X:   dst.NewIdent("snaptest"),
			Sel: dst.NewIdent(namedFuncIdent),
		},
		Args: []dst.Expr{
			&dst.BasicLit{Kind: token.STRING, Value: strconv.Quote(label)},
			body,
		},
	}
}
