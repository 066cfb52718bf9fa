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
	"strings"

	"github.com/dave/dst"

	"github.com/irfansharif/snaptest/internal/stringutil"
)

// synthesizeClosure builds the replacement func literal for a snapshot
// payload, indented to match the call site: `func() string { return
// <literal> }`, where <literal> is a multi-line raw string (or, if the
// payload can't be embedded raw, a quoted, escaped string built line by
// line) indented one level past the call.
func synthesizeClosure(payload, leadingTrivia, indentUnit string) *dst.FuncLit {
	bodyPrefix := leadingTrivia + indentUnit

	lit := &dst.BasicLit{Kind: token.STRING, Value: stringLiteral(payload, bodyPrefix)}

	fn := &dst.FuncLit{
		Type: &dst.FuncType{
			Params:  &dst.FieldList{},
			Results: &dst.FieldList{List: []*dst.Field{{Type: dst.NewIdent("string")}}},
		},
		Body: &dst.BlockStmt{
			List: []dst.Stmt{&dst.ReturnStmt{Results: []dst.Expr{lit}}},
		},
	}
	return fn
}

// stringLiteral returns the Go source text of a string literal holding
// payload, laid out as:
//
//	`
//	<prefix><payload line 1>
//	<prefix><payload line N>
//	<prefix>`
//
// using a raw (backtick) literal when possible, falling back to a
// quoted, escaped, newline-joined literal when payload itself contains
// a backtick or carriage return.
func stringLiteral(payload, prefix string) string {
	if !stringutil.NeedsQuotedFallback(payload) {
		var b strings.Builder
		b.WriteByte('`')
		b.WriteByte('\n')
		b.WriteString(stringutil.Indent(payload, prefix))
		b.WriteByte('\n')
		b.WriteString(prefix)
		b.WriteByte('`')
		return b.String()
	}

	lines := strings.Split(payload, "\n")
	var b strings.Builder
	b.WriteString(strconv.Quote(lines[0]))
	for _, line := range lines[1:] {
		b.WriteString(" +\n")
		b.WriteString(prefix)
		b.WriteString(strconv.Quote("\n" + line))
	}
	return b.String()
}
