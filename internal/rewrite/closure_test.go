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
	"testing"

	"github.com/dave/dst"
	"github.com/stretchr/testify/require"
)

func bareFuncLit() *dst.FuncLit {
	return &dst.FuncLit{
		Type: &dst.FuncType{Params: &dst.FieldList{}},
		Body: &dst.BlockStmt{},
	}
}

func namedCall(label string) *dst.CallExpr {
	return buildNamedCall(label, bareFuncLit())
}

func TestFindClosureRun(t *testing.T) {
	t.Helper()

	ident := dst.NewIdent("t")

	t.Run("no trailing closures", func(t *testing.T) {
		args := []dst.Expr{ident, ident}
		require.Equal(t, 2, findClosureRun(args).start)
	})

	t.Run("one bare closure", func(t *testing.T) {
		args := []dst.Expr{ident, bareFuncLit()}
		require.Equal(t, 1, findClosureRun(args).start)
	})

	t.Run("bare plus named", func(t *testing.T) {
		args := []dst.Expr{ident, bareFuncLit(), namedCall("extra")}
		require.Equal(t, 1, findClosureRun(args).start)
	})

	t.Run("non-closure call isn't swallowed into the run", func(t *testing.T) {
		other := &dst.CallExpr{Fun: dst.NewIdent("String"), Args: []dst.Expr{ident}}
		args := []dst.Expr{ident, other, bareFuncLit()}
		require.Equal(t, 2, findClosureRun(args).start)
	})
}

func TestClosureLabel(t *testing.T) {
	label, ok := closureLabel(bareFuncLit())
	require.True(t, ok)
	require.Equal(t, "", label)

	label, ok = closureLabel(namedCall("extra"))
	require.True(t, ok)
	require.Equal(t, "extra", label)

	ident := dst.NewIdent("t")
	_, ok = closureLabel(ident)
	require.False(t, ok)
}

func TestWithBodyPreservesWrapper(t *testing.T) {
	newBody := bareFuncLit()

	replaced := withBody(bareFuncLit(), newBody)
	require.Same(t, newBody, replaced)

	wrapped := namedCall("extra")
	replaced = withBody(wrapped, newBody)
	call, ok := replaced.(*dst.CallExpr)
	require.True(t, ok)
	require.Same(t, newBody, call.Args[1])

	label, ok := closureLabel(call)
	require.True(t, ok)
	require.Equal(t, "extra", label)
}
