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

package locate_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/irfansharif/snaptest/internal/locate"
	"github.com/irfansharif/snaptest/internal/record"
	"github.com/irfansharif/snaptest/internal/source"
)

func parse(t *testing.T, src string) *source.Parsed {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "example_test.go")
	require.NoError(t, os.WriteFile(path, []byte(src), 0o644))
	p, err := source.NewCache().Get(path)
	require.NoError(t, err)
	return p
}

const fixture = `package example

import "testing"

func TestGreeting(t *testing.T) {
	snaptest.MatchInline(t, snaptest.String("hi"), func() string {
		return "hi"
	})
}
`

func TestResolveColumnUnique(t *testing.T) {
	p := parse(t, fixture)
	col, ok := locate.ResolveColumn(p, 6, "MatchInline")
	require.True(t, ok)
	require.Greater(t, col, 0)
}

func TestResolveColumnAmbiguous(t *testing.T) {
	src := `package example

func TestTwo(t *testing.T) {
	MatchInline(t, a, f); MatchInline(t, b, g)
}
`
	p := parse(t, src)
	_, ok := locate.ResolveColumn(p, 4, "MatchInline")
	require.False(t, ok)
}

func TestLocateExistingClosure(t *testing.T) {
	p := parse(t, fixture)
	col, ok := locate.ResolveColumn(p, 6, "MatchInline")
	require.True(t, ok)

	line, ok := locate.Locate(p, 6, col, record.DefaultDescriptor)
	require.True(t, ok)
	require.Equal(t, 6, line)
}

func TestLocateMissingSlot(t *testing.T) {
	p := parse(t, fixture)
	col, ok := locate.ResolveColumn(p, 6, "MatchInline")
	require.True(t, ok)

	_, ok = locate.Locate(p, 6, col, record.Descriptor{Label: "extra", Offset: 1})
	require.False(t, ok)
}
