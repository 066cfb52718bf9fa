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

package snaptest

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStringStrategy(t *testing.T) {
	s := String("hello")
	got, err := s.Snapshot(context.Background())
	require.NoError(t, err)
	require.Equal(t, "hello", got)
}

func TestStringFuncStrategy(t *testing.T) {
	s := StringFunc(func(ctx context.Context) (string, error) {
		return "computed", nil
	})
	got, err := s.Snapshot(context.Background())
	require.NoError(t, err)
	require.Equal(t, "computed", got)
}

func TestStringFuncStrategyError(t *testing.T) {
	wantErr := errors.New("boom")
	s := StringFunc(func(ctx context.Context) (string, error) {
		return "", wantErr
	})
	_, err := s.Snapshot(context.Background())
	require.ErrorIs(t, err, wantErr)
}

func TestTextDiffEqual(t *testing.T) {
	diff, equal := TextDiff{}.Diff("same", "same")
	require.True(t, equal)
	require.Empty(t, diff)
}

func TestTextDiffMismatch(t *testing.T) {
	diff, equal := TextDiff{}.Diff("expected", "actual")
	require.False(t, equal)
	require.Contains(t, diff, "expected")
	require.Contains(t, diff, "--- expected")
}
