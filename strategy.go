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
	"fmt"

	"github.com/google/go-cmp/cmp"
)

// Strategy computes the snapshot for a value under test and decides
// whether a recorded expectation still matches it. MatchInline takes
// one as its actual-value argument, rather than a bare string, so that
// computing the snapshot (which might mean rendering a struct, formatting
// a response body, etc.) can be deferred until it's known to be needed,
// and so that what counts as "matching" is pluggable.
type Strategy interface {
	// Snapshot renders the value under test to its canonical string
	// form. Called at most once per assertion.
	Snapshot(ctx context.Context) (string, error)
	// Diff reports whether expected and actual match, and if not, a
	// human-readable description of how they differ.
	Diff(expected, actual string) (diff string, equal bool)
}

// String wraps an already-rendered string as a Strategy, using
// TextDiff for comparison. This is the common case: most snapshot
// values are already strings (formatted output, serialized structs,
// rendered templates) by the time they reach MatchInline.
func String(value string) Strategy {
	return stringStrategy{value: value, diff: TextDiff{}}
}

// StringFunc defers rendering until Snapshot is called, so that
// computing value can be skipped entirely when record mode already
// knows the assertion will be a no-op is not something Go can detect
// ahead of time; the deferral instead matters for values that are
// expensive or fallible to render (e.g. RPCs), letting Snapshot return
// an error from actually performing that work.
func StringFunc(value func(ctx context.Context) (string, error)) Strategy {
	return funcStrategy{value: value, diff: TextDiff{}}
}

type stringStrategy struct {
	value string
	diff  TextDiff
}

func (s stringStrategy) Snapshot(context.Context) (string, error) { return s.value, nil }
func (s stringStrategy) Diff(expected, actual string) (string, bool) {
	return s.diff.Diff(expected, actual)
}

type funcStrategy struct {
	value func(ctx context.Context) (string, error)
	diff  TextDiff
}

func (s funcStrategy) Snapshot(ctx context.Context) (string, error) { return s.value(ctx) }
func (s funcStrategy) Diff(expected, actual string) (string, bool) {
	return s.diff.Diff(expected, actual)
}

// MultiStrategy is an optional extension a Strategy can implement to
// supply additional, independently-diffed facets of the value under
// test, each addressed by a label. It's what snaptest.Named's labeled
// slots are checked against: MatchInline looks up the Strategy for a
// label via Named, exactly the way io.ReaderFrom is an optional
// extension of io.Reader rather than a change to io.Reader itself.
type MultiStrategy interface {
	Strategy
	// Named returns the Strategy for an additional labeled snapshot, or
	// ok=false if this value has no facet under that label.
	Named(label string) (strategy Strategy, ok bool)
}

// TextDiff is the default comparison strategy: byte-for-byte equality,
// with a readable diff on mismatch built from go-cmp's line-oriented
// text differ.
type TextDiff struct{}

// Diff reports whether expected == actual, and when they differ,
// formats a unified-style diff via cmp.Diff.
func (TextDiff) Diff(expected, actual string) (diff string, equal bool) {
	if expected == actual {
		return "", true
	}
	return fmt.Sprintf("--- expected\n+++ actual\n%s", cmp.Diff(expected, actual)), false
}
