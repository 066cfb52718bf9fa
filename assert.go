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
	"runtime"

	"github.com/irfansharif/snaptest/internal/recmode"
	"github.com/irfansharif/snaptest/internal/record"
	"github.com/irfansharif/snaptest/internal/source"
)

// namedClosure is the runtime counterpart of a Go-native labeled
// trailing closure, snaptest.Named("label", func() string {...}),
// recognized syntactically by internal/rewrite as a two-argument call
// to a function named Named.
type namedClosure struct {
	label string
	fn    func() string
}

// Named marks fn as an additional, labeled embedded snapshot within a
// single MatchInline call, alongside the primary (unlabeled) one. The
// Strategy it's checked against comes from actual.(MultiStrategy)'s
// Named method, looked up by the same label.
//
// To start a new labeled snapshot, write it with an empty body -
// snaptest.Named("extra", func() string { return "" }) - the same
// bootstrap convention MatchInline's own primary closure uses.
func Named(label string, fn func() string) interface{} {
	return namedClosure{label: label, fn: fn}
}

// MatchInline asserts that actual's snapshot matches the text embedded
// in expected, the trailing closure(s) written at the call site.
//
// With no expected argument at all, or one whose body returns "", the
// assertion fails and records the freshly computed snapshot for
// Main's eventual flush to write back into the call site. Run the test
// again afterward to confirm the new snapshot is exactly what's wanted.
//
// Additional, labeled facets of actual can be checked in the same call
// via Named; see MultiStrategy.
//
// MatchInline is MatchInlineContext with context.Background(): use
// MatchInlineContext directly when actual's Snapshot performs
// context-bearing I/O, or to force or suppress recording for this call
// alone via recmode.WithRecording without touching the ambient switch.
func MatchInline(t TestingT, actual Strategy, expected ...interface{}) {
	t.Helper()
	MatchInlineContext(context.Background(), t, actual, expected...)
}

// MatchInlineContext is MatchInline with an explicit context, threaded
// through to actual's Snapshot and consulted for a recmode.WithRecording
// override. A canceled ctx aborts before anything is recorded, failing
// with ctx.Err() as the cause.
func MatchInlineContext(ctx context.Context, t TestingT, actual Strategy, expected ...interface{}) {
	t.Helper()

	if ctx == nil {
		ctx = context.Background()
	}

	pc, file, line, ok := runtime.Caller(1)
	if fn := runtime.FuncForPC(pc); ok && fn != nil && fn.Name() == "github.com/irfansharif/snaptest.MatchInline" {
		// Called through MatchInline: the assertion's own call site is
		// one frame further up.
		_, file, line, ok = runtime.Caller(2)
	}
	if !ok {
		t.Fatalf("snaptest: %s: could not determine call site", t.Name())
		return
	}

	if len(expected) == 0 {
		evaluate(ctx, t, file, line, record.DefaultDescriptor, actual, "")
		return
	}

	for i, e := range expected {
		switch v := e.(type) {
		case func() string:
			if i != 0 {
				t.Fatalf("snaptest: %s: a bare closure is only valid as MatchInline's first expected argument; wrap additional ones in snaptest.Named", t.Name())
				continue
			}
			evaluate(ctx, t, file, line, record.Descriptor{Label: "matches", Offset: i}, actual, v())
		case namedClosure:
			strategy, ok := namedStrategy(actual, v.label)
			if !ok {
				t.Fatalf("snaptest: %s: no snapshot named %q: %T does not implement snaptest.MultiStrategy, or has no such facet", t.Name(), v.label, actual)
				continue
			}
			evaluate(ctx, t, file, line, record.Descriptor{Label: v.label, Offset: i}, strategy, v.fn())
		default:
			t.Fatalf("snaptest: %s: unsupported expected argument %T at position %d; use a func() string literal or snaptest.Named", t.Name(), e, i)
		}
	}
}

func namedStrategy(actual Strategy, label string) (Strategy, bool) {
	multi, ok := actual.(MultiStrategy)
	if !ok {
		return nil, false
	}
	return multi.Named(label)
}

// evaluate computes strategy's snapshot, compares it against the text
// already embedded for desc (closureText, "" meaning nothing's been
// recorded yet), and either passes silently, records a pending edit and
// fails with a "needs a rerun" message, or fails with a diff.
func evaluate(ctx context.Context, t TestingT, file string, line int, desc record.Descriptor, strategy Strategy, closureText string) {
	t.Helper()

	got, err := strategy.Snapshot(ctx)
	if cause := ctx.Err(); cause != nil {
		t.Fatalf("snaptest: %s: canceled: %v", t.Name(), cause)
		return
	}
	if err != nil {
		t.Fatalf("snaptest: %s: computing snapshot: %v", t.Name(), err)
		return
	}

	var expected *string
	if closureText != "" {
		expected = &closureText
	}

	recording := recmode.FromContext(ctx)
	site := resolveCallSite(source.Global, file, line, "MatchInline", desc)

	edit := record.Edit{
		Expected:     expected,
		Actual:       got,
		WasRecording: recording,
		Descriptor:   desc,
		FunctionName: "MatchInline",
		File:         file,
		Line:         line,
		Column:       site.column,
	}

	where := fmt.Sprintf("%s:%d", file, site.reportLine)
	if site.testFunc != "" {
		where = fmt.Sprintf("%s (%s)", where, site.testFunc)
	}

	switch {
	case expected == nil:
		record.Global.Record(edit)
		t.Fatalf("%s: snaptest: no snapshot recorded yet for %q; rerun to verify the recorded value", where, desc.Label)
	case recording:
		// Recording mode enqueues and fails regardless of whether the
		// embedded value already matches: it's forcing a fresh write,
		// not asking whether one is needed.
		record.Global.Record(edit)
		t.Fatalf("%s: snaptest: snapshot %q updated; rerun to verify", where, desc.Label)
	case *expected == got:
		return
	default:
		diff, equal := strategy.Diff(*expected, got)
		if equal {
			return
		}
		t.Fatalf("%s: snaptest: snapshot %q does not match:\n%s", where, desc.Label, diff)
	}
}

