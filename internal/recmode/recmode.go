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

// Package recmode answers a single question for the rest of snaptest:
// is this assertion allowed to rewrite its call site? The spec models
// recording as a task-local, dynamically-scoped flag; Go has no
// equivalent of thread-local or task-local storage, so it's modeled
// here as two layers instead:
//
//   - An ambient, process-wide switch (Set/Ambient), flipped once at
//     the start of a run by the -snaptest.record flag. This is what
//     ordinary `go test -snaptest.record` runs use.
//   - A context.Context override (WithRecording/FromContext), for
//     callers that thread a context through to MatchInline and want to
//     force or suppress recording for a sub-tree of calls without
//     touching the ambient switch. An override always wins over the
//     ambient switch where present.
package recmode

import (
	"context"
	"sync/atomic"
)

var ambient atomic.Bool

// Set flips the process-wide recording switch. Called once, from flag
// parsing in Main, before any test runs.
func Set(recording bool) {
	ambient.Store(recording)
}

// Ambient reports the process-wide recording switch's current value.
func Ambient() bool {
	return ambient.Load()
}

type contextKey struct{}

// WithRecording returns a context carrying an explicit override for
// recording mode, taking precedence over the ambient switch for any
// call that observes it.
func WithRecording(ctx context.Context, recording bool) context.Context {
	return context.WithValue(ctx, contextKey{}, recording)
}

// FromContext reports whether recording is active for ctx: the
// context's override if one was set via WithRecording, otherwise the
// ambient process-wide switch. A nil ctx is treated as carrying no
// override.
func FromContext(ctx context.Context) bool {
	if ctx != nil {
		if v, ok := ctx.Value(contextKey{}).(bool); ok {
			return v
		}
	}
	return Ambient()
}
