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

// Package snaptest implements inline snapshot assertions: assertions whose
// expected value lives in the test source itself, as a trailing function
// literal argument, and which rewrite that source file in place when the
// snapshot is missing or stale.
//
//	func TestGreeting(t *testing.T) {
//	    snaptest.MatchInline(t, snaptest.String(greet("ada")), func() string {
//	        return `hello, ada`
//	    })
//	}
//
// Run the test once with no expected closure (or an empty one) and
// snaptest fails the test, then rewrites the call site with the closure
// populated from the freshly computed value. Run it again and it's a
// silent pass, same as any other assertion, until the underlying
// behavior changes.
//
// The three subsystems that do the real work live under internal/:
// internal/record accumulates pending edits across a test binary's
// run and flushes them once, internal/rewrite splices the synthesized
// closure into the right argument slot of the right call, and
// internal/locate resolves a (line, column) down to the line a failure
// message should point at. See MatchInline and Main for the public
// surface; everything else is plumbing those two lean on.
package snaptest
