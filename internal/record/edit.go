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

// Package record holds the process-wide recording buffer: the accumulated,
// not-yet-flushed set of source edits an inline-snapshot test run has
// produced, keyed by file.
package record

// Descriptor tells the rewriter which function-literal argument of a call
// holds the inline snapshot.
//
// Label names the argument to synthesize if a new trailing closure has to
// be appended (snaptest.Named wraps a closure with exactly this label).
// Offset is relative to the first function-literal argument in the
// call's trailing run of closures; 0 is that closure itself.
type Descriptor struct {
	Label  string
	Offset int
}

// DefaultDescriptor is used by MatchInline's lone, unlabeled expected
// closure.
var DefaultDescriptor = Descriptor{Label: "matches", Offset: 0}

// Edit is one recorded intent to update a call site on flush.
type Edit struct {
	// Expected is the snapshot text already embedded in source, or nil if
	// none was present.
	Expected *string
	// Actual is the freshly computed snapshot text. Always present.
	Actual string
	// WasRecording is whether the assertion ran in record mode: the
	// ambient switch, or a context override where one was set.
	WasRecording bool
	Descriptor   Descriptor
	// FunctionName is the called expression's base name. It is carried
	// with the edit; neither the rewriter nor the flush reads it.
	FunctionName string
	// Line is the line of the assertion call and Column the column at
	// which its callee expression ends; together they are the key the
	// rewriter matches call sites against.
	File   string
	Line   int
	Column int
}

// NoOp reports whether applying this edit would leave the source
// unchanged: a preexisting expected value byte-identical to the actual.
func (e Edit) NoOp() bool {
	return e.Expected != nil && *e.Expected == e.Actual
}
