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
	"fmt"

	"github.com/dave/dst"

	"github.com/irfansharif/snaptest/internal/record"
)

// ActionKind is what the rewriter must do at a call site to satisfy one
// pending edit.
type ActionKind int

const (
	// ActionReplace overwrites the body of the closure-like argument
	// already at Index.
	ActionReplace ActionKind = iota
	// ActionSetLeading sets (or appends, if absent) the unlabeled
	// leading closure.
	ActionSetLeading
	// ActionLeave means an existing labeled closure already matches;
	// nothing changes.
	ActionLeave
	// ActionInsertBefore inserts a new labeled closure immediately
	// before the mismatched one currently occupying Index.
	ActionInsertBefore
	// ActionAppend appends a new labeled closure, after inserting Pad
	// filler closures to reach Index.
	ActionAppend
	// ActionFatal means the descriptor is inconsistent with the current
	// source: a caller-supplied offset that can't be satisfied safely.
	ActionFatal
)

// Action is the resolved slot-resolution outcome for one edit against
// one call's current argument list.
type Action struct {
	Kind  ActionKind
	Index int
	Pad   int
	Err   error
}

// ResolveSlot implements the spec's slot-resolution table: given a
// call's current arguments and a descriptor naming the target slot, it
// decides what the rewriter must do. forceWrite is true whenever the
// edit must land regardless of whatever the slot currently holds:
// either because the assertion ran under global record mode, or
// because Expected == nil, meaning the slot's current contents (if
// any) were never an actual recorded snapshot to begin with — the same
// "nothing trustworthy is here yet" signal that lets ActionSetLeading
// create a brand new slot unconditionally.
func ResolveSlot(args []dst.Expr, desc record.Descriptor, forceWrite bool) Action {
	run := findClosureRun(args)
	n := len(args) - run.start // number of existing closure-like args
	index := run.start + desc.Offset

	if desc.Offset < n {
		// The slot already holds a closure-like argument.
		existing := args[index]
		label, _ := closureLabel(existing)

		if desc.Offset == 0 {
			if forceWrite {
				return Action{Kind: ActionReplace, Index: index}
			}
			return Action{Kind: ActionFatal, Err: fmt.Errorf(
				"snaptest: descriptor offset 0 targets an existing leading closure while not recording")}
		}

		if label == desc.Label {
			if forceWrite {
				return Action{Kind: ActionReplace, Index: index}
			}
			return Action{Kind: ActionLeave, Index: index}
		}
		return Action{Kind: ActionInsertBefore, Index: index}
	}

	// The slot doesn't exist yet.
	if desc.Offset == 0 {
		return Action{Kind: ActionSetLeading, Index: index}
	}
	return Action{Kind: ActionAppend, Index: len(args), Pad: desc.Offset - n}
}
