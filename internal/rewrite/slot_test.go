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

	"github.com/irfansharif/snaptest/internal/record"
)

func TestResolveSlotNewLeadingClosure(t *testing.T) {
	args := []dst.Expr{dst.NewIdent("t")}
	action := ResolveSlot(args, record.DefaultDescriptor, false)
	require.Equal(t, ActionSetLeading, action.Kind)
	require.Equal(t, 1, action.Index)
}

func TestResolveSlotReplaceLeadingWhileRecording(t *testing.T) {
	args := []dst.Expr{dst.NewIdent("t"), bareFuncLit()}
	action := ResolveSlot(args, record.DefaultDescriptor, true)
	require.Equal(t, ActionReplace, action.Kind)
	require.Equal(t, 1, action.Index)
}

func TestResolveSlotLeadingMismatchNotRecordingIsFatal(t *testing.T) {
	// A stale leading closure whose payload doesn't match actual is
	// surfaced as a normal assertion failure by the caller, not reached
	// here; ResolveSlot is only asked to rewrite when replay produced a
	// mismatch *and* the descriptor targets an existing closure outside
	// record mode with no label to fall back on.
	args := []dst.Expr{dst.NewIdent("t"), bareFuncLit()}
	action := ResolveSlot(args, record.DefaultDescriptor, false)
	require.Equal(t, ActionFatal, action.Kind)
	require.Error(t, action.Err)
}

func TestResolveSlotLabeledMatchLeave(t *testing.T) {
	args := []dst.Expr{dst.NewIdent("t"), bareFuncLit(), namedCall("extra")}
	desc := record.Descriptor{Label: "extra", Offset: 1}
	action := ResolveSlot(args, desc, false)
	require.Equal(t, ActionLeave, action.Kind)
	require.Equal(t, 2, action.Index)
}

// forceWrite is true either because the assertion ran under global
// record mode, or because the slot's existing contents were never an
// actual recorded snapshot (the hand-written bootstrap stub); either
// way a matching label still gets overwritten rather than left alone.
func TestResolveSlotLabeledMatchReplaceWhileRecording(t *testing.T) {
	args := []dst.Expr{dst.NewIdent("t"), bareFuncLit(), namedCall("extra")}
	desc := record.Descriptor{Label: "extra", Offset: 1}
	action := ResolveSlot(args, desc, true)
	require.Equal(t, ActionReplace, action.Kind)
	require.Equal(t, 2, action.Index)
}

func TestResolveSlotLabeledMismatchInsertsBefore(t *testing.T) {
	args := []dst.Expr{dst.NewIdent("t"), bareFuncLit(), namedCall("other")}
	desc := record.Descriptor{Label: "extra", Offset: 1}
	action := ResolveSlot(args, desc, false)
	require.Equal(t, ActionInsertBefore, action.Kind)
	require.Equal(t, 2, action.Index)
}

func TestResolveSlotAppendWithPadding(t *testing.T) {
	args := []dst.Expr{dst.NewIdent("t")}
	desc := record.Descriptor{Label: "extra", Offset: 2}
	action := ResolveSlot(args, desc, false)
	require.Equal(t, ActionAppend, action.Kind)
	require.Equal(t, 2, action.Pad)
	require.Equal(t, len(args), action.Index)
}

func TestResolveSlotAppendNoPadding(t *testing.T) {
	args := []dst.Expr{dst.NewIdent("t"), bareFuncLit()}
	desc := record.Descriptor{Label: "extra", Offset: 1}
	action := ResolveSlot(args, desc, false)
	require.Equal(t, ActionAppend, action.Kind)
	require.Equal(t, 0, action.Pad)
}
