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
	"bytes"
	"fmt"
	"sort"

	"github.com/dave/dst"
	"github.com/dave/dst/decorator"

	"github.com/irfansharif/snaptest/internal/record"
	"github.com/irfansharif/snaptest/internal/source"
)

// Rewrite applies every pending edit to parsed's tree and returns the
// serialized result along with whether anything actually changed. The
// edits are spliced into parsed's cached dst.File in place, one call
// site at a time; a failed rewrite returns an error without serializing
// anything, but call sites edited before the failure stay edited in the
// cached tree. The caller reports the first edit's line and aborts, per
// the spec's fatal-error handling for an unexpected syntactic state.
func Rewrite(parsed *source.Parsed, edits []record.Edit) ([]byte, bool, error) {
	sorted := sortEdits(edits)

	indentUnit := detectIndentUnit(parsed.Text)

	for _, group := range groupByCallSite(sorted) {
		if err := applyGroup(parsed, group, indentUnit); err != nil {
			return nil, false, err
		}
	}

	var buf bytes.Buffer
	if err := decorator.NewRestorer().Fprint(&buf, parsed.Dst); err != nil {
		return nil, false, fmt.Errorf("snaptest: serializing %s: %w", parsed.Path, err)
	}

	changed := !bytes.Equal(buf.Bytes(), parsed.Text)
	return buf.Bytes(), changed, nil
}

// sortEdits stably orders edits by (line asc, column asc, offset asc),
// per the spec: "edits are sorted by (line asc, trailingClosureOffset
// asc)... When multiple edits share the same call site they are
// consumed together in that order."
func sortEdits(edits []record.Edit) []record.Edit {
	sorted := make([]record.Edit, len(edits))
	copy(sorted, edits)
	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]
		if a.Line != b.Line {
			return a.Line < b.Line
		}
		if a.Column != b.Column {
			return a.Column < b.Column
		}
		return a.Descriptor.Offset < b.Descriptor.Offset
	})
	return sorted
}

type callSiteGroup struct {
	line, column int
	edits        []record.Edit
}

func groupByCallSite(sorted []record.Edit) []callSiteGroup {
	var groups []callSiteGroup
	for _, e := range sorted {
		if n := len(groups); n > 0 && groups[n-1].line == e.Line && groups[n-1].column == e.Column {
			groups[n-1].edits = append(groups[n-1].edits, e)
			continue
		}
		groups = append(groups, callSiteGroup{line: e.Line, column: e.Column, edits: []record.Edit{e}})
	}
	return groups
}

func applyGroup(parsed *source.Parsed, group callSiteGroup, indentUnit string) error {
	astCall, ok := parsed.CallAt(group.line, group.column)
	if !ok {
		// The spec's out-of-scope clause: a call site that can't be
		// uniquely located by (line, column) is simply not rewritten.
		return nil
	}
	node, ok := parsed.DstNode(astCall)
	if !ok {
		return fmt.Errorf("snaptest: %s:%d: no dst node for call site", parsed.Path, group.line)
	}
	dstCall, ok := node.(*dst.CallExpr)
	if !ok {
		return fmt.Errorf("snaptest: %s:%d: call site did not map to a call expression", parsed.Path, group.line)
	}

	leadingTrivia := leadingWhitespace(lineText(parsed.Text, group.line))

	for _, e := range group.edits {
		if e.NoOp() {
			continue
		}
		closure := synthesizeClosure(e.Actual, leadingTrivia, indentUnit)
		if err := applyAction(dstCall, e, closure, leadingTrivia, indentUnit); err != nil {
			return fmt.Errorf("snaptest: %s:%d: %w", parsed.Path, e.Line, err)
		}
	}
	return nil
}

func applyAction(call *dst.CallExpr, e record.Edit, closure *dst.FuncLit, leadingTrivia, indentUnit string) error {
	action := ResolveSlot(call.Args, e.Descriptor, e.WasRecording || e.Expected == nil)

	switch action.Kind {
	case ActionReplace:
		call.Args[action.Index] = withBody(call.Args[action.Index], closure)
	case ActionSetLeading:
		call.Args = append(call.Args, closure)
	case ActionLeave:
		// Matching label, not recording: the file already says what it
		// should, nothing to do.
	case ActionInsertBefore:
		named := buildNamedCall(e.Descriptor.Label, closure)
		call.Args = insertAt(call.Args, action.Index, named)
	case ActionAppend:
		for i := 0; i < action.Pad; i++ {
			filler := synthesizeClosure("", leadingTrivia, indentUnit)
			call.Args = append(call.Args, buildNamedCall(e.Descriptor.Label, filler))
		}
		call.Args = append(call.Args, buildNamedCall(e.Descriptor.Label, closure))
	case ActionFatal:
		return action.Err
	}
	return nil
}

func insertAt(args []dst.Expr, index int, e dst.Expr) []dst.Expr {
	out := make([]dst.Expr, 0, len(args)+1)
	out = append(out, args[:index]...)
	out = append(out, e)
	out = append(out, args[index:]...)
	return out
}
