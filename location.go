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
	"github.com/irfansharif/snaptest/internal/locate"
	"github.com/irfansharif/snaptest/internal/record"
	"github.com/irfansharif/snaptest/internal/source"
)

// callSite is everything MatchInline needs to know about where it was
// called from: where to splice a rewrite, and what line to blame in a
// failure message.
type callSite struct {
	file       string
	line       int // line of the MatchInline call itself, from runtime.Caller
	column     int // column of the call, recovered by locate.ResolveColumn; 0 if unresolved
	reportLine int // best line to point a failure message at
	testFunc   string // enclosing function's name, "" if it couldn't be determined
}

// resolveCallSite turns the (file, line) runtime.Caller hands MatchInline
// into a full callSite: the column (which runtime.Caller never gives Go
// code), the enclosing test function's name, and, if desc's slot already
// holds a closure, that closure's own line, so a mismatch failure points
// at the stale expectation rather than at the assertion call.
func resolveCallSite(cache *source.Cache, file string, line int, funcName string, desc record.Descriptor) callSite {
	site := callSite{file: file, line: line, reportLine: line}

	parsed, err := cache.Get(file)
	if err != nil {
		return site
	}

	column, ok := locate.ResolveColumn(parsed, line, funcName)
	if !ok {
		return site
	}
	site.column = column

	if call, ok := parsed.CallAt(line, column); ok {
		site.testFunc = locate.EnclosingFuncName(parsed, call)
	}

	if target, ok := locate.Locate(parsed, line, column, desc); ok {
		site.reportLine = target
	}
	return site
}
