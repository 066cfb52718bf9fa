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
	"flag"
	"fmt"
	"os"
	"testing"

	"github.com/irfansharif/snaptest/internal/recmode"
	"github.com/irfansharif/snaptest/internal/record"
	"github.com/irfansharif/snaptest/internal/rewrite"
	"github.com/irfansharif/snaptest/internal/source"
)

var recordFlag = flag.Bool("snaptest.record", false,
	"rewrite source files with freshly computed snapshots instead of failing on mismatch")

// Main runs m and flushes any snapshot edits accumulated along the way
// back into their source files, returning the code the caller's
// TestMain should exit with:
//
//	func TestMain(m *testing.M) {
//	    os.Exit(snaptest.Main(m))
//	}
//
// The testing package has no bundle-completion hook to register a
// flush against automatically; calling Main from TestMain is this
// package's equivalent, and is required for -snaptest.record (and for
// any rewrite at all) to take effect. A package that uses MatchInline
// without defining TestMain this way gets ordinary pass/fail behavior
// but its source is never rewritten.
func Main(m *testing.M) int {
	if !flag.Parsed() {
		flag.Parse()
	}
	recmode.Set(*recordFlag)

	code := m.Run()

	if err := flushAll(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		if code == 0 {
			code = 1
		}
	}
	return code
}

// flushAll drains the process-wide recording buffer and rewrites every
// touched file, split out from Main so it can be exercised directly in
// tests that can't construct a real *testing.M.
func flushAll() error {
	return record.Flush(record.Global, source.Global, rewrite.Rewrite)
}
