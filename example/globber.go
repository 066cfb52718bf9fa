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

// Package example is a small, self-contained demonstration of
// snaptest: a glob wrapper whose output is asserted against an
// embedded snapshot instead of a hand-maintained fixture file.
package example

import (
	"fmt"
	"path/filepath"
	"strings"
)

// glob returns the newline-joined list of paths matching pattern, in
// the order filepath.Glob returns them (lexical).
func glob(pattern string) (string, error) {
	matches, err := filepath.Glob(pattern)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s\n", strings.Join(matches, "\n")), nil
}
