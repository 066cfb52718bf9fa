// Copyright 2024 Irfan Sharif.
// Copyright 2018 The Cockroach Authors.
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
//
// Portions of this code was derived from cockroachdb/datadriven.

package recorder

import (
	"bufio"
	"fmt"
	"io"
)

// scanner is a line-oriented reader wrapping bufio.Scanner with enough
// bookkeeping to point a parse error at the line it happened on.
type scanner struct {
	*bufio.Scanner
	name string
	line int
}

func newScanner(r io.Reader, name string) *scanner {
	return &scanner{Scanner: bufio.NewScanner(r), name: name}
}

func (s *scanner) Scan() bool {
	ok := s.Scanner.Scan()
	if ok {
		s.line++
	}
	return ok
}

func (s *scanner) pos() string {
	return fmt.Sprintf("%s:%d", s.name, s.line)
}
