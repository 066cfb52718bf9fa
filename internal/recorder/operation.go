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

import "strings"

// Operation is the base unit of what a Recorder plays back: a command
// (the input fed to whatever's under test) paired with its expected
// output. The two are separated by a "----" line, and a block ends at
// the next blank line or EOF:
//
//	<command>
//	----
//	<output, one or more non-blank lines>
//
// Output can't itself contain a blank line - every case this module
// drives is a single JSON command and a short literal-encoding result,
// so that restriction never bites in practice.
type Operation struct {
	Command string
	Output  string
}

// String returns o's printable form, matching the grammar parsed by
// Recorder.Next.
func (o *Operation) String() string {
	var sb strings.Builder
	sb.WriteString(o.Command)
	sb.WriteString("\n----\n")
	sb.WriteString(o.Output)
	if o.Output != "" && !strings.HasSuffix(o.Output, "\n") {
		sb.WriteString("\n")
	}
	sb.WriteString("\n")
	return sb.String()
}
