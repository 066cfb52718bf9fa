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

// Package recorder holds a minimal (command, output) fixture format:
// one Operation per blank-line-separated block, read back in order.
// It exists to drive internal/rewrite's literal-encoding golden cases
// from a flat text file instead of escaped-string Go table entries -
// the only generality it needs is "more than one case in a file," so
// unlike its cockroachdb/datadriven lineage it doesn't support comment
// lines, backslash-wrapped command continuations, or blank lines
// embedded in an output (none of those ever show up in a one-line
// JSON command and a short literal-encoding result).
//
//	var buf bytes.Buffer
//	rec := recorder.New(recorder.WithRecordingTo(&buf))
//	rec.Record(recorder.Operation{Command: `{"payload":"hi"}`, Output: "`hi`"})
//
//	rec = recorder.New(recorder.WithReplayFrom(&buf, "fixture"))
//	found, err := rec.Next(func(op recorder.Operation) error {
//	    // assert against op.Command / op.Output
//	    return nil
//	})
package recorder

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Recorder records a sequence of Operations, or replays one back.
type Recorder struct {
	// writer is set if we're in recording mode, and is where operations are
	// recorded.
	writer io.Writer

	// scanner and op are set if we're in replay mode. It's where we're
	// replaying the recording from. op is the scratch space used to
	// parse out the current operation being read.
	scanner *scanner
	op      Operation
}

// New constructs a Recorder, using the specified configuration option (either
// WithReplayFrom or WithRecordingTo).
func New(opt func(r *Recorder)) *Recorder {
	r := &Recorder{}
	opt(r)
	return r
}

// WithReplayFrom is used to configure a Recorder to play back from the given
// io.Reader. The provided name is used only for diagnostic purposes, it's
// typically the name of the recording file being read.
func WithReplayFrom(r io.Reader, name string) func(*Recorder) {
	return func(re *Recorder) {
		re.scanner = newScanner(r, name)
	}
}

// WithRecordingTo is used to configure a Recorder to record into the given
// io.Writer. The recordings can then later be replayed from (see
// WithReplayFrom).
func WithRecordingTo(w io.Writer) func(*Recorder) {
	return func(r *Recorder) {
		r.writer = w
	}
}

// Recording returns whether or not the recorder is configured to record (as
// opposed to being configured to replay from an existing recording).
func (r *Recorder) Recording() bool {
	return r.writer != nil
}

// Record is used to record the given operation.
func (r *Recorder) Record(o Operation) error {
	if !r.Recording() {
		return errors.New("misconfigured recorder; not set to record")
	}

	_, err := r.writer.Write([]byte(o.String()))
	return err
}

// Next is used to step through the next Operation found in the recording, if
// any.
func (r *Recorder) Next(f func(Operation) error) (found bool, err error) {
	if r.Recording() {
		return false, errors.New("misconfigured recorder; set to record, not replay")
	}

	parsed, err := r.parseOperation()
	if err != nil {
		return false, err
	}
	if !parsed {
		return false, nil
	}

	if err := f(r.op); err != nil {
		return false, fmt.Errorf("%s: %w", r.scanner.pos(), err)
	}
	return true, nil
}

// parseOperation parses the next (command, output) block, per the
// grammar described on Operation.
func (r *Recorder) parseOperation() (parsed bool, err error) {
	if !r.scanner.Scan() {
		return false, nil
	}

	command := strings.TrimSpace(r.scanner.Text())
	if command == "" {
		return false, fmt.Errorf("%s: expected a command, found a blank line", r.scanner.pos())
	}
	r.op = Operation{Command: command}

	if err := r.parseSeparator(); err != nil {
		return false, err
	}
	r.op.Output = r.parseOutput()
	return true, nil
}

// parseSeparator parses a separator ('----'), erroring out if it's not parsed
// correctly.
func (r *Recorder) parseSeparator() error {
	if !r.scanner.Scan() {
		return fmt.Errorf("%s: expected to find separator after command", r.scanner.pos())
	}
	if line := r.scanner.Text(); line != "----" {
		return fmt.Errorf("%s: expected to find separator after command, found %q instead", r.scanner.pos(), line)
	}
	return nil
}

// parseOutput collects every line up to the next blank line (or EOF)
// as the operation's output.
func (r *Recorder) parseOutput() string {
	var buf bytes.Buffer
	for r.scanner.Scan() {
		line := r.scanner.Text()
		if strings.TrimSpace(line) == "" {
			break
		}
		fmt.Fprintln(&buf, line)
	}
	return buf.String()
}
