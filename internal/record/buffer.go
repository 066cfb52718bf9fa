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

package record

import "sync"

// Buffer is a process-wide, append-only association from file path to
// its pending edits. Appends come from assertions (possibly on several
// goroutines, if the host runs tests in parallel); the one read-and-clear
// comes from Flush. The critical sections are kept to the append and the
// drain themselves, per the concurrency model: O(1) to record, O(k) to
// drain.
type Buffer struct {
	mu      sync.Mutex
	pending map[string][]Edit
}

// NewBuffer constructs an empty recording buffer.
func NewBuffer() *Buffer {
	return &Buffer{pending: make(map[string][]Edit)}
}

// Record appends e to the pending list for e.File.
func (b *Buffer) Record(e Edit) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.pending[e.File] = append(b.pending[e.File], e)
}

// Drain removes and returns everything recorded so far, grouped by file.
// The returned map is the buffer's own storage handed off to the caller;
// the buffer starts empty again immediately.
func (b *Buffer) Drain() map[string][]Edit {
	b.mu.Lock()
	defer b.mu.Unlock()
	if len(b.pending) == 0 {
		return nil
	}
	drained := b.pending
	b.pending = make(map[string][]Edit)
	return drained
}

// Len reports how many files currently have pending edits. Used by tests.
func (b *Buffer) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.pending)
}

// Global is the single recording buffer shared by every MatchInline call
// in the process, matching the spec's process-wide registry.
var Global = NewBuffer()
