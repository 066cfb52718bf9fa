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

import (
	"fmt"

	"github.com/irfansharif/snaptest/internal/source"
)

// Rewriter is the shape internal/rewrite.Rewrite has. Flush takes it as
// a parameter instead of importing internal/rewrite directly so that
// record (a dependency of internal/rewrite, for Descriptor/Edit) doesn't
// need to import back up to it.
type Rewriter func(parsed *source.Parsed, edits []Edit) (text []byte, changed bool, err error)

// FatalError is returned by Flush when a file can't be safely
// reconciled with its pending edits: per the spec, an unreadable or
// unwritable test source, or an unexpected syntactic state mid-rewrite,
// aborts the run rather than partially applying recordings.
type FatalError struct {
	File string
	Line int
	Err  error
}

func (e *FatalError) Error() string {
	return fmt.Sprintf("snaptest: %s:%d: %v", e.File, e.Line, e.Err)
}

func (e *FatalError) Unwrap() error { return e.Err }

// Flush drains buf, loads each touched file through cache, rewrites it,
// and writes it back atomically if the result differs from what's on
// disk. Files are processed in no particular cross-file order (the spec
// doesn't require one); edits within a file are ordered by Rewrite.
func Flush(buf *Buffer, cache *source.Cache, rewrite Rewriter) error {
	pending := buf.Drain()
	for file, edits := range pending {
		if err := flushFile(cache, rewrite, file, edits); err != nil {
			return err
		}
	}
	return nil
}

func flushFile(cache *source.Cache, rewrite Rewriter, file string, edits []Edit) error {
	parsed, err := cache.Get(file)
	if err != nil {
		return &FatalError{File: file, Line: edits[0].Line, Err: err}
	}

	text, changed, err := rewrite(parsed, edits)
	if err != nil {
		return &FatalError{File: file, Line: edits[0].Line, Err: err}
	}
	if !changed {
		return nil
	}

	if err := writeFileAtomic(file, text, 0o644); err != nil {
		return &FatalError{File: file, Line: edits[0].Line, Err: err}
	}
	return nil
}
