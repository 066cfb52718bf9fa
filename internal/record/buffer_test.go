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

package record_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/irfansharif/snaptest/internal/record"
)

func TestBufferRecordAndDrain(t *testing.T) {
	buf := record.NewBuffer()
	require.Equal(t, 0, buf.Len())

	buf.Record(record.Edit{File: "a_test.go", Actual: "one"})
	buf.Record(record.Edit{File: "a_test.go", Actual: "two"})
	buf.Record(record.Edit{File: "b_test.go", Actual: "three"})
	require.Equal(t, 2, buf.Len())

	drained := buf.Drain()
	require.Len(t, drained, 2)
	require.Len(t, drained["a_test.go"], 2)
	require.Len(t, drained["b_test.go"], 1)

	// The buffer is empty again immediately after a drain.
	require.Equal(t, 0, buf.Len())
	require.Nil(t, buf.Drain())
}

func TestBufferConcurrentRecord(t *testing.T) {
	buf := record.NewBuffer()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			buf.Record(record.Edit{File: "shared_test.go", Actual: "edit"})
		}(i)
	}
	wg.Wait()

	drained := buf.Drain()
	require.Len(t, drained["shared_test.go"], 50)
}
