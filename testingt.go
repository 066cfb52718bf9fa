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

// TestingT is the slice of *testing.T that MatchInline needs. Narrowing
// it to an interface (rather than taking *testing.T directly) keeps
// MatchInline usable from test helpers that wrap *testing.T, and makes
// it possible to exercise MatchInline's own test suite against a fake.
type TestingT interface {
	Helper()
	Fatalf(format string, args ...interface{})
	Name() string
}
