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

// Package source loads and parses test files exactly once per run, and
// memoizes the result so the locator and the rewriter (which both need
// to walk the same tree) never pay for a second parse.
package source

import (
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"os"
	"sync"

	"github.com/dave/dst"
	"github.com/dave/dst/decorator"
)

// Parsed is everything downstream components need about one test file.
//
// Two trees are kept side by side: the plain go/ast tree, whose
// token.Pos-based positions are what runtime.Caller-derived (line,
// column) targets are compared against, and the dst tree the rewriter
// actually edits, which carries comments and blank lines as first-class
// decorations instead of a side-table. Dec is the bridge between them:
// given an *ast.CallExpr found by position, Dec finds the corresponding
// *dst.CallExpr to edit.
type Parsed struct {
	Path string
	Text []byte
	Fset *token.FileSet
	Ast  *ast.File
	Dst  *dst.File
	Dec  *decorator.Decorator
}

// DstNode returns the dst.Node corresponding to an ast.Node from the
// same Parsed file, if any.
func (p *Parsed) DstNode(n ast.Node) (dst.Node, bool) {
	d, ok := p.Dec.Dst.Nodes[n]
	return d, ok
}

// Cache loads and parses a file on first request and memoizes it for the
// remainder of the process, since a test-bundle run reads every file at
// most once. The rewriter edits the cached dst tree in place (see
// internal/rewrite), so after a flush the cached Dst no longer matches
// the cached Text.
type Cache struct {
	mu    sync.Mutex
	files map[string]*Parsed
	errs  map[string]error
}

// NewCache constructs an empty source cache.
func NewCache() *Cache {
	return &Cache{
		files: make(map[string]*Parsed),
		errs:  make(map[string]error),
	}
}

// Get returns the parsed form of path, reading and parsing it on first
// use. A read or parse failure is memoized too, so repeated calls for a
// permanently broken file don't retry the I/O.
func (c *Cache) Get(path string) (*Parsed, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if p, ok := c.files[path]; ok {
		return p, nil
	}
	if err, ok := c.errs[path]; ok {
		return nil, err
	}

	p, err := load(path)
	if err != nil {
		c.errs[path] = err
		return nil, err
	}
	c.files[path] = p
	return p, nil
}

func load(path string) (*Parsed, error) {
	text, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("snaptest: reading %s: %w", path, err)
	}

	fset := token.NewFileSet()
	astFile, err := parser.ParseFile(fset, path, text, parser.ParseComments)
	if err != nil {
		return nil, fmt.Errorf("snaptest: parsing %s: %w", path, err)
	}

	dec := decorator.NewDecorator(fset)
	dstFile, err := dec.DecorateFile(astFile)
	if err != nil {
		return nil, fmt.Errorf("snaptest: decorating %s: %w", path, err)
	}

	return &Parsed{Path: path, Text: text, Fset: fset, Ast: astFile, Dst: dstFile, Dec: dec}, nil
}

// Global is the process-wide source cache shared across every assertion
// and the flush that eventually consumes them, mirroring record.Global.
var Global = NewCache()
