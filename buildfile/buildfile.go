// Copyright 2025 The Chromium Authors
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

// Package buildfile parses build description files written in starlark
// syntax and gives static access to their surface structure.
// It never resolves names nor executes the file, so it works without
// a configured build directory and tolerates unresolved identifiers.
package buildfile

import (
	"fmt"

	"go.starlark.net/syntax"
)

// fileOptions allows the full statement grammar at parse time.
// Scans are purely syntactic, so resolver restrictions never apply.
var fileOptions = &syntax.FileOptions{
	Set:             true,
	While:           true,
	TopLevelControl: true,
	GlobalReassign:  true,
	Recursion:       true,
}

// File is a parsed build description file.
type File struct {
	// Name is the name the file was parsed as, usually its path.
	Name string

	syn *syntax.File
}

// ParseError reports that the surface syntax of a build description
// file could not be parsed (unterminated string, unbalanced block etc).
// It is the only fatal scan condition.
type ParseError struct {
	Name string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse %s: %v", e.Name, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Parse parses a build description file.
// src is as for go.starlark.net/syntax: nil to read the file named by
// name, or the contents as string or []byte.
// It returns *ParseError if the file does not conform to the grammar.
func Parse(name string, src any) (*File, error) {
	f, err := fileOptions.Parse(name, src, 0)
	if err != nil {
		return nil, &ParseError{Name: name, Err: err}
	}
	return &File{Name: name, syn: f}, nil
}
