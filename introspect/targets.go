// Copyright 2025 The Chromium Authors
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package introspect

import (
	"go.chromium.org/infra/build/depscan/buildfile"
)

// Target is one build target declaration found in a build description
// file.
type Target struct {
	// Name is the first positional argument if it is a string
	// literal, or "unknown".
	Name string `json:"name"`

	// Type is the kind of target, e.g. "executable" or
	// "static library".
	Type string `json:"type"`

	// Line is the line the target is declared on.
	Line int `json:"line"`

	// Conditional reports whether the call site is lexically inside a
	// conditional branch.
	Conditional bool `json:"conditional"`
}

// targetFuncs maps target declaring callee names to target types.
var targetFuncs = map[string]string{
	"executable":     "executable",
	"library":        "library",
	"shared_library": "shared library",
	"static_library": "static library",
	"both_libraries": "both libraries",
	"jar":            "jar",
}

// ScanTargets returns one record per target declaring call site in f,
// in document order.
func ScanTargets(f *buildfile.File) []Target {
	targets := []Target{}
	f.WalkCalls(func(c buildfile.CallSite) {
		typ, ok := targetFuncs[c.Fun]
		if !ok {
			return
		}
		t := Target{
			Name:        unknownName,
			Type:        typ,
			Line:        int(c.Pos.Line),
			Conditional: c.Conditional,
		}
		if arg, ok := c.Positional(0); ok {
			if name, ok := buildfile.StringLiteral(arg); ok {
				t.Name = name
			}
		}
		targets = append(targets, t)
	})
	return targets
}
