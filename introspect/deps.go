// Copyright 2025 The Chromium Authors
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package introspect

import (
	"go.chromium.org/infra/build/depscan/buildfile"
)

// Dependency is one dependency() declaration found in a build
// description file.
type Dependency struct {
	// Name is the first positional argument if it is a string
	// literal, or "unknown".
	Name string `json:"name"`

	// Required is the value of the required keyword argument if it is
	// a boolean literal, else true.
	Required bool `json:"required"`

	// Conditional reports whether the call site is lexically inside a
	// conditional branch.
	Conditional bool `json:"conditional"`

	// HasFallback reports whether a fallback keyword argument is
	// present on the call, whatever its value.
	HasFallback bool `json:"has_fallback"`
}

// ScanDependencies returns one record per dependency() call site in f,
// in document order. Call sites are not deduplicated by name.
func ScanDependencies(f *buildfile.File) []Dependency {
	deps := []Dependency{}
	f.WalkCalls(func(c buildfile.CallSite) {
		if c.Fun != "dependency" {
			return
		}
		d := Dependency{
			Name:        unknownName,
			Required:    true,
			Conditional: c.Conditional,
		}
		if arg, ok := c.Positional(0); ok {
			if name, ok := buildfile.StringLiteral(arg); ok {
				d.Name = name
			}
		}
		if arg, ok := c.Keyword("required"); ok {
			if required, ok := buildfile.BoolLiteral(arg); ok {
				d.Required = required
			}
		}
		_, d.HasFallback = c.Keyword("fallback")
		deps = append(deps, d)
	})
	return deps
}
