// Copyright 2025 The Chromium Authors
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package introspect

import (
	"go.chromium.org/infra/build/depscan/buildfile"
)

// ProjectInfo describes the project() declaration of a build
// description file.
type ProjectInfo struct {
	// Name is the first positional argument of the first project()
	// call if it is a string literal, or "unknown".
	Name string `json:"descriptive_name"`

	// Version is the version keyword argument if it is a string
	// literal, or "undefined".
	Version string `json:"version"`
}

// ScanProject returns the project info declared by the first project()
// call site in f. A file without a project() call, or with
// non-literal arguments, yields the defaults.
func ScanProject(f *buildfile.File) ProjectInfo {
	info := ProjectInfo{
		Name:    unknownName,
		Version: "undefined",
	}
	seen := false
	f.WalkCalls(func(c buildfile.CallSite) {
		if seen || c.Fun != "project" {
			return
		}
		seen = true
		if arg, ok := c.Positional(0); ok {
			if name, ok := buildfile.StringLiteral(arg); ok {
				info.Name = name
			}
		}
		if arg, ok := c.Keyword("version"); ok {
			if version, ok := buildfile.StringLiteral(arg); ok {
				info.Version = version
			}
		}
	})
	return info
}
