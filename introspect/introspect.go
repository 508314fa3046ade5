// Copyright 2025 The Chromium Authors
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

// Package introspect answers questions about a parsed build
// description file without executing it.
//
// Every pass is a pure function over the parse tree. Values that are
// not statically determinable (a variable, a function result) degrade
// to documented defaults instead of failing, so a pass never returns
// an error: the only fatal condition is the parse itself, reported by
// package buildfile.
package introspect

// unknownName marks a name argument that is not a string literal.
const unknownName = "unknown"
