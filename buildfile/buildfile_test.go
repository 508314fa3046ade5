// Copyright 2025 The Chromium Authors
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package buildfile

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParse(t *testing.T) {
	for _, tc := range []struct {
		name    string
		src     string
		wantErr bool
	}{
		{
			name: "empty",
			src:  "",
		},
		{
			name: "calls",
			src: `
project("demo")
zlib = dependency("zlib", required = False)
`,
		},
		{
			name: "unresolved_names_ok",
			src: `
if host_machine.system() == "windows":
    d = dependency(some_variable)
`,
		},
		{
			name:    "unterminated_string",
			src:     `d = dependency("zlib`,
			wantErr: true,
		},
		{
			name:    "unbalanced_paren",
			src:     `d = dependency("zlib"`,
			wantErr: true,
		},
		{
			name: "bad_block",
			src: `
if cond:
`,
			wantErr: true,
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			f, err := Parse("build.star", tc.src)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("Parse=%v, nil; want error", f)
				}
				var perr *ParseError
				if !errors.As(err, &perr) {
					t.Errorf("Parse error %T; want *ParseError", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Parse: %v", err)
			}
			if f.Name != "build.star" {
				t.Errorf("Name=%q; want %q", f.Name, "build.star")
			}
		})
	}
}

type callRecord struct {
	Fun         string
	Conditional bool
}

func TestWalkCalls(t *testing.T) {
	for _, tc := range []struct {
		name string
		src  string
		want []callRecord
	}{
		{
			name: "no_calls",
			src: `
x = 1
y = [x, 2]
`,
			want: nil,
		},
		{
			name: "toplevel",
			src: `
project("demo")
d = dependency("zlib")
`,
			want: []callRecord{
				{Fun: "project"},
				{Fun: "dependency"},
			},
		},
		{
			name: "if_elif_else",
			src: `
if host == "windows":
    a = dependency("winsock2")
elif host == "linux":
    b = dependency("x11")
else:
    c = dependency("dl")
d = dependency("zlib")
`,
			want: []callRecord{
				{Fun: "dependency", Conditional: true},
				{Fun: "dependency", Conditional: true},
				{Fun: "dependency", Conditional: true},
				{Fun: "dependency"},
			},
		},
		{
			name: "nested_if",
			src: `
if a:
    if b:
        d = dependency("deep")
    e = executable("prog", srcs)
`,
			want: []callRecord{
				{Fun: "dependency", Conditional: true},
				{Fun: "executable", Conditional: true},
			},
		},
		{
			name: "condition_itself_not_conditional",
			src: `
if get_option("gui"):
    d = dependency("gtk")
`,
			want: []callRecord{
				{Fun: "get_option"},
				{Fun: "dependency", Conditional: true},
			},
		},
		{
			name: "ternary",
			src: `
d = dependency("gl") if use_gl else None
`,
			want: []callRecord{
				{Fun: "dependency", Conditional: true},
			},
		},
		{
			name: "nested_call_outer_first",
			src: `
a = outer(inner("x"))
`,
			want: []callRecord{
				{Fun: "outer"},
				{Fun: "inner"},
			},
		},
		{
			name: "method_calls_not_reported",
			src: `
s = host_machine.system()
d = dependency(s)
`,
			want: []callRecord{
				{Fun: "dependency"},
			},
		},
		{
			name: "def_and_loop_bodies",
			src: `
def setup():
    a = dependency("a")
    for x in libs:
        b = dependency(x)
`,
			want: []callRecord{
				{Fun: "dependency"},
				{Fun: "dependency"},
			},
		},
		{
			name: "comprehension_if_clause",
			src: `
deps = [dependency(x) for x in names if x]
all = [dependency(y) for y in names]
`,
			want: []callRecord{
				{Fun: "dependency", Conditional: true},
				{Fun: "dependency"},
			},
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			f, err := Parse("build.star", tc.src)
			if err != nil {
				t.Fatalf("Parse: %v", err)
			}
			var got []callRecord
			f.WalkCalls(func(c CallSite) {
				got = append(got, callRecord{
					Fun:         c.Fun,
					Conditional: c.Conditional,
				})
			})
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("WalkCalls diff -want +got:\n%s", diff)
			}
		})
	}
}

func TestCallSiteArgs(t *testing.T) {
	f, err := Parse("build.star", `
d = dependency("zlib", static, required = False, version = ">=1.2", fallback = ["zlib", "zlib_dep"])
`)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	var c CallSite
	f.WalkCalls(func(cs CallSite) { c = cs })
	if c.Fun != "dependency" {
		t.Fatalf("Fun=%q; want %q", c.Fun, "dependency")
	}

	arg, ok := c.Positional(0)
	if !ok {
		t.Fatalf("Positional(0)=_, %t; want true", ok)
	}
	if s, ok := StringLiteral(arg); !ok || s != "zlib" {
		t.Errorf("StringLiteral=%q, %t; want %q, true", s, ok, "zlib")
	}

	// static is an identifier, not a literal.
	arg, ok = c.Positional(1)
	if !ok {
		t.Fatalf("Positional(1)=_, %t; want true", ok)
	}
	if _, ok := StringLiteral(arg); ok {
		t.Errorf("StringLiteral(ident)=_, true; want false")
	}
	if _, ok := c.Positional(2); ok {
		t.Errorf("Positional(2)=_, true; want false")
	}

	arg, ok = c.Keyword("required")
	if !ok {
		t.Fatalf("Keyword(required)=_, %t; want true", ok)
	}
	if v, ok := BoolLiteral(arg); !ok || v {
		t.Errorf("BoolLiteral=%t, %t; want false, true", v, ok)
	}
	if _, ok := c.Keyword("fallback"); !ok {
		t.Errorf("Keyword(fallback)=_, false; want true")
	}
	if _, ok := c.Keyword("native"); ok {
		t.Errorf("Keyword(native)=_, true; want false")
	}
}
