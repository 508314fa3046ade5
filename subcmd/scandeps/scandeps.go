// Copyright 2025 The Chromium Authors
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

// Package scandeps is the scandeps subcommand: it statically scans
// build description files for dependency() declarations.
package scandeps

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"runtime"

	"github.com/charmbracelet/log"
	"github.com/maruel/subcommands"

	"go.chromium.org/luci/common/cli"

	"go.chromium.org/infra/build/depscan/buildfile"
	"go.chromium.org/infra/build/depscan/introspect"
	"go.chromium.org/infra/build/depscan/subcmd/scanutil"
)

const usage = `scan dependency declarations

 $ depscan scandeps [-pretty] <file>...

Scans build description files without executing them and prints the
external dependencies they declare as JSON on stdout. No build
directory is needed; unresolved variables degrade to defaults
(required=true, name="unknown") instead of failing.

With a single file the output is a JSON array, one record per
dependency() call site in document order. With several files the
files are scanned in parallel and the output is a JSON object keyed
by file path.
`

// Cmd returns the Command for the `scandeps` subcommand provided by this package.
func Cmd() *subcommands.Command {
	return &subcommands.Command{
		UsageLine: "scandeps [-pretty] <file>...",
		ShortDesc: "scan dependency declarations",
		LongDesc:  usage,
		CommandRun: func() subcommands.CommandRun {
			c := &run{}
			c.init()
			return c
		},
	}
}

type run struct {
	subcommands.CommandRunBase

	pretty bool
	jobs   int
	out    io.Writer
}

func (c *run) init() {
	c.Flags.BoolVar(&c.pretty, "pretty", false, "indent the json output")
	c.Flags.IntVar(&c.jobs, "j", runtime.NumCPU(), "number of files scanned in parallel")
	c.out = os.Stdout
}

func (c *run) Run(a subcommands.Application, args []string, env subcommands.Env) int {
	ctx := cli.GetContext(a, c, env)
	err := c.run(ctx, args)
	if err != nil {
		switch {
		case errors.Is(err, flag.ErrHelp):
			fmt.Fprintf(os.Stderr, "%v\n%s\n", err, usage)
		default:
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		return 1
	}
	return 0
}

func (c *run) run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("missing build description file: %w", flag.ErrHelp)
	}
	if len(args) == 1 {
		f, err := buildfile.Parse(args[0], nil)
		if err != nil {
			return err
		}
		deps := introspect.ScanDependencies(f)
		log.Debugf("%s: %d dependency declarations", f.Name, len(deps))
		return scanutil.Emit(c.out, deps, c.pretty)
	}
	byFile, err := scanutil.ScanAll(ctx, args, c.jobs, introspect.ScanDependencies)
	if err != nil {
		return err
	}
	return scanutil.Emit(c.out, byFile, c.pretty)
}
