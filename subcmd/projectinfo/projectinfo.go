// Copyright 2025 The Chromium Authors
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

// Package projectinfo is the projectinfo subcommand: it statically
// reads the project() declaration of a build description file.
package projectinfo

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/maruel/subcommands"

	"go.chromium.org/luci/common/cli"

	"go.chromium.org/infra/build/depscan/buildfile"
	"go.chromium.org/infra/build/depscan/introspect"
	"go.chromium.org/infra/build/depscan/subcmd/scanutil"
)

const usage = `show project info

 $ depscan projectinfo [-pretty] <file>

Reads the project() declaration of a build description file without
executing it and prints the project name and version as JSON on
stdout. Non-literal arguments degrade to "unknown"/"undefined".
`

// Cmd returns the Command for the `projectinfo` subcommand provided by this package.
func Cmd() *subcommands.Command {
	return &subcommands.Command{
		UsageLine: "projectinfo [-pretty] <file>",
		ShortDesc: "show project info",
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
	out    io.Writer
}

func (c *run) init() {
	c.Flags.BoolVar(&c.pretty, "pretty", false, "indent the json output")
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
	if len(args) != 1 {
		return fmt.Errorf("need exactly one build description file: %w", flag.ErrHelp)
	}
	f, err := buildfile.Parse(args[0], nil)
	if err != nil {
		return err
	}
	return scanutil.Emit(c.out, introspect.ScanProject(f), c.pretty)
}
