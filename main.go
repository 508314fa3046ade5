// Copyright 2025 The Chromium Authors
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"runtime"
	"runtime/debug"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/maruel/subcommands"
	"go.chromium.org/luci/common/cli"
	"go.chromium.org/luci/common/system/signals"

	"go.chromium.org/infra/build/depscan/subcmd/help"
	"go.chromium.org/infra/build/depscan/subcmd/projectinfo"
	"go.chromium.org/infra/build/depscan/subcmd/scandeps"
	"go.chromium.org/infra/build/depscan/subcmd/targets"
	"go.chromium.org/infra/build/depscan/subcmd/version"
)

// Depscan statically scans starlark build description files: it
// answers questions about a file (declared dependencies, targets,
// project info) without executing it and without a configured build
// directory.

const versionID = "0.9"

func main() {
	os.Exit(depscanMain())
}

func depscanMain() int {
	flag.Usage = func() {
		out := flag.CommandLine.Output()
		fmt.Fprintf(out, "Usage of %s:\n", os.Args[0])
		fmt.Fprintf(out, "global flags:\n")
		flag.PrintDefaults()
	}
	debugLog := flag.Bool("log_debug", false, "emit debug logs to stderr")
	flag.Parse()

	ctx, cancel := context.WithCancel(context.Background())
	defer signals.HandleInterrupt(cancel)()

	log.SetOutput(os.Stderr)
	log.SetPrefix("depscan")
	if *debugLog {
		log.SetLevel(log.DebugLevel)
	}
	// Tag every log line of this invocation. Scans of separate files
	// share nothing but the id.
	scanID := uuid.New().String()
	log.SetDefault(log.Default().With("id", scanID))

	// Print a stack trace when a panic occurs.
	defer func() {
		if r := recover(); r != nil {
			const size = 64 << 10
			buf := make([]byte, size)
			buf = buf[:runtime.Stack(buf, false)]
			log.Fatalf("panic: %v\n%s", r, buf)
		}
	}()

	if buildinfo, ok := debug.ReadBuildInfo(); ok {
		log.Debugf("main module: %s %s", buildinfo.Main.Path, buildinfo.Main.Version)
	}

	app := &cli.Application{
		Name:  "depscan",
		Title: "depscan is a static scanner for build description files.",
		Context: func(context.Context) context.Context {
			return ctx
		},
		Commands: []*subcommands.Command{
			scandeps.Cmd(),
			targets.Cmd(),
			projectinfo.Cmd(),
			version.Cmd(versionID),
			help.Cmd(),
		},
	}
	return subcommands.Run(app, flag.Args())
}
