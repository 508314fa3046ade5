// Copyright 2025 The Chromium Authors
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

// Package scanutil provides shared plumbing for the scanning
// subcommands.
package scanutil

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"go.chromium.org/infra/build/depscan/buildfile"
	"go.chromium.org/infra/build/depscan/sync/semaphore"
)

// ScanAll parses the named build description files and applies scan to
// each, at most jobs files in parallel. Each file is scanned
// independently; the first parse failure aborts the whole run and no
// result is returned, so a caller never emits partial output.
func ScanAll[T any](ctx context.Context, names []string, jobs int, scan func(*buildfile.File) T) (map[string]T, error) {
	if jobs < 1 {
		jobs = 1
	}
	sema := semaphore.New("scan", jobs)
	results := make([]T, len(names))
	g, gctx := errgroup.WithContext(ctx)
	for i, name := range names {
		g.Go(func() error {
			return sema.Do(gctx, func(ctx context.Context) error {
				f, err := buildfile.Parse(name, nil)
				if err != nil {
					return err
				}
				results[i] = scan(f)
				log.Debugf("scanned %s", name)
				return nil
			})
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	byFile := make(map[string]T, len(names))
	for i, name := range names {
		byFile[name] = results[i]
	}
	return byFile, nil
}

// Emit writes v as JSON to w, one trailing newline, indented if
// pretty.
func Emit(w io.Writer, v any, pretty bool) error {
	var buf []byte
	var err error
	if pretty {
		buf, err = json.MarshalIndent(v, "", "  ")
	} else {
		buf, err = json.Marshal(v)
	}
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "%s\n", buf)
	return err
}
