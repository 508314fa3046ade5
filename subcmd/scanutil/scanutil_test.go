// Copyright 2025 The Chromium Authors
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package scanutil

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"go.chromium.org/infra/build/depscan/buildfile"
)

func TestScanAll(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	var names []string
	for i := 0; i < 8; i++ {
		fname := filepath.Join(dir, fmt.Sprintf("%d.star", i))
		err := os.WriteFile(fname, []byte(fmt.Sprintf("x = %d", i)), 0644)
		if err != nil {
			t.Fatalf("WriteFile: %v", err)
		}
		names = append(names, fname)
	}

	got, err := ScanAll(ctx, names, 3, func(f *buildfile.File) string {
		return f.Name
	})
	if err != nil {
		t.Fatalf("ScanAll: %v", err)
	}
	want := make(map[string]string, len(names))
	for _, name := range names {
		want[name] = name
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ScanAll diff -want +got:\n%s", diff)
	}
}

func TestScanAllParseError(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	good := filepath.Join(dir, "good.star")
	err := os.WriteFile(good, []byte(`x = 1`), 0644)
	if err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	bad := filepath.Join(dir, "bad.star")
	err = os.WriteFile(bad, []byte(`x = "unterminated`), 0644)
	if err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	got, err := ScanAll(ctx, []string{good, bad}, 2, func(f *buildfile.File) string {
		return f.Name
	})
	if err == nil {
		t.Fatalf("ScanAll=%v, nil; want error", got)
	}
	var perr *buildfile.ParseError
	if !errors.As(err, &perr) {
		t.Errorf("ScanAll error %T; want *buildfile.ParseError", err)
	}
	if got != nil {
		t.Errorf("ScanAll=%v; want nil on failure", got)
	}
}
