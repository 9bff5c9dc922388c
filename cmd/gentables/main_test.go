// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
)

func TestRun(t *testing.T) {
	want, err := os.ReadFile("../../float8tables.go")
	if err != nil {
		t.Fatal(err)
	}
	for _, debug := range []bool{false, true} {
		path := filepath.Join(t.TempDir(), "float8tables.go")
		if err := run(context.Background(), path, "dragonbox", debug); err != nil {
			t.Fatalf("run(debug=%v): %v", debug, err)
		}
		got, err := os.ReadFile(path)
		if err != nil {
			t.Fatal(err)
		}
		if !bytes.Equal(got, want) {
			t.Errorf("run(debug=%v) wrote tables that differ from float8tables.go", debug)
		}
	}
}

func TestRunWriteError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "float8tables.go")
	if err := run(context.Background(), path, "dragonbox", true); err == nil {
		t.Error("run into a missing directory succeeded")
	}
}

func TestRunCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	path := filepath.Join(t.TempDir(), "float8tables.go")
	if err := run(ctx, path, "dragonbox", true); err == nil {
		t.Error("run with a canceled context succeeded")
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Errorf("canceled run left %s behind: %v", path, err)
	}
}
