// Copyright (c) 2022 Tailscale Inc & AUTHORS. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build windows

package com

import (
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

// Each of these tests needs to run as their own process, since StartRuntime
// performs process-wide initialization that is permanent for the remaining
// life of the process.

func TestGUI(t *testing.T) {
	output := strings.TrimSpace(runTestProg(t, "testprocessruntime", "GUIApp"))
	want := "OK"
	if output != want {
		t.Errorf("%s\n", strings.TrimPrefix(output, "error: "))
	}
}

func TestNonGUI(t *testing.T) {
	output := strings.TrimSpace(runTestProg(t, "testprocessruntime", "NonGUIApp"))
	want := "OK"
	if output != want {
		t.Errorf("%s\n", strings.TrimPrefix(output, "error: "))
	}
}

// buildTestProg compiles the program in testdata/binary and embeds an
// application manifest into it, returning the path to the executable.
func buildTestProg(t *testing.T, binary string) string {
	t.Helper()

	goTool, err := exec.LookPath("go")
	if err != nil {
		t.Skipf("go tool not available: %v", err)
	}

	dir := t.TempDir()
	bare := filepath.Join(dir, binary+"-nomanifest.exe")
	exe := filepath.Join(dir, binary+".exe")

	cmd := exec.Command(goTool, "build", "-o", bare, ".")
	cmd.Dir = filepath.Join("testdata", binary)
	if out, err := cmd.CombinedOutput(); err != nil {
		t.Fatalf("building %s: %v\n%s", binary, err, out)
	}

	if err := addManifest(exe, bare); err != nil {
		t.Fatalf("adding manifest to %s: %v", binary, err)
	}

	return exe
}

func runTestProg(t *testing.T, binary, name string) string {
	t.Helper()

	exe := buildTestProg(t, binary)
	out, err := exec.Command(exe, name).CombinedOutput()
	if err != nil {
		t.Logf("%s %s exited with %v", binary, name, err)
	}
	return string(out)
}
