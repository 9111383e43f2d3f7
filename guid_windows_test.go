// Copyright (c) 2022 Tailscale Inc & AUTHORS. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build windows

package comptr

import (
	"testing"

	"golang.org/x/sys/windows"
)

func TestGUIDToString(t *testing.T) {
	testGUID, err := windows.GenerateGUID()
	if err != nil {
		t.Fatal(err)
	}

	winStr := testGUID.String()
	ourStr := guidToString(testGUID)
	if winStr != ourStr {
		t.Errorf("guidToString is buggy: got %s, want %s", ourStr, winStr)
	}

	parsed, err := ParseGUID(winStr)
	if err != nil {
		t.Fatalf("ParseGUID(%q) error: %v", winStr, err)
	}
	if parsed != testGUID {
		t.Errorf("ParseGUID(%q) got %s", winStr, parsed)
	}
}
