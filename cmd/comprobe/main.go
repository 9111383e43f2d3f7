// Copyright (c) 2022 Tailscale Inc & AUTHORS. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command comprobe instantiates a COM class and reports which interfaces the
// resulting object supports.
package main

import (
	"os"
)

func main() {
	if err := NewProbeCmd(os.Stdout).Execute(); err != nil {
		os.Exit(1)
	}
}
