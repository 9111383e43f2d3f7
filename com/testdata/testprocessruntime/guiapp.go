// Copyright (c) 2022 Tailscale Inc & AUTHORS. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build windows

package main

import (
	"fmt"

	"github.com/dblohm7/comptr/com"
)

func init() {
	registerInit("GUIApp", GUIAppInit)
	register("GUIApp", GUIApp)
}

func GUIAppInit() {
	if err = com.StartRuntime(com.GUIApp); err != nil {
		fmt.Println("error: ", err)
	}
}

func GUIApp() {
	if err != nil {
		return
	}

	if !com.IsCurrentOSThreadSTA() {
		fmt.Println("error: IsCurrentOSThreadSTA got false, want true")
		return
	}

	if err := roundTripShellLink(); err != nil {
		fmt.Println("error: ", err)
		return
	}

	if !checkBackgroundThread(false) {
		fmt.Println("error: background OS thread is not MTA")
		return
	}

	fmt.Println("OK")
}
