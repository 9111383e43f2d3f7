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
	registerInit("NonGUIApp", NonGUIAppInit)
	register("NonGUIApp", NonGUIApp)
}

func NonGUIAppInit() {
	if err = com.StartRuntime(com.ConsoleApp); err != nil {
		fmt.Println("error: ", err)
	}
}

func NonGUIApp() {
	if err != nil {
		return
	}

	if com.IsCurrentOSThreadSTA() {
		fmt.Println("error: IsCurrentOSThreadSTA got true, want false")
		return
	}

	if err := roundTripShellLink(); err != nil {
		fmt.Println("error: ", err)
		return
	}

	if !checkBackgroundThread(true) {
		fmt.Println("error: background OS thread is not MTA")
		return
	}

	fmt.Println("OK")
}
