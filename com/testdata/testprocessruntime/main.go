// Copyright (c) 2022 Tailscale Inc & AUTHORS. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build windows

package main

import (
	"fmt"
	"os"
)

var (
	cmds = map[string]func(){}
	// err holds the result of whichever init function ran.
	err error
)

func register(name string, f func()) {
	if _, ok := cmds[name]; ok {
		panic("duplicate registration: " + name)
	}
	cmds[name] = f
}

// registerInit runs f immediately if name was requested on the command line,
// so that it executes during package initialization.
func registerInit(name string, f func()) {
	if len(os.Args) >= 2 && os.Args[1] == name {
		f()
	}
}

func main() {
	if len(os.Args) < 2 {
		fmt.Println("usage: testprocessruntime <name>")
		os.Exit(2)
	}

	f := cmds[os.Args[1]]
	if f == nil {
		fmt.Printf("error: unknown function %q\n", os.Args[1])
		os.Exit(2)
	}
	f()
}
