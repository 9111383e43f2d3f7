// Copyright (c) 2022 Tailscale Inc & AUTHORS. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build windows

package main

import (
	"fmt"
	"runtime"

	"github.com/dblohm7/comptr/com"
)

func bgThreadCheckMTA(c chan bool) {
	c <- com.IsCurrentOSThreadMTA()
}

func checkBackgroundThread(needLockOSThread bool) bool {
	if needLockOSThread {
		runtime.LockOSThread()
		defer runtime.UnlockOSThread()
	}

	c := make(chan bool)
	go bgThreadCheckMTA(c)
	return <-c
}

// roundTripShellLink instantiates a shell link object and checks that its
// references balance across a clone and an interface query.
func roundTripShellLink() error {
	clsid := com.MustGetCLSID("{00021401-0000-0000-C000-000000000046}")
	unk, err := com.CreateInstance[com.IUnknownABI](clsid)
	if err != nil {
		return err
	}
	defer unk.Close()

	clone := unk.Clone()
	defer clone.Close()

	unk2, err := com.QueryInterface[com.IUnknownABI](clone)
	if err != nil {
		return err
	}
	defer unk2.Close()

	if !com.IsSameObject(unk, unk2) {
		return fmt.Errorf("IsSameObject got false, want true")
	}
	return nil
}
