// Copyright (c) 2022 Tailscale Inc & AUTHORS. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build windows

package com

import (
	"errors"
	"os"
	"testing"

	"github.com/dblohm7/comptr"
)

var clsidShellLink = MustGetCLSID("{00021401-0000-0000-C000-000000000046}")

func TestMain(m *testing.M) {
	if err := StartRuntime(ConsoleApp); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

func TestCreateInstance(t *testing.T) {
	unk, err := CreateInstance[IUnknownABI](clsidShellLink)
	if err != nil {
		t.Fatalf("CreateInstance(CLSID_ShellLink) error: %v", err)
	}
	defer unk.Close()

	if !IsCurrentOSThreadMTA() {
		t.Errorf("test goroutine is not in the MTA")
	}

	stream, err := QueryInterface[IStreamABI](unk)
	if stream != nil {
		stream.Close()
		t.Fatalf("ShellLink unexpectedly implements IStream")
	}
	if err != comptr.Error(comptr.E_NOINTERFACE) {
		t.Errorf("QueryInterface(IStream) error got %v, want E_NOINTERFACE", err)
	}

	unk2, err := QueryInterface[IUnknownABI](unk)
	if err != nil {
		t.Fatalf("QueryInterface(IUnknown) error: %v", err)
	}
	defer unk2.Close()

	if !unk.Equal(unk2) {
		t.Errorf("IUnknown identity is not stable: 0x%X != 0x%X", unk.Addr(), unk2.Addr())
	}
}

func TestCreateInstanceUnregistered(t *testing.T) {
	bogus := MustGetCLSID("{6B1F2D1F-5A3C-4E21-9D4B-112233445566}")
	p, err := CreateInstance[IUnknownABI](bogus)
	if p != nil {
		p.Close()
		t.Fatalf("CreateInstance succeeded for an unregistered class")
	}
	var e comptr.Error
	if !errors.As(err, &e) || !e.Failed() {
		t.Errorf("CreateInstance error got %v (%T), want a failed comptr.Error", err, err)
	}
}
