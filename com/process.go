// Copyright (c) 2022 Tailscale Inc & AUTHORS. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build windows

package com

import (
	"fmt"
	"os"
	"runtime"

	"github.com/dblohm7/comptr"
	"go.uber.org/zap"
	"golang.org/x/sys/windows"
)

// ProcessType is an enumeration that specifies the type of the current process
// when calling StartRuntime.
type ProcessType uint

const (
	// ConsoleApp is a text-mode Windows program.
	ConsoleApp = ProcessType(iota)
	// Service is a Windows service.
	Service
	// GUIApp is a GUI-mode Windows program.
	GUIApp
)

func (pt ProcessType) String() string {
	switch pt {
	case ConsoleApp:
		return "ConsoleApp"
	case Service:
		return "Service"
	case GUIApp:
		return "GUIApp"
	default:
		return fmt.Sprintf("ProcessType(%d)", uint(pt))
	}
}

// StartRuntime permanently initializes COM for the remaining lifetime of the
// current process. To avoid errors, it should be called as early as possible
// during program initialization. When processType == GUIApp, the current
// OS thread becomes permanently locked to the current goroutine; any subsequent
// GUI *must* be created on the same OS thread.
// An excellent location to call StartRuntime is in the init function of the
// main package.
func StartRuntime(processType ProcessType) error {
	runtime.LockOSThread()

	defer func() {
		// When initializing for non-GUI processes, the OS thread may be unlocked
		// upon return from this function.
		if processType != GUIApp {
			runtime.UnlockOSThread()
		}
	}()

	switch processType {
	case ConsoleApp, Service:
		// Just start the MTA implicitly.
		if err := startMTAImplicitly(); err != nil {
			return err
		}
	case GUIApp:
		// For GUIApp, we want the current OS thread to enter a single-threaded
		// apartment (STA). However, we want all other OS threads to reside inside
		// a multi-threaded apartment (MTA). The way to so this is to first start
		// the MTA implicitly, affecting all OS threads who have not yet explicitly
		// entered a COM apartment...
		if err := startMTAImplicitly(); err != nil {
			runtime.UnlockOSThread()
			return err
		}
		// ...and then subsequently explicitly enter a STA on this OS thread, which
		// automatically removes this OS thread from the MTA.
		if err := enterSTA(); err != nil {
			runtime.UnlockOSThread()
			return err
		}
		// From this point forward, we must never unlock the OS thread.
	default:
		return os.ErrInvalid
	}

	Logger().Debug("COM runtime started", zap.Stringer("processType", processType))
	return nil
}

// startMTAImplicitly creates an implicit multi-threaded apartment (MTA) for
// all threads in a process that do not otherwise explicitly enter a COM apartment.
func startMTAImplicitly() error {
	// CoIncrementMTAUsage is the modern API to use for creating the MTA implicitly,
	// however we may fall back to a legacy mechanism when the former API is unavailable.
	if err := procCoIncrementMTAUsage.Find(); err != nil {
		Logger().Debug("CoIncrementMTAUsage unavailable, sustaining the MTA from a background thread", zap.Error(err))
		return startMTAImplicitlyLegacy()
	}

	// We do not retain cookie beyond this function, as we have no intention of
	// tearing any of this back down.
	var cookie coMTAUsageCookie
	hr := coIncrementMTAUsage(&cookie)
	if e := comptr.ErrorFromHRESULT(hr); e.Failed() {
		return e
	}

	return nil
}

// startMTAImplicitlyLegacy works by having a background OS thread explicitly enter
// the multi-threaded apartment. All other OS threads that have not explicitly
// entered an apartment will become implicit members of that MTA.
func startMTAImplicitlyLegacy() error {
	// We need to start the MTA on a background OS thread, HOWEVER we also want this
	// to happen synchronously, so we wait on c for MTA initialization to complete.
	c := make(chan error)
	go bgMTASustainer(c)
	return <-c
}

// bgMTASustainer locks the current goroutine to the current OS thread, enters
// the COM multi-threaded apartment, and then blocks for the remainder of the
// process's lifetime.
func bgMTASustainer(c chan error) {
	runtime.LockOSThread()
	err := enterMTA()
	c <- err
	if err != nil {
		// We didn't enter the MTA, so just unlock and bail.
		runtime.UnlockOSThread()
		return
	}
	select {}
}

// enterMTA causes the current OS thread to explicitly declare itself to be a
// member of COM's multi-threaded apartment. Note that this function affects
// thread-local state, so use carefully!
func enterMTA() error {
	return coInit(windows.COINIT_MULTITHREADED)
}

// enterSTA causes the current OS thread to create and enter a single-threaded
// apartment. The current OS thread must be locked and remain locked for the
// duration of the thread's time in the apartment. A single-threaded apartment
// should be used if and only if an OS thread is going to be creating windows
// and pumping messages.
func enterSTA() error {
	return coInit(windows.COINIT_APARTMENTTHREADED)
}

// coInit is a wrapper for CoInitializeEx that properly handles the S_FALSE
// error code (x/sys/windows.CoInitializeEx does not).
func coInit(apartment uint32) error {
	hr := coInitializeEx(0, apartment)
	if e := comptr.ErrorFromHRESULT(hr); e.Failed() {
		return e
	}

	return nil
}
