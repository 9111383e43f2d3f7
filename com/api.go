// Copyright (c) 2022 Tailscale Inc & AUTHORS. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build windows

package com

import (
	"unsafe"

	"github.com/dblohm7/comptr"
)

func getCurrentApartmentInfo() (aptInfo, error) {
	var info aptInfo
	hr := coGetApartmentType(&info.apt, &info.qualifier)
	if err := comptr.ErrorFromHRESULT(hr); err.Failed() {
		return info, err
	}

	return info, nil
}

// aptChecker is a function that applies an arbitrary predicate to an OS thread's
// apartment information, returning true if the input satisifes that predicate.
type aptChecker func(*aptInfo) bool

// checkCurrentApartment obtains information about the COM apartment that the
// current OS thread resides in, and then passes that information to chk,
// which evaluates that information and determines the return value.
func checkCurrentApartment(chk aptChecker) bool {
	info, err := getCurrentApartmentInfo()
	if err != nil {
		return false
	}

	return chk(&info)
}

// IsCurrentOSThreadSTA checks if the current OS thread resides in a
// single-threaded apartment and returns true if so.
func IsCurrentOSThreadSTA() bool {
	return checkCurrentApartment(func(i *aptInfo) bool {
		return i.apt == coAPTTYPE_STA || i.apt == coAPTTYPE_MAINSTA
	})
}

// IsCurrentOSThreadMTA checks if the current OS thread resides in the
// multi-threaded apartment and returns true if so.
func IsCurrentOSThreadMTA() bool {
	return checkCurrentApartment(func(i *aptInfo) bool {
		return i.apt == coAPTTYPE_MTA
	})
}

// createInstanceWithCLSCTX creates a new COM object of class clsid and returns
// it as interface A. clsctx determines the acceptable location for hosting the
// COM object (in-process or local but out-of-process).
func createInstanceWithCLSCTX[A any, P Interface[A]](clsid *CLSID, clsctx coCLSCTX) (*Ptr[A], error) {
	return New[A, P](func() (P, error) {
		var punk *IUnknownABI
		hr := coCreateInstance(
			clsid,
			nil,
			clsctx,
			P(nil).IID(),
			&punk,
		)
		return comptr.Check(P((*A)(unsafe.Pointer(punk))), hr)
	})
}

// CreateInstance instantiates a new in-process COM object of class clsid,
// returning its interface A.
func CreateInstance[A any, P Interface[A]](clsid *CLSID) (*Ptr[A], error) {
	return createInstanceWithCLSCTX[A, P](clsid, coCLSCTX_INPROC_SERVER)
}

// CreateOutOfProcessInstance instantiates a new local, out-of-process COM
// object of class clsid, returning its interface A.
func CreateOutOfProcessInstance[A any, P Interface[A]](clsid *CLSID) (*Ptr[A], error) {
	return createInstanceWithCLSCTX[A, P](clsid, coCLSCTX_LOCAL_SERVER)
}
