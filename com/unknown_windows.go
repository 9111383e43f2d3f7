// Copyright (c) 2022 Tailscale Inc & AUTHORS. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build windows

package com

import (
	"syscall"
	"unsafe"

	"github.com/dblohm7/comptr"
)

// IUnknownABI describes the ABI of the IUnknown interface (ie, a vtable).
// Every other ABI type in this package embeds it as its first field.
type IUnknownABI struct {
	Vtbl *uintptr
}

// IID always returns IID_IUnknown.
func (abi *IUnknownABI) IID() *IID {
	return IID_IUnknown
}

// QueryInterface implements the QueryInterface call for a COM interface pointer.
// iid is the desired interface ID.
func (abi *IUnknownABI) QueryInterface(iid *IID) (unsafe.Pointer, comptr.HRESULT) {
	var result unsafe.Pointer
	method := unsafe.Slice(abi.Vtbl, 3)[0]

	rc, _, _ := syscall.SyscallN(
		method,
		uintptr(unsafe.Pointer(abi)),
		uintptr(unsafe.Pointer(iid)),
		uintptr(unsafe.Pointer(&result)),
	)

	return result, comptr.HRESULT(rc)
}

// AddRef implements the AddRef call for a COM interface pointer.
func (abi *IUnknownABI) AddRef() uint32 {
	method := unsafe.Slice(abi.Vtbl, 3)[1]

	rc, _, _ := syscall.SyscallN(
		method,
		uintptr(unsafe.Pointer(abi)),
	)

	return uint32(rc)
}

// Release implements the Release call for a COM interface pointer.
func (abi *IUnknownABI) Release() uint32 {
	method := unsafe.Slice(abi.Vtbl, 3)[2]

	rc, _, _ := syscall.SyscallN(
		method,
		uintptr(unsafe.Pointer(abi)),
	)

	return uint32(rc)
}

// IsSameObject returns true when a and b are interfaces on the same COM
// object, as determined by COM's identity rule for IUnknown.
func IsSameObject[A, B any](a *Ptr[A], b *Ptr[B]) bool {
	same, err := sameIdentity[IUnknownABI](a, b)
	return err == nil && same
}
