// Copyright (c) 2022 Tailscale Inc & AUTHORS. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package com

import (
	"unsafe"

	"github.com/dblohm7/comptr"
)

// Unknown is the IUnknown protocol shared by every COM interface. Its methods
// map one-to-one onto the first three vtable slots of any COM object.
type Unknown interface {
	// QueryInterface asks the object whether it implements the interface
	// identified by iid. On success the returned pointer carries a new
	// reference that the caller owns.
	QueryInterface(iid *IID) (unsafe.Pointer, comptr.HRESULT)
	// AddRef increments the object's reference count and returns the new
	// count. It never fails.
	AddRef() uint32
	// Release decrements the object's reference count and returns the new
	// count. The object frees itself when the count reaches zero.
	Release() uint32
}

// Interface is a type constraint for pointers to COM interface ABIs. IID must
// be declared on the pointer receiver and must not dereference it, since it is
// called on nil pointers to discover which interface to query for.
type Interface[A any] interface {
	*A
	Unknown
	IID() *IID
}
