// Copyright (c) 2022 Tailscale Inc & AUTHORS. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package com

import (
	"fmt"
	"sync/atomic"
	"unsafe"

	"github.com/dblohm7/comptr"
	"go.uber.org/zap"
)

// Ptr owns exactly one reference on a COM object, accessed through the
// interface whose ABI is A. The object's own reference count is the lifetime
// authority: every Ptr (and every Ptr produced by Clone or QueryInterface)
// holds one unit of that count and gives it back exactly once, when Close is
// called.
//
// Lifetimes are explicit. No finalizer is installed, so a Ptr that is never
// closed leaks its reference.
//
// A Ptr may be handed to, and closed from, other goroutines. That is only
// sound when the wrapped object's AddRef and Release are safe to call
// concurrently, which COM guarantees for objects living in the multi-threaded
// apartment and for free-threaded objects. Ptr itself adds no locking around
// the object; it is the caller's obligation not to share Ptrs to
// apartment-bound objects across OS threads.
//
// Ptr must not be copied; use Clone.
type Ptr[A any] struct {
	p        *A
	unk      Unknown
	released atomic.Bool
}

// New obtains an interface pointer from f and wraps it in a new Ptr. Errors
// returned by f are passed through unchanged. f must return either a non-nil
// pointer or a non-nil error; New panics when f returns neither.
func New[A any, P Interface[A]](f func() (P, error)) (*Ptr[A], error) {
	p, err := f()
	if err != nil {
		return nil, err
	}

	return UnsafeWrap[A, P](p), nil
}

// UnsafeWrap wraps p, transferring ownership of one of its references to the
// returned Ptr. As the name implies, this is unsafe: p must point at a live
// COM object implementing the interface described by A, and the caller must
// not release that reference itself. UnsafeWrap panics when p is nil.
func UnsafeWrap[A any, P Interface[A]](p P) *Ptr[A] {
	if p == nil {
		panic("com: cannot wrap a nil interface pointer")
	}

	return &Ptr[A]{p: (*A)(p), unk: p}
}

// Addr returns the address of the wrapped interface pointer. It neither
// transfers ownership nor checks whether o has been closed. The address of a
// nil Ptr is zero.
func (o *Ptr[A]) Addr() uintptr {
	if o == nil {
		return 0
	}
	return uintptr(unsafe.Pointer(o.p))
}

// UnsafeUnwrap returns the underlying ABI of the object without adding a
// reference. The result is valid only while o, or a Ptr sharing its
// reference count, remains open.
func (o *Ptr[A]) UnsafeUnwrap() *A {
	o.mustBeLive("UnsafeUnwrap")
	return o.p
}

// Clone adds a reference to the object and returns a new Ptr that owns it.
// The returned Ptr must be closed independently of o.
func (o *Ptr[A]) Clone() *Ptr[A] {
	o.mustBeLive("Clone")
	o.unk.AddRef()
	return &Ptr[A]{p: o.p, unk: o.unk}
}

// Close releases the reference owned by o. Only the first call has any effect;
// it always returns nil.
func (o *Ptr[A]) Close() error {
	if o == nil || !o.released.CompareAndSwap(false, true) {
		return nil
	}

	if n := o.unk.Release(); n == 0 {
		if ce := Logger().Check(zap.DebugLevel, "released last reference"); ce != nil {
			ce.Write(zap.Uintptr("addr", o.Addr()))
		}
	}
	return nil
}

// Closed reports whether Close has been called on o. A nil Ptr owns no
// reference and is always closed.
func (o *Ptr[A]) Closed() bool {
	return o == nil || o.released.Load()
}

// Equal reports whether o and other wrap the same interface pointer. This is
// an identity comparison; two Ptrs to different interfaces on the same object
// are not equal (see IsSameObject for that). Two nil Ptrs are equal.
func (o *Ptr[A]) Equal(other *Ptr[A]) bool {
	return o.Addr() == other.Addr()
}

// Compare orders a and b by the numeric value of their interface pointers,
// returning -1, 0, or +1. The ordering carries no meaning beyond being
// deterministic for the lifetime of the objects. A nil Ptr orders first.
func Compare[A any](a, b *Ptr[A]) int {
	x, y := a.Addr(), b.Addr()
	switch {
	case x < y:
		return -1
	case x > y:
		return 1
	default:
		return 0
	}
}

func (o *Ptr[A]) String() string {
	return fmt.Sprintf("com.Ptr(0x%X)", o.Addr())
}

func (o *Ptr[A]) mustBeLive(op string) {
	if o.Closed() {
		panic(fmt.Sprintf("com: %s called on a closed Ptr(0x%X)", op, o.Addr()))
	}
}

// QueryInterface asks the object behind p whether it implements the interface
// described by B. On success it returns a new Ptr that owns the reference
// produced by the query. On failure it returns a comptr.Error (usually
// E_NOINTERFACE) and no Ptr. p is not modified either way.
func QueryInterface[B any, PB Interface[B], A any](p *Ptr[A]) (*Ptr[B], error) {
	p.mustBeLive("QueryInterface")

	var iidSrc PB
	raw, hr := p.unk.QueryInterface(iidSrc.IID())
	raw, err := comptr.Check(raw, hr)
	if err != nil {
		return nil, err
	}

	return UnsafeWrap[B, PB](PB((*B)(raw))), nil
}

// As is like QueryInterface but panics when the object does not implement B.
func As[B any, PB Interface[B], A any](p *Ptr[A]) *Ptr[B] {
	result, err := QueryInterface[B, PB](p)
	if err != nil {
		panic(fmt.Sprintf("com.As(%s) error %v", PB(nil).IID(), err))
	}
	return result
}

// sameIdentity reports whether a and b reference the same COM object by
// comparing the pointers each yields for the identity interface U.
func sameIdentity[U any, PU Interface[U], A, B any](a *Ptr[A], b *Ptr[B]) (bool, error) {
	ua, err := QueryInterface[U, PU](a)
	if err != nil {
		return false, err
	}
	defer ua.Close()

	ub, err := QueryInterface[U, PU](b)
	if err != nil {
		return false, err
	}
	defer ub.Close()

	return ua.Addr() == ub.Addr(), nil
}
