// Copyright (c) 2022 Tailscale Inc & AUTHORS. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build windows

package com

import (
	"io"
	"math"
	"runtime"
	"syscall"
	"unsafe"

	"github.com/dblohm7/comptr"
	"github.com/dblohm7/comptr/internal"
)

type STGC uint32

const (
	STGC_DEFAULT       = STGC(0)
	STGC_OVERWRITE     = STGC(1)
	STGC_ONLYIFCURRENT = STGC(2)
)

type ISequentialStreamABI struct {
	IUnknownABI
}

type IStreamABI struct {
	ISequentialStreamABI
}

// Stream is an IStream interface pointer. Close it when done.
type Stream struct {
	*Ptr[IStreamABI]
}

func (abi *ISequentialStreamABI) IID() *IID {
	return IID_ISequentialStream
}

func (abi *ISequentialStreamABI) Read(p []byte) (n int, err error) {
	if len(p) == 0 {
		return 0, nil
	}

	var cbRead uint32
	method := unsafe.Slice(abi.Vtbl, 5)[3]

	rc, _, _ := syscall.SyscallN(
		method,
		uintptr(unsafe.Pointer(abi)),
		uintptr(unsafe.Pointer(&p[0])),
		uintptr(clampRWLen(len(p))),
		uintptr(unsafe.Pointer(&cbRead)),
	)
	e := comptr.ErrorFromHRESULT(comptr.HRESULT(rc))
	if e.Failed() {
		return 0, e
	}

	// Various implementations of IStream handle EOF differently. We need to
	// deal with both.
	if e.AsHRESULT() == comptr.S_FALSE || cbRead == 0 {
		return int(cbRead), io.EOF
	}

	return int(cbRead), nil
}

func (abi *ISequentialStreamABI) Write(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}

	var cbWritten uint32
	method := unsafe.Slice(abi.Vtbl, 5)[4]

	rc, _, _ := syscall.SyscallN(
		method,
		uintptr(unsafe.Pointer(abi)),
		uintptr(unsafe.Pointer(&p[0])),
		uintptr(clampRWLen(len(p))),
		uintptr(unsafe.Pointer(&cbWritten)),
	)
	if e := comptr.ErrorFromHRESULT(comptr.HRESULT(rc)); e.Failed() {
		return 0, e
	}

	return int(cbWritten), nil
}

func clampRWLen(n int) uint32 {
	if uint64(n) > math.MaxUint32 {
		return math.MaxUint32
	}
	return uint32(n)
}

func (abi *IStreamABI) IID() *IID {
	return IID_IStream
}

func (abi *IStreamABI) Seek(offset int64, whence int) (n int64, _ error) {
	var hr comptr.HRESULT
	method := unsafe.Slice(abi.Vtbl, 14)[5]

	if runtime.GOARCH == "386" {
		words := (*[2]uintptr)(unsafe.Pointer(&offset))
		rc, _, _ := syscall.SyscallN(
			method,
			uintptr(unsafe.Pointer(abi)),
			words[0],
			words[1],
			uintptr(uint32(whence)),
			uintptr(unsafe.Pointer(&n)),
		)
		hr = comptr.HRESULT(rc)
	} else {
		rc, _, _ := syscall.SyscallN(
			method,
			uintptr(unsafe.Pointer(abi)),
			uintptr(offset),
			uintptr(uint32(whence)),
			uintptr(unsafe.Pointer(&n)),
		)
		hr = comptr.HRESULT(rc)
	}

	if e := comptr.ErrorFromHRESULT(hr); e.Failed() {
		return 0, e
	}

	return n, nil
}

func (abi *IStreamABI) SetSize(newSize uint64) error {
	var hr comptr.HRESULT
	method := unsafe.Slice(abi.Vtbl, 14)[6]

	if runtime.GOARCH == "386" {
		words := (*[2]uintptr)(unsafe.Pointer(&newSize))
		rc, _, _ := syscall.SyscallN(
			method,
			uintptr(unsafe.Pointer(abi)),
			words[0],
			words[1],
		)
		hr = comptr.HRESULT(rc)
	} else {
		rc, _, _ := syscall.SyscallN(
			method,
			uintptr(unsafe.Pointer(abi)),
			uintptr(newSize),
		)
		hr = comptr.HRESULT(rc)
	}

	if e := comptr.ErrorFromHRESULT(hr); e.Failed() {
		return e
	}

	return nil
}

func (abi *IStreamABI) Commit(flags STGC) error {
	method := unsafe.Slice(abi.Vtbl, 14)[8]

	rc, _, _ := syscall.SyscallN(
		method,
		uintptr(unsafe.Pointer(abi)),
		uintptr(flags),
	)

	if e := comptr.ErrorFromHRESULT(comptr.HRESULT(rc)); e.Failed() {
		return e
	}

	return nil
}

func (s Stream) Read(buf []byte) (int, error) {
	return s.UnsafeUnwrap().Read(buf)
}

func (s Stream) Write(buf []byte) (int, error) {
	return s.UnsafeUnwrap().Write(buf)
}

func (s Stream) Seek(offset int64, whence int) (int64, error) {
	return s.UnsafeUnwrap().Seek(offset, whence)
}

func (s Stream) SetSize(newSize uint64) error {
	return s.UnsafeUnwrap().SetSize(newSize)
}

func (s Stream) Commit(flags STGC) error {
	return s.UnsafeUnwrap().Commit(flags)
}

// Clone returns another Stream sharing s's reference count and seek pointer.
func (s Stream) Clone() Stream {
	return Stream{s.Ptr.Clone()}
}

// NewMemoryStream creates a new in-memory Stream object initially containing
// initialBytes. Its seek pointer is guaranteed to be the start of the stream.
func NewMemoryStream(initialBytes []byte) (result Stream, _ error) {
	if uint64(len(initialBytes)) > math.MaxUint32 {
		return result, comptr.ErrorFromHRESULT(comptr.E_OUTOFMEMORY)
	}

	p, err := New(func() (*IStreamABI, error) {
		var punk *IUnknownABI
		hr := createStreamOnHGlobal(internal.HGLOBAL(0), true, &punk)
		return comptr.Check((*IStreamABI)(unsafe.Pointer(punk)), hr)
	})
	if err != nil {
		return result, err
	}

	obj := Stream{p}
	if len(initialBytes) == 0 {
		return obj, nil
	}

	if err := obj.SetSize(uint64(len(initialBytes))); err != nil {
		obj.Close()
		return result, err
	}

	n, err := obj.Write(initialBytes)
	if err == nil && n != len(initialBytes) {
		err = io.ErrShortWrite
	}
	if err == nil {
		_, err = obj.Seek(0, io.SeekStart)
	}
	if err != nil {
		obj.Close()
		return result, err
	}

	return obj, nil
}
