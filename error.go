// Copyright (c) 2022 Tailscale Inc & AUTHORS. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package comptr

import (
	"fmt"
	"unicode/utf16"
	"unsafe"
)

// Error is the error form of an HRESULT. It is returned by every fallible
// operation in this module whose failure originates in a native call.
//
// Errors order and compare by their raw code, so callers may use == to test
// for an exact failure category such as E_NOINTERFACE.
type Error HRESULT

// ErrorFromHRESULT creates an Error from hr.
func ErrorFromHRESULT(hr HRESULT) Error {
	return Error(hr)
}

// Check returns v when hr indicates success. Otherwise it returns the zero
// value of T together with hr as an Error; v is discarded.
func Check[T any](v T, hr HRESULT) (T, error) {
	if hr.Failed() {
		var zero T
		return zero, Error(hr)
	}
	return v, nil
}

// IsOK returns true when the Error is unconditionally successful.
func (e Error) IsOK() bool {
	return HRESULT(e) == S_OK
}

// Succeeded returns true when the Error is successful, but its error code
// may include additional status information.
func (e Error) Succeeded() bool {
	return HRESULT(e).Succeeded()
}

// Failed returns true when the Error contains a failure code.
func (e Error) Failed() bool {
	return HRESULT(e).Failed()
}

// AsHRESULT converts the Error to a HRESULT.
func (e Error) AsHRESULT() HRESULT {
	return HRESULT(e)
}

// Error produces a human-readable message describing Error e, as formatted
// by the host. When the host has no message for e, a generic string
// containing the hex code is returned instead.
func (e Error) Error() string {
	if msg, ok := renderMessage(systemMessages, messageID(e)); ok {
		return msg
	}
	return fmt.Sprintf("comptr.Error 0x%08X", uint32(e))
}

// messageSource produces message text for status codes in a buffer that the
// host allocates. Every buffer returned by formatMessage must be passed to
// freeMessage exactly once.
type messageSource interface {
	formatMessage(code uint32) (buf *uint16, n uint32, err error)
	freeMessage(buf *uint16)
}

// renderMessage copies the message for code out of a buffer obtained from src.
// Any buffer src hands out is released before renderMessage returns,
// regardless of whether formatting or decoding succeeded.
func renderMessage(src messageSource, code uint32) (msg string, ok bool) {
	buf, n, err := src.formatMessage(code)
	if buf != nil {
		defer src.freeMessage(buf)
	}
	if err != nil || buf == nil || n == 0 {
		return "", false
	}

	u16 := unsafe.Slice(buf, n)
	for ; n > 0 && (u16[n-1] == '\n' || u16[n-1] == '\r'); n-- {
	}
	if n == 0 {
		return "", false
	}

	return string(utf16.Decode(u16[:n])), true
}
