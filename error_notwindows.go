// Copyright (c) 2022 Tailscale Inc & AUTHORS. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build !windows

package comptr

import (
	"errors"
)

var errNoMessageTable = errors.New("no system message table on this platform")

type noMessages struct{}

func (noMessages) formatMessage(code uint32) (*uint16, uint32, error) {
	return nil, 0, errNoMessageTable
}

func (noMessages) freeMessage(buf *uint16) {}

var systemMessages messageSource = noMessages{}

// messageID returns the message table entry describing e.
func messageID(e Error) uint32 {
	code := uint32(e)
	if HRESULT(e).isCustomer() {
		// Customer-defined errors are Win32 error codes with the fail bit set.
		code ^= hrFailBit
	}
	return code
}
