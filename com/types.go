// Copyright (c) 2022 Tailscale Inc & AUTHORS. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package com

import (
	"unsafe"

	"github.com/dblohm7/comptr"
)

// We intentionally export these types across all GOOSes

// IID is a GUID that represents an interface ID.
type IID comptr.GUID

// CLSID is a GUID that represents a class ID.
type CLSID comptr.GUID

func (iid *IID) String() string {
	return (*comptr.GUID)(unsafe.Pointer(iid)).String()
}

func (clsid *CLSID) String() string {
	return (*comptr.GUID)(unsafe.Pointer(clsid)).String()
}

// ParseIID parses s, a string containing an interface ID.
func ParseIID(s string) (*IID, error) {
	guid, err := comptr.ParseGUID(s)
	if err != nil {
		return nil, err
	}
	return (*IID)(unsafe.Pointer(&guid)), nil
}

// ParseCLSID parses s, a string containing a class ID.
func ParseCLSID(s string) (*CLSID, error) {
	guid, err := comptr.ParseGUID(s)
	if err != nil {
		return nil, err
	}
	return (*CLSID)(unsafe.Pointer(&guid)), nil
}

// MustGetIID parses s, a string containing an IID and returns a pointer to the
// parsed IID. s must be specified in the format "{XXXXXX-XXXX-XXXX-XXXX-XXXXXXXXXXXX}".
// If there is an error parsing s, MustGetIID panics.
func MustGetIID(s string) *IID {
	return (*IID)(unsafe.Pointer(comptr.MustGetGUID(s)))
}

// MustGetCLSID parses s, a string containing a CLSID and returns a pointer to the
// parsed CLSID. s must be specified in the format "{XXXXXX-XXXX-XXXX-XXXX-XXXXXXXXXXXX}".
// If there is an error parsing s, MustGetCLSID panics.
func MustGetCLSID(s string) *CLSID {
	return (*CLSID)(unsafe.Pointer(comptr.MustGetGUID(s)))
}

var (
	IID_IUnknown          = &IID{0x00000000, 0x0000, 0x0000, [8]byte{0xC0, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x46}}
	IID_ISequentialStream = &IID{0x0C733A30, 0x2A1C, 0x11CE, [8]byte{0xAD, 0xE5, 0x00, 0xAA, 0x00, 0x44, 0x77, 0x3D}}
	IID_IStream           = &IID{0x0000000C, 0x0000, 0x0000, [8]byte{0xC0, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x46}}
)
