// Copyright (c) 2022 Tailscale Inc & AUTHORS. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build windows

// Package internal holds Win32 types shared between packages of this module
// that are not part of its public API.
package internal

import (
	"golang.org/x/sys/windows"
)

type HGLOBAL windows.Handle
