// Copyright (c) 2022 Tailscale Inc & AUTHORS. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build windows

package com

//go:generate go run golang.org/x/sys/windows/mkwinsyscall -output zsyscall_windows.go mksyscall.go
//go:generate go run golang.org/x/tools/cmd/goimports -w zsyscall_windows.go

//sys coCreateInstance(clsid *CLSID, unkOuter *IUnknownABI, clsctx coCLSCTX, iid *IID, ppv **IUnknownABI) (hr comptr.HRESULT) = ole32.CoCreateInstance
//sys coGetApartmentType(aptType *coAPTTYPE, qual *coAPTTYPEQUALIFIER) (hr comptr.HRESULT) = ole32.CoGetApartmentType
//sys coInitializeEx(reserved uintptr, flags uint32) (hr comptr.HRESULT) = ole32.CoInitializeEx

// We don't use '?' on coIncrementMTAUsage because that doesn't play nicely with HRESULTs. We manually check for its presence in process.go
//sys coIncrementMTAUsage(cookie *coMTAUsageCookie) (hr comptr.HRESULT) = ole32.CoIncrementMTAUsage

// We use IUnknownABI instead of IStreamABI because it makes the callsite cleaner.
//sys createStreamOnHGlobal(hglobal internal.HGLOBAL, deleteOnRelease bool, stream **IUnknownABI) (hr comptr.HRESULT) = ole32.CreateStreamOnHGlobal
