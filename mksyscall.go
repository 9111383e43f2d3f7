// Copyright (c) 2022 Tailscale Inc & AUTHORS. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build windows

package comptr

//go:generate go run golang.org/x/sys/windows/mkwinsyscall -output zsyscall_windows.go mksyscall.go
//go:generate go run golang.org/x/tools/cmd/goimports -w zsyscall_windows.go

// buffer is declared as **uint16 because FORMAT_MESSAGE_ALLOCATE_BUFFER makes
// FormatMessageW store a pointer to its LocalAlloc'd buffer there.
//sys formatMessage(flags uint32, source uintptr, messageID uint32, languageID uint32, buffer **uint16, size uint32, args uintptr) (n uint32, err error) [failretval==0] = kernel32.FormatMessageW
