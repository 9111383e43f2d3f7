// Copyright (c) 2022 Tailscale Inc & AUTHORS. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build tools

package comptr

// Generators invoked by the go:generate directives in this module.
import (
	_ "golang.org/x/sys/windows/mkwinsyscall"
	_ "golang.org/x/tools/cmd/goimports"
)
