// Copyright (c) 2022 Tailscale Inc & AUTHORS. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build !windows

package main

import (
	"github.com/dblohm7/comptr/com"
	"github.com/pkg/errors"
)

var errRequiresWindows = errors.New("probing COM classes requires Windows")

func probe(clsid *com.CLSID, iids []namedIID, outOfProcess bool) ([]probeResult, error) {
	return nil, errRequiresWindows
}
