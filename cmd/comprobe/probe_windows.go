// Copyright (c) 2022 Tailscale Inc & AUTHORS. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build windows

package main

import (
	"github.com/dblohm7/comptr"
	"github.com/dblohm7/comptr/com"
	"github.com/pkg/errors"
)

func probe(clsid *com.CLSID, iids []namedIID, outOfProcess bool) ([]probeResult, error) {
	if err := com.StartRuntime(com.ConsoleApp); err != nil {
		return nil, errors.Wrap(err, "starting COM runtime")
	}

	create := com.CreateInstance[com.IUnknownABI, *com.IUnknownABI]
	if outOfProcess {
		create = com.CreateOutOfProcessInstance[com.IUnknownABI, *com.IUnknownABI]
	}

	unk, err := create(clsid)
	if err != nil {
		return nil, errors.Wrap(err, "creating instance")
	}
	defer unk.Close()

	results := make([]probeResult, 0, len(iids))
	for _, n := range iids {
		results = append(results, probeResult{namedIID: n, err: queryIID(unk, n.iid)})
	}

	return results, nil
}

// queryIID asks unk for iid, immediately releasing whatever it hands back.
func queryIID(unk *com.Ptr[com.IUnknownABI], iid *com.IID) error {
	raw, hr := unk.UnsafeUnwrap().QueryInterface(iid)
	raw, err := comptr.Check(raw, hr)
	if err != nil {
		return err
	}

	// Every COM interface begins with the IUnknown vtable.
	return com.UnsafeWrap((*com.IUnknownABI)(raw)).Close()
}
