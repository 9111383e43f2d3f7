// Copyright (c) 2022 Tailscale Inc & AUTHORS. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/dblohm7/comptr"
	"github.com/dblohm7/comptr/com"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveIIDs(t *testing.T) {
	const custom = "{00000109-0000-0000-C000-000000000046}"

	iids, err := resolveIIDs([]string{"IStream", custom, " IUnknown ", "IStream", custom})
	require.NoError(t, err)
	require.Len(t, iids, 3)

	assert.Equal(t, "IStream", iids[0].name)
	assert.Same(t, com.IID_IStream, iids[0].iid)

	assert.Equal(t, custom, iids[1].name)
	assert.Equal(t, *com.MustGetIID(custom), *iids[1].iid)

	assert.Equal(t, "IUnknown", iids[2].name)
	assert.Same(t, com.IID_IUnknown, iids[2].iid)
}

func TestResolveIIDsDefaults(t *testing.T) {
	iids, err := resolveIIDs(defaultIIDs)
	require.NoError(t, err)

	names := make([]string, 0, len(iids))
	for _, n := range iids {
		names = append(names, n.name)
	}
	assert.ElementsMatch(t, []string{"IUnknown", "IStream", "ISequentialStream"}, names)
}

func TestResolveIIDsInvalid(t *testing.T) {
	_, err := resolveIIDs([]string{"IUnknown", "IDoesNotExist"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `invalid interface "IDoesNotExist"`)
}

func TestWriteResults(t *testing.T) {
	results := []probeResult{
		{namedIID: namedIID{name: "IUnknown", iid: com.IID_IUnknown}},
		{namedIID: namedIID{name: "IStream", iid: com.IID_IStream}, err: comptr.Error(comptr.E_NOINTERFACE)},
		{namedIID: namedIID{name: "ISequentialStream", iid: com.IID_ISequentialStream}},
	}

	var buf bytes.Buffer
	require.NoError(t, writeResults(&buf, results))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[0], "ISequentialStream {0C733A30-2A1C-11CE-ADE5-00AA0044773D}: supported"), lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "IStream {0000000C-0000-0000-C000-000000000046}: not supported ("), lines[1])
	assert.Equal(t, "IUnknown {00000000-0000-0000-C000-000000000046}: supported", lines[2])
}

func TestProbeCmdRejectsBadCLSID(t *testing.T) {
	var out bytes.Buffer
	cmd := NewProbeCmd(&out)
	cmd.SetArgs([]string{"not-a-clsid"})
	cmd.SetErr(&bytes.Buffer{})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid CLSID")
	assert.Empty(t, out.String())
}

func TestProbeCmdRequiresOneArg(t *testing.T) {
	cmd := NewProbeCmd(&bytes.Buffer{})
	cmd.SetArgs(nil)
	cmd.SetErr(&bytes.Buffer{})

	assert.Error(t, cmd.Execute())
}
