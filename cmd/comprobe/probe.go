// Copyright (c) 2022 Tailscale Inc & AUTHORS. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/dblohm7/comptr/com"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// knownIIDs maps interface names accepted by --iid to their IIDs.
var knownIIDs = map[string]*com.IID{
	"IUnknown":          com.IID_IUnknown,
	"IStream":           com.IID_IStream,
	"ISequentialStream": com.IID_ISequentialStream,
}

var defaultIIDs = []string{"IUnknown", "IStream", "ISequentialStream"}

// ProbeCmd holds the probe cmd flags
type ProbeCmd struct {
	IIDs         []string
	OutOfProcess bool
	Verbose      bool

	out io.Writer
}

// NewProbeCmd creates a new command
func NewProbeCmd(out io.Writer) *cobra.Command {
	cmd := &ProbeCmd{
		out: out,
	}
	probeCmd := &cobra.Command{
		Use:          "comprobe <clsid>",
		Short:        "Reports which interfaces a COM class supports",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(_ *cobra.Command, args []string) error {
			return cmd.Run(args[0])
		},
	}

	probeCmd.Flags().StringSliceVar(&cmd.IIDs, "iid", defaultIIDs, "Interface name or IID to query; may be repeated")
	probeCmd.Flags().BoolVar(&cmd.OutOfProcess, "out-of-process", false, "Host the object in a local server instead of in-process")
	probeCmd.Flags().BoolVar(&cmd.Verbose, "verbose", false, "Log COM runtime events to stderr")
	return probeCmd
}

// Run runs the command logic
func (cmd *ProbeCmd) Run(clsidArg string) error {
	clsid, err := com.ParseCLSID(clsidArg)
	if err != nil {
		return errors.Wrap(err, "invalid CLSID")
	}

	iids, err := resolveIIDs(cmd.IIDs)
	if err != nil {
		return err
	}

	log := zap.NewNop()
	if cmd.Verbose {
		log, err = zap.NewDevelopment()
		if err != nil {
			return errors.Wrap(err, "creating logger")
		}
		defer log.Sync()
		com.SetLogger(log)
		defer com.SetLogger(nil)
	}

	log.Debug("probing class",
		zap.Stringer("clsid", clsid),
		zap.Bool("outOfProcess", cmd.OutOfProcess),
		zap.Int("interfaces", len(iids)),
	)

	results, err := probe(clsid, iids, cmd.OutOfProcess)
	if err != nil {
		return errors.Wrapf(err, "probing %s", clsid)
	}

	return writeResults(cmd.out, results)
}

type namedIID struct {
	name string
	iid  *com.IID
}

type probeResult struct {
	namedIID
	// err is nil when the object supports the interface.
	err error
}

// resolveIIDs turns each argument, either a well-known interface name or a
// GUID string, into an IID. Duplicates are dropped.
func resolveIIDs(args []string) ([]namedIID, error) {
	seen := make(map[string]bool, len(args))
	result := make([]namedIID, 0, len(args))
	for _, arg := range args {
		arg = strings.TrimSpace(arg)

		var n namedIID
		if iid, ok := knownIIDs[arg]; ok {
			n = namedIID{name: arg, iid: iid}
		} else {
			iid, err := com.ParseIID(arg)
			if err != nil {
				return nil, errors.Wrapf(err, "invalid interface %q", arg)
			}
			n = namedIID{name: iid.String(), iid: iid}
		}

		key := n.iid.String()
		if seen[key] {
			continue
		}
		seen[key] = true
		result = append(result, n)
	}

	return result, nil
}

// writeResults prints one line per result, ordered by interface name.
func writeResults(w io.Writer, results []probeResult) error {
	sort.Slice(results, func(i, j int) bool {
		return results[i].name < results[j].name
	})

	for _, r := range results {
		status := "supported"
		if r.err != nil {
			status = fmt.Sprintf("not supported (%v)", r.err)
		}
		if _, err := fmt.Fprintf(w, "%s %s: %s\n", r.name, r.iid, status); err != nil {
			return errors.Wrap(err, "writing results")
		}
	}

	return nil
}
