// Copyright (c) 2022 Tailscale Inc & AUTHORS. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package comptr

import (
	"encoding/binary"
	"fmt"

	"github.com/google/uuid"
)

func guidToString(guid GUID) string {
	return fmt.Sprintf("{%08X-%04X-%04X-%02X%02X-%02X%02X%02X%02X%02X%02X}",
		guid.Data1, guid.Data2, guid.Data3,
		guid.Data4[0], guid.Data4[1],
		guid.Data4[2], guid.Data4[3], guid.Data4[4], guid.Data4[5], guid.Data4[6], guid.Data4[7])
}

// ParseGUID parses s, a string containing a GUID. It accepts the registry
// format "{XXXXXXXX-XXXX-XXXX-XXXX-XXXXXXXXXXXX}" as well as the unbraced and
// "urn:uuid:" forms.
func ParseGUID(s string) (GUID, error) {
	u, err := uuid.Parse(s)
	if err != nil {
		return GUID{}, fmt.Errorf("parsing GUID %q: %w", s, err)
	}

	// The textual form of a GUID spells out its first three fields in
	// big-endian order, which is also how uuid.UUID stores them.
	return GUID{
		Data1: binary.BigEndian.Uint32(u[0:4]),
		Data2: binary.BigEndian.Uint16(u[4:6]),
		Data3: binary.BigEndian.Uint16(u[6:8]),
		Data4: [8]byte(u[8:16]),
	}, nil
}

// MustGetGUID parses s, a string containing a GUID and returns a pointer to the
// parsed GUID. If there is an error parsing s, MustGetGUID panics.
func MustGetGUID(s string) *GUID {
	guid, err := ParseGUID(s)
	if err != nil {
		panic(fmt.Sprintf("comptr.MustGetGUID(%q) error %v", s, err))
	}
	return &guid
}
