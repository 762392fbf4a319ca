// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pathdata

import (
	"fmt"

	"cogentcore.org/core/base/errors"
)

// ErrMalformedPath is matched by every [*MalformedPathError]
// through [errors.Is].
var ErrMalformedPath = errors.New("bad path")

// MalformedPathError is returned for path data that does not follow
// the SVG path grammar: an invalid number, an unknown command letter,
// an incomplete argument group, an invalid arc flag, or a path that
// does not start with a moveto.
type MalformedPathError struct {

	// Offset is the byte offset in the path data at which the
	// problem was detected.
	Offset int

	// Cmd is the command being parsed, or [PcErr] if none.
	Cmd Command

	// Near is a short excerpt of the path data starting at Offset.
	Near string

	// Msg describes the problem.
	Msg string
}

func (e *MalformedPathError) Error() string {
	return fmt.Sprintf("%v: %s at position %d", ErrMalformedPath, e.Msg, e.Offset+1)
}

// Is reports whether target is [ErrMalformedPath].
func (e *MalformedPathError) Is(target error) bool {
	return target == ErrMalformedPath
}

// near returns up to 16 bytes of data starting at offset i.
func near(data []byte, i int) string {
	if i >= len(data) {
		return ""
	}
	end := min(i+16, len(data))
	return string(data[i:end])
}
