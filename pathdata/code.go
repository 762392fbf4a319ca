// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pathdata

import "strconv"

// Code is the drawing code of one vertex in a [Path].
// The values match the vertex codes used by common "vertices + codes"
// path renderers, such as matplotlib.
type Code uint8

const (
	// Stop marks the end of the path. The parser never emits it.
	Stop Code = 0

	// MoveTo starts a new subpath at its vertex.
	MoveTo Code = 1

	// LineTo draws a straight line to its vertex.
	LineTo Code = 2

	// Curve3 is a quadratic Bézier segment: a run of two vertices,
	// the control point and the end point.
	Curve3 Code = 3

	// Curve4 is a cubic Bézier segment: a run of three vertices,
	// the two control points and the end point.
	Curve4 Code = 4

	// ClosePoly closes the current subpath. Its vertex is the
	// start point of the subpath.
	ClosePoly Code = 79
)

// Len returns the number of vertices in one segment with this code.
func (c Code) Len() int {
	switch c {
	case Curve3:
		return 2
	case Curve4:
		return 3
	}
	return 1
}

func (c Code) String() string {
	switch c {
	case Stop:
		return "STOP"
	case MoveTo:
		return "MOVETO"
	case LineTo:
		return "LINETO"
	case Curve3:
		return "CURVE3"
	case Curve4:
		return "CURVE4"
	case ClosePoly:
		return "CLOSEPOLY"
	}
	return "Code(" + strconv.Itoa(int(c)) + ")"
}
