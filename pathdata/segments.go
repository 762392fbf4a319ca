// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pathdata

import (
	"iter"

	"seehuhn.de/go/geom/vec"
)

// Segment is one drawing operation of a [Path].
type Segment struct {

	// Code is the code shared by all points of the segment.
	Code Code

	// Index is the index of the first point in [Path.Vertices].
	Index int

	// Points are the points of the segment: the control points,
	// if any, followed by the end point.
	Points []vec.Vec2
}

// End returns the end point of the segment.
func (s Segment) End() vec.Vec2 {
	return s.Points[len(s.Points)-1]
}

// Segments returns the drawing operations of the path in order,
// grouping [Curve3] and [Curve4] runs into single segments.
// A truncated run at the end of the path is returned as is.
func (p *Path) Segments() iter.Seq[Segment] {
	return func(yield func(Segment) bool) {
		n := min(len(p.Codes), len(p.Vertices))
		for i := 0; i < n; {
			c := p.Codes[i]
			l := min(c.Len(), n-i)
			if !yield(Segment{Code: c, Index: i, Points: p.Vertices[i : i+l : i+l]}) {
				return
			}
			i += l
		}
	}
}
