// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pathdata

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"cogentcore.org/core/base/errors"
	"seehuhn.de/go/geom/vec"
)

// Path is a sequence of absolute vertices, each paired with a drawing [Code].
// A [Curve4] segment is a run of three vertices with the same code
// (two control points and the end point), and a [Curve3] segment is
// a run of two (one control point and the end point).
// Every other code applies to a single vertex. A non-empty Path
// produced by [Parse] always starts with [MoveTo], and the vertex of
// each [ClosePoly] is the start point of its subpath.
type Path struct {

	// Vertices are the absolute points of the path.
	Vertices []vec.Vec2

	// Codes are the drawing codes, one for each vertex.
	Codes []Code
}

// Len returns the number of vertices in the path.
func (p *Path) Len() int {
	return len(p.Vertices)
}

// Empty returns true if the path has no vertices.
func (p *Path) Empty() bool {
	return len(p.Vertices) == 0
}

// Clone returns a deep copy of the path.
func (p *Path) Clone() *Path {
	return &Path{Vertices: slices.Clone(p.Vertices), Codes: slices.Clone(p.Codes)}
}

// add appends the given vertices, all with code c.
func (p *Path) add(c Code, pts ...vec.Vec2) {
	for _, pt := range pts {
		p.Vertices = append(p.Vertices, pt)
		p.Codes = append(p.Codes, c)
	}
}

// Validate checks the structural invariants of the path: matching
// vertex and code counts, a leading [MoveTo], complete [Curve3] and
// [Curve4] runs, and [ClosePoly] vertices at the start of their subpath.
func (p *Path) Validate() error {
	n := len(p.Codes)
	if len(p.Vertices) != n {
		return fmt.Errorf("pathdata: %d vertices but %d codes", len(p.Vertices), n)
	}
	if n == 0 {
		return nil
	}
	if p.Codes[0] != MoveTo {
		return errors.New("pathdata: path does not start with MOVETO")
	}
	var start vec.Vec2
	for i := 0; i < n; {
		c := p.Codes[i]
		switch c {
		case MoveTo:
			start = p.Vertices[i]
		case LineTo:
		case Curve3, Curve4:
			l := c.Len()
			if i+l > n {
				return fmt.Errorf("pathdata: incomplete %v segment at vertex %d", c, i)
			}
			for j := i + 1; j < i+l; j++ {
				if p.Codes[j] != c {
					return fmt.Errorf("pathdata: incomplete %v segment at vertex %d", c, i)
				}
			}
		case ClosePoly:
			if !EqualPoint(p.Vertices[i], start) {
				return fmt.Errorf("pathdata: CLOSEPOLY at vertex %d is not at the subpath start", i)
			}
		default:
			return fmt.Errorf("pathdata: invalid code %v at vertex %d", c, i)
		}
		i += c.Len()
	}
	return nil
}

// ToSVG returns the path as normalized SVG path data, using only
// absolute M, L, Q and C commands and z.
func (p *Path) ToSVG() string {
	sb := strings.Builder{}
	for seg := range p.Segments() {
		switch seg.Code {
		case MoveTo:
			sb.WriteString("M")
		case LineTo:
			sb.WriteString("L")
		case Curve3:
			sb.WriteString("Q")
		case Curve4:
			sb.WriteString("C")
		case ClosePoly:
			sb.WriteString("z")
			continue
		default:
			continue
		}
		for i, pt := range seg.Points {
			if i > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(num(pt.X))
			sb.WriteByte(' ')
			sb.WriteString(num(pt.Y))
		}
	}
	return sb.String()
}

func (p *Path) String() string {
	return p.ToSVG()
}

func num(f float64) string {
	if f == 0 {
		return "0" // also for -0
	}
	return strconv.FormatFloat(f, 'g', -1, 64)
}
