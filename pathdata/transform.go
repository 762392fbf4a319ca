// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pathdata

import (
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"
)

// Affine returns the transform that maps (x,y) to
// (a*x + c*y + e, b*x + d*y + f), the same order of values
// as in the SVG matrix(a b c d e f) transform.
func Affine(a, b, c, d, e, f float64) matrix.Matrix {
	return matrix.Matrix{a, b, c, d, e, f}
}

// Affine2x3 returns the transform given as the top two rows
// of a 3x3 matrix acting on column vectors (x, y, 1).
func Affine2x3(m [2][3]float64) matrix.Matrix {
	return Affine(m[0][0], m[1][0], m[0][1], m[1][1], m[0][2], m[1][2])
}

// Affine3x3 returns the transform given as a 3x3 matrix acting on
// column vectors (x, y, 1). The last row must be (0, 0, 1) and is ignored.
func Affine3x3(m [3][3]float64) matrix.Matrix {
	return Affine2x3([2][3]float64{m[0], m[1]})
}

// TransformPoint returns v transformed by m.
func TransformPoint(m matrix.Matrix, v vec.Vec2) vec.Vec2 {
	return vec.Vec2{
		X: m[0]*v.X + m[2]*v.Y + m[4],
		Y: m[1]*v.X + m[3]*v.Y + m[5],
	}
}

// Transform returns a copy of the path with m applied to every vertex.
func (p *Path) Transform(m matrix.Matrix) *Path {
	q := p.Clone()
	q.transform(m)
	return q
}

// transform applies m to every vertex in place.
func (p *Path) transform(m matrix.Matrix) {
	if m == matrix.Identity {
		return
	}
	for i, v := range p.Vertices {
		p.Vertices[i] = TransformPoint(m, v)
	}
}
