// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pathdata

import (
	"math"

	"seehuhn.de/go/geom/vec"
)

// Epsilon is the smallest number below which we assume the value to be zero.
// This is to avoid numerical floating point issues.
var Epsilon = 1e-10

// Equal returns true if a and b are equal within an absolute
// tolerance of Epsilon.
func Equal(a, b float64) bool {
	if a < b {
		return b-a <= Epsilon
	}
	return a-b <= Epsilon
}

func EqualPoint(a, b vec.Vec2) bool {
	return Equal(a.X, b.X) && Equal(a.Y, b.Y)
}

// AngleNorm returns the angle theta in the range [0,2PI).
func AngleNorm(theta float64) float64 {
	theta = math.Mod(theta, 2.0*math.Pi)
	if theta < 0.0 {
		theta += 2.0 * math.Pi
	}
	return theta
}

// reflect returns the reflection of p through the center c.
func reflect(p, c vec.Vec2) vec.Vec2 {
	return vec.Vec2{X: 2*c.X - p.X, Y: 2*c.Y - p.Y}
}
