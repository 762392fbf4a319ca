// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pathdata

import (
	"math"

	"seehuhn.de/go/geom/vec"
)

// EllipsePos returns the position on the ellipse with radii rx and ry,
// rotated by phi (in radians) and centered at (cx,cy), at angle theta.
func EllipsePos(rx, ry, phi, cx, cy, theta float64) vec.Vec2 {
	sintheta, costheta := math.Sincos(theta)
	sinphi, cosphi := math.Sincos(phi)
	x := cx + rx*costheta*cosphi - ry*sintheta*sinphi
	y := cy + rx*costheta*sinphi + ry*sintheta*cosphi
	return vec.Vec2{X: x, Y: y}
}

// EllipseDeriv returns the derivative of the ellipse with respect to theta,
// in the direction of increasing theta when sweep is true.
func EllipseDeriv(rx, ry, phi float64, sweep bool, theta float64) vec.Vec2 {
	sintheta, costheta := math.Sincos(theta)
	sinphi, cosphi := math.Sincos(phi)
	dx := -rx*sintheta*cosphi - ry*costheta*sinphi
	dy := -rx*sintheta*sinphi + ry*costheta*cosphi
	if !sweep {
		return vec.Vec2{X: -dx, Y: -dy}
	}
	return vec.Vec2{X: dx, Y: dy}
}

// EllipseRadiiCorrection returns the factor by which the radii rx and ry
// must be scaled so that an ellipse rotated by phi (in radians) passes
// through both start and end. Radii only need correction when the
// factor is larger than one.
func EllipseRadiiCorrection(start vec.Vec2, rx, ry, phi float64, end vec.Vec2) float64 {
	x1p, y1p := halfDisplacement(start.X, start.Y, phi, end.X, end.Y)
	return math.Hypot(x1p/rx, y1p/ry)
}

// correctRadii returns the radii rx and ry, scaled up uniformly when they
// are too small to span the half displacement (x1p,y1p), along with
// sqrt(x1p²/rx² + y1p²/ry²) for the returned radii. The radii are never
// squared, so this holds for radii far from one.
func correctRadii(rx, ry, x1p, y1p float64) (float64, float64, float64) {
	s := math.Hypot(x1p/rx, y1p/ry)
	if s <= 1.0 {
		return rx, ry, s
	}
	// s may overflow for tiny radii, so the corrected radii are
	// computed from the displacement and the ratio of the radii
	return math.Hypot(x1p, y1p*(rx/ry)), math.Hypot(x1p*(ry/rx), y1p), 1.0
}

// halfDisplacement returns half the vector from end to start, rotated by -phi
// into the coordinate frame of the ellipse.
func halfDisplacement(x1, y1, phi, x2, y2 float64) (float64, float64) {
	sinphi, cosphi := math.Sincos(phi)
	dx := (x1 - x2) / 2.0
	dy := (y1 - y2) / 2.0
	return cosphi*dx + sinphi*dy, -sinphi*dx + cosphi*dy
}

// EllipseToCenter converts an elliptical arc from the endpoint
// parameterization used in SVG path data to the center parameterization.
// It returns the center (cx,cy) and the start and end angles theta0 and
// theta1, in radians, of the arc from (x1,y1) to (x2,y2) on the ellipse
// with radii rx and ry rotated by phi (in radians). theta0 is in [0,2PI),
// and theta1-theta0 is the signed sweep, positive when sweep is true.
// Radii too small to span both points are scaled up uniformly.
// See https://www.w3.org/TR/SVG/implnote.html#ArcConversionEndpointToCenter
func EllipseToCenter(x1, y1, rx, ry, phi float64, large, sweep bool, x2, y2 float64) (cx, cy, theta0, theta1 float64) {
	if x1 == x2 && y1 == y2 {
		return x1, y1, 0.0, 0.0
	}
	rx, ry = math.Abs(rx), math.Abs(ry)
	sinphi, cosphi := math.Sincos(phi)
	x1p, y1p := halfDisplacement(x1, y1, phi, x2, y2)
	rx, ry, s := correctRadii(rx, ry, x1p, y1p)
	if s == 0.0 {
		return x1, y1, 0.0, 0.0 // displacement underflows
	}

	// coef is sqrt((1-λ)/λ) with λ = s², and zero after correction
	coef := 0.0
	if s < 1.0 {
		coef = math.Sqrt((1.0-s)*(1.0+s)) / s
	}
	if large == sweep {
		coef = -coef
	}
	cxp := coef * (y1p * (rx / ry))
	cyp := -coef * (x1p * (ry / rx))
	cx = cosphi*cxp - sinphi*cyp + (x1+x2)/2.0
	cy = sinphi*cxp + cosphi*cyp + (y1+y2)/2.0

	theta0 = AngleNorm(math.Atan2((y1p-cyp)/ry, (x1p-cxp)/rx))

	// the angle from the start to the end vector, measured about the
	// center, depends on coef alone: tan(delta/2) = 1/coef
	delta := 2.0 * math.Atan2(1.0, coef)
	if !sweep {
		delta -= 2.0 * math.Pi
	}
	theta1 = theta0 + delta
	return
}

// ellipseToCubicBeziers approximates the elliptical arc from start to end
// by cubic Béziers, each spanning at most 90 degrees, and returns the two
// control points and the end point of each. The radii must be non-zero
// and start and end must differ.
func ellipseToCubicBeziers(start vec.Vec2, rx, ry, phi float64, large, sweep bool, end vec.Vec2) [][3]vec.Vec2 {
	rx, ry = math.Abs(rx), math.Abs(ry)
	x1p, y1p := halfDisplacement(start.X, start.Y, phi, end.X, end.Y)
	rx, ry, _ = correctRadii(rx, ry, x1p, y1p)
	cx, cy, theta0, theta1 := EllipseToCenter(start.X, start.Y, rx, ry, phi, large, sweep, end.X, end.Y)

	delta := theta1 - theta0
	n := max(int(math.Ceil(math.Abs(delta)/(math.Pi/2.0)-Epsilon)), 1)
	dtheta := delta / float64(n)
	k := 4.0 / 3.0 * math.Tan(dtheta/4.0)

	beziers := make([][3]vec.Vec2, 0, n)
	p0 := start
	for i := 1; i <= n; i++ {
		t0 := theta0 + float64(i-1)*dtheta
		t1 := theta0 + float64(i)*dtheta
		p3 := end
		if i < n {
			p3 = EllipsePos(rx, ry, phi, cx, cy, t1)
		}
		d0 := EllipseDeriv(rx, ry, phi, true, t0)
		d1 := EllipseDeriv(rx, ry, phi, true, t1)
		cp1 := vec.Vec2{X: p0.X + k*d0.X, Y: p0.Y + k*d0.Y}
		cp2 := vec.Vec2{X: p3.X - k*d1.X, Y: p3.Y - k*d1.Y}
		beziers = append(beziers, [3]vec.Vec2{cp1, cp2, p3})
		p0 = p3
	}
	return beziers
}
