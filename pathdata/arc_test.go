// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pathdata

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEllipse(t *testing.T) {
	tolEqualVec2(t, EllipsePos(2.0, 1.0, math.Pi/2.0, 1.0, 0.5, 0.0), pt(1.0, 2.5))
	tolEqualVec2(t, EllipseDeriv(2.0, 1.0, math.Pi/2.0, true, 0.0), pt(-1.0, 0.0))
	tolEqualVec2(t, EllipseDeriv(2.0, 1.0, math.Pi/2.0, false, 0.0), pt(1.0, 0.0))

	assert.InDelta(t, 5.0, EllipseRadiiCorrection(pt(0.0, 0.0), 0.1, 0.1, 0.0, pt(1.0, 0.0)), 1.0e-9)
	assert.InDelta(t, 0.5, EllipseRadiiCorrection(pt(0.0, 0.0), 1.0, 1.0, 0.0, pt(1.0, 0.0)), 1.0e-9)
}

func TestEllipseToCenter(t *testing.T) {
	var tests = []struct {
		x1, y1       float64
		rx, ry, phi  float64
		large, sweep bool
		x2, y2       float64

		cx, cy, theta0, theta1 float64
	}{
		{0.0, 0.0, 2.0, 2.0, 0.0, false, false, 2.0, 2.0, 2.0, 0.0, math.Pi, math.Pi / 2.0},
		{0.0, 0.0, 2.0, 2.0, 0.0, true, false, 2.0, 2.0, 0.0, 2.0, math.Pi * 3.0 / 2.0, 0.0},
		{0.0, 0.0, 2.0, 2.0, 0.0, true, true, 2.0, 2.0, 2.0, 0.0, math.Pi, math.Pi * 5.0 / 2.0},
		{0.0, 0.0, 2.0, 1.0, math.Pi / 2.0, false, false, 1.0, 2.0, 1.0, 0.0, math.Pi / 2.0, 0.0},

		// negative radii
		{0.0, 0.0, -2.0, -2.0, 0.0, false, false, 2.0, 2.0, 2.0, 0.0, math.Pi, math.Pi / 2.0},

		// radius correction
		{0.0, 0.0, 0.1, 0.1, 0.0, false, false, 1.0, 0.0, 0.5, 0.0, math.Pi, 0.0},

		// start == end
		{0.0, 0.0, 1.0, 1.0, 0.0, false, false, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0},

		// precision issues
		{8.2, 18.0, 0.2, 0.2, 0.0, false, true, 7.8, 18.0, 8.0, 18.0, 0.0, math.Pi},
		{7.8, 18.0, 0.2, 0.2, 0.0, false, true, 8.2, 18.0, 8.0, 18.0, math.Pi, 2.0 * math.Pi},

		{-1.0 / math.Sqrt(2), 0.0, 1.0, 1.0, 0.0, false, false, 1.0 / math.Sqrt(2.0), 0.0, 0.0, -1.0 / math.Sqrt(2.0), 3.0 / 4.0 * math.Pi, 1.0 / 4.0 * math.Pi},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("(%g,%g) %g %g %g %v %v (%g,%g)", tt.x1, tt.y1, tt.rx, tt.ry, tt.phi, tt.large, tt.sweep, tt.x2, tt.y2), func(t *testing.T) {
			cx, cy, theta0, theta1 := EllipseToCenter(tt.x1, tt.y1, tt.rx, tt.ry, tt.phi, tt.large, tt.sweep, tt.x2, tt.y2)
			assert.InDeltaSlice(t, []float64{tt.cx, tt.cy, tt.theta0, tt.theta1}, []float64{cx, cy, theta0, theta1}, 1.0e-5)
		})
	}
}

func TestEllipseToCubicBeziers(t *testing.T) {
	// unit quarter circles in both directions
	k := 4.0 / 3.0 * (math.Sqrt(2.0) - 1.0)

	bs := ellipseToCubicBeziers(pt(1, 0), 1, 1, 0, false, true, pt(0, 1))
	require.Len(t, bs, 1)
	tolEqualVec2(t, bs[0][0], pt(1, k))
	tolEqualVec2(t, bs[0][1], pt(k, 1))
	assert.Equal(t, pt(0, 1), bs[0][2])

	bs = ellipseToCubicBeziers(pt(0, 1), 1, 1, 0, false, false, pt(1, 0))
	require.Len(t, bs, 1)
	tolEqualVec2(t, bs[0][0], pt(k, 1))
	tolEqualVec2(t, bs[0][1], pt(1, k))
	assert.Equal(t, pt(1, 0), bs[0][2])

	// full turn minus a sliver needs four segments, each chained to the last
	start, end := pt(1, 0), EllipsePos(1, 1, 0, 0, 0, -0.01)
	bs = ellipseToCubicBeziers(start, 1, 1, 0, true, true, end)
	require.Len(t, bs, 4)
	for i, b := range bs {
		p := b[2]
		assert.InDelta(t, 1.0, math.Hypot(p.X, p.Y), 1.0e-9, "segment %d", i)
	}
	assert.Equal(t, end, bs[3][2])

	// rotated ellipse end points stay on the ellipse
	phi := 30.0 * math.Pi / 180.0
	s := EllipsePos(4, 2, phi, 1, 1, 0.3)
	e := EllipsePos(4, 2, phi, 1, 1, 2.9)
	bs = ellipseToCubicBeziers(s, 4, 2, phi, false, true, e)
	require.Len(t, bs, 2)
	mid := EllipsePos(4, 2, phi, 1, 1, 1.6)
	tolEqualVec2(t, bs[0][2], mid)
}

func TestEllipseToCenterExtremeRadii(t *testing.T) {
	assert.InDelta(t, 1.0, EllipseRadiiCorrection(pt(0.0, 0.0), 1.0e-200, 1.0e-200, 0.0, pt(2.0e-200, 0.0)), 1.0e-9)
	assert.InDelta(t, 1.0, EllipseRadiiCorrection(pt(0.0, 0.0), 1.0e200, 1.0e200, 0.0, pt(2.0e200, 0.0)), 1.0e-9)

	// tiny radii are corrected to the half chord
	cx, cy, theta0, theta1 := EllipseToCenter(0.0, 0.0, 1.0e-200, 1.0e-200, 0.0, false, false, 2.0, 0.0)
	assert.InDeltaSlice(t, []float64{1.0, 0.0, math.Pi, 0.0}, []float64{cx, cy, theta0, theta1}, 1.0e-9)

	cx, cy, theta0, theta1 = EllipseToCenter(0.0, 0.0, 1.0, 1.0e-200, 0.0, false, true, 2.0, 2.0)
	for _, v := range []float64{cx, cy, theta0, theta1} {
		assert.False(t, math.IsNaN(v) || math.IsInf(v, 0), "got %v", v)
	}

	// huge radii give a center far away and an almost zero sweep
	cx, cy, theta0, theta1 = EllipseToCenter(0.0, 0.0, 1.0e200, 1.0e200, 0.0, false, true, 2.0, 0.0)
	assert.InDelta(t, 1.0, cx, 1.0e-9)
	assert.InDelta(t, 1.0, cy/1.0e200, 1.0e-9)
	assert.InDelta(t, 3.0*math.Pi/2.0, theta0, 1.0e-9)
	assert.InDelta(t, 0.0, theta1-theta0, 1.0e-100)
}
