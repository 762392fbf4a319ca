// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pathdata

import (
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"
)

// Option configures [Parse].
type Option func(o *options)

type options struct {
	transform     matrix.Matrix
	origin        vec.Vec2
	explicitClose bool
}

func newOptions(opts []Option) options {
	o := options{transform: matrix.Identity}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithTransform applies the affine transform m to every emitted vertex,
// including the control points of curves and arcs. Arc radii and angles
// are resolved into points before the transform is applied.
func WithTransform(m matrix.Matrix) Option {
	return func(o *options) {
		o.transform = m
	}
}

// WithOrigin sets the current point at the start of parsing, so that
// a leading relative moveto is taken relative to origin. An absolute
// moveto is not affected.
func WithOrigin(origin vec.Vec2) Option {
	return func(o *options) {
		o.origin = origin
	}
}

// WithExplicitClose makes closepath emit a [LineTo] back to the start
// of the subpath before the [ClosePoly], whenever the current point is
// not already there.
func WithExplicitClose() Option {
	return func(o *options) {
		o.explicitClose = true
	}
}
