// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package pathdata parses SVG path data (the d attribute of a path element)
into a renderer-ready [Path] of absolute vertices and drawing codes.

All commands of the SVG path grammar are supported, in absolute and relative
form, including implicit repetition of argument groups. Smooth curves are
resolved by reflecting the previous control point, and elliptical arcs are
converted into cubic Bézier segments of at most 90 degrees each, so that the
resulting [Path] only contains [MoveTo], [LineTo], [Curve3], [Curve4] and
[ClosePoly] codes:

	p, err := pathdata.Parse("M300,200 h-150 a150,150 0 1,0 150,-150 z")

An optional affine transform can be applied to all emitted vertices, see
[WithTransform]. Parsing is all-or-nothing: any malformed input results in a
[*MalformedPathError] and no path.

See https://www.w3.org/TR/SVG/paths.html#PathData for the grammar.
*/
package pathdata
