// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pathdata

import (
	"fmt"
	"math"

	"seehuhn.de/go/geom/vec"
)

// Parse parses the given SVG path data into a [Path]. Empty path data
// yields an empty path. Any error is a [*MalformedPathError], and no
// path is returned with it.
func Parse(d string, opts ...Option) (*Path, error) {
	ps := newParser(d, newOptions(opts))
	if err := ps.run(); err != nil {
		return nil, err
	}
	ps.path.transform(ps.opts.transform)
	return ps.path, nil
}

// MustParse is like [Parse] but panics on error.
// It is intended for tests and fixed path literals.
func MustParse(d string, opts ...Option) *Path {
	p, err := Parse(d, opts...)
	if err != nil {
		panic(err)
	}
	return p
}

// parser holds the state of a single [Parse] call.
type parser struct {
	s    *Scanner
	opts options
	path *Path

	// cmd is the command whose argument groups are being read.
	cmd Command

	// last is the absolute command of the last executed group,
	// deciding whether smooth curves reflect ctrl.
	last Command

	// cur is the current point, start the start of the current
	// subpath, and ctrl the last control point of a curve.
	cur, start, ctrl vec.Vec2

	inSubpath bool

	args [7]float64
}

func newParser(d string, opts options) *parser {
	return &parser{
		s:    NewScanner(d),
		opts: opts,
		path: &Path{},
		cur:  opts.origin,
	}
}

func (ps *parser) run() error {
	for ps.s.Scan() {
		tok := ps.s.Token()
		if !ps.inSubpath && (tok.Kind != CommandToken || tok.Cmd.Abs() != PcM) {
			return ps.newError(tok.Pos, "subpath must begin with moveto")
		}
		if tok.Kind == CommandToken {
			ps.cmd = tok.Cmd
			if ps.cmd.Abs() == PcZ {
				ps.closePath()
				continue
			}
			if err := ps.group(nil); err != nil {
				return err
			}
			continue
		}
		// a number without a command letter repeats the last command
		if ps.cmd.Abs() == PcZ {
			return ps.newError(tok.Pos, fmt.Sprintf("number cannot follow command '%v'", ps.cmd))
		}
		if err := ps.group(&tok); err != nil {
			return err
		}
	}
	return ps.s.Err()
}

// group reads one argument group of the current command, starting
// with first if it has already been scanned, and executes it.
func (ps *parser) group(first *Token) error {
	n := ps.cmd.Arity()
	args := ps.args[:0]
	if first != nil {
		args = append(args, first.Value)
	}
	for i := len(args); i < n; i++ {
		var ok bool
		if ps.cmd.Abs() == PcA && (i == 3 || i == 4) {
			ok = ps.s.ScanFlag()
		} else {
			ok = ps.s.Scan()
		}
		if !ok {
			if err := ps.s.Err(); err != nil {
				return ps.annotate(err)
			}
			return ps.argsError(ps.s.Offset())
		}
		tok := ps.s.Token()
		if tok.Kind != NumberToken {
			return ps.argsError(tok.Pos)
		}
		args = append(args, tok.Value)
	}
	ps.exec(args)
	return nil
}

// point returns the point (x,y), relative to the current point for
// relative commands.
func (ps *parser) point(x, y float64) vec.Vec2 {
	if ps.cmd.IsRelative() {
		return vec.Vec2{X: ps.cur.X + x, Y: ps.cur.Y + y}
	}
	return vec.Vec2{X: x, Y: y}
}

// exec executes one complete argument group of the current command.
func (ps *parser) exec(a []float64) {
	abs := ps.cmd.Abs()
	switch abs {
	case PcM:
		end := ps.point(a[0], a[1])
		ps.path.add(MoveTo, end)
		ps.cur, ps.start = end, end
		ps.inSubpath = true
		// further groups are implicit linetos
		if ps.cmd.IsRelative() {
			ps.cmd = Pcl
		} else {
			ps.cmd = PcL
		}
	case PcL:
		ps.lineTo(ps.point(a[0], a[1]))
	case PcH:
		end := ps.point(a[0], 0)
		end.Y = ps.cur.Y
		ps.lineTo(end)
	case PcV:
		end := ps.point(0, a[0])
		end.X = ps.cur.X
		ps.lineTo(end)
	case PcC:
		cp1 := ps.point(a[0], a[1])
		cp2 := ps.point(a[2], a[3])
		end := ps.point(a[4], a[5])
		ps.path.add(Curve4, cp1, cp2, end)
		ps.ctrl, ps.cur = cp2, end
	case PcS:
		cp1 := ps.cur
		if ps.last == PcC || ps.last == PcS {
			cp1 = reflect(ps.ctrl, ps.cur)
		}
		cp2 := ps.point(a[0], a[1])
		end := ps.point(a[2], a[3])
		ps.path.add(Curve4, cp1, cp2, end)
		ps.ctrl, ps.cur = cp2, end
	case PcQ:
		cp := ps.point(a[0], a[1])
		end := ps.point(a[2], a[3])
		ps.path.add(Curve3, cp, end)
		ps.ctrl, ps.cur = cp, end
	case PcT:
		cp := ps.cur
		if ps.last == PcQ || ps.last == PcT {
			cp = reflect(ps.ctrl, ps.cur)
		}
		end := ps.point(a[0], a[1])
		ps.path.add(Curve3, cp, end)
		ps.ctrl, ps.cur = cp, end
	case PcA:
		end := ps.point(a[5], a[6])
		ps.arcTo(a[0], a[1], a[2], a[3] == 1, a[4] == 1, end)
		ps.ctrl, ps.cur = end, end
	}
	ps.last = abs
}

func (ps *parser) lineTo(end vec.Vec2) {
	ps.path.add(LineTo, end)
	ps.cur = end
}

// arcTo adds the elliptical arc from the current point to end, with
// rotation rot in degrees, as cubic Béziers. Arcs with a zero radius or
// an end point equal to the current point are straight lines. Arcs that
// are merely short are kept at any scale.
func (ps *parser) arcTo(rx, ry, rot float64, large, sweep bool, end vec.Vec2) {
	if rx == 0 || ry == 0 || ps.cur == end {
		ps.path.add(LineTo, end)
		return
	}
	phi := rot * math.Pi / 180.0
	for _, b := range ellipseToCubicBeziers(ps.cur, rx, ry, phi, large, sweep, end) {
		ps.path.add(Curve4, b[0], b[1], b[2])
	}
}

func (ps *parser) closePath() {
	if ps.opts.explicitClose && ps.cur != ps.start {
		ps.path.add(LineTo, ps.start)
	}
	ps.path.add(ClosePoly, ps.start)
	ps.cur = ps.start
	ps.last = PcZ
}

func (ps *parser) newError(offset int, msg string) error {
	return &MalformedPathError{Offset: offset, Cmd: ps.cmd, Near: near(ps.s.data, offset), Msg: msg}
}

func (ps *parser) argsError(offset int) error {
	return ps.newError(offset, fmt.Sprintf("sets of %d numbers should follow command '%v'", ps.cmd.Arity(), ps.cmd))
}

// annotate adds the current command to a scanner error
// found within an argument group.
func (ps *parser) annotate(err error) error {
	me, ok := err.(*MalformedPathError)
	if !ok || ps.cmd == PcErr {
		return err
	}
	me.Cmd = ps.cmd
	me.Msg += fmt.Sprintf(" in command '%v'", ps.cmd)
	return me
}
