// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pathdata

// Command is an SVG path data command. Its value is the command letter,
// with lowercase letters for the relative variants.
type Command byte

const (
	// move pen, abs coords
	PcM Command = 'M'
	// move pen, rel coords
	Pcm Command = 'm'
	// lineto, abs
	PcL Command = 'L'
	// lineto, rel
	Pcl Command = 'l'
	// horizontal lineto, abs
	PcH Command = 'H'
	// horizontal lineto, rel
	Pch Command = 'h'
	// vertical lineto, abs
	PcV Command = 'V'
	// vertical lineto, rel
	Pcv Command = 'v'
	// Bezier curveto, abs
	PcC Command = 'C'
	// Bezier curveto, rel
	Pcc Command = 'c'
	// smooth Bezier curveto, abs
	PcS Command = 'S'
	// smooth Bezier curveto, rel
	Pcs Command = 's'
	// quadratic Bezier curveto, abs
	PcQ Command = 'Q'
	// quadratic Bezier curveto, rel
	Pcq Command = 'q'
	// smooth quadratic Bezier curveto, abs
	PcT Command = 'T'
	// smooth quadratic Bezier curveto, rel
	Pct Command = 't'
	// elliptical arc, abs
	PcA Command = 'A'
	// elliptical arc, rel
	Pca Command = 'a'
	// close path
	PcZ Command = 'Z'
	// close path
	Pcz Command = 'z'
	// error: invalid command
	PcErr Command = 0
)

// DecodeCommand decodes the given byte into the corresponding command,
// returning [PcErr] if it is not a command letter.
func DecodeCommand(b byte) Command {
	switch Command(b) {
	case PcM, Pcm, PcL, Pcl, PcH, Pch, PcV, Pcv, PcC, Pcc,
		PcS, Pcs, PcQ, Pcq, PcT, Pct, PcA, Pca, PcZ, Pcz:
		return Command(b)
	}
	return PcErr
}

// IsRelative returns whether the command takes coordinates
// relative to the current point.
func (c Command) IsRelative() bool {
	return c >= 'a' && c <= 'z'
}

// Abs returns the absolute (uppercase) command of the same family.
func (c Command) Abs() Command {
	if c.IsRelative() {
		return c - 'a' + 'A'
	}
	return c
}

// Arity returns the number of values in one argument group of the command.
func (c Command) Arity() int {
	switch c.Abs() {
	case PcM, PcL, PcT:
		return 2
	case PcH, PcV:
		return 1
	case PcC:
		return 6
	case PcS, PcQ:
		return 4
	case PcA:
		return 7
	}
	return 0
}

func (c Command) String() string {
	if c == PcErr {
		return "PcErr"
	}
	return string(rune(c))
}
