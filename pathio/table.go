// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pathio

import (
	"fmt"
	"strconv"

	"cogentcore.org/svgpath/pathdata"
	"github.com/muesli/termenv"
)

// codeColors are the ANSI colors of the code names in a table.
var codeColors = map[pathdata.Code]string{
	pathdata.MoveTo:    "2",
	pathdata.LineTo:    "4",
	pathdata.Curve3:    "5",
	pathdata.Curve4:    "6",
	pathdata.ClosePoly: "3",
}

// WriteTable writes the path to out as a table with one line per vertex:
// its index, its code, and its coordinates.
func WriteTable(out *termenv.Output, p *pathdata.Path) error {
	header := fmt.Sprintf("%5s  %-9s  %14s  %14s", "#", "CODE", "X", "Y")
	if _, err := fmt.Fprintln(out, out.String(header).Bold()); err != nil {
		return err
	}
	for i, v := range p.Vertices {
		c := p.Codes[i]
		name := fmt.Sprintf("%-9s", c)
		if col, ok := codeColors[c]; ok {
			name = out.String(name).Foreground(out.Color(col)).String()
		}
		_, err := fmt.Fprintf(out, "%5d  %s  %14s  %14s\n", i, name, number(v.X), number(v.Y))
		if err != nil {
			return err
		}
	}
	return nil
}

func number(f float64) string {
	if f == 0 {
		return "0"
	}
	return strconv.FormatFloat(f, 'g', 10, 64)
}
