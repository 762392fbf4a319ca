// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command svgpath parses SVG path data into vertices and drawing codes.
package main

import (
	"context"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"time"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/cli"
	"cogentcore.org/svgpath/pathdata"
	"cogentcore.org/svgpath/pathio"
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"
)

// Config is the configuration information for the svgpath cli.
type Config struct {

	// Input is the file containing the path data to parse.
	// It is ignored if Data is given.
	Input string `posarg:"0" required:"-"`

	// Data is the path data to parse, given inline.
	Data string `flag:"d,data"`

	// Format is the output format.
	Format pathio.Format `flag:"f,format" default:"table"`

	// Scale is the uniform scale factor applied to the parsed path.
	// Zero is the same as one.
	Scale float64 `default:"1"`

	// Rotate is the rotation in degrees applied after scaling.
	Rotate float64

	// TranslateX is the horizontal translation applied last.
	TranslateX float64 `flag:"tx,translate-x"`

	// TranslateY is the vertical translation applied last.
	TranslateY float64 `flag:"ty,translate-y"`

	// OriginX is the horizontal coordinate of the initial current point,
	// from which a leading relative moveto is offset.
	OriginX float64 `flag:"ox,origin-x"`

	// OriginY is the vertical coordinate of the initial current point.
	OriginY float64 `flag:"oy,origin-y"`

	// ExplicitClose adds a line back to the subpath start
	// before each close, when the path is not already there.
	ExplicitClose bool `flag:"close,explicit-close"`

	// Watch re-parses and writes the Input file whenever it changes,
	// until interrupted.
	Watch bool `flag:"w,watch"`
}

func main() {
	opts := cli.DefaultOptions("svgpath", "Svgpath parses SVG path data into vertices and drawing codes.")
	cli.Run(opts, &Config{}, Run)
}

// Run parses the configured path data and writes it to stdout in the
// configured format. In watch mode, it does so each time the input
// file changes, until interrupted. Log verbosity follows the
// -v, -vv and -q flags of the cli.
func Run(c *Config) error { //cli:cmd -root
	if c.Watch {
		if c.Input == "" {
			return errors.New("svgpath: watch mode requires an input file")
		}
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		return Watch(ctx, c, os.Stdout)
	}
	return Convert(c, os.Stdout)
}

// Convert parses the configured path data and writes it to w.
func Convert(c *Config, w io.Writer) error {
	d, err := c.pathData()
	if err != nil {
		return err
	}
	st := time.Now()
	p, err := pathdata.Parse(d, c.Options()...)
	if err != nil {
		return err
	}
	slog.Debug("parsed path", "bytes", len(d), "vertices", p.Len(), "time", time.Since(st))
	return pathio.Write(w, p, c.Format)
}

// pathData returns the inline path data, or else the contents of the input file.
func (c *Config) pathData() (string, error) {
	if c.Data != "" {
		return c.Data, nil
	}
	if c.Input == "" {
		return "", errors.New("svgpath: no path data: give an input file or -d")
	}
	b, err := os.ReadFile(c.Input)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(b)), nil
}

// Options returns the parse options for the configuration.
func (c *Config) Options() []pathdata.Option {
	var opts []pathdata.Option
	if m := c.Transform(); m != matrix.Identity {
		opts = append(opts, pathdata.WithTransform(m))
	}
	if c.OriginX != 0 || c.OriginY != 0 {
		opts = append(opts, pathdata.WithOrigin(vec.Vec2{X: c.OriginX, Y: c.OriginY}))
	}
	if c.ExplicitClose {
		opts = append(opts, pathdata.WithExplicitClose())
	}
	return opts
}

// Transform returns the transform that scales, then rotates,
// then translates the parsed path.
func (c *Config) Transform() matrix.Matrix {
	m := matrix.Identity
	if c.Scale != 1 && c.Scale != 0 {
		m = m.Mul(matrix.Scale(c.Scale, c.Scale))
	}
	if c.Rotate != 0 {
		m = m.Mul(matrix.RotateDeg(c.Rotate))
	}
	if c.TranslateX != 0 || c.TranslateY != 0 {
		m = m.Mul(matrix.Translate(c.TranslateX, c.TranslateY))
	}
	return m
}
