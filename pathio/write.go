// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package pathio writes parsed SVG paths in data and
// terminal formats.
package pathio

import (
	"fmt"
	"io"

	"cogentcore.org/core/base/iox/jsonx"
	"cogentcore.org/core/base/iox/tomlx"
	"cogentcore.org/core/base/iox/yamlx"
	"cogentcore.org/svgpath/pathdata"
	"github.com/muesli/termenv"
)

// Document is the serialized form of a [pathdata.Path]
// in the JSON, YAML and TOML formats.
type Document struct {

	// D is the normalized SVG path data.
	D string `json:"d" yaml:"d" toml:"d"`

	// Vertices are the (x, y) coordinates of the path vertices.
	Vertices [][2]float64 `json:"vertices" yaml:"vertices" toml:"vertices"`

	// Codes are the numeric drawing codes, one for each vertex.
	Codes []int `json:"codes" yaml:"codes" toml:"codes"`
}

// NewDocument returns the [Document] for the given path.
func NewDocument(p *pathdata.Path) *Document {
	doc := &Document{
		D:        p.ToSVG(),
		Vertices: make([][2]float64, len(p.Vertices)),
		Codes:    make([]int, len(p.Codes)),
	}
	for i, v := range p.Vertices {
		doc.Vertices[i] = [2]float64{v.X, v.Y}
	}
	for i, c := range p.Codes {
		doc.Codes[i] = int(c)
	}
	return doc
}

// Write writes the path to w in the given format.
// Table output uses colors only if w is a terminal that supports them;
// use [WriteTable] to choose the color profile.
func Write(w io.Writer, p *pathdata.Path, f Format) error {
	switch f {
	case JSON:
		return jsonx.WriteIndent(NewDocument(p), w)
	case YAML:
		return yamlx.Write(NewDocument(p), w)
	case TOML:
		return tomlx.Write(NewDocument(p), w)
	case SVG:
		_, err := fmt.Fprintln(w, p.ToSVG())
		return err
	case Table:
		return WriteTable(termenv.NewOutput(w), p)
	}
	return fmt.Errorf("pathio: invalid format %v", f)
}
