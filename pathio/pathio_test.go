// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pathio

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"cogentcore.org/core/enums"
	"cogentcore.org/svgpath/pathdata"
	"github.com/google/go-cmp/cmp"
	"github.com/muesli/termenv"
	"github.com/pelletier/go-toml/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestFormatSetString(t *testing.T) {
	var tts = []struct {
		s   string
		f   Format
		err string
	}{
		{"json", JSON, ""},
		{"YAML", YAML, ""},
		{"yml", YAML, ""},
		{"toml", TOML, ""},
		{"svg", SVG, ""},
		{"Table", Table, ""},
		{"jsn", JSON, `jsn is not a valid value for type Format; did you mean "json"?`},
		{"tabel", JSON, `tabel is not a valid value for type Format; did you mean "table"?`},
		{"png", JSON, "png is not a valid value for type Format\nvalid formats are json, yaml, toml, svg, table"},
	}
	for _, tt := range tts {
		t.Run(tt.s, func(t *testing.T) {
			var f Format
			err := f.SetString(tt.s)
			if tt.err != "" {
				assert.EqualError(t, err, tt.err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.f, f)
		})
	}
}

func TestFormatEnum(t *testing.T) {
	var e enums.EnumSetter = new(Format)
	assert.Len(t, e.Values(), int(FormatN))
	e.SetInt64(int64(TOML))
	assert.Equal(t, "toml", e.String())
	assert.Equal(t, int64(2), e.Int64())
	assert.Equal(t, "TOML writes a [Document] as TOML.", e.Desc())

	for _, f := range FormatValues() {
		b, err := f.MarshalText()
		require.NoError(t, err)
		var g Format
		require.NoError(t, g.UnmarshalText(b))
		assert.Equal(t, f, g)
	}
	assert.Equal(t, "7", Format(7).String())
	assert.Equal(t, "7", Format(7).Desc())

	// invalid text is logged and leaves the value unchanged
	g := SVG
	assert.NoError(t, g.UnmarshalText([]byte("png")))
	assert.Equal(t, SVG, g)
}

var testPath = pathdata.MustParse("M0 0 L1.5 2 Q3 4 5 -6 Z")

var testDocument = &Document{
	D:        "M0 0L1.5 2Q3 4 5 -6z",
	Vertices: [][2]float64{{0, 0}, {1.5, 2}, {3, 4}, {5, -6}, {0, 0}},
	Codes:    []int{1, 2, 3, 3, 79},
}

func TestNewDocument(t *testing.T) {
	if diff := cmp.Diff(testDocument, NewDocument(testPath)); diff != "" {
		t.Errorf("document differs (-want +got):\n%s", diff)
	}
}

func TestWrite(t *testing.T) {
	decoders := map[Format]func([]byte, any) error{
		JSON: json.Unmarshal,
		YAML: yaml.Unmarshal,
		TOML: toml.Unmarshal,
	}
	for f, decode := range decoders {
		t.Run(f.String(), func(t *testing.T) {
			buf := &bytes.Buffer{}
			require.NoError(t, Write(buf, testPath, f))
			doc := &Document{}
			require.NoError(t, decode(buf.Bytes(), doc))
			assert.Equal(t, testDocument, doc)
		})
	}

	buf := &bytes.Buffer{}
	require.NoError(t, Write(buf, testPath, SVG))
	assert.Equal(t, "M0 0L1.5 2Q3 4 5 -6z\n", buf.String())

	assert.EqualError(t, Write(buf, testPath, Format(9)), "pathio: invalid format 9")
}

func TestWriteJSON(t *testing.T) {
	buf := &bytes.Buffer{}
	require.NoError(t, Write(buf, pathdata.MustParse("M1 2"), JSON))
	want := "{\n\t\"d\": \"M1 2\",\n\t\"vertices\": [\n\t\t[\n\t\t\t1,\n\t\t\t2\n\t\t]\n\t],\n\t\"codes\": [\n\t\t1\n\t]\n}\n"
	assert.Equal(t, want, buf.String())
}

func TestWriteTable(t *testing.T) {
	buf := &bytes.Buffer{}
	out := termenv.NewOutput(buf, termenv.WithProfile(termenv.Ascii))
	require.NoError(t, WriteTable(out, testPath))

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	require.Len(t, lines, 6)
	assert.Equal(t, []string{"#", "CODE", "X", "Y"}, strings.Fields(lines[0]))
	assert.Equal(t, []string{"0", "MOVETO", "0", "0"}, strings.Fields(lines[1]))
	assert.Equal(t, []string{"1", "LINETO", "1.5", "2"}, strings.Fields(lines[2]))
	assert.Equal(t, []string{"3", "CURVE3", "5", "-6"}, strings.Fields(lines[4]))
	assert.Equal(t, []string{"4", "CLOSEPOLY", "0", "0"}, strings.Fields(lines[5]))
	for _, l := range lines {
		assert.Len(t, l, len(lines[0]))
	}
}
