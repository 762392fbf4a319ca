// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pathio

import (
	"fmt"
	"strings"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/enums"
	"github.com/adrg/strutil"
	"github.com/adrg/strutil/metrics"
)

// Format is an output format for a parsed path.
// Its names are lowercase, and yml is accepted for yaml.
type Format int32

const (
	// JSON writes a [Document] as JSON.
	JSON Format = iota

	// YAML writes a [Document] as YAML.
	YAML

	// TOML writes a [Document] as TOML.
	TOML

	// SVG writes the normalized path data, using only
	// absolute M, L, Q and C commands and z.
	SVG

	// Table writes one line per vertex, with its index, code and coordinates.
	Table
)

var _FormatValues = []Format{0, 1, 2, 3, 4}

// FormatN is the highest valid value for type Format, plus one.
const FormatN Format = 5

var _FormatValueMap = map[string]Format{`json`: 0, `yaml`: 1, `yml`: 1, `toml`: 2, `svg`: 3, `table`: 4}

var _FormatDescMap = map[Format]string{0: `JSON writes a [Document] as JSON.`, 1: `YAML writes a [Document] as YAML.`, 2: `TOML writes a [Document] as TOML.`, 3: `SVG writes the normalized path data, using only absolute M, L, Q and C commands and z.`, 4: `Table writes one line per vertex, with its index, code and coordinates.`}

var _FormatMap = map[Format]string{0: `json`, 1: `yaml`, 2: `toml`, 3: `svg`, 4: `table`}

// String returns the string representation of this Format value.
func (i Format) String() string { return enums.String(i, _FormatMap) }

// SetString sets the Format value from its string representation,
// ignoring case, and returns an error if the string is invalid.
// The error suggests the closest valid name, if any is close,
// and otherwise lists the valid names.
func (i *Format) SetString(s string) error {
	err := enums.SetStringLower(i, s, _FormatValueMap, "Format")
	if err == nil {
		return nil
	}
	if sug := suggestFormat(s); sug != "" {
		return fmt.Errorf("%w; did you mean %q?", err, sug)
	}
	return errors.Join(err, fmt.Errorf("valid formats are %s", formatList()))
}

// Int64 returns the Format value as an int64.
func (i Format) Int64() int64 { return int64(i) }

// SetInt64 sets the Format value from an int64.
func (i *Format) SetInt64(in int64) { *i = Format(in) }

// Desc returns the description of the Format value.
func (i Format) Desc() string { return enums.Desc(i, _FormatDescMap) }

// FormatValues returns all possible values for the type Format.
func FormatValues() []Format { return _FormatValues }

// Values returns all possible values for the type Format.
func (i Format) Values() []enums.Enum { return enums.Values(_FormatValues) }

// MarshalText implements the [encoding.TextMarshaler] interface.
func (i Format) MarshalText() ([]byte, error) { return []byte(i.String()), nil }

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
func (i *Format) UnmarshalText(text []byte) error {
	return enums.UnmarshalText(i, text, "Format")
}

// suggestFormat returns the format name most similar to s,
// or "" if none is similar enough.
func suggestFormat(s string) string {
	lev := metrics.NewLevenshtein()
	best, bestSim := "", 0.49
	for _, f := range FormatValues() {
		name := f.String()
		if sim := strutil.Similarity(strings.ToLower(s), name, lev); sim > bestSim {
			best, bestSim = name, sim
		}
	}
	return best
}

func formatList() string {
	names := make([]string, 0, FormatN)
	for _, f := range FormatValues() {
		names = append(names, f.String())
	}
	return strings.Join(names, ", ")
}
