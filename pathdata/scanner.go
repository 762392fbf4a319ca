// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pathdata

import (
	"fmt"
	"iter"
	"math"
	"strconv"

	parsestrconv "github.com/tdewolff/parse/v2/strconv"
)

// TokenKind is the kind of a [Token].
type TokenKind uint8

const (
	// CommandToken is a command letter.
	CommandToken TokenKind = iota + 1

	// NumberToken is a numeric value, including arc flags.
	NumberToken
)

// Token is one element of SVG path data: a command letter or a number.
type Token struct {
	Kind TokenKind

	// Cmd is the command, for a [CommandToken].
	Cmd Command

	// Value is the numeric value, for a [NumberToken].
	Value float64

	// Pos is the byte offset of the token in the path data.
	Pos int

	// Text is the source text of the token.
	Text string
}

func (t Token) String() string {
	if t.Kind == CommandToken {
		return t.Cmd.String()
	}
	return t.Text
}

// Scanner splits SVG path data into tokens. It is lazy: each call to
// [Scanner.Scan] or [Scanner.ScanFlag] reads one more token from the
// input. A Scanner cannot be restarted; make a new one to scan again.
type Scanner struct {
	data []byte
	pos  int
	tok  Token
	err  error
}

// NewScanner returns a new [Scanner] reading from the given path data.
func NewScanner(d string) *Scanner {
	return &Scanner{data: []byte(d)}
}

// Tokens returns the tokens of the given path data as a lazy sequence.
// Arc flags are not special-cased, so that packed flags such as "0020"
// come out as a single number; the parser reads flags with
// [Scanner.ScanFlag] instead. A scanning error is yielded last.
func Tokens(d string) iter.Seq2[Token, error] {
	return func(yield func(Token, error) bool) {
		s := NewScanner(d)
		for s.Scan() {
			if !yield(s.Token(), nil) {
				return
			}
		}
		if err := s.Err(); err != nil {
			yield(Token{}, err)
		}
	}
}

// Token returns the most recent token read by [Scanner.Scan]
// or [Scanner.ScanFlag].
func (s *Scanner) Token() Token {
	return s.tok
}

// Err returns the first error encountered by the Scanner, if any.
func (s *Scanner) Err() error {
	return s.err
}

// Offset returns the byte offset of the next unread byte.
func (s *Scanner) Offset() int {
	return s.pos
}

// Scan advances to the next command or number token. It returns false
// at the end of the input or on error, in which case [Scanner.Err]
// returns the error.
func (s *Scanner) Scan() bool {
	if s.err != nil || !s.skip() {
		return false
	}
	c := s.data[s.pos]
	if cmd := DecodeCommand(c); cmd != PcErr {
		s.tok = Token{Kind: CommandToken, Cmd: cmd, Pos: s.pos, Text: string(c)}
		s.pos++
		return true
	}
	if !isNumberStart(c) {
		s.fail(fmt.Sprintf("unknown command %q", c))
		return false
	}
	// the number grammar decides where the token ends, and its
	// text is then converted with correct rounding
	_, n := parsestrconv.ParseFloat(s.data[s.pos:])
	if n == 0 {
		s.fail(fmt.Sprintf("invalid number %q", numberText(s.data[s.pos:])))
		return false
	}
	text := string(s.data[s.pos : s.pos+n])
	f, err := strconv.ParseFloat(text, 64)
	if err != nil || math.IsInf(f, 0) || math.IsNaN(f) {
		s.fail(fmt.Sprintf("invalid number %q", text))
		return false
	}
	s.tok = Token{Kind: NumberToken, Value: f, Pos: s.pos, Text: text}
	s.pos += n
	return true
}

// ScanFlag advances to the next arc flag, which is always a single
// character 0 or 1, so that flags can be packed together with each
// other and with the following number, as in "a1 1 0 1110 10".
// It returns false at the end of the input or on error.
func (s *Scanner) ScanFlag() bool {
	if s.err != nil || !s.skip() {
		return false
	}
	c := s.data[s.pos]
	if c != '0' && c != '1' {
		s.fail("largeArc and sweep flags should be 0 or 1")
		return false
	}
	s.tok = Token{Kind: NumberToken, Value: float64(c - '0'), Pos: s.pos, Text: string(c)}
	s.pos++
	return true
}

// skip skips whitespace and commas, and reports whether input remains.
func (s *Scanner) skip() bool {
	for s.pos < len(s.data) && isSeparator(s.data[s.pos]) {
		s.pos++
	}
	return s.pos < len(s.data)
}

func (s *Scanner) fail(msg string) {
	s.err = &MalformedPathError{Offset: s.pos, Near: near(s.data, s.pos), Msg: msg}
}

func isSeparator(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\r', '\f', ',':
		return true
	}
	return false
}

func isNumberStart(c byte) bool {
	return (c >= '0' && c <= '9') || c == '.' || c == '-' || c == '+'
}

// numberText returns the run of bytes that look like part of a number.
func numberText(b []byte) string {
	i := 0
	for i < len(b) && (isNumberStart(b[i]) || b[i] == 'e' || b[i] == 'E') {
		i++
	}
	return string(b[:max(i, 1)])
}
