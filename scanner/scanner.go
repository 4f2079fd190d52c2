package scanner

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Scanner is a cursor over an immutable input string.
type Scanner struct {
	input string
	pos   int // byte offset, always on a rune boundary
}

// New creates a scanner positioned at the start of input.
func New(input string) *Scanner {
	return &Scanner{input: input}
}

// Pos returns the current byte offset.
func (s *Scanner) Pos() int {
	return s.pos
}

// Remaining returns the part of the input not yet consumed.
func (s *Scanner) Remaining() string {
	return s.input[s.pos:]
}

// AtEnd is true if all of the input has been consumed.
func (s *Scanner) AtEnd() bool {
	return s.pos >= len(s.input)
}

// Peek returns the next character without consuming it.
// At the end of input it returns ErrEndOfInput.
func (s *Scanner) Peek() (rune, error) {
	if s.AtEnd() {
		return utf8.RuneError, ErrEndOfInput
	}
	r, _ := utf8.DecodeRuneInString(s.input[s.pos:])
	return r, nil
}

// Consume returns the next character and advances past it.
// At the end of input it returns ErrEndOfInput and does not move.
func (s *Scanner) Consume() (rune, error) {
	if s.AtEnd() {
		return utf8.RuneError, ErrEndOfInput
	}
	r, w := utf8.DecodeRuneInString(s.input[s.pos:])
	s.pos += w
	return r, nil
}

// ConsumeWhile consumes the longest prefix of the remaining input for which
// pred holds and returns it. The result may be empty.
func (s *Scanner) ConsumeWhile(pred func(rune) bool) string {
	start := s.pos
	for !s.AtEnd() {
		r, w := utf8.DecodeRuneInString(s.input[s.pos:])
		if !pred(r) {
			break
		}
		s.pos += w
	}
	return s.input[start:s.pos]
}

// ConsumeUntil consumes input up to, but not including, the next occurrence
// of lit. If lit does not occur, all of the remaining input is consumed and
// found is false.
func (s *Scanner) ConsumeUntil(lit string) (text string, found bool) {
	rest := s.input[s.pos:]
	i := strings.Index(rest, lit)
	if i < 0 {
		s.pos = len(s.input)
		return rest, false
	}
	s.pos += i
	return rest[:i], true
}

// ConsumeWhitespace skips Unicode white space.
func (s *Scanner) ConsumeWhitespace() {
	s.ConsumeWhile(unicode.IsSpace)
}

// StartsWith tests if the remaining input starts with lit. It does not advance.
func (s *Scanner) StartsWith(lit string) bool {
	return strings.HasPrefix(s.input[s.pos:], lit)
}

// Expect consumes the next character, which has to be r.
func (s *Scanner) Expect(r rune) error {
	pos := s.pos
	c, err := s.Consume()
	if err != nil {
		return &SyntaxError{Pos: pos, Msg: fmt.Sprintf("expected %q", r), Err: err}
	}
	if c != r {
		s.pos = pos
		return &SyntaxError{Pos: pos, Msg: fmt.Sprintf("expected %q, found %q", r, c)}
	}
	return nil
}

// ExpectString consumes lit, which has to be the prefix of the remaining input.
func (s *Scanner) ExpectString(lit string) error {
	if s.StartsWith(lit) {
		s.pos += len(lit)
		return nil
	}
	if len(s.input)-s.pos < len(lit) && strings.HasPrefix(lit, s.input[s.pos:]) {
		return &SyntaxError{Pos: s.pos, Msg: fmt.Sprintf("expected %q", lit), Err: ErrEndOfInput}
	}
	return s.Errorf("expected %q", lit)
}

// Errorf creates a syntax error at the current position.
// If the scanner is at the end of input, the error wraps ErrEndOfInput.
func (s *Scanner) Errorf(format string, args ...interface{}) *SyntaxError {
	err := &SyntaxError{Pos: s.pos, Msg: fmt.Sprintf(format, args...)}
	if s.AtEnd() {
		err.Err = ErrEndOfInput
	}
	return err
}
