package scanner

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"errors"
	"fmt"
)

// ErrSyntax is matched by every grammar violation.
var ErrSyntax = errors.New("syntax error")

// ErrEndOfInput is returned when a character is requested at the end of input.
var ErrEndOfInput = errors.New("unexpected end of input")

// SyntaxError is a grammar violation at a byte offset of the input.
type SyntaxError struct {
	Pos int    // byte offset into the input
	Msg string // description of the violation
	Err error  // underlying cause, may be nil
}

func (e *SyntaxError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("syntax error at offset %d: %s: %s", e.Pos, e.Msg, e.Err.Error())
	}
	return fmt.Sprintf("syntax error at offset %d: %s", e.Pos, e.Msg)
}

// Unwrap returns the underlying cause.
func (e *SyntaxError) Unwrap() error {
	return e.Err
}

// Is makes every SyntaxError match ErrSyntax.
func (e *SyntaxError) Is(target error) bool {
	return target == ErrSyntax
}

// Abort panics with a syntax error. Parsers built on a Scanner use it to
// bail out of deeply nested productions; see Recover.
func Abort(err *SyntaxError) {
	panic(err)
}

// Recover is to be deferred by the entry point of a parser. It converts a
// panic raised by Abort into an error stored in *errp. Any other panic is
// re-raised.
//
//     func Parse(s string) (x *X, err error) {
//         defer scanner.Recover(&err)
//         ...
//     }
//
func Recover(errp *error) {
	if r := recover(); r != nil {
		serr, ok := r.(*SyntaxError)
		if !ok {
			panic(r)
		}
		tracer().Errorf("%s", serr.Error())
		*errp = serr
	}
}
