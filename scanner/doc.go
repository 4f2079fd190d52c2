/*
Package scanner implements the character cursor shared by the markup and
the stylesheet parser.

A Scanner operates over one fixed input string. Its position never moves
backwards and always sits on a rune boundary, so multi-byte UTF-8 characters
are never split. There is no backtracking: clients needing more than one
character of lookahead use StartsWith.

Errors

Grammar violations found by the parsers are reported as *SyntaxError, carrying
the byte offset of the violation. Every SyntaxError matches ErrSyntax with
errors.Is; if the violation was caused by running out of input, it matches
ErrEndOfInput as well.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package scanner

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'boxtree.scanner'.
func tracer() tracing.Trace {
	return tracing.Select("boxtree.scanner")
}
