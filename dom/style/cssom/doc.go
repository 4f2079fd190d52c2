/*
Package cssom provides the CSS object model and a parser for it.

Status

Supports a small subset of CSS only. Please be patient.

Overview

CSSOM is the "CSS Object Model", similar to the DOM for HTML. A Stylesheet
is an ordered list of rules, each rule being a list of selectors and a block
of declarations:

    .note, h1 { color: #cc0000; margin-top: 1.5em; }

Selectors are simple selectors only: an optional tag name (or '*'), an
optional id and any number of classes. There are no combinators, no
pseudo-classes and no attribute selectors. After parsing a rule, its
selectors are sorted by descending specificity. Styling relies on this order:
when a rule is matched against an element, the first selector that matches
determines the rule's specificity.

Declaration values are one of Keyword, Length or Color. Units other than
px, % and em are accepted, but are tagged as UnknownUnit.

Parsing is all-or-nothing. A grammar violation aborts the parse and Parse
returns a *scanner.SyntaxError; there is no error recovery.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package cssom

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'boxtree.css'.
func tracer() tracing.Trace {
	return tracing.Select("boxtree.css")
}
