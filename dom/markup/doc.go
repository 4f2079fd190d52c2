/*
Package markup implements a recursive-descent parser for a small subset of HTML.

Overview

The parser understands elements with attributes, text and comments. Every
element has to be closed explicitly with a matching end tag; there are no
void elements, no implicit end tags, no entity decoding and no error
recovery. Attribute values have to be quoted with either single or double
quotes.

<style> elements are special: their content is taken verbatim up to the
next "</style>" and handed to the CSS parser (package cssom). The resulting
stylesheets are collected in document order and attached to the document
node; the <style> elements themselves do not appear in the document tree.

    doc, err := markup.Parse(`<html><style>p { display: block; }</style><p>Hello</p></html>`)
    sheets := doc.Stylesheets()

White space in front of a node is skipped. Text runs extend up to the next
'<' and keep trailing white space.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package markup

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'boxtree.markup'.
func tracer() tracing.Trace {
	return tracing.Select("boxtree.markup")
}
