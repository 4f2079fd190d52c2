/*
Package dom implements the document tree produced by the markup parser.

Status

Early draft. The API may change frequently. Please stay patient.

Overview

Rendering a document involves a sequence of trees: the document tree
(this package), the styled tree (package styledtree) and the layout tree
(package layout). Each stage produces a new tree from the previous one and
never modifies its input:

    markup text  ──▶  document tree (+ stylesheets)  ──▶  styled tree  ──▶  layout tree

Document Tree

The document tree is a plain, single-owner tree of *Node. Every node carries
one of four kinds of data (a closed set): Text, Comment, *Element or
*Document. A Document is always the root of a parsed tree and carries the
stylesheets harvested from embedded <style> elements.

A document tree is immutable once it has been constructed. Styled trees and
layout trees borrow nodes of a document tree and become stale if the
document tree is modified after they have been built.

Interoperability

Package dom does not build on golang.org/x/net/html for its tree, but
a document tree may be converted to it (ToHTML) for rendering and for
running CSS selector queries with cascadia (QueryAll).

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package dom

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'boxtree.dom'.
func tracer() tracing.Trace {
	return tracing.Select("boxtree.dom")
}
