/*
Package styledtree implements the styled document tree.

Overview

The styled tree mirrors the structure of a document tree: there is one
styled node for every document node, with children in the same order.
Every styled node refers to its document node and carries the specified
values for it. Text, comment and document nodes carry empty property maps.

Styled nodes only ever read their document nodes. Different styled trees may
be built for the same document, using different stylesheets.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package styledtree

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'boxtree.style'.
func tracer() tracing.Trace {
	return tracing.Select("boxtree.style")
}
