/*
Package layout builds the layout tree (box tree) for a styled tree.

Every styled node with a display mode other than "none" contributes one box
to the layout tree, a block box or an inline box. Styled nodes with display
mode "none" are dropped, together with their subtrees.

Block boxes hold either block-level children or inline-level children, never
both. Consecutive inline-level children of a block box are wrapped into an
anonymous block box, which has no styled node of its own.

Geometry is not computed: all dimensions of the boxes in the layout tree are
zero.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package layout

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'boxtree.layout'.
func tracer() tracing.Trace {
	return tracing.Select("boxtree.layout")
}
