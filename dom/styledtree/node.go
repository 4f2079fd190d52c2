package styledtree

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"

	"github.com/npillmayer/boxtree/dom"
	"github.com/npillmayer/boxtree/dom/style"
	"github.com/npillmayer/boxtree/dom/style/css"
	"github.com/npillmayer/boxtree/dom/style/cssom"
)

// StyNode is a style node, the building block of the styled tree.
type StyNode struct {
	domNode   *dom.Node
	specified *style.PropertyMap
	children  []*StyNode
}

// Build creates a styled tree for the document tree under root, using a
// single stylesheet. sheet may be nil, resulting in empty property maps
// throughout. Neither root nor sheet are modified.
func Build(root *dom.Node, sheet *cssom.Stylesheet) *StyNode {
	if root == nil {
		return nil
	}
	tracer().Debugf("building styled tree for %s", root)
	return build(root, sheet)
}

func build(n *dom.Node, sheet *cssom.Stylesheet) *StyNode {
	sn := &StyNode{domNode: n}
	if e, ok := n.Element(); ok {
		sn.specified = css.SpecifiedValues(e, sheet)
	} else {
		sn.specified = style.NewPropertyMap()
	}
	if len(n.Children) > 0 {
		sn.children = make([]*StyNode, len(n.Children))
		for i, ch := range n.Children {
			sn.children[i] = build(ch, sheet)
		}
	}
	return sn
}

// DOMNode gets the document node corresponding to this styled node.
func (sn *StyNode) DOMNode() *dom.Node {
	return sn.domNode
}

// Styles returns the specified values of a styled node.
func (sn *StyNode) Styles() *style.PropertyMap {
	return sn.specified
}

// Children returns the styled children, in document order.
func (sn *StyNode) Children() []*StyNode {
	return sn.children
}

// ChildCount returns the number of children of sn.
func (sn *StyNode) ChildCount() int {
	return len(sn.children)
}

// Value returns the specified value of a property. No inheritance is
// performed; an absent property is reported as a miss.
func (sn *StyNode) Value(key string) (cssom.Value, bool) {
	return sn.specified.Property(key)
}

// Display returns the effective display mode of a styled node. It is
// InlineMode unless property "display" is specified as "block" or "none".
func (sn *StyNode) Display() css.DisplayMode {
	return css.DisplayOf(sn.Value("display"))
}

// Dimen returns the specified value of a property interpreted as a
// dimension. If the property is absent or not a dimension, false is returned.
func (sn *StyNode) Dimen(key string) (css.DimenT, bool) {
	v, ok := sn.Value(key)
	if !ok {
		return css.DimenT{}, false
	}
	return css.DimenFromValue(v)
}

func (sn *StyNode) String() string {
	return fmt.Sprintf("(StyNode %s #props=%d)", sn.domNode.NodeName(), sn.specified.Size())
}
