package layout

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"

	"github.com/npillmayer/boxtree/dom/styledtree"
)

// Rect is a rectangle, positioned at (X, Y).
type Rect struct {
	X, Y          float64
	Width, Height float64
}

// ExpandedBy returns a rectangle enlarged by edge sizes.
func (r Rect) ExpandedBy(edge EdgeSizes) Rect {
	return Rect{
		X:      r.X - edge.Left,
		Y:      r.Y - edge.Top,
		Width:  r.Width + edge.Left + edge.Right,
		Height: r.Height + edge.Top + edge.Bottom,
	}
}

// EdgeSizes holds the sizes of the four edges of a box side.
type EdgeSizes struct {
	Left, Right, Top, Bottom float64
}

// Dimensions are the dimensions of a box: its content rectangle and the
// surrounding padding, border and margin edges.
type Dimensions struct {
	Content Rect
	Padding EdgeSizes
	Border  EdgeSizes
	Margin  EdgeSizes
}

// PaddingBox is the area covered by the content plus its padding.
func (d Dimensions) PaddingBox() Rect {
	return d.Content.ExpandedBy(d.Padding)
}

// BorderBox is the area covered by the content, padding and borders.
func (d Dimensions) BorderBox() Rect {
	return d.PaddingBox().ExpandedBy(d.Border)
}

// MarginBox is the area covered by the content, padding, borders and margin.
func (d Dimensions) MarginBox() Rect {
	return d.BorderBox().ExpandedBy(d.Margin)
}

// BoxType is the type of a box. It is one of BlockNode, InlineNode or
// AnonymousBlock.
type BoxType interface {
	String() string
	isBoxType()
}

// BlockNode is the type of a block box for a styled node.
type BlockNode struct {
	Node *styledtree.StyNode
}

// InlineNode is the type of an inline box for a styled node.
type InlineNode struct {
	Node *styledtree.StyNode
}

// AnonymousBlock is the type of a block box wrapping inline-level boxes.
type AnonymousBlock struct{}

func (BlockNode) isBoxType()      {}
func (InlineNode) isBoxType()     {}
func (AnonymousBlock) isBoxType() {}

func (b BlockNode) String() string {
	return "Block(" + b.Node.DOMNode().NodeName() + ")"
}

func (b InlineNode) String() string {
	return "Inline(" + b.Node.DOMNode().NodeName() + ")"
}

func (AnonymousBlock) String() string {
	return "AnonymousBlock"
}

var _ BoxType = BlockNode{}
var _ BoxType = InlineNode{}
var _ BoxType = AnonymousBlock{}

// Box is a node of the layout tree.
type Box struct {
	Dimensions Dimensions
	Type       BoxType
	Children   []*Box
}

func newBox(t BoxType) *Box {
	return &Box{Type: t}
}

// StyledNode returns the styled node a box has been created for. Anonymous
// boxes return nil.
func (box *Box) StyledNode() *styledtree.StyNode {
	switch t := box.Type.(type) {
	case BlockNode:
		return t.Node
	case InlineNode:
		return t.Node
	case AnonymousBlock:
		return nil
	}
	panic(fmt.Sprintf("layout: unknown box type %T", box.Type))
}

// IsAnonymous is true for anonymous block boxes.
func (box *Box) IsAnonymous() bool {
	_, ok := box.Type.(AnonymousBlock)
	return ok
}

// ChildCount returns the number of children of box.
func (box *Box) ChildCount() int {
	return len(box.Children)
}

func (box *Box) String() string {
	return fmt.Sprintf("(Box %s #ch=%d)", box.Type, len(box.Children))
}
