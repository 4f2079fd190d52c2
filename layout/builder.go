package layout

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"errors"

	"github.com/npillmayer/boxtree/dom/style/css"
	"github.com/npillmayer/boxtree/dom/styledtree"
)

// ErrRootDisplayNone is returned by BuildTree if the root of the styled tree
// has display mode "none".
var ErrRootDisplayNone = errors.New("layout: root node has display mode none")

// BuildTree creates the layout tree for a styled tree. root is not modified.
func BuildTree(root *styledtree.StyNode) (*Box, error) {
	if root == nil {
		return nil, errors.New("layout: styled tree is nil")
	}
	if root.Display() == css.DisplayNone {
		tracer().P("node", root.DOMNode().NodeName()).Errorf("%s", ErrRootDisplayNone.Error())
		return nil, ErrRootDisplayNone
	}
	box := buildBox(root)
	tracer().Debugf("built layout tree %s", box)
	return box, nil
}

// buildBox must not be called for styled nodes with display mode none.
func buildBox(sn *styledtree.StyNode) *Box {
	var box *Box
	switch sn.Display() {
	case css.BlockMode:
		box = newBox(BlockNode{Node: sn})
	case css.InlineMode:
		box = newBox(InlineNode{Node: sn})
	default:
		panic("layout: cannot create box for display mode " + sn.Display().String())
	}
	for _, ch := range sn.Children() {
		switch ch.Display() {
		case css.BlockMode:
			box.Children = append(box.Children, buildBox(ch))
		case css.InlineMode:
			container := box.inlineContainer()
			container.Children = append(container.Children, buildBox(ch))
		case css.DisplayNone:
			// skip subtree
		}
	}
	return box
}

// inlineContainer returns the box to append inline-level children to.
// Block boxes wrap them into an anonymous block box, re-using the last child
// if it already is anonymous.
func (box *Box) inlineContainer() *Box {
	switch box.Type.(type) {
	case InlineNode, AnonymousBlock:
		return box
	case BlockNode:
		if n := len(box.Children); n > 0 && box.Children[n-1].IsAnonymous() {
			return box.Children[n-1]
		}
		anon := newBox(AnonymousBlock{})
		box.Children = append(box.Children, anon)
		return anon
	}
	panic("layout: unknown box type")
}
