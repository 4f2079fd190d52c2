/*
Package domdbg implements helpers to debug document trees, styled trees
and layout trees.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>


*/
package domdbg

import (
	"fmt"
	"strings"

	"github.com/npillmayer/boxtree/dom"
	"github.com/npillmayer/boxtree/dom/styledtree"
	"github.com/npillmayer/boxtree/layout"
	tp "github.com/xlab/treeprint"
)

// PrintDocument returns an indented representation of a document tree,
// one node per line. Attributes are printed in sorted order.
func PrintDocument(doc *dom.Node) string {
	if doc == nil {
		return ""
	}
	tree := tp.NewWithRoot(doc.Data.String())
	printDOMChildren(doc, tree)
	return tree.String()
}

func printDOMChildren(n *dom.Node, branch tp.Tree) {
	for _, ch := range n.Children {
		if ch.ChildCount() == 0 {
			branch.AddNode(ch.Data.String())
			continue
		}
		printDOMChildren(ch, branch.AddBranch(ch.Data.String()))
	}
}

// PrintStyled returns an indented representation of a styled tree. Every
// styled node is followed by its display mode symbol and its specified
// values.
func PrintStyled(sn *styledtree.StyNode) string {
	if sn == nil {
		return ""
	}
	tree := tp.NewWithRoot(styledLabel(sn))
	printStyledChildren(sn, tree)
	return tree.String()
}

func printStyledChildren(sn *styledtree.StyNode, branch tp.Tree) {
	for _, ch := range sn.Children() {
		if ch.ChildCount() == 0 {
			branch.AddNode(styledLabel(ch))
			continue
		}
		printStyledChildren(ch, branch.AddBranch(styledLabel(ch)))
	}
}

func styledLabel(sn *styledtree.StyNode) string {
	var b strings.Builder
	b.WriteString(sn.Display().Symbol())
	b.WriteByte(' ')
	b.WriteString(sn.DOMNode().Data.String())
	if sn.Styles().Size() > 0 {
		props := make([]string, 0, sn.Styles().Size())
		for _, key := range sn.Styles().Keys() {
			v, _ := sn.Value(key)
			props = append(props, key+": "+v.String())
		}
		fmt.Fprintf(&b, " { %s }", strings.Join(props, "; "))
	}
	return b.String()
}

// PrintLayout returns an indented representation of a layout tree.
func PrintLayout(box *layout.Box) string {
	if box == nil {
		return ""
	}
	tree := tp.NewWithRoot(box.Type.String())
	printBoxChildren(box, tree)
	return tree.String()
}

func printBoxChildren(box *layout.Box, branch tp.Tree) {
	for _, ch := range box.Children {
		if ch.ChildCount() == 0 {
			branch.AddNode(ch.Type.String())
			continue
		}
		printBoxChildren(ch, branch.AddBranch(ch.Type.String()))
	}
}
