package dom

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"io"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// ToHTML converts the tree under n to a tree of golang.org/x/net/html nodes.
// Attributes are created in sorted key order. Stylesheets of a document node
// are not converted.
func ToHTML(n *Node) *html.Node {
	h, _ := toHTML(n, nil)
	return h
}

// toHTML converts n and records the origin of every html node in dict,
// if dict is non-nil.
func toHTML(n *Node, dict map[*html.Node]*Node) (*html.Node, map[*html.Node]*Node) {
	if n == nil {
		return nil, dict
	}
	h := &html.Node{}
	switch d := n.Data.(type) {
	case Text:
		h.Type = html.TextNode
		h.Data = string(d)
	case Comment:
		h.Type = html.CommentNode
		h.Data = string(d)
	case *Element:
		h.Type = html.ElementNode
		h.Data = d.TagName
		h.DataAtom = atom.Lookup([]byte(d.TagName))
		for _, k := range d.attributeKeys() {
			h.Attr = append(h.Attr, html.Attribute{Key: k, Val: d.Attributes[k]})
		}
	case *Document:
		h.Type = html.DocumentNode
	}
	if dict != nil {
		dict[h] = n
	}
	for _, ch := range n.Children {
		hch, _ := toHTML(ch, dict)
		h.AppendChild(hch)
	}
	return h, dict
}

// Render writes the markup for the tree under n to w.
// Text is escaped as necessary, attribute values are double-quoted.
func Render(w io.Writer, n *Node) error {
	tracer().Debugf("rendering %s", n)
	return html.Render(w, ToHTML(n))
}
