package dom

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"
	"sort"
	"strings"

	"github.com/npillmayer/boxtree/dom/style/cssom"
)

// Node is the building block of the document tree. Children are owned by
// their parent; there are no back references.
type Node struct {
	Data     NodeData // one of Text, Comment, *Element, *Document
	Children []*Node
}

// NodeData is a closed type with variants Text, Comment, *Element and *Document.
type NodeData interface {
	String() string
	isNodeData()
}

// Text is the data of a text node. Text is kept verbatim, entities are not decoded.
type Text string

func (t Text) isNodeData() {}

func (t Text) String() string {
	return fmt.Sprintf("%q", string(t))
}

// Comment is the data of a comment node.
type Comment string

func (c Comment) isNodeData() {}

func (c Comment) String() string {
	return "<!--" + string(c) + "-->"
}

// AttrMap maps attribute names to values. Keys are case-sensitive.
type AttrMap map[string]string

// Element is the data of an element node.
type Element struct {
	TagName    string
	Attributes AttrMap
}

func (e *Element) isNodeData() {}

// String returns the start tag of an element, with attributes in sorted order.
func (e *Element) String() string {
	var b strings.Builder
	b.WriteByte('<')
	b.WriteString(e.TagName)
	for _, k := range e.attributeKeys() {
		fmt.Fprintf(&b, " %s=%q", k, e.Attributes[k])
	}
	b.WriteByte('>')
	return b.String()
}

func (e *Element) attributeKeys() []string {
	keys := make([]string, 0, len(e.Attributes))
	for k := range e.Attributes {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Attribute returns the value of an attribute, together with an indicator
// wether it is present.
func (e *Element) Attribute(key string) (string, bool) {
	v, ok := e.Attributes[key]
	return v, ok
}

// ID returns the value of the 'id' attribute, if present.
func (e *Element) ID() (string, bool) {
	return e.Attribute("id")
}

// Classes returns the set of white-space separated tokens of the 'class'
// attribute.
func (e *Element) Classes() map[string]struct{} {
	fields := strings.Fields(e.Attributes["class"])
	classes := make(map[string]struct{}, len(fields))
	for _, c := range fields {
		classes[c] = struct{}{}
	}
	return classes
}

// HasClass checks if class is one of the tokens of the 'class' attribute.
func (e *Element) HasClass(class string) bool {
	for _, c := range strings.Fields(e.Attributes["class"]) {
		if c == class {
			return true
		}
	}
	return false
}

// Document is the data of the root node of a parsed document.
type Document struct {
	Stylesheets []*cssom.Stylesheet
}

func (d *Document) isNodeData() {}

func (d *Document) String() string {
	return fmt.Sprintf("#document (%d stylesheets)", len(d.Stylesheets))
}

var _ NodeData = Text("")
var _ NodeData = Comment("")
var _ NodeData = &Element{}
var _ NodeData = &Document{}

// --- Constructors ----------------------------------------------------------

// NewText creates a text node.
func NewText(text string) *Node {
	return &Node{Data: Text(text)}
}

// NewComment creates a comment node.
func NewComment(comment string) *Node {
	return &Node{Data: Comment(comment)}
}

// NewElement creates an element node. attrs may be nil.
func NewElement(tagName string, attrs AttrMap, children ...*Node) *Node {
	if attrs == nil {
		attrs = AttrMap{}
	}
	return &Node{
		Data:     &Element{TagName: tagName, Attributes: attrs},
		Children: children,
	}
}

// NewDocument creates the root node of a document.
func NewDocument(children []*Node, stylesheets []*cssom.Stylesheet) *Node {
	return &Node{
		Data:     &Document{Stylesheets: stylesheets},
		Children: children,
	}
}

// --- Accessors -------------------------------------------------------------

// Element returns the element data of n, if n is an element node.
func (n *Node) Element() (*Element, bool) {
	if n == nil {
		return nil, false
	}
	e, ok := n.Data.(*Element)
	return e, ok
}

// IsElement is a predicate for element nodes.
func (n *Node) IsElement() bool {
	_, ok := n.Element()
	return ok
}

// Stylesheets returns the stylesheets of a document node. For every other
// kind of node it returns nil.
func (n *Node) Stylesheets() []*cssom.Stylesheet {
	if d, ok := n.Data.(*Document); ok {
		return d.Stylesheets
	}
	return nil
}

// NodeName returns the W3C node name: the tag name for elements,
// "#text", "#comment" or "#document" otherwise.
func (n *Node) NodeName() string {
	switch d := n.Data.(type) {
	case Text:
		return "#text"
	case Comment:
		return "#comment"
	case *Element:
		return d.TagName
	case *Document:
		return "#document"
	}
	panic(fmt.Sprintf("dom: node with unknown data %T", n.Data))
}

// ChildCount returns the number of children of n.
func (n *Node) ChildCount() int {
	return len(n.Children)
}

// TextContent concatenates the text of n and of all of its descendents,
// in document order. Comments are skipped.
func (n *Node) TextContent() string {
	var b strings.Builder
	n.Walk(func(node *Node, depth int) bool {
		if t, ok := node.Data.(Text); ok {
			b.WriteString(string(t))
		}
		return true
	})
	return b.String()
}

// Walk traverses the tree under n depth-first, in document order, calling
// f for every node. If f returns false, the children of that node are skipped.
func (n *Node) Walk(f func(node *Node, depth int) bool) {
	n.walk(f, 0)
}

func (n *Node) walk(f func(*Node, int) bool, depth int) {
	if n == nil || !f(n, depth) {
		return
	}
	for _, ch := range n.Children {
		ch.walk(f, depth+1)
	}
}

func (n *Node) String() string {
	return fmt.Sprintf("(Node #ch=%d %s)", len(n.Children), n.Data)
}
