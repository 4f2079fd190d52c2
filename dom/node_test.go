package dom_test

import (
	"bytes"
	"testing"

	"github.com/npillmayer/boxtree/dom"
	"github.com/npillmayer/boxtree/dom/markup"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
)

func TestNodeConstruction(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "boxtree.dom")
	defer teardown()
	//
	p := dom.NewElement("p", dom.AttrMap{"id": "someId", "class": " element-class  other "},
		dom.NewComment("this is a comment"),
		dom.NewText("here is some text"),
	)
	div := dom.NewElement("div", nil, p, dom.NewComment("second comment"))
	assert.Equal(t, "div", div.NodeName())
	assert.Equal(t, "#comment", div.Children[1].NodeName())
	assert.Equal(t, "#text", p.Children[1].NodeName())
	e, ok := p.Element()
	require.True(t, ok)
	id, ok := e.ID()
	assert.True(t, ok)
	assert.Equal(t, "someId", id)
	assert.Equal(t, map[string]struct{}{"element-class": {}, "other": {}}, e.Classes())
	assert.True(t, e.HasClass("other"))
	assert.False(t, e.HasClass("element"))
	assert.Equal(t, `<p class=" element-class  other " id="someId">`, e.String())
	d, _ := div.Element()
	_, ok = d.ID()
	assert.False(t, ok, "absent id is a lookup miss, not an error")
	assert.Empty(t, d.Classes())
	assert.Nil(t, div.Stylesheets())
	assert.False(t, div.Children[1].IsElement())
	assert.Equal(t, "here is some text", div.TextContent())
}

func TestWalkSkipsSubtrees(t *testing.T) {
	doc := dom.NewDocument([]*dom.Node{
		dom.NewElement("a", nil, dom.NewElement("b", nil, dom.NewText("x"))),
		dom.NewElement("c", nil),
	}, nil)
	var visited []string
	doc.Walk(func(n *dom.Node, depth int) bool {
		visited = append(visited, n.NodeName())
		return n.NodeName() != "a"
	})
	assert.Equal(t, []string{"#document", "a", "c"}, visited)
}

// Rendering a parsed element-only tree and parsing it again has to
// reproduce tags, attributes and child structure.
func TestRenderRoundTrip(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "boxtree.dom")
	defer teardown()
	//
	src := `<html><head><title>T</title></head><body class="x y">
	  <div id="main"><p>Hello <em title="q">world</em>!</p><!-- c --></div>
	  <ul><li>1</li><li>2</li></ul></body></html>`
	doc, err := markup.Parse(src)
	require.NoError(t, err)
	var buf bytes.Buffer
	require.NoError(t, dom.Render(&buf, doc))
	t.Logf("rendered = %s", buf.String())
	again, err := markup.Parse(buf.String())
	require.NoError(t, err)
	assert.Equal(t, doc, again)
}

func TestToHTML(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "boxtree.dom")
	defer teardown()
	//
	doc, err := markup.Parse(`<body b="2" a="1"><p>x</p><!--c--></body>`)
	require.NoError(t, err)
	h := dom.ToHTML(doc)
	assert.Equal(t, html.DocumentNode, h.Type)
	body := h.FirstChild
	require.NotNil(t, body)
	assert.Equal(t, "body", body.Data)
	assert.Equal(t, []html.Attribute{{Key: "a", Val: "1"}, {Key: "b", Val: "2"}}, body.Attr)
	assert.Equal(t, "p", body.FirstChild.DataAtom.String())
	assert.Equal(t, html.CommentNode, body.LastChild.Type)
	assert.Nil(t, dom.ToHTML(nil))
}

func TestQueryAll(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "boxtree.dom")
	defer teardown()
	//
	doc, err := markup.Parse(`<div id="a" class="x"><p class="x y">1</p><p>2</p><span class="y">3</span></div>`)
	require.NoError(t, err)
	nodes, err := dom.QueryAll(doc, ".y")
	require.NoError(t, err)
	require.Len(t, nodes, 2)
	assert.Same(t, doc.Children[0].Children[0], nodes[0])
	assert.Same(t, doc.Children[0].Children[2], nodes[1])
	nodes, err = dom.QueryAll(doc, "div#a > p")
	require.NoError(t, err)
	assert.Len(t, nodes, 2)
	_, err = dom.QueryAll(doc, "p[")
	assert.Error(t, err)
}
