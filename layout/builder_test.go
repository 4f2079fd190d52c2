package layout

import (
	"errors"
	"testing"

	"github.com/npillmayer/boxtree/dom/markup"
	"github.com/npillmayer/boxtree/dom/style/cssom"
	"github.com/npillmayer/boxtree/dom/styledtree"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	tp "github.com/xlab/treeprint"
)

// styledRoot returns the styled node for the first top-level element of a
// document.
func styledRoot(t *testing.T, doc string, css string) *styledtree.StyNode {
	root, err := markup.Parse(doc)
	require.NoError(t, err)
	sheet, err := cssom.Parse(css)
	require.NoError(t, err)
	styled := styledtree.Build(root, sheet)
	require.NotZero(t, styled.ChildCount())
	return styled.Children()[0]
}

func boxTypes(boxes []*Box) []string {
	var types []string
	for _, b := range boxes {
		types = append(types, b.Type.String())
	}
	return types
}

func printBoxes(box *Box) string {
	tree := tp.New()
	var walk func(b *Box, branch tp.Tree)
	walk = func(b *Box, branch tp.Tree) {
		if b.ChildCount() == 0 {
			branch.AddNode(b.Type.String())
			return
		}
		sub := branch.AddBranch(b.Type.String())
		for _, ch := range b.Children {
			walk(ch, sub)
		}
	}
	walk(box, tree)
	return tree.String()
}

func TestAnonymousBlockCoalescing(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "boxtree.layout")
	defer teardown()
	//
	styled := styledRoot(t, `<div><a>1</a><b>2</b><p>3</p><i>4</i></div>`,
		`div, p { display: block; }`)
	box, err := BuildTree(styled)
	require.NoError(t, err)
	t.Logf("layout tree:\n%s", printBoxes(box))
	assert.Equal(t, "Block(div)", box.Type.String())
	require.Equal(t, []string{"AnonymousBlock", "Block(p)", "AnonymousBlock"}, boxTypes(box.Children))
	assert.Equal(t, []string{"Inline(a)", "Inline(b)"}, boxTypes(box.Children[0].Children))
	assert.Equal(t, []string{"Inline(i)"}, boxTypes(box.Children[2].Children))
	assert.Nil(t, box.Children[0].StyledNode())
	assert.Same(t, styled, box.StyledNode())
	// text of p is wrapped as well
	assert.Equal(t, []string{"AnonymousBlock"}, boxTypes(box.Children[1].Children))
	assert.Equal(t, []string{"Inline(#text)"}, boxTypes(box.Children[1].Children[0].Children))
}

func TestDisplayNonePruning(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "boxtree.layout")
	defer teardown()
	//
	styled := styledRoot(t, `<div><p class="gone"><span>x</span><p>y</p></p><span>z</span></div>`,
		`div, p { display: block; } .gone { display: none; }`)
	box, err := BuildTree(styled)
	require.NoError(t, err)
	t.Logf("layout tree:\n%s", printBoxes(box))
	count := 0
	var walk func(b *Box)
	walk = func(b *Box) {
		count++
		if sn := b.StyledNode(); sn != nil {
			e, ok := sn.DOMNode().Element()
			assert.False(t, ok && e.HasClass("gone"), "pruned element %s has a box", e)
		}
		for _, ch := range b.Children {
			walk(ch)
		}
	}
	walk(box)
	// div, anonymous, span, text "z"
	assert.Equal(t, 4, count)
}

func TestRootDisplayNone(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "boxtree.layout")
	defer teardown()
	//
	styled := styledRoot(t, `<div><p>x</p></div>`, `div { display: none; }`)
	box, err := BuildTree(styled)
	assert.Nil(t, box)
	assert.True(t, errors.Is(err, ErrRootDisplayNone))
}

func TestBlockInsideInline(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "boxtree.layout")
	defer teardown()
	//
	styled := styledRoot(t, `<span><em>a</em><p>b</p><em>c</em></span>`, `p { display: block; }`)
	box, err := BuildTree(styled)
	require.NoError(t, err)
	t.Logf("layout tree:\n%s", printBoxes(box))
	assert.Equal(t, []string{"Inline(em)", "Block(p)", "Inline(em)"}, boxTypes(box.Children))
}

func TestDocumentRootAndZeroGeometry(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "boxtree.layout")
	defer teardown()
	//
	root, err := markup.Parse(`<html><style>html, body { display: block; }</style><body><p>x</p></body></html>`)
	require.NoError(t, err)
	styled := styledtree.Build(root, root.Stylesheets()[0])
	box, err := BuildTree(styled)
	require.NoError(t, err)
	assert.Equal(t, "Inline(#document)", box.Type.String())
	var walk func(b *Box)
	walk = func(b *Box) {
		assert.Equal(t, Dimensions{}, b.Dimensions)
		for _, ch := range b.Children {
			walk(ch)
		}
	}
	walk(box)
	_, err = BuildTree(nil)
	assert.Error(t, err)
}

func TestDimensionBoxes(t *testing.T) {
	d := Dimensions{
		Content: Rect{X: 10, Y: 20, Width: 100, Height: 50},
		Padding: EdgeSizes{Left: 1, Right: 2, Top: 3, Bottom: 4},
		Border:  EdgeSizes{Left: 1, Right: 1, Top: 1, Bottom: 1},
		Margin:  EdgeSizes{Left: 5, Right: 5, Top: 0, Bottom: 10},
	}
	assert.Equal(t, Rect{X: 9, Y: 17, Width: 103, Height: 57}, d.PaddingBox())
	assert.Equal(t, Rect{X: 8, Y: 16, Width: 105, Height: 59}, d.BorderBox())
	assert.Equal(t, Rect{X: 3, Y: 16, Width: 115, Height: 69}, d.MarginBox())
	assert.Equal(t, Rect{}, Dimensions{}.MarginBox())
}
