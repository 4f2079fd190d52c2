package douceuradapter

import (
	"strings"
	"testing"

	"github.com/npillmayer/boxtree/dom/style/cssom"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
)

var sheetSource = `
h1, h2, h3 { margin: auto; color: #cc0000; }
div.note { margin-bottom: 20px; padding: 10px; }
#answer { display: none; }
.a.b { width: 12.5%; }
`

func TestConvertMatchesOwnParser(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "boxtree.css")
	defer teardown()
	//
	ours, err := cssom.Parse(sheetSource)
	require.NoError(t, err)
	converted, err := Parse(sheetSource)
	require.NoError(t, err)
	assert.Equal(t, ours, converted)
}

func TestConvertSkipsAtRules(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "boxtree.css")
	defer teardown()
	//
	sheet, err := Parse(`@media print { p { color: red; } } p { color: blue !important; }`)
	require.NoError(t, err)
	require.Len(t, sheet.Rules, 1)
	v, ok := sheet.Rules[0].Value("color")
	assert.True(t, ok)
	assert.Equal(t, cssom.Keyword("blue"), v)
}

func TestConvertRejectsUnsupportedSyntax(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "boxtree.css")
	defer teardown()
	//
	_, err := Parse(`div p { color: red; }`)
	assert.Error(t, err, "combinators are not supported")
	_, err = Parse(`p { border: 1px solid red; }`)
	assert.Error(t, err, "multi-token values are not supported")
	sheet, err := Convert(nil)
	assert.NoError(t, err)
	assert.True(t, sheet.Empty())
}

func TestExtractStyleElements(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "boxtree.css")
	defer teardown()
	//
	doc, err := html.Parse(strings.NewReader(`<html><head><style>p { color: red; }</style></head>
		<body><p>x</p><style>.a { display: block; }</style></body></html>`))
	require.NoError(t, err)
	sheets, err := ExtractStyleElements(doc)
	require.NoError(t, err)
	require.Len(t, sheets, 2)
	assert.Equal(t, "p { color: red; }\n", sheets[0].String())
	assert.Equal(t, ".a { display: block; }\n", sheets[1].String())
}
