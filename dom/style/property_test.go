package style

import (
	"image/color"
	"testing"

	"github.com/npillmayer/boxtree/dom/style/cssom"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

func TestGroupNames(t *testing.T) {
	if GroupNameFromPropertyKey("margin-top") != PGMargins {
		t.Errorf("expected margin-top to be in group %s", PGMargins)
	}
	if GroupNameFromPropertyKey("funny-margin") != PGX {
		t.Errorf("expected unknown property to be in group X")
	}
}

func TestNilPropertyMap(t *testing.T) {
	var pmap *PropertyMap
	_, ok := pmap.Property("color")
	assert.False(t, ok)
	assert.Equal(t, 0, pmap.Size())
	assert.Empty(t, pmap.Keys())
	assert.Nil(t, pmap.Group(PGColor))
	pmap.Set("color", cssom.Keyword("red")) // must not panic
}

func TestPropertyMap(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "boxtree.style")
	defer teardown()
	//
	pmap := NewPropertyMap()
	pmap.Set("margin-top", cssom.Length{Amount: 1, Unit: cssom.Px})
	pmap.Set("display", cssom.Keyword("block"))
	pmap.Set("funny-margin", cssom.Keyword("big"))
	pmap.Set("margin-top", cssom.Length{Amount: 2, Unit: cssom.Em})
	assert.Equal(t, 3, pmap.Size())
	assert.Equal(t, []string{"display", "funny-margin", "margin-top"}, pmap.Keys())
	v, ok := pmap.Property("margin-top")
	assert.True(t, ok)
	assert.Equal(t, cssom.Length{Amount: 2, Unit: cssom.Em}, v)
	_, ok = pmap.Property("margin-left")
	assert.False(t, ok)
	groups := pmap.Groups()
	if assert.Len(t, groups, 3) {
		assert.Equal(t, PGDisplay, groups[0].Name())
		assert.Equal(t, PGMargins, groups[1].Name())
		assert.Equal(t, PGX, groups[2].Name())
	}
	assert.True(t, pmap.Group(PGMargins).IsSet("margin-top"))
	t.Logf("\n%s", pmap)
}

func TestColorProperty(t *testing.T) {
	pmap := NewPropertyMap()
	pmap.Set("color", cssom.Color{R: 0xcc, A: 0xff})
	pmap.Set("background", cssom.Keyword("transparent"))
	pmap.Set("border-color", cssom.Keyword("red"))
	c, ok := pmap.Color("color")
	assert.True(t, ok)
	assert.Equal(t, "red", ColorString(c))
	c, ok = pmap.Color("background")
	assert.True(t, ok)
	assert.Equal(t, "transparent", ColorString(c))
	_, ok = pmap.Color("border-color")
	assert.False(t, ok, "color keywords other than transparent are not resolved")
	assert.Equal(t, "white", ColorString(color.White))
	assert.Equal(t, "black", ColorString(color.Black))
	assert.Equal(t, "powderblue", ColorString(nil))
}
