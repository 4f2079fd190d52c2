package style

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"image/color"

	"github.com/npillmayer/boxtree/dom/style/cssom"
)

// Color returns the color value of a property as a Go color.
// Keyword "transparent" is interpreted as a fully transparent color; other
// keywords and lengths do not denote colors.
func (pmap *PropertyMap) Color(key string) (color.Color, bool) {
	v, ok := pmap.Property(key)
	if !ok {
		return nil, false
	}
	switch c := v.(type) {
	case cssom.Color:
		return c.ImageColor(), true
	case cssom.Keyword:
		if c == "transparent" {
			return color.Transparent, true
		}
	}
	return nil, false
}

// ColorString returns an X11 color name approximating c, suitable for
// GraphViz output.
func ColorString(c color.Color) string {
	if c == nil {
		return "powderblue" // X11 color and CSS color
	}
	r, g, b, a := c.RGBA()
	if a == 0 {
		return "transparent"
	}
	if r == a && g == a && b == a {
		return "white"
	}
	if r == 0 && g == 0 && b == 0 {
		return "black"
	}
	switch {
	case r >= 0x9000 && r > g && r > b:
		return "red"
	case g >= 0x9000 && g > b:
		return "green"
	case b >= 0x9000:
		return "blue"
	}
	return "gray"
}
