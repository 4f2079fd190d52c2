package cssom

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"
	"image/color"
	"strconv"
)

// Value is the value of a declaration. It is a closed type with variants
// Keyword, Length and Color. Clients should use a type switch or MatchValue.
type Value interface {
	String() string
	isValue()
}

// Keyword is an identifier value, e.g. "block" or "auto".
type Keyword string

func (k Keyword) isValue() {}

func (k Keyword) String() string {
	return string(k)
}

// Unit is the unit of a Length.
type Unit uint8

// Units recognized by the parser. Any other suffix results in UnknownUnit.
const (
	UnknownUnit Unit = iota
	Px
	Percentage
	Em
)

func (u Unit) String() string {
	switch u {
	case Px:
		return "px"
	case Percentage:
		return "%"
	case Em:
		return "em"
	}
	return ""
}

// Length is a numeric value with a unit, e.g. 12.5px.
type Length struct {
	Amount float64
	Unit   Unit
}

func (l Length) isValue() {}

func (l Length) String() string {
	return strconv.FormatFloat(l.Amount, 'f', -1, 64) + l.Unit.String()
}

// Color is an RGBA color. Colors parsed from hex notation are always opaque.
type Color struct {
	R, G, B, A uint8
}

func (c Color) isValue() {}

func (c Color) String() string {
	if c.A != 0xff {
		return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
	}
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// ImageColor converts c to a color usable with package image.
func (c Color) ImageColor() color.Color {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

var _ Value = Keyword("")
var _ Value = Length{}
var _ Value = Color{}

// --- Expression matching ---------------------------------------------------

// ValuePatterns holds one case per variant of Value. Cases left nil fall
// through to Default.
type ValuePatterns[T any] struct {
	Keyword func(Keyword) T
	Length  func(Length) T
	Color   func(Color) T
	Default T
}

// MatchValue evaluates the case of patterns matching the variant of v.
// A nil v evaluates to patterns.Default.
func MatchValue[T any](v Value, patterns ValuePatterns[T]) T {
	switch x := v.(type) {
	case Keyword:
		if patterns.Keyword != nil {
			return patterns.Keyword(x)
		}
	case Length:
		if patterns.Length != nil {
			return patterns.Length(x)
		}
	case Color:
		if patterns.Color != nil {
			return patterns.Color(x)
		}
	}
	return patterns.Default
}
