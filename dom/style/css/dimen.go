package css

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"
	"math"

	"github.com/npillmayer/boxtree/dom/style/cssom"
	"github.com/npillmayer/tyse/core/dimen"
	"github.com/npillmayer/tyse/core/percent"
)

const (
	dimenNone uint32 = 0

	dimenAbsolute uint32 = 0x0001
	dimenAuto     uint32 = 0x0002
	dimenInherit  uint32 = 0x0003
	dimenInitial  uint32 = 0x0004
	kindMask      uint32 = 0x000f

	dimenEM      uint32 = 0x0100
	dimenPercent uint32 = 0x0900
	relativeMask uint32 = 0xff00
)

// PxToPT is the conversion factor from CSS pixels to printer's points.
const PxToPT = 0.75

// DimenT is an option type for CSS dimensions.
type DimenT struct {
	d       dimen.DU
	percent percent.Percent
	scale   float64
	flags   uint32
}

/*
type DimenT
	= Auto
	| Inherit
	| Initial
	| JustDimen dimen
	| Percentage Percent
	| FontRelative scale
*/

// Auto creates a CSS dimension of value `auto`.
func Auto() DimenT {
	return DimenT{flags: dimenAuto}
}

// Inherit creates a CSS dimension of value `inherit`.
func Inherit() DimenT {
	return DimenT{flags: dimenInherit}
}

// Initial creates a CSS dimension of value `initial`.
func Initial() DimenT {
	return DimenT{flags: dimenInitial}
}

// JustDimen creates a CSS dimension with a fixed value of x.
func JustDimen(x dimen.DU) DimenT {
	return DimenT{d: x, flags: dimenAbsolute}
}

// Percentage creates a CSS dimension with a %-relative value.
func Percentage(n percent.Percent) DimenT {
	return DimenT{percent: n, flags: dimenPercent}
}

// FontRelative creates a CSS dimension relative to the font size (unit `em`).
func FontRelative(scale float64) DimenT {
	return DimenT{scale: scale, flags: dimenEM}
}

// DimenFromValue interprets a specified value as a CSS dimension.
// Lengths in px are converted to printer's points, percentages are rounded
// to integral values. Colors, lengths of unknown unit and keywords other than
// auto, inherit and initial are not dimensions.
func DimenFromValue(v cssom.Value) (DimenT, bool) {
	switch x := v.(type) {
	case cssom.Keyword:
		switch x {
		case "auto":
			return Auto(), true
		case "inherit":
			return Inherit(), true
		case "initial":
			return Initial(), true
		}
	case cssom.Length:
		switch x.Unit {
		case cssom.Px:
			return JustDimen(dimen.DU(math.Round(x.Amount * PxToPT * float64(dimen.PT)))), true
		case cssom.Percentage:
			return Percentage(percent.FromInt(int(math.Round(x.Amount)))), true
		case cssom.Em:
			return FontRelative(x.Amount), true
		}
	}
	return DimenT{}, false
}

func (d DimenT) isKind(flags uint32) bool {
	if flags&relativeMask != 0 {
		return d.flags&relativeMask == flags&relativeMask
	}
	return d.flags&relativeMask == 0 && d.flags&kindMask == flags&kindMask
}

// IsNone is true for the zero value, i.e. for an uninterpretable dimension.
func (d DimenT) IsNone() bool {
	return d.flags == dimenNone
}

func (d DimenT) String() string {
	switch {
	case d.isKind(dimenAbsolute):
		return fmt.Sprintf("%dsp", int32(d.d))
	case d.isKind(dimenAuto):
		return "auto"
	case d.isKind(dimenInherit):
		return "inherit"
	case d.isKind(dimenInitial):
		return "initial"
	case d.isKind(dimenPercent):
		return fmt.Sprintf("%v%%", d.percent)
	case d.isKind(dimenEM):
		return fmt.Sprintf("%gem", d.scale)
	}
	return "none"
}

// ---------------------------------------------------------------------------

// Match starts a switch over the kinds of a dimension, e.g.
//
//    switch m := d.Match(); m {
//    case m.Just(&du):
//        …
//    case m.IsKind(css.Auto()):
//        …
//    }
//
func (d DimenT) Match() *Matcher {
	return &Matcher{dimen: d}
}

// Matcher is a helper type for Match.
type Matcher struct {
	dimen DimenT
}

// IsKind matches if the dimension is of the same kind as d.
func (m *Matcher) IsKind(d DimenT) *Matcher {
	if m.dimen.isKind(d.flags) {
		return m
	}
	return nil
}

// Just matches fixed dimensions and extracts their value.
func (m *Matcher) Just(du *dimen.DU) *Matcher {
	if m.dimen.isKind(dimenAbsolute) {
		if du != nil {
			*du = m.dimen.d
		}
		return m
	}
	return nil
}

// Percentage matches %-relative dimensions and extracts their value.
func (m *Matcher) Percentage(p *percent.Percent) *Matcher {
	if m.dimen.isKind(dimenPercent) {
		if p != nil {
			*p = m.dimen.percent
		}
		return m
	}
	return nil
}

// FontRelative matches em-relative dimensions and extracts their scale.
func (m *Matcher) FontRelative(scale *float64) *Matcher {
	if m.dimen.isKind(dimenEM) {
		if scale != nil {
			*scale = m.dimen.scale
		}
		return m
	}
	return nil
}

// --- Expression matching ---------------------------------------------------

// DimenPatterns holds one result per kind of dimension.
type DimenPatterns[T any] struct {
	Auto         T
	Inherit      T
	Initial      T
	Just         T
	Percentage   T
	FontRelative T
	Default      T
}

// DimenPattern starts a pattern match over d, yielding values of type T.
func DimenPattern[T any](d DimenT) *MatchExpr[T] {
	return &MatchExpr[T]{dimen: d}
}

// MatchExpr is a helper type for DimenPattern.
type MatchExpr[T any] struct {
	dimen DimenT
}

// OneOf selects the pattern result for the kind of the dimension.
func (m *MatchExpr[T]) OneOf(patterns DimenPatterns[T]) T {
	switch {
	case m.dimen.isKind(dimenAuto):
		return patterns.Auto
	case m.dimen.isKind(dimenAbsolute):
		return patterns.Just
	case m.dimen.isKind(dimenInitial):
		return patterns.Initial
	case m.dimen.isKind(dimenInherit):
		return patterns.Inherit
	case m.dimen.isKind(dimenPercent):
		return patterns.Percentage
	case m.dimen.isKind(dimenEM):
		return patterns.FontRelative
	}
	return patterns.Default
}

// With extracts the fixed value of the dimension, which is zero for
// non-fixed dimensions.
func (m *MatchExpr[T]) With(du *dimen.DU) *MatchExpr[T] {
	*du = m.dimen.d
	return m
}

// Const is a helper to formulate pattern results.
func (m *MatchExpr[T]) Const(x T) T {
	return x
}
