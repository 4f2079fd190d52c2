package css

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"

	"github.com/npillmayer/boxtree/dom/style/cssom"
)

// DisplayMode is a type for CSS property "display".
type DisplayMode uint16

// Flags for display modes.
const (
	NoMode      DisplayMode = iota   // unset or error condition
	DisplayNone DisplayMode = 0x0001 // CSS display = none
	BlockMode   DisplayMode = 0x0002 // CSS block context
	InlineMode  DisplayMode = 0x0004 // CSS inline context
)

// IsBlockLevel return true if disp is of BlockMode.
func (disp DisplayMode) IsBlockLevel() bool {
	return disp == BlockMode
}

func (disp DisplayMode) String() string {
	switch disp {
	case DisplayNone:
		return "DisplayNone"
	case BlockMode:
		return "BlockMode"
	case InlineMode:
		return "InlineMode"
	case NoMode:
		return "NoMode"
	}
	return fmt.Sprintf("DisplayMode(%#04x)", uint16(disp))
}

// Symbol returns a Unicode symbol for a mode.
func (disp DisplayMode) Symbol() string {
	switch disp {
	case BlockMode:
		return "▩"
	case InlineMode:
		return "►"
	case DisplayNone:
		return "∅"
	case NoMode:
		return "–"
	}
	return "?"
}

// ParseDisplay returns the mode for a display keyword.
// The empty string results in NoMode; keywords other than none, block and
// inline are flagged as errors.
func ParseDisplay(display string) (DisplayMode, error) {
	switch display {
	case "":
		return NoMode, nil
	case "none":
		return DisplayNone, nil
	case "block":
		return BlockMode, nil
	case "inline":
		return InlineMode, nil
	}
	return InlineMode, fmt.Errorf("unknown display mode: %s", display)
}

// DisplayOf computes the effective display mode from the specified value of
// property "display", given as a lookup result. Every value which is not
// keyword block or none, including an absent one, results in InlineMode.
func DisplayOf(v cssom.Value, found bool) DisplayMode {
	if !found {
		return InlineMode
	}
	kw, ok := v.(cssom.Keyword)
	if !ok {
		return InlineMode
	}
	switch mode, err := ParseDisplay(string(kw)); {
	case err != nil:
		tracer().Debugf("display value %q treated as inline", kw)
		return InlineMode
	case mode == NoMode:
		return InlineMode
	default:
		return mode
	}
}
