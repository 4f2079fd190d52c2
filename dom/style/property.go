package style

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

// KeyValue is a container for a style property.
type KeyValue struct {
	Key   string
	Value cssom.Value
}

func (kv KeyValue) String() string {
	return kv.Key + ": " + kv.Value.String()
}

// --- CSS Property Groups ----------------------------------------------

// PropertyGroup is a collection of propertes sharing a common topic.
// CSS knows a whole lot of properties. We split them up into organisatorial
// groups.
//
// The mapping of property into groups is documented with
// GroupNameFromPropertyKey[...].
type PropertyGroup struct {
	name      string
	propsDict map[string]cssom.Value
}

// NewPropertyGroup creates a new empty property group, given its name.
func NewPropertyGroup(groupname string) *PropertyGroup {
	return &PropertyGroup{name: groupname}
}

// Name returns the name of the property group. Once named (during
// construction), property groups may not be renamed.
func (pg *PropertyGroup) Name() string {
	return pg.name
}

// Stringer for property groups; used for debugging.
func (pg *PropertyGroup) String() string {
	var b strings.Builder
	b.WriteString("[" + pg.name + "] =\n")
	for _, kv := range pg.Properties() {
		fmt.Fprintf(&b, "  %s = %s\n", kv.Key, kv.Value)
	}
	return b.String()
}

// Properties returns all properties of a group, sorted by key.
func (pg *PropertyGroup) Properties() []KeyValue {
	r := make([]KeyValue, 0, len(pg.propsDict))
	for k, v := range pg.propsDict {
		r = append(r, KeyValue{k, v})
	}
	sort.Slice(r, func(i, j int) bool { return r[i].Key < r[j].Key })
	return r
}

// IsSet is a predicated wether a property is set within this group.
func (pg *PropertyGroup) IsSet(key string) bool {
	_, ok := pg.propsDict[key]
	return ok
}

// Get a property's value.
func (pg *PropertyGroup) Get(key string) (cssom.Value, bool) {
	if pg == nil || pg.propsDict == nil {
		return nil, false
	}
	v, ok := pg.propsDict[key]
	return v, ok
}

// Set a property's value. Overwrites an existing value, if present.
func (pg *PropertyGroup) Set(key string, v cssom.Value) {
	if pg.propsDict == nil {
		pg.propsDict = make(map[string]cssom.Value)
	}
	pg.propsDict[key] = v
}

// GroupNameFromPropertyKey returns the style property group name for a
// style property.
// Example:
//    GroupNameFromPropertyKey("margin-top") => "Margins"
//
// Unknown style property keys will return a group name of "X".
func GroupNameFromPropertyKey(key string) string {
	groupname, found := groupNameFromPropertyKey[key]
	if !found {
		groupname = PGX
	}
	return groupname
}

// Symbolic names for string literals, denoting PropertyGroups.
const (
	PGMargins   = "Margins"
	PGPadding   = "Padding"
	PGBorder    = "Border"
	PGDimension = "Dimension"
	PGDisplay   = "Display"
	PGRegion    = "Region"
	PGColor     = "Color"
	PGText      = "Text"
	PGX         = "X"
)

var groupNameFromPropertyKey = map[string]string{
	"margin":              PGMargins, // Margins
	"margin-top":          PGMargins,
	"margin-left":         PGMargins,
	"margin-right":        PGMargins,
	"margin-bottom":       PGMargins,
	"padding":             PGPadding, // Padding
	"padding-top":         PGPadding,
	"padding-left":        PGPadding,
	"padding-right":       PGPadding,
	"padding-bottom":      PGPadding,
	"border-color":        PGBorder, // Border
	"border-width":        PGBorder,
	"border-top-color":    PGBorder,
	"border-left-color":   PGBorder,
	"border-right-color":  PGBorder,
	"border-bottom-color": PGBorder,
	"border-top-width":    PGBorder,
	"border-left-width":   PGBorder,
	"border-right-width":  PGBorder,
	"border-bottom-width": PGBorder,
	"border-top-style":    PGBorder,
	"border-left-style":   PGBorder,
	"border-right-style":  PGBorder,
	"border-bottom-style": PGBorder,
	"width":               PGDimension, // Dimension
	"height":              PGDimension,
	"min-width":           PGDimension,
	"min-height":          PGDimension,
	"max-width":           PGDimension,
	"max-height":          PGDimension,
	"display":             PGDisplay, // Display
	"float":               PGDisplay,
	"visibility":          PGDisplay,
	"position":            PGDisplay,
	"flow-into":           PGRegion,
	"flow-from":           PGRegion,
	"color":               PGColor,
	"background":          PGColor,
	"background-color":    PGColor,
	"direction":           PGText,
	"font-size":           PGText,
	"white-space":         PGText,
	"word-spacing":        PGText,
	"letter-spacing":      PGText,
	"word-break":          PGText,
	"word-wrap":           PGText,
}

// --- Property Map -----------------------------------------------------

// PropertyMap holds CSS properties. nil is a legal (empty) property map.
// A property map holds the specified values for a single node of the styled
// tree, segmented into property groups.
type PropertyMap struct {
	m map[string]*PropertyGroup
}

// NewPropertyMap returns a new empty property map.
func NewPropertyMap() *PropertyMap {
	return &PropertyMap{}
}

func (pmap *PropertyMap) String() string {
	var b strings.Builder
	b.WriteString("Property Map = {\n")
	for _, g := range pmap.Groups() {
		b.WriteString(g.String())
	}
	b.WriteString("}")
	return b.String()
}

// Size returns the number of properties in the map.
func (pmap *PropertyMap) Size() int {
	if pmap == nil {
		return 0
	}
	n := 0
	for _, g := range pmap.m {
		n += len(g.propsDict)
	}
	return n
}

// Group returns the property group for a group name or nil.
func (pmap *PropertyMap) Group(groupname string) *PropertyGroup {
	if pmap == nil {
		return nil
	}
	return pmap.m[groupname]
}

// Groups returns all non-empty property groups, sorted by name.
func (pmap *PropertyMap) Groups() []*PropertyGroup {
	if pmap == nil {
		return nil
	}
	groups := make([]*PropertyGroup, 0, len(pmap.m))
	for _, g := range pmap.m {
		groups = append(groups, g)
	}
	sort.Slice(groups, func(i, j int) bool { return groups[i].name < groups[j].name })
	return groups
}

// Property returns a style property value, together with an indicator
// wether it has been found in the properties map.
// A miss is not an error; clients choose a default.
func (pmap *PropertyMap) Property(key string) (cssom.Value, bool) {
	return pmap.Group(GroupNameFromPropertyKey(key)).Get(key)
}

// Set sets a property in this property map, e.g.,
//
//    pm.Set("margin-top", cssom.Length{Amount: 2, Unit: cssom.Px})
//
// An existing value is overwritten.
func (pmap *PropertyMap) Set(key string, value cssom.Value) {
	if pmap == nil {
		return
	}
	if pmap.m == nil {
		pmap.m = make(map[string]*PropertyGroup)
	}
	groupname := GroupNameFromPropertyKey(key)
	group, found := pmap.m[groupname]
	if !found {
		group = NewPropertyGroup(groupname)
		pmap.m[groupname] = group
	}
	group.Set(key, value)
}

// Keys returns the names of all properties in the map, sorted.
func (pmap *PropertyMap) Keys() []string {
	var keys []string
	for _, g := range pmap.Groups() {
		for k := range g.propsDict {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	return keys
}
