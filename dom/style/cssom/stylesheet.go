package cssom

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"sort"
	"strings"
)

// Stylesheet is an ordered sequence of rules. Parse order is preserved.
type Stylesheet struct {
	Rules []*Rule
}

// Empty checks if this stylesheet contains any rules.
func (sheet *Stylesheet) Empty() bool {
	return sheet == nil || len(sheet.Rules) == 0
}

// AppendRules appends the rules of another stylesheet. Rules are shared,
// not copied.
func (sheet *Stylesheet) AppendRules(other *Stylesheet) {
	if other == nil {
		return
	}
	sheet.Rules = append(sheet.Rules, other.Rules...)
}

// String serializes a stylesheet to CSS, one rule per line.
func (sheet *Stylesheet) String() string {
	if sheet == nil {
		return ""
	}
	var b strings.Builder
	for _, r := range sheet.Rules {
		b.WriteString(r.String())
		b.WriteByte('\n')
	}
	return b.String()
}

// Rule is a list of selectors together with a block of declarations.
// Selectors are ordered by descending specificity.
type Rule struct {
	Selectors    []Selector
	Declarations []Declaration
}

// Value returns the value of the last declaration for a property name within
// this rule, as later declarations override earlier ones.
func (r *Rule) Value(name string) (Value, bool) {
	for i := len(r.Declarations) - 1; i >= 0; i-- {
		if r.Declarations[i].Name == name {
			return r.Declarations[i].Value, true
		}
	}
	return nil, false
}

// Properties returns the property names of a rule in declaration order,
// e.g. "margin-top". Names declared more than once are listed once.
func (r *Rule) Properties() []string {
	props := make([]string, 0, len(r.Declarations))
	seen := make(map[string]bool, len(r.Declarations))
	for _, d := range r.Declarations {
		if !seen[d.Name] {
			props = append(props, d.Name)
			seen[d.Name] = true
		}
	}
	return props
}

func (r *Rule) String() string {
	var b strings.Builder
	for i, sel := range r.Selectors {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(sel.String())
	}
	b.WriteString(" {")
	for _, d := range r.Declarations {
		b.WriteByte(' ')
		b.WriteString(d.String())
	}
	b.WriteString(" }")
	return b.String()
}

// sortSelectors orders selectors by descending specificity. Selectors of
// equal specificity keep their source order.
func sortSelectors(selectors []Selector) {
	sort.SliceStable(selectors, func(i, j int) bool {
		return selectors[j].Specificity().Less(selectors[i].Specificity())
	})
}

// Declaration is a property name together with its value, e.g.
//
//     margin-top: 10px;
//
type Declaration struct {
	Name  string
	Value Value
}

func (d Declaration) String() string {
	if d.Value == nil {
		return d.Name + ": ;"
	}
	return d.Name + ": " + d.Value.String() + ";"
}
