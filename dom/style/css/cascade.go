package css

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"sort"

	"github.com/npillmayer/boxtree/dom"
	"github.com/npillmayer/boxtree/dom/style"
	"github.com/npillmayer/boxtree/dom/style/cssom"
)

// Matches checks if a selector matches an element.
func Matches(elem *dom.Element, sel cssom.Selector) bool {
	switch s := sel.(type) {
	case *cssom.SimpleSelector:
		return matchesSimple(elem, s)
	}
	panic("css: unknown selector type")
}

func matchesSimple(elem *dom.Element, sel *cssom.SimpleSelector) bool {
	if sel.TagName != "" && sel.TagName != elem.TagName {
		return false
	}
	if sel.ID != "" {
		if id, ok := elem.ID(); !ok || id != sel.ID {
			return false
		}
	}
	if len(sel.Classes) == 0 {
		return true
	}
	classes := elem.Classes()
	for _, c := range sel.Classes {
		if _, ok := classes[c]; !ok {
			return false
		}
	}
	return true
}

// MatchedRule is a rule matching an element, together with the specificity
// the rule takes part in the cascade with.
type MatchedRule struct {
	Specificity cssom.Specificity
	Rule        *cssom.Rule
}

// MatchRule checks if a rule matches an element. If it does, the specificity
// of the first matching selector is reported, not the maximum over all of
// the rule's selectors.
func MatchRule(elem *dom.Element, rule *cssom.Rule) (MatchedRule, bool) {
	for _, sel := range rule.Selectors {
		if Matches(elem, sel) {
			return MatchedRule{Specificity: sel.Specificity(), Rule: rule}, true
		}
	}
	return MatchedRule{}, false
}

// MatchingRules collects all rules of a stylesheet matching an element,
// in stylesheet order. sheet may be nil.
func MatchingRules(elem *dom.Element, sheet *cssom.Stylesheet) []MatchedRule {
	if sheet.Empty() {
		return nil
	}
	var matched []MatchedRule
	for _, rule := range sheet.Rules {
		if m, ok := MatchRule(elem, rule); ok {
			matched = append(matched, m)
		}
	}
	return matched
}

// SpecifiedValues computes the property map for an element. Matching rules
// are applied in order of ascending specificity, so that declarations of
// more specific rules win.
func SpecifiedValues(elem *dom.Element, sheet *cssom.Stylesheet) *style.PropertyMap {
	pmap := style.NewPropertyMap()
	rules := MatchingRules(elem, sheet)
	sort.SliceStable(rules, func(i, j int) bool {
		return rules[i].Specificity.Less(rules[j].Specificity)
	})
	for _, m := range rules {
		for _, decl := range m.Rule.Declarations {
			pmap.Set(decl.Name, decl.Value)
		}
	}
	if len(rules) > 0 {
		tracer().P("element", elem.TagName).Debugf("%d matching rules, %d properties",
			len(rules), pmap.Size())
	}
	return pmap
}
