/*
Package douceuradapter converts stylesheets parsed by package douceur into
the CSSOM of package cssom.

Douceur accepts the full CSS syntax, which is a super-set of what cssom is
able to represent. Selectors and values are re-parsed with the cssom
grammar; rules outside of it are flagged as errors. At-rules are skipped and
"!important" markers are dropped, as the cascade does not support them.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package douceuradapter

import (
	"fmt"
	"strings"

	"github.com/aymerick/douceur/css"
	"github.com/aymerick/douceur/parser"
	"github.com/npillmayer/boxtree/dom/style/cssom"
	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// tracer traces with key 'boxtree.css'.
func tracer() tracing.Trace {
	return tracing.Select("boxtree.css")
}

// Convert creates a cssom stylesheet from a douceur stylesheet.
// The douceur stylesheet is not modified.
func Convert(sheet *css.Stylesheet) (*cssom.Stylesheet, error) {
	result := &cssom.Stylesheet{}
	if sheet == nil {
		return result, nil
	}
	for _, r := range sheet.Rules {
		if r.Kind != css.QualifiedRule {
			tracer().Infof("skipping at-rule %s %s", r.Name, r.Prelude)
			continue
		}
		rule, err := convertRule(r)
		if err != nil {
			return nil, err
		}
		result.Rules = append(result.Rules, rule)
	}
	return result, nil
}

func convertRule(r *css.Rule) (*cssom.Rule, error) {
	selectors, err := cssom.ParseSelectors(r.Prelude)
	if err != nil {
		return nil, fmt.Errorf("selector %q: %w", r.Prelude, err)
	}
	rule := &cssom.Rule{Selectors: selectors}
	for _, d := range r.Declarations {
		v, err := cssom.ParseValue(d.Value)
		if err != nil {
			return nil, fmt.Errorf("rule %q, property %s: %w", r.Prelude, d.Property, err)
		}
		if d.Important {
			tracer().P("property", d.Property).Debugf("dropping !important")
		}
		rule.Declarations = append(rule.Declarations, cssom.Declaration{
			Name:  strings.ToLower(d.Property),
			Value: v,
		})
	}
	return rule, nil
}

// Parse parses CSS source text with douceur and converts the result.
func Parse(source string) (*cssom.Stylesheet, error) {
	sheet, err := parser.Parse(source)
	if err != nil {
		return nil, err
	}
	return Convert(sheet)
}

// ExtractStyleElements visits <head> and <body> elements in an HTML parse
// tree and searches for embedded <style>s. It returns the content of
// style-elements as style sheets, in document order.
func ExtractStyleElements(htmldoc *html.Node) ([]*cssom.Stylesheet, error) {
	head := findElement(atom.Head, htmldoc)
	body := findElement(atom.Body, htmldoc)
	sheets, err := extractStyles(head)
	if err != nil {
		return nil, err
	}
	more, err := extractStyles(body)
	if err != nil {
		return nil, err
	}
	return append(sheets, more...), nil
}

func extractStyles(h *html.Node) ([]*cssom.Stylesheet, error) {
	if h == nil {
		return nil, nil
	}
	var sheets []*cssom.Stylesheet
	for ch := h.FirstChild; ch != nil; ch = ch.NextSibling {
		if ch.DataAtom != atom.Style || ch.FirstChild == nil {
			continue
		}
		sheet, err := Parse(ch.FirstChild.Data)
		if err != nil {
			return nil, err
		}
		sheets = append(sheets, sheet)
	}
	return sheets, nil
}

func findElement(a atom.Atom, h *html.Node) *html.Node {
	if h == nil {
		return nil
	}
	if h.DataAtom == a {
		return h
	}
	for ch := h.FirstChild; ch != nil; ch = ch.NextSibling {
		if r := findElement(a, ch); r != nil {
			return r
		}
	}
	return nil
}
