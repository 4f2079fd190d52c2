package cssom

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/npillmayer/boxtree/scanner"
)

// Parse parses CSS source text into a stylesheet.
//
// Grammar violations (missing ':' or ';', unterminated blocks or comments,
// non-numeric lengths, malformed colors) abort the parse. The error returned
// is a *scanner.SyntaxError and no stylesheet is returned with it.
func Parse(source string) (sheet *Stylesheet, err error) {
	p := &parser{s: scanner.New(source)}
	defer scanner.Recover(&err)
	sheet = &Stylesheet{Rules: p.parseRules()}
	tracer().Debugf("parsed stylesheet with %d rules", len(sheet.Rules))
	return sheet, nil
}

// ParseSelectors parses a comma-separated list of simple selectors, e.g.
// "p.note, #main". The selectors are returned sorted by descending
// specificity.
func ParseSelectors(source string) (selectors []Selector, err error) {
	p := &parser{s: scanner.New(source)}
	defer scanner.Recover(&err)
	var sels []Selector
	p.skipWhitespaceAndComments()
	for {
		sels = append(sels, p.parseSimpleSelector())
		p.skipWhitespaceAndComments()
		if p.s.AtEnd() {
			break
		}
		p.expect(',')
		p.skipWhitespaceAndComments()
	}
	sortSelectors(sels)
	return sels, nil
}

// ParseValue parses a single property value, e.g. "12px".
func ParseValue(source string) (value Value, err error) {
	p := &parser{s: scanner.New(source)}
	defer scanner.Recover(&err)
	p.skipWhitespaceAndComments()
	v := p.parseValue()
	p.skipWhitespaceAndComments()
	if !p.s.AtEnd() {
		p.fail("unexpected characters after value")
	}
	return v, nil
}

// parser owns exactly one scanner. Productions abort by panicking with a
// *scanner.SyntaxError, which Parse recovers.
type parser struct {
	s *scanner.Scanner
}

func (p *parser) fail(format string, args ...interface{}) {
	scanner.Abort(p.s.Errorf(format, args...))
}

func (p *parser) expect(r rune) {
	if err := p.s.Expect(r); err != nil {
		scanner.Abort(err.(*scanner.SyntaxError))
	}
}

// next peeks at the next character, failing at the end of input with a
// message naming the construct being parsed.
func (p *parser) next(inside string) rune {
	r, err := p.s.Peek()
	if err != nil {
		p.fail("unexpected end of input in %s", inside)
	}
	return r
}

// parseRules parses rules until the end of input.
func (p *parser) parseRules() []*Rule {
	var rules []*Rule
	for {
		p.skipWhitespaceAndComments()
		if p.s.AtEnd() {
			break
		}
		rules = append(rules, p.parseRule())
	}
	return rules
}

func (p *parser) parseRule() *Rule {
	rule := &Rule{
		Selectors: p.parseSelectors(),
	}
	rule.Declarations = p.parseDeclarations()
	tracer().P("rule", len(rule.Selectors)).Debugf("rule with %d declarations", len(rule.Declarations))
	return rule
}

// skipWhitespaceAndComments skips white space and /* … */ comments, including
// runs of comment-whitespace-comment.
func (p *parser) skipWhitespaceAndComments() {
	for {
		p.s.ConsumeWhitespace()
		if !p.s.StartsWith("/*") {
			return
		}
		start := p.s.Pos()
		p.s.ExpectString("/*")
		if _, found := p.s.ConsumeUntil("*/"); !found {
			scanner.Abort(&scanner.SyntaxError{Pos: start, Msg: "unterminated comment",
				Err: scanner.ErrEndOfInput})
		}
		p.s.ExpectString("*/")
	}
}

// parseSelectors parses a comma-separated list of simple selectors, up to
// the opening brace of the declaration block.
func (p *parser) parseSelectors() []Selector {
	var selectors []Selector
	for {
		selectors = append(selectors, p.parseSimpleSelector())
		p.skipWhitespaceAndComments()
		switch c := p.next("selector list"); c {
		case ',':
			p.s.Consume()
			p.skipWhitespaceAndComments()
			continue
		case '{':
		default:
			p.fail("unexpected character %q in selector list", c)
		}
		break
	}
	sortSelectors(selectors)
	return selectors
}

// parseSimpleSelector parses tag, '*', #id and .class parts in any order.
// It stops at the first character which cannot continue a simple selector.
// Every part is optional: an empty selector matches any element, like '*'.
func (p *parser) parseSimpleSelector() *SimpleSelector {
	sel := &SimpleSelector{}
scan:
	for !p.s.AtEnd() {
		c, _ := p.s.Peek()
		switch {
		case c == '#':
			p.s.Consume()
			sel.ID = p.parseIdentifier("id selector")
		case c == '.':
			p.s.Consume()
			sel.Classes = append(sel.Classes, p.parseIdentifier("class selector"))
		case c == '*':
			p.s.Consume()
		case isIdentChar(c):
			sel.TagName = p.parseIdentifier("type selector")
		default:
			break scan
		}
	}
	return sel
}

// parseIdentifier parses a non-empty identifier.
func (p *parser) parseIdentifier(inside string) string {
	id := p.s.ConsumeWhile(isIdentChar)
	if id == "" {
		if p.s.AtEnd() {
			p.fail("unexpected end of input in %s", inside)
		}
		c, _ := p.s.Peek()
		p.fail("expected identifier in %s, found %q", inside, c)
	}
	return id
}

// parseDeclarations parses a declaration block, including its braces.
func (p *parser) parseDeclarations() []Declaration {
	p.expect('{')
	var decls []Declaration
	for {
		p.skipWhitespaceAndComments()
		if p.next("declaration block") == '}' {
			p.s.Consume()
			break
		}
		decls = append(decls, p.parseDeclaration())
	}
	return decls
}

// parseDeclaration parses
//
//     name : value ;
//
func (p *parser) parseDeclaration() Declaration {
	name := p.parseIdentifier("declaration")
	p.skipWhitespaceAndComments()
	p.expect(':')
	p.skipWhitespaceAndComments()
	value := p.parseValue()
	p.skipWhitespaceAndComments()
	p.expect(';')
	return Declaration{Name: name, Value: value}
}

func (p *parser) parseValue() Value {
	switch c := p.next("declaration value"); {
	case c >= '0' && c <= '9':
		return p.parseLength()
	case c == '#':
		return p.parseColor()
	}
	return Keyword(p.parseIdentifier("declaration value"))
}

// parseLength parses a number followed by an optional unit, e.g. "12.5px".
func (p *parser) parseLength() Length {
	start := p.s.Pos()
	num := p.s.ConsumeWhile(func(c rune) bool {
		return c >= '0' && c <= '9' || c == '.'
	})
	f, err := strconv.ParseFloat(num, 64)
	if err != nil {
		scanner.Abort(&scanner.SyntaxError{Pos: start, Msg: "invalid number " + strconv.Quote(num)})
	}
	return Length{Amount: f, Unit: p.parseUnit()}
}

// parseUnit matches the unit suffix case-insensitively. The suffix extends
// up to white space or ';'. Unrecognized units are not an error.
func (p *parser) parseUnit() Unit {
	unit := p.s.ConsumeWhile(func(c rune) bool {
		return c != ';' && !unicode.IsSpace(c)
	})
	switch strings.ToLower(unit) {
	case "px":
		return Px
	case "%":
		return Percentage
	case "em":
		return Em
	}
	if unit != "" {
		tracer().P("unit", unit).Debugf("unknown unit")
	}
	return UnknownUnit
}

// parseColor parses a hex color "#rrggbb". Alpha is always 255.
func (p *parser) parseColor() Color {
	p.expect('#')
	return Color{
		R: p.parseHexPair(),
		G: p.parseHexPair(),
		B: p.parseHexPair(),
		A: 255,
	}
}

func (p *parser) parseHexPair() uint8 {
	start := p.s.Pos()
	var pair [2]rune
	for i := range pair {
		c := p.next("color value")
		if !isHexDigit(c) {
			p.fail("invalid hex digit %q in color value", c)
		}
		pair[i], _ = p.s.Consume()
	}
	n, err := strconv.ParseUint(string(pair[:]), 16, 8)
	if err != nil { // cannot happen for two hex digits
		scanner.Abort(&scanner.SyntaxError{Pos: start, Msg: "invalid color component", Err: err})
	}
	return uint8(n)
}

// isIdentChar is true for ASCII letters, digits, hyphen and underscore.
func isIdentChar(c rune) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9' ||
		c == '-' || c == '_'
}

func isHexDigit(c rune) bool {
	return c >= '0' && c <= '9' || c >= 'a' && c <= 'f' || c >= 'A' && c <= 'F'
}
