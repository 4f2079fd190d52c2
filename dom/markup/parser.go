package markup

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"errors"
	"fmt"
	"unicode"
	"unicode/utf8"

	"github.com/npillmayer/boxtree/dom"
	"github.com/npillmayer/boxtree/dom/style/cssom"
	"github.com/npillmayer/boxtree/scanner"
	"golang.org/x/net/html/atom"
)

// Parse parses markup source text and returns the root node of a document
// tree. The root node is always of kind *dom.Document and carries the
// stylesheets harvested from embedded <style> elements.
//
// Grammar violations (mismatched or missing end tags, unterminated comments,
// attribute values or style elements, malformed embedded CSS) abort the parse.
// The error returned is a *scanner.SyntaxError and no tree is returned with it.
func Parse(source string) (doc *dom.Node, err error) {
	p := &parser{s: scanner.New(source)}
	defer scanner.Recover(&err)
	nodes := p.parseNodes()
	if !p.s.AtEnd() { // parseNodes stopped in front of an end tag
		p.fail("unexpected end tag at top level")
	}
	tracer().Debugf("parsed document with %d top-level nodes and %d stylesheets",
		len(nodes), len(p.stylesheets))
	return dom.NewDocument(nodes, p.stylesheets), nil
}

var styleTag = atom.Style.String()

// parser owns exactly one scanner and collects stylesheets while parsing.
type parser struct {
	s           *scanner.Scanner
	stylesheets []*cssom.Stylesheet
}

func (p *parser) fail(format string, args ...interface{}) {
	scanner.Abort(p.s.Errorf(format, args...))
}

func (p *parser) expect(r rune) {
	if err := p.s.Expect(r); err != nil {
		scanner.Abort(err.(*scanner.SyntaxError))
	}
}

func (p *parser) expectString(lit string) {
	if err := p.s.ExpectString(lit); err != nil {
		scanner.Abort(err.(*scanner.SyntaxError))
	}
}

// parseNodes parses sibling nodes until the end of input or an end tag.
// <style> elements are parsed into stylesheets and do not produce nodes.
func (p *parser) parseNodes() []*dom.Node {
	var nodes []*dom.Node
	for {
		p.s.ConsumeWhitespace()
		if p.s.AtEnd() || p.s.StartsWith("</") {
			break
		}
		if p.startsWithTag(styleTag) {
			p.stylesheets = append(p.stylesheets, p.parseStyleElement())
			continue
		}
		nodes = append(nodes, p.parseNode())
	}
	return nodes
}

// startsWithTag checks for a start tag with the given name, without advancing.
func (p *parser) startsWithTag(name string) bool {
	if !p.s.StartsWith("<" + name) {
		return false
	}
	c, _ := utf8.DecodeRuneInString(p.s.Remaining()[len(name)+1:])
	return c == '>' || unicode.IsSpace(c)
}

func (p *parser) parseNode() *dom.Node {
	if p.s.StartsWith("<!--") {
		return p.parseComment()
	}
	if p.s.StartsWith("<") {
		return p.parseElement()
	}
	return p.parseText()
}

// parseText parses a text run up to the next '<'.
func (p *parser) parseText() *dom.Node {
	return dom.NewText(p.s.ConsumeWhile(func(c rune) bool {
		return c != '<'
	}))
}

// parseComment parses <!-- … -->. Comments do not nest.
func (p *parser) parseComment() *dom.Node {
	start := p.s.Pos()
	p.expectString("<!--")
	text, found := p.s.ConsumeUntil("-->")
	if !found {
		scanner.Abort(&scanner.SyntaxError{Pos: start, Msg: "unterminated comment",
			Err: scanner.ErrEndOfInput})
	}
	p.expectString("-->")
	return dom.NewComment(text)
}

// parseElement parses an element, including its children and its end tag.
func (p *parser) parseElement() *dom.Node {
	p.expect('<')
	tagName := p.parseTagName()
	attrs := p.parseAttributes()
	p.expect('>')
	tracer().P("tag", tagName).Debugf("element start")
	children := p.parseNodes()
	p.parseEndTag(tagName)
	return dom.NewElement(tagName, attrs, children...)
}

// parseEndTag parses </tagName>. The name has to match exactly.
func (p *parser) parseEndTag(tagName string) {
	if p.s.AtEnd() {
		p.fail("missing end tag for <%s>", tagName)
	}
	start := p.s.Pos()
	p.expectString("</")
	if name := p.s.ConsumeWhile(isTagNameChar); name != tagName {
		scanner.Abort(&scanner.SyntaxError{Pos: start,
			Msg: fmt.Sprintf("end tag </%s> does not match <%s>", name, tagName)})
	}
	p.expect('>')
}

// parseTagName parses a non-empty tag name of ASCII letters and digits.
func (p *parser) parseTagName() string {
	name := p.s.ConsumeWhile(isTagNameChar)
	if name == "" {
		p.fail("expected tag name")
	}
	return name
}

// parseAttributes parses name="value" pairs up to the closing '>' of a start
// tag. Later attributes with the same name overwrite earlier ones.
func (p *parser) parseAttributes() dom.AttrMap {
	attrs := dom.AttrMap{}
	for {
		p.s.ConsumeWhitespace()
		c, err := p.s.Peek()
		if err != nil {
			p.fail("unterminated start tag")
		}
		if c == '>' {
			break
		}
		name := p.s.ConsumeWhile(isAttrNameChar)
		if name == "" {
			p.fail("expected attribute name, found %q", c)
		}
		p.expect('=')
		attrs[name] = p.parseAttrValue()
	}
	return attrs
}

// parseAttrValue parses a value enclosed in matching single or double quotes.
func (p *parser) parseAttrValue() string {
	start := p.s.Pos()
	quote, err := p.s.Consume()
	if err != nil {
		p.fail("expected attribute value")
	}
	if quote != '"' && quote != '\'' {
		scanner.Abort(&scanner.SyntaxError{Pos: start,
			Msg: fmt.Sprintf("expected quoted attribute value, found %q", quote)})
	}
	value := p.s.ConsumeWhile(func(c rune) bool {
		return c != quote
	})
	if p.s.AtEnd() {
		scanner.Abort(&scanner.SyntaxError{Pos: start, Msg: "unterminated attribute value",
			Err: scanner.ErrEndOfInput})
	}
	p.expect(quote)
	return value
}

// parseStyleElement parses <style …>…</style> and hands the content to the
// CSS parser. Attributes of the style element are ignored.
func (p *parser) parseStyleElement() *cssom.Stylesheet {
	start := p.s.Pos()
	p.expect('<')
	p.parseTagName()
	p.parseAttributes()
	p.expect('>')
	offset := p.s.Pos()
	css, found := p.s.ConsumeUntil("</style>")
	if !found {
		scanner.Abort(&scanner.SyntaxError{Pos: start, Msg: "unterminated <style> element",
			Err: scanner.ErrEndOfInput})
	}
	p.expectString("</style>")
	sheet, err := cssom.Parse(css)
	if err != nil {
		serr := &scanner.SyntaxError{Pos: offset, Msg: "in <style> element", Err: err}
		var cssErr *scanner.SyntaxError
		if errors.As(err, &cssErr) {
			serr.Pos = offset + cssErr.Pos
		}
		scanner.Abort(serr)
	}
	tracer().Debugf("harvested stylesheet with %d rules", len(sheet.Rules))
	return sheet
}

func isTagNameChar(c rune) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9'
}

func isAttrNameChar(c rune) bool {
	return isTagNameChar(c) || c == '-' || c == '_' || c == ':'
}
