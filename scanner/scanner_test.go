package scanner

import (
	"errors"
	"testing"
	"unicode"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestScannerPeekConsume(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "boxtree.scanner")
	defer teardown()
	//
	s := New("aä€")
	expected := []struct {
		r   rune
		pos int
	}{{'a', 1}, {'ä', 3}, {'€', 6}}
	for _, x := range expected {
		p, err := s.Peek()
		if err != nil || p != x.r {
			t.Fatalf("expected to peek %q, got %q (err=%v)", x.r, p, err)
		}
		c, err := s.Consume()
		if err != nil || c != x.r {
			t.Fatalf("expected to consume %q, got %q (err=%v)", x.r, c, err)
		}
		if s.Pos() != x.pos {
			t.Errorf("expected position %d after %q, is %d", x.pos, x.r, s.Pos())
		}
	}
	if !s.AtEnd() {
		t.Errorf("expected scanner to be at end")
	}
	if _, err := s.Peek(); !errors.Is(err, ErrEndOfInput) {
		t.Errorf("expected peek at end to fail with ErrEndOfInput, got %v", err)
	}
	if _, err := s.Consume(); !errors.Is(err, ErrEndOfInput) {
		t.Errorf("expected consume at end to fail with ErrEndOfInput, got %v", err)
	}
	if s.Pos() != 6 {
		t.Errorf("expected failed consume not to move, position is %d", s.Pos())
	}
}

func TestScannerConsumeWhile(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "boxtree.scanner")
	defer teardown()
	//
	s := New("abc123  xyz")
	if w := s.ConsumeWhile(unicode.IsDigit); w != "" {
		t.Errorf("expected empty prefix of digits, got %q", w)
	}
	if w := s.ConsumeWhile(unicode.IsLetter); w != "abc" {
		t.Errorf("expected 'abc', got %q", w)
	}
	if w := s.ConsumeWhile(unicode.IsDigit); w != "123" {
		t.Errorf("expected '123', got %q", w)
	}
	s.ConsumeWhitespace()
	if !s.StartsWith("xyz") {
		t.Errorf("expected remaining input to start with 'xyz'")
	}
	if s.StartsWith("xyzz") {
		t.Errorf("did not expect remaining input to start with 'xyzz'")
	}
	if w := s.ConsumeWhile(func(rune) bool { return true }); w != "xyz" || !s.AtEnd() {
		t.Errorf("expected to consume rest 'xyz', got %q", w)
	}
}

func TestScannerConsumeUntil(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "boxtree.scanner")
	defer teardown()
	//
	s := New("body{}</style>rest")
	text, found := s.ConsumeUntil("</style>")
	if !found || text != "body{}" {
		t.Errorf("expected to find body{} before closing tag, got %q (found=%v)", text, found)
	}
	if !s.StartsWith("</style>") {
		t.Errorf("expected scanner to stop in front of the literal")
	}
	s = New("no end here")
	text, found = s.ConsumeUntil("-->")
	if found || text != "no end here" || !s.AtEnd() {
		t.Errorf("expected unterminated scan to run to end, got %q (found=%v)", text, found)
	}
}

func TestScannerExpect(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "boxtree.scanner")
	defer teardown()
	//
	s := New("<!-x")
	if err := s.Expect('<'); err != nil {
		t.Errorf("expected '<' to be accepted, got %v", err)
	}
	err := s.ExpectString("!--")
	if !errors.Is(err, ErrSyntax) {
		t.Errorf("expected syntax error for '!--', got %v", err)
	}
	if errors.Is(err, ErrEndOfInput) {
		t.Errorf("did not expect mismatch in the middle of input to be end-of-input")
	}
	var serr *SyntaxError
	if !errors.As(err, &serr) || serr.Pos != 1 {
		t.Errorf("expected syntax error at position 1, got %#v", err)
	}
	err = New("<!-").ExpectString("<!--")
	if !errors.Is(err, ErrEndOfInput) || !errors.Is(err, ErrSyntax) {
		t.Errorf("expected premature end to be a syntax error at end of input, got %v", err)
	}
	err = New("").Expect('>')
	if !errors.Is(err, ErrEndOfInput) || !errors.Is(err, ErrSyntax) {
		t.Errorf("expected '>' at end to be a syntax error at end of input, got %v", err)
	}
}

func TestScannerRecover(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "boxtree.scanner")
	defer teardown()
	//
	parse := func(input string) (err error) {
		defer Recover(&err)
		s := New(input)
		if e := s.Expect('x'); e != nil {
			Abort(e.(*SyntaxError))
		}
		return nil
	}
	if err := parse("x"); err != nil {
		t.Errorf("expected no error, got %v", err)
	}
	if err := parse("y"); !errors.Is(err, ErrSyntax) {
		t.Errorf("expected aborted parse to return syntax error, got %v", err)
	}
	defer func() {
		if r := recover(); r == nil {
			t.Errorf("expected foreign panic to be re-raised")
		}
	}()
	func() {
		var err error
		defer Recover(&err)
		panic("boom")
	}()
}
