package cssom

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"
	"strings"
)

// Specificity ranks selectors: (number of ids, number of classes,
// number of tag names). Specificities compare lexicographically, ids first.
type Specificity struct {
	IDs, Classes, Tags int
}

// Compare returns -1, 0 or +1, depending on whether s is less than, equal to
// or greater than other.
func (s Specificity) Compare(other Specificity) int {
	switch {
	case s.IDs != other.IDs:
		return sign(s.IDs - other.IDs)
	case s.Classes != other.Classes:
		return sign(s.Classes - other.Classes)
	}
	return sign(s.Tags - other.Tags)
}

// Less is true if s ranks lower than other.
func (s Specificity) Less(other Specificity) bool {
	return s.Compare(other) < 0
}

func (s Specificity) String() string {
	return fmt.Sprintf("(%d,%d,%d)", s.IDs, s.Classes, s.Tags)
}

func sign(n int) int {
	if n < 0 {
		return -1
	} else if n > 0 {
		return 1
	}
	return 0
}

// Selector is a closed type: *SimpleSelector is the only implementation.
type Selector interface {
	Specificity() Specificity
	String() string
	isSelector()
}

// SimpleSelector is a selector of the form
//
//     tag#id.class1.class2
//
// Every part is optional; an empty TagName denotes '*' or an absent tag,
// an empty ID denotes an absent id. Classes may contain duplicates.
type SimpleSelector struct {
	TagName string
	ID      string
	Classes []string
}

func (sel *SimpleSelector) isSelector() {}

// Specificity returns the (id, class, tag) specificity of a selector.
func (sel *SimpleSelector) Specificity() Specificity {
	s := Specificity{Classes: len(sel.Classes)}
	if sel.ID != "" {
		s.IDs = 1
	}
	if sel.TagName != "" {
		s.Tags = 1
	}
	return s
}

func (sel *SimpleSelector) String() string {
	var b strings.Builder
	b.WriteString(sel.TagName)
	if sel.ID != "" {
		b.WriteByte('#')
		b.WriteString(sel.ID)
	}
	for _, c := range sel.Classes {
		b.WriteByte('.')
		b.WriteString(c)
	}
	if b.Len() == 0 {
		return "*"
	}
	return b.String()
}

var _ Selector = &SimpleSelector{}
