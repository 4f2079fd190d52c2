/*
Package css resolves CSS styles for elements of a document tree.

A rule matches an element if at least one of its selectors matches. The
specificity a matching rule enters the cascade with is the specificity of the
first matching selector in the rule's selector list. Selector lists are
sorted by descending specificity by the stylesheet parser, so usually this
is the highest specificity of all matching selectors.

Matching rules are applied in ascending order of specificity, ties broken
by stylesheet order. There is no inheritance and there are no !important
declarations: an element's specified values result from the rules matching
the element itself.

Package css also interprets specified values: display modes and
dimensions.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package css

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'boxtree.style'.
func tracer() tracing.Trace {
	return tracing.Select("boxtree.style")
}
