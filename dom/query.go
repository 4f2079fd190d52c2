package dom

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"

	"github.com/andybalholm/cascadia"
	"golang.org/x/net/html"
)

// QueryAll returns all nodes in the tree under root (including root) which
// are matched by a CSS selector, in document order.
//
// The selector syntax is the full syntax supported by cascadia, which is
// a super-set of what package cssom is able to parse. QueryAll never
// modifies the tree.
func QueryAll(root *Node, selector string) ([]*Node, error) {
	sel, err := cascadia.Compile(selector)
	if err != nil {
		return nil, fmt.Errorf("dom: invalid selector %q: %w", selector, err)
	}
	h, dict := toHTML(root, make(map[*html.Node]*Node))
	if h == nil {
		return nil, nil
	}
	matches := sel.MatchAll(h)
	nodes := make([]*Node, 0, len(matches))
	for _, m := range matches {
		nodes = append(nodes, dict[m])
	}
	tracer().P("selector", selector).Debugf("query matched %d nodes", len(nodes))
	return nodes, nil
}
