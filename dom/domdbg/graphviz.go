package domdbg

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"
	"io"
	"strings"
	"text/template"

	"github.com/npillmayer/boxtree/dom"
	"github.com/npillmayer/boxtree/dom/style"
	"github.com/npillmayer/boxtree/dom/styledtree"
)

// Parameters for GraphViz drawing.
type graphParams struct {
	Fontname    string
	StyleGroups []string
}

var defaultGroups = []string{
	style.PGMargins,
	style.PGPadding,
	style.PGBorder,
	style.PGDisplay,
}

// Option is a type to configure GraphViz output.
type Option struct {
	config func(graphParams) graphParams
}

// StyleGroups selects the style property groups to include in a diagram.
// If no group is given, no styles are included.
//
//     domdbg.ToGraphViz(styled, w, domdbg.StyleGroups(style.PGColor, style.PGDisplay))
//
func StyleGroups(groups ...string) Option {
	return Option{config: func(p graphParams) graphParams {
		p.StyleGroups = groups
		return p
	}}
}

// WithFont sets the font name for a diagram. Default is Helvetica.
func WithFont(fontname string) Option {
	return Option{config: func(p graphParams) graphParams {
		if fontname != "" {
			p.Fontname = fontname
		}
		return p
	}}
}

// ToGraphViz outputs a diagram for a styled tree. The diagram is in
// GraphViz (DOT) format. The diagram will include all styles belonging
// to one of the property groups selected with option StyleGroups.
//
// If the client does not provide a list of style groups, the following
// default will be used:
//
//     - Margins
//     - Padding
//     - Border
//     - Display
//
// Nodes with a specified background color are filled with an approximation
// of this color.
func ToGraphViz(styled *styledtree.StyNode, w io.Writer, opts ...Option) error {
	params := graphParams{Fontname: "Helvetica", StyleGroups: defaultGroups}
	for _, opt := range opts {
		params = opt.config(params)
	}
	g := &graph{
		w:      w,
		params: params,
		names:  make(map[*styledtree.StyNode]string),
	}
	g.exec(headTmpl, params)
	if styled != nil {
		g.nodes(styled)
	}
	g.write("}\n")
	return g.err
}

type graph struct {
	w      io.Writer
	params graphParams
	names  map[*styledtree.StyNode]string
	groups int
	err    error
}

func (g *graph) exec(tmpl *template.Template, data interface{}) {
	if g.err != nil {
		return
	}
	g.err = tmpl.Execute(g.w, data)
}

func (g *graph) write(s string) {
	if g.err != nil {
		return
	}
	_, g.err = io.WriteString(g.w, s)
}

func (g *graph) nodes(sn *styledtree.StyNode) {
	g.node(sn)
	for _, ch := range sn.Children() {
		g.nodes(ch)
		g.exec(edgeTmpl, edge{g.names[sn], g.names[ch]})
	}
}

type node struct {
	Name      string
	NodeName  string
	Label     string
	Fillcolor string
}

func (g *graph) node(sn *styledtree.StyNode) {
	name := fmt.Sprintf("node%05d", len(g.names)+1)
	g.names[sn] = name
	n := node{Name: name, NodeName: sn.DOMNode().NodeName()}
	if t, ok := sn.DOMNode().Data.(dom.Text); ok {
		n.Label = shortText(string(t))
	} else {
		n.Label = fmt.Sprintf("%q", n.NodeName)
	}
	n.Fillcolor = "lightblue3"
	if c, ok := sn.Styles().Color("background"); ok {
		n.Fillcolor = style.ColorString(c)
	}
	g.exec(nodeTmpl, n)
	g.styles(sn)
}

type propGroup struct {
	Name  string
	Group *style.PropertyGroup
}

func (g *graph) styles(sn *styledtree.StyNode) {
	prev := g.names[sn]
	for _, s := range g.params.StyleGroups {
		pg := sn.Styles().Group(s)
		if pg == nil {
			continue
		}
		g.groups++
		name := fmt.Sprintf("pg%05d", g.groups)
		g.exec(styleGroupTmpl, propGroup{name, pg})
		g.exec(pgEdgeTmpl, edge{prev, name})
		prev = name
	}
}

type edge struct {
	From, To string
}

func shortText(text string) string {
	if len(text) > 10 {
		text = text[:runeBoundary(text, 10)] + "..."
	}
	text = strings.Replace(text, `"`, `\"`, -1)
	text = strings.Replace(text, "\n", `\\n`, -1)
	text = strings.Replace(text, "\t", `\\t`, -1)
	text = strings.Replace(text, " ", "␣", -1)
	return `"\"` + text + `\""`
}

// runeBoundary returns the largest index <= n at which a character of s starts.
func runeBoundary(s string, n int) int {
	last := 0
	for i := range s {
		if i > n {
			break
		}
		last = i
	}
	return last
}

// --- Templates --------------------------------------------------------

var headTmpl = template.Must(template.New("head").Parse(`digraph g {
  graph [labelloc="t" label="" splines=true overlap=false rankdir = "LR"];
  graph [fontname = "{{ .Fontname }}" fontsize=14] ;
   node [fontname = "{{ .Fontname }}" fontsize=14] ;
   edge [fontname = "{{ .Fontname }}" fontsize=14] ;
`))

var nodeTmpl = template.Must(template.New("domnode").Parse(`{{ if eq .NodeName "#text" }}
{{ .Name }}	[ label={{ .Label }} shape=box style=filled fillcolor=grey95 fontname="Courier" fontsize=11.0 ] ;
{{ else }}
{{ .Name }}	[ label={{ .Label }} shape=ellipse style=filled fillcolor={{ .Fillcolor }} ] ;
{{ end }}
`))

var styleGroupTmpl = template.Must(template.New("stylegroup").Parse(`{{ .Name }} [ style="filled" penwidth=1 fillcolor="ivory3" shape="Mrecord" fontsize=12
    label=<<table border="0" cellborder="0" cellpadding="2" cellspacing="0" bgcolor="ivory3">
      <tr><td bgcolor="azure4" align="center" colspan="2"><font color="white">{{ .Group.Name }}</font></td></tr>
      {{ range .Group.Properties }}
      <tr><td align="right">{{ .Key }}:</td><td>{{ .Value }}</td></tr>
      {{ else }}
      <tr><td colspan="2">no styles</td></tr>
      {{ end }}
    </table>> ] ;
`))

var edgeTmpl = template.Must(template.New("domedge").Parse(`{{ .From }} -> {{ .To }} [weight=1] ;
`))

var pgEdgeTmpl = template.Must(template.New("pgedge").Parse(`{{ .From }} -> {{ .To }} [dir=none weight=1 style="dashed"] ;
`))
