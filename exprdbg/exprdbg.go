/*
Package exprdbg implements helpers to debug expression trees.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package exprdbg

import (
	"fmt"
	"io"
	"strings"
	"text/template"

	"github.com/npillmayer/texpr"
)

// Parameters for GraphViz drawing.
type graphParamsType struct {
	Fontname string
}

// ToGraphViz outputs a diagram for an expression tree. The diagram is in
// GraphViz (DOT) format. Clients provide the root node of the tree and
// a Writer.
func ToGraphViz(e texpr.Expr, w io.Writer) error {
	gparams := graphParamsType{Fontname: "Helvetica"}
	if err := headTmpl.Execute(w, gparams); err != nil {
		return err
	}
	serial := 0
	if _, err := exprNode(e, w, &serial); err != nil {
		return err
	}
	_, err := w.Write([]byte("}\n"))
	return err
}

type node struct {
	Name  string // DOT node identifier
	Label string
	Kind  string // "lit" | "id" | "call"
}

// exprNode writes the DOT node for e and, recursively, for its argument
// sub-trees, plus the connecting edges. It returns the DOT identifier
// assigned to e.
func exprNode(e texpr.Expr, w io.Writer, serial *int) (string, error) {
	*serial++
	n := node{Name: fmt.Sprintf("node%05d", *serial)}
	switch x := e.(type) {
	case texpr.Literal:
		n.Kind, n.Label = "lit", shortText(x.String())
	case texpr.Ident:
		n.Kind, n.Label = "id", x.Sym
	case texpr.Call:
		n.Kind, n.Label = "call", x.Fn
	default:
		return "", fmt.Errorf("cannot draw node of type %T", e)
	}
	if err := nodeTmpl.Execute(w, n); err != nil {
		return "", err
	}
	if call, ok := e.(texpr.Call); ok {
		for _, arg := range call.Args {
			chname, err := exprNode(arg, w, serial)
			if err != nil {
				return "", err
			}
			if err := edgeTmpl.Execute(w, edge{n.Name, chname}); err != nil {
				return "", err
			}
		}
	}
	return n.Name, nil
}

type edge struct {
	N1, N2 string
}

func shortText(s string) string {
	if len(s) > 10 {
		s = s[:10] + "..."
	}
	s = strings.Replace(s, "\n", `\n`, -1)
	s = strings.Replace(s, "\t", `\t`, -1)
	return s
}

// --- Templates --------------------------------------------------------

var headTmpl = template.Must(template.New("exprhead").Parse(graphHeadTmpl))
var nodeTmpl = template.Must(template.New("exprnode").Parse(exprNodeTmpl))
var edgeTmpl = template.Must(template.New("expredge").Parse(exprEdgeTmpl))

const graphHeadTmpl = `digraph g {
  graph [labelloc="t" label="" splines=true overlap=false];
  graph [{{ .Fontname }} = "helvetica" fontsize=14] ;
   node [fontname = "{{ .Fontname }}" fontsize=14] ;
   edge [fontname = "{{ .Fontname }}" fontsize=14] ;
`

const exprNodeTmpl = `{{ if eq .Kind "call" }}
{{ .Name }}	[ label={{ printf "%q" .Label }} shape=ellipse style=filled fillcolor=lightblue3 ] ;
{{ else if eq .Kind "lit" }}
{{ .Name }}	[ label={{ printf "%q" .Label }} shape=box style=filled fillcolor=grey95 fontname="Courier" fontsize=11.0 ] ;
{{ else }}
{{ .Name }}	[ label={{ printf "%q" .Label }} shape=box style=filled fillcolor=ivory3 ] ;
{{ end }}
`

const exprEdgeTmpl = `{{ .N1 }} -> {{ .N2 }} [weight=1] ;
`
