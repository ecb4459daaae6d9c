package texpr

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"

	tp "github.com/xlab/treeprint"
)

// Dump returns an ASCII-art representation of an expression tree, intended
// for debugging and for t.Logf output in tests.
func Dump(e Expr) string {
	p := tp.New()
	dumpNode(p, e)
	return p.String()
}

func dumpNode(p tp.Tree, e Expr) {
	switch n := e.(type) {
	case Literal:
		p.AddNode(fmt.Sprintf("lit %q", n.String()))
	case Ident:
		p.AddNode(fmt.Sprintf("id %s", n.Sym))
	case Call:
		branch := p.AddBranch(fmt.Sprintf("call %s", n.Fn))
		for _, arg := range n.Args {
			dumpNode(branch, arg)
		}
	default:
		p.AddNode(fmt.Sprintf("?%T", e))
	}
}
