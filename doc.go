/*
Package texpr provides trees for mathematical expressions, to be translated
into markup languages.

Expressions are represented as small immutable trees, the way a parser would
hand them over: literals and identifiers at the leafs, operator/function
applications at the inner nodes. This package holds the tree type itself plus
read-only traversals over it. Translation into an output language lives in
the subpackages (currently latex and markup).

The tree type is a closed sum over exactly three node kinds. Clients cannot
implement Expr themselves, which keeps the "unsupported node kind" failure
mode at the tree-construction boundary rather than inside every walk.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package texpr

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'texpr.expr'.
func tracer() tracing.Trace {
	return tracing.Select("texpr.expr")
}
