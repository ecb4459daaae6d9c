/*
Package latex translates mathematical expression trees into LaTeX math
syntax.

Translation is a single-pass, read-only tree transformation, driven by a
layered resolution scope. The scope maps identifier and function names to
renderers, i.e. functions producing an output fragment from already
translated operand strings. Layers are chained through parent links and are
consulted innermost first, so specific, hand-authored mappings (Greek
letters, known functions) shadow the generic fallbacks (echo the name,
wrap in a roman-font call form). Names in call position resolve against
the function layers only, so a symbol binding never shadows a function of
the same spelling. Resolution is total by construction: translation never
fails because of an unknown name.

A typical usage looks like this:

    e := texpr.NewCall("frac", texpr.Id("alpha"), texpr.Lit(2))
    s, err := latex.Translate(e)     // s = `\frac{\alpha}{2}`

The only error condition is an expression node of an unsupported kind,
reported as texpr.ErrUnsupportedNode; see there.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package latex

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'texpr.latex'.
func tracer() tracing.Trace {
	return tracing.Select("texpr.latex")
}
