/*
Package markup generates escaped HTML from nested tag-builder calls.

This is the sibling facility to package latex: where latex translates
expression trees, markup serializes tag applications. Builders receive
attributes and already-built child fragments and produce one fragment in
turn, so nested calls compose naturally:

    frag, _ := markup.Render("p", nil,
        markup.Text("a "),
        markup.MustRender("b", nil, markup.Text("bold")),
        markup.Text(" word"))

Literal text is always escaped on the way in; fragments are marked by type
HTML and never re-escaped, which rules out double escaping as well as
accidental injection of raw text.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package markup

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'texpr.markup'.
func tracer() tracing.Trace {
	return tracing.Select("texpr.markup")
}
