package latex

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"

	"github.com/npillmayer/texpr"
)

// Translate produces the LaTeX form of one expression tree.
//
// Translation is a two-pass design: pass 1 walks the whole tree to discover
// its name/call vocabulary and builds a resolution scope from it, pass 2
// evaluates the tree bottom-up against that scope. The scope is local to
// this one call and discarded on return.
//
// The only possible error is texpr.ErrUnsupportedNode; unknown identifiers
// and unknown function names are not errors, they resolve to defined
// fallback forms. On error, no partial output is returned.
func Translate(e texpr.Expr) (string, error) {
	sc, err := buildScope(e)
	if err != nil {
		return "", err
	}
	out, err := eval(e, sc)
	if err != nil {
		return "", err
	}
	tracer().Debugf("translated expression to %q", out)
	return out, nil
}

// resolution is the scope of one translation, with one chain head per
// lookup position. Value-position names resolve innermost-first, starting
// at the Greek layer. Call-position names start at the known-function
// layer, so the symbol layers never shadow a function binding: in
// sin(sin), the outer sin stays a function while the inner one resolves
// as a free symbol.
type resolution struct {
	values *Scope // Greek layer; chain covers all four layers
	calls  *Scope // known-function layer; chain covers layers 1 and 2 only
}

// buildScope constructs the resolution scope for one expression tree. The
// chain, from outermost (lowest precedence) to innermost:
//
//     1. generated fallbacks for call names not in the known registry
//     2. the static known-function registry
//     3. free symbols, each bound to its own spelling
//     4. the static Greek-letter table
//
// Layers 2 and 4 wrap the static registries; they share the underlying
// read-only maps, only the chain links are per-call. Layers 1 and 2 never
// collide: fallbacks are only generated for names absent from the registry.
func buildScope(e texpr.Expr) (resolution, error) {
	callNames, err := texpr.CallNames(e)
	if err != nil {
		return resolution{}, err
	}
	freeNames, err := texpr.FreeNames(e)
	if err != nil {
		return resolution{}, err
	}
	fallbacks := NewScope("fallback-calls", nil)
	for name := range callNames {
		if _, known := knownFunctions[name]; !known {
			fallbacks.Bind(name, fallbackFor(name))
		}
	}
	knownCalls := layer("known-calls", knownFunctions, fallbacks)
	symbols := NewScope("free-symbols", knownCalls)
	for name := range freeNames {
		symbols.Bind(name, Fixed(name))
	}
	greek := layer("greek-symbols", knownSymbols, symbols)
	tracer().Debugf("built scope for %d call name(s), %d free name(s)",
		len(callNames), len(freeNames))
	return resolution{values: greek, calls: knownCalls}, nil
}

// eval reduces an expression tree bottom-up to its output string. Argument
// sub-trees are evaluated left to right before the enclosing call's
// renderer is applied to the resulting strings. Identifiers resolve
// through the value chain, call names through the call chain.
func eval(e texpr.Expr, sc resolution) (string, error) {
	switch n := e.(type) {
	case texpr.Literal:
		return n.String(), nil
	case texpr.Ident:
		r, ok := sc.values.Lookup(n.Sym)
		if !ok { // cannot happen, scope is built from this very tree
			return "", fmt.Errorf("%w: unbound identifier %q",
				texpr.ErrUnsupportedNode, n.Sym)
		}
		return r(nil), nil
	case texpr.Call:
		args := make([]string, len(n.Args))
		for i, arg := range n.Args {
			s, err := eval(arg, sc)
			if err != nil {
				return "", err
			}
			args[i] = s
		}
		r, ok := sc.calls.Lookup(n.Fn)
		if !ok { // cannot happen, see above
			return "", fmt.Errorf("%w: unbound function %q",
				texpr.ErrUnsupportedNode, n.Fn)
		}
		return r(args), nil
	}
	return "", unsupported(e)
}

// unsupported mirrors the wrapping texpr does for foreign node kinds.
func unsupported(e texpr.Expr) error {
	if e == nil {
		return fmt.Errorf("%w: nil node", texpr.ErrUnsupportedNode)
	}
	return fmt.Errorf("%w: %T", texpr.ErrUnsupportedNode, e)
}
