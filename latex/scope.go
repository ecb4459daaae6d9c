package latex

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

// Renderer produces the output-language text for one identifier or one
// call, given the already-translated argument strings. Renderers for plain
// symbol substitution ignore their arguments (see Fixed).
type Renderer func(args []string) string

// Fixed returns a renderer for a plain string substitution. It ignores its
// arguments and always yields text.
func Fixed(text string) Renderer {
	return func([]string) string {
		return text
	}
}

// Scope is one layer of a name-resolution chain: a mapping from identifier
// to renderer, with a link to a parent layer. Lookup falls through to the
// parent whenever a name is absent locally, so inner layers shadow outer
// ones purely through chain-parentage.
//
// Scopes are specific to the name/call vocabulary of one expression tree
// and must not be shared between translations of different trees. The
// static registry layers shared by all scopes are never mutated after
// initialization.
type Scope struct {
	name     string // for tracing
	bindings map[string]Renderer
	parent   *Scope
}

// NewScope creates a fresh, empty scope layer on top of parent. A nil
// parent denotes the outermost layer.
func NewScope(name string, parent *Scope) *Scope {
	return &Scope{
		name:     name,
		bindings: make(map[string]Renderer),
		parent:   parent,
	}
}

// layer wraps an existing, read-only bindings table as a scope layer.
// Callers must not Bind into a layer created this way.
func layer(name string, bindings map[string]Renderer, parent *Scope) *Scope {
	return &Scope{name: name, bindings: bindings, parent: parent}
}

// Bind associates a name with a renderer in this layer, shadowing any
// binding for the same name in parent layers.
func (sc *Scope) Bind(name string, r Renderer) {
	sc.bindings[name] = r
}

// Lookup resolves a name, walking the chain from this layer outwards. The
// boolean return indicates whether the name was found at all.
func (sc *Scope) Lookup(name string) (Renderer, bool) {
	for it := sc; it != nil; it = it.parent {
		if r, ok := it.bindings[name]; ok {
			tracer().Debugf("scope: resolved %q in layer %s", name, it.name)
			return r, true
		}
	}
	return nil, false
}
