package latex

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"strings"
	"unicode"
)

// wrap returns a renderer enclosing its single operand between a prefix and
// a suffix.
func wrap(prefix, suffix string) Renderer {
	return func(args []string) string {
		return prefix + strings.Join(args, ", ") + suffix
	}
}

// join returns a renderer concatenating its operands with a separator
// between each pair. This covers the binary operators; applied to more than
// two operands it joins all of them, which matches the left-to-right
// flattening a parser produces for chains like a+b+c.
func join(sep string) Renderer {
	return func(args []string) string {
		return strings.Join(args, sep)
	}
}

// knownFunctions is the static registry of renderers for known operators
// and functions. Built once, never mutated afterwards, therefore safe to
// share between concurrent translations.
var knownFunctions = map[string]Renderer{
	// binary operators; '^' and '_' join without surrounding spaces
	"+": join(" + "),
	"-": join(" - "),
	"*": join(" * "),
	"/": join(" / "),
	"^": join("^"),
	"[": join("_"), // indexing renders as a subscript

	// grouping
	"(": wrap(`\left( `, ` \right)`),
	"{": wrap(`\left{ `, ` \right}`),

	// known math functions
	"sqrt":  wrap(`\sqrt{`, `}`),
	"sin":   wrap(`\sin(`, `)`),
	"log":   wrap(`\log(`, `)`),
	"abs":   wrap(`\left| `, ` \right|`),
	"hat":   wrap(`\hat{`, `}`),
	"tilde": wrap(`\tilde{`, `}`),

	// frac is a fixed two-slot template, not a generic wrap; missing
	// operands leave their slot empty, surplus operands are ignored
	"frac": func(args []string) string {
		var a, b string
		if len(args) > 0 {
			a = args[0]
		}
		if len(args) > 1 {
			b = args[1]
		}
		return `\frac{` + a + `}{` + b + `}`
	},

	// escape hatch: plain concatenation without any added formatting
	"paste": join(""),
}

// fallbackFor generates a renderer for a function name absent from the
// known registry: the arguments, joined by ", ", wrapped in a roman-font
// function application. Translation thus degrades gracefully instead of
// failing on unrecognized functions.
func fallbackFor(name string) Renderer {
	return func(args []string) string {
		return `\mathrm{` + name + `}(` + strings.Join(args, ", ") + `)`
	}
}

// greekLetters are the names substituted by their LaTeX macro form when
// used as identifiers. Both spellings are registered, e.g. pi ↦ \pi and
// Pi ↦ \Pi. The substitution intentionally shadows free variables of the
// same spelling: a variable literally named pi cannot be referenced as
// itself.
var greekLetters = []string{
	"alpha", "beta", "gamma", "delta", "epsilon", "zeta",
	"eta", "theta", "iota", "kappa", "lambda", "mu",
	"nu", "xi", "omicron", "pi", "rho", "sigma",
	"tau", "upsilon", "phi", "chi", "psi", "omega",
}

// knownSymbols is the static Greek-letter substitution table, as a bindings
// map ready to be re-parented onto a per-translation scope chain.
var knownSymbols = make(map[string]Renderer, 2*len(greekLetters))

func init() {
	for _, name := range greekLetters {
		knownSymbols[name] = Fixed(`\` + name)
		capitalized := capitalize(name)
		knownSymbols[capitalized] = Fixed(`\` + capitalized)
	}
}

func capitalize(s string) string {
	r := []rune(s)
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}
