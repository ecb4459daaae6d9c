package latex

import (
	"errors"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/texpr"
	"github.com/stretchr/testify/assert"
)

func translate(t *testing.T, e texpr.Expr) string {
	t.Helper()
	s, err := Translate(e)
	if err != nil {
		t.Logf("expression =\n%s", texpr.Dump(e))
		t.Fatalf("translation returned error: %v", err)
	}
	return s
}

func TestGreekSymbols(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "texpr.latex")
	defer teardown()
	//
	assert.Equal(t, `\pi`, translate(t, texpr.Id("pi")))
	assert.Equal(t, `\beta`, translate(t, texpr.Id("beta")))
	assert.Equal(t, `\Gamma`, translate(t, texpr.Id("Gamma")))
}

func TestOrdinaryIdentifier(t *testing.T) {
	if s := translate(t, texpr.Id("x")); s != "x" {
		t.Errorf("expected identifier x to translate to itself, is %q", s)
	}
	if s := translate(t, texpr.Id("speed")); s != "speed" {
		t.Errorf("expected identifier speed to translate to itself, is %q", s)
	}
}

func TestLiterals(t *testing.T) {
	assert.Equal(t, "7", translate(t, texpr.Lit(7)))
	assert.Equal(t, "1.5", translate(t, texpr.Lit(1.5)))
}

func TestBinaryOperators(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "texpr.latex")
	defer teardown()
	//
	x, y := texpr.Id("x"), texpr.Id("y")
	cases := []struct {
		op   string
		want string
	}{
		{"+", "x + y"},
		{"-", "x - y"},
		{"*", "x * y"},
		{"/", "x / y"},
		{"^", "x^y"},
		{"[", "x_y"},
	}
	for _, c := range cases {
		got := translate(t, texpr.NewCall(c.op, x, y))
		assert.Equal(t, c.want, got, "operator %q", c.op)
	}
}

func TestGrouping(t *testing.T) {
	x := texpr.Id("x")
	assert.Equal(t, `\left( x \right)`, translate(t, texpr.NewCall("(", x)))
	assert.Equal(t, `\left{ x \right}`, translate(t, texpr.NewCall("{", x)))
}

func TestKnownFunctions(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "texpr.latex")
	defer teardown()
	//
	x := texpr.Id("x")
	cases := []struct {
		fn   string
		want string
	}{
		{"sqrt", `\sqrt{x}`},
		{"sin", `\sin(x)`},
		{"log", `\log(x)`},
		{"abs", `\left| x \right|`},
		{"hat", `\hat{x}`},
		{"tilde", `\tilde{x}`},
	}
	for _, c := range cases {
		got := translate(t, texpr.NewCall(c.fn, x))
		assert.Equal(t, c.want, got, "function %q", c.fn)
	}
}

func TestFrac(t *testing.T) {
	e := texpr.NewCall("frac", texpr.Id("a"), texpr.Id("b"))
	if s := translate(t, e); s != `\frac{a}{b}` {
		t.Errorf(`expected frac(a, b) to be \frac{a}{b}, is %q`, s)
	}
}

func TestFracNested(t *testing.T) {
	e := texpr.NewCall("frac",
		texpr.NewCall("frac", texpr.Id("a"), texpr.Id("b")),
		texpr.Id("c"))
	if s := translate(t, e); s != `\frac{\frac{a}{b}}{c}` {
		t.Errorf("expected nested frac to compose, is %q", s)
	}
}

func TestFracArity(t *testing.T) {
	// under- and over-supplied frac still fills its two slots, no panic
	e := texpr.NewCall("frac", texpr.Id("a"))
	if s := translate(t, e); s != `\frac{a}{}` {
		t.Errorf("expected missing denominator to leave an empty slot, is %q", s)
	}
	e = texpr.NewCall("frac", texpr.Id("a"), texpr.Id("b"), texpr.Id("c"))
	if s := translate(t, e); s != `\frac{a}{b}` {
		t.Errorf("expected surplus operand to be ignored, is %q", s)
	}
}

func TestKnownFunctionsCompose(t *testing.T) {
	e := texpr.NewCall("sqrt",
		texpr.NewCall("frac", texpr.Id("a"), texpr.Id("b")))
	if s := translate(t, e); s != `\sqrt{\frac{a}{b}}` {
		t.Errorf("expected sqrt(frac(a, b)) to compose, is %q", s)
	}
}

func TestPaste(t *testing.T) {
	e := texpr.NewCall("paste", texpr.Lit("d"), texpr.Id("x"))
	if s := translate(t, e); s != "dx" {
		t.Errorf("expected paste to concatenate without formatting, is %q", s)
	}
}

func TestUnknownFunction(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "texpr.latex")
	defer teardown()
	//
	e := texpr.NewCall("f", texpr.NewCall("*", texpr.Id("a"), texpr.Id("b")))
	if s := translate(t, e); s != `\mathrm{f}(a * b)` {
		t.Errorf(`expected f(a * b) to be \mathrm{f}(a * b), is %q`, s)
	}
	e = texpr.NewCall("g", texpr.Id("a"), texpr.Id("b"), texpr.Lit(3))
	if s := translate(t, e); s != `\mathrm{g}(a, b, 3)` {
		t.Errorf("expected arguments joined by ', ' in order, is %q", s)
	}
}

func TestCallAndValuePosition(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "texpr.latex")
	defer teardown()
	//
	// sin used both as function and as value
	e := texpr.NewCall("sin", texpr.Id("sin"))
	if s := translate(t, e); s != `\sin(sin)` {
		t.Errorf(`expected sin(sin) to be \sin(sin), is %q`, s)
	}
}

func TestGreekNameInCallPosition(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "texpr.latex")
	defer teardown()
	//
	// pi as a function name is an unknown function, not the Greek symbol
	e := texpr.NewCall("pi", texpr.Id("x"))
	if s := translate(t, e); s != `\mathrm{pi}(x)` {
		t.Errorf(`expected pi(x) to be \mathrm{pi}(x), is %q`, s)
	}
}

func TestGreekShadowsFreeVariable(t *testing.T) {
	// a free variable spelled pi is not reachable as itself
	e := texpr.NewCall("+", texpr.Id("pi"), texpr.Id("x"))
	if s := translate(t, e); s != `\pi + x` {
		t.Errorf(`expected pi + x to be \pi + x, is %q`, s)
	}
}

func TestDeterminism(t *testing.T) {
	e := texpr.NewCall("f",
		texpr.NewCall("+", texpr.Id("alpha"), texpr.Id("x")),
		texpr.NewCall("sqrt", texpr.Lit(2)))
	first := translate(t, e)
	second := translate(t, e)
	if first != second {
		t.Errorf("expected repeated translation to be byte-identical: %q vs %q",
			first, second)
	}
}

func TestUnsupportedNode(t *testing.T) {
	if _, err := Translate(nil); !errors.Is(err, texpr.ErrUnsupportedNode) {
		t.Errorf("expected ErrUnsupportedNode for nil tree, got %v", err)
	}
	e := texpr.NewCall("+", texpr.Id("x"), nil)
	s, err := Translate(e)
	if !errors.Is(err, texpr.ErrUnsupportedNode) {
		t.Errorf("expected ErrUnsupportedNode for nil argument, got %v", err)
	}
	if s != "" {
		t.Errorf("expected no partial output on error, got %q", s)
	}
}
