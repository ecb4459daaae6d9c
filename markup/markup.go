package markup

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/net/html"
)

// ErrUnknownTag is thrown when a tag name is not in the registry of known
// HTML tags.
var ErrUnknownTag = errors.New("unknown tag name")

// ErrVoidChildren is thrown when children are passed to a void tag, i.e. a
// tag without a closing form.
var ErrVoidChildren = errors.New("void tag cannot have children")

// HTML is an already-escaped HTML fragment. Fragments pass through
// serialization verbatim; only raw text entering through Text or attribute
// values is escaped.
type HTML string

// Text escapes a literal string for inclusion in HTML output.
func Text(s string) HTML {
	return HTML(html.EscapeString(s))
}

// Attr is one attribute of a tag. An empty value serializes as a boolean
// attribute, i.e. the bare key.
type Attr struct {
	Key   string
	Value string
}

// Builder produces an HTML fragment for one tag from attributes and child
// fragments.
type Builder func(attrs []Attr, children ...HTML) (HTML, error)

// htmlTags are the non-void tags registered with this package. The list is
// deliberately small; it covers the tags used by expression-to-markup
// output and common prose.
var htmlTags = []string{
	"a", "b", "body", "code", "div", "em", "h1", "h2", "h3", "head",
	"html", "i", "li", "ol", "p", "pre", "span", "strong", "table",
	"td", "th", "title", "tr", "ul",
}

// voidTags have no closing form and accept no children.
var voidTags = []string{
	"br", "hr", "img", "input", "link", "meta",
}

// tags is the static registry of tag builders, populated at startup and
// never mutated afterwards.
var tags = make(map[string]Builder, len(htmlTags)+len(voidTags))

func init() {
	for _, name := range htmlTags {
		tags[name] = tagBuilder(name)
	}
	for _, name := range voidTags {
		tags[name] = voidTagBuilder(name)
	}
}

// tagBuilder generates the builder for a normal tag.
func tagBuilder(name string) Builder {
	return func(attrs []Attr, children ...HTML) (HTML, error) {
		var b strings.Builder
		b.WriteString("<")
		b.WriteString(name)
		b.WriteString(serializeAttrs(attrs))
		b.WriteString(">")
		for _, ch := range children {
			b.WriteString(string(ch))
		}
		b.WriteString("</")
		b.WriteString(name)
		b.WriteString(">")
		return HTML(b.String()), nil
	}
}

// voidTagBuilder generates the builder for a void tag. Passing children is
// an error.
func voidTagBuilder(name string) Builder {
	return func(attrs []Attr, children ...HTML) (HTML, error) {
		if len(children) > 0 {
			return "", fmt.Errorf("%w: <%s>", ErrVoidChildren, name)
		}
		return HTML("<" + name + serializeAttrs(attrs) + " />"), nil
	}
}

// serializeAttrs renders an attribute list, escaped, with a leading blank
// before every attribute.
func serializeAttrs(attrs []Attr) string {
	var b strings.Builder
	for _, a := range attrs {
		b.WriteString(" ")
		b.WriteString(a.Key)
		if a.Value != "" {
			b.WriteString(`="`)
			b.WriteString(html.EscapeString(a.Value))
			b.WriteString(`"`)
		}
	}
	return b.String()
}

// Element serializes one normal tag from attributes and child fragments:
// opening tag, children, closing tag. The tag registry is not consulted;
// use Render for names that must be validated.
func Element(name string, attrs []Attr, children ...HTML) HTML {
	frag, _ := tagBuilder(name)(attrs, children...)
	return frag
}

// Void serializes one void tag, i.e. a tag without closing form. The tag
// registry is not consulted; use Render for names that must be validated.
func Void(name string, attrs ...Attr) HTML {
	frag, _ := voidTagBuilder(name)(attrs)
	return frag
}

// BuilderFor returns the registered builder for a tag name.
func BuilderFor(name string) (Builder, bool) {
	b, ok := tags[name]
	return b, ok
}

// Render looks up a tag by name and applies its builder. Unknown tag names
// are an error; tags are never invented on the fly, since an unknown name
// more likely indicates a typo than a new HTML element.
func Render(name string, attrs []Attr, children ...HTML) (HTML, error) {
	b, ok := tags[name]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownTag, name)
	}
	tracer().Debugf("rendering tag <%s> with %d child(ren)", name, len(children))
	return b(attrs, children...)
}

// MustRender is Render for tags known to be registered; it panics on error
// and is intended for statically-known tag names in nested literals.
func MustRender(name string, attrs []Attr, children ...HTML) HTML {
	frag, err := Render(name, attrs, children...)
	if err != nil {
		panic(err)
	}
	return frag
}
