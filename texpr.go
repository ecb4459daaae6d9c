package texpr

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"errors"
	"fmt"
	"strconv"
)

// ErrUnsupportedNode is thrown whenever a tree walk encounters a node which
// is none of literal, identifier or call. For trees built from the
// constructors in this package this cannot happen; it guards against nil
// nodes and future node kinds.
var ErrUnsupportedNode = errors.New("unsupported expression node kind")

// unsupported wraps ErrUnsupportedNode with the offending node's type.
func unsupported(e Expr) error {
	if e == nil {
		return fmt.Errorf("%w: nil node", ErrUnsupportedNode)
	}
	return fmt.Errorf("%w: %T", ErrUnsupportedNode, e)
}

// --- Expression trees ------------------------------------------------------

// Expr is a node of an expression tree. It is a closed sum over three node
// kinds:
//
//     Literal    a number or a string
//     Ident      a bare identifier
//     Call       an operator or function applied to argument sub-trees
//
// Expression trees are read-only input for translations: no operation in
// this module ever mutates a node.
type Expr interface {
	fmt.Stringer
	isExpr() // seals the sum
}

// Literal is a leaf node carrying a literal value, i.e. a number or a
// string.
type Literal struct {
	Value interface{}
}

// Ident is a leaf node for a bare identifier.
type Ident struct {
	Sym string
}

// Call is an inner node: an operator or function name applied to an ordered
// sequence of argument sub-trees. Translation uses positional order and the
// literal function name only.
type Call struct {
	Fn   string
	Args []Expr
}

func (l Literal) isExpr() {}
func (id Ident) isExpr()  {}
func (c Call) isExpr()    {}

// Lit creates a literal leaf node. Supported value types are the numeric
// types a parser front end would produce, plus string.
func Lit(value interface{}) Literal {
	return Literal{Value: value}
}

// Id creates an identifier leaf node.
func Id(sym string) Ident {
	return Ident{Sym: sym}
}

// NewCall creates a call node for an operator or function name, applied to
// argument sub-trees.
func NewCall(fn string, args ...Expr) Call {
	return Call{Fn: fn, Args: args}
}

// String returns the textual form of a literal. Floats are printed in the
// shortest representation that round-trips.
func (l Literal) String() string {
	switch v := l.Value.(type) {
	case string:
		return v
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(v), 'g', -1, 32)
	}
	return fmt.Sprintf("%v", l.Value)
}

func (id Ident) String() string {
	return id.Sym
}

func (c Call) String() string {
	return fmt.Sprintf("(%s #args=%d)", c.Fn, len(c.Args))
}
