package texpr

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

// FreeNames walks an expression tree and collects the set of distinct
// identifier names referenced in value position. Function names in call
// position are not collected; CallNames does that.
func FreeNames(e Expr) (map[string]bool, error) {
	names := make(map[string]bool)
	if err := collectNames(e, names); err != nil {
		return nil, err
	}
	tracer().Debugf("collected %d free name(s)", len(names))
	return names, nil
}

func collectNames(e Expr, names map[string]bool) error {
	switch n := e.(type) {
	case Literal:
		return nil
	case Ident:
		names[n.Sym] = true
		return nil
	case Call:
		for _, arg := range n.Args {
			if err := collectNames(arg, names); err != nil {
				return err
			}
		}
		return nil
	}
	return unsupported(e)
}

// CallNames walks an expression tree and collects the set of distinct
// operator/function names invoked anywhere in the tree, including nested
// calls. Repeated calls to the same name contribute one entry.
func CallNames(e Expr) (map[string]bool, error) {
	names := make(map[string]bool)
	if err := collectCalls(e, names); err != nil {
		return nil, err
	}
	tracer().Debugf("collected %d call name(s)", len(names))
	return names, nil
}

func collectCalls(e Expr, names map[string]bool) error {
	switch n := e.(type) {
	case Literal, Ident:
		return nil
	case Call:
		names[n.Fn] = true
		for _, arg := range n.Args {
			if err := collectCalls(arg, names); err != nil {
				return err
			}
		}
		return nil
	}
	return unsupported(e)
}
