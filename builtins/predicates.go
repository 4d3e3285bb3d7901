package builtins

import (
	"github.com/vellum-lang/vellum/eval"
	"github.com/vellum-lang/vellum/value"
	"github.com/vellum-lang/vellum/verrors"
)

// Eq implements EQ: numeric equality of two fetched operands, per spec.md
// §4.4.
func Eq(e value.Env, args *value.List) (value.Value, error) {
	if len(args.Items) != 2 {
		return nil, verrors.Arityf("EQ", "expected 2 arguments; got %d", len(args.Items))
	}
	l, err := fetchNumber("EQ", args.Items[0], e)
	if err != nil {
		return nil, err
	}
	r, err := fetchNumber("EQ", args.Items[1], e)
	if err != nil {
		return nil, err
	}
	return boolAtom(l == r), nil
}

// Pos implements POS: true iff the fetched value is >= 0.
func Pos(e value.Env, args *value.List) (value.Value, error) {
	if len(args.Items) != 1 {
		return nil, verrors.Arityf("POS", "expected 1 argument; got %d", len(args.Items))
	}
	n, err := fetchNumber("POS", args.Items[0], e)
	if err != nil {
		return nil, err
	}
	return boolAtom(n >= 0), nil
}

// Neg implements NEG: true iff the fetched value is < 0.
func Neg(e value.Env, args *value.List) (value.Value, error) {
	if len(args.Items) != 1 {
		return nil, verrors.Arityf("NEG", "expected 1 argument; got %d", len(args.Items))
	}
	n, err := fetchNumber("NEG", args.Items[0], e)
	if err != nil {
		return nil, err
	}
	return boolAtom(n < 0), nil
}

// Atom implements ATOM: true iff the fetched value is an atom (which
// includes the canonical TRUE and NIL values), per spec.md §4.4.
func Atom(e value.Env, args *value.List) (value.Value, error) {
	if len(args.Items) != 1 {
		return nil, verrors.Arityf("ATOM", "expected 1 argument; got %d", len(args.Items))
	}
	fetched, err := eval.Fetch(args.Items[0], e)
	if err != nil {
		return nil, err
	}
	switch fetched.(type) {
	case *value.Atom:
		return boolAtom(true), nil
	case *value.List:
		return boolAtom(value.IsNilList(fetched)), nil
	default:
		return boolAtom(false), nil
	}
}

func boolAtom(b bool) value.Value {
	if b {
		return value.True()
	}
	return value.Nil()
}

// BindPredicates registers EQ, POS, NEG, and ATOM.
func BindPredicates(e value.Env) {
	e.Bind("EQ", &value.Native{Name: "EQ", Fn: Eq})
	e.Bind("POS", &value.Native{Name: "POS", Fn: Pos})
	e.Bind("NEG", &value.Native{Name: "NEG", Fn: Neg})
	e.Bind("ATOM", &value.Native{Name: "ATOM", Fn: Atom})
}
