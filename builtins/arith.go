// Package builtins implements vellum's native operator set (spec.md §4.4):
// arithmetic, predicates, list primitives, the binding forms SET/SETQ/DEF,
// and PRINT.
//
// Grounded on the teacher's per-concern native files under lisp/builtins,
// narrowed from skim's typed Int/Float split to this language's single
// float64-parsed numeric atom (spec.md §3: "no numeric tower beyond
// double-precision floating point").
package builtins

import (
	"math"

	"github.com/vellum-lang/vellum/eval"
	"github.com/vellum-lang/vellum/value"
	"github.com/vellum-lang/vellum/verrors"
)

// fetchNumber fetches v and parses its text as a float64, failing with
// native's display name on either a fetch error or a non-numeric result.
func fetchNumber(native string, v value.Value, e value.Env) (float64, error) {
	fetched, err := eval.Fetch(v, e)
	if err != nil {
		return 0, err
	}
	a, ok := fetched.(*value.Atom)
	if !ok {
		return 0, verrors.Newf("%s: expected a number, got %T", native, fetched)
	}
	f, numeric := value.IsNumeric(a.Text)
	if !numeric {
		return 0, verrors.Newf("%s: %q is not a number", native, a.Text)
	}
	return f, nil
}

func numberAtom(f float64) *value.Atom {
	return value.NewAtom(value.FormatNumber(f))
}

// binopReduce builds a native that fetches and numeric-parses every
// argument, then left-folds op over them, requiring at least two of
// them (spec.md §4.4: ADD and MULT are both arity >=2) -- grounded on the
// teacher's binopReduce in lisp/builtins/arith.go, minus its zero-argument
// identity-value fallback, which this language's stricter arity does not
// allow.
func binopReduce(native string, op func(l, r float64) float64) value.NativeFunc {
	return func(e value.Env, args *value.List) (value.Value, error) {
		if len(args.Items) < 2 {
			return nil, verrors.Arityf(native, "expected >=2 arguments; got %d", len(args.Items))
		}

		memo, err := fetchNumber(native, args.Items[0], e)
		if err != nil {
			return nil, err
		}
		for _, item := range args.Items[1:] {
			n, err := fetchNumber(native, item, e)
			if err != nil {
				return nil, err
			}
			memo = op(memo, n)
		}
		return numberAtom(memo), nil
	}
}

var (
	addOp = binopReduce("ADD", func(l, r float64) float64 { return l + r })
	mulOp = binopReduce("MULT", func(l, r float64) float64 { return l * r })
)

// Sub implements SUB/-, which (unlike ADD/MULT) is fixed at exactly two
// arguments -- spec.md §4.4's arity column.
func Sub(e value.Env, args *value.List) (value.Value, error) {
	if len(args.Items) != 2 {
		return nil, verrors.Arityf("SUB", "expected 2 arguments; got %d", len(args.Items))
	}
	l, err := fetchNumber("SUB", args.Items[0], e)
	if err != nil {
		return nil, err
	}
	r, err := fetchNumber("SUB", args.Items[1], e)
	if err != nil {
		return nil, err
	}
	return numberAtom(l - r), nil
}

// Div implements DIV// with no special-casing of divide-by-zero beyond
// the host's floating-point behaviour, per spec.md §4.4.
func Div(e value.Env, args *value.List) (value.Value, error) {
	if len(args.Items) != 2 {
		return nil, verrors.Arityf("DIV", "expected 2 arguments; got %d", len(args.Items))
	}
	l, err := fetchNumber("DIV", args.Items[0], e)
	if err != nil {
		return nil, err
	}
	r, err := fetchNumber("DIV", args.Items[1], e)
	if err != nil {
		return nil, err
	}
	return numberAtom(l / r), nil
}

// Exp implements EXP: base raised to exponent.
func Exp(e value.Env, args *value.List) (value.Value, error) {
	if len(args.Items) != 2 {
		return nil, verrors.Arityf("EXP", "expected 2 arguments; got %d", len(args.Items))
	}
	base, err := fetchNumber("EXP", args.Items[0], e)
	if err != nil {
		return nil, err
	}
	exponent, err := fetchNumber("EXP", args.Items[1], e)
	if err != nil {
		return nil, err
	}
	return numberAtom(math.Pow(base, exponent)), nil
}

// Square implements SQUARE: x*x.
func Square(e value.Env, args *value.List) (value.Value, error) {
	if len(args.Items) != 1 {
		return nil, verrors.Arityf("SQUARE", "expected 1 argument; got %d", len(args.Items))
	}
	x, err := fetchNumber("SQUARE", args.Items[0], e)
	if err != nil {
		return nil, err
	}
	return numberAtom(x * x), nil
}

// BindArithmetic registers ADD/+, SUB/-, MULT/*, DIV//, EXP, and SQUARE,
// following the teacher's BindArithmetic naming convention
// (lisp/builtins/arith.go).
func BindArithmetic(e value.Env) {
	e.Bind("ADD", &value.Native{Name: "ADD", Fn: addOp})
	e.Bind("+", &value.Native{Name: "+", Fn: addOp})
	e.Bind("SUB", &value.Native{Name: "SUB", Fn: Sub})
	e.Bind("-", &value.Native{Name: "-", Fn: Sub})
	e.Bind("MULT", &value.Native{Name: "MULT", Fn: mulOp})
	e.Bind("*", &value.Native{Name: "*", Fn: mulOp})
	e.Bind("DIV", &value.Native{Name: "DIV", Fn: Div})
	e.Bind("/", &value.Native{Name: "/", Fn: Div})
	e.Bind("EXP", &value.Native{Name: "EXP", Fn: Exp})
	e.Bind("SQUARE", &value.Native{Name: "SQUARE", Fn: Square})
}
