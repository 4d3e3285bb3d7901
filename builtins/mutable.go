// Grounded on the teacher's SetQuoted/SetUnquoted pair
// (lisp/builtins/mutable.go), which already implements the
// fetched-vs-unfetched left-hand-side asymmetry spec.md §4.4 calls for
// between SET and SETQ, and on newLambda (lisp/builtins/lambda.go),
// narrowed from skim's multi-argument Lambda to this language's
// single-parameter Method.
package builtins

import (
	"github.com/vellum-lang/vellum/eval"
	"github.com/vellum-lang/vellum/value"
	"github.com/vellum-lang/vellum/verrors"
)

// Set implements SET: both arguments are fetched. The left must fetch to
// a quoted atom that is not TRUE/NIL (spec.md §4.4, open question 3: this
// effectively requires callers to write 'NAME).
func Set(e value.Env, args *value.List) (value.Value, error) {
	if len(args.Items) != 2 {
		return nil, verrors.Arityf("SET", "expected 2 arguments; got %d", len(args.Items))
	}
	left, err := eval.Fetch(args.Items[0], e)
	if err != nil {
		return nil, err
	}
	name, ok := left.(*value.Atom)
	if !ok || !name.Quote || value.IsReserved(name.Text) {
		return nil, verrors.Shapef("SET", "left-hand side must fetch to a quoted, non-reserved atom")
	}

	right, err := eval.Fetch(args.Items[1], e)
	if err != nil {
		return nil, err
	}
	e.Bind(name.Text, right)
	return right, nil
}

// Setq implements SETQ: the left-hand side is taken *unfetched* and must
// be an unquoted, non-reserved atom -- this is what lets it be inspected
// for its quote flag before any resolution happens (spec.md §4.3's design
// rationale).
func Setq(e value.Env, args *value.List) (value.Value, error) {
	if len(args.Items) != 2 {
		return nil, verrors.Arityf("SETQ", "expected 2 arguments; got %d", len(args.Items))
	}
	name, ok := args.Items[0].(*value.Atom)
	if !ok || name.Quote || value.IsReserved(name.Text) {
		return nil, verrors.Shapef("SETQ", "left-hand side must be an unquoted, non-reserved atom")
	}

	right, err := eval.Fetch(args.Items[1], e)
	if err != nil {
		return nil, err
	}
	e.Bind(name.Text, right)
	return right, nil
}

// Def implements DEF: constructs a Method from an unquoted name atom, an
// unquoted single-atom parameter list, and an unquoted body list, binds
// it under the upper-cased name, and returns it.
func Def(e value.Env, args *value.List) (value.Value, error) {
	if len(args.Items) != 3 {
		return nil, verrors.Arityf("DEF", "expected 3 arguments; got %d", len(args.Items))
	}

	name, ok := args.Items[0].(*value.Atom)
	if !ok || name.Quote {
		return nil, verrors.Shapef("DEF", "name must be an unquoted atom")
	}

	params, ok := args.Items[1].(*value.List)
	if !ok || params.Quote || len(params.Items) != 1 {
		return nil, verrors.Shapef("DEF", "parameter list must be an unquoted list of exactly one atom")
	}
	param, ok := params.Items[0].(*value.Atom)
	if !ok || param.Quote || value.IsReserved(param.Text) {
		return nil, verrors.Shapef("DEF", "parameter must be an unquoted, non-reserved atom")
	}
	if _, numeric := value.IsNumeric(param.Text); numeric {
		return nil, verrors.Shapef("DEF", "parameter must not be a number")
	}

	body, ok := args.Items[2].(*value.List)
	if !ok || body.Quote {
		return nil, verrors.Shapef("DEF", "body must be an unquoted list")
	}

	method := &value.Method{Name: name, Param: param, Body: body}
	e.Bind(name.Text, method)
	return method, nil
}

// BindMutative registers SET, SETQ, and DEF, following the teacher's
// BindMutative naming convention (lisp/builtins/mutable.go).
func BindMutative(e value.Env) {
	e.Bind("SET", &value.Native{Name: "SET", Fn: Set})
	e.Bind("SETQ", &value.Native{Name: "SETQ", Fn: Setq})
	e.Bind("DEF", &value.Native{Name: "DEF", Fn: Def})
}
