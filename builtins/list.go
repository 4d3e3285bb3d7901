package builtins

import (
	"github.com/vellum-lang/vellum/eval"
	"github.com/vellum-lang/vellum/value"
	"github.com/vellum-lang/vellum/verrors"
)

// shallowCopy copies v's own fields into a value re-parented to parent,
// leaving any nested structure (a List's Items slice) shared rather than
// deep-copied -- spec.md §4.4 calls this out explicitly for CAR/CDR/CONS/
// REVERSE so that the copy returned to the caller can carry a fresh quote
// flag and parent without the original being disturbed. Method and Native
// have no parent of their own (spec.md §3 invariant 2) and are returned
// unchanged.
func shallowCopy(v value.Value, parent *value.List) value.Value {
	switch a := v.(type) {
	case *value.Atom:
		return &value.Atom{Text: a.Text, Quote: a.Quote, Parent: parent}
	case *value.List:
		return &value.List{Items: a.Items, Quote: a.Quote, Parent: parent}
	default:
		return v
	}
}

func fetchList(native string, v value.Value, e value.Env) (*value.List, error) {
	fetched, err := eval.Fetch(v, e)
	if err != nil {
		return nil, err
	}
	l, ok := fetched.(*value.List)
	if !ok {
		return nil, verrors.Newf("%s: expected a list, got %T", native, fetched)
	}
	return l, nil
}

// Car implements CAR: require a non-empty list, return a shallow copy of
// its first element.
func Car(e value.Env, args *value.List) (value.Value, error) {
	if len(args.Items) != 1 {
		return nil, verrors.Arityf("CAR", "expected 1 argument; got %d", len(args.Items))
	}
	l, err := fetchList("CAR", args.Items[0], e)
	if err != nil {
		return nil, err
	}
	if len(l.Items) == 0 {
		return nil, verrors.Newf("CAR: cannot take the head of an empty list")
	}
	return shallowCopy(l.Items[0], l), nil
}

// Cdr implements CDR: require a non-empty list, return a fresh quoted
// list of shallow copies of its tail elements.
func Cdr(e value.Env, args *value.List) (value.Value, error) {
	if len(args.Items) != 1 {
		return nil, verrors.Arityf("CDR", "expected 1 argument; got %d", len(args.Items))
	}
	l, err := fetchList("CDR", args.Items[0], e)
	if err != nil {
		return nil, err
	}
	if len(l.Items) == 0 {
		return nil, verrors.Newf("CDR: cannot take the tail of an empty list")
	}

	result := &value.List{Quote: true}
	tail := make([]value.Value, len(l.Items)-1)
	for i, item := range l.Items[1:] {
		tail[i] = shallowCopy(item, result)
	}
	result.Items = tail
	return result, nil
}

// Cons implements CONS: fetch both arguments, the right must be a list;
// return a fresh quoted list whose head is the fetched left and whose
// remainder is copies of the right's elements.
func Cons(e value.Env, args *value.List) (value.Value, error) {
	if len(args.Items) != 2 {
		return nil, verrors.Arityf("CONS", "expected 2 arguments; got %d", len(args.Items))
	}
	left, err := eval.Fetch(args.Items[0], e)
	if err != nil {
		return nil, err
	}
	right, err := fetchList("CONS", args.Items[1], e)
	if err != nil {
		return nil, err
	}

	result := &value.List{Quote: true}
	items := make([]value.Value, 0, len(right.Items)+1)
	items = append(items, shallowCopy(left, result))
	for _, item := range right.Items {
		items = append(items, shallowCopy(item, result))
	}
	result.Items = items
	return result, nil
}

// Reverse implements REVERSE: fetch, require a list, return a fresh
// quoted list of shallow copies in reverse order.
func Reverse(e value.Env, args *value.List) (value.Value, error) {
	if len(args.Items) != 1 {
		return nil, verrors.Arityf("REVERSE", "expected 1 argument; got %d", len(args.Items))
	}
	l, err := fetchList("REVERSE", args.Items[0], e)
	if err != nil {
		return nil, err
	}

	result := &value.List{Quote: true}
	n := len(l.Items)
	items := make([]value.Value, n)
	for i, item := range l.Items {
		items[n-1-i] = shallowCopy(item, result)
	}
	result.Items = items
	return result, nil
}

// Eval implements EVAL: fetch; if the result is a list, rewrap it as
// unquoted (copying its immediate elements) and execute it; otherwise
// return it unchanged.
func Eval(e value.Env, args *value.List) (value.Value, error) {
	if len(args.Items) != 1 {
		return nil, verrors.Arityf("EVAL", "expected 1 argument; got %d", len(args.Items))
	}
	fetched, err := eval.Fetch(args.Items[0], e)
	if err != nil {
		return nil, err
	}

	l, ok := fetched.(*value.List)
	if !ok {
		return fetched, nil
	}

	unquoted := &value.List{Quote: false}
	items := make([]value.Value, len(l.Items))
	for i, item := range l.Items {
		items[i] = shallowCopy(item, unquoted)
	}
	unquoted.Items = items
	return eval.Execute(unquoted, e)
}

// BindList registers CAR, CDR, CONS, REVERSE, and EVAL.
func BindList(e value.Env) {
	e.Bind("CAR", &value.Native{Name: "CAR", Fn: Car})
	e.Bind("CDR", &value.Native{Name: "CDR", Fn: Cdr})
	e.Bind("CONS", &value.Native{Name: "CONS", Fn: Cons})
	e.Bind("REVERSE", &value.Native{Name: "REVERSE", Fn: Reverse})
	e.Bind("EVAL", &value.Native{Name: "EVAL", Fn: Eval})
}
