// Package eval implements vellum's two mutually recursive core
// operations, Fetch and Execute (spec.md §4.3).
//
// Grounded on the teacher's lisp/interp.Context.Eval (go.spiff.io/skim),
// which performs the same symbol-resolve / list-apply dispatch in one
// function; split here into the spec's two named operations since the
// spec gives fetch (resolve a value) and execute (apply a list) distinct
// contracts -- in particular, natives in this language receive raw,
// unfetched arguments (spec.md §4.3's design rationale), which the
// teacher's single Eval does not need to expose separately.
package eval

import (
	"github.com/vellum-lang/vellum/value"
	"github.com/vellum-lang/vellum/verrors"
)

// Fetch resolves v to its effective runtime form, per spec.md §4.3.
func Fetch(v value.Value, e value.Env) (value.Value, error) {
	switch a := v.(type) {
	case *value.Atom:
		return fetchAtom(a, e)
	case *value.List:
		if a.Quote || len(a.Items) == 0 {
			return a, nil
		}
		result, err := Execute(a, e)
		if err != nil {
			return nil, err
		}
		return Fetch(result, e)
	default:
		// Method, Native: returned unchanged.
		return v, nil
	}
}

func fetchAtom(a *value.Atom, e value.Env) (value.Value, error) {
	upper := value.ToUpper(a.Text)
	_, numeric := value.IsNumeric(a.Text)

	if !a.Quote && upper != "TRUE" && upper != "NIL" && !numeric {
		v, ok := e.Resolve(a.Text)
		if !ok {
			return nil, verrors.Namef("unknown variable: %s", a.Text)
		}
		return v, nil
	}

	// NIL always denotes the canonical empty list, regardless of the
	// token's own quote flag -- it is reserved, not a variable.
	if upper == "NIL" {
		return value.Nil(), nil
	}

	// Quoted atom, numeric atom, or the TRUE atom: self-evaluating.
	return a, nil
}

// Execute applies list as a function call, per spec.md §4.3.
func Execute(list *value.List, e value.Env) (value.Value, error) {
	if list.Quote || len(list.Items) == 0 {
		return list, nil
	}

	head, ok := list.Items[0].(*value.Atom)
	if !ok {
		return nil, verrors.Newf("cannot call a non-atom head of type %T", list.Items[0])
	}
	name := head.Text

	rawArgs := &value.List{Items: list.Items[1:]}

	binding, ok := e.Resolve(name)
	if !ok {
		if result, handled, cerr := tryCadr(name, rawArgs, e); handled {
			return result, cerr
		}
		return nil, verrors.Namef("unknown function: %s", name)
	}

	switch callee := binding.(type) {
	case *value.Native:
		return callee.Fn(e, rawArgs)
	case *value.Method:
		return applyMethod(callee, rawArgs, e)
	default:
		return nil, verrors.Newf("%s: cannot call value of type %T", name, binding)
	}
}

func applyMethod(m *value.Method, rawArgs *value.List, e value.Env) (value.Value, error) {
	if len(rawArgs.Items) == 0 {
		return nil, verrors.Newf("%s: requires at least one argument", m.Name.Text)
	}

	actual, err := Fetch(rawArgs.Items[0], e)
	if err != nil {
		return nil, err
	}

	call := e.Fork()
	call.Bind(m.Param.Text, actual)
	return Execute(m.Body, call)
}

// cadrPattern reports whether name matches C[AD]+R case-insensitively,
// returning the middle letters (upper-cased) if so.
func cadrPattern(name string) (middle string, ok bool) {
	u := value.ToUpper(name)
	if len(u) < 3 || u[0] != 'C' || u[len(u)-1] != 'R' {
		return "", false
	}
	mid := u[1 : len(u)-1]
	for i := 0; i < len(mid); i++ {
		if mid[i] != 'A' && mid[i] != 'D' {
			return "", false
		}
	}
	return mid, true
}

// tryCadr synthesises a C[AD]+R call by composing the environment's own
// CAR/CDR bindings, applied right-to-left over rawArgs -- spec.md §4.3's
// cadr-family fallback. handled is false if name does not match the
// pattern at all, in which case the caller should report an unknown
// function instead. Each step is dispatched through Execute itself (rather
// than invoking a *value.Native directly), so a CAR/CDR rebound to
// something other than the builtin native is still honored. A missing
// CAR or CDR fails up front with a name error saying which of the two must
// be defined.
func tryCadr(name string, rawArgs *value.List, e value.Env) (result value.Value, handled bool, err error) {
	middle, ok := cadrPattern(name)
	if !ok {
		return nil, false, nil
	}

	if _, ok := e.Resolve("CAR"); !ok {
		return nil, true, verrors.Namef("%s: CAR must be defined to synthesise c[ad]+r", name)
	}
	if _, ok := e.Resolve("CDR"); !ok {
		return nil, true, verrors.Namef("%s: CDR must be defined to synthesise c[ad]+r", name)
	}

	current := rawArgs
	for i := len(middle) - 1; i >= 0; i-- {
		opName := "CAR"
		if middle[i] == 'D' {
			opName = "CDR"
		}
		call := &value.List{Items: append([]value.Value{value.NewAtom(opName)}, current.Items...)}
		step, serr := Execute(call, e)
		if serr != nil {
			return nil, true, serr
		}
		current = &value.List{Items: []value.Value{step}}
	}

	return current.Items[0], true, nil
}
