// Package env implements vellum's environment model: a case-insensitive,
// parent-chained mapping from symbol name to value.Value.
//
// Grounded on the teacher's lisp/interp.Context (go.spiff.io/skim), with
// its sync.RWMutex and upvalue/Dup/Overlay machinery dropped -- spec.md §5
// fixes the evaluator as strictly single-threaded, and this language has no
// construct (no quasiquote, no closures over the defining scope) that ever
// calls Dup or Overlay.
package env

import "github.com/vellum-lang/vellum/value"

// Environment is one frame of bindings plus a link to its parent frame.
type Environment struct {
	parent *Environment
	table  map[string]value.Value
}

// New returns a fresh, empty top-level environment.
func New() *Environment {
	return &Environment{table: make(map[string]value.Value)}
}

// Fork returns a new child environment whose Resolve reads through to e,
// but whose Bind writes only land in the child -- spec.md §4.2's "dynamic
// scope on reads, call-local mutation on writes". It returns value.Env
// (rather than *Environment) so that package eval and package builtins,
// which only ever hold an environment through that interface, can fork one
// without depending on this package.
func (e *Environment) Fork() value.Env {
	return &Environment{parent: e, table: make(map[string]value.Value)}
}

// Bind sets name (case-insensitively) to v in e's own table.
func (e *Environment) Bind(name string, v value.Value) {
	e.table[value.ToUpper(name)] = v
}

// Resolve looks up name (case-insensitively), walking up the parent chain
// on a miss in the current frame.
func (e *Environment) Resolve(name string) (value.Value, bool) {
	key := value.ToUpper(name)
	for c := e; c != nil; c = c.parent {
		if v, ok := c.table[key]; ok {
			return v, true
		}
	}
	return nil, false
}
