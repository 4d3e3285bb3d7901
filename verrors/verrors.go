// Package verrors defines vellum's error taxonomy: one kind per category
// named in spec.md §7 (syntax, name resolution, type, arity, shape), all
// surfaced identically to the top level as a single fatal diagnostic.
//
// Grounded on the teacher's error.go (SyntaxError, UnclosedError,
// BadCharError), narrowed to this language's simpler single-offset
// position tracking (newlines fold to spaces before parsing, so a
// line/column pair would never move off line 1).
package verrors

import "fmt"

// SyntaxError is returned by package parser for any structural problem:
// a stray quote, an unbalanced parenthesis, an atom outside any list, or
// an unclosed statement at end of input.
type SyntaxError struct {
	Offset int
	Msg    string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("syntax error at offset %d: %s", e.Offset, e.Msg)
}

// NameError covers unknown variables and unknown function calls (spec.md
// §7's "Name resolution errors").
type NameError struct {
	Msg string
}

func (e *NameError) Error() string { return e.Msg }

// TypeError covers a non-atom in head position, an illegal callee kind, a
// list required where an atom was given (or vice versa), and non-numeric
// operands to arithmetic natives.
type TypeError struct {
	Msg string
}

func (e *TypeError) Error() string { return e.Msg }

// ArityError reports a native call with the wrong argument count. Native
// is the operator's display name, e.g. "ADD".
type ArityError struct {
	Native string
	Msg    string
}

func (e *ArityError) Error() string { return fmt.Sprintf("%s: %s", e.Native, e.Msg) }

// ShapeError covers malformed binding forms: DEF's name/params/body shape,
// and SET/SETQ's left-hand-side requirements.
type ShapeError struct {
	Native string
	Msg    string
}

func (e *ShapeError) Error() string { return fmt.Sprintf("%s: %s", e.Native, e.Msg) }

// Newf builds a plain *TypeError from a format string -- a catch-all for
// the many "X is not a Y" messages natives produce in the middle of
// otherwise straight-line code.
func Newf(format string, args ...interface{}) error {
	return &TypeError{Msg: fmt.Sprintf(format, args...)}
}

// Arityf builds an *ArityError for native, describing the expected arity.
func Arityf(native, format string, args ...interface{}) error {
	return &ArityError{Native: native, Msg: fmt.Sprintf(format, args...)}
}

// Shapef builds a *ShapeError for native.
func Shapef(native, format string, args ...interface{}) error {
	return &ShapeError{Native: native, Msg: fmt.Sprintf(format, args...)}
}

// Namef builds a *NameError.
func Namef(format string, args ...interface{}) error {
	return &NameError{Msg: fmt.Sprintf(format, args...)}
}
