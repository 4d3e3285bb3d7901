// Package render implements vellum's pretty-printer: it renders any value
// back to text, recursively evaluating non-quoted lists along the way, with
// optional ANSI colour on leaf tokens (spec.md §4.5).
//
// Grounded on the teacher's (*skim.Cons).string (lisp/skim/atoms.go), which
// walks a cons chain accumulating a parenthesised rendering, and on
// (*builtins.Lambda).String (lisp/builtins/lambda.go) for the
// "<Function: NAME>" shape, generalised here to the spec's closed
// Method/Native/Atom/List variants instead of skim's open Atom interface.
package render

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"github.com/vellum-lang/vellum/eval"
	"github.com/vellum-lang/vellum/value"
)

var (
	numberColor   = color.New(color.FgYellow)
	nilColor      = color.New(color.FgHiBlack)
	atomColor     = color.New(color.FgGreen)
	callableColor = color.New(color.FgCyan)
)

// Render fetches v against e, then renders the result to text, per
// spec.md §4.5.
func Render(v value.Value, e value.Env, colour bool) (string, error) {
	fetched, err := eval.Fetch(v, e)
	if err != nil {
		return "", err
	}
	var b strings.Builder
	if err := writeFetched(&b, fetched, e, colour); err != nil {
		return "", err
	}
	return b.String(), nil
}

// writeFetched writes an already-fetched value. It is separate from Render
// so that recursive list elements -- which must each be independently
// fetched, per spec.md §4.5's "each ei is recursively printed" -- call back
// through Fetch rather than re-fetching the whole list.
func writeFetched(b *strings.Builder, v value.Value, e value.Env, colour bool) error {
	switch v := v.(type) {
	case *value.Atom:
		writeAtom(b, v, colour)
	case *value.List:
		return writeList(b, v, e, colour)
	case *value.Method:
		paint(b, callableColor, colour, fmt.Sprintf("<Function: %s>", v.Name.Text))
	case *value.Native:
		paint(b, callableColor, colour, fmt.Sprintf("<Native: %s>", v.Name))
	}
	return nil
}

func writeAtom(b *strings.Builder, a *value.Atom, colour bool) {
	if value.EqualFold(a.Text, "TRUE") {
		paint(b, numberColor, colour, a.Text)
		return
	}
	if _, numeric := value.IsNumeric(a.Text); numeric {
		paint(b, numberColor, colour, a.Text)
		return
	}
	paint(b, atomColor, colour, a.Text)
}

// writeList renders an already-fetched list. Fetch's own contract (spec.md
// §4.3) guarantees an unquoted non-empty list is always executed away
// before it can reach here -- every caller of writeFetched has already
// fetched its argument -- so the only shapes left are the empty list and a
// quoted non-empty one. A quoted list's elements are printed as
// "( e1 e2 … en )" (spec.md §4.5), each independently fetched and printed.
func writeList(b *strings.Builder, l *value.List, e value.Env, colour bool) error {
	if len(l.Items) == 0 {
		paint(b, nilColor, colour, "NIL")
		return nil
	}

	b.WriteByte('(')
	for _, item := range l.Items {
		b.WriteByte(' ')
		fetched, err := eval.Fetch(item, e)
		if err != nil {
			return err
		}
		if err := writeFetched(b, fetched, e, colour); err != nil {
			return err
		}
	}
	b.WriteString(" )")
	return nil
}

func paint(b *strings.Builder, c *color.Color, colour bool, text string) {
	if colour {
		b.WriteString(c.Sprint(text))
		return
	}
	b.WriteString(text)
}
