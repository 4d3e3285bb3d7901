// Grounded on the teacher's Newline/Display natives
// (lisp/builtins/builtins.go), merged into one PRINT native per spec.md
// §4.4 -- this language has no separate newline-only form.
package builtins

import (
	"io"

	"github.com/vellum-lang/vellum/render"
	"github.com/vellum-lang/vellum/value"
)

// NewPrint returns the PRINT native writing to out. Taking the writer as
// a parameter (rather than hardcoding os.Stdout) lets cmd/vellum and
// tests both exercise it.
func NewPrint(out io.Writer, colour bool) *value.Native {
	fn := func(e value.Env, args *value.List) (value.Value, error) {
		for _, a := range args.Items {
			text, err := render.Render(a, e, colour)
			if err != nil {
				return nil, err
			}
			if _, err := io.WriteString(out, text+" "); err != nil {
				return nil, err
			}
		}
		if _, err := io.WriteString(out, "\n"); err != nil {
			return nil, err
		}
		return value.Nil(), nil
	}
	return &value.Native{Name: "PRINT", Fn: fn}
}

// BindDisplay registers PRINT, writing to out, following the teacher's
// BindDisplay naming convention (lisp/builtins/builtins.go).
func BindDisplay(e value.Env, out io.Writer, colour bool) {
	e.Bind("PRINT", NewPrint(out, colour))
}
