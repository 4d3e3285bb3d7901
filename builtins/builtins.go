package builtins

import (
	"io"

	"github.com/vellum-lang/vellum/value"
)

// BindAll wires every native operator into e, writing PRINT's output to
// out -- the one entry point cmd/vellum and tests use to stand up a fresh
// interpreter environment.
func BindAll(e value.Env, out io.Writer, colour bool) {
	BindArithmetic(e)
	BindPredicates(e)
	BindList(e)
	BindMutative(e)
	BindDisplay(e, out, colour)
}
