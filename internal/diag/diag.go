// Package diag is vellum's ambient diagnostic logger: a single pluggable
// sink used for the -verbose statement trace (SPEC_FULL.md §9 and §11),
// nothing heavier.
//
// Grounded on the teacher's internal/debug (same module), narrowed to the
// handful of call sites this interpreter actually needs -- a single-
// threaded batch CLI that emits at most a few dozen lines per run has no
// use for the teacher's caller-prefix machinery beyond what log.Logger
// already gives it.
package diag

import (
	"io"
	"log"
)

var logger = log.New(io.Discard, "", 0)

// SetOutput redirects the diagnostic sink. Passing nil discards all
// output, which is the default.
func SetOutput(w io.Writer) {
	if w == nil {
		w = io.Discard
	}
	logger.SetOutput(w)
}

// Statement logs the 1-based index of the statement about to execute.
func Statement(n int) {
	logger.Printf("statement %d", n)
}

// Logf logs a free-form diagnostic line.
func Logf(format string, args ...interface{}) {
	logger.Printf(format, args...)
}
