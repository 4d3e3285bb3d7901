// Package vellum ties the parser and evaluator together into the one
// entry point cmd/vellum (and tests) need: parse a whole source file, then
// run its statements in order against a shared environment.
package vellum

import (
	"io"

	"github.com/vellum-lang/vellum/builtins"
	"github.com/vellum-lang/vellum/env"
	"github.com/vellum-lang/vellum/eval"
	"github.com/vellum-lang/vellum/internal/diag"
	"github.com/vellum-lang/vellum/parser"
	"github.com/vellum-lang/vellum/value"
)

// Program is a parsed, ready-to-run source file.
type Program struct {
	statements []*value.List
}

// Parse parses source into a Program, per spec.md §4.1.
func Parse(source string) (*Program, error) {
	statements, err := parser.Parse(source)
	if err != nil {
		return nil, err
	}
	return &Program{statements: statements}, nil
}

// NewEnv builds a fresh top-level environment with every native operator
// bound, PRINT writing to out.
func NewEnv(out io.Writer, colour bool) value.Env {
	e := env.New()
	builtins.BindAll(e, out, colour)
	return e
}

// Run executes every statement in p against e in order, stopping at the
// first error (spec.md §1: "terminating on the first unrecoverable
// error"). verbose, when true, logs each statement's 1-based index
// through package diag before it executes (SPEC_FULL.md §11).
func (p *Program) Run(e value.Env, verbose bool) error {
	for i, stmt := range p.statements {
		if verbose {
			diag.Statement(i + 1)
		}
		if _, err := eval.Execute(stmt, e); err != nil {
			return err
		}
	}
	return nil
}
