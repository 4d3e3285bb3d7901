package builtins

import (
	"bytes"
	"strings"
	"testing"

	"github.com/vellum-lang/vellum/env"
	"github.com/vellum-lang/vellum/eval"
	"github.com/vellum-lang/vellum/parser"
	"github.com/vellum-lang/vellum/value"
)

func newTestEnv(out *bytes.Buffer) value.Env {
	e := env.New()
	BindAll(e, out, false)
	return e
}

func execOne(t *testing.T, e value.Env, src string) (value.Value, error) {
	t.Helper()
	statements, err := parser.Parse(src)
	if err != nil {
		t.Fatalf("Parse(%q) err = %v", src, err)
	}
	if len(statements) != 1 {
		t.Fatalf("Parse(%q) produced %d statements; want 1", src, len(statements))
	}
	return eval.Execute(statements[0], e)
}

func mustAtomText(t *testing.T, v value.Value) string {
	t.Helper()
	a, ok := v.(*value.Atom)
	if !ok {
		t.Fatalf("expected *value.Atom, got %T (%v)", v, v)
	}
	return a.Text
}

// predicateText returns the text of a predicate's result: "NIL" for the
// canonical empty list, otherwise the atom's own text.
func predicateText(t *testing.T, v value.Value) string {
	t.Helper()
	if value.IsNilList(v) {
		return "NIL"
	}
	return mustAtomText(t, v)
}

func TestEq(t *testing.T) {
	e := newTestEnv(&bytes.Buffer{})
	cases := []struct {
		name string
		src  string
		want string
	}{
		{"equal", "(EQ 5 5)", "TRUE"},
		{"differing", "(EQ 5 6)", "NIL"},
		{"expression-operand", "(EQ (ADD 2 3) 5)", "TRUE"},
	}
	for _, c := range cases {
		c := c
		t.Run(c.name, func(t *testing.T) {
			got, err := execOne(t, e, c.src)
			if err != nil {
				t.Fatalf("Execute(%q) err = %v", c.src, err)
			}
			if text := predicateText(t, got); !value.EqualFold(text, c.want) {
				t.Fatalf("Execute(%q) = %s; want %s", c.src, text, c.want)
			}
		})
	}
}

func TestPosNeg(t *testing.T) {
	e := newTestEnv(&bytes.Buffer{})
	cases := []struct {
		src  string
		want string
	}{
		{"(POS 3)", "TRUE"},
		{"(POS 0)", "TRUE"},
		{"(POS -1)", "NIL"},
		{"(NEG -1)", "TRUE"},
		{"(NEG 0)", "NIL"},
	}
	for _, c := range cases {
		got, err := execOne(t, e, c.src)
		if err != nil {
			t.Fatalf("Execute(%q) err = %v", c.src, err)
		}
		if text := predicateText(t, got); !value.EqualFold(text, c.want) {
			t.Fatalf("Execute(%q) = %s; want %s", c.src, text, c.want)
		}
	}
}

func TestAtom(t *testing.T) {
	e := newTestEnv(&bytes.Buffer{})
	cases := []struct {
		src  string
		want string
	}{
		{"(ATOM 'X)", "TRUE"},
		{"(ATOM '(X))", "NIL"},
		{"(ATOM NIL)", "TRUE"},
		{"(ATOM TRUE)", "TRUE"},
	}
	for _, c := range cases {
		got, err := execOne(t, e, c.src)
		if err != nil {
			t.Fatalf("Execute(%q) err = %v", c.src, err)
		}
		if text := predicateText(t, got); !value.EqualFold(text, c.want) {
			t.Fatalf("Execute(%q) = %s; want %s", c.src, text, c.want)
		}
	}
}

func TestReverseIsInvolution(t *testing.T) {
	e := newTestEnv(&bytes.Buffer{})
	if _, err := execOne(t, e, "(SETQ L '(1 2 3))"); err != nil {
		t.Fatalf("SETQ err = %v", err)
	}
	got, err := execOne(t, e, "(REVERSE (REVERSE L))")
	if err != nil {
		t.Fatalf("Execute err = %v", err)
	}
	l, ok := got.(*value.List)
	if !ok {
		t.Fatalf("expected *value.List, got %T", got)
	}
	want := []string{"1", "2", "3"}
	if len(l.Items) != len(want) {
		t.Fatalf("len = %d; want %d", len(l.Items), len(want))
	}
	for i, item := range l.Items {
		if text := mustAtomText(t, item); text != want[i] {
			t.Fatalf("element %d = %s; want %s", i, text, want[i])
		}
	}
}

func TestSetRequiresQuotedAtom(t *testing.T) {
	e := newTestEnv(&bytes.Buffer{})
	// Bare SETQ-style unquoted name is not acceptable for SET (open
	// question 3, spec.md §9): it must fetch to a quoted atom.
	if _, err := execOne(t, e, "(SET X 10)"); err == nil {
		t.Fatal("(SET X 10) with unquoted X: want error, got nil")
	}
	got, err := execOne(t, e, "(SET 'X 10)")
	if err != nil {
		t.Fatalf("(SET 'X 10) err = %v", err)
	}
	if text := mustAtomText(t, got); text != "10" {
		t.Fatalf("(SET 'X 10) = %s; want 10", text)
	}
	bound, ok := e.Resolve("X")
	if !ok {
		t.Fatal("X not bound after (SET 'X 10)")
	}
	if text := mustAtomText(t, bound); text != "10" {
		t.Fatalf("X = %s; want 10", text)
	}
}

func TestSetqRejectsQuotedLeftHandSide(t *testing.T) {
	e := newTestEnv(&bytes.Buffer{})
	if _, err := execOne(t, e, "(SETQ 'X 10)"); err == nil {
		t.Fatal("(SETQ 'X 10) with quoted X: want error, got nil")
	}
}

func TestDefRejectsMalformedParams(t *testing.T) {
	e := newTestEnv(&bytes.Buffer{})
	cases := []string{
		"(DEF F (N M) (ADD N M))",
		"(DEF F () (ADD 1 1))",
		"(DEF F (TRUE) (ADD 1 1))",
	}
	for _, src := range cases {
		if _, err := execOne(t, e, src); err == nil {
			t.Fatalf("%q: want error, got nil", src)
		}
	}
}

func TestPrintOutput(t *testing.T) {
	var buf bytes.Buffer
	e := newTestEnv(&buf)
	if _, err := execOne(t, e, "(PRINT (ADD 1 2 3))"); err != nil {
		t.Fatalf("Execute err = %v", err)
	}
	if got := buf.String(); got != "6 \n" {
		t.Fatalf("PRINT output = %q; want %q", got, "6 \n")
	}
}

func TestPrintMultipleArguments(t *testing.T) {
	var buf bytes.Buffer
	e := newTestEnv(&buf)
	if _, err := execOne(t, e, "(PRINT 'A 'B)"); err != nil {
		t.Fatalf("Execute err = %v", err)
	}
	if got := buf.String(); got != "A B \n" {
		t.Fatalf("PRINT output = %q; want %q", got, "A B \n")
	}
}

func TestPrintListRendersParenthesised(t *testing.T) {
	var buf bytes.Buffer
	e := newTestEnv(&buf)
	if _, err := execOne(t, e, "(PRINT (CDR '(A B C)))"); err != nil {
		t.Fatalf("Execute err = %v", err)
	}
	if got := buf.String(); got != "( B C ) \n" {
		t.Fatalf("PRINT output = %q; want %q", got, "( B C ) \n")
	}
}

func TestArityErrors(t *testing.T) {
	e := newTestEnv(&bytes.Buffer{})
	cases := []struct {
		name string
		src  string
	}{
		{"add-one-arg", "(ADD 1)"},
		{"sub-three-args", "(SUB 1 2 3)"},
		{"square-two-args", "(SQUARE 1 2)"},
		{"car-no-args", "(CAR)"},
	}
	for _, c := range cases {
		c := c
		t.Run(c.name, func(t *testing.T) {
			if _, err := execOne(t, e, c.src); err == nil {
				t.Fatalf("%q: want arity error, got nil", c.src)
			} else if !strings.Contains(err.Error(), ":") {
				t.Fatalf("%q: error %q does not follow the NATIVE: message convention", c.src, err)
			}
		})
	}
}
