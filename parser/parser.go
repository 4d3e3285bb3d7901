// Package parser implements vellum's single-pass, character-driven
// parser: it consumes a source string and emits the ordered sequence of
// top-level statements (spec.md §4.1).
//
// The decoder/scope shape is grounded on the teacher's lisp/parser.decoder
// and lisp/parser.scope (go.spiff.io/skim), which also drives a character
// loop over a stack of open list scopes, each parented to its enclosing
// scope. The teacher's continuation-passing state machine exists to thread
// string literals, vectors, heredocs, and numeric-literal fast paths
// through a single rune loop; none of those productions exist in this
// grammar, so the decoder here is a direct switch over the five character
// classes spec.md §4.1 actually defines, not a ported copy of that
// machinery.
package parser

import (
	"strings"

	"github.com/vellum-lang/vellum/value"
	"github.com/vellum-lang/vellum/verrors"
)

// scope is one open list being accumulated, parented to the scope that was
// open when it was created -- spec.md §4.1's "(" rule.
type scope struct {
	up        *scope
	list      *value.List
	atom      strings.Builder
	inAtom    bool
	atomQuote bool
}

type decoder struct {
	runes []rune
	pos   int

	pending bool // quote-next flag, set by '\''
	top     *scope
	stack   []*scope

	statements []*value.List
}

// Parse consumes source and returns the ordered sequence of top-level
// statements. Newlines are folded to spaces first, per spec.md §4.1.
func Parse(source string) ([]*value.List, error) {
	folded := strings.Map(func(r rune) rune {
		if r == '\n' || r == '\r' {
			return ' '
		}
		return r
	}, source)

	d := &decoder{runes: []rune(folded)}
	return d.run()
}

func (d *decoder) run() ([]*value.List, error) {
	for d.pos < len(d.runes) {
		if err := d.step(d.runes[d.pos]); err != nil {
			return nil, err
		}
		d.pos++
	}

	if d.top != nil {
		return nil, d.errf("unclosed statement")
	}
	return d.statements, nil
}

func (d *decoder) errf(msg string) error {
	return &verrors.SyntaxError{Offset: d.pos, Msg: msg}
}

func (d *decoder) step(r rune) error {
	switch r {
	case '\'':
		return d.quote()
	case '(':
		return d.open()
	case ')':
		return d.close()
	case ' ':
		d.separator()
		return nil
	default:
		return d.continueAtom(r)
	}
}

// quote handles "'": sets the pending-quote bit for whatever opens or
// starts next. Illegal mid-atom per spec.md §4.1.
func (d *decoder) quote() error {
	if d.top != nil && d.top.inAtom {
		return d.errf("cannot quote mid-atom")
	}
	d.pending = true
	return nil
}

// open handles "(": flushes any in-progress atom to the enclosing scope,
// then pushes a new list scope carrying the pending quote bit.
func (d *decoder) open() error {
	d.flushAtom()

	list := &value.List{Quote: d.pending}
	if d.top != nil {
		list.Parent = d.top.list
	}
	d.pending = false

	next := &scope{up: d.top, list: list}
	d.stack = append(d.stack, next)
	d.top = next
	return nil
}

// close handles ")": flushes any in-progress atom into the closing list,
// pops the scope, and either appends the finished list to its parent or,
// if it has none, records it as a top-level statement.
func (d *decoder) close() error {
	if d.top == nil {
		return d.errf("unmatched closing parenthesis")
	}
	d.flushAtom()

	finished := d.top.list
	d.stack = d.stack[:len(d.stack)-1]
	if len(d.stack) == 0 {
		d.top = nil
	} else {
		d.top = d.stack[len(d.stack)-1]
	}

	if d.top == nil {
		d.statements = append(d.statements, finished)
	} else {
		d.top.list.Items = append(d.top.list.Items, finished)
	}
	return nil
}

// separator handles " ": flushes any in-progress atom, otherwise is a
// no-op.
func (d *decoder) separator() {
	d.flushAtom()
}

// continueAtom handles any other character: starts a new atom (quote is
// pending-OR-enclosing-list's-quote, captured now and not recomputed at
// flush time, per spec.md §4.1) or appends to the one already in
// progress. Starting an atom outside any open list is an error.
func (d *decoder) continueAtom(r rune) error {
	if d.top == nil {
		return d.errf("atom outside of any list")
	}
	if !d.top.inAtom {
		d.top.inAtom = true
		d.top.atomQuote = d.pending || d.top.list.Quote
		d.pending = false
		d.top.atom.Reset()
	}
	d.top.atom.WriteRune(r)
	return nil
}

// flushAtom pushes the scope's in-progress atom (if any) onto its list,
// using the quote flag captured when the atom started, and clears the
// in-progress state.
func (d *decoder) flushAtom() {
	if d.top == nil || !d.top.inAtom {
		return
	}
	text := d.top.atom.String()
	quote := d.top.atomQuote
	d.top.inAtom = false

	d.top.list.Items = append(d.top.list.Items, &value.Atom{
		Text:   text,
		Quote:  quote,
		Parent: d.top.list,
	})
}
