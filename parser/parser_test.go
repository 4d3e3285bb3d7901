package parser

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/vellum-lang/vellum/value"
)

func list(quote bool, items ...value.Value) *value.List {
	return &value.List{Items: items, Quote: quote}
}

func atom(text string, quote bool) *value.Atom {
	return &value.Atom{Text: text, Quote: quote}
}

var ignoreParent = cmp.FilterPath(func(p cmp.Path) bool {
	return p.Last().String() == ".Parent"
}, cmp.Ignore())

func TestParse(t *testing.T) {
	type testCase struct {
		name    string
		in      string
		want    []*value.List
		wanterr string
	}

	cases := []testCase{
		{
			name: "empty-list",
			in:   "()",
			want: []*value.List{list(false)},
		},
		{
			name: "single-atom",
			in:   "(ADD 1 2)",
			want: []*value.List{list(false, atom("ADD", false), atom("1", false), atom("2", false))},
		},
		{
			name: "quoted-list",
			in:   "'(A B C)",
			want: []*value.List{list(true, atom("A", true), atom("B", true), atom("C", true))},
		},
		{
			name: "quote-does-not-propagate-to-nested-lists",
			in:   "'(1 (ADD 2 3))",
			want: []*value.List{
				list(true,
					atom("1", true),
					list(false, atom("ADD", false), atom("2", false), atom("3", false)),
				),
			},
		},
		{
			name: "nested-quote-on-inner-list",
			in:   "('(A) B)",
			want: []*value.List{
				list(false, list(true, atom("A", true)), atom("B", false)),
			},
		},
		{
			name: "newline-folds-to-space",
			in:   "(ADD\n1\n2)",
			want: []*value.List{list(false, atom("ADD", false), atom("1", false), atom("2", false))},
		},
		{
			name: "two-statements",
			in:   "(A) (B)",
			want: []*value.List{
				list(false, atom("A", false)),
				list(false, atom("B", false)),
			},
		},
		{
			name:    "quote-mid-atom",
			in:      "(AB'C)",
			wanterr: "cannot quote mid-atom",
		},
		{
			name:    "unmatched-close",
			in:      ")",
			wanterr: "unmatched closing parenthesis",
		},
		{
			name:    "atom-outside-list",
			in:      "ABC",
			wanterr: "atom outside of any list",
		},
		{
			name:    "unclosed-statement",
			in:      "(ADD 1 2",
			wanterr: "unclosed statement",
		},
	}

	for _, c := range cases {
		c := c
		t.Run(c.name, func(t *testing.T) {
			got, err := Parse(c.in)
			if c.wanterr != "" {
				if err == nil || !strings.Contains(err.Error(), c.wanterr) {
					t.Fatalf("Parse(%q) err = %v; want containing %q", c.in, err, c.wanterr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Parse(%q) unexpected err = %v", c.in, err)
			}
			if diff := cmp.Diff(c.want, got, ignoreParent); diff != "" {
				t.Fatalf("Parse(%q) mismatch (-want +got):\n%s", c.in, diff)
			}
		})
	}
}

func TestParsePendingQuoteAcrossWhitespace(t *testing.T) {
	// Open question 1 (spec.md §9): a quote followed by whitespace then an
	// opening paren still attaches to that list -- the pending bit
	// survives the intervening separator.
	got, err := Parse("' (A)")
	if err != nil {
		t.Fatalf("unexpected err = %v", err)
	}
	want := []*value.List{list(true, atom("A", true))}
	if diff := cmp.Diff(want, got, ignoreParent); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}
}
