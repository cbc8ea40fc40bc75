package pregex

import (
	"errors"
	"testing"
)

func TestQuantifiers(t *testing.T) {
	a := New("a")
	alternation := a.Either(New("b"))
	repeated := Must(a.OneOrMore(true))

	tests := []struct {
		name string
		got  func() (*Pattern, error)
		want string
	}{
		{"optional", func() (*Pattern, error) { return a.Optional(true), nil }, "a?"},
		{"lazy optional", func() (*Pattern, error) { return a.Optional(false), nil }, "a??"},
		{"zero or more", func() (*Pattern, error) { return a.ZeroOrMore(true) }, "a*"},
		{"lazy zero or more", func() (*Pattern, error) { return a.ZeroOrMore(false) }, "a*?"},
		{"one or more", func() (*Pattern, error) { return a.OneOrMore(true) }, "a+"},
		{"lazy one or more", func() (*Pattern, error) { return a.OneOrMore(false) }, "a+?"},
		{"exactly", func() (*Pattern, error) { return a.Exactly(3) }, "a{3}"},
		{"exactly zero is empty", func() (*Pattern, error) { return a.Exactly(0) }, ""},
		{"exactly once is unchanged", func() (*Pattern, error) { return a.Exactly(1) }, "a"},
		{"at least", func() (*Pattern, error) { return a.AtLeast(2, true) }, "a{2,}"},
		{"at least zero degrades", func() (*Pattern, error) { return a.AtLeast(0, true) }, "a*"},
		{"at least once degrades", func() (*Pattern, error) { return a.AtLeast(1, true) }, "a+"},
		{"at most", func() (*Pattern, error) { return a.AtMost(3, true) }, "a{0,3}"},
		{"lazy at most", func() (*Pattern, error) { return a.AtMost(3, false) }, "a{0,3}?"},
		{"at most once degrades", func() (*Pattern, error) { return a.AtMost(1, true) }, "a?"},
		{"unbounded at most degrades", func() (*Pattern, error) { return a.AtMost(Unbounded, true) }, "a*"},
		{"between", func() (*Pattern, error) { return a.Between(2, 5, true) }, "a{2,5}"},
		{"lazy between", func() (*Pattern, error) { return a.Between(2, 5, false) }, "a{2,5}?"},
		{"between equal bounds degrades", func() (*Pattern, error) { return a.Between(3, 3, true) }, "a{3}"},
		{"between from zero degrades", func() (*Pattern, error) { return a.Between(0, 3, true) }, "a{0,3}"},
		{"between unbounded degrades", func() (*Pattern, error) { return a.Between(2, Unbounded, true) }, "a{2,}"},
		{"class quantified bare", func() (*Pattern, error) { return Digit().OneOrMore(true) }, `\d+`},
		{"alternation is wrapped", func() (*Pattern, error) { return alternation.OneOrMore(true) }, "(?:a|b)+"},
		{"quantifier is wrapped", func() (*Pattern, error) { return repeated.OneOrMore(true) }, "(?:a+)+"},
		{"concatenation is wrapped", func() (*Pattern, error) { return New("ab").Exactly(2) }, "(?:ab){2}"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := tt.got()
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if p.String() != tt.want {
				t.Errorf("rendered %q, want %q", p, tt.want)
			}
		})
	}
}

func TestQuantifierErrors(t *testing.T) {
	a := New("a")
	anchored := a.MatchAtStart()

	tests := []struct {
		name string
		err  error
		want error
	}{
		{"repeating an anchored pattern", secondErr(anchored.Exactly(2)), ErrCannotBeRepeated},
		{"starring an anchored pattern", secondErr(anchored.ZeroOrMore(true)), ErrCannotBeRepeated},
		{"negative exact count", secondErr(a.Exactly(-1)), ErrInvalidRepetition},
		{"negative lower bound", secondErr(a.AtLeast(-1, true)), ErrInvalidRepetition},
		{"negative upper bound", secondErr(a.AtMost(-2, true)), ErrInvalidRepetition},
		{"inverted bounds", secondErr(a.Between(5, 2, true)), ErrInvalidRepetition},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !errors.Is(tt.err, tt.want) {
				t.Errorf("got error %v, want %v", tt.err, tt.want)
			}
		})
	}
}

// Optional is the one quantifier permitted on non-quantifiable patterns.
func TestOptionalOnAnchoredPattern(t *testing.T) {
	got := New("a").MatchAtStart().Optional(true)
	if got.String() != `(?:\Aa)?` {
		t.Errorf("rendered %q, want %q", got, `(?:\Aa)?`)
	}
}

// The empty pattern absorbs every quantifier.
func TestQuantifyingEmptyPattern(t *testing.T) {
	e := Empty()
	for name, p := range map[string]*Pattern{
		"optional":     e.Optional(true),
		"zero or more": Must(e.ZeroOrMore(true)),
		"exactly":      Must(e.Exactly(5)),
		"between":      Must(e.Between(2, 5, true)),
	} {
		if p.String() != "" {
			t.Errorf("%s of empty rendered %q, want empty", name, p)
		}
	}
}
