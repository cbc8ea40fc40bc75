package pregex

import (
	"errors"
	"testing"
)

func TestConcat(t *testing.T) {
	a, b, c := New("a"), New("b"), New("c")

	tests := []struct {
		name     string
		patterns []*Pattern
		want     string
	}{
		{"two tokens", []*Pattern{a, b}, "ab"},
		{"three tokens", []*Pattern{a, b, c}, "abc"},
		{"alternation is wrapped", []*Pattern{a.Either(b), c}, "(?:a|b)c"},
		{"trailing alternation is wrapped", []*Pattern{a, b.Either(c)}, "a(?:b|c)"},
		{"empty is a no-op", []*Pattern{Empty(), a, Empty()}, "a"},
		{"quantifier concatenates bare", []*Pattern{Must(a.OneOrMore(true)), b}, "a+b"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := Concat(tt.patterns...)
			if err != nil {
				t.Fatalf("Concat: %v", err)
			}
			if p.String() != tt.want {
				t.Errorf("rendered %q, want %q", p, tt.want)
			}
		})
	}
}

func TestEither(t *testing.T) {
	a, b, c := New("a"), New("b"), New("c")

	tests := []struct {
		name     string
		patterns []*Pattern
		want     string
	}{
		{"two alternatives", []*Pattern{a, b}, "a|b"},
		{"three alternatives", []*Pattern{a, b, c}, "a|b|c"},
		{"empty alternative vanishes", []*Pattern{a, Empty()}, "a"},
		{"classes alternate bare", []*Pattern{Digit().Pattern, a}, `\d|a`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := Either(tt.patterns...)
			if err != nil {
				t.Fatalf("Either: %v", err)
			}
			if p.String() != tt.want {
				t.Errorf("rendered %q, want %q", p, tt.want)
			}
		})
	}
}

func TestEnclose(t *testing.T) {
	p, err := Enclose(New("a"), New("-"))
	if err != nil {
		t.Fatalf("Enclose: %v", err)
	}
	if p.String() != "-a-" {
		t.Errorf("rendered %q, want %q", p, "-a-")
	}

	p, err = Enclose(New("a"), New("-"), New(":"))
	if err != nil {
		t.Fatalf("Enclose: %v", err)
	}
	if p.String() != ":-a-:" {
		t.Errorf("rendered %q, want %q", p, ":-a-:")
	}
}

func TestOperatorArity(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{"concat of one", secondErr(Concat(New("a")))},
		{"concat of none", secondErr(Concat())},
		{"either of one", secondErr(Either(New("a")))},
		{"enclose without enclosing", secondErr(Enclose(New("a")))},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !errors.Is(tt.err, ErrNotEnoughOperands) {
				t.Errorf("got error %v, want %v", tt.err, ErrNotEnoughOperands)
			}
		})
	}
}

// Chained alternation must not wrap earlier alternatives: the bar is
// lowest-precedence, so the flat form is equivalent.
func TestEitherStaysFlat(t *testing.T) {
	p := New("a").Either(New("b")).Either(New("c"))
	if p.String() != "a|b|c" {
		t.Errorf("rendered %q, want %q", p, "a|b|c")
	}
	if p.Category() != CategoryAlternation {
		t.Errorf("category = %v, want %v", p.Category(), CategoryAlternation)
	}
}
