package pregex

import "fmt"

// Unbounded marks a repetition with no upper limit.
const Unbounded = -1

// Optional applies the ? quantifier. Unlike every other quantifier it is
// permitted on non-quantifiable patterns as well, since matching something
// zero or one times needs no repetition machinery.
func (p *Pattern) Optional(greedy bool) *Pattern {
	if p.category == CategoryEmpty {
		return p
	}
	return Raw(p.quantifyGrouped() + "?" + lazySuffix(greedy))
}

// ZeroOrMore applies the * quantifier.
func (p *Pattern) ZeroOrMore(greedy bool) (*Pattern, error) {
	if p.category == CategoryEmpty {
		return p, nil
	}
	if !p.quantifiable {
		return nil, fmt.Errorf("%w: %q", ErrCannotBeRepeated, p.text)
	}
	return Raw(p.quantifyGrouped() + "*" + lazySuffix(greedy)), nil
}

// OneOrMore applies the + quantifier.
func (p *Pattern) OneOrMore(greedy bool) (*Pattern, error) {
	if p.category == CategoryEmpty {
		return p, nil
	}
	if !p.quantifiable {
		return nil, fmt.Errorf("%w: %q", ErrCannotBeRepeated, p.text)
	}
	return Raw(p.quantifyGrouped() + "+" + lazySuffix(greedy)), nil
}

// Exactly applies the {n} quantifier. Zero repetitions yield the empty
// pattern and a single repetition returns the pattern unchanged.
func (p *Pattern) Exactly(n int) (*Pattern, error) {
	switch {
	case n < 0:
		return nil, fmt.Errorf("%w: n is negative", ErrInvalidRepetition)
	case n == 0:
		return Empty(), nil
	case n == 1:
		return p, nil
	}
	if p.category == CategoryEmpty {
		return p, nil
	}
	if !p.quantifiable {
		return nil, fmt.Errorf("%w: %q", ErrCannotBeRepeated, p.text)
	}
	return Raw(fmt.Sprintf("%s{%d}", p.quantifyGrouped(), n)), nil
}

// AtLeast applies the {n,} quantifier, degrading to * or + for the zero and
// one lower bounds.
func (p *Pattern) AtLeast(n int, greedy bool) (*Pattern, error) {
	switch {
	case n < 0:
		return nil, fmt.Errorf("%w: n is negative", ErrInvalidRepetition)
	case n == 0:
		return p.ZeroOrMore(greedy)
	case n == 1:
		return p.OneOrMore(greedy)
	}
	if p.category == CategoryEmpty {
		return p, nil
	}
	if !p.quantifiable {
		return nil, fmt.Errorf("%w: %q", ErrCannotBeRepeated, p.text)
	}
	return Raw(fmt.Sprintf("%s{%d,}%s", p.quantifyGrouped(), n, lazySuffix(greedy))), nil
}

// AtMost applies the {0,n} quantifier. Unbounded degrades to *, an upper
// bound of one to ?. The host dialect does not parse the {,n} spelling, so
// the lower bound is always rendered.
func (p *Pattern) AtMost(n int, greedy bool) (*Pattern, error) {
	switch {
	case n == Unbounded:
		return p.ZeroOrMore(greedy)
	case n < 0:
		return nil, fmt.Errorf("%w: n is negative", ErrInvalidRepetition)
	case n == 0:
		return p.Exactly(0)
	case n == 1:
		return p.Optional(greedy), nil
	}
	if p.category == CategoryEmpty {
		return p, nil
	}
	if !p.quantifiable {
		return nil, fmt.Errorf("%w: %q", ErrCannotBeRepeated, p.text)
	}
	return Raw(fmt.Sprintf("%s{0,%d}%s", p.quantifyGrouped(), n, lazySuffix(greedy))), nil
}

// Between applies the {n,m} quantifier, degrading to its simpler forms when
// the bounds allow it. An Unbounded m means no upper limit.
func (p *Pattern) Between(n, m int, greedy bool) (*Pattern, error) {
	switch {
	case n < 0:
		return nil, fmt.Errorf("%w: n is negative", ErrInvalidRepetition)
	case m == Unbounded:
		return p.AtLeast(n, greedy)
	case m < 0:
		return nil, fmt.Errorf("%w: m is negative", ErrInvalidRepetition)
	case m < n:
		return nil, fmt.Errorf("%w: min %d exceeds max %d", ErrInvalidRepetition, n, m)
	case n == m:
		return p.Exactly(n)
	case n == 0:
		return p.AtMost(m, greedy)
	}
	if p.category == CategoryEmpty {
		return p, nil
	}
	if !p.quantifiable {
		return nil, fmt.Errorf("%w: %q", ErrCannotBeRepeated, p.text)
	}
	return Raw(fmt.Sprintf("%s{%d,%d}%s", p.quantifyGrouped(), n, m, lazySuffix(greedy))), nil
}

func lazySuffix(greedy bool) string {
	if greedy {
		return ""
	}
	return "?"
}
