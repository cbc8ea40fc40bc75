package pregex

import (
	"fmt"
	"regexp"
)

// A Quantifier-category fragment has fixed width only when its suffix is an
// exact repetition count.
var exactRepeatRE = regexp.MustCompile(`\{\d+\}$`)

// fixedWidth rejects assertion patterns a lookbehind cannot accept: the host
// engine requires the asserted text to match a fixed number of characters.
func fixedWidth(assertion *Pattern) error {
	if assertion.category == CategoryQuantifier && !exactRepeatRE.MatchString(assertion.text) {
		return fmt.Errorf("%w: %q", ErrNonFixedWidth, assertion.text)
	}
	return nil
}

// MatchAtStart anchors the pattern to the start of the string. The result is
// no longer quantifiable.
func (p *Pattern) MatchAtStart() *Pattern {
	return Raw(`\A` + p.assertGrouped())
}

// MatchAtEnd anchors the pattern to the end of the string. The result is no
// longer quantifiable.
func (p *Pattern) MatchAtEnd() *Pattern {
	return Raw(p.assertGrouped() + `\Z`)
}

// MatchAtLineStart anchors the pattern to the start of a line. Multiline
// matching is always on, so ^ asserts a line boundary, not a string one.
func (p *Pattern) MatchAtLineStart() *Pattern {
	return Raw("^" + p.assertGrouped())
}

// MatchAtLineEnd anchors the pattern to the end of a line.
func (p *Pattern) MatchAtLineEnd() *Pattern {
	return Raw(p.assertGrouped() + "$")
}

// WordBoundary asserts a position between a word character and a non-word
// character. It consumes nothing and is typically concatenated or used with
// Enclose.
func WordBoundary() *Pattern {
	return Raw(`\b`)
}

// NonWordBoundary asserts a position that is not a word boundary.
func NonWordBoundary() *Pattern {
	return Raw(`\B`)
}

// FollowedBy applies a positive lookahead: p matches only when assertion
// matches right after it. An empty assertion returns p unchanged.
func (p *Pattern) FollowedBy(assertion *Pattern) *Pattern {
	if assertion.category == CategoryEmpty {
		return p
	}
	return Raw(p.assertGrouped() + "(?=" + assertion.text + ")")
}

// NotFollowedBy applies a negative lookahead. The empty pattern would negate
// a position that always matches, so it is rejected.
func (p *Pattern) NotFollowedBy(assertion *Pattern) (*Pattern, error) {
	if assertion.category == CategoryEmpty {
		return nil, ErrEmptyNegativeAssertion
	}
	return Raw(p.assertGrouped() + "(?!" + assertion.text + ")"), nil
}

// PrecededBy applies a positive lookbehind: p matches only when assertion
// matches right before it. The assertion must be fixed-width.
func (p *Pattern) PrecededBy(assertion *Pattern) (*Pattern, error) {
	if assertion.category == CategoryEmpty {
		return p, nil
	}
	if err := fixedWidth(assertion); err != nil {
		return nil, err
	}
	return Raw("(?<=" + assertion.text + ")" + p.assertGrouped()), nil
}

// NotPrecededBy applies a negative lookbehind.
func (p *Pattern) NotPrecededBy(assertion *Pattern) (*Pattern, error) {
	if assertion.category == CategoryEmpty {
		return nil, ErrEmptyNegativeAssertion
	}
	if err := fixedWidth(assertion); err != nil {
		return nil, err
	}
	return Raw("(?<!" + assertion.text + ")" + p.assertGrouped()), nil
}

// EnclosedBy applies the same assertion as a lookbehind and a lookahead
// around p.
func (p *Pattern) EnclosedBy(assertion *Pattern) (*Pattern, error) {
	if assertion.category == CategoryEmpty {
		return p, nil
	}
	if err := fixedWidth(assertion); err != nil {
		return nil, err
	}
	return Raw("(?<=" + assertion.text + ")" + p.assertGrouped() + "(?=" + assertion.text + ")"), nil
}

// NotEnclosedBy applies the same assertion as a negative lookbehind and a
// negative lookahead around p.
func (p *Pattern) NotEnclosedBy(assertion *Pattern) (*Pattern, error) {
	if assertion.category == CategoryEmpty {
		return nil, ErrEmptyNegativeAssertion
	}
	if err := fixedWidth(assertion); err != nil {
		return nil, err
	}
	return Raw("(?<!" + assertion.text + ")" + p.assertGrouped() + "(?!" + assertion.text + ")"), nil
}
