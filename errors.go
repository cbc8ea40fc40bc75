package pregex

import "errors"

// All composition failures are deterministic construction mistakes reported
// at the point of composition; no partially-built pattern is ever returned.
var (
	// ErrCannotBeRepeated is returned when a repeating quantifier is
	// applied to a non-quantifiable pattern, such as an anchored one.
	ErrCannotBeRepeated = errors.New("pattern cannot be repeated")

	// ErrCannotBeUnioned is returned when a regular class and a negated
	// class take part in the same union.
	ErrCannotBeUnioned = errors.New("classes of different polarity cannot be unioned")

	// ErrCannotBeSubtracted is returned when a regular class and a negated
	// class take part in the same subtraction.
	ErrCannotBeSubtracted = errors.New("classes of different polarity cannot be subtracted")

	// ErrEmptyClass is returned when a subtraction removes every character
	// from a class.
	ErrEmptyClass = errors.New("subtraction results in an empty class")

	// ErrGlobalWordClass is returned when subtracting from the open-ended
	// word class: a finite subtraction cannot soundly narrow it.
	ErrGlobalWordClass = errors.New("cannot subtract from the global word class")

	// ErrCannotBeNegated is returned when negating the universal
	// any-character class, which has no bracket form to negate.
	ErrCannotBeNegated = errors.New("the universal class cannot be negated")

	// ErrNonFixedWidth is returned when a lookbehind assertion receives a
	// pattern that does not match a fixed number of characters.
	ErrNonFixedWidth = errors.New("lookbehind requires a fixed-width pattern")

	// ErrEmptyNegativeAssertion is returned when the empty pattern is
	// supplied as a negative lookaround assertion.
	ErrEmptyNegativeAssertion = errors.New("empty pattern as negative assertion")

	// ErrInvalidGroupName is returned for capture or backreference names
	// that are not a word-character sequence starting with a non-digit.
	ErrInvalidGroupName = errors.New("invalid capturing group name")

	// ErrInvalidRange is returned when a class range's start does not come
	// before its end.
	ErrInvalidRange = errors.New("invalid character range")

	// ErrInvalidRepetition is returned for negative or inconsistent
	// repetition bounds.
	ErrInvalidRepetition = errors.New("invalid repetition bounds")

	// ErrNotEnoughOperands is returned when an n-ary operator receives
	// fewer operands than it requires.
	ErrNotEnoughOperands = errors.New("not enough operands")

	// ErrInvalidArgument is returned for argument values that are invalid
	// independently of pattern semantics, such as a negative replace count.
	ErrInvalidArgument = errors.New("invalid argument")
)
