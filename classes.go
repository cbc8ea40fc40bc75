package pregex

import "fmt"

// MustClass returns c if err is nil and panics otherwise. It is Must's
// counterpart for class constructors and class algebra.
func MustClass(c *Class, err error) *Class {
	if err != nil {
		panic(fmt.Sprintf("pregex: %v", err))
	}
	return c
}

// AnyChar matches every possible character, newline included, since "dot
// matches newline" is always on. It is the only class without a bracket
// form, which is why it cannot be negated.
func AnyChar() *Class {
	return &Class{Pattern: Raw("."), universal: true}
}

// Letter matches any character of the Latin alphabet.
func Letter() *Class {
	return newClass([]span{{'A', 'Z'}, {'a', 'z'}}, false, 0)
}

// NotLetter matches any character except for those of the Latin alphabet.
func NotLetter() *Class {
	return newClass([]span{{'A', 'Z'}, {'a', 'z'}}, true, 0)
}

// LowercaseLetter matches any lowercase Latin letter.
func LowercaseLetter() *Class {
	return newClass([]span{{'a', 'z'}}, false, 0)
}

// NotLowercaseLetter matches any character except lowercase Latin letters.
func NotLowercaseLetter() *Class {
	return newClass([]span{{'a', 'z'}}, true, 0)
}

// UppercaseLetter matches any uppercase Latin letter.
func UppercaseLetter() *Class {
	return newClass([]span{{'A', 'Z'}}, false, 0)
}

// NotUppercaseLetter matches any character except uppercase Latin letters.
func NotUppercaseLetter() *Class {
	return newClass([]span{{'A', 'Z'}}, true, 0)
}

// Digit matches any decimal digit.
func Digit() *Class {
	return newClass(digitSpans, false, foldDigit)
}

// NotDigit matches any character except decimal digits.
func NotDigit() *Class {
	return newClass(digitSpans, true, foldDigit)
}

// WordChar matches any word character. When global is true the class stands
// for the engine's open-ended \w property, which also covers word
// characters outside the Latin alphabet; such a class cannot be narrowed by
// subtraction.
func WordChar(global bool) *Class {
	c := newClass(wordSpans, false, wordFold(global))
	c.global = global
	return c
}

// NotWordChar matches any character except word characters. See WordChar
// for the meaning of global.
func NotWordChar(global bool) *Class {
	c := newClass(wordSpans, true, wordFold(global))
	c.global = global
	return c
}

func wordFold(global bool) foldSet {
	if global {
		return foldWord
	}
	return 0
}

// Whitespace matches any whitespace character.
func Whitespace() *Class {
	return newClass(spaceSpans, false, foldSpace)
}

// NotWhitespace matches any character except whitespace.
func NotWhitespace() *Class {
	return newClass(spaceSpans, true, foldSpace)
}

// Punctuation matches any ASCII punctuation character.
func Punctuation() *Class {
	return newClass(punctuationSpans(), false, 0)
}

// NotPunctuation matches any character except ASCII punctuation.
func NotPunctuation() *Class {
	return newClass(punctuationSpans(), true, 0)
}

func punctuationSpans() []span {
	return []span{{'!', '/'}, {':', '@'}, {'[', '`'}, {'{', '~'}}
}

// Between matches any character within the given inclusive range. The start
// must come before the end.
func Between(start, end rune) (*Class, error) {
	if start >= end {
		return nil, fmt.Errorf("%w: [%c-%c]", ErrInvalidRange, start, end)
	}
	return newClass([]span{{start, end}}, false, 0), nil
}

// NotBetween matches any character outside the given inclusive range.
func NotBetween(start, end rune) (*Class, error) {
	if start >= end {
		return nil, fmt.Errorf("%w: [%c-%c]", ErrInvalidRange, start, end)
	}
	return newClass([]span{{start, end}}, true, 0), nil
}

// From matches any of the given characters.
func From(chars ...rune) (*Class, error) {
	if len(chars) == 0 {
		return nil, fmt.Errorf("%w: from requires at least one character", ErrNotEnoughOperands)
	}
	return newClass(charSpans(chars), false, 0), nil
}

// NotFrom matches any character except the given ones.
func NotFrom(chars ...rune) (*Class, error) {
	if len(chars) == 0 {
		return nil, fmt.Errorf("%w: from requires at least one character", ErrNotEnoughOperands)
	}
	return newClass(charSpans(chars), true, 0), nil
}

func charSpans(chars []rune) []span {
	spans := make([]span, 0, len(chars))
	for _, r := range chars {
		spans = append(spans, span{r, r})
	}
	return spans
}
