package pregex

import "fmt"

// Ready-made patterns for common text shapes, built entirely out of the
// public operators. They serve both as conveniences and as worked examples
// of composing the algebra.

// Text matches any sequence of characters, newlines included. When optional
// is true the empty sequence matches as well.
func Text(optional bool) *Pattern {
	if optional {
		return Must(AnyChar().ZeroOrMore(true))
	}
	return Must(AnyChar().OneOrMore(true))
}

// SomeWhitespace matches one or more whitespace characters.
func SomeWhitespace() *Pattern {
	return Must(Whitespace().OneOrMore(true))
}

// NonWhitespace matches one or more non-whitespace characters.
func NonWhitespace() *Pattern {
	return Must(NotWhitespace().OneOrMore(true))
}

// Word matches a whole word between minLen and maxLen characters long. An
// Unbounded maxLen leaves the length unlimited.
func Word(minLen, maxLen int) (*Pattern, error) {
	if minLen < 1 {
		return nil, fmt.Errorf("%w: word length must be at least one", ErrInvalidArgument)
	}
	core, err := WordChar(true).Between(minLen, maxLen, true)
	if err != nil {
		return nil, err
	}
	return Enclose(core, WordBoundary())
}

// WordContains matches any whole word containing text.
func WordContains(text string) (*Pattern, error) {
	if text == "" {
		return nil, fmt.Errorf("%w: contained text is empty", ErrInvalidArgument)
	}
	side := Must(WordChar(true).ZeroOrMore(true))
	core := side.Concat(New(text)).Concat(side)
	return Enclose(core, WordBoundary())
}

// WordStartsWith matches any whole word beginning with text.
func WordStartsWith(text string) (*Pattern, error) {
	if text == "" {
		return nil, fmt.Errorf("%w: leading text is empty", ErrInvalidArgument)
	}
	core := New(text).Concat(Must(WordChar(true).ZeroOrMore(true)))
	return Enclose(core, WordBoundary())
}

// WordEndsWith matches any whole word ending in text.
func WordEndsWith(text string) (*Pattern, error) {
	if text == "" {
		return nil, fmt.Errorf("%w: trailing text is empty", ErrInvalidArgument)
	}
	core := Must(WordChar(true).ZeroOrMore(true)).Concat(New(text))
	return Enclose(core, WordBoundary())
}

// Numeral matches a whole numeral of the given base, between nMin and nMax
// digits long. Bases from two to sixteen are supported; digits beyond nine
// are the letters a through f, either case.
func Numeral(base, nMin, nMax int) (*Pattern, error) {
	if base < 2 || base > 16 {
		return nil, fmt.Errorf("%w: base %d is out of the [2,16] range", ErrInvalidArgument, base)
	}
	if nMin < 1 {
		return nil, fmt.Errorf("%w: a numeral has at least one digit", ErrInvalidArgument)
	}
	set, err := Between('0', rune('0'+min(base, 10)-1))
	if err != nil {
		return nil, err
	}
	if base > 10 {
		set, err = set.Union(letterDigits('a', base))
		if err != nil {
			return nil, err
		}
		set, err = set.Union(letterDigits('A', base))
		if err != nil {
			return nil, err
		}
	}
	core, err := set.Between(nMin, nMax, true)
	if err != nil {
		return nil, err
	}
	return Enclose(core, WordBoundary())
}

// letterDigits builds the letter-digit class for bases above ten, starting
// at the given case's 'a'.
func letterDigits(a rune, base int) *Class {
	if base == 11 {
		return MustClass(From(a))
	}
	return MustClass(Between(a, a+rune(base-11)))
}

// SignedInteger matches a decimal integer with an optional leading sign.
func SignedInteger() *Pattern {
	sign := MustClass(From('+', '-')).Optional(true)
	return sign.Concat(Must(Digit().OneOrMore(true)))
}

// IPv4 matches a dotted-quad IPv4 address whose octets lie within [0,255]
// and carry no leading zeros.
func IPv4() *Pattern {
	octet := Must(Either(
		New("25").Concat(MustClass(Between('0', '5')).Pattern),
		New("2").Concat(MustClass(Between('0', '4')).Pattern).Concat(Digit().Pattern),
		New("1").Concat(Digit().Pattern).Concat(Digit().Pattern),
		MustClass(Between('1', '9')).Optional(true).Concat(Digit().Pattern),
	))
	dot := New(".")
	addr := Must(Concat(octet, dot, octet, dot, octet, dot, octet))
	return Must(Enclose(addr, WordBoundary()))
}

// Date matches a whole day/month/year date. The separator may be a slash,
// dash or period, but must be the same on both sides; the year is either
// two or four digits.
func Date() *Pattern {
	optZero := MustClass(From('0')).Optional(true)
	day := Must(Either(
		optZero.Concat(MustClass(Between('1', '9')).Pattern),
		MustClass(From('1', '2')).Concat(Digit().Pattern),
		New("3").Concat(MustClass(From('0', '1')).Pattern),
	))
	month := Must(Either(
		optZero.Concat(MustClass(Between('1', '9')).Pattern),
		New("1").Concat(MustClass(Between('0', '2')).Pattern),
	))
	year := Must(Either(
		Must(Digit().Exactly(4)),
		Must(Digit().Exactly(2)),
	))
	sep := Must(MustClass(From('/', '-', '.')).Capture("sep"))
	date := Must(Concat(day, sep, month, Must(Backreference("sep")), year))
	return Must(Enclose(date, WordBoundary()))
}

// Email matches a whole email address: a local part of word characters,
// dots, pluses and dashes, then a domain of dash-or-word labels ending in a
// two-to-six letter top-level domain.
func Email() *Pattern {
	local := Must(MustClass(WordChar(false).Union(MustClass(From('.', '+', '-')))).OneOrMore(true))
	label := Must(domainLabelSet().OneOrMore(true))
	dot := New(".")
	moreLabels := Must(dot.Concat(label).ZeroOrMore(true))
	tld := Must(Letter().Between(2, 6, true))
	addr := Must(Concat(local, New("@"), label, moreLabels, dot, tld))
	return Must(Enclose(addr, WordBoundary()))
}

// HTTPURL matches an http or https URL with an optional port and an
// optional path-and-query part.
func HTTPURL() *Pattern {
	scheme := New("http").Concat(New("s").Optional(true)).Concat(New("://"))
	label := Must(domainLabelSet().OneOrMore(true))
	dot := New(".")
	moreLabels := Must(dot.Concat(label).ZeroOrMore(true))
	tld := Must(Letter().Between(2, 6, true))
	port := New(":").Concat(Must(Digit().OneOrMore(true))).Optional(true)
	pathChars := MustClass(WordChar(false).Union(
		MustClass(From('/', '.', '%', '+', '-', '~', '?', '=', '&', '#'))))
	path := New("/").Concat(Must(pathChars.ZeroOrMore(true))).Optional(true)
	return Must(Concat(scheme, label, moreLabels, dot, tld, port, path))
}

func domainLabelSet() *Class {
	return MustClass(WordChar(false).Union(MustClass(From('-'))))
}
