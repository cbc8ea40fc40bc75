package pregex

import (
	"fmt"
	"sort"
	"strings"
)

// span is an inclusive range of code points. A class's spans are kept
// canonical at all times: sorted, pairwise disjoint and non-adjacent.
type span struct {
	lo, hi rune
}

func (s span) width() rune {
	return s.hi - s.lo + 1
}

// foldSet records which shorthand notations a class has asked to be folded
// into. Folding never happens without a request, so enumerated classes are
// not silently rewritten into open-ended shorthands.
type foldSet uint8

const (
	foldWord foldSet = 1 << iota
	foldDigit
	foldSpace
)

// Shorthand expansion tables. Constant data; never modified.
var (
	wordSpans  = []span{{'0', '9'}, {'A', 'Z'}, {'_', '_'}, {'a', 'z'}}
	digitSpans = []span{{'0', '9'}}
	spaceSpans = []span{{'\t', '\r'}, {' ', ' '}}
)

// Class is a character class in canonical form: the set of code points it
// covers, its polarity, and the shorthand folds it has requested. It embeds
// the rendered *Pattern, so a class composes like any other fragment.
type Class struct {
	*Pattern
	spans     []span
	negated   bool
	universal bool // the any-character class, which has no bracket form
	global    bool // open-ended word class; refuses finite subtraction
	fold      foldSet
}

// CharRange is an inclusive character range within a class's decomposition.
type CharRange struct {
	Lo, Hi rune
}

func newClass(spans []span, negated bool, fold foldSet) *Class {
	spans = canonicalSpans(spans)
	return &Class{
		Pattern: Raw(renderClass(spans, negated, fold)),
		spans:   spans,
		negated: negated,
		fold:    fold,
	}
}

// Negated reports the class's polarity.
func (c *Class) Negated() bool {
	return c.negated
}

// Contents returns the canonical decomposition of the class: maximal ranges
// at least three characters wide, everything narrower as single chars. The
// universal class decomposes to nothing.
func (c *Class) Contents() (ranges []CharRange, chars []rune) {
	for _, s := range c.spans {
		switch s.width() {
		case 1:
			chars = append(chars, s.lo)
		case 2:
			chars = append(chars, s.lo, s.hi)
		default:
			ranges = append(ranges, CharRange{Lo: s.lo, Hi: s.hi})
		}
	}
	return ranges, chars
}

// Union returns the class covering every character of c and other. Both
// operands must have the same polarity. The union of anything with the
// universal class is the universal class.
func (c *Class) Union(other *Class) (*Class, error) {
	if c.negated != other.negated {
		return nil, ErrCannotBeUnioned
	}
	if c.universal || other.universal {
		return AnyChar(), nil
	}
	merged := make([]span, 0, len(c.spans)+len(other.spans))
	merged = append(merged, c.spans...)
	merged = append(merged, other.spans...)
	return newClass(merged, c.negated, c.fold|other.fold), nil
}

// Subtract returns the class covering every character of c not covered by
// other. Both operands must have the same polarity. Subtracting everything
// is an error, as is subtracting from the open-ended word class, which a
// finite subtraction cannot soundly narrow. Shorthand-fold requests do not
// survive subtraction.
func (c *Class) Subtract(other *Class) (*Class, error) {
	if c.negated != other.negated {
		return nil, ErrCannotBeSubtracted
	}
	if other.universal {
		return nil, fmt.Errorf("%w: subtracting the universal class", ErrEmptyClass)
	}
	if c.universal {
		return other.Negate()
	}
	if c.global {
		return nil, ErrGlobalWordClass
	}
	remaining := subtractSpans(c.spans, other.spans)
	if len(remaining) == 0 {
		return nil, fmt.Errorf("%w: %q minus %q", ErrEmptyClass, c.text, other.text)
	}
	return newClass(remaining, c.negated, 0), nil
}

// Negate flips the class's polarity. The covered set is unchanged: [^…] is
// the complement of the same enumerated characters. The universal class
// cannot be negated.
func (c *Class) Negate() (*Class, error) {
	if c.universal {
		return nil, ErrCannotBeNegated
	}
	return newClass(c.spans, !c.negated, c.fold), nil
}

// canonicalSpans sorts the spans and merges every overlapping or adjacent
// pair, so no character lies inside or directly next to another span.
func canonicalSpans(spans []span) []span {
	if len(spans) == 0 {
		return nil
	}
	sorted := make([]span, len(spans))
	copy(sorted, spans)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].lo < sorted[j].lo })

	out := sorted[:1]
	for _, s := range sorted[1:] {
		last := &out[len(out)-1]
		if s.lo <= last.hi+1 {
			if s.hi > last.hi {
				last.hi = s.hi
			}
			continue
		}
		out = append(out, s)
	}
	return out
}

// subtractSpans removes every character of sub from the spans of from,
// splitting spans as needed, and returns the canonical remainder.
func subtractSpans(from, sub []span) []span {
	pieces := make([]span, len(from))
	copy(pieces, from)
	for _, t := range sub {
		var next []span
		for _, p := range pieces {
			if t.hi < p.lo || t.lo > p.hi {
				next = append(next, p)
				continue
			}
			if t.lo > p.lo {
				next = append(next, span{p.lo, t.lo - 1})
			}
			if t.hi < p.hi {
				next = append(next, span{t.hi + 1, p.hi})
			}
		}
		pieces = next
	}
	return canonicalSpans(pieces)
}

// coversAll reports whether every span of inner lies within a span of the
// canonical outer set.
func coversAll(outer, inner []span) bool {
	for _, in := range inner {
		found := false
		for _, out := range outer {
			if out.lo <= in.lo && in.hi <= out.hi {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// Characters that must be escaped inside a bracket expression.
const classEscapes = `\^[]-/`

func classEscape(r rune) string {
	if strings.ContainsRune(classEscapes, r) {
		return `\` + string(r)
	}
	return string(r)
}

// rangeEndpointEscape escapes a range endpoint. A dash is written as \x2d
// because the engine treats \- as a standalone literal that cannot form a
// range.
func rangeEndpointEscape(r rune) string {
	if r == '-' {
		return `\x2d`
	}
	return classEscape(r)
}

// renderClass renders canonical spans as bracket-expression text, applying
// the shorthand, single-character and negated-shorthand pretty-printing
// rules.
func renderClass(spans []span, negated bool, fold foldSet) string {
	remainder := spans
	var shorthands []string
	if fold&foldWord != 0 && coversAll(remainder, wordSpans) {
		remainder = subtractSpans(remainder, wordSpans)
		shorthands = append(shorthands, `\w`)
	} else if fold&foldDigit != 0 && coversAll(remainder, digitSpans) {
		remainder = subtractSpans(remainder, digitSpans)
		shorthands = append(shorthands, `\d`)
	}
	if fold&foldSpace != 0 && coversAll(remainder, spaceSpans) {
		remainder = subtractSpans(remainder, spaceSpans)
		shorthands = append(shorthands, `\s`)
	}

	// A class that is exactly one shorthand renders as the shorthand
	// itself, using its negated spelling for a negated class.
	if len(shorthands) == 1 && len(remainder) == 0 {
		if negated {
			return strings.ToUpper(shorthands[0])
		}
		return shorthands[0]
	}
	// A non-negated class reduced to one character renders as a bare
	// literal instead of a one-element bracket expression.
	if !negated && len(shorthands) == 0 && len(remainder) == 1 && remainder[0].width() == 1 {
		return Escape(string(remainder[0].lo))
	}

	var b strings.Builder
	b.WriteByte('[')
	if negated {
		b.WriteByte('^')
	}
	for _, sh := range shorthands {
		b.WriteString(sh)
	}
	for _, s := range remainder {
		switch s.width() {
		case 1:
			b.WriteString(classEscape(s.lo))
		case 2:
			b.WriteString(classEscape(s.lo))
			b.WriteString(classEscape(s.hi))
		default:
			b.WriteString(rangeEndpointEscape(s.lo))
			b.WriteByte('-')
			b.WriteString(rangeEndpointEscape(s.hi))
		}
	}
	b.WriteByte(']')
	return b.String()
}
