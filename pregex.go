package pregex

import (
	"fmt"

	"github.com/dlclark/regexp2"
)

// Pattern is an immutable rendered regex fragment together with its
// category and quantifiability, both derived from the text and never stored
// out of sync with it. Operators always return a new Pattern.
type Pattern struct {
	text         string
	category     Category
	quantifiable bool

	// compiled memoizes the host-engine form. Patterns are immutable, so
	// the cache never needs invalidating.
	compiled *regexp2.Regexp
}

// New wraps text as a pattern matching it literally, escaping every regex
// metacharacter it contains.
func New(text string) *Pattern {
	return Raw(Escape(text))
}

// Raw wraps already-rendered pattern text without escaping it. The text must
// have been produced by this package; see Classify for the closed-world
// limitation.
func Raw(text string) *Pattern {
	category, quantifiable := Classify(text)
	return &Pattern{text: text, category: category, quantifiable: quantifiable}
}

// Empty returns the empty pattern, a no-op under concatenation and every
// quantifier.
func Empty() *Pattern {
	return Raw("")
}

// Must returns p if err is nil and panics otherwise. It allows patterns that
// are known to be valid to be built in variable initializations.
func Must(p *Pattern, err error) *Pattern {
	if err != nil {
		panic(fmt.Sprintf("pregex: %v", err))
	}
	return p
}

// String returns the rendered pattern text.
func (p *Pattern) String() string {
	return p.text
}

// DisplayPattern returns the rendered pattern in a printable form,
// optionally wrapped with the fixed matching flags.
func (p *Pattern) DisplayPattern(includeFlags bool) string {
	if includeFlags {
		return "/" + p.text + "/gms"
	}
	return p.text
}

// Category returns the fragment's semantic category.
func (p *Pattern) Category() Category {
	return p.category
}

// Quantifiable reports whether a repeating quantifier may legally be applied
// to the fragment.
func (p *Pattern) Quantifiable() bool {
	return p.quantifiable
}

// rule returns the fragment's grouping policy record.
func (p *Pattern) rule() groupingRule {
	return groupingPolicy[p.category]
}

// concatGrouped returns the pattern text, wrapped in a non-capturing group
// when the grouping policy demands it for concatenation.
func (p *Pattern) concatGrouped() string {
	if p.rule().onConcat {
		return p.Group().text
	}
	return p.text
}

// quantifyGrouped is concatGrouped's counterpart for quantification.
func (p *Pattern) quantifyGrouped() string {
	if p.rule().onQuantify {
		return p.Group().text
	}
	return p.text
}

// assertGrouped is concatGrouped's counterpart for assertions.
func (p *Pattern) assertGrouped() string {
	if p.rule().onAssert {
		return p.Group().text
	}
	return p.text
}

// Concat joins q to the right of p. Either operand is returned unchanged
// when the other is empty; otherwise both are grouped as their categories
// require and the joined text is re-classified.
func (p *Pattern) Concat(q *Pattern) *Pattern {
	if q.category == CategoryEmpty {
		return p
	}
	if p.category == CategoryEmpty {
		return q
	}
	return Raw(p.concatGrouped() + q.concatGrouped())
}

// Either joins p and q with the alternation bar. Alternation is the
// lowest-precedence operator, so neither operand is pre-grouped; the result
// classifies as an alternation, which makes any later concatenation or
// quantification of it wrap it first.
func (p *Pattern) Either(q *Pattern) *Pattern {
	if q.category == CategoryEmpty {
		return p
	}
	if p.category == CategoryEmpty {
		return q
	}
	return Raw(p.text + "|" + q.text)
}

// Enclose concatenates q to both sides of p.
func (p *Pattern) Enclose(q *Pattern) *Pattern {
	wrap := q.concatGrouped()
	return Raw(wrap + p.concatGrouped() + wrap)
}
