package pregex

// Category identifies the syntactic shape of a rendered pattern fragment.
// Exactly one category applies to any fragment.
type Category int

const (
	CategoryEmpty Category = iota
	CategoryToken
	CategoryClass
	CategoryGroup
	CategoryAssertion
	CategoryQuantifier
	CategoryAlternation
	CategoryOther
)

func (c Category) String() string {
	switch c {
	case CategoryEmpty:
		return "Empty"
	case CategoryToken:
		return "Token"
	case CategoryClass:
		return "Class"
	case CategoryGroup:
		return "Group"
	case CategoryAssertion:
		return "Assertion"
	case CategoryQuantifier:
		return "Quantifier"
	case CategoryAlternation:
		return "Alternation"
	case CategoryOther:
		return "Other"
	}
	return "Unknown"
}

// groupingRule holds the per-category grouping policy: whether a fragment of
// that category must be wrapped in a non-capturing group before it is
// concatenated, quantified, or placed under an assertion.
type groupingRule struct {
	onConcat   bool
	onQuantify bool
	onAssert   bool
}

// groupingPolicy is static data; it is never modified at runtime.
var groupingPolicy = [...]groupingRule{
	CategoryEmpty:       {},
	CategoryToken:       {},
	CategoryClass:       {},
	CategoryGroup:       {},
	CategoryAssertion:   {onQuantify: true},
	CategoryQuantifier:  {onQuantify: true},
	CategoryAlternation: {onConcat: true, onQuantify: true, onAssert: true},
	CategoryOther:       {onQuantify: true},
}
