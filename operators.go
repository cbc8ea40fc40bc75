package pregex

import "fmt"

// Concat matches the concatenation of two or more patterns, left to right.
func Concat(patterns ...*Pattern) (*Pattern, error) {
	if len(patterns) < 2 {
		return nil, fmt.Errorf("%w: concat requires at least two patterns", ErrNotEnoughOperands)
	}
	result := patterns[0]
	for _, p := range patterns[1:] {
		result = result.Concat(p)
	}
	return result, nil
}

// Either matches any one of two or more alternatives. The engine is eager:
// alternatives are tried left to right and the first match wins.
func Either(patterns ...*Pattern) (*Pattern, error) {
	if len(patterns) < 2 {
		return nil, fmt.Errorf("%w: either requires at least two patterns", ErrNotEnoughOperands)
	}
	result := patterns[0]
	for _, p := range patterns[1:] {
		result = result.Either(p)
	}
	return result, nil
}

// Enclose concatenates each enclosing pattern to both sides of inner, one
// after another.
func Enclose(inner *Pattern, enclosing ...*Pattern) (*Pattern, error) {
	if len(enclosing) == 0 {
		return nil, fmt.Errorf("%w: enclose requires at least one enclosing pattern", ErrNotEnoughOperands)
	}
	result := inner
	for _, p := range enclosing {
		result = result.Enclose(p)
	}
	return result, nil
}
