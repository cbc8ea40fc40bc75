// Package pregex builds regular-expression patterns out of typed building
// blocks instead of hand-written pattern text: literals, character classes,
// quantifiers, groups and assertions are combined through operators that
// decide on their own when a fragment has to be wrapped in a non-capturing
// group, so that composition never silently changes matching semantics.
//
// Every operator consumes immutable *Pattern values and returns a new one;
// there is no shared mutable state anywhere in the package.
//
// Two invariants hold for every pattern built here:
//
//   - Matching always happens with the multiline and "dot matches newline"
//     flags enabled. This is not configurable per fragment: ^ and $ match at
//     line boundaries and . matches every character including newlines.
//
//   - Classify, which derives a fragment's category from its rendered text,
//     is only guaranteed to be correct for text this package produced
//     itself. Feeding it arbitrary externally authored regex syntax is
//     unsupported.
//
// Matching is delegated to github.com/dlclark/regexp2, whose dialect covers
// everything the builders emit, including lookbehind assertions and named
// groups, which the standard library's regexp cannot express.
package pregex
