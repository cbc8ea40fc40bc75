package pregex

import (
	"regexp"
	"strings"
)

// Checks that operate on a fragment's skeleton once brackets and groups have
// been collapsed. None of them needs lookaround, so the standard library's
// regexp is enough here even though it cannot run the patterns we build.
var (
	singleTokenRE = regexp.MustCompile(`(?s)^\\?.$`)
	singleClassRE = regexp.MustCompile(`(?i)^(?:\.|\\[wds])$`)
	wordBoundRE   = regexp.MustCompile(`(?i)^\\b$`)

	// An anchored fragment: starts with a start-anchor or lookbehind, or
	// ends with an end-anchor or lookahead, with more text than the anchor
	// itself. Such fragments must not be repeated.
	anchoredRE = regexp.MustCompile(`(?s)\A(?:(?:\^|\\A|\(\?<=.+\)).+|.+(?:\$|\\Z|\(\?=.+\)))\z`)

	// Word boundaries and negative lookarounds assert a position but leave
	// the fragment repeatable.
	boundedRE = regexp.MustCompile(`(?s)\A(?:(?:\\b|\\B|\(\?<!.+\)).+|.+(?:\\b|\\B|\(\?!.+\)))\z`)

	// An optional single, possibly escaped, character followed by exactly
	// one quantifier suffix, optionally lazy.
	quantifierRE = regexp.MustCompile(`(?s)\A(?:\\.|[^\\])?(?:\?|\*|\+|\{(?:\d+|\d+,|,\d+|\d+,\d+)\})\??\z`)
)

// Classify derives the category and quantifiability of a rendered pattern
// fragment from its text alone.
//
// The classification is sound only in the closed world of text this package
// produced itself; arbitrary externally authored pattern text is not
// guaranteed to classify correctly.
func Classify(text string) (Category, bool) {
	// Literal escaped-backslash pairs would confuse every check below, so
	// stand in an ordinary character for each pair first.
	text = strings.ReplaceAll(text, `\\`, "a")

	if text == "" {
		return CategoryEmpty, true
	}
	if singleTokenRE.MatchString(text) {
		switch {
		case singleClassRE.MatchString(text):
			return CategoryClass, true
		case wordBoundRE.MatchString(text):
			return CategoryAssertion, true
		default:
			return CategoryToken, true
		}
	}

	text = collapseBrackets(text)
	if text == "[a]" {
		return CategoryClass, true
	}
	if isGroup(text) {
		return CategoryGroup, true
	}

	// Collapsed bracket expressions count as one unit from here on, just
	// like groups do.
	skeleton := removeGroups(strings.ReplaceAll(text, "[a]", "C"))
	if hasTopLevelBar(skeleton) {
		return CategoryAlternation, true
	}
	if anchoredRE.MatchString(text) {
		return CategoryAssertion, false
	}
	if boundedRE.MatchString(text) {
		return CategoryAssertion, true
	}
	if quantifierRE.MatchString(skeleton) {
		return CategoryQuantifier, true
	}
	return CategoryOther, true
}

// collapseBrackets replaces every bracket expression with the placeholder
// class [a] so later checks cannot be confused by metacharacters inside it.
// Escaped-backslash pairs have already been substituted away, so a preceding
// backslash always means the next character is escaped.
func collapseBrackets(text string) string {
	var b strings.Builder
	for i := 0; i < len(text); {
		c := text[i]
		if c == '\\' && i+1 < len(text) {
			b.WriteString(text[i : i+2])
			i += 2
			continue
		}
		if c != '[' {
			b.WriteByte(c)
			i++
			continue
		}
		end := closingBracket(text, i)
		if end < 0 {
			b.WriteByte(c)
			i++
			continue
		}
		b.WriteString("[a]")
		i = end + 1
	}
	return b.String()
}

// closingBracket returns the index of the first unescaped ] after the [ at
// start, or -1 if the bracket expression never closes.
func closingBracket(text string, start int) int {
	for i := start + 1; i < len(text); i++ {
		switch text[i] {
		case '\\':
			i++
		case ']':
			if i > start+1 {
				return i
			}
		}
	}
	return -1
}

// isGroup reports whether the whole text is one balanced parenthesized
// group, ignoring escaped parentheses.
func isGroup(text string) bool {
	if !strings.HasPrefix(text, "(") || !strings.HasSuffix(text, ")") {
		return false
	}
	open := 0
	for i := 1; i < len(text)-1; i++ {
		if text[i-1] == '\\' {
			continue
		}
		switch text[i] {
		case ')':
			if open == 0 {
				return false
			}
			open--
		case '(':
			open++
		}
	}
	return open == 0
}

// removeGroups obtains the fragment's skeleton by replacing every top-level
// balanced group, innermost first, with the placeholder G.
func removeGroups(text string) string {
	for {
		end := -1
		for i := 0; i < len(text); i++ {
			if text[i] == '\\' {
				i++
				continue
			}
			if text[i] == ')' {
				end = i
				break
			}
		}
		if end < 0 {
			return text
		}
		start := -1
		for i := 0; i < end; i++ {
			if text[i] == '\\' {
				i++
				continue
			}
			if text[i] == '(' {
				start = i
			}
		}
		if start < 0 {
			return text
		}
		text = text[:start] + "G" + text[end+1:]
	}
}

// hasTopLevelBar reports whether the skeleton contains an un-escaped
// alternation bar.
func hasTopLevelBar(skeleton string) bool {
	for i := 0; i < len(skeleton); i++ {
		switch skeleton[i] {
		case '\\':
			i++
		case '|':
			return true
		}
	}
	return false
}
