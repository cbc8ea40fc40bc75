package pregex

import (
	"fmt"
	"regexp"
	"strings"
)

// A capturing group's name must be a word-character sequence starting with a
// non-digit.
var groupNameRE = regexp.MustCompile(`^[A-Za-z_]\w*$`)

// convertibleGroup reports whether a Group-category fragment can have its
// capturing behavior rewritten in place. Lookarounds and conditionals parse
// as balanced groups too, but their parentheses carry meaning of their own,
// so converting them means wrapping instead.
func convertibleGroup(text string) bool {
	if strings.HasPrefix(text, "(?=") || strings.HasPrefix(text, "(?!") ||
		strings.HasPrefix(text, "(?<=") || strings.HasPrefix(text, "(?<!") ||
		strings.HasPrefix(text, "(?(") {
		return false
	}
	return true
}

// Capture creates a capturing group out of the pattern. An empty name leaves
// the group unnamed.
//
// Capturing an already-capturing group is idempotent except for name
// changes; capturing a non-capturing group converts it, unless flags are
// applied to it, in which case it is captured as a whole.
func (p *Pattern) Capture(name string) (*Pattern, error) {
	if name != "" && !groupNameRE.MatchString(name) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidGroupName, name)
	}
	if p.category == CategoryEmpty {
		return p, nil
	}
	text := p.text
	if p.category == CategoryGroup && convertibleGroup(text) {
		switch {
		case strings.HasPrefix(text, "(?:"):
			text = "(" + text[3:]
		case strings.HasPrefix(text, "(?") && !strings.HasPrefix(text, "(?<"):
			// Flagged non-capturing group: capture it as a whole so the
			// flags keep their scope.
			text = "(" + text + ")"
		}
		if name != "" {
			if strings.HasPrefix(text, "(?<") {
				end := strings.IndexByte(text, '>')
				text = "(?<" + name + ">" + text[end+1:]
			} else {
				text = "(?<" + name + ">" + text[1:len(text)-1] + ")"
			}
		}
		return Raw(text), nil
	}
	if name != "" {
		return Raw("(?<" + name + ">" + text + ")"), nil
	}
	return Raw("(" + text + ")"), nil
}

// Group creates a non-capturing group out of the pattern. Grouping a group
// strips any capturing syntax, name, and flags it may carry.
func (p *Pattern) Group() *Pattern {
	return p.groupWithFlags("")
}

// CaseInsensitiveGroup creates a non-capturing group whose contents ignore
// case when matching.
func (p *Pattern) CaseInsensitiveGroup() *Pattern {
	return p.groupWithFlags("i")
}

func (p *Pattern) groupWithFlags(flags string) *Pattern {
	if p.category == CategoryEmpty {
		return p
	}
	open := "(?" + flags + ":"
	text := p.text
	if p.category == CategoryGroup && convertibleGroup(text) {
		switch {
		case strings.HasPrefix(text, "(?<"):
			end := strings.IndexByte(text, '>')
			return Raw(open + text[end+1:])
		case strings.HasPrefix(text, "(?"):
			end := strings.IndexByte(text, ':')
			return Raw(open + text[end+1:])
		default:
			return Raw(open + text[1:])
		}
	}
	return Raw(open + text + ")")
}

// Backreference matches whatever the named capturing group most recently
// matched.
func Backreference(name string) (*Pattern, error) {
	if !groupNameRE.MatchString(name) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidGroupName, name)
	}
	return Raw(`\k<` + name + `>`), nil
}

// Conditional matches then only if the named capturing group participated in
// the match so far, and otherwise when it did not. A nil or empty otherwise
// leaves the negative branch out.
func Conditional(name string, then, otherwise *Pattern) (*Pattern, error) {
	if !groupNameRE.MatchString(name) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidGroupName, name)
	}
	text := "(?(" + name + ")" + then.text
	if otherwise != nil && otherwise.category != CategoryEmpty {
		text += "|" + otherwise.text
	}
	return Raw(text + ")"), nil
}
