package pregex

import (
	"fmt"

	"github.com/dlclark/regexp2"
)

// matchOptions is the fixed global matching policy: multiline mode and "dot
// matches newline" are always on and never configurable per fragment.
const matchOptions = regexp2.Multiline | regexp2.Singleline

// Compile builds the host-engine form of the pattern and retains it, so
// that every later match uses the compiled pattern. Without an explicit
// Compile call the engine form is built per operation and discarded.
func (p *Pattern) Compile() error {
	if p.compiled != nil {
		return nil
	}
	re, err := regexp2.Compile(p.text, matchOptions)
	if err != nil {
		return fmt.Errorf("compiling %q: %w", p.text, err)
	}
	p.compiled = re
	return nil
}

func (p *Pattern) engine() (*regexp2.Regexp, error) {
	if p.compiled != nil {
		return p.compiled, nil
	}
	re, err := regexp2.Compile(p.text, matchOptions)
	if err != nil {
		return nil, fmt.Errorf("compiling %q: %w", p.text, err)
	}
	return re, nil
}

// Location is a piece of matched text along with its position, in rune
// offsets. An unmatched capture has Start and End of -1.
type Location struct {
	Text  string
	Start int
	End   int
}

func (p *Pattern) forEachMatch(source string, fn func(m *regexp2.Match)) error {
	re, err := p.engine()
	if err != nil {
		return err
	}
	m, err := re.FindStringMatch(source)
	for m != nil && err == nil {
		fn(m)
		m, err = re.FindNextMatch(m)
	}
	return err
}

// HasMatch reports whether at least one match is found within source.
func (p *Pattern) HasMatch(source string) (bool, error) {
	re, err := p.engine()
	if err != nil {
		return false, err
	}
	return re.MatchString(source)
}

// HasMatchInFile is HasMatch with the subject read from the file at path.
func (p *Pattern) HasMatchInFile(path string) (bool, error) {
	source, err := TextFromFile(path)
	if err != nil {
		return false, err
	}
	return p.HasMatch(source)
}

// IsExactMatch reports whether source in its entirety matches the pattern.
func (p *Pattern) IsExactMatch(source string) (bool, error) {
	re, err := regexp2.Compile(`\A(?:`+p.text+`)\z`, matchOptions)
	if err != nil {
		return false, fmt.Errorf("compiling %q: %w", p.text, err)
	}
	return re.MatchString(source)
}

// Matches returns every match found within source, leftmost first.
func (p *Pattern) Matches(source string) ([]string, error) {
	var out []string
	err := p.forEachMatch(source, func(m *regexp2.Match) {
		out = append(out, m.String())
	})
	return out, err
}

// MatchesInFile is Matches with the subject read from the file at path.
func (p *Pattern) MatchesInFile(path string) ([]string, error) {
	source, err := TextFromFile(path)
	if err != nil {
		return nil, err
	}
	return p.Matches(source)
}

// MatchLocations returns every match within source along with its position.
func (p *Pattern) MatchLocations(source string) ([]Location, error) {
	var out []Location
	err := p.forEachMatch(source, func(m *regexp2.Match) {
		out = append(out, Location{Text: m.String(), Start: m.Index, End: m.Index + m.Length})
	})
	return out, err
}

// Captures returns, per match, the text of every capturing group. Groups
// that did not participate in a match are empty.
func (p *Pattern) Captures(source string) ([][]string, error) {
	var out [][]string
	err := p.forEachMatch(source, func(m *regexp2.Match) {
		groups := m.Groups()
		row := make([]string, 0, len(groups)-1)
		for _, g := range groups[1:] {
			row = append(row, g.String())
		}
		out = append(out, row)
	})
	return out, err
}

// CaptureLocations returns, per match, every capturing group along with its
// position. Groups that did not participate carry positions of -1.
func (p *Pattern) CaptureLocations(source string) ([][]Location, error) {
	var out [][]Location
	err := p.forEachMatch(source, func(m *regexp2.Match) {
		groups := m.Groups()
		row := make([]Location, 0, len(groups)-1)
		for _, g := range groups[1:] {
			if len(g.Captures) == 0 {
				row = append(row, Location{Start: -1, End: -1})
				continue
			}
			row = append(row, Location{Text: g.String(), Start: g.Index, End: g.Index + g.Length})
		}
		out = append(out, row)
	})
	return out, err
}

// NamedCaptures returns, per match, the text captured by every named group,
// keyed by name. Groups that did not participate map to the empty string.
func (p *Pattern) NamedCaptures(source string) ([]map[string]string, error) {
	var out []map[string]string
	err := p.forEachMatch(source, func(m *regexp2.Match) {
		row := make(map[string]string)
		for _, g := range m.Groups() {
			if isNumericName(g.Name) {
				continue
			}
			row[g.Name] = g.String()
		}
		out = append(out, row)
	})
	return out, err
}

func isNumericName(name string) bool {
	for _, r := range name {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// Replace substitutes repl for matches within source, left to right. A
// count of zero replaces every match; a negative count is an error.
func (p *Pattern) Replace(source, repl string, count int) (string, error) {
	if count < 0 {
		return "", fmt.Errorf("%w: negative replace count", ErrInvalidArgument)
	}
	if count == 0 {
		count = -1
	}
	re, err := p.engine()
	if err != nil {
		return "", err
	}
	return re.Replace(source, repl, -1, count)
}

// SplitByMatch splits source on every match and returns the non-empty
// pieces in between.
func (p *Pattern) SplitByMatch(source string) ([]string, error) {
	runes := []rune(source)
	var out []string
	index := 0
	err := p.forEachMatch(source, func(m *regexp2.Match) {
		if index != m.Index {
			out = append(out, string(runes[index:m.Index]))
		}
		index = m.Index + m.Length
	})
	if err != nil {
		return nil, err
	}
	if index != len(runes) {
		out = append(out, string(runes[index:]))
	}
	return out, nil
}

// SplitByCapture splits source on every participating capture and returns
// the non-empty pieces in between.
func (p *Pattern) SplitByCapture(source string) ([]string, error) {
	runes := []rune(source)
	var out []string
	index := 0
	err := p.forEachMatch(source, func(m *regexp2.Match) {
		for _, g := range m.Groups()[1:] {
			if len(g.Captures) == 0 {
				continue
			}
			if index != g.Index {
				out = append(out, string(runes[index:g.Index]))
			}
			index = g.Index + g.Length
		}
	})
	if err != nil {
		return nil, err
	}
	if index != len(runes) {
		out = append(out, string(runes[index:]))
	}
	return out, nil
}
