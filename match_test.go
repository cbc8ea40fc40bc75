package pregex

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHasMatch(t *testing.T) {
	p := Must(Digit().OneOrMore(true))

	ok, err := p.HasMatch("order 66")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = p.HasMatch("no digits here")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestIsExactMatch(t *testing.T) {
	p := Must(Digit().OneOrMore(true))

	ok, err := p.IsExactMatch("1234")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = p.IsExactMatch("12a34")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestMatches(t *testing.T) {
	p := Must(Digit().OneOrMore(true))

	got, err := p.Matches("4 eggs, 12 plates, 7 cups")
	require.NoError(t, err)
	assert.Equal(t, []string{"4", "12", "7"}, got)
}

func TestMatchLocations(t *testing.T) {
	p := Must(Digit().OneOrMore(true))

	got, err := p.MatchLocations("ab 12 c 345")
	require.NoError(t, err)
	assert.Equal(t, []Location{
		{Text: "12", Start: 3, End: 5},
		{Text: "345", Start: 8, End: 11},
	}, got)
}

func TestCaptures(t *testing.T) {
	key := Must(Must(Letter().OneOrMore(true)).Capture("key"))
	value := Must(Must(Digit().OneOrMore(true)).Capture("value"))
	p := key.Concat(New("=")).Concat(value)

	rows, err := p.Captures("a=1 bb=22")
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"a", "1"}, {"bb", "22"}}, rows)

	named, err := p.NamedCaptures("a=1 bb=22")
	require.NoError(t, err)
	assert.Equal(t, []map[string]string{
		{"key": "a", "value": "1"},
		{"key": "bb", "value": "22"},
	}, named)
}

func TestCaptureLocations(t *testing.T) {
	p := Must(Must(Digit().OneOrMore(true)).Capture(""))

	rows, err := p.CaptureLocations("x 42")
	require.NoError(t, err)
	assert.Equal(t, [][]Location{{{Text: "42", Start: 2, End: 4}}}, rows)
}

func TestUnmatchedCaptureLocations(t *testing.T) {
	// The second group participates only when a dot follows.
	p := Must(Concat(
		Must(Must(Digit().OneOrMore(true)).Capture("")),
		New(".").Concat(Must(Must(Digit().OneOrMore(true)).Capture(""))).Optional(true),
	))

	rows, err := p.CaptureLocations("7")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	require.Len(t, rows[0], 2)
	assert.Equal(t, Location{Text: "7", Start: 0, End: 1}, rows[0][0])
	assert.Equal(t, Location{Start: -1, End: -1}, rows[0][1])
}

func TestReplace(t *testing.T) {
	p := Must(Digit().OneOrMore(true))

	got, err := p.Replace("4 eggs, 12 plates", "N", 0)
	require.NoError(t, err)
	assert.Equal(t, "N eggs, N plates", got)

	got, err = p.Replace("4 eggs, 12 plates", "N", 1)
	require.NoError(t, err)
	assert.Equal(t, "N eggs, 12 plates", got)

	_, err = p.Replace("4 eggs", "N", -1)
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestSplitByMatch(t *testing.T) {
	sep := SomeWhitespace()
	got, err := sep.SplitByMatch("  one two   three ")
	require.NoError(t, err)
	assert.Equal(t, []string{"one", "two", "three"}, got)
}

func TestSplitByCapture(t *testing.T) {
	p := Must(New(",").Capture(""))

	got, err := p.SplitByCapture("a,b,,c")
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, got)
}

func TestCompileIsMemoized(t *testing.T) {
	p := Must(Digit().OneOrMore(true))
	require.NoError(t, p.Compile())
	first := p.compiled
	require.NoError(t, p.Compile())
	assert.Same(t, first, p.compiled)

	ok, err := p.HasMatch("42")
	require.NoError(t, err)
	assert.True(t, ok)
}

// Dot always matches newlines and ^/$ always match line boundaries; neither
// behavior is configurable.
func TestFixedMatchingPolicy(t *testing.T) {
	ok, err := AnyChar().HasMatch("\n")
	require.NoError(t, err)
	assert.True(t, ok, "dot must match a newline")

	p := New("b").MatchAtLineStart()
	got, err := p.Matches("a\nb")
	require.NoError(t, err)
	assert.Equal(t, []string{"b"}, got, "^ must match after a newline")
}

func TestMatchLocationsAreRuneOffsets(t *testing.T) {
	p := Must(Digit().OneOrMore(true))

	got, err := p.MatchLocations("€€ 42")
	require.NoError(t, err)
	assert.Equal(t, []Location{{Text: "42", Start: 3, End: 5}}, got)
}

func TestMatchesInFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "subject.txt")
	require.NoError(t, os.WriteFile(path, []byte("cat 1, cat 2"), 0o644))

	p := New("cat")
	ok, err := p.HasMatchInFile(path)
	require.NoError(t, err)
	assert.True(t, ok)

	got, err := p.MatchesInFile(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"cat", "cat"}, got)

	_, err = p.MatchesInFile(filepath.Join(t.TempDir(), "missing.txt"))
	assert.Error(t, err)
}
