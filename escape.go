package pregex

import "strings"

// escaper rewrites every regex metacharacter into its escaped form in a
// single pass, so backslashes inserted for one metacharacter are never
// re-escaped for another.
var escaper = strings.NewReplacer(
	`\`, `\\`,
	`^`, `\^`,
	`$`, `\$`,
	`(`, `\(`,
	`)`, `\)`,
	`[`, `\[`,
	`]`, `\]`,
	`{`, `\{`,
	`}`, `\}`,
	`?`, `\?`,
	`+`, `\+`,
	`*`, `\*`,
	`.`, `\.`,
	`|`, `\|`,
	`/`, `\/`,
)

// Escape returns text rewritten so that a regex engine matches it as a
// sequence of literal characters.
func Escape(text string) string {
	return escaper.Replace(text)
}
