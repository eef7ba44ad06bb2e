package uregex

import "strings"

// escapeSet is the set of characters this pattern language treats as
// metacharacters in at least one mode, the same set the reference
// implementation's Regex.Escape guards against: the core
// metacharacters plus '#' and whitespace, which only become special
// under IgnorePatternWhiteSpace but are escaped unconditionally so
// Escape's output is safe regardless of the options the caller
// eventually compiles it with.
const escapeSet = "\\*+?|{[()^$.# \t\n\r\f\v"

// Escape returns a copy of s with every pattern metacharacter
// backslash-escaped, suitable for splicing a literal string into a
// larger pattern.
func Escape(s string) string {
	if !strings.ContainsAny(s, escapeSet) {
		return s
	}
	var b strings.Builder
	b.Grow(len(s) + 8)
	for _, r := range s {
		if strings.ContainsRune(escapeSet, r) {
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}
