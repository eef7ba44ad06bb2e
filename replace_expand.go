package uregex

import (
	"bytes"

	"github.com/coregx/uregex/replace"
	"github.com/coregx/uregex/vm"
)

// ReplaceAll returns a copy of src with every non-overlapping match
// replaced by the expansion of template ($name, $1, $&, $`, $', $_,
// $+ and their ${...} forms). It is the byte counterpart of
// ReplaceAllString.
func (re *Regex) ReplaceAll(src []byte, template string) ([]byte, error) {
	tmpl, err := replace.Compile(template, re.prog.Names)
	if err != nil {
		return nil, err
	}
	matches := re.allMatches(src, -1)
	if len(matches) == 0 {
		out := make([]byte, len(src))
		copy(out, src)
		return out, nil
	}
	if re.prog.RightToLeft {
		reverseResults(matches)
	}
	var buf bytes.Buffer
	last := 0
	for _, m := range matches {
		buf.Write(src[last:m.Start])
		buf.Write(tmpl.Expand(&replace.Context{
			Input:      src,
			MatchStart: m.Start,
			MatchEnd:   m.End,
			Groups:     m.Groups,
		}))
		last = m.End
	}
	buf.Write(src[last:])
	return buf.Bytes(), nil
}

// ReplaceAllString is ReplaceAll for a string subject.
func (re *Regex) ReplaceAllString(src, template string) (string, error) {
	out, err := re.ReplaceAll([]byte(src), template)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// ReplaceAllLiteral returns a copy of src with every non-overlapping
// match replaced by repl verbatim, with no $-expansion.
func (re *Regex) ReplaceAllLiteral(src, repl []byte) []byte {
	matches := re.allMatches(src, -1)
	if len(matches) == 0 {
		out := make([]byte, len(src))
		copy(out, src)
		return out
	}
	if re.prog.RightToLeft {
		reverseResults(matches)
	}
	var buf bytes.Buffer
	last := 0
	for _, m := range matches {
		buf.Write(src[last:m.Start])
		buf.Write(repl)
		last = m.End
	}
	buf.Write(src[last:])
	return buf.Bytes()
}

// reverseResults reverses matches in place. allMatches enumerates a
// RightToLeft pattern's matches from the end of the subject backward;
// building replacement output needs them in left-to-right order.
func reverseResults(matches []*vm.Result) {
	for i, j := 0, len(matches)-1; i < j; i, j = i+1, j-1 {
		matches[i], matches[j] = matches[j], matches[i]
	}
}

// ReplaceAllLiteralString is ReplaceAllLiteral for a string subject.
func (re *Regex) ReplaceAllLiteralString(src, repl string) string {
	return string(re.ReplaceAllLiteral([]byte(src), []byte(repl)))
}
