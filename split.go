package uregex

// Split slices s into substrings separated by matches of the pattern,
// returning the slice of those substrings between matches. n controls
// how many substrings to return: n > 0 limits the result to n
// substrings (the last one unsplit); n == 0 returns nil; n < 0
// returns every substring, the stdlib regexp.Split convention.
func (re *Regex) Split(s string, n int) []string {
	if n == 0 {
		return nil
	}
	b := []byte(s)
	matches := re.allMatches(b, -1)
	if len(matches) == 0 {
		return []string{s}
	}
	if re.prog.RightToLeft {
		reverseResults(matches)
	}
	var out []string
	last := 0
	for _, m := range matches {
		if n > 0 && len(out) == n-1 {
			break
		}
		if m.Start == 0 && m.End == 0 {
			// A zero-width match at the very start produces no
			// leading empty field, matching stdlib regexp.Split.
			continue
		}
		out = append(out, s[last:m.Start])
		last = m.End
	}
	out = append(out, s[last:])
	return out
}
