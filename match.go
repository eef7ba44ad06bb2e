package uregex

// searchStart returns the position the first search attempt begins
// at: the left edge for a forward pattern, the right edge for a
// RightToLeft one.
func (re *Regex) searchStart(b []byte) int {
	if re.prog.RightToLeft {
		return len(b)
	}
	return 0
}

// MatchError reports whether b contains any match of the pattern. The
// returned error is non-nil only when the attempt aborted for
// exceeding the bound Config's limits (a LimitExceededError); such an
// abort is reported as no match (false) alongside the error.
func (re *Regex) MatchError(b []byte) (bool, error) {
	res, err := re.findFrom(b, re.searchStart(b))
	return res != nil, err
}

// Match reports whether b contains any match of the pattern. A match
// attempt aborted by a resource limit is treated as no match; use
// MatchError to observe the limit error instead.
func (re *Regex) Match(b []byte) bool {
	ok, _ := re.MatchError(b)
	return ok
}

// MatchString is Match for a string subject.
func (re *Regex) MatchString(s string) bool { return re.Match([]byte(s)) }

// Match reports whether b contains any match of pattern, compiling it
// with default options each call. Prefer Compile and reuse the
// *Regex for repeated matching.
func Match(pattern string, b []byte) (bool, error) {
	re, err := Compile(pattern)
	if err != nil {
		return false, err
	}
	return re.Match(b), nil
}

// MatchString is Match for a string subject.
func MatchString(pattern, s string) (bool, error) {
	return Match(pattern, []byte(s))
}
