package uregex

import "github.com/coregx/uregex/vm"

// submatchIndex flattens one match result into the [start0 end0 start1
// end1 ...] form FindSubmatchIndex returns, with -1/-1 for groups that
// never captured.
func (re *Regex) submatchIndex(res *vm.Result) []int {
	out := make([]int, 2*(re.prog.NumGroups+1))
	out[0], out[1] = res.Start, res.End
	for g := 1; g <= re.prog.NumGroups; g++ {
		if g < len(res.Groups) && len(res.Groups[g]) > 0 {
			last := res.Groups[g][len(res.Groups[g])-1]
			out[2*g], out[2*g+1] = last.Start, last.End
		} else {
			out[2*g], out[2*g+1] = -1, -1
		}
	}
	return out
}

// FindIndexError is FindIndex, additionally surfacing a
// LimitExceededError if the attempt aborted.
func (re *Regex) FindIndexError(b []byte) ([]int, error) {
	res, err := re.findFrom(b, re.searchStart(b))
	if err != nil || res == nil {
		return nil, err
	}
	return []int{res.Start, res.End}, nil
}

// FindIndex returns the byte range of the leftmost match, or nil if
// there is none.
func (re *Regex) FindIndex(b []byte) []int {
	idx, _ := re.FindIndexError(b)
	return idx
}

// Find returns the leftmost match in b, or nil if there is none.
func (re *Regex) Find(b []byte) []byte {
	idx := re.FindIndex(b)
	if idx == nil {
		return nil
	}
	return b[idx[0]:idx[1]]
}

// FindString is Find for a string subject.
func (re *Regex) FindString(s string) string {
	b := re.Find([]byte(s))
	if b == nil {
		return ""
	}
	return string(b)
}

// FindStringIndex is FindIndex for a string subject.
func (re *Regex) FindStringIndex(s string) []int { return re.FindIndex([]byte(s)) }

// FindSubmatchIndexError is FindSubmatchIndex, additionally surfacing
// a LimitExceededError if the attempt aborted.
func (re *Regex) FindSubmatchIndexError(b []byte) ([]int, error) {
	res, err := re.findFrom(b, re.searchStart(b))
	if err != nil || res == nil {
		return nil, err
	}
	return re.submatchIndex(res), nil
}

// FindSubmatchIndex returns index pairs for the match and every
// capturing group, ordered [start0 end0 start1 end1 ...]. A group
// that never captured gets [-1 -1].
func (re *Regex) FindSubmatchIndex(b []byte) []int {
	idx, _ := re.FindSubmatchIndexError(b)
	return idx
}

// FindStringSubmatchIndex is FindSubmatchIndex for a string subject.
func (re *Regex) FindStringSubmatchIndex(s string) []int {
	return re.FindSubmatchIndex([]byte(s))
}

// FindSubmatch returns the match and every capturing group's text,
// indexed by group number; a group that never captured is nil.
func (re *Regex) FindSubmatch(b []byte) [][]byte {
	idx := re.FindSubmatchIndex(b)
	if idx == nil {
		return nil
	}
	out := make([][]byte, len(idx)/2)
	for i := range out {
		s, e := idx[2*i], idx[2*i+1]
		if s < 0 {
			continue
		}
		out[i] = b[s:e]
	}
	return out
}

// FindStringSubmatch is FindSubmatch for a string subject.
func (re *Regex) FindStringSubmatch(s string) []string {
	m := re.FindSubmatch([]byte(s))
	if m == nil {
		return nil
	}
	out := make([]string, len(m))
	for i, g := range m {
		if g != nil {
			out[i] = string(g)
		}
	}
	return out
}
