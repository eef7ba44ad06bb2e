package uregex

import "github.com/coregx/uregex/vm"

// allMatches returns up to n non-overlapping matches (n < 0 means all
// of them), scanning forward or backward to match the pattern's
// direction. A RightToLeft pattern enumerates matches from the end of
// b towards the start, the same order RightToLeft's Matches() method
// uses; zero-width matches advance one rune so the scan always makes
// progress.
func (re *Regex) allMatches(b []byte, n int) []*vm.Result {
	var out []*vm.Result
	if re.prog.RightToLeft {
		pos := len(b)
		for n < 0 || len(out) < n {
			res, err := re.findFrom(b, pos)
			if err != nil || res == nil {
				break
			}
			out = append(out, res)
			if res.Start == res.End {
				if res.Start == 0 {
					break
				}
				pos = prevRuneBoundary(b, res.Start)
			} else {
				pos = res.Start
			}
		}
		return out
	}
	pos := 0
	for n < 0 || len(out) < n {
		res, err := re.findFrom(b, pos)
		if err != nil || res == nil {
			break
		}
		out = append(out, res)
		if res.End == res.Start {
			if res.End >= len(b) {
				break
			}
			pos = nextRuneBoundary(b, res.End)
		} else {
			pos = res.End
		}
	}
	return out
}

// FindAllIndex is FindIndex but returns every non-overlapping match
// in b, up to n (n < 0 for all of them), or nil if there is none.
func (re *Regex) FindAllIndex(b []byte, n int) [][]int {
	matches := re.allMatches(b, n)
	if len(matches) == 0 {
		return nil
	}
	out := make([][]int, len(matches))
	for i, m := range matches {
		out[i] = []int{m.Start, m.End}
	}
	return out
}

// FindAll is Find but returns every non-overlapping match in b, up to
// n (n < 0 for all of them), or nil if there is none.
func (re *Regex) FindAll(b []byte, n int) [][]byte {
	idx := re.FindAllIndex(b, n)
	if idx == nil {
		return nil
	}
	out := make([][]byte, len(idx))
	for i, p := range idx {
		out[i] = b[p[0]:p[1]]
	}
	return out
}

// FindAllString is FindAll for a string subject.
func (re *Regex) FindAllString(s string, n int) []string {
	b := re.FindAll([]byte(s), n)
	if b == nil {
		return nil
	}
	out := make([]string, len(b))
	for i, g := range b {
		out[i] = string(g)
	}
	return out
}

// FindAllStringIndex is FindAllIndex for a string subject.
func (re *Regex) FindAllStringIndex(s string, n int) [][]int {
	return re.FindAllIndex([]byte(s), n)
}

// FindAllSubmatchIndex is FindSubmatchIndex but returns every
// non-overlapping match, up to n (n < 0 for all of them).
func (re *Regex) FindAllSubmatchIndex(b []byte, n int) [][]int {
	matches := re.allMatches(b, n)
	if len(matches) == 0 {
		return nil
	}
	out := make([][]int, len(matches))
	for i, m := range matches {
		out[i] = re.submatchIndex(m)
	}
	return out
}

// FindAllStringSubmatchIndex is FindAllSubmatchIndex for a string
// subject.
func (re *Regex) FindAllStringSubmatchIndex(s string, n int) [][]int {
	return re.FindAllSubmatchIndex([]byte(s), n)
}

// FindAllSubmatch is FindSubmatch but returns every non-overlapping
// match, up to n (n < 0 for all of them).
func (re *Regex) FindAllSubmatch(b []byte, n int) [][][]byte {
	idx := re.FindAllSubmatchIndex(b, n)
	if idx == nil {
		return nil
	}
	out := make([][][]byte, len(idx))
	for i, pairs := range idx {
		groups := make([][]byte, len(pairs)/2)
		for g := range groups {
			s, e := pairs[2*g], pairs[2*g+1]
			if s < 0 {
				continue
			}
			groups[g] = b[s:e]
		}
		out[i] = groups
	}
	return out
}

// FindAllStringSubmatch is FindAllSubmatch for a string subject.
func (re *Regex) FindAllStringSubmatch(s string, n int) [][]string {
	b := []byte(s)
	m := re.FindAllSubmatch(b, n)
	if m == nil {
		return nil
	}
	out := make([][]string, len(m))
	for i, groups := range m {
		row := make([]string, len(groups))
		for g, v := range groups {
			if v != nil {
				row[g] = string(v)
			}
		}
		out[i] = row
	}
	return out
}
