package vm

import "github.com/coregx/uregex/ufold"

// Backref matches the text most recently captured by group Key again,
// literally, at the current position. A group with no captures yet (it
// never matched, or this attempt backtracked past it) makes the
// backreference fail outright, per RegexBackreference semantics.
type Backref struct {
	Key        int
	IgnoreCase bool
}

func (b *Backref) Match(e *Engine, pos int, k Cont) bool {
	if !e.step() {
		return false
	}
	caps := e.Match.Groups[b.Key]
	if len(caps) == 0 {
		return false
	}
	last := caps[len(caps)-1]
	runes := []rune(string(e.Input[last.Start:last.End]))

	cur := pos
	n := len(runes)
	for i := 0; i < n; i++ {
		idx := i
		if e.Dir == Backward {
			idx = n - 1 - i
		}
		r, w, ok := e.DecodeRune(cur)
		if !ok || !b.runeEquals(e, r, runes[idx]) {
			return false
		}
		cur = e.Advance(cur, w)
	}
	return k(cur)
}

func (b *Backref) runeEquals(e *Engine, got, want rune) bool {
	if got == want {
		return true
	}
	if !b.IgnoreCase {
		return false
	}
	conv := e.Locale.CaseFold
	if conv == nil {
		conv = ufold.Default
	}
	return conv.SimpleFold(got) == conv.SimpleFold(want)
}
