package vm

import "github.com/coregx/uregex/ufold"

// Literal matches a fixed sequence of code points, accumulated by the
// compiler's literal-accumulator parser (successive literal code
// points merge into one Literal element instead of one element per
// rune, mirroring the "Successive" tracking in the reference compiler
// driver).
type Literal struct {
	Runes      []rune
	IgnoreCase bool
}

func (l *Literal) Match(e *Engine, pos int, k Cont) bool {
	if !e.step() {
		return false
	}
	cur := pos
	n := len(l.Runes)
	for i := 0; i < n; i++ {
		idx := i
		if e.Dir == Backward {
			idx = n - 1 - i
		}
		r, w, ok := e.DecodeRune(cur)
		if !ok || !l.runeEquals(e, r, l.Runes[idx]) {
			return false
		}
		cur = e.Advance(cur, w)
	}
	return k(cur)
}

func (l *Literal) runeEquals(e *Engine, got, want rune) bool {
	if got == want {
		return true
	}
	if !l.IgnoreCase {
		return false
	}
	conv := e.Locale.CaseFold
	if conv == nil {
		conv = ufold.Default
	}
	return conv.SimpleFold(got) == conv.SimpleFold(want)
}

// RangeElem matches a single code point falling within [Lo, Hi]
// (inclusive), with optional case-insensitive comparison. It does not
// reorder its endpoints (Lo must not exceed Hi) and compares case folds
// under IgnoreCase.
type RangeElem struct {
	Lo, Hi     rune
	IgnoreCase bool
}

func (r *RangeElem) Match(e *Engine, pos int, k Cont) bool {
	if !e.step() {
		return false
	}
	cp, w, ok := e.DecodeRune(pos)
	if !ok {
		return false
	}
	if !r.contains(e, cp) {
		return false
	}
	return k(e.Advance(pos, w))
}

func (r *RangeElem) contains(e *Engine, cp rune) bool {
	if cp >= r.Lo && cp <= r.Hi {
		return true
	}
	if !r.IgnoreCase {
		return false
	}
	conv := e.Locale.CaseFold
	if conv == nil {
		conv = ufold.Default
	}
	folded := conv.SimpleFold(cp)
	if folded >= r.Lo && folded <= r.Hi {
		return true
	}
	// also check whether folding a boundary-adjacent code point in the
	// range maps back onto cp (fold is not monotonic across a range).
	for c := r.Lo; c <= r.Hi && c-r.Lo < 2048; c++ {
		if conv.SimpleFold(c) == cp {
			return true
		}
	}
	return false
}
