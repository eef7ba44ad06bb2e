package vm

import "github.com/coregx/uregex/ucd"

// SetMember tests a single code point for membership, the building
// block CharClass composes (ranges, categories, nested classes).
type SetMember interface {
	Contains(e *Engine, cp rune) bool
}

// RangeMember is a [Lo,Hi] inclusive test, the charclass-internal
// counterpart of RangeElem (the standalone range Element, which the
// compiler never emits: ranges in this engine only ever occur inside a
// class or as the sole member of one).
type RangeMember struct{ Lo, Hi rune }

func (m RangeMember) Contains(e *Engine, cp rune) bool { return cp >= m.Lo && cp <= m.Hi }

// CategoryMember tests a code point's Unicode general category.
type CategoryMember struct{ Cat ucd.Category }

func (m CategoryMember) Contains(e *Engine, cp rune) bool {
	info, ok := e.Locale.Table.Lookup(cp)
	return ok && info.Category == m.Cat
}

// PredicateMember wraps an arbitrary named boolean property (\s, \d,
// \w and their Unicode-property-escape generalizations).
type PredicateMember struct {
	Name string
	Fn   func(info ucd.Info) bool
}

func (m PredicateMember) Contains(e *Engine, cp rune) bool {
	info, ok := e.Locale.Table.Lookup(cp)
	if !ok {
		return false
	}
	return m.Fn(info)
}

// NegatedMember inverts another member's test.
type NegatedMember struct{ Inner SetMember }

func (m NegatedMember) Contains(e *Engine, cp rune) bool { return !m.Inner.Contains(e, cp) }

// CharClass is a union of members (optionally negated as a whole),
// matching one code point against the union. Case-insensitive
// matching folds the candidate code point, trying both the original
// and the fold against every member.
type CharClass struct {
	Members    []SetMember
	Negate     bool
	IgnoreCase bool
}

func (c *CharClass) Match(e *Engine, pos int, k Cont) bool {
	if !e.step() {
		return false
	}
	cp, w, ok := e.DecodeRune(pos)
	if !ok {
		return false
	}
	if c.contains(e, cp) == c.Negate {
		return false
	}
	return k(e.Advance(pos, w))
}

func (c *CharClass) contains(e *Engine, cp rune) bool {
	if c.containsExact(e, cp) {
		return true
	}
	if !c.IgnoreCase {
		return false
	}
	fold := e.Locale.CaseFold.SimpleFold(cp)
	if fold == cp {
		return false
	}
	return c.containsExact(e, fold)
}

func (c *CharClass) containsExact(e *Engine, cp rune) bool {
	for _, m := range c.Members {
		if m.Contains(e, cp) {
			return true
		}
	}
	return false
}

// Wildcard matches "any code point", excluding line terminators unless
// Singleline is set, per the `.` pattern element.
type Wildcard struct {
	Singleline bool
}

func (w *Wildcard) Match(e *Engine, pos int, k Cont) bool {
	if !e.step() {
		return false
	}
	cp, width, ok := e.DecodeRune(pos)
	if !ok {
		return false
	}
	if !w.Singleline && isLineTerminator(cp) {
		return false
	}
	return k(e.Advance(pos, width))
}

func isLineTerminator(cp rune) bool {
	switch cp {
	case '\n', '\r', 0x0085, 0x2028, 0x2029:
		return true
	default:
		return false
	}
}

// ValidUnicode matches exactly one code point, without the newline
// exclusion Wildcard applies: a "matches any valid code point" element
// distinct from `.` mainly in DOTALL-independent behavior.
type ValidUnicode struct{}

func (ValidUnicode) Match(e *Engine, pos int, k Cont) bool {
	if !e.step() {
		return false
	}
	_, width, ok := e.DecodeRune(pos)
	if !ok {
		return false
	}
	return k(e.Advance(pos, width))
}
