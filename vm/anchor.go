package vm

// AnchorKind identifies which zero-width position assertion an Anchor
// tests. Grounded on a family of one-struct-per-assertion anchor
// elements (RegexBegin, RegexBeginLine, RegexEnd, …), collapsed here
// into a single type with a kind tag in the idiom of this module's
// other closed-enum pattern elements.
type AnchorKind uint8

const (
	// Begin is \A: the absolute start of input.
	Begin AnchorKind = iota
	// BeginLine is ^: absolute start, or immediately after a line
	// terminator.
	BeginLine
	// End is \z: the absolute end of input.
	End
	// EndNewline is \Z: the absolute end, or immediately before a
	// single trailing line feed.
	EndNewline
	// EndLine is $ (Multiline): absolute end, end-before-trailing-\n,
	// or immediately before any line terminator.
	EndLine
	// LastMatch is \G: the position the current search attempt began.
	LastMatch
	// WordBoundary is \b.
	WordBoundary
	// NotWordBoundary is \B.
	NotWordBoundary
)

// Anchor is a zero-width position assertion.
type Anchor struct {
	Kind AnchorKind
}

func (a *Anchor) Match(e *Engine, pos int, k Cont) bool {
	if !e.step() {
		return false
	}
	if !a.holds(e, pos) {
		return false
	}
	return k(pos)
}

func (a *Anchor) holds(e *Engine, pos int) bool {
	switch a.Kind {
	case Begin:
		return pos == 0
	case BeginLine:
		if pos == 0 {
			return true
		}
		r, _, ok := e.PeekBackward(pos)
		return ok && isLineTerminator(r)
	case End:
		return pos == len(e.Input)
	case EndNewline:
		if pos == len(e.Input) {
			return true
		}
		if pos == len(e.Input)-1 {
			r, _, ok := e.PeekForward(pos)
			return ok && r == '\n'
		}
		return false
	case EndLine:
		if pos == len(e.Input) {
			return true
		}
		r, _, ok := e.PeekForward(pos)
		if !ok {
			return false
		}
		if isLineTerminator(r) {
			return true
		}
		return false
	case LastMatch:
		return pos == e.AnchorPos
	case WordBoundary, NotWordBoundary:
		before, _, beforeOK := e.PeekBackward(pos)
		after, _, afterOK := e.PeekForward(pos)
		isBoundary := e.Locale.Segmenter.IsWordBreak(before, beforeOK, after, afterOK)
		if a.Kind == WordBoundary {
			return isBoundary
		}
		return !isBoundary
	default:
		return false
	}
}
