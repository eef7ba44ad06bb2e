package vm

// Alternation tries each branch in order, only moving to the next
// branch once the current one is exhausted (its own internal
// backtracking, if any, has been fully explored against the
// continuation), grounded on RegexAlternation's begin/end-iterator
// walk over its branch list.
type Alternation struct {
	Branches []Element
}

func (a *Alternation) Match(e *Engine, pos int, k Cont) bool {
	if !e.step() {
		return false
	}
	for _, branch := range a.Branches {
		if branch.Match(e, pos, k) {
			return true
		}
	}
	return false
}
