package vm

// ResetMatch implements `\K`: discards everything matched so far for
// the purpose of the reported overall match start, without affecting
// captures already recorded. Grounded on RegexResetMatch.
type ResetMatch struct{}

func (ResetMatch) Match(e *Engine, pos int, k Cont) bool {
	oldStart, hadOld := e.EffectiveStart, e.EffectiveStartSet
	e.EffectiveStart = pos
	e.EffectiveStartSet = true
	if k(pos) {
		return true
	}
	e.EffectiveStart, e.EffectiveStartSet = oldStart, hadOld
	return false
}
