package vm

// Recursion re-invokes another part of the same compiled pattern,
// either the whole pattern (`(?R)`/`(?0)`) or a specific capturing
// group's contents (`(?1)`, `(?&name)`, relative forms), grounded on
// RegexRecurseAbsoluteGroup / RegexRecurseRelativeGroup.
//
// Target is resolved at compile time to the Element to re-enter; Slot
// is a small dense index (distinct per distinct recursion target,
// assigned by the compiler) used by the engine's recursion guard to
// detect left recursion cheaply.
type Recursion struct {
	Target Element
	Slot   uint32
}

func (r *Recursion) Match(e *Engine, pos int, k Cont) bool {
	if !e.step() {
		return false
	}
	if e.Config.MaxRecursionDepth > 0 && e.Depth() >= e.Config.MaxRecursionDepth {
		return false
	}
	if !e.EnterRecursion(r.Slot, pos) {
		return false
	}
	ok := r.Target.Match(e, pos, k)
	e.LeaveRecursion(r.Slot)
	return ok
}
