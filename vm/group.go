package vm

// Group is a non-capturing group: parentheses purely for precedence
// and quantification, grounded on RegexGroup.
type Group struct {
	Inner Element
}

func (g *Group) Match(e *Engine, pos int, k Cont) bool {
	return g.Inner.Match(e, pos, k)
}

// CapturingGroup records a (start, end) pair under Key each time it
// matches, pushing before handing control to the rest of the pattern
// and popping again if that rest ultimately fails — the capture-stack
// discipline from RegexCapturingGroup, expressed here as
// push-before-continue / pop-on-continuation-failure instead of an
// explicit Rewind callback.
type CapturingGroup struct {
	Key   int
	Inner Element
}

func (g *CapturingGroup) Match(e *Engine, pos int, k Cont) bool {
	return g.Inner.Match(e, pos, func(end int) bool {
		e.PushCapture(g.Key, pos, end)
		if k(end) {
			return true
		}
		e.PopCapture(g.Key)
		return false
	})
}

// BalancingGroup implements the .NET-style `(?<push-pop>...)` balancing
// group construct: matching pops the most recent capture from Pop,
// computes a new capture spanning from that popped capture's nearer
// endpoint (its end) to the current position, and pushes it onto Push.
// Failure restores both stacks to their prior state, per
// RegexBalancing's push/pop/save/restore sequence.
type BalancingGroup struct {
	Push, Pop int
	Inner     Element
}

func (g *BalancingGroup) Match(e *Engine, pos int, k Cont) bool {
	popped := e.Match.Groups[g.Pop]
	if len(popped) == 0 {
		return false
	}
	last := popped[len(popped)-1]
	e.Match.Groups[g.Pop] = popped[:len(popped)-1]
	e.PushCapture(g.Push, last.End, pos)

	ok := g.Inner.Match(e, pos, k)
	if !ok {
		e.PopCapture(g.Push)
		e.Match.Groups[g.Pop] = append(e.Match.Groups[g.Pop], last)
	}
	return ok
}

// Atomic runs Inner and commits to its first successful match: once
// found, the rest of the pattern is tried exactly once against that
// result, with no further backtracking back into Inner on failure,
// matching `(?>...)` semantics from RegexAtomicGroup.
type Atomic struct {
	Inner Element
}

func (a *Atomic) Match(e *Engine, pos int, k Cont) bool {
	matched := false
	var end int
	a.Inner.Match(e, pos, func(p int) bool {
		matched = true
		end = p
		return true
	})
	if !matched {
		return false
	}
	return k(end)
}
