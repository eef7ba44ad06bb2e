// Package vm implements the backtracking execution core of the regex
// engine: pattern elements, the match-capture bookkeeping, and the
// engine that drives a compiled pattern tree over a byte buffer in
// either direction.
//
// A classic backtracking engine threads an explicit per-element
// state-stack through an iterator-based driver loop (push a frame per
// successfully matched element, pop and Rewind on backtrack); this
// package expresses the identical algorithm as continuation-passing
// Go: each Element.Match receives the remainder of the pattern as a
// Cont closure and calls it however many times the construct needs to
// (zero for a failed literal, once for an anchor, many for a greedy
// quantifier backtracking through its repetition count). Go's own call
// stack takes over the role of the explicit state stack, and a failed
// continuation call is the rewind point: elements undo any capture
// they pushed only on the path where the rest of the pattern did not
// pan out. This is a restructuring for idiomatic Go, not a semantic
// change — see DESIGN.md.
package vm

import (
	"unicode/utf8"

	"github.com/coregx/uregex/internal/sparse"
	"github.com/coregx/uregex/ulocale"
)

// Direction controls which way the engine consumes input, needed for
// right-to-left patterns and lookbehind evaluation.
type Direction int

const (
	Forward Direction = iota
	Backward
)

// Capture is one (start, end) byte-offset pair recorded for a
// capturing or balancing group. Start <= End always, regardless of the
// direction the engine was moving when the capture was recorded.
type Capture struct {
	Start, End int
}

// MatchData holds the capture lists accumulated during one match
// attempt, indexed by group number. Group 0 is reserved for the entire
// match and is populated by the caller, not by vm itself.
type MatchData struct {
	Groups [][]Capture
}

// NewMatchData allocates a MatchData with room for numGroups non-zero
// group slots (callers index 1..numGroups; index 0 is reserved).
func NewMatchData(numGroups int) *MatchData {
	return &MatchData{Groups: make([][]Capture, numGroups+1)}
}

func (m *MatchData) snapshot() []int {
	lens := make([]int, len(m.Groups))
	for i, g := range m.Groups {
		lens[i] = len(g)
	}
	return lens
}

func (m *MatchData) restore(lens []int) {
	for i, n := range lens {
		if n < len(m.Groups[i]) {
			m.Groups[i] = m.Groups[i][:n]
		}
	}
}

// Config bounds the resources one match attempt may consume.
type Config struct {
	// MaxRecursionDepth bounds (?N)-style pattern recursion nesting.
	MaxRecursionDepth int
	// MaxBacktrackSteps bounds total element invocations per top-level
	// match attempt, a circuit breaker against catastrophic
	// backtracking. Zero means unbounded.
	MaxBacktrackSteps int
}

// DefaultConfig returns conservative limits suitable for matching
// untrusted patterns against untrusted input.
func DefaultConfig() Config {
	return Config{
		MaxRecursionDepth: 100,
		MaxBacktrackSteps: 50_000_000,
	}
}

// Cont is the remainder of the pattern to satisfy, given the cursor
// position after whatever the calling Element just consumed. It
// returns true if the remainder (and everything after it, up to the
// top of the pattern) was satisfied.
type Cont func(pos int) bool

// Element is one node of a compiled pattern tree.
type Element interface {
	// Match attempts this element at pos and, for every way it can
	// succeed, calls k with the resulting position. Match returns true
	// as soon as some attempt's k call returns true; it returns false
	// if no attempt (including whatever k does with it) succeeds.
	Match(e *Engine, pos int, k Cont) bool
}

// LimitExceededError is returned (via Engine.Err) when a match
// attempt is aborted for exceeding Config.MaxBacktrackSteps.
type LimitExceededError struct {
	Steps int
}

func (err *LimitExceededError) Error() string {
	return "vm: backtracking step limit exceeded"
}

// Engine carries the mutable state of one match attempt: the input
// buffer, direction, collaborators, capture bookkeeping, and the
// recursion guard.
type Engine struct {
	Input  []byte
	Dir    Direction
	Locale ulocale.Locale
	Config Config
	Match  *MatchData

	// AnchorPos is the position \G anchors against: normally the
	// offset the current search attempt started from.
	AnchorPos int

	// EffectiveStart, when EffectiveStartSet, overrides the reported
	// start of the overall match (set by \K).
	EffectiveStart    int
	EffectiveStartSet bool

	depth int
	steps int
	err   error

	recActive    *sparse.SparseSet
	recPositions map[uint32][]int
}

// NewEngine builds an Engine ready to attempt a match of pattern
// against input starting logically at anchorPos, recording captures
// into match.
func NewEngine(input []byte, dir Direction, locale ulocale.Locale, cfg Config, match *MatchData, anchorPos int, recursionSlots int) *Engine {
	if recursionSlots < 1 {
		recursionSlots = 1
	}
	return &Engine{
		Input:        input,
		Dir:          dir,
		Locale:       locale,
		Config:       cfg,
		Match:        match,
		AnchorPos:    anchorPos,
		recActive:    sparse.NewSparseSet(uint32(recursionSlots)),
		recPositions: make(map[uint32][]int),
	}
}

// Err returns the error (currently only a backtrack-limit overrun)
// that aborted the most recent Match call, if any.
func (e *Engine) Err() error { return e.err }

// step counts one element invocation for the backtrack-step circuit
// breaker and reports whether the limit (if any) has been exceeded.
func (e *Engine) step() bool {
	if e.Config.MaxBacktrackSteps <= 0 {
		return true
	}
	e.steps++
	if e.steps > e.Config.MaxBacktrackSteps {
		e.err = &LimitExceededError{Steps: e.steps}
		return false
	}
	return true
}

// DecodeRune reads the code point adjacent to pos in the engine's
// current direction: forward decodes starting at pos; backward decodes
// the rune ending at pos. ok is false at the relevant end of input.
func (e *Engine) DecodeRune(pos int) (r rune, width int, ok bool) {
	if e.Dir == Forward {
		if pos >= len(e.Input) {
			return 0, 0, false
		}
		r, width = utf8.DecodeRune(e.Input[pos:])
		return r, width, true
	}
	if pos <= 0 {
		return 0, 0, false
	}
	r, width = utf8.DecodeLastRune(e.Input[:pos])
	return r, width, true
}

// PeekForward decodes the code point starting at pos in absolute
// (left-to-right) order, independent of e.Dir. Anchors and \b need
// absolute-direction lookups regardless of which way the engine is
// currently consuming.
func (e *Engine) PeekForward(pos int) (r rune, width int, ok bool) {
	if pos >= len(e.Input) {
		return 0, 0, false
	}
	r, width = utf8.DecodeRune(e.Input[pos:])
	return r, width, true
}

// PeekBackward decodes the code point ending at pos in absolute order.
func (e *Engine) PeekBackward(pos int) (r rune, width int, ok bool) {
	if pos <= 0 {
		return 0, 0, false
	}
	r, width = utf8.DecodeLastRune(e.Input[:pos])
	return r, width, true
}

// Advance moves pos by width in the engine's current direction.
func (e *Engine) Advance(pos, width int) int {
	if e.Dir == Forward {
		return pos + width
	}
	return pos - width
}

// NormalizeRange returns (a, b) reordered so the first return value is
// the lesser, matching the capture-range invariant that Start <= End
// regardless of which direction produced the pair.
func NormalizeRange(a, b int) (int, int) {
	if a <= b {
		return a, b
	}
	return b, a
}

// PushCapture appends a capture to group key's list.
func (e *Engine) PushCapture(key int, a, b int) {
	start, end := NormalizeRange(a, b)
	e.Match.Groups[key] = append(e.Match.Groups[key], Capture{start, end})
}

// PopCapture removes the most recently pushed capture from group key's
// list. It is the caller's responsibility to only call this to undo a
// PushCapture it performed.
func (e *Engine) PopCapture(key int) {
	g := e.Match.Groups[key]
	e.Match.Groups[key] = g[:len(g)-1]
}

// Snapshot/Restore let a construct (lookaround, conditional) discard
// every capture pushed since the snapshot if its overall attempt did
// not pan out.
func (e *Engine) Snapshot() []int   { return e.Match.snapshot() }
func (e *Engine) Restore(s []int)   { e.Match.restore(s) }

// EnterRecursion registers that the pattern element identified by slot
// is now active at pos. It returns false (refusing entry) if that
// exact (slot, pos) pair is already active, which means the pattern
// recurses into itself without consuming input — left recursion that
// would otherwise recurse forever.
func (e *Engine) EnterRecursion(slot uint32, pos int) bool {
	if e.recActive.Contains(slot) {
		for _, p := range e.recPositions[slot] {
			if p == pos {
				return false
			}
		}
	}
	e.recActive.Insert(slot)
	e.recPositions[slot] = append(e.recPositions[slot], pos)
	e.depth++
	return true
}

// LeaveRecursion undoes the matching EnterRecursion call.
func (e *Engine) LeaveRecursion(slot uint32) {
	e.depth--
	ps := e.recPositions[slot]
	ps = ps[:len(ps)-1]
	if len(ps) == 0 {
		delete(e.recPositions, slot)
		e.recActive.Remove(slot)
	} else {
		e.recPositions[slot] = ps
	}
}

// Depth returns the current pattern-recursion nesting depth.
func (e *Engine) Depth() int { return e.depth }

// Run attempts to match root starting at pos, returning the position
// immediately after the match on success.
func Run(e *Engine, root Element, pos int) (end int, ok bool) {
	ok = root.Match(e, pos, func(p int) bool {
		end = p
		return true
	})
	return end, ok
}
