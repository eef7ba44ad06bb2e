package uregex

import (
	"github.com/coregx/uregex/literal"
	"github.com/coregx/uregex/vm"
)

// requiredPrefix walks a compiled pattern tree and returns the longest
// run of code points guaranteed to appear literally at the start of
// every match, stopping at the first construct that isn't a plain
// required literal (a quantifier that can match zero times, an
// alternation, a character class, and so on).
//
// This surfaces a cheap necessary condition a prefilter can check
// before paying for a full backtracking attempt. Because this pattern
// language allows backreferences, lookaround and recursion, none of
// which a literal algebra can reason about soundly, the extraction
// here deliberately stops at the first capturing group or alternation
// rather than building a full prefix/suffix lattice; see DESIGN.md.
func requiredPrefix(root vm.Element) []rune {
	var out []rune
	cur := root
	for {
		switch v := cur.(type) {
		case *vm.Literal:
			// A case-insensitive literal isn't safe for an exact-byte
			// prefilter: the matching text may use different case than
			// what's stored here, and a prefilter that never proposes
			// that position would cause vm.Exec to never even be tried.
			if v.IgnoreCase {
				return out
			}
			return append(out, v.Runes...)
		case *vm.Seq:
			if len(v.Elems) == 0 {
				return out
			}
			lit, ok := v.Elems[0].(*vm.Literal)
			if !ok || lit.IgnoreCase {
				return append(out, requiredPrefix(v.Elems[0])...)
			}
			out = append(out, lit.Runes...)
			if len(v.Elems) == 1 {
				return out
			}
			cur = &vm.Seq{Elems: v.Elems[1:]}
		case *vm.Group:
			cur = v.Inner
		case *vm.CapturingGroup:
			return append(out, requiredPrefix(v.Inner)...)
		case *vm.Atomic:
			return append(out, requiredPrefix(v.Inner)...)
		case *vm.Multiple:
			if v.Min >= 1 {
				return append(out, requiredPrefix(v.Sub)...)
			}
			return out
		default:
			return out
		}
	}
}

// unwrapGroup peels transparent non-capturing groups off root, since
// they don't affect what a branch matches.
func unwrapGroup(root vm.Element) vm.Element {
	for {
		g, ok := root.(*vm.Group)
		if !ok {
			return root
		}
		root = g.Inner
	}
}

// requiredLiteralSet recognizes a root-level alternation between
// fixed literals (e.g. `cat|dog|bird`) and returns the set of
// branches as a literal.Seq, or nil if root isn't that shape.
// Every branch must reduce to exactly one case-sensitive literal
// covering the whole branch — anything less exact (a branch with its
// own internal alternation, a quantifier, a capturing group) falls
// back to the conservative single-prefix extraction in
// requiredPrefix instead.
func requiredLiteralSet(root vm.Element) *literal.Seq {
	alt, ok := unwrapGroup(root).(*vm.Alternation)
	if !ok || len(alt.Branches) < 2 {
		return nil
	}
	lits := make([]literal.Literal, 0, len(alt.Branches))
	for _, branch := range alt.Branches {
		lit, ok := unwrapGroup(branch).(*vm.Literal)
		if !ok || lit.IgnoreCase || len(lit.Runes) == 0 {
			return nil
		}
		lits = append(lits, literal.NewLiteral([]byte(string(lit.Runes)), true))
	}
	return literal.NewSeq(lits...)
}
