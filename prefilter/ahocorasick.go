package prefilter

import (
	"github.com/coregx/ahocorasick"
	"github.com/coregx/uregex/literal"
)

// ahoCorasickPrefilter wraps an ahocorasick.Automaton as a Prefilter,
// for alternations with more literals than Teddy's SIMD lanes can
// hold: build the automaton once at compile time, then do a single
// O(n) scan per search instead of scanning once per literal.
type ahoCorasickPrefilter struct {
	automaton *ahocorasick.Automaton
	complete  bool
}

// newAhoCorasickPrefilter builds an automaton over seq's literals. It
// returns nil if the automaton fails to build (e.g. too many patterns
// for the implementation's internal limits), leaving the caller to
// fall back to no prefilter at all.
func newAhoCorasickPrefilter(seq *literal.Seq) Prefilter {
	builder := ahocorasick.NewBuilder()
	complete := true
	for i := 0; i < seq.Len(); i++ {
		lit := seq.Get(i)
		builder.AddPattern(lit.Bytes)
		if !lit.Complete {
			complete = false
		}
	}
	automaton, err := builder.Build()
	if err != nil {
		return nil
	}
	return &ahoCorasickPrefilter{automaton: automaton, complete: complete}
}

func (p *ahoCorasickPrefilter) Find(haystack []byte, start int) int {
	if start < 0 || start > len(haystack) {
		return -1
	}
	m := p.automaton.Find(haystack, start)
	if m == nil {
		return -1
	}
	return m.Start
}

// IsComplete reports whether every pattern fed into the automaton was
// itself a complete match, not just a required substring.
func (p *ahoCorasickPrefilter) IsComplete() bool { return p.complete }

// LiteralLen is 0: the automaton's patterns can have differing
// lengths, so the caller cannot compute a match end from Find alone.
func (p *ahoCorasickPrefilter) LiteralLen() int { return 0 }

// HeapBytes is not tracked: the automaton library doesn't expose its
// internal table size.
func (p *ahoCorasickPrefilter) HeapBytes() int { return 0 }
