// Package usegment provides the text-segmentation collaborator the
// regex engine consults for \b and \B (through IsWordBreak).
//
// The default implementation is deliberately simplified relative to a
// full UAX#29/UAX#14 implementation. IsGraphemeBreak and IsLineBreak are
// part of the interface, but no pattern element in vm calls them, and
// the pattern compiler has no \X escape.
package usegment

import "github.com/coregx/uregex/ucd"

// Segmenter answers boundary questions between two adjacent code
// points. A nil "adjacent" rune (represented with ok=false) means the
// boundary is at the start or end of the text.
type Segmenter interface {
	// IsWordBreak reports whether a word-boundary exists between prev
	// and next. Either side may be absent (ok=false) to mean
	// start-of-text/end-of-text.
	IsWordBreak(prev rune, prevOK bool, next rune, nextOK bool) bool

	// IsGraphemeBreak reports whether a grapheme-cluster boundary
	// exists between prev and next.
	IsGraphemeBreak(prev rune, prevOK bool, next rune, nextOK bool) bool

	// IsLineBreak reports whether a mandatory line-break boundary
	// exists immediately after cp.
	IsLineBreak(cp rune) bool
}

type defaultSegmenter struct {
	table ucd.Table
}

// Default is the reference Segmenter, built on ucd.Std.
var Default Segmenter = defaultSegmenter{table: ucd.Std}

// NewWithTable builds a Segmenter backed by an arbitrary ucd.Table,
// allowing a caller-supplied locale's code-point table to drive \b
// matching consistently with the rest of that locale.
func NewWithTable(table ucd.Table) Segmenter {
	return defaultSegmenter{table: table}
}

func (d defaultSegmenter) isWordChar(cp rune) bool {
	info, ok := d.table.Lookup(cp)
	if !ok {
		return false
	}
	return info.Category.IsWord()
}

func (d defaultSegmenter) IsWordBreak(prev rune, prevOK bool, next rune, nextOK bool) bool {
	prevWord := prevOK && d.isWordChar(prev)
	nextWord := nextOK && d.isWordChar(next)
	return prevWord != nextWord
}

func (d defaultSegmenter) IsGraphemeBreak(prev rune, prevOK bool, next rune, nextOK bool) bool {
	if !prevOK || !nextOK {
		return true
	}
	pInfo, pOK := d.table.Lookup(prev)
	nInfo, nOK := d.table.Lookup(next)
	if !pOK || !nOK {
		return true
	}
	switch {
	case pInfo.GraphemeClusterBreak == ucd.BreakCR && nInfo.GraphemeClusterBreak == ucd.BreakLF:
		return false
	case nInfo.GraphemeClusterBreak == ucd.BreakExtend:
		return false
	case nInfo.GraphemeClusterBreak == ucd.BreakSpacingMark:
		return false
	case nInfo.GraphemeClusterBreak == ucd.BreakZWJ:
		return false
	case pInfo.GraphemeClusterBreak == ucd.BreakZWJ:
		return false
	case pInfo.GraphemeClusterBreak == ucd.BreakL && (nInfo.GraphemeClusterBreak == ucd.BreakL ||
		nInfo.GraphemeClusterBreak == ucd.BreakV || nInfo.GraphemeClusterBreak == ucd.BreakLV ||
		nInfo.GraphemeClusterBreak == ucd.BreakLVT):
		return false
	case (pInfo.GraphemeClusterBreak == ucd.BreakLV || pInfo.GraphemeClusterBreak == ucd.BreakV) &&
		(nInfo.GraphemeClusterBreak == ucd.BreakV || nInfo.GraphemeClusterBreak == ucd.BreakT):
		return false
	case (pInfo.GraphemeClusterBreak == ucd.BreakLVT || pInfo.GraphemeClusterBreak == ucd.BreakT) &&
		nInfo.GraphemeClusterBreak == ucd.BreakT:
		return false
	case pInfo.GraphemeClusterBreak == ucd.BreakRegionalIndicator && nInfo.GraphemeClusterBreak == ucd.BreakRegionalIndicator:
		return false
	default:
		return true
	}
}

func (d defaultSegmenter) IsLineBreak(cp rune) bool {
	switch cp {
	case '\n', '\v', '\f', 0x0085, 0x2028, 0x2029:
		return true
	default:
		return false
	}
}
