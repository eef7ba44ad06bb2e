// Package ucd defines the Unicode Character Database contract that the
// regex engine and its collaborators (case folding, normalization,
// segmentation) depend on.
//
// Generating or parsing real UCD data files is out of scope for this
// module (see the top-level package documentation); ucd instead defines
// the query surface those files would back, plus one concrete table
// (Std) built from the Go standard library's unicode tables, which is
// good enough to drive the engine's own test suite and a
// zero-configuration default locale.
package ucd

import "unicode"

// Category is the general category of a code point, one of the 30
// values defined by the Unicode standard (Lu, Ll, Lt, Lm, Lo, Mn, Mc,
// Me, Nd, Nl, No, Pc, Pd, Ps, Pe, Pi, Pf, Po, Sm, Sc, Sk, So, Zs, Zl,
// Zp, Cc, Cf, Cs, Co, Cn).
type Category uint8

// The 30 general categories, grouped by super-category.
const (
	Cn Category = iota // unassigned, the zero value
	Lu
	Ll
	Lt
	Lm
	Lo
	Mn
	Mc
	Me
	Nd
	Nl
	No
	Pc
	Pd
	Ps
	Pe
	Pi
	Pf
	Po
	Sm
	Sc
	Sk
	So
	Zs
	Zl
	Zp
	Cc
	Cf
	Cs
	Co
)

// String returns the two-letter abbreviation for the category.
func (c Category) String() string {
	names := [...]string{
		"Cn", "Lu", "Ll", "Lt", "Lm", "Lo", "Mn", "Mc", "Me", "Nd",
		"Nl", "No", "Pc", "Pd", "Ps", "Pe", "Pi", "Pf", "Po", "Sm",
		"Sc", "Sk", "So", "Zs", "Zl", "Zp", "Cc", "Cf", "Cs", "Co",
	}
	if int(c) < len(names) {
		return names[c]
	}
	return "Cn"
}

// IsLetter reports whether the category is one of Lu, Ll, Lt, Lm, Lo.
func (c Category) IsLetter() bool { return c >= Lu && c <= Lo }

// IsWord reports whether the category counts as a "word" code point for
// the purposes of \b / \B: Ll, Lu, Lt, Lo, Lm, Nd, Pc.
func (c Category) IsWord() bool {
	switch c {
	case Ll, Lu, Lt, Lo, Lm, Nd, Pc:
		return true
	default:
		return false
	}
}

// NumericType classifies how a code point's Numeric field should be
// interpreted.
type NumericType uint8

const (
	// NumericNone means the code point has no numeric value.
	NumericNone NumericType = iota
	// NumericDecimal means the code point is a decimal digit usable in
	// a number system (e.g. ASCII '0'-'9', or a script's native digits).
	NumericDecimal
	// NumericDigit means the code point has a digit value but is not
	// part of a decimal digit system (e.g. superscript digits).
	NumericDigit
	// NumericNumeric means the code point has a numeric value that is
	// not necessarily an integer (e.g. vulgar fractions, Roman numerals).
	NumericNumeric
)

// Break classifies a code point for boundary-detection purposes
// (Grapheme_Cluster_Break, Word_Break, Line_Break).
type Break uint8

const (
	BreakOther Break = iota
	BreakCR
	BreakLF
	BreakControl
	BreakExtend
	BreakZWJ
	BreakRegionalIndicator
	BreakSpacingMark
	BreakL
	BreakV
	BreakT
	BreakLV
	BreakLVT
)

// Info is the aggregate of per-code-point properties the engine and its
// collaborators consult.
type Info struct {
	Category            Category
	CombiningClass       uint8
	SimpleLower          rune // 0 if absent
	SimpleUpper          rune
	SimpleTitle          rune
	SimpleFold           rune
	NumericType          NumericType
	NumericValue         float64
	WhiteSpace           bool
	Alphabetic           bool
	Cased                bool
	CaseIgnorable        bool
	HexDigit             bool
	GraphemeClusterBreak Break
	WordBreak            Break
	LineBreak            Break
}

// Table looks up per-code-point information. Implementations must
// support fast lookup; the reference Std implementation delegates to
// the standard library's binary-searched range tables.
type Table interface {
	// Lookup returns the Info for cp and true, or the zero Info and
	// false if cp is unassigned.
	Lookup(cp rune) (Info, bool)
}

// stdTable is the reference Table backed by the standard unicode
// package's tables. It is not a substitute for a generated UCD table
// (it lacks, e.g., full case-folding exceptions and script/block data)
// but it satisfies every property the regex engine actually consults.
type stdTable struct{}

// Std is the default Table, built on the Go standard library's Unicode
// tables rather than a generated UCD snapshot (UCD data-file tooling is
// out of scope, see package doc).
var Std Table = stdTable{}

func category(cp rune) Category {
	switch {
	case unicode.Is(unicode.Lu, cp):
		return Lu
	case unicode.Is(unicode.Ll, cp):
		return Ll
	case unicode.Is(unicode.Lt, cp):
		return Lt
	case unicode.Is(unicode.Lm, cp):
		return Lm
	case unicode.Is(unicode.Lo, cp):
		return Lo
	case unicode.Is(unicode.Mn, cp):
		return Mn
	case unicode.Is(unicode.Mc, cp):
		return Mc
	case unicode.Is(unicode.Me, cp):
		return Me
	case unicode.Is(unicode.Nd, cp):
		return Nd
	case unicode.Is(unicode.Nl, cp):
		return Nl
	case unicode.Is(unicode.No, cp):
		return No
	case unicode.Is(unicode.Pc, cp):
		return Pc
	case unicode.Is(unicode.Pd, cp):
		return Pd
	case unicode.Is(unicode.Ps, cp):
		return Ps
	case unicode.Is(unicode.Pe, cp):
		return Pe
	case unicode.Is(unicode.Pi, cp):
		return Pi
	case unicode.Is(unicode.Pf, cp):
		return Pf
	case unicode.Is(unicode.Po, cp):
		return Po
	case unicode.Is(unicode.Sm, cp):
		return Sm
	case unicode.Is(unicode.Sc, cp):
		return Sc
	case unicode.Is(unicode.Sk, cp):
		return Sk
	case unicode.Is(unicode.So, cp):
		return So
	case unicode.Is(unicode.Zs, cp):
		return Zs
	case unicode.Is(unicode.Zl, cp):
		return Zl
	case unicode.Is(unicode.Zp, cp):
		return Zp
	case unicode.Is(unicode.Cc, cp):
		return Cc
	case unicode.Is(unicode.Cf, cp):
		return Cf
	case unicode.Is(unicode.Co, cp):
		return Co
	default:
		return Cn
	}
}

func graphemeBreak(cp rune) Break {
	switch {
	case cp == '\r':
		return BreakCR
	case cp == '\n':
		return BreakLF
	case cp >= 0x1100 && cp <= 0x115F, cp >= 0xA960 && cp <= 0xA97C:
		return BreakL
	case cp >= 0x1160 && cp <= 0x11A7, cp >= 0xD7B0 && cp <= 0xD7C6:
		return BreakV
	case cp >= 0x11A8 && cp <= 0x11FF, cp >= 0xD7CB && cp <= 0xD7FB:
		return BreakT
	case isHangulLVT(cp):
		return BreakLVT
	case isHangulLV(cp):
		return BreakLV
	case cp == 0x200D:
		return BreakZWJ
	case cp >= 0x1F1E6 && cp <= 0x1F1FF:
		return BreakRegionalIndicator
	case unicode.Is(unicode.Mn, cp), unicode.Is(unicode.Me, cp):
		return BreakExtend
	case unicode.Is(unicode.Mc, cp):
		return BreakSpacingMark
	case unicode.Is(unicode.Cc, cp):
		return BreakControl
	default:
		return BreakOther
	}
}

// isHangulLV/isHangulLVT derive Hangul syllable decomposition directly
// from the Unicode syllable arithmetic: every precomposed Hangul
// syllable's LV/LVT-ness is fully determined by its code point, not a
// heuristic over its Jamo composition.
const (
	hangulSBase = 0xAC00
	hangulLCount = 19
	hangulVCount = 21
	hangulTCount = 28
	hangulNCount = hangulVCount * hangulTCount
	hangulSCount = hangulLCount * hangulNCount
)

func isHangulLV(cp rune) bool {
	if cp < hangulSBase || cp >= hangulSBase+hangulSCount {
		return false
	}
	return (cp-hangulSBase)%hangulTCount == 0
}

func isHangulLVT(cp rune) bool {
	if cp < hangulSBase || cp >= hangulSBase+hangulSCount {
		return false
	}
	return (cp-hangulSBase)%hangulTCount != 0
}

func lineBreak(cp rune) Break {
	switch cp {
	case '\r':
		return BreakCR
	case '\n':
		return BreakLF
	default:
		return BreakOther
	}
}

func (stdTable) Lookup(cp rune) (Info, bool) {
	if cp < 0 || cp > 0x10FFFF || (cp >= 0xD800 && cp <= 0xDFFF) {
		return Info{}, false
	}

	cat := category(cp)

	info := Info{
		Category:             cat,
		WhiteSpace:           unicode.IsSpace(cp),
		Alphabetic:           unicode.IsLetter(cp) || unicode.Is(unicode.Other_Alphabetic, cp),
		Cased:                cat == Lu || cat == Ll || cat == Lt,
		CaseIgnorable:        cat == Mn || cat == Me || cat == Cf || cat == Lm || cat == Sk,
		HexDigit:             (cp >= '0' && cp <= '9') || (cp >= 'a' && cp <= 'f') || (cp >= 'A' && cp <= 'F'),
		GraphemeClusterBreak: graphemeBreak(cp),
		WordBreak:            graphemeBreak(cp),
		LineBreak:            lineBreak(cp),
	}

	if lower := unicode.ToLower(cp); lower != cp {
		info.SimpleLower = lower
	}
	if upper := unicode.ToUpper(cp); upper != cp {
		info.SimpleUpper = upper
	}
	if title := unicode.ToTitle(cp); title != cp {
		info.SimpleTitle = title
	}
	if fold := unicode.SimpleFold(cp); fold != cp {
		info.SimpleFold = fold
	}

	if digit, ok := decimalValue(cp); ok {
		info.NumericType = NumericDecimal
		info.NumericValue = float64(digit)
	}

	return info, true
}

func decimalValue(cp rune) (int, bool) {
	if cp >= '0' && cp <= '9' {
		return int(cp - '0'), true
	}
	if !unicode.Is(unicode.Nd, cp) {
		return 0, false
	}
	// Every Unicode decimal-digit block is 10 consecutive code points
	// starting at the block's zero; derive the value from the nearest
	// preceding code point whose category stops being Nd.
	base := cp
	for base > 0 && unicode.Is(unicode.Nd, base-1) {
		base--
	}
	if d := int(cp - base); d < 10 {
		return d, true
	}
	return 0, false
}
