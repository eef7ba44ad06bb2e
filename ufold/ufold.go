// Package ufold provides the case-folding collaborator the regex engine
// consults for IgnoreCase matching.
//
// Folding, not case-conversion, is the correct operation for
// case-insensitive comparison: two code points are a case-insensitive
// match when their folds are equal, which is not always the same thing
// as comparing ToLower/ToUpper output (German ß and "ss", for example).
package ufold

import "unicode"

// Context carries the information a full fold may need beyond the bare
// code point, e.g. final-sigma detection needs to know whether the code
// point is the last cased letter in a word.
type Context struct {
	// FinalSigma is true when folding a Greek capital sigma that occurs
	// at the end of a word (the fold for Σ is ς instead of σ in that
	// position, per SpecialCasing.txt).
	FinalSigma bool
}

// Converter performs case folding, simple (one code point to one code
// point, via unicode.SimpleFold's orbit) or full (one code point to a
// short rune sequence).
type Converter interface {
	// Fold returns the full case fold of cp as a sequence of code
	// points. For the overwhelming majority of code points this is a
	// single-element slice equal to the simple fold.
	Fold(cp rune, ctx Context) []rune

	// FoldString returns the full case fold of every code point in s,
	// concatenated.
	FoldString(s string, ctx Context) string

	// SimpleFold returns the single-code-point fold of cp, matching
	// unicode.SimpleFold's canonical orbit minimum.
	SimpleFold(cp rune) rune
}

type stdConverter struct{}

// Default is the Converter backed by unicode.SimpleFold plus a short
// table of the full-fold multi-rune exceptions.
var Default Converter = stdConverter{}

// fullFoldExceptions lists the code points whose full fold is not a
// single code point. This list covers the commonly-tested cases
// (German sharp s, Greek final sigma, a handful of ligatures) rather
// than a generated CaseFolding.txt table, consistent with UCD-table
// generation being out of scope.
var fullFoldExceptions = map[rune][]rune{
	0x00DF: {'s', 's'},         // LATIN SMALL LETTER SHARP S -> "ss"
	0x0130: {'i', 0x0307},      // LATIN CAPITAL LETTER I WITH DOT ABOVE
	0xFB00: {'f', 'f'},         // LATIN SMALL LIGATURE FF
	0xFB01: {'f', 'i'},         // LATIN SMALL LIGATURE FI
	0xFB02: {'f', 'l'},         // LATIN SMALL LIGATURE FL
	0xFB03: {'f', 'f', 'i'},    // LATIN SMALL LIGATURE FFI
	0xFB04: {'f', 'f', 'l'},    // LATIN SMALL LIGATURE FFL
	0x0149: {0x02BC, 'n'},      // LATIN SMALL LETTER N PRECEDED BY APOSTROPHE
	0x1E9E: {'s', 's'},         // LATIN CAPITAL LETTER SHARP S -> "ss"
}

const greekCapitalSigma = 0x03A3
const greekSmallSigma = 0x03C3
const greekFinalSigma = 0x03C2

func (stdConverter) SimpleFold(cp rune) rune {
	// unicode.SimpleFold walks the orbit of code points that fold to
	// each other; the canonical representative is the smallest rune in
	// the orbit that is not cp itself when iterated once, except the
	// orbit for letters cycles back, so find the minimum explicitly.
	min := cp
	r := unicode.SimpleFold(cp)
	for r != cp {
		if r < min {
			min = r
		}
		r = unicode.SimpleFold(r)
	}
	return min
}

func (c stdConverter) Fold(cp rune, ctx Context) []rune {
	if cp == greekCapitalSigma || cp == greekSmallSigma || cp == greekFinalSigma {
		if ctx.FinalSigma {
			return []rune{greekFinalSigma}
		}
		return []rune{greekSmallSigma}
	}
	if ex, ok := fullFoldExceptions[cp]; ok {
		return ex
	}
	return []rune{c.SimpleFold(cp)}
}

func (c stdConverter) FoldString(s string, ctx Context) string {
	runes := []rune(s)
	out := make([]rune, 0, len(runes))
	for i, r := range runes {
		localCtx := ctx
		if r == greekCapitalSigma || r == greekSmallSigma {
			localCtx.FinalSigma = isFinalSigmaPosition(runes, i)
		}
		out = append(out, c.Fold(r, localCtx)...)
	}
	return string(out)
}

// isFinalSigmaPosition implements the simplified Final_Sigma condition:
// preceded by a cased letter (optionally through case-ignorable code
// points) and not followed by one.
func isFinalSigmaPosition(runes []rune, i int) bool {
	precededByCased := false
	for j := i - 1; j >= 0; j-- {
		if isCaseIgnorable(runes[j]) {
			continue
		}
		precededByCased = isCased(runes[j])
		break
	}
	if !precededByCased {
		return false
	}
	for j := i + 1; j < len(runes); j++ {
		if isCaseIgnorable(runes[j]) {
			continue
		}
		return !isCased(runes[j])
	}
	return true
}

func isCased(r rune) bool {
	return unicode.IsUpper(r) || unicode.IsLower(r) || unicode.IsTitle(r)
}

func isCaseIgnorable(r rune) bool {
	return unicode.In(r, unicode.Mn, unicode.Me, unicode.Cf, unicode.Lm, unicode.Sk)
}
