// Package ulocale bundles the collaborators a compiled pattern needs
// (code-point table, normalizer, case converter, segmenter) behind a
// single Locale value, and tracks a single process-wide current locale
// that newly compiled patterns default to.
package ulocale

import (
	"sync/atomic"

	"github.com/coregx/uregex/ucd"
	"github.com/coregx/uregex/ufold"
	"github.com/coregx/uregex/unorm"
	"github.com/coregx/uregex/usegment"
)

// Locale bundles everything a compiled pattern needs to interpret code
// points: the property table, normalizer, case converter and
// segmenter, plus a handful of locale-specific scalars (default base
// for \d-adjacent numeric parsing, the negative-sign code point, and
// whether combining accents in this locale render before or after
// their base character for \X purposes).
type Locale struct {
	// Name is a BCP-47-ish tag, e.g. "en-US" or "" for the invariant
	// locale. It is informational; no package branches on it.
	Name string

	Table      ucd.Table
	Normalizer unorm.Normalizer
	CaseFold   ufold.Converter
	Segmenter  usegment.Segmenter

	// DefaultBase is the numeric base \d-style escapes assume absent an
	// explicit override (always 10 for the shipped locales).
	DefaultBase int

	// NegativeSign is the code point this locale uses to denote a
	// negative number in free-standing numeric literals.
	NegativeSign rune

	// BackwardsAccents is true for locales (historically, some
	// right-to-left scripts) whose combining accents are stored after
	// the base character in logical order but render before it. No
	// package in this module reads it.
	BackwardsAccents bool
}

var invariant = Locale{
	Name:         "",
	Table:        ucd.Std,
	Normalizer:   unorm.Default,
	CaseFold:     ufold.Default,
	Segmenter:    usegment.Default,
	DefaultBase:  10,
	NegativeSign: '-',
}

// Invariant returns the culture-invariant default locale, built from
// the standard-library-backed collaborators in ucd/unorm/ufold/usegment.
func Invariant() Locale {
	return invariant
}

var current atomic.Value

func init() {
	current.Store(invariant)
}

// Current returns the process-wide current locale.
func Current() Locale {
	return current.Load().(Locale)
}

// SetCurrent replaces the process-wide current locale. Compiled
// patterns capture the current locale at compile time, not at match
// time, so changing it does not affect regexes already compiled.
func SetCurrent(l Locale) {
	current.Store(l)
}
