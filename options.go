package uregex

import "github.com/coregx/uregex/syntax"

// Options is a bitmask of compile-time pattern flags, mirroring the
// syntax package's RegexOptions-style enum.
type Options = syntax.Options

const (
	IgnoreCase              = syntax.IgnoreCase
	Multiline               = syntax.Multiline
	Singleline              = syntax.Singleline
	ExplicitCapture         = syntax.ExplicitCapture
	IgnorePatternWhiteSpace = syntax.IgnorePatternWhiteSpace
	RightToLeft             = syntax.RightToLeft
)
