// Package syntax compiles a pattern string into a vm.Program: a
// priority-ordered registry of construct parsers feeds a recursive
// compiler driver, a plug-in parser architecture (RegexCompilerBase
// plus an ordered parser list) reworked here without C++
// policy-template parameters, using plain Go structs and closures
// instead.
package syntax

// Options is a bitmask of pattern-compilation flags, the Go-idiomatic
// counterpart of a RegexOptions enum.
type Options uint16

const (
	// IgnoreCase makes literal and range matching case-insensitive.
	IgnoreCase Options = 1 << iota
	// Multiline makes ^ and $ match at internal line boundaries, not
	// only at the start/end of the whole input.
	Multiline
	// Singleline makes `.` match line terminators too (a.k.a. DOTALL).
	Singleline
	// ExplicitCapture makes unnamed `(...)` groups non-capturing; only
	// `(?<name>...)` captures.
	ExplicitCapture
	// IgnorePatternWhiteSpace skips unescaped whitespace and `#...`
	// end-of-line comments in the pattern text itself.
	IgnorePatternWhiteSpace
	// RightToLeft evaluates the compiled pattern back-to-front.
	RightToLeft
)

func (o Options) has(flag Options) bool { return o&flag != 0 }
