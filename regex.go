// Package uregex implements a Unicode-aware, backtracking regular
// expression engine with full backreference, lookaround and balancing
// group support. Patterns compile to a tree of vm.Element values
// (package syntax) and execute via continuation-passing backtracking
// (package vm); this file wires the two together behind a
// regexp-like public API, the way a top-level Regex type wires its
// own parser and matcher together.
//
// Example:
//
//	re := uregex.MustCompile(`(\w+)@(\w+\.\w+)`)
//	m := re.FindStringSubmatch("contact: alice@example.com")
//	fmt.Println(m[1], m[2])
package uregex

import (
	"github.com/coregx/uregex/literal"
	"github.com/coregx/uregex/prefilter"
	"github.com/coregx/uregex/syntax"
	"github.com/coregx/uregex/ulocale"
	"github.com/coregx/uregex/vm"
)

// Regex is a compiled pattern ready to match against byte slices or
// strings. A *Regex is safe for concurrent use by multiple goroutines:
// matching never mutates the compiled program, only per-call state.
type Regex struct {
	pattern string
	prog    *vm.Program
	cfg     vm.Config
	pf      prefilter.Prefilter
}

// Compile parses pattern and returns the corresponding Regex, using
// DefaultConfig for resource limits.
func Compile(pattern string) (*Regex, error) {
	return CompileWithConfig(pattern, 0, DefaultConfig())
}

// CompileOptions is like Compile but applies the given parse-time
// Options (IgnoreCase, Multiline, RightToLeft and so on).
func CompileOptions(pattern string, opts Options) (*Regex, error) {
	return CompileWithConfig(pattern, opts, DefaultConfig())
}

// CompileWithConfig parses pattern with opts and binds cfg as the
// resource limits every subsequent match attempt obeys.
func CompileWithConfig(pattern string, opts Options, cfg Config) (*Regex, error) {
	prog, err := syntax.Compile(pattern, opts, ulocale.Current())
	if err != nil {
		return nil, err
	}
	re := &Regex{pattern: pattern, prog: prog, cfg: cfg.toVM()}
	if !prog.RightToLeft {
		re.pf = buildPrefilter(prog)
	}
	return re, nil
}

// MustCompile is like Compile but panics if pattern fails to parse.
// Intended for package-level pattern variables initialized at
// startup, in the style of stdlib regexp's MustCompile.
func MustCompile(pattern string) *Regex {
	re, err := Compile(pattern)
	if err != nil {
		panic(`uregex: Compile(` + quoteForPanic(pattern) + `): ` + err.Error())
	}
	return re
}

// MustCompileOptions is MustCompile with explicit Options.
func MustCompileOptions(pattern string, opts Options) *Regex {
	re, err := CompileOptions(pattern, opts)
	if err != nil {
		panic(`uregex: Compile(` + quoteForPanic(pattern) + `): ` + err.Error())
	}
	return re
}

func quoteForPanic(s string) string {
	b := make([]byte, 0, len(s)+2)
	b = append(b, '`')
	b = append(b, s...)
	b = append(b, '`')
	return string(b)
}

// buildPrefilter extracts a required literal prefix, or a root-level
// alternation of fixed literals, from prog's root element and, if one
// of useful shape is found, builds a prefilter to accelerate the
// search loop's scan for candidate start positions.
func buildPrefilter(prog *vm.Program) prefilter.Prefilter {
	if seq := requiredLiteralSet(prog.Root); seq != nil {
		return prefilter.NewBuilder(seq, nil).Build()
	}
	prefix := requiredPrefix(prog.Root)
	if len(prefix) == 0 {
		return nil
	}
	seq := literal.NewSeq(literal.NewLiteral([]byte(string(prefix)), false))
	return prefilter.NewBuilder(seq, nil).Build()
}

// String returns the source text of the pattern, as supplied to
// Compile.
func (re *Regex) String() string { return re.pattern }

// NumSubexp returns the number of capturing groups in the pattern,
// not counting group 0 (the entire match).
func (re *Regex) NumSubexp() int { return re.prog.NumGroups }

// SubexpNames returns the names of the pattern's capturing groups,
// indexed by group number; unnamed groups hold "" at their index.
// Index 0, the entire match, is always "".
func (re *Regex) SubexpNames() []string {
	names := make([]string, re.prog.NumGroups+1)
	for name, num := range re.prog.Names {
		if num >= 0 && num < len(names) {
			names[num] = name
		}
	}
	return names
}
