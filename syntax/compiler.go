package syntax

import (
	"github.com/coregx/uregex/ucd"
	"github.com/coregx/uregex/ulocale"
	"github.com/coregx/uregex/vm"
)

// atomParser is one entry in the construct registry: try reports
// whether it recognizes the compiler's current position, and if so
// returns the element it parsed. Returning (nil, false, nil) means
// "not applicable, ask the next parser in priority order," the same
// sequential-try discipline RegexCompilerBase::operator() uses over
// its per-construct parsers.
type atomParser struct {
	name string
	try  func(c *Compiler) (vm.Element, bool, error)
}

// registry is the priority-ordered list of construct parsers. Anchors,
// groups, classes and escapes all have to be tried before the literal
// fallback, which accepts anything.
var registry []atomParser

func install(name string, try func(c *Compiler) (vm.Element, bool, error)) {
	registry = append(registry, atomParser{name: name, try: try})
}

// Compiler drives one pattern-compilation pass: a cursor over the
// pattern's runes, the active option flags, the locale in force, and
// the bookkeeping needed to resolve named/numbered backreferences and
// recursion targets that may be declared after they are referenced.
type Compiler struct {
	pattern []rune
	pos     int
	opts    Options
	locale  ulocale.Locale

	groupCount int
	names      map[string]int
	groupBody  map[int]*vm.Element // group number -> pointer to its compiled body, filled in once known
	nextSlot   uint32

	pendingRecursions []*pendingRecursion
}

type pendingRecursion struct {
	node     *vm.Recursion
	groupNum int // -1 for whole-pattern recursion
	name     string
}

// Compile parses pattern under opts/locale into a runnable vm.Program.
func Compile(pattern string, opts Options, locale ulocale.Locale) (*vm.Program, error) {
	c := &Compiler{
		pattern:   []rune(pattern),
		opts:      opts,
		locale:    locale,
		names:     make(map[string]int),
		groupBody: make(map[int]*vm.Element),
	}

	root, err := c.parseAlternation(func(c *Compiler) bool { return c.eof() })
	if err != nil {
		return nil, &CompileError{Pattern: pattern, Pos: c.pos, Err: err}
	}
	if !c.eof() {
		return nil, &CompileError{Pattern: pattern, Pos: c.pos, Err: errf("unexpected %q", c.peek())}
	}

	whole := root
	c.groupBody[0] = &whole

	if err := c.resolveRecursions(); err != nil {
		return nil, &CompileError{Pattern: pattern, Pos: c.pos, Err: err}
	}

	return &vm.Program{
		Root:        root,
		NumGroups:   c.groupCount,
		Names:       c.names,
		Locale:      locale,
		RightToLeft: opts.has(RightToLeft),
	}, nil
}

func (c *Compiler) resolveRecursions() error {
	for _, p := range c.pendingRecursions {
		num := p.groupNum
		if p.name != "" {
			n, ok := c.names[p.name]
			if !ok {
				return errf("recursion refers to unknown group %q", p.name)
			}
			num = n
		}
		body, ok := c.groupBody[num]
		if !ok {
			return errf("recursion refers to unknown group %d", num)
		}
		p.node.Target = *body
		// One guard slot per target group, so the engine's recursion
		// guard (sized by group count) always has room for it.
		p.node.Slot = uint32(num)
	}
	return nil
}

func (c *Compiler) allocSlot() uint32 {
	s := c.nextSlot
	c.nextSlot++
	return s
}

// --- cursor helpers ---

func (c *Compiler) eof() bool { return c.pos >= len(c.pattern) }

func (c *Compiler) peek() rune {
	if c.eof() {
		return 0
	}
	return c.pattern[c.pos]
}

func (c *Compiler) peekAt(off int) rune {
	i := c.pos + off
	if i < 0 || i >= len(c.pattern) {
		return 0
	}
	return c.pattern[i]
}

func (c *Compiler) next() rune {
	r := c.peek()
	c.pos++
	return r
}

func (c *Compiler) expect(r rune) error {
	if c.peek() != r {
		return errf("expected %q, found %q", r, c.peek())
	}
	c.pos++
	return nil
}

// skipIgnorable consumes whitespace and `#...`-to-end-of-line comments
// when IgnorePatternWhiteSpace is set; `(?#...)` comments are handled by
// the group parser.
func (c *Compiler) skipIgnorable() {
	if !c.opts.has(IgnorePatternWhiteSpace) {
		return
	}
	for !c.eof() {
		r := c.peek()
		switch {
		case r == ' ' || r == '\t' || r == '\n' || r == '\r' || r == '\v' || r == '\f':
			c.pos++
		case r == '#':
			for !c.eof() && c.peek() != '\n' {
				c.pos++
			}
		default:
			return
		}
	}
}

// --- grammar: alternation / sequence / quantified atom ---

// doneFn reports whether the compiler has reached the end of the
// current nesting level (top-level end-of-pattern, or a group's
// closing paren).
type doneFn func(c *Compiler) bool

func (c *Compiler) parseAlternation(done doneFn) (vm.Element, error) {
	saved := c.opts
	defer func() { c.opts = saved }()
	var branches []vm.Element
	for {
		seq, err := c.parseSequence(done)
		if err != nil {
			return nil, err
		}
		branches = append(branches, seq)
		if !c.eof() && c.peek() == '|' {
			c.pos++
			continue
		}
		break
	}
	if len(branches) == 1 {
		return branches[0], nil
	}
	return &vm.Alternation{Branches: branches}, nil
}

func (c *Compiler) parseSequence(done doneFn) (vm.Element, error) {
	var elems []vm.Element
	for {
		c.skipIgnorable()
		if c.eof() || done(c) || c.peek() == '|' {
			break
		}
		el, mergeable, err := c.parseQuantified(done)
		if err != nil {
			return nil, err
		}
		if mergeable && len(elems) > 0 {
			if prev, ok := elems[len(elems)-1].(*vm.Literal); ok {
				if lit, ok := el.(*vm.Literal); ok && lit.IgnoreCase == prev.IgnoreCase {
					prev.Runes = append(prev.Runes, lit.Runes...)
					continue
				}
			}
		}
		elems = append(elems, el)
	}
	switch len(elems) {
	case 0:
		return vm.Empty{}, nil
	case 1:
		return elems[0], nil
	default:
		return &vm.Seq{Elems: elems}, nil
	}
}

func (c *Compiler) parseQuantified(done doneFn) (vm.Element, bool, error) {
	atom, err := c.parseAtom(done)
	if err != nil {
		return nil, false, err
	}
	c.skipIgnorable()
	min, max, ok, err := c.tryParseQuantifierBounds()
	if err != nil {
		return nil, false, err
	}
	if !ok {
		return atom, isMergeableLiteral(atom), nil
	}

	mode := vm.Greedy
	if !c.eof() {
		switch c.peek() {
		case '?':
			mode = vm.Lazy
			c.pos++
		case '+':
			mode = vm.Possessive
			c.pos++
		}
	}
	return &vm.Multiple{Sub: atom, Min: min, Max: max, Mode: mode}, false, nil
}

func isMergeableLiteral(e vm.Element) bool {
	lit, ok := e.(*vm.Literal)
	return ok && len(lit.Runes) == 1
}

// tryParseQuantifierBounds recognizes *, +, ?, {m}, {m,}, {m,n}, {,n}.
// It does not consume anything and returns ok=false if the current
// position is not a valid quantifier (e.g. a literal `{` with no
// matching quantifier syntax).
func (c *Compiler) tryParseQuantifierBounds() (min, max int, ok bool, err error) {
	if c.eof() {
		return 0, 0, false, nil
	}
	switch c.peek() {
	case '*':
		c.pos++
		return 0, -1, true, nil
	case '+':
		c.pos++
		return 1, -1, true, nil
	case '?':
		c.pos++
		return 0, 1, true, nil
	case '{':
		return c.tryParseBraceQuantifier()
	default:
		return 0, 0, false, nil
	}
}

func (c *Compiler) tryParseBraceQuantifier() (min, max int, ok bool, err error) {
	save := c.pos
	c.pos++ // '{'
	start := c.pos
	minStr := c.consumeDigits()
	hasComma := false
	maxStr := ""
	if !c.eof() && c.peek() == ',' {
		hasComma = true
		c.pos++
		maxStr = c.consumeDigits()
	}
	if c.eof() || c.peek() != '}' || (minStr == "" && maxStr == "") {
		c.pos = save
		return 0, 0, false, nil
	}
	c.pos++ // '}'
	_ = start

	if minStr == "" {
		min = 0
	} else {
		min = atoiSafe(minStr)
	}
	if !hasComma {
		max = min
	} else if maxStr == "" {
		max = -1
	} else {
		max = atoiSafe(maxStr)
	}
	if max >= 0 && max < min {
		return 0, 0, false, errf("quantifier range is out of order")
	}
	return min, max, true, nil
}

func (c *Compiler) consumeDigits() string {
	start := c.pos
	for !c.eof() && c.peek() >= '0' && c.peek() <= '9' {
		c.pos++
	}
	return string(c.pattern[start:c.pos])
}

func atoiSafe(s string) int {
	n := 0
	for _, r := range s {
		n = n*10 + int(r-'0')
		if n > 1<<20 {
			return 1 << 20
		}
	}
	return n
}

func (c *Compiler) parseAtom(done doneFn) (vm.Element, error) {
	for _, p := range registry {
		el, matched, err := p.try(c)
		if err != nil {
			return nil, err
		}
		if matched {
			return el, nil
		}
	}
	return nil, errf("no parser matched %q", c.peek())
}

// categoryByName resolves the two-letter Unicode general category
// abbreviations used by \p{...}.
func categoryByName(name string) (ucd.Category, bool) {
	names := map[string]ucd.Category{
		"Lu": ucd.Lu, "Ll": ucd.Ll, "Lt": ucd.Lt, "Lm": ucd.Lm, "Lo": ucd.Lo,
		"Mn": ucd.Mn, "Mc": ucd.Mc, "Me": ucd.Me,
		"Nd": ucd.Nd, "Nl": ucd.Nl, "No": ucd.No,
		"Pc": ucd.Pc, "Pd": ucd.Pd, "Ps": ucd.Ps, "Pe": ucd.Pe, "Pi": ucd.Pi, "Pf": ucd.Pf, "Po": ucd.Po,
		"Sm": ucd.Sm, "Sc": ucd.Sc, "Sk": ucd.Sk, "So": ucd.So,
		"Zs": ucd.Zs, "Zl": ucd.Zl, "Zp": ucd.Zp,
		"Cc": ucd.Cc, "Cf": ucd.Cf, "Cs": ucd.Cs, "Co": ucd.Co, "Cn": ucd.Cn,
	}
	cat, ok := names[name]
	return cat, ok
}

// superCategoryPrefix resolves the single-letter super-category
// abbreviations (L, M, N, P, S, Z, C), which each cover a whole group
// of two-letter categories sharing that first letter.
func superCategoryPrefix(name string) (byte, bool) {
	if len(name) != 1 {
		return 0, false
	}
	switch name[0] {
	case 'L', 'M', 'N', 'P', 'S', 'Z', 'C':
		return name[0], true
	default:
		return 0, false
	}
}
