package syntax

import (
	"github.com/coregx/uregex/ucd"
	"github.com/coregx/uregex/vm"
)

func init() {
	install("charclass", parseClassAtom)
}

func parseClassAtom(c *Compiler) (vm.Element, bool, error) {
	if c.peek() != '[' {
		return nil, false, nil
	}
	c.pos++ // '['

	negate := false
	if !c.eof() && c.peek() == '^' {
		negate = true
		c.pos++
	}

	var members []vm.SetMember
	first := true
	for {
		if c.eof() {
			return nil, false, errf("unterminated character class")
		}
		if c.peek() == ']' && !first {
			c.pos++
			break
		}
		first = false

		if c.peek() == ']' {
			// literal ']' as the very first member
			members = append(members, vm.RangeMember{Lo: ']', Hi: ']'})
			c.pos++
			continue
		}

		lo, isShorthand, shorthand, err := c.parseClassChar()
		if err != nil {
			return nil, false, err
		}
		if isShorthand {
			members = append(members, shorthand)
			continue
		}

		if !c.eof() && c.peek() == '-' && c.peekAt(1) != ']' && c.peekAt(1) != 0 {
			c.pos++ // '-'
			hi, isShorthand2, _, err := c.parseClassChar()
			if err != nil {
				return nil, false, err
			}
			if isShorthand2 {
				return nil, false, errf("invalid range end")
			}
			if hi < lo {
				return nil, false, errf("character class range out of order")
			}
			members = append(members, vm.RangeMember{Lo: lo, Hi: hi})
			continue
		}

		members = append(members, vm.RangeMember{Lo: lo, Hi: lo})
	}

	return &vm.CharClass{
		Members:    members,
		Negate:     negate,
		IgnoreCase: c.opts.has(IgnoreCase),
	}, true, nil
}

// parseClassChar reads one class member: either a literal code point
// (lo, false, nil, nil) or a shorthand predicate like \d (0, true,
// member, nil).
func (c *Compiler) parseClassChar() (lo rune, isShorthand bool, shorthand vm.SetMember, err error) {
	r := c.next()
	if r != '\\' {
		return r, false, nil, nil
	}
	if c.eof() {
		return 0, false, nil, errf("trailing backslash")
	}
	e := c.next()
	if m, ok := shorthandMember(e); ok {
		return 0, true, m, nil
	}
	return escapeLiteralRune(c, e)
}

func shorthandMember(r rune) (vm.SetMember, bool) {
	switch r {
	case 'd':
		return vm.PredicateMember{Name: "d", Fn: func(i ucd.Info) bool { return i.Category == ucd.Nd }}, true
	case 'D':
		return vm.NegatedMember{Inner: vm.PredicateMember{Name: "d", Fn: func(i ucd.Info) bool { return i.Category == ucd.Nd }}}, true
	case 'w':
		return vm.PredicateMember{Name: "w", Fn: func(i ucd.Info) bool { return i.Category.IsWord() }}, true
	case 'W':
		return vm.NegatedMember{Inner: vm.PredicateMember{Name: "w", Fn: func(i ucd.Info) bool { return i.Category.IsWord() }}}, true
	case 's':
		return vm.PredicateMember{Name: "s", Fn: func(i ucd.Info) bool { return i.WhiteSpace }}, true
	case 'S':
		return vm.NegatedMember{Inner: vm.PredicateMember{Name: "s", Fn: func(i ucd.Info) bool { return i.WhiteSpace }}}, true
	default:
		return nil, false
	}
}

// escapeLiteralRune resolves a backslash-escape that denotes a single
// literal code point (\n, \t, \xFF, ...), shared between class members
// and ordinary escapes.
func escapeLiteralRune(c *Compiler, e rune) (rune, bool, vm.SetMember, error) {
	switch e {
	case 'n':
		return '\n', false, nil, nil
	case 't':
		return '\t', false, nil, nil
	case 'r':
		return '\r', false, nil, nil
	case 'f':
		return '\f', false, nil, nil
	case 'v':
		return '\v', false, nil, nil
	case 'a':
		return '\a', false, nil, nil
	case '0':
		return 0, false, nil, nil
	case 'x':
		r, err := c.parseHexEscape()
		return r, false, nil, err
	case 'u':
		r, err := c.parseUEscape()
		return r, false, nil, err
	default:
		return e, false, nil, nil
	}
}

func (c *Compiler) parseHexEscape() (rune, error) {
	if !c.eof() && c.peek() == '{' {
		c.pos++
		start := c.pos
		for !c.eof() && c.peek() != '}' {
			c.pos++
		}
		if c.eof() {
			return 0, errf("unterminated \\x{...} escape")
		}
		hex := string(c.pattern[start:c.pos])
		c.pos++ // '}'
		return hexToRune(hex)
	}
	start := c.pos
	for i := 0; i < 2 && !c.eof() && isHexDigit(c.peek()); i++ {
		c.pos++
	}
	if c.pos == start {
		return 0, errf("invalid \\x escape")
	}
	return hexToRune(string(c.pattern[start:c.pos]))
}

func (c *Compiler) parseUEscape() (rune, error) {
	start := c.pos
	for i := 0; i < 4 && !c.eof() && isHexDigit(c.peek()); i++ {
		c.pos++
	}
	if c.pos-start != 4 {
		return 0, errf("invalid \\u escape")
	}
	return hexToRune(string(c.pattern[start:c.pos]))
}

func isHexDigit(r rune) bool {
	return (r >= '0' && r <= '9') || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F')
}

func hexToRune(s string) (rune, error) {
	if s == "" {
		return 0, errf("empty hex escape")
	}
	var n int64
	for _, r := range s {
		n *= 16
		switch {
		case r >= '0' && r <= '9':
			n += int64(r - '0')
		case r >= 'a' && r <= 'f':
			n += int64(r-'a') + 10
		case r >= 'A' && r <= 'F':
			n += int64(r-'A') + 10
		default:
			return 0, errf("invalid hex digit %q", r)
		}
		if n > 0x10FFFF {
			return 0, errf("hex escape out of range")
		}
	}
	return rune(n), nil
}
