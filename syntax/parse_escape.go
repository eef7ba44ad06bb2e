package syntax

import (
	"strconv"

	"github.com/coregx/uregex/ucd"
	"github.com/coregx/uregex/vm"
)

func init() {
	install("escape", parseEscapeAtom)
}

func parseEscapeAtom(c *Compiler) (vm.Element, bool, error) {
	if c.peek() != '\\' {
		return nil, false, nil
	}
	save := c.pos
	c.pos++ // '\\'
	if c.eof() {
		c.pos = save
		return nil, false, errf("trailing backslash")
	}
	e := c.next()

	switch e {
	case 'd', 'D', 'w', 'W', 's', 'S':
		m, _ := shorthandMember(e)
		return &vm.CharClass{Members: []vm.SetMember{m}}, true, nil
	case 'b':
		return &vm.Anchor{Kind: vm.WordBoundary}, true, nil
	case 'B':
		return &vm.Anchor{Kind: vm.NotWordBoundary}, true, nil
	case 'A':
		return &vm.Anchor{Kind: vm.Begin}, true, nil
	case 'z':
		return &vm.Anchor{Kind: vm.End}, true, nil
	case 'Z':
		return &vm.Anchor{Kind: vm.EndNewline}, true, nil
	case 'G':
		return &vm.Anchor{Kind: vm.LastMatch}, true, nil
	case 'K':
		return &vm.ResetMatch{}, true, nil
	case 'p', 'P':
		return c.parseUnicodeProperty(e == 'P')
	case 'k':
		return c.parseNamedBackref()
	case 'g':
		return c.parseGBackref()
	case '1', '2', '3', '4', '5', '6', '7', '8', '9':
		return c.parseNumberedBackref(e)
	default:
		r, _, _, err := escapeLiteralRune(c, e)
		if err != nil {
			return nil, false, err
		}
		return &vm.Literal{Runes: []rune{r}, IgnoreCase: c.opts.has(IgnoreCase)}, true, nil
	}
}

func (c *Compiler) parseUnicodeProperty(negate bool) (vm.Element, bool, error) {
	var name string
	if !c.eof() && c.peek() == '{' {
		c.pos++
		start := c.pos
		for !c.eof() && c.peek() != '}' {
			c.pos++
		}
		if c.eof() {
			return nil, false, errf("unterminated \\p{...}")
		}
		name = string(c.pattern[start:c.pos])
		c.pos++
	} else if !c.eof() {
		name = string(c.next())
	} else {
		return nil, false, errf("incomplete \\p escape")
	}

	var member vm.SetMember
	if cat, ok := categoryByName(name); ok {
		member = vm.CategoryMember{Cat: cat}
	} else if letter, ok := superCategoryPrefix(name); ok {
		member = vm.PredicateMember{Name: name, Fn: func(i ucd.Info) bool {
			return byte(i.Category.String()[0]) == letter
		}}
	} else {
		switch name {
		case "Alpha", "Alphabetic":
			member = vm.PredicateMember{Name: name, Fn: func(i ucd.Info) bool { return i.Alphabetic }}
		case "White_Space", "Space":
			member = vm.PredicateMember{Name: name, Fn: func(i ucd.Info) bool { return i.WhiteSpace }}
		case "Hex", "Hex_Digit", "ASCII_Hex_Digit":
			member = vm.PredicateMember{Name: name, Fn: func(i ucd.Info) bool { return i.HexDigit }}
		case "Cased":
			member = vm.PredicateMember{Name: name, Fn: func(i ucd.Info) bool { return i.Cased }}
		default:
			return nil, false, errf("unknown unicode property %q", name)
		}
	}
	if negate {
		member = vm.NegatedMember{Inner: member}
	}
	return &vm.CharClass{Members: []vm.SetMember{member}}, true, nil
}

func (c *Compiler) parseNamedBackref() (vm.Element, bool, error) {
	if c.eof() || (c.peek() != '<' && c.peek() != '\'') {
		return nil, false, errf("expected < or ' after \\k")
	}
	closeCh := '>'
	if c.peek() == '\'' {
		closeCh = '\''
	}
	c.pos++
	start := c.pos
	for !c.eof() && c.peek() != closeCh {
		c.pos++
	}
	if c.eof() {
		return nil, false, errf("unterminated \\k name")
	}
	name := string(c.pattern[start:c.pos])
	c.pos++
	num, ok := c.names[name]
	if !ok {
		return nil, false, errf("backreference to unknown group %q", name)
	}
	return &vm.Backref{Key: num, IgnoreCase: c.opts.has(IgnoreCase)}, true, nil
}

func (c *Compiler) parseGBackref() (vm.Element, bool, error) {
	if c.eof() {
		return nil, false, errf("incomplete \\g escape")
	}
	if c.peek() == '{' {
		c.pos++
		start := c.pos
		for !c.eof() && c.peek() != '}' {
			c.pos++
		}
		if c.eof() {
			return nil, false, errf("unterminated \\g{...}")
		}
		body := string(c.pattern[start:c.pos])
		c.pos++
		if n, err := strconv.Atoi(body); err == nil {
			return &vm.Backref{Key: n, IgnoreCase: c.opts.has(IgnoreCase)}, true, nil
		}
		num, ok := c.names[body]
		if !ok {
			return nil, false, errf("backreference to unknown group %q", body)
		}
		return &vm.Backref{Key: num, IgnoreCase: c.opts.has(IgnoreCase)}, true, nil
	}
	digits := c.consumeDigits()
	if digits == "" {
		return nil, false, errf("invalid \\g escape")
	}
	n, _ := strconv.Atoi(digits)
	return &vm.Backref{Key: n, IgnoreCase: c.opts.has(IgnoreCase)}, true, nil
}

func (c *Compiler) parseNumberedBackref(first rune) (vm.Element, bool, error) {
	digits := string(first)
	digits += c.consumeDigits()
	n, _ := strconv.Atoi(digits)
	return &vm.Backref{Key: n, IgnoreCase: c.opts.has(IgnoreCase)}, true, nil
}
