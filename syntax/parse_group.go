package syntax

import "github.com/coregx/uregex/vm"

func init() {
	install("group", parseGroupAtom)
}

func closeParen(c *Compiler) bool { return !c.eof() && c.peek() == ')' }

func parseGroupAtom(c *Compiler) (vm.Element, bool, error) {
	if c.peek() != '(' {
		return nil, false, nil
	}
	c.pos++ // '('

	if c.eof() {
		return nil, false, errf("unterminated group")
	}
	if c.peek() != '?' {
		return c.finishCapturingGroup(c.opts.has(explicitNoCapture()))
	}

	c.pos++ // '?'
	if c.eof() {
		return nil, false, errf("unterminated (? group")
	}

	switch c.peek() {
	case ':':
		c.pos++
		return c.finishPlainGroup()
	case '=':
		c.pos++
		return c.finishLookaround(false, false)
	case '!':
		c.pos++
		return c.finishLookaround(true, false)
	case '>':
		c.pos++
		return c.finishAtomicGroup()
	case '#':
		c.pos++
		for !c.eof() && c.peek() != ')' {
			c.pos++
		}
		if c.eof() {
			return nil, false, errf("unterminated comment")
		}
		c.pos++
		return vm.Empty{}, true, nil
	case '<':
		return c.parseLtPrefixed()
	case '\'':
		return c.parseQuoteNamedGroup()
	case 'P':
		return c.parsePPrefixed()
	case '(':
		return c.finishConditional()
	case 'R':
		c.pos++
		if err := c.expect(')'); err != nil {
			return nil, false, err
		}
		return c.addRecursion(0, "")
	case '&':
		c.pos++
		return c.finishNamedRecursion()
	case '0', '1', '2', '3', '4', '5', '6', '7', '8', '9', '+', '-':
		return c.finishNumberedRecursion()
	default:
		return c.finishInlineFlags()
	}
}

// explicitNoCapture reports, as a tri-state collapsed into Options,
// whether unnamed groups should be treated as non-capturing.
func explicitNoCapture() Options { return ExplicitCapture }

func (c *Compiler) finishCapturingGroup(noCapture bool) (vm.Element, bool, error) {
	if noCapture {
		return c.finishPlainGroup()
	}
	num := c.groupCount + 1
	c.groupCount = num
	body, err := c.parseAlternation(closeParen)
	if err != nil {
		return nil, false, err
	}
	if err := c.expect(')'); err != nil {
		return nil, false, err
	}
	c.groupBody[num] = &body
	return &vm.CapturingGroup{Key: num, Inner: body}, true, nil
}

func (c *Compiler) finishPlainGroup() (vm.Element, bool, error) {
	body, err := c.parseAlternation(closeParen)
	if err != nil {
		return nil, false, err
	}
	if err := c.expect(')'); err != nil {
		return nil, false, err
	}
	return &vm.Group{Inner: body}, true, nil
}

func (c *Compiler) finishAtomicGroup() (vm.Element, bool, error) {
	body, err := c.parseAlternation(closeParen)
	if err != nil {
		return nil, false, err
	}
	if err := c.expect(')'); err != nil {
		return nil, false, err
	}
	return &vm.Atomic{Inner: body}, true, nil
}

func (c *Compiler) finishLookaround(inverted, behind bool) (vm.Element, bool, error) {
	body, err := c.parseAlternation(closeParen)
	if err != nil {
		return nil, false, err
	}
	if err := c.expect(')'); err != nil {
		return nil, false, err
	}
	return &vm.Lookaround{Inner: body, Inverted: inverted, Behind: behind}, true, nil
}

// parseLtPrefixed handles `(?<=`, `(?<!`, `(?<name>`, and the balancing
// form `(?<name1-name2>`.
func (c *Compiler) parseLtPrefixed() (vm.Element, bool, error) {
	c.pos++ // '<'
	if !c.eof() && c.peek() == '=' {
		c.pos++
		return c.finishLookaround(false, true)
	}
	if !c.eof() && c.peek() == '!' {
		c.pos++
		return c.finishLookaround(true, true)
	}
	return c.parseAngleNamedOrBalancing('>')
}

func (c *Compiler) parseQuoteNamedGroup() (vm.Element, bool, error) {
	c.pos++ // '\''
	return c.parseAngleNamedOrBalancing('\'')
}

func (c *Compiler) parsePPrefixed() (vm.Element, bool, error) {
	c.pos++ // 'P'
	if c.eof() {
		return nil, false, errf("unterminated (?P")
	}
	switch c.peek() {
	case '<':
		c.pos++
		return c.parseAngleNamedOrBalancing('>')
	case '=':
		c.pos++
		return c.finishPythonNamedBackref()
	case '>':
		c.pos++
		return c.finishPythonNamedRecursion()
	default:
		return nil, false, errf("unsupported (?P%c construct", c.peek())
	}
}

func (c *Compiler) parseAngleNamedOrBalancing(closeCh rune) (vm.Element, bool, error) {
	start := c.pos
	for !c.eof() && c.peek() != closeCh && c.peek() != '-' {
		c.pos++
	}
	first := string(c.pattern[start:c.pos])

	if !c.eof() && c.peek() == '-' {
		c.pos++
		start2 := c.pos
		for !c.eof() && c.peek() != closeCh {
			c.pos++
		}
		second := string(c.pattern[start2:c.pos])
		if c.eof() {
			return nil, false, errf("unterminated balancing group name")
		}
		c.pos++ // closeCh

		pushNum := c.groupCount + 1
		c.groupCount = pushNum
		if first != "" {
			c.names[first] = pushNum
		}
		popNum, ok := c.names[second]
		if !ok {
			return nil, false, errf("balancing group refers to unknown group %q", second)
		}

		body, err := c.parseAlternation(closeParen)
		if err != nil {
			return nil, false, err
		}
		if err := c.expect(')'); err != nil {
			return nil, false, err
		}
		c.groupBody[pushNum] = &body
		return &vm.BalancingGroup{Push: pushNum, Pop: popNum, Inner: body}, true, nil
	}

	if c.eof() {
		return nil, false, errf("unterminated group name")
	}
	c.pos++ // closeCh
	num := c.groupCount + 1
	c.groupCount = num
	c.names[first] = num

	body, err := c.parseAlternation(closeParen)
	if err != nil {
		return nil, false, err
	}
	if err := c.expect(')'); err != nil {
		return nil, false, err
	}
	c.groupBody[num] = &body
	return &vm.CapturingGroup{Key: num, Inner: body}, true, nil
}

func (c *Compiler) finishPythonNamedBackref() (vm.Element, bool, error) {
	start := c.pos
	for !c.eof() && c.peek() != ')' {
		c.pos++
	}
	name := string(c.pattern[start:c.pos])
	if c.eof() {
		return nil, false, errf("unterminated (?P=name)")
	}
	c.pos++
	num, ok := c.names[name]
	if !ok {
		return nil, false, errf("backreference to unknown group %q", name)
	}
	return &vm.Backref{Key: num, IgnoreCase: c.opts.has(IgnoreCase)}, true, nil
}

func (c *Compiler) finishPythonNamedRecursion() (vm.Element, bool, error) {
	start := c.pos
	for !c.eof() && c.peek() != ')' {
		c.pos++
	}
	name := string(c.pattern[start:c.pos])
	if c.eof() {
		return nil, false, errf("unterminated (?P>name)")
	}
	c.pos++
	return c.addRecursion(-1, name)
}

func (c *Compiler) finishNamedRecursion() (vm.Element, bool, error) {
	start := c.pos
	for !c.eof() && c.peek() != ')' {
		c.pos++
	}
	name := string(c.pattern[start:c.pos])
	if c.eof() {
		return nil, false, errf("unterminated (?&name)")
	}
	c.pos++
	return c.addRecursion(-1, name)
}

func (c *Compiler) finishNumberedRecursion() (vm.Element, bool, error) {
	sign := 0
	if c.peek() == '+' {
		sign = 1
		c.pos++
	} else if c.peek() == '-' {
		sign = -1
		c.pos++
	}
	digits := c.consumeDigits()
	if digits == "" {
		return nil, false, errf("invalid recursion reference")
	}
	n := atoiSafe(digits)
	if sign != 0 {
		n = c.groupCount + sign*n
	}
	if err := c.expect(')'); err != nil {
		return nil, false, err
	}
	return c.addRecursion(n, "")
}

func (c *Compiler) addRecursion(groupNum int, name string) (vm.Element, bool, error) {
	node := &vm.Recursion{Slot: c.allocSlot()}
	c.pendingRecursions = append(c.pendingRecursions, &pendingRecursion{
		node: node, groupNum: groupNum, name: name,
	})
	return node, true, nil
}

// finishConditional handles `(?(name)yes|no)` and `(?(pattern)yes|no)`.
func (c *Compiler) finishConditional() (vm.Element, bool, error) {
	c.pos++ // '('
	start := c.pos
	for !c.eof() && c.peek() != ')' {
		c.pos++
	}
	if c.eof() {
		return nil, false, errf("unterminated conditional test")
	}
	body := string(c.pattern[start:c.pos])
	c.pos++ // ')'

	cond := &vm.Conditional{}
	if num, ok := c.names[body]; ok {
		cond.HasCheck, cond.CheckKey = true, num
	} else if n, err := tryAtoi(body); err == nil {
		cond.HasCheck, cond.CheckKey = true, n
	} else {
		sub, err := Compile(body, c.opts, c.locale)
		if err != nil {
			return nil, false, errf("invalid conditional pattern test: %w", err)
		}
		cond.Test = sub.Root
	}

	yes, err := c.parseAlternation(func(c *Compiler) bool { return c.peek() == '|' || closeParen(c) })
	if err != nil {
		return nil, false, err
	}
	cond.Yes = yes
	if !c.eof() && c.peek() == '|' {
		c.pos++
		no, err := c.parseAlternation(closeParen)
		if err != nil {
			return nil, false, err
		}
		cond.No = no
	}
	if err := c.expect(')'); err != nil {
		return nil, false, err
	}
	return cond, true, nil
}

func tryAtoi(s string) (int, error) {
	if s == "" {
		return 0, errf("empty")
	}
	n := 0
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, errf("not a number")
		}
		n = n*10 + int(r-'0')
	}
	return n, nil
}

// finishInlineFlags handles `(?imsnx-imsnx:...)` (scoped) and
// `(?imsnx-imsnx)` (rest-of-enclosing-group).
func (c *Compiler) finishInlineFlags() (vm.Element, bool, error) {
	add, remove, err := c.parseFlagLetters()
	if err != nil {
		return nil, false, err
	}
	if !c.eof() && c.peek() == ':' {
		c.pos++
		saved := c.opts
		c.opts = (c.opts | add) &^ remove
		body, err := c.parseAlternation(closeParen)
		c.opts = saved
		if err != nil {
			return nil, false, err
		}
		if err := c.expect(')'); err != nil {
			return nil, false, err
		}
		return &vm.Group{Inner: body}, true, nil
	}
	if err := c.expect(')'); err != nil {
		return nil, false, err
	}
	c.opts = (c.opts | add) &^ remove
	return vm.Empty{}, true, nil
}

func (c *Compiler) parseFlagLetters() (add, remove Options, err error) {
	target := &add
	for !c.eof() {
		switch c.peek() {
		case 'i':
			*target |= IgnoreCase
		case 'm':
			*target |= Multiline
		case 's':
			*target |= Singleline
		case 'n':
			*target |= ExplicitCapture
		case 'x':
			*target |= IgnorePatternWhiteSpace
		case '-':
			target = &remove
		case ':', ')':
			return add, remove, nil
		default:
			return add, remove, errf("unknown inline flag %q", c.peek())
		}
		c.pos++
	}
	return add, remove, errf("unterminated inline flags")
}
