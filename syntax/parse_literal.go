package syntax

import "github.com/coregx/uregex/vm"

func init() {
	install("quantifier-guard", parseQuantifierGuard)
	// literal must be installed last: it accepts any remaining rune.
	install("literal", parseLiteralAtom)
}

// parseQuantifierGuard rejects a bare `*`, `+`, or `?` where an atom is
// expected, the same "nothing to repeat" condition RegexMultipleParser
// raises on finding no preceding element to pop.
func parseQuantifierGuard(c *Compiler) (vm.Element, bool, error) {
	switch c.peek() {
	case '*', '+', '?':
		return nil, false, errf("quantifier %q with nothing to repeat", c.peek())
	case ')':
		return nil, false, errf("unmatched )")
	default:
		return nil, false, nil
	}
}

func parseLiteralAtom(c *Compiler) (vm.Element, bool, error) {
	r := c.next()
	return &vm.Literal{Runes: []rune{r}, IgnoreCase: c.opts.has(IgnoreCase)}, true, nil
}
