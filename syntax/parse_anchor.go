package syntax

import "github.com/coregx/uregex/vm"

func init() {
	install("anchor", parseAnchorAtom)
}

// parseAnchorAtom recognizes the bare `^`/`$`/`.` constructs. Escaped
// anchors (\A, \z, \Z, \b, \B, \G) are handled by the escape parser
// instead, since they share the `\` prefix with every other escape.
func parseAnchorAtom(c *Compiler) (vm.Element, bool, error) {
	switch c.peek() {
	case '^':
		c.pos++
		if c.opts.has(Multiline) {
			return &vm.Anchor{Kind: vm.BeginLine}, true, nil
		}
		return &vm.Anchor{Kind: vm.Begin}, true, nil
	case '$':
		c.pos++
		if c.opts.has(Multiline) {
			return &vm.Anchor{Kind: vm.EndLine}, true, nil
		}
		return &vm.Anchor{Kind: vm.EndNewline}, true, nil
	case '.':
		c.pos++
		return &vm.Wildcard{Singleline: c.opts.has(Singleline)}, true, nil
	default:
		return nil, false, nil
	}
}
