// Package replace compiles the `$`-based replacement mini-language into
// a sequence of replace.Element values that expand against one match's
// capture data. The template is read by a direct scanner that
// dispatches on the character after each `$`; there is no parser
// registry.
package replace

import (
	"bytes"

	"github.com/coregx/uregex/vm"
)

// Context is the data one expansion call has available: the original
// subject, the span the pattern matched, and every group's most recent
// capture.
type Context struct {
	Input      []byte
	MatchStart int
	MatchEnd   int
	Groups     [][]vm.Capture
}

// group returns the text of the most recent capture of group num, or
// ("", false) if it never captured.
func (c *Context) group(num int) ([]byte, bool) {
	if num < 0 || num >= len(c.Groups) || len(c.Groups[num]) == 0 {
		return nil, false
	}
	last := c.Groups[num][len(c.Groups[num])-1]
	return c.Input[last.Start:last.End], true
}

func (c *Context) lastCapturedGroup() ([]byte, bool) {
	best := -1
	bestEnd := -1
	for num, caps := range c.Groups {
		if num == 0 || len(caps) == 0 {
			continue
		}
		last := caps[len(caps)-1]
		if last.End > bestEnd {
			bestEnd = last.End
			best = num
		}
	}
	if best < 0 {
		return nil, false
	}
	return c.group(best)
}

// Element is one piece of a compiled replacement template.
type Element interface {
	Append(ctx *Context, buf *bytes.Buffer)
}

// Template is a compiled replacement string: a sequence of elements
// concatenated when expanded.
type Template struct {
	Elems []Element
}

// Expand renders the template against ctx.
func (t *Template) Expand(ctx *Context) []byte {
	var buf bytes.Buffer
	for _, e := range t.Elems {
		e.Append(ctx, &buf)
	}
	return buf.Bytes()
}

// Literal is a run of text copied verbatim.
type Literal struct{ Text []byte }

func (l Literal) Append(ctx *Context, buf *bytes.Buffer) { buf.Write(l.Text) }

// NumberedBackref expands to the text of group Num's last capture, or
// nothing if it never captured, per RegexReplacementBackreference.
type NumberedBackref struct{ Num int }

func (b NumberedBackref) Append(ctx *Context, buf *bytes.Buffer) {
	if b.Num == 0 {
		buf.Write(ctx.Input[ctx.MatchStart:ctx.MatchEnd])
		return
	}
	if s, ok := ctx.group(b.Num); ok {
		buf.Write(s)
	}
}

// NamedBackref is a `${name}` reference whose name was resolved to
// group number Num at compile time. It expands to that group's last
// capture, or nothing if it never captured.
type NamedBackref struct{ Num int }

func (b NamedBackref) Append(ctx *Context, buf *bytes.Buffer) {
	if s, ok := ctx.group(b.Num); ok {
		buf.Write(s)
	}
}

// EntireMatch is `$&`.
type EntireMatch struct{}

func (EntireMatch) Append(ctx *Context, buf *bytes.Buffer) {
	buf.Write(ctx.Input[ctx.MatchStart:ctx.MatchEnd])
}

// InputBefore is `` $` ``: the subject text before the match.
type InputBefore struct{}

func (InputBefore) Append(ctx *Context, buf *bytes.Buffer) {
	buf.Write(ctx.Input[:ctx.MatchStart])
}

// InputAfter is `$'`: the subject text after the match.
type InputAfter struct{}

func (InputAfter) Append(ctx *Context, buf *bytes.Buffer) {
	buf.Write(ctx.Input[ctx.MatchEnd:])
}

// EntireInput is `$_`: the whole subject text.
type EntireInput struct{}

func (EntireInput) Append(ctx *Context, buf *bytes.Buffer) {
	buf.Write(ctx.Input)
}

// LastCapturedGroup is `$+`: the last group (by capture end position)
// that captured anything.
type LastCapturedGroup struct{}

func (LastCapturedGroup) Append(ctx *Context, buf *bytes.Buffer) {
	if s, ok := ctx.lastCapturedGroup(); ok {
		buf.Write(s)
	}
}
