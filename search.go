package uregex

import (
	"unicode/utf8"

	"github.com/coregx/uregex/vm"
)

// findFrom searches b for the first match starting at or after start,
// honoring the pattern's direction. start also serves as the anchor
// \G asserts against: every attempted position shares the same
// anchor, since \G marks where the overall search began, not where
// the current candidate happens to be.
func (re *Regex) findFrom(b []byte, start int) (*vm.Result, error) {
	if re.prog.RightToLeft {
		return re.findFromBackward(b, start)
	}
	return re.findFromForward(b, start)
}

func (re *Regex) findFromForward(b []byte, start int) (*vm.Result, error) {
	pos := start
	for pos <= len(b) {
		candidate := pos
		if re.pf != nil {
			candidate = re.pf.Find(b, pos)
			if candidate < 0 {
				return nil, nil
			}
		}
		res, err := vm.Exec(re.prog, b, candidate, start, re.cfg)
		if err != nil {
			return nil, err
		}
		if res != nil {
			return res, nil
		}
		if candidate >= len(b) {
			break
		}
		pos = nextRuneBoundary(b, candidate)
	}
	return nil, nil
}

func (re *Regex) findFromBackward(b []byte, start int) (*vm.Result, error) {
	pos := start
	for {
		res, err := vm.Exec(re.prog, b, pos, start, re.cfg)
		if err != nil {
			return nil, err
		}
		if res != nil {
			return res, nil
		}
		if pos <= 0 {
			return nil, nil
		}
		pos = prevRuneBoundary(b, pos)
	}
}

func nextRuneBoundary(b []byte, pos int) int {
	if pos >= len(b) {
		return pos + 1
	}
	_, width := utf8.DecodeRune(b[pos:])
	if width <= 0 {
		width = 1
	}
	return pos + width
}

func prevRuneBoundary(b []byte, pos int) int {
	if pos <= 0 {
		return 0
	}
	_, width := utf8.DecodeLastRune(b[:pos])
	if width <= 0 {
		width = 1
	}
	return pos - width
}
