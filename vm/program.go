package vm

import "github.com/coregx/uregex/ulocale"

// Program is the compiled form of a pattern: its root element plus the
// metadata the public API and the replacement engine need to interpret
// match results (group count, names, the locale captured at compile
// time).
type Program struct {
	Root       Element
	NumGroups  int
	Names      map[string]int // group name -> number
	Locale     ulocale.Locale
	RightToLeft bool
}

// Result is one match attempt's output: the overall span plus every
// group's capture list.
type Result struct {
	Start, End int
	Groups     [][]Capture
}

// Exec runs p against input, attempting a match anchored exactly at
// start (not a search — the caller's search loop tries successive
// start positions). anchorPos is the position \G asserts against.
func Exec(p *Program, input []byte, start, anchorPos int, cfg Config) (*Result, error) {
	dir := Forward
	if p.RightToLeft {
		dir = Backward
	}
	match := NewMatchData(p.NumGroups)
	slots := len(p.Names) + p.NumGroups + 1
	e := NewEngine(input, dir, p.Locale, cfg, match, anchorPos, slots)

	end, ok := Run(e, p.Root, start)
	if e.Err() != nil {
		return nil, e.Err()
	}
	if !ok {
		return nil, nil
	}

	s, en := NormalizeRange(start, end)
	if e.EffectiveStartSet {
		es, _ := NormalizeRange(e.EffectiveStart, en)
		s = es
	}
	return &Result{Start: s, End: en, Groups: match.Groups}, nil
}
