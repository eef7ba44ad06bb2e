package uregex

import "github.com/coregx/uregex/vm"

// Config bounds the resources a single match attempt may consume.
type Config struct {
	// MaxRecursionDepth bounds (?N)-style pattern recursion nesting.
	MaxRecursionDepth int
	// MaxBacktrackSteps bounds total element invocations per match
	// attempt, a circuit breaker against catastrophic backtracking.
	// Zero means unbounded.
	MaxBacktrackSteps int
}

// DefaultConfig returns conservative resource limits suitable for
// general-purpose matching.
func DefaultConfig() Config {
	c := vm.DefaultConfig()
	return Config{MaxRecursionDepth: c.MaxRecursionDepth, MaxBacktrackSteps: c.MaxBacktrackSteps}
}

func (c Config) toVM() vm.Config {
	return vm.Config{MaxRecursionDepth: c.MaxRecursionDepth, MaxBacktrackSteps: c.MaxBacktrackSteps}
}
