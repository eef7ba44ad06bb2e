package uregex

import (
	"github.com/coregx/uregex/syntax"
	"github.com/coregx/uregex/vm"
)

// CompileError reports a malformed pattern. It is returned, wrapped in
// no other error type, by Compile and its variants.
type CompileError = syntax.CompileError

// LimitExceededError reports that a match attempt was aborted for
// exceeding Config.MaxBacktrackSteps.
type LimitExceededError = vm.LimitExceededError
