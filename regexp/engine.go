package regexp

import (
	"time"

	"go.dw1.io/x/regexvec/regexopts"
)

// DefaultTimeUnit is the duration of one time-limit unit.
const DefaultTimeUnit = time.Millisecond

// Engine adapts the package to the matcher cache's engine contract.
type Engine struct {
	// TimeUnit scales time limits into match timeouts. Zero means
	// DefaultTimeUnit.
	TimeUnit time.Duration
}

// Compile compiles pattern under flags.
func (Engine) Compile(pattern string, flags regexopts.Flag) (*Regexp, error) {
	return CompileFlags(pattern, flags)
}

// SetStackLimit installs a stack limit in bytes.
func (Engine) SetStackLimit(re *Regexp, limit int32) error {
	return re.SetStackLimit(limit)
}

// SetTimeLimit installs a time limit in TimeUnit steps.
func (e Engine) SetTimeLimit(re *Regexp, limit int32) error {
	unit := e.TimeUnit
	if unit <= 0 {
		unit = DefaultTimeUnit
	}
	return re.SetTimeLimit(time.Duration(limit) * unit)
}

// Release releases re.
func (Engine) Release(re *Regexp) {
	re.Release()
}
