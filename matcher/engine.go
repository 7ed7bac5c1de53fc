package matcher

import (
	"go.dw1.io/x/regexvec/regexopts"
	"go.dw1.io/x/regexvec/regexp"
)

// Engine compiles patterns into matchers of type M and manages their limits
// and lifetime. The zero M stands for "no matcher".
type Engine[M comparable] interface {
	Compile(pattern string, flags regexopts.Flag) (M, error)
	SetStackLimit(m M, limit int32) error
	SetTimeLimit(m M, limit int32) error
	Release(m M)
}

var _ Engine[*regexp.Regexp] = regexp.Engine{}
