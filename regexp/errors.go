package regexp

import (
	stdsyntax "regexp/syntax"

	"github.com/cockroachdb/errors"
	pcresyntax "github.com/dlclark/regexp2/syntax"
)

// Engine names reported by [CompileError].
const (
	EngineCore = "coregex"
	EnginePCRE = "regexp2"
)

var (
	// ErrLimitUnsupported is returned when a limit does not apply to the
	// engine that compiled the pattern.
	ErrLimitUnsupported = errors.New("regexp: limit not supported by engine")

	// ErrReleased is returned by match methods called after Release.
	ErrReleased = errors.New("regexp: matcher released")
)

// CompileError is a pattern rejected by an engine.
type CompileError struct {
	Engine string
	Code   string
	Err    error
}

func newCompileError(engine string, err error) *CompileError {
	code := "invalid pattern"

	var se *stdsyntax.Error
	var pe *pcresyntax.Error
	switch {
	case errors.As(err, &se):
		code = string(se.Code)
	case errors.As(err, &pe):
		code = string(pe.Code)
	}

	return &CompileError{Engine: engine, Code: code, Err: err}
}

func (e *CompileError) Error() string {
	return "regexp: " + e.Engine + ": " + e.Err.Error()
}

// Unwrap returns the engine error.
func (e *CompileError) Unwrap() error {
	return e.Err
}

// ErrorCode returns the engine's error code, such as "missing closing )".
func (e *CompileError) ErrorCode() string {
	return e.Code
}
