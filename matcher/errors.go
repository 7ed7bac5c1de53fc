package matcher

import (
	"fmt"
	"unicode/utf8"

	"github.com/cockroachdb/errors"
)

var (
	// ErrEmptyStore is returned by Get on a store of length zero.
	ErrEmptyStore = errors.New("matcher: empty pattern store")

	// ErrMissingPattern is returned by Get when the pattern at the resolved
	// index is missing. Callers normally check Store.IsMissing first.
	ErrMissingPattern = errors.New("matcher: missing pattern")

	// ErrPatternCompilation marks every *CompileError.
	ErrPatternCompilation = errors.New("matcher: pattern compilation failed")

	// ErrResourceExhausted is returned when the engine reports success but
	// produces no matcher.
	ErrResourceExhausted = errors.New("matcher: engine produced no matcher")
)

// excerptRunes bounds the pattern context carried by a CompileError.
const excerptRunes = 32

// CompileError is a pattern the engine rejected.
type CompileError struct {
	// Index is the store index of the pattern.
	Index int

	// Code is the engine's diagnostic code, if it exposes one.
	Code string

	// Excerpt is the start of the pattern, or empty when the pattern is not
	// valid UTF-8.
	Excerpt string

	Err error
}

func newCompileError(idx int, pattern string, err error) *CompileError {
	ce := &CompileError{Index: idx, Excerpt: excerpt(pattern), Err: err}

	var c interface{ ErrorCode() string }
	if errors.As(err, &c) {
		ce.Code = c.ErrorCode()
	}
	return ce
}

func (e *CompileError) Error() string {
	msg := fmt.Sprintf("matcher: pattern %d", e.Index)
	if e.Excerpt != "" {
		msg += fmt.Sprintf(" (%q)", e.Excerpt)
	}
	return msg + ": " + e.Err.Error()
}

// Unwrap returns the engine error.
func (e *CompileError) Unwrap() error {
	return e.Err
}

// Is makes errors.Is(err, ErrPatternCompilation) hold for every CompileError.
func (e *CompileError) Is(target error) bool {
	return target == ErrPatternCompilation
}

func excerpt(pattern string) string {
	if !utf8.ValidString(pattern) {
		return ""
	}

	n := 0
	for i := range pattern {
		if n == excerptRunes {
			return pattern[:i] + "…"
		}
		n++
	}
	return pattern
}
