package regexp

import (
	"time"

	"github.com/cockroachdb/errors"
	"github.com/coregx/coregex"
	"github.com/dlclark/regexp2"

	"go.dw1.io/x/regexvec/regexopts"
)

// StackFrameSize is the number of stack-limit bytes granted per level of
// coregex recursion depth.
const StackFrameSize = 64

// Regexp is a compiled regular expression that delegates to either coregex
// (fast, RE2-compatible) or regexp2 (PCRE-compatible) depending on the
// pattern and flags seen at compile time.
type Regexp struct {
	pattern string
	expr    string
	flags   regexopts.Flag
	longest bool

	core *coregex.Regex
	pcre *regexp2.Regexp
}

// Compile parses a regular expression with no flags.
func Compile(pattern string) (*Regexp, error) {
	return CompileFlags(pattern, 0)
}

// MustCompile is like Compile but panics if the expression cannot be parsed.
func MustCompile(pattern string) *Regexp {
	re, err := Compile(pattern)
	if err != nil {
		panic(err)
	}
	return re
}

// CompileFlags compiles pattern under flags. Literal patterns are quoted
// first and ignore Comments. Errors are [*CompileError].
//
// Case-insensitive patterns compile with regexp2: coregex does not fold
// uppercase pattern letters under (?i). When case folding is the only reason
// for the switch, regexp2 runs in RE2 syntax mode so the pattern keeps its
// RE2 meaning.
func CompileFlags(pattern string, flags regexopts.Flag) (*Regexp, error) {
	r := &Regexp{pattern: pattern, flags: flags, expr: pattern}

	pcre := flags.Has(regexopts.Comments) || flags.Has(regexopts.UWord)
	if flags.Has(regexopts.Literal) {
		r.expr = coregex.QuoteMeta(pattern)
		pcre = flags.Has(regexopts.UWord)
	} else if needsPCRE(pattern) {
		pcre = true
	}

	opts := pcreOptions(flags)
	if !pcre && flags.Has(regexopts.CaseInsensitive) {
		pcre = true
		opts |= regexp2.RE2
	}

	if pcre {
		re, err := regexp2.Compile(r.expr, opts)
		if err != nil {
			return nil, newCompileError(EnginePCRE, err)
		}
		r.pcre = re
		return r, nil
	}

	core, err := coregex.CompileWithConfig(inlineFlags(flags)+r.expr, coregex.DefaultConfig())
	if err != nil {
		return nil, newCompileError(EngineCore, err)
	}
	r.core = core
	return r, nil
}

func pcreOptions(flags regexopts.Flag) regexp2.RegexOptions {
	opts := regexp2.None
	if flags.Has(regexopts.CaseInsensitive) {
		opts |= regexp2.IgnoreCase
	}
	if flags.Has(regexopts.Multiline) {
		opts |= regexp2.Multiline
	}
	if flags.Has(regexopts.DotAll) {
		opts |= regexp2.Singleline
	}
	if flags.Has(regexopts.Comments) && !flags.Has(regexopts.Literal) {
		opts |= regexp2.IgnorePatternWhitespace
	}
	return opts
}

func inlineFlags(flags regexopts.Flag) string {
	var b []byte
	if flags.Has(regexopts.Multiline) {
		b = append(b, 'm')
	}
	if flags.Has(regexopts.DotAll) {
		b = append(b, 's')
	}
	if len(b) == 0 {
		return ""
	}
	return "(?" + string(b) + ")"
}

// SetStackLimit recompiles a coregex-backed Regexp with a recursion depth of
// limit/StackFrameSize. The depth bounds recursion while the pattern is
// compiled, so the limit only decides whether the recompile succeeds: coregex
// matches without backtracking and has no match-time stack to bound. The
// Regexp is unchanged on error.
func (r *Regexp) SetStackLimit(limit int32) error {
	if r.core == nil {
		return errors.Wrapf(ErrLimitUnsupported, "stack limit on %s", r.Engine())
	}

	cfg := coregex.DefaultConfig()
	cfg.MaxRecursionDepth = int(limit) / StackFrameSize
	if err := cfg.Validate(); err != nil {
		return errors.Wrapf(err, "stack limit %d", limit)
	}

	core, err := coregex.CompileWithConfig(inlineFlags(r.flags)+r.expr, cfg)
	if err != nil {
		return errors.Wrapf(err, "stack limit %d", limit)
	}
	if r.longest {
		core.Longest()
	}
	r.core = core
	return nil
}

// SetTimeLimit bounds each regexp2 match to d. coregex runs in linear time
// and has no timeout.
func (r *Regexp) SetTimeLimit(d time.Duration) error {
	if r.pcre == nil {
		return errors.Wrapf(ErrLimitUnsupported, "time limit on %s", r.Engine())
	}
	if d <= 0 {
		return errors.Newf("regexp: time limit must be positive, got %s", d)
	}

	r.pcre.MatchTimeout = d
	return nil
}

// Release drops the engine state. Match methods return [ErrReleased]
// afterwards.
func (r *Regexp) Release() {
	r.core = nil
	r.pcre = nil
}

// Released reports whether Release has been called.
func (r *Regexp) Released() bool {
	return r.core == nil && r.pcre == nil
}

// Engine returns the name of the backing engine.
func (r *Regexp) Engine() string {
	if r.pcre != nil {
		return EnginePCRE
	}
	return EngineCore
}

// Flags returns the flags the Regexp was compiled with.
func (r *Regexp) Flags() regexopts.Flag {
	return r.flags
}

// String returns the source pattern used to compile the Regexp.
func (r *Regexp) String() string {
	return r.pattern
}

// Longest switches the underlying engine to leftmost-longest matching when
// supported. coregex provides this directly; regexp2 is already PCRE-style and
// does not change behavior here.
func (r *Regexp) Longest() {
	r.longest = true
	if r.core != nil {
		r.core.Longest()
	}
}

// NumSubexp returns the number of parenthesized subexpressions in this Regexp.
func (r *Regexp) NumSubexp() int {
	if r.core != nil {
		return r.core.NumSubexp()
	}
	if r.pcre == nil {
		return 0
	}

	max := 0
	for _, v := range r.pcre.GetGroupNumbers() {
		if v > max {
			max = v
		}
	}
	return max
}
