// Package regexp compiles regex patterns for the matcher cache, selecting the
// fastest engine that can honor the pattern and its flags.
//
// By default it compiles patterns with coregex (an accelerated RE2-compatible
// engine). When the pattern requires PCRE/Perl features that RE2/coregex
// cannot execute, or the flags ask for case folding or for a mode only regexp2
// has (free-spacing comments, Unicode word boundaries), the package falls back
// to [regexp2].
//
// Both engines treat only \n as a line terminator and both reject unknown
// escapes, so the unix_lines and error_on_unknown_escapes flags need no
// translation.
//
// Limits follow the engine: a stack limit bounds coregex's compile-time
// recursion depth (coregex matching does not backtrack), a time limit becomes
// a regexp2 match timeout. Asking an engine for a limit
// it does not have returns [ErrLimitUnsupported].
package regexp
