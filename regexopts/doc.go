// Package regexopts turns a regex option mapping into compilation flags and
// matcher limits.
//
// The recognized keys are case_insensitive, comments, dotall, literal,
// multiline, unix_lines, uword and error_on_unknown_escapes (booleans) plus
// stack_limit and time_limit (non-negative integers). Unknown keys raise a
// [diag.UnknownOption] diagnostic and are otherwise ignored. A recognized key
// with a missing value is an error.
package regexopts
