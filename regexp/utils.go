package regexp

import "strings"

// pcreOnly lists constructs that coregex (RE2 syntax) cannot parse but
// regexp2 can, based on pcre2syntax.
//
// Ref: https://pcre2project.github.io/pcre2/doc/pcre2syntax/
var pcreOnly = []string{
	// Lookarounds
	"(?=", "(?!", "(?<=", "(?<!",
	"(*pla:", "(*positive_lookahead:", "(*nla:", "(*negative_lookahead:",
	"(*plb:", "(*positive_lookbehind:", "(*nlb:", "(*negative_lookbehind:",
	// Atomic, branch reset, conditional, comment and recursion groups
	"(?>", "(*atomic:", "(?|", "(?(", "(?#", "(?R)", "(?P>", "(?&",
	// Backtracking control verbs
	"(*ACCEPT)", "(*FAIL)", "(*F)", "(*COMMIT)", "(*PRUNE)", "(*SKIP)", "(*THEN)",
	// Escapes RE2 rejects
	`\h`, `\H`, `\v`, `\V`, `\R`, `\X`, `\K`, `\e`, `\G`, `\Z`,
	// Named backreferences
	`\k<`, `\k'`, `\k{`, `\g`, `(?P=`,
}

// needsPCRE reports whether pattern uses a PCRE-only construct.
func needsPCRE(pattern string) bool {
	for _, tok := range pcreOnly {
		if strings.Contains(pattern, tok) {
			return true
		}
	}

	// Numbered backreferences: \1 .. \9 outside an escaped backslash.
	escaped := false
	for i := 0; i < len(pattern); i++ {
		if pattern[i] != '\\' {
			escaped = false
			continue
		}
		if !escaped && i+1 < len(pattern) && pattern[i+1] >= '1' && pattern[i+1] <= '9' {
			return true
		}
		escaped = !escaped
	}

	// Go supports (?P<name>...) but not (?<name>...) or (?'name'...).
	if !strings.Contains(pattern, "(?P<") &&
		(strings.Contains(pattern, "(?<") || strings.Contains(pattern, "(?'")) {
		return true
	}

	return false
}
