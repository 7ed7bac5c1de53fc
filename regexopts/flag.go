package regexopts

import (
	"strings"
)

// Flag is a set of regex compilation switches. Bit values follow the
// classic engine flag layout.
type Flag uint32

const (
	// UnixLines treats only \n as a line terminator.
	UnixLines Flag = 1 << 0
	// CaseInsensitive enables case-insensitive matching.
	CaseInsensitive Flag = 1 << 1
	// Comments allows white space and #comments in the pattern.
	Comments Flag = 1 << 2
	// Multiline makes ^ and $ match at line boundaries.
	Multiline Flag = 1 << 3
	// Literal treats the whole pattern as literal text.
	Literal Flag = 1 << 4
	// DotAll lets . match line terminators.
	DotAll Flag = 1 << 5
	// UWord uses Unicode word boundaries for \b.
	UWord Flag = 1 << 8
	// ErrorOnUnknownEscapes rejects escapes of unrecognized letters.
	ErrorOnUnknownEscapes Flag = 1 << 9
)

// flagNames lists flags in key order; it backs String and Config.
var flagNames = []struct {
	flag Flag
	name string
}{
	{CaseInsensitive, KeyCaseInsensitive},
	{Comments, KeyComments},
	{DotAll, KeyDotAll},
	{Literal, KeyLiteral},
	{Multiline, KeyMultiline},
	{UnixLines, KeyUnixLines},
	{UWord, KeyUWord},
	{ErrorOnUnknownEscapes, KeyErrorOnUnknownEscapes},
}

// Has reports whether every bit of g is set in f.
func (f Flag) Has(g Flag) bool {
	return f&g == g
}

func (f Flag) String() string {
	if f == 0 {
		return "none"
	}

	var names []string
	for _, fn := range flagNames {
		if f.Has(fn.flag) {
			names = append(names, fn.name)
		}
	}
	return strings.Join(names, "|")
}
