package regexopts

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.dw1.io/x/regexvec/diag"
)

func TestParseAbsent(t *testing.T) {
	for name, in := range map[string]any{
		"nil":      nil,
		"emptyMap": map[string]any{},
		"nilMap":   map[string]any(nil),
		"entries":  []Entry{},
	} {
		t.Run(name, func(t *testing.T) {
			o, err := Parse(in, WithDiagnostics(diag.Discard))
			require.NoError(t, err)
			assert.Equal(t, Options{}, o)
		})
	}
}

func TestParseEachFlag(t *testing.T) {
	cases := map[string]Flag{
		KeyCaseInsensitive:       CaseInsensitive,
		KeyComments:              Comments,
		KeyDotAll:                DotAll,
		KeyLiteral:               Literal,
		KeyMultiline:             Multiline,
		KeyUnixLines:             UnixLines,
		KeyUWord:                 UWord,
		KeyErrorOnUnknownEscapes: ErrorOnUnknownEscapes,
	}

	for key, flag := range cases {
		t.Run(key, func(t *testing.T) {
			o, err := Parse(map[string]any{key: true})
			require.NoError(t, err)
			assert.Equal(t, flag, o.Flags)

			o, err = Parse(map[string]any{key: false})
			require.NoError(t, err)
			assert.Zero(t, o.Flags)
		})
	}
}

func TestParseCaseInsensitiveWithStackLimit(t *testing.T) {
	o, err := Parse(map[string]any{"case_insensitive": true, "stack_limit": 4096})
	require.NoError(t, err)
	assert.Equal(t, Options{Flags: CaseInsensitive, StackLimit: 4096}, o)
	assert.Zero(t, o.TimeLimit)
}

func TestParseUnknownKey(t *testing.T) {
	var rec diag.Recorder

	o, err := Parse(map[string]any{"foo": true, "dotall": true}, WithDiagnostics(rec.Handle))
	require.NoError(t, err)
	assert.Equal(t, DotAll, o.Flags)

	want := []diag.Diagnostic{{Kind: diag.UnknownOption, Index: -1, Key: "foo"}}
	if diff := cmp.Diff(want, rec.Diagnostics()); diff != "" {
		t.Fatalf("diagnostics mismatch (-want +got):\n%s", diff)
	}
}

func TestParseUnknownKeysKeepOrder(t *testing.T) {
	var rec diag.Recorder

	_, err := Parse([]Entry{{"zzz", 1}, {"aaa", nil}}, WithDiagnostics(rec.Handle))
	require.NoError(t, err)

	got := rec.Diagnostics()
	require.Len(t, got, 2)
	assert.Equal(t, "zzz", got[0].Key)
	assert.Equal(t, "aaa", got[1].Key)
}

func TestParseErrors(t *testing.T) {
	var nilBool *bool

	cases := []struct {
		name string
		in   any
	}{
		{"notMapping", []string{"case_insensitive"}},
		{"scalar", true},
		{"unnamed", []Entry{{Name: "", Value: true}}},
		{"unnamedMapKey", map[string]any{"": true}},
		{"missingBool", map[string]any{"dotall": nil}},
		{"missingPointer", map[string]any{"dotall": nilBool}},
		{"missingLimit", map[string]any{"time_limit": nil}},
		{"negativeLimit", map[string]any{"stack_limit": -1}},
		{"fractionLimit", map[string]any{"time_limit": 2.5}},
		{"multiValue", map[string]any{"literal": []bool{true, true}}},
		{"badInt", map[string]any{"stack_limit": "lots"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse(tc.in, WithDiagnostics(diag.Discard))
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidConfig), "got %v", err)
		})
	}
}

func TestParseMissingValueOnUnknownKeyIsNotAnError(t *testing.T) {
	_, err := Parse(map[string]any{"foo": nil}, WithDiagnostics(diag.Discard))
	require.NoError(t, err)
}

func TestParseTypedMaps(t *testing.T) {
	o, err := Parse(map[string]bool{"multiline": true, "uword": true})
	require.NoError(t, err)
	assert.Equal(t, Multiline|UWord, o.Flags)

	o, err = Parse(map[string]int{"time_limit": 5, "stack_limit": 0})
	require.NoError(t, err)
	assert.Equal(t, Options{TimeLimit: 5}, o)
}

func TestConfigRoundTrip(t *testing.T) {
	in := map[string]any{
		"case_insensitive":         true,
		"comments":                 false,
		"multiline":                true,
		"error_on_unknown_escapes": true,
		"time_limit":               10,
	}

	first, err := Parse(in)
	require.NoError(t, err)

	cfg := first.Config()
	assert.Equal(t, map[string]any{
		"case_insensitive":         true,
		"multiline":                true,
		"error_on_unknown_escapes": true,
		"time_limit":               int32(10),
	}, cfg)

	second, err := Parse(cfg)
	require.NoError(t, err)
	assert.Equal(t, first, second)

	third, err := Parse(in)
	require.NoError(t, err)
	assert.Equal(t, first, third)
}

func TestParseJSON(t *testing.T) {
	o, err := ParseJSON([]byte(`{"case_insensitive": true, "stack_limit": 4096, "time_limit": 0}`))
	require.NoError(t, err)
	assert.Equal(t, Options{Flags: CaseInsensitive, StackLimit: 4096}, o)

	o, err = ParseJSON([]byte(`null`))
	require.NoError(t, err)
	assert.Equal(t, Options{}, o)

	_, err = ParseJSON([]byte(`[true]`))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidConfig))

	_, err = ParseJSON([]byte(`{"dotall": null}`))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidConfig))
}

func TestFlagString(t *testing.T) {
	assert.Equal(t, "none", Flag(0).String())
	assert.Equal(t, "case_insensitive|dotall", (DotAll | CaseInsensitive).String())
	assert.True(t, (DotAll | Literal).Has(Literal))
	assert.False(t, DotAll.Has(DotAll|Literal))
}

func TestOptionsString(t *testing.T) {
	o := Options{Flags: Multiline, StackLimit: 1, TimeLimit: 2}
	assert.Equal(t, "flags=multiline stack_limit=1 time_limit=2", o.String())
}
