package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.dw1.io/x/regexvec/matcher"
	"go.dw1.io/x/regexvec/regexopts"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	cmd := newRootCmd(&out)
	cmd.SetArgs(args)
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestDetect(t *testing.T) {
	out, err := run(t, "detect", "-p", "a.*b", "-p", "c+", "xaab", "cc", "zzz")
	require.NoError(t, err)
	assert.Equal(t, "TRUE\nTRUE\nFALSE\n", out)
}

func TestDetectOpts(t *testing.T) {
	out, err := run(t, "detect", "-p", "abc", "--opts", `{"case_insensitive": true}`, "ABC", "x")
	require.NoError(t, err)
	assert.Equal(t, "TRUE\nFALSE\n", out)
}

func TestLocate(t *testing.T) {
	out, err := run(t, "locate", "-p", "b+", "abbc", "zz")
	require.NoError(t, err)
	assert.Equal(t, "1 3\n-1 -1\n", out)
}

func TestExtractMissingPattern(t *testing.T) {
	out, err := run(t, "extract", "-p", `\d+`, "-p", "NA", "a12", "b34")
	require.NoError(t, err)
	assert.Equal(t, "12\nNA\n", out)
}

func TestCountWorkers(t *testing.T) {
	out, err := run(t, "count", "-p", "a", "--workers", "3", "banana", "aa", "b", "a")
	require.NoError(t, err)
	assert.Equal(t, "3\n2\n0\n1\n", out)
}

func TestReplace(t *testing.T) {
	out, err := run(t, "replace", "-p", "o", "-r", "0", "foo", "bar")
	require.NoError(t, err)
	assert.Equal(t, "f00\nbar\n", out)

	_, err = run(t, "replace", "-p", "o", "foo")
	require.Error(t, err)
}

func TestInputFiles(t *testing.T) {
	dir := t.TempDir()
	patterns := filepath.Join(dir, "patterns.txt")
	input := filepath.Join(dir, "input.txt")
	require.NoError(t, os.WriteFile(patterns, []byte("x+\ny+\n"), 0o600))
	require.NoError(t, os.WriteFile(input, []byte("xx\nNA\nzz\nyy\n"), 0o600))

	out, err := run(t, "extract", "--pattern-file", patterns, "--input", input)
	require.NoError(t, err)
	assert.Equal(t, "xx\nNA\nNA\nyy\n", out)
}

func TestErrors(t *testing.T) {
	_, err := run(t, "detect", "abc")
	require.Error(t, err)

	_, err = run(t, "detect", "-p", "(", "abc")
	require.Error(t, err)
	assert.True(t, errors.Is(err, matcher.ErrPatternCompilation))

	_, err = run(t, "detect", "-p", "a", "--opts", `{"dotall": null}`, "abc")
	require.Error(t, err)
	assert.True(t, errors.Is(err, regexopts.ErrInvalidConfig))
}

func TestDetectOptsUppercasePattern(t *testing.T) {
	out, err := run(t, "detect", "-p", "HELLO", "--opts", `{"case_insensitive": true}`, "hello", "bye")
	require.NoError(t, err)
	assert.Equal(t, "TRUE\nFALSE\n", out)
}

func TestJSONOutput(t *testing.T) {
	cases := []struct {
		name string
		args []string
		want string
	}{
		{"detect", []string{"detect", "-p", "a", "-p", "NA", "a", "a", "b"}, "[true,null,false]\n"},
		{"locate", []string{"locate", "-p", "b+", "abbc", "zz"}, "[[1,3],[-1,-1]]\n"},
		{"extract", []string{"extract", "-p", `\d+`, "a12", "b"}, `["12",null]` + "\n"},
		{"count", []string{"count", "-p", "a", "-p", "NA", "banana", "x"}, "[3,null]\n"},
		{"empty", []string{"count", "-p", "a"}, "[]\n"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			out, err := run(t, append(tc.args, "--json")...)
			require.NoError(t, err)
			assert.Equal(t, tc.want, out)
		})
	}
}

func TestOptionsCommand(t *testing.T) {
	out, err := run(t, "options", "--opts", `{"dotall": true, "case_insensitive": [true], "stack_limit": 4096, "time_limit": 0}`)
	require.NoError(t, err)
	assert.Equal(t, `{"case_insensitive":true,"dotall":true,"stack_limit":4096}`+"\n", out)

	out, err = run(t, "options")
	require.NoError(t, err)
	assert.Equal(t, "{}\n", out)

	_, err = run(t, "options", "--opts", `{"stack_limit": -1}`)
	require.Error(t, err)
}
