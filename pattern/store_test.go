package pattern

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.dw1.io/x/regexvec/diag"
)

func TestText(t *testing.T) {
	assert.True(t, Missing().IsMissing())
	assert.True(t, Text{}.IsMissing())
	assert.Equal(t, "NA", Missing().String())

	v, ok := Of("").Value()
	assert.True(t, ok)
	assert.Empty(t, v)

	s := "a+"
	assert.Equal(t, Of("a+"), FromPtr(&s))
	assert.True(t, FromPtr(nil).IsMissing())

	assert.Equal(t, []Text{Of("x"), Of("y")}, Texts("x", "y"))
}

func TestNewEmptyPatternDiagnostic(t *testing.T) {
	var rec diag.Recorder

	s, err := New(Texts("a.*b", "", "c+"), 3, WithDiagnostics(rec.Handle))
	require.NoError(t, err)
	require.Equal(t, 3, s.Len())

	want := []diag.Diagnostic{{Kind: diag.EmptyPattern, Index: 1}}
	if diff := cmp.Diff(want, rec.Diagnostics()); diff != "" {
		t.Fatalf("diagnostics mismatch (-want +got):\n%s", diff)
	}
}

func TestNewMissingIsNotEmpty(t *testing.T) {
	var rec diag.Recorder

	s, err := New([]Text{Missing(), Of("x")}, 2, WithDiagnostics(rec.Handle))
	require.NoError(t, err)
	assert.Empty(t, rec.Diagnostics())
	assert.True(t, s.IsMissing(0))
	assert.False(t, s.IsMissing(1))
}

func TestNewRecycles(t *testing.T) {
	var rec diag.Recorder

	s, err := New(Texts("a", ""), 5, WithDiagnostics(rec.Handle))
	require.NoError(t, err)
	require.Equal(t, 5, s.Len())

	for i, want := range []string{"a", "", "a", "", "a"} {
		assert.Equal(t, Of(want), s.Get(i), "entry %d", i)
	}
	// One diagnostic per stored entry, not per raw entry.
	assert.Equal(t, 2, rec.Count(diag.EmptyPattern))
}

func TestNewErrors(t *testing.T) {
	_, err := New(nil, 3, WithDiagnostics(diag.Discard))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrRecycleEmpty))

	_, err = New(Texts("a"), -1, WithDiagnostics(diag.Discard))
	require.Error(t, err)

	s, err := New(nil, 0)
	require.NoError(t, err)
	assert.Zero(t, s.Len())
}

func TestGetWrapsModuloN(t *testing.T) {
	s, err := New(Texts("x", "y", "z"), 3, WithDiagnostics(diag.Discard))
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		for k := 0; k < 4; k++ {
			assert.Equal(t, s.Get(i), s.Get(i+k*3))
		}
	}
}

func TestNewCopiesInput(t *testing.T) {
	raw := Texts("a", "b")
	s, err := New(raw, 2, WithDiagnostics(diag.Discard))
	require.NoError(t, err)

	raw[0] = Of("changed")
	assert.Equal(t, Of("a"), s.Get(0))
}

func TestRecycle(t *testing.T) {
	assert.Equal(t, []int{1, 2, 1, 2, 1}, Recycle([]int{1, 2}, 5))
	assert.Equal(t, []int{1}, Recycle([]int{1, 2}, 1))
	assert.Empty(t, Recycle([]int{}, 3))
	assert.Empty(t, Recycle([]int{1}, 0))
}
