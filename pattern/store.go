package pattern

import (
	"github.com/cockroachdb/errors"

	"go.dw1.io/x/regexvec/diag"
)

// ErrRecycleEmpty is returned when an empty sequence is asked to fill a
// positive recycling length.
var ErrRecycleEmpty = errors.New("pattern: cannot recycle an empty sequence")

type config struct {
	handler diag.Handler
}

// Option configures [New].
type Option func(*config)

// WithDiagnostics sets where construction diagnostics go. The default is
// [diag.Log].
func WithDiagnostics(h diag.Handler) Option {
	return func(c *config) {
		c.handler = h
	}
}

// Store is an immutable, recycled sequence of pattern texts.
type Store struct {
	texts []Text
}

// New builds a Store of exactly n entries from raw. If len(raw) differs from
// n, raw is recycled to length n first.
//
// Every present pattern of zero length raises a [diag.EmptyPattern]
// diagnostic; construction still succeeds.
func New(raw []Text, n int, opts ...Option) (*Store, error) {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}
	report := diag.OrLog(cfg.handler)

	if n < 0 {
		return nil, errors.Newf("pattern: negative recycling length %d", n)
	}
	if len(raw) == 0 && n > 0 {
		return nil, errors.Wrapf(ErrRecycleEmpty, "length %d", n)
	}

	s := &Store{texts: Recycle(raw, n)}
	for i, t := range s.texts {
		if v, ok := t.Value(); ok && len(v) == 0 {
			report(diag.Diagnostic{Kind: diag.EmptyPattern, Index: i})
		}
	}

	return s, nil
}

// Recycle returns a new slice of n entries where entry i is raw[i%len(raw)].
// It returns an empty slice if raw is empty.
func Recycle[T any](raw []T, n int) []T {
	if len(raw) == 0 || n <= 0 {
		return []T{}
	}

	out := make([]T, n)
	for i := range out {
		out[i] = raw[i%len(raw)]
	}
	return out
}

// Len returns the recycling length n.
func (s *Store) Len() int {
	return len(s.texts)
}

// Get returns the entry at i mod n. Get panics on an empty store, the same
// way indexing an empty slice would.
func (s *Store) Get(i int) Text {
	return s.texts[i%len(s.texts)]
}

// IsMissing reports whether the entry at i mod n is the missing marker.
func (s *Store) IsMissing(i int) bool {
	return s.Get(i).IsMissing()
}
