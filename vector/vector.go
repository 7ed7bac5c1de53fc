package vector

import (
	"context"
	"runtime"

	"github.com/cockroachdb/errors"
	"golang.org/x/sync/errgroup"

	"go.dw1.io/x/regexvec/diag"
	"go.dw1.io/x/regexvec/matcher"
	"go.dw1.io/x/regexvec/pattern"
	"go.dw1.io/x/regexvec/regexopts"
	"go.dw1.io/x/regexvec/regexp"
)

// Logical is a boolean that can be missing.
type Logical uint8

const (
	False Logical = iota
	True
	NA
)

func (l Logical) String() string {
	switch l {
	case False:
		return "FALSE"
	case True:
		return "TRUE"
	default:
		return "NA"
	}
}

// Span is the byte range of a match. A span with Start -1 means no match.
type Span struct {
	Start, End int
	NA         bool
}

// NoMatch is the span reported when a pattern does not match.
var NoMatch = Span{Start: -1, End: -1}

// CountNA is the count reported for a missing element.
const CountNA = -1

type config struct {
	workers int
	handler diag.Handler
}

// Option configures an operation.
type Option func(*config)

// WithWorkers sets the number of goroutines. Values below one mean
// GOMAXPROCS.
func WithWorkers(n int) Option {
	return func(c *config) {
		c.workers = n
	}
}

// WithDiagnostics sets where the workers' caches send diagnostics.
func WithDiagnostics(h diag.Handler) Option {
	return func(c *config) {
		c.handler = h
	}
}

// Length returns the recycled length of inputs of the given lengths: the
// longest, or zero if any is empty.
func Length(lens ...int) int {
	n := 0
	for _, l := range lens {
		if l == 0 {
			return 0
		}
		n = max(n, l)
	}
	return n
}

// Detect reports, per element, whether the haystack matches the pattern.
func Detect(ctx context.Context, store *pattern.Store, opts regexopts.Options, haystack []pattern.Text, o ...Option) ([]Logical, error) {
	return each(ctx, store, opts, haystack, NA, o, func(re *regexp.Regexp, s string, _ int) (Logical, error) {
		ok, err := re.Detect(s)
		if err != nil || !ok {
			return False, err
		}
		return True, nil
	})
}

// Locate returns, per element, the byte span of the leftmost match.
func Locate(ctx context.Context, store *pattern.Store, opts regexopts.Options, haystack []pattern.Text, o ...Option) ([]Span, error) {
	return each(ctx, store, opts, haystack, Span{NA: true}, o, func(re *regexp.Regexp, s string, _ int) (Span, error) {
		loc, err := re.Locate(s)
		if err != nil || loc == nil {
			return NoMatch, err
		}
		return Span{Start: loc[0], End: loc[1]}, nil
	})
}

// Extract returns, per element, the leftmost match. No match is missing.
func Extract(ctx context.Context, store *pattern.Store, opts regexopts.Options, haystack []pattern.Text, o ...Option) ([]pattern.Text, error) {
	return each(ctx, store, opts, haystack, pattern.Missing(), o, func(re *regexp.Regexp, s string, _ int) (pattern.Text, error) {
		m, ok, err := re.Extract(s)
		if err != nil || !ok {
			return pattern.Missing(), err
		}
		return pattern.Of(m), nil
	})
}

// Count returns, per element, the number of non-overlapping matches, or
// CountNA.
func Count(ctx context.Context, store *pattern.Store, opts regexopts.Options, haystack []pattern.Text, o ...Option) ([]int, error) {
	return each(ctx, store, opts, haystack, CountNA, o, func(re *regexp.Regexp, s string, _ int) (int, error) {
		return re.Count(s)
	})
}

// Replace replaces every match in each element. replacement is recycled
// along with the haystack and the patterns; a missing replacement gives a
// missing result.
func Replace(ctx context.Context, store *pattern.Store, opts regexopts.Options, haystack, replacement []pattern.Text, o ...Option) ([]pattern.Text, error) {
	if len(replacement) == 0 {
		return []pattern.Text{}, nil
	}

	n := Length(len(haystack), store.Len(), len(replacement))
	return run(ctx, store, opts, n, pattern.Missing(), o,
		func(i int) (string, bool) {
			s, ok := haystack[i%len(haystack)].Value()
			if !ok || replacement[i%len(replacement)].IsMissing() {
				return "", false
			}
			return s, true
		},
		func(re *regexp.Regexp, s string, i int) (pattern.Text, error) {
			repl, _ := replacement[i%len(replacement)].Value()
			out, err := re.Replace(s, repl)
			if err != nil {
				return pattern.Missing(), err
			}
			return pattern.Of(out), nil
		})
}

func each[T any](
	ctx context.Context,
	store *pattern.Store,
	opts regexopts.Options,
	haystack []pattern.Text,
	na T,
	o []Option,
	fn func(re *regexp.Regexp, s string, i int) (T, error),
) ([]T, error) {
	n := Length(len(haystack), store.Len())
	return run(ctx, store, opts, n, na, o,
		func(i int) (string, bool) {
			return haystack[i%len(haystack)].Value()
		},
		fn)
}

func run[T any](
	ctx context.Context,
	store *pattern.Store,
	opts regexopts.Options,
	n int,
	na T,
	o []Option,
	input func(i int) (string, bool),
	fn func(re *regexp.Regexp, s string, i int) (T, error),
) ([]T, error) {
	cfg := config{workers: runtime.GOMAXPROCS(0)}
	for _, opt := range o {
		opt(&cfg)
	}
	if cfg.workers < 1 {
		cfg.workers = runtime.GOMAXPROCS(0)
	}

	out := make([]T, n)
	if n == 0 {
		return out, nil
	}

	workers := min(cfg.workers, n)
	chunk := (n + workers - 1) / workers

	g, ctx := errgroup.WithContext(ctx)
	for lo := 0; lo < n; lo += chunk {
		hi := min(lo+chunk, n)

		g.Go(func() error {
			c := matcher.New(store, opts, matcher.WithDiagnostics(cfg.handler))
			defer c.Close()

			for i := lo; i < hi; i++ {
				if err := ctx.Err(); err != nil {
					return err
				}

				s, ok := input(i)
				if !ok || store.IsMissing(i) {
					out[i] = na
					continue
				}

				re, err := c.Get(i)
				if err != nil {
					return errors.Wrapf(err, "element %d", i)
				}

				v, err := fn(re, s, i)
				if err != nil {
					return errors.Wrapf(err, "element %d", i)
				}
				out[i] = v
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
