package matcher

import (
	"github.com/cockroachdb/errors"

	"go.dw1.io/x/regexvec/diag"
	"go.dw1.io/x/regexvec/pattern"
	"go.dw1.io/x/regexvec/regexopts"
	"go.dw1.io/x/regexvec/regexp"
)

type config struct {
	handler diag.Handler
}

// Option configures a Cache.
type Option func(*config)

// WithDiagnostics sets where ignored-limit diagnostics go. The default is
// [diag.Log].
func WithDiagnostics(h diag.Handler) Option {
	return func(c *config) {
		c.handler = h
	}
}

// Stats counts what a Cache has done.
type Stats struct {
	Compiles      int
	Reuses        int
	Releases      int
	Failures      int
	IgnoredLimits int
}

type slot[M comparable] struct {
	index int
	m     M
}

// Cache is a single-slot cache of compiled matchers over a pattern.Store.
type Cache[M comparable] struct {
	store  *pattern.Store
	opts   regexopts.Options
	engine Engine[M]
	report diag.Handler

	cur   *slot[M]
	stats Stats
}

// New returns a Cache compiling with [regexp.Engine].
func New(store *pattern.Store, opts regexopts.Options, o ...Option) *Cache[*regexp.Regexp] {
	return NewCache[*regexp.Regexp](store, opts, regexp.Engine{}, o...)
}

// NewCache returns an empty Cache over store. opts is copied.
func NewCache[M comparable](store *pattern.Store, opts regexopts.Options, engine Engine[M], o ...Option) *Cache[M] {
	var cfg config
	for _, opt := range o {
		opt(&cfg)
	}

	return &Cache[M]{
		store:  store,
		opts:   opts,
		engine: engine,
		report: diag.OrLog(cfg.handler),
	}
}

// Get returns the matcher for position i, compiling it unless the cached
// matcher was compiled for the same index i mod n. The result is owned by
// the Cache.
//
// On any error the cache is left empty.
func (c *Cache[M]) Get(i int) (M, error) {
	var zero M

	n := c.store.Len()
	if n == 0 {
		return zero, ErrEmptyStore
	}
	idx := i % n

	if c.cur != nil {
		if c.cur.index == idx {
			c.stats.Reuses++
			return c.cur.m, nil
		}
		c.release()
	}

	text, ok := c.store.Get(idx).Value()
	if !ok {
		return zero, errors.Wrapf(ErrMissingPattern, "index %d", idx)
	}

	m, err := c.engine.Compile(text, c.opts.Flags)
	if err != nil {
		if m != zero {
			c.engine.Release(m)
			c.stats.Releases++
		}
		c.stats.Failures++
		return zero, newCompileError(idx, text, err)
	}
	if m == zero {
		c.stats.Failures++
		return zero, errors.Wrapf(ErrResourceExhausted, "index %d", idx)
	}
	c.stats.Compiles++

	c.applyLimits(idx, m)

	c.cur = &slot[M]{index: idx, m: m}
	return m, nil
}

// applyLimits installs positive limits on m. Failures are reported and
// otherwise ignored: a limit that cannot be set leaves the matcher unbounded.
func (c *Cache[M]) applyLimits(idx int, m M) {
	if c.opts.StackLimit > 0 {
		if err := c.engine.SetStackLimit(m, c.opts.StackLimit); err != nil {
			c.ignore(idx, regexopts.KeyStackLimit, err)
		}
	}
	if c.opts.TimeLimit > 0 {
		if err := c.engine.SetTimeLimit(m, c.opts.TimeLimit); err != nil {
			c.ignore(idx, regexopts.KeyTimeLimit, err)
		}
	}
}

func (c *Cache[M]) ignore(idx int, key string, err error) {
	c.stats.IgnoredLimits++
	c.report(diag.Diagnostic{Kind: diag.LimitIgnored, Index: idx, Key: key, Err: err})
}

func (c *Cache[M]) release() {
	cur := c.cur
	c.cur = nil
	c.engine.Release(cur.m)
	c.stats.Releases++
}

// Cached returns the index of the cached matcher, or -1 when empty.
func (c *Cache[M]) Cached() int {
	if c.cur == nil {
		return -1
	}
	return c.cur.index
}

// Options returns the options the Cache compiles with.
func (c *Cache[M]) Options() regexopts.Options {
	return c.opts
}

// Store returns the pattern store.
func (c *Cache[M]) Store() *pattern.Store {
	return c.store
}

// Stats returns counters for this Cache.
func (c *Cache[M]) Stats() Stats {
	return c.stats
}

// Close releases the cached matcher, if any. It is safe to call more than
// once and on a Cache that never compiled anything.
func (c *Cache[M]) Close() {
	if c.cur != nil {
		c.release()
	}
}
