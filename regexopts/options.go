package regexopts

import (
	"fmt"
	"slices"

	"github.com/cockroachdb/errors"

	"go.dw1.io/x/regexvec/cast"
	"go.dw1.io/x/regexvec/diag"
	"go.dw1.io/x/regexvec/json"
)

// Recognized option names.
const (
	KeyCaseInsensitive       = "case_insensitive"
	KeyComments              = "comments"
	KeyDotAll                = "dotall"
	KeyLiteral               = "literal"
	KeyMultiline             = "multiline"
	KeyUnixLines             = "unix_lines"
	KeyUWord                 = "uword"
	KeyErrorOnUnknownEscapes = "error_on_unknown_escapes"
	KeyStackLimit            = "stack_limit"
	KeyTimeLimit             = "time_limit"
)

// ErrInvalidConfig marks every configuration error returned by [Parse].
var ErrInvalidConfig = errors.New("regexopts: invalid configuration")

// Options are the compilation flags and limits applied to every matcher
// compiled for one vectorized operation.
type Options struct {
	Flags Flag

	// StackLimit caps the engine's backtracking stack, in bytes.
	// Zero keeps the engine default.
	StackLimit int32

	// TimeLimit is the per-match work budget in engine time units.
	// Zero means no limit.
	TimeLimit int32
}

// Entry is one named value of an ordered configuration.
type Entry struct {
	Name  string
	Value any
}

type setter func(o *Options, v any) error

func flagSetter(f Flag) setter {
	return func(o *Options, v any) error {
		on, err := cast.To[bool](v)
		if err != nil {
			return err
		}
		if on {
			o.Flags |= f
		}
		return nil
	}
}

func limitSetter(field func(*Options) *int32) setter {
	return func(o *Options, v any) error {
		n, err := cast.To[int32](v)
		if err != nil {
			return err
		}
		if n < 0 {
			return errors.Newf("must be non-negative, got %d", n)
		}
		*field(o) = n
		return nil
	}
}

// setters is the closed set of recognized options.
var setters = map[string]setter{
	KeyCaseInsensitive:       flagSetter(CaseInsensitive),
	KeyComments:              flagSetter(Comments),
	KeyDotAll:                flagSetter(DotAll),
	KeyLiteral:               flagSetter(Literal),
	KeyMultiline:             flagSetter(Multiline),
	KeyUnixLines:             flagSetter(UnixLines),
	KeyUWord:                 flagSetter(UWord),
	KeyErrorOnUnknownEscapes: flagSetter(ErrorOnUnknownEscapes),
	KeyStackLimit:            limitSetter(func(o *Options) *int32 { return &o.StackLimit }),
	KeyTimeLimit:             limitSetter(func(o *Options) *int32 { return &o.TimeLimit }),
}

type config struct {
	handler diag.Handler
}

// ParseOption configures [Parse] and [ParseJSON].
type ParseOption func(*config)

// WithDiagnostics sets where unknown-key diagnostics go. The default is
// [diag.Log].
func WithDiagnostics(h diag.Handler) ParseOption {
	return func(c *config) {
		c.handler = h
	}
}

// Parse builds Options from a configuration. config may be nil (all
// defaults), a map keyed by option name, or an ordered []Entry. Map entries
// are visited in sorted key order.
func Parse(config any, opts ...ParseOption) (Options, error) {
	entries, err := toEntries(config)
	if err != nil {
		return Options{}, err
	}

	return parseEntries(entries, opts)
}

// ParseJSON parses a JSON object of options. Blank input and null mean no
// options.
func ParseJSON(data []byte, opts ...ParseOption) (Options, error) {
	obj, err := json.DecodeObject(data)
	if err != nil {
		return Options{}, errors.Mark(err, ErrInvalidConfig)
	}

	return Parse(obj, opts...)
}

func parseEntries(entries []Entry, opts []ParseOption) (Options, error) {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}
	report := diag.OrLog(cfg.handler)

	var o Options
	for _, e := range entries {
		if e.Name == "" {
			return Options{}, errors.Wrap(ErrInvalidConfig, "unnamed option")
		}

		set, ok := setters[e.Name]
		if !ok {
			report(diag.Diagnostic{Kind: diag.UnknownOption, Index: -1, Key: e.Name})
			continue
		}

		if err := set(&o, e.Value); err != nil {
			return Options{}, errors.Mark(
				errors.Wrapf(err, "regexopts: option %q", e.Name),
				ErrInvalidConfig,
			)
		}
	}

	return o, nil
}

func toEntries(config any) ([]Entry, error) {
	switch c := config.(type) {
	case nil:
		return nil, nil
	case []Entry:
		return c, nil
	case map[string]any:
		return sortedEntries(c), nil
	case map[string]bool:
		return sortedEntries(c), nil
	case map[string]int:
		return sortedEntries(c), nil
	default:
		return nil, errors.Wrapf(ErrInvalidConfig, "expected a mapping, got %T", config)
	}
}

func sortedEntries[V any](m map[string]V) []Entry {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	out := make([]Entry, len(keys))
	for i, k := range keys {
		out[i] = Entry{Name: k, Value: m[k]}
	}
	return out
}

// Config re-derives a configuration mapping from o: true for each set flag,
// and the limits when positive. Parsing the result yields o again.
func (o Options) Config() map[string]any {
	out := make(map[string]any)
	for _, fn := range flagNames {
		if o.Flags.Has(fn.flag) {
			out[fn.name] = true
		}
	}
	if o.StackLimit > 0 {
		out[KeyStackLimit] = o.StackLimit
	}
	if o.TimeLimit > 0 {
		out[KeyTimeLimit] = o.TimeLimit
	}
	return out
}

func (o Options) String() string {
	return fmt.Sprintf("flags=%s stack_limit=%d time_limit=%d", o.Flags, o.StackLimit, o.TimeLimit)
}
