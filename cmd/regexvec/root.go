package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"go.dw1.io/x/regexvec/internal/source"
	"go.dw1.io/x/regexvec/json"
	"go.dw1.io/x/regexvec/pattern"
	"go.dw1.io/x/regexvec/regexopts"
	"go.dw1.io/x/regexvec/vector"
)

type flags struct {
	patterns     []string
	patternFile  string
	opts         string
	input        string
	workers      int
	json         bool
	replacements []string
}

// job is everything a vector operation needs, resolved from flags and args.
type job struct {
	store    *pattern.Store
	opts     regexopts.Options
	haystack []pattern.Text
	vopts    []vector.Option
}

// cell is one result, as a text line and as a JSON value.
type cell struct {
	text  string
	value any
}

func newRootCmd(out io.Writer) *cobra.Command {
	var f flags

	root := &cobra.Command{
		Use:           "regexvec",
		Short:         "Apply regex patterns element-wise to strings",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().AddGoFlagSet(flag.CommandLine)
	f.register(root.PersistentFlags())

	root.AddCommand(
		newOpCmd("detect", "Report whether each value matches", &f, out, func(ctx context.Context, j job) ([]cell, error) {
			res, err := vector.Detect(ctx, j.store, j.opts, j.haystack, j.vopts...)
			return format(res, err, vector.Logical.String, logicalValue)
		}),
		newOpCmd("locate", "Print the byte span of the first match", &f, out, func(ctx context.Context, j job) ([]cell, error) {
			res, err := vector.Locate(ctx, j.store, j.opts, j.haystack, j.vopts...)
			return format(res, err, formatSpan, spanValue)
		}),
		newOpCmd("extract", "Print the first match", &f, out, func(ctx context.Context, j job) ([]cell, error) {
			res, err := vector.Extract(ctx, j.store, j.opts, j.haystack, j.vopts...)
			return format(res, err, pattern.Text.String, textValue)
		}),
		newOpCmd("count", "Count the matches in each value", &f, out, func(ctx context.Context, j job) ([]cell, error) {
			res, err := vector.Count(ctx, j.store, j.opts, j.haystack, j.vopts...)
			return format(res, err, formatCount, countValue)
		}),
		newReplaceCmd(&f, out),
		newOptionsCmd(&f, out),
	)

	return root
}

func (f *flags) register(fs *pflag.FlagSet) {
	fs.StringArrayVarP(&f.patterns, "pattern", "p", nil, "pattern (repeatable; NA for missing)")
	fs.StringVar(&f.patternFile, "pattern-file", "", "file with one pattern per line")
	fs.StringVar(&f.opts, "opts", "", `regex options as a JSON object, e.g. {"case_insensitive":true}`)
	fs.StringVarP(&f.input, "input", "i", "", "file with one haystack value per line, appended to the arguments")
	fs.IntVarP(&f.workers, "workers", "w", 1, "number of workers (0 for GOMAXPROCS)")
	fs.BoolVar(&f.json, "json", false, "print results as a JSON array, null for missing")
}

type opFunc func(ctx context.Context, j job) ([]cell, error)

func newOpCmd(use, short string, f *flags, out io.Writer, op opFunc) *cobra.Command {
	return &cobra.Command{
		Use:   use + " [value...]",
		Short: short,
		RunE: func(cmd *cobra.Command, args []string) error {
			j, err := f.job(args)
			if err != nil {
				return err
			}

			cells, err := op(cmd.Context(), j)
			if err != nil {
				return err
			}
			if f.json {
				return writeJSON(out, cells)
			}
			return writeLines(out, cells)
		},
	}
}

func newReplaceCmd(f *flags, out io.Writer) *cobra.Command {
	cmd := newOpCmd("replace", "Replace every match in each value", f, out, func(ctx context.Context, j job) ([]cell, error) {
		repl := make([]pattern.Text, len(f.replacements))
		for i, r := range f.replacements {
			repl[i] = source.Parse(r)
		}

		res, err := vector.Replace(ctx, j.store, j.opts, j.haystack, repl, j.vopts...)
		return format(res, err, pattern.Text.String, textValue)
	})
	cmd.Flags().StringArrayVarP(&f.replacements, "replacement", "r", nil, "replacement (repeatable, recycled)")
	_ = cmd.MarkFlagRequired("replacement")
	return cmd
}

func newOptionsCmd(f *flags, out io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "options",
		Short: "Print the normalized --opts configuration as JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts, err := regexopts.ParseJSON([]byte(f.opts))
			if err != nil {
				return err
			}

			b, err := json.Marshal(opts.Config())
			if err != nil {
				return errors.Wrap(err, "encode options")
			}
			_, err = fmt.Fprintln(out, string(b))
			return err
		},
	}
}

func (f *flags) job(args []string) (job, error) {
	raw := make([]pattern.Text, 0, len(f.patterns))
	for _, p := range f.patterns {
		raw = append(raw, source.Parse(p))
	}
	if f.patternFile != "" {
		more, err := source.ReadLines(f.patternFile)
		if err != nil {
			return job{}, err
		}
		raw = append(raw, more...)
	}
	if len(raw) == 0 {
		return job{}, errors.New("at least one --pattern or --pattern-file is required")
	}

	opts, err := regexopts.ParseJSON([]byte(f.opts))
	if err != nil {
		return job{}, err
	}

	store, err := pattern.New(raw, len(raw))
	if err != nil {
		return job{}, err
	}

	haystack := make([]pattern.Text, 0, len(args))
	for _, a := range args {
		haystack = append(haystack, pattern.Of(a))
	}
	if f.input != "" {
		more, err := source.ReadLines(f.input)
		if err != nil {
			return job{}, err
		}
		haystack = append(haystack, more...)
	}

	return job{
		store:    store,
		opts:     opts,
		haystack: haystack,
		vopts:    []vector.Option{vector.WithWorkers(f.workers)},
	}, nil
}

func format[T any](res []T, err error, text func(T) string, value func(T) any) ([]cell, error) {
	if err != nil {
		return nil, err
	}

	out := make([]cell, len(res))
	for i, v := range res {
		out[i] = cell{text: text(v), value: value(v)}
	}
	return out, nil
}

func formatSpan(s vector.Span) string {
	switch {
	case s.NA:
		return "NA"
	case s.Start < 0:
		return "-1 -1"
	default:
		return fmt.Sprintf("%d %d", s.Start, s.End)
	}
}

func formatCount(n int) string {
	if n == vector.CountNA {
		return "NA"
	}
	return fmt.Sprint(n)
}

func logicalValue(l vector.Logical) any {
	if l == vector.NA {
		return nil
	}
	return l == vector.True
}

func spanValue(s vector.Span) any {
	if s.NA {
		return nil
	}
	return []int{s.Start, s.End}
}

func textValue(t pattern.Text) any {
	if v, ok := t.Value(); ok {
		return v
	}
	return nil
}

func countValue(n int) any {
	if n == vector.CountNA {
		return nil
	}
	return n
}

func writeLines(w io.Writer, cells []cell) error {
	if len(cells) == 0 {
		return nil
	}

	lines := make([]string, len(cells))
	for i, c := range cells {
		lines[i] = c.text
	}
	_, err := io.WriteString(w, strings.Join(lines, "\n")+"\n")
	return err
}

func writeJSON(w io.Writer, cells []cell) error {
	values := make([]any, len(cells))
	for i, c := range cells {
		values[i] = c.value
	}

	b, err := json.Marshal(values)
	if err != nil {
		return errors.Wrap(err, "encode results")
	}
	_, err = fmt.Fprintln(w, string(b))
	return err
}
