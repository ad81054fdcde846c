package cmd

import (
	"io"
	"log/slog"

	"github.com/ezerfernandes/clang-format-docs/internal/clangformat"
	"github.com/ezerfernandes/clang-format-docs/internal/docfmt"
	"github.com/ezerfernandes/clang-format-docs/internal/region"
	"github.com/spf13/cobra"
)

type formatterFactory func(command string) (docfmt.Formatter, error)

type options struct {
	skipErrors bool
	quiet      bool
	verbose    bool
	style      string
	command    string
	lang       []string
	exclude    []string

	logger       *slog.Logger
	matcher      *region.Matcher
	filter       filterFunc
	fsys         docfmt.FS
	newFormatter formatterFactory
}

func newOptions() *options {
	return &options{ //nolint:exhaustruct
		fsys: docfmt.OS,
		newFormatter: func(command string) (docfmt.Formatter, error) {
			f, err := clangformat.New(command)
			if err != nil {
				return nil, err
			}

			return f, nil
		},
	}
}

func (opts *options) createLogger(w io.Writer) {
	level := slog.LevelWarn
	if opts.verbose {
		level = slog.LevelDebug
	}

	opts.logger = slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})) //nolint:exhaustruct
}

func (opts *options) prepare(cmd *cobra.Command) error {
	opts.createLogger(cmd.ErrOrStderr())

	var err error

	if opts.matcher, err = region.New(opts.lang...); err != nil {
		return err
	}

	if opts.filter, err = filter(opts.exclude); err != nil {
		return err
	}

	return nil
}

func langFlag(cmd *cobra.Command, opts *options) {
	cmd.PersistentFlags().StringSliceVarP(&opts.lang, "lang", "l", region.DefaultTags, "language tags of the code blocks to format")
}

func excludeFlag(cmd *cobra.Command, opts *options) {
	cmd.PersistentFlags().StringSliceVar(&opts.exclude, "exclude", nil, "glob patterns of files to skip")
}

func verboseFlag(cmd *cobra.Command, opts *options) {
	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "log diagnostics to stderr")
}
