// Package cmd implements the clang-format-docs command line.
package cmd

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"io"

	"github.com/ezerfernandes/clang-format-docs/internal/clangformat"
	"github.com/ezerfernandes/clang-format-docs/internal/docfmt"
	"github.com/ezerfernandes/clang-format-docs/internal/style"
	"github.com/spf13/cobra"
)

//go:embed help/root.md
var rootHelp string

// Execute runs the command line with args and returns the exit status.
func Execute(args []string, stdout, stderr io.Writer) int {
	return execute(args, stdout, stderr, newOptions())
}

func execute(args []string, stdout, stderr io.Writer, opts *options) int {
	root := rootCmd(opts)

	if args == nil {
		args = []string{}
	}

	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	err := root.ExecuteContext(context.Background())

	switch {
	case err == nil:
		return 0
	case errors.Is(err, docfmt.ErrFailed):
		return 1
	default:
		fmt.Fprintf(stderr, "%s: %v\n", root.Name(), err)

		return 1
	}
}

func rootCmd(opts *options) *cobra.Command {
	var formatter docfmt.Formatter

	cmd := &cobra.Command{ //nolint:exhaustruct
		Use:   "clang-format-docs [flags] [filename...]",
		Short: "Format C++ code blocks in Markdown documents with clang-format",
		Long:  rootHelp,
		Args:  cobra.ArbitraryArgs,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return opts.prepare(cmd)
		},
		PreRunE: func(_ *cobra.Command, _ []string) error {
			parsed, err := style.Parse(opts.style)
			if err != nil {
				return err
			}

			opts.style = parsed.String()

			if formatter, err = opts.newFormatter(opts.command); err != nil {
				return err
			}

			opts.logger.Debug("formatter ready", "command", opts.command, "style", opts.style)

			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return formatRun(cmd.Context(), cmd.OutOrStdout(), formatter, opts, args)
		},

		SilenceErrors:     true,
		SilenceUsage:      true,
		DisableAutoGenTag: true,
	}

	langFlag(cmd, opts)
	excludeFlag(cmd, opts)
	verboseFlag(cmd, opts)

	cmd.Flags().BoolVarP(&opts.skipErrors, "skip-errors", "E", false, "do not fail on code blocks that cannot be formatted")
	cmd.Flags().BoolVarP(&opts.quiet, "quiet", "q", false, "don't report rewritten files")
	cmd.Flags().StringVar(&opts.style, "style", style.Default, style.Help())
	cmd.Flags().StringVar(&opts.command, "clang-format", clangformat.DefaultCommand, "clang-format command line")

	cmd.AddCommand(listCmd(opts))

	return cmd
}

func formatRun(ctx context.Context, out io.Writer, formatter docfmt.Formatter, opts *options, args []string) error {
	rewriter := docfmt.NewRewriter(formatter,
		docfmt.WithMatcher(opts.matcher),
		docfmt.WithStyle(opts.style),
		docfmt.WithLogger(opts.logger),
	)

	fileOpts := docfmt.FileOptions{SkipErrors: opts.skipErrors, Quiet: opts.quiet}
	failed := false

	for _, filename := range selectFiles(args, opts.filter, opts.logger) {
		opts.logger.Debug("formatting", "file", filename)

		err := rewriter.FormatFile(ctx, opts.fsys, filename, fileOpts, out)
		if errors.Is(err, docfmt.ErrFailed) {
			failed = true

			continue
		}

		if err != nil {
			return err
		}
	}

	if failed {
		return docfmt.ErrFailed
	}

	return nil
}
