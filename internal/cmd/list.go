package cmd

import (
	_ "embed"
	"io"

	"github.com/ezerfernandes/clang-format-docs/internal/mdcode"
	"github.com/rodaine/table"
	"github.com/spf13/cobra"
)

//go:embed help/list.md
var listHelp string

func listCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{ //nolint:exhaustruct
		Use:     "list [flags] [filename...]",
		Aliases: []string{"ls"},
		Short:   "List the code blocks to be formatted",
		Long:    listHelp,
		Args:    cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return listRun(cmd.OutOrStdout(), opts, args)
		},

		DisableAutoGenTag: true,
	}

	return cmd
}

func listRun(out io.Writer, opts *options, args []string) error {
	tbl := table.New("File", "Line", "Tag", "Indent", "Lines").WithWriter(out)

	for _, filename := range selectFiles(args, opts.filter, opts.logger) {
		src, err := opts.fsys.ReadFile(filename)
		if err != nil {
			return err
		}

		blocks, err := mdcode.Unfence(src, opts.matcher)
		if err != nil {
			return err
		}

		for _, block := range blocks {
			tbl.AddRow(filename, block.StartLine, block.Tag, len(block.Indent), block.EndLine-block.StartLine-1)
		}
	}

	tbl.Print()

	return nil
}
