package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/idaholab/moose-language-support/pkg/hitfmt"
	"github.com/idaholab/moose-language-support/pkg/render"
	"github.com/idaholab/moose-language-support/pkg/stylesheet"
)

func newCheckCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "check STYLE",
		Short: MsgCheckShort,
		Long: `Check loads a style sheet by path or name, resolves its includes and
compiles every rule, reporting the first error found. On success it prints
the number of rules, the literals in the matching trie and the rules
matched lazily.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.loadConfig()
			if err != nil {
				return err
			}
			style, err := styleArg(args[0], cfg)
			if err != nil {
				return err
			}

			f, err := hitfmt.NewFormatter(stylesheet.InMemory, style, hitfmt.Options{
				Config: cfg,
				Format: render.FormatPlain,
			})
			if err != nil {
				return err
			}

			cs := f.Style()
			_, err = fmt.Fprintf(cmd.OutOrStdout(), MsgCheckSummary, cs.Name(), cs.Len(), cs.Literals(), cs.LazyRules())
			return err
		},
	}
}
