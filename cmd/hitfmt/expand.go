package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/idaholab/moose-language-support/pkg/braceexpr"
)

func newExpandCmd(opts *rootOptions) *cobra.Command {
	var countOnly bool

	cmd := &cobra.Command{
		Use:   "expand PATTERN",
		Short: MsgExpandShort,
		Long: `Expand prints every string a brace expression matches, one per line, in
the order the rule compiler sees them. Expansions larger than the
configured eager cap are reported instead of printed.`,
		Example: `  hitfmt expand '{if,else}{,:}'
  hitfmt expand 'v{1..3}.{0..9}'
  hitfmt expand --count 'x{000..999}'`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.loadConfig()
			if err != nil {
				return err
			}

			exp, err := braceexpr.ExpandString(args[0], cfg.Limits(), braceexpr.WithMaxDepth(cfg.Parser.MaxDepth))
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if countOnly {
				_, err = fmt.Fprintln(out, exp.Count)
				return err
			}
			if exp.IsLazy() {
				_, err = fmt.Fprintf(out, MsgExpandLazy, args[0], exp.Count, exp.Lazy.MaxLen())
				return err
			}
			for _, lit := range exp.Literals {
				if _, err := fmt.Fprintln(out, lit); err != nil {
					return err
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&countOnly, "count", "c", false, MsgFlagCount)
	return cmd
}
