package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/idaholab/moose-language-support/pkg/errors"
	"github.com/idaholab/moose-language-support/pkg/stylesheet"
)

// defaultInitPath is written by `hitfmt init` without arguments
const defaultInitPath = "style.toml"

func newInitCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init [path]",
		Short: MsgInitShort,
		Long: `Init writes a starter TOML style sheet with a few rules, styles and
colors to edit. The sheet is named after the file. An existing file is
left alone unless --force is given.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := defaultInitPath
			if len(args) == 1 {
				path = args[0]
			}
			if filepath.Ext(path) == "" {
				path += ".toml"
			}

			if _, err := os.Stat(path); err == nil && !force {
				return errors.Newf(errors.ErrFileWrite, MsgErrExists, path).WithDetail(errors.DetailPath, path)
			}

			name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
			data, err := stylesheet.Encode(stylesheet.Starter(name))
			if err != nil {
				return err
			}
			if err := os.WriteFile(path, data, 0644); err != nil {
				return errors.Wrapf(err, errors.ErrFileWrite, "failed to write %s", path).WithDetail(errors.DetailPath, path)
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), MsgInitCreated, path)
			return err
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, MsgFlagForce)
	return cmd
}
