package main

import (
	"io"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/idaholab/moose-language-support/internal/version"
	"github.com/idaholab/moose-language-support/pkg/config"
	"github.com/idaholab/moose-language-support/pkg/errors"
	"github.com/idaholab/moose-language-support/pkg/formatter"
	"github.com/idaholab/moose-language-support/pkg/hitfmt"
	"github.com/idaholab/moose-language-support/pkg/logging"
	"github.com/idaholab/moose-language-support/pkg/render"
	"github.com/idaholab/moose-language-support/pkg/stylesheet"
)

// stdinName stands for standard input among the file arguments
const stdinName = "-"

type rootOptions struct {
	verbosity int
	style     string
	format    string
	palette   string
	config    string
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:     "hitfmt [file...]",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Example: MsgRootExample,
		Version: version.Short(),
		Args:    cobra.ArbitraryArgs,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(opts.verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFormat(cmd, opts, args)
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	rootCmd.PersistentFlags().CountVarP(&opts.verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().StringVar(&opts.config, "config", "", MsgFlagConfig)

	rootCmd.Flags().StringVarP(&opts.style, "style", "s", "", MsgFlagStyle)
	rootCmd.Flags().StringVarP(&opts.format, "format", "f", "", MsgFlagFormat)
	rootCmd.Flags().StringVar(&opts.palette, "palette", "", MsgFlagPalette)

	rootCmd.AddCommand(newExpandCmd(opts))
	rootCmd.AddCommand(newCheckCmd(opts))
	rootCmd.AddCommand(newInitCmd())
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCompletionCmd())
	rootCmd.AddCommand(newManCmd())

	if err := installTopics(rootCmd); err != nil {
		log.Warn().Err(err).Msg("Help topics unavailable")
	}

	return rootCmd
}

// loadConfig layers the command line flags over the configuration files
func (o *rootOptions) loadConfig() (*config.Config, error) {
	overrides := map[string]interface{}{}
	if o.format != "" {
		overrides["output.format"] = o.format
	}
	if o.palette != "" {
		overrides["output.palette"] = o.palette
	}
	return config.Load(config.LoadOptions{File: o.config, Overrides: overrides})
}

// styleArg returns the style to use, falling back to styles.default. A
// style given as a path that exists relative to the working directory is
// made absolute so it is not looked up next to each input file.
func styleArg(style string, cfg *config.Config) (string, error) {
	if style == "" {
		style = cfg.Styles.Default
	}
	if style == "" {
		return "", errors.New(errors.ErrInvalidInput, MsgErrNoStyle)
	}
	if hitfmt.IsSource(style) {
		return style, nil
	}
	if info, err := os.Stat(style); err == nil && !info.IsDir() {
		if abs, err := filepath.Abs(style); err == nil {
			return abs, nil
		}
	}
	return style, nil
}

func loadPalette(cfg *config.Config) (*render.Palette, error) {
	if cfg.Output.Palette == "" {
		return nil, nil
	}
	return render.LoadPalette(cfg.Output.Palette)
}

func runFormat(cmd *cobra.Command, opts *rootOptions, args []string) error {
	logger := logging.GetLogger("cmd.format")

	cfg, err := opts.loadConfig()
	if err != nil {
		return err
	}
	style, err := styleArg(opts.style, cfg)
	if err != nil {
		return err
	}
	palette, err := loadPalette(cfg)
	if err != nil {
		return err
	}

	if len(args) == 0 {
		args = []string{stdinName}
	}

	// one formatter per input directory, since includes resolve against it
	formatters := make(map[string]*formatter.Formatter)
	out := cmd.OutOrStdout()
	for _, path := range args {
		input, location, err := readInput(cmd.InOrStdin(), path)
		if err != nil {
			return err
		}

		f, ok := formatters[location]
		if !ok {
			f, err = hitfmt.NewFormatter(location, style, hitfmt.Options{
				Config:  cfg,
				Format:  cfg.Format(),
				Palette: palette,
			})
			if err != nil {
				return err
			}
			formatters[location] = f
		}

		logger.Debug().Str("input", path).Int("bytes", len(input)).Msg("Formatting input")
		if err := f.FormatTo(out, input); err != nil {
			return errors.Wrap(err, errors.ErrFileWrite, "failed to write output")
		}
	}
	return nil
}

// readInput returns the content of path and the location its style
// includes resolve against
func readInput(stdin io.Reader, path string) (string, string, error) {
	if path == stdinName {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", "", errors.Wrapf(err, errors.ErrFileAccess, MsgErrReadInput, "stdin")
		}
		return string(data), stylesheet.InMemory, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		code := errors.ErrFileAccess
		if os.IsNotExist(err) {
			code = errors.ErrFileNotFound
		}
		return "", "", errors.Wrapf(err, code, MsgErrReadInput, path).WithDetail(errors.DetailPath, path)
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}
	return string(data), filepath.Dir(abs), nil
}
