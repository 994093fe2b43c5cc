package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/opd-ai/creographics/internal/config"
)

type convertOpts struct {
	output     string
	defaults   bool
	noComments bool
}

func newConvertCmd(a *app) *cobra.Command {
	var opts convertOpts

	cmd := &cobra.Command{
		Use:   "convert <editor.toml>",
		Short: "Convert a TOML configuration to Lua",
		Long: `Convert reads a TOML editor configuration and writes the equivalent Lua
configuration (editor.config = {...}) to stdout or to --output.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runConvert(args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default: stdout)")
	cmd.Flags().BoolVar(&opts.defaults, "defaults", false, "also write settings left at their default")
	cmd.Flags().BoolVar(&opts.noComments, "no-comments", false, "omit section comments")
	return cmd
}

func (a *app) runConvert(path string, opts convertOpts) error {
	lua, err := config.MigrateTOMLFile(path,
		config.WithDefaults(opts.defaults),
		config.WithComments(!opts.noComments),
	)
	if err != nil {
		return fmt.Errorf("convert %s: %w", path, err)
	}

	if opts.output == "" {
		_, err := a.stdout.Write(lua)
		return err
	}
	if err := os.WriteFile(opts.output, lua, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", opts.output, err)
	}
	a.logger.Info("converted", "from", path, "to", opts.output)
	return nil
}
