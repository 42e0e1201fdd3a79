package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/reoring/goclone/demo"
)

type runOptions struct {
	strategies []string
	format     string
	config     string
	rename     string
}

func newRunCmd() *cobra.Command {
	opts := &runOptions{}
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Copy the pack with each strategy and print what both handles see",
		Long: `Builds the pack, copies it with every selected strategy, renames the
copy's dog and prints the names seen through the original and the copy,
together with every place where the copy still aliases the original.

Strategies:
  - shallow: copy the sequence only
  - deep:    copy the whole graph by reflection
  - json:    copy through a JSON round trip

Example:
  goclone run --strategy shallow --strategy deep --format yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWalkthrough(cmd, opts)
		},
	}
	cmd.Flags().StringSliceVarP(&opts.strategies, "strategy", "s", nil, "strategies to run (shallow, deep, json)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", string(demo.FormatText), "output format (text, json, yaml)")
	cmd.Flags().StringVarP(&opts.config, "config", "c", "", "YAML file describing the pack")
	cmd.Flags().StringVar(&opts.rename, "rename", "", "name given to the copy's dog")
	return cmd
}

func runWalkthrough(cmd *cobra.Command, opts *runOptions) error {
	format, err := demo.ParseFormat(opts.format)
	if err != nil {
		return err
	}
	cfg := demo.DefaultConfig()
	if opts.config != "" {
		cfg, err = demo.LoadConfig(opts.config)
		if err != nil {
			return err
		}
		logger.Debug("loaded config", zap.String("path", opts.config))
	}
	if len(opts.strategies) > 0 {
		cfg.Strategies = opts.strategies
	}
	if opts.rename != "" {
		cfg.Rename = opts.rename
	}

	reports, err := demo.RunAll(cfg, logger)
	if err != nil {
		return err
	}
	return demo.Render(cmd.OutOrStdout(), reports, format)
}
